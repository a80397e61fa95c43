package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"task-list/internal/errors"
)

// errQuit ends an interactive session
var errQuit = stderrors.New("quit")

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandFunc adapts a function to the Command interface
type CommandFunc func(ctx context.Context, args []string) error

// Execute calls f
func (f CommandFunc) Execute(ctx context.Context, args []string) error {
	return f(ctx, args)
}

type registeredCommand struct {
	command Command
	usage   string
}

// CommandRegistry manages all available shell commands
type CommandRegistry struct {
	commands map[string]registeredCommand
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]registeredCommand),
	}

	compose := NewComposeCommands(app)
	query := NewQueryCommands(app)

	// Register all commands
	registry.Register("add", "add [title]            start a new task, optionally titled", CommandFunc(compose.Add))
	registry.Register("title", "title <text>           set the draft title", CommandFunc(compose.Title))
	registry.Register("describe", "describe <text>        set the draft description", CommandFunc(compose.Describe))
	registry.Register("time", "time <label>           set the draft time label", CommandFunc(compose.Time))
	registry.Register("category", "category [name]        set or cycle the draft category", CommandFunc(compose.Category))
	registry.Register("priority", "priority [name]        set or cycle the draft priority", CommandFunc(compose.Priority))
	registry.Register("invite", "invite <index>         toggle a participant on the draft", CommandFunc(compose.Invite))
	registry.Register("recurring", "recurring [on|off]     set or flip the recurring flag", CommandFunc(compose.Recurring))
	registry.Register("draft", "draft                  show the draft", CommandFunc(compose.Show))
	registry.Register("commit", "commit                 create the task from the draft", CommandFunc(compose.Commit))
	registry.Register("discard", "discard                throw the draft away", CommandFunc(compose.Discard))
	registry.Register("toggle", "toggle <id>            mark a task done or undone", CommandFunc(query.Toggle))
	registry.Register("search", "search [text]          filter titles, empty clears", CommandFunc(query.Search))
	registry.Register("filter", "filter <name|index>    choose Undone, Meetings or Consummation", CommandFunc(query.Filter))
	registry.Register("counts", "counts                 show how many tasks are done", CommandFunc(query.Counts))
	registry.Register("list", "list                   show the visible tasks", NewListCommand(app))
	registry.Register("help", "help                   show this help", CommandFunc(func(ctx context.Context, args []string) error {
		app.printf("%s\n", registry.GetUsage())
		return nil
	}))
	registry.Register("quit", "quit                   leave the session", CommandFunc(func(ctx context.Context, args []string) error {
		return errQuit
	}))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name, usage string, command Command) {
	r.commands[name] = registeredCommand{command: command, usage: usage}
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	if commandName == "exit" {
		commandName = "quit"
	}
	registered, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, fmt.Sprintf("unknown command %q, try help", commandName))
	}
	return registered.command.Execute(ctx, args)
}

// Names returns the registered command names in alphabetical order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetUsage returns the usage string for the shell
func (r *CommandRegistry) GetUsage() string {
	lines := make([]string, 0, len(r.commands)+1)
	lines = append(lines, "commands:")
	for _, name := range r.Names() {
		lines = append(lines, "  "+r.commands[name].usage)
	}
	return strings.Join(lines, "\n")
}
