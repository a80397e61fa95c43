package cli

import (
	"context"
	"fmt"
	"strings"

	"task-list/internal/api"
)

// ListCommand prints the tasks the session currently shows
type ListCommand struct {
	api    api.API
	app    *App
	format string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{api: app.api, app: app, format: app.config.Display.ListFormat}
}

// WithFormat returns a copy of the command rendering in format
func (c *ListCommand) WithFormat(format string) *ListCommand {
	copied := *c
	copied.format = format
	return &copied
}

// Execute runs the list command. Arguments, if any, replace the search text.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		c.api.SetSearch(strings.Join(args, " "))
	}

	tasks, err := c.api.Visible(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}
	return renderTasks(c.app.out, c.format, tasks)
}
