package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-list/internal/config"
	"task-list/internal/domain"
	"task-list/internal/tui"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	config  *config.Config
	build   SessionBuilder
	session *Session
}

// NewRootCommand creates the root cobra command with global flags. The
// session is built after flags are applied, so flags can pick the backend.
func NewRootCommand(cfg *config.Config, build SessionBuilder) *RootCommand {
	if build == nil {
		build = NewSession
	}
	root := &RootCommand{
		config: cfg,
		build:  build,
	}

	root.cmd = &cobra.Command{
		Use:   "tasks",
		Short: "A personal task list",
		Long: `tasks keeps a task list for the length of one session.

FEATURES:
  • Compose tasks with a category, priority, participants and a recurring flag
  • Mark tasks done and undone
  • Search titles and filter by status
  • Print the list as a table, JSON, YAML or CSV

EXAMPLES:
  tasks list                               # Undone sample tasks
  tasks list inter --filter Meetings       # Titles containing "inter"
  tasks list --format yaml                 # YAML output
  tasks shell                              # Line-oriented session
  tasks tui                                # Full-screen session

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

    TASKS_CONFIG                           Optional YAML config file
    TASKS_STORE_BACKEND                    memory or sqlite (default: memory)
    TASKS_LOGGING_ENABLED                  Write JSON logs (default: false)
    TASKS_LOGGING_LEVEL                    debug, info, warn, error (default: info)
    TASKS_LOGGING_FILE                     Log file (default: stderr)
    TASKS_DISPLAY_DATE_FORMAT              Header date layout (default: Monday, 02 Jan 2006)
    TASKS_DISPLAY_LIST_FORMAT              table, json, yaml, csv (default: table)
    TASKS_VALIDATION_TITLE_MAX_LENGTH      Longest title, 0 for no limit (default: 0)
    TASKS_SESSION_SEED_SAMPLE              Start with the sample tasks (default: true)
    TASKS_APPLICATION_TIMEOUT              Timeout for one-shot commands (default: 60s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.applyFlags(cmd); err != nil {
				return err
			}
			session, err := root.build(cmd.Context(), root.config)
			if err != nil {
				return err
			}
			root.session = session
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.closeSession()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	defer r.closeSession()
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides the command line, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetIO redirects the command's input and output streams
func (r *RootCommand) SetIO(in io.Reader, out io.Writer) {
	r.cmd.SetIn(in)
	r.cmd.SetOut(out)
	r.cmd.SetErr(out)
}

func (r *RootCommand) closeSession() error {
	if r.session == nil {
		return nil
	}
	err := r.session.Close()
	r.session = nil
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("backend", "", "Session store, memory or sqlite (overrides TASKS_STORE_BACKEND)")
	flags.Bool("log", false, "Write JSON logs (overrides TASKS_LOGGING_ENABLED)")
	flags.String("log-level", "", "Log level (overrides TASKS_LOGGING_LEVEL)")
	flags.String("log-file", "", "Log file (overrides TASKS_LOGGING_FILE)")
	flags.String("date-format", "", "Header date layout (overrides TASKS_DISPLAY_DATE_FORMAT)")
	flags.Int("title-max-length", 0, "Longest allowed title (overrides TASKS_VALIDATION_TITLE_MAX_LENGTH)")
	flags.Bool("seed", true, "Start with the sample tasks (overrides TASKS_SESSION_SEED_SAMPLE)")
	flags.Duration("timeout", 0, "Timeout for one-shot commands (overrides TASKS_APPLICATION_TIMEOUT)")
}

// applyFlags copies every flag the user set onto the configuration
func (r *RootCommand) applyFlags(cmd *cobra.Command) error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}
	flags := cmd.Flags()

	overrides := &config.ConfigOverrides{}
	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		overrides.StoreBackend = &v
	}
	if flags.Changed("log") {
		v, _ := flags.GetBool("log")
		overrides.LogEnabled = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("log-file") {
		v, _ := flags.GetString("log-file")
		overrides.LogFile = &v
	}
	if flags.Changed("date-format") {
		v, _ := flags.GetString("date-format")
		overrides.DateFormat = &v
	}
	if flags.Changed("title-max-length") {
		v, _ := flags.GetInt("title-max-length")
		overrides.TitleMaxLength = &v
	}
	if flags.Changed("seed") {
		v, _ := flags.GetBool("seed")
		overrides.SeedSample = &v
	}
	if flags.Changed("timeout") {
		v, _ := flags.GetDuration("timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		overrides.ListFormat = &v
	}

	overrides.Apply(r.config)
	return r.config.Validate()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list [search text]",
		Short: "Print the visible tasks",
		Long: `Print the tasks matching the search text and status filter.

Search is a case-insensitive match on titles. The Undone filter hides
completed tasks; Meetings and Consummation show every task.

Examples:
  tasks list                        # Undone tasks
  tasks list review --filter 1      # Titles containing "review"
  tasks list --format csv > tasks.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			filterArg, _ := cmd.Flags().GetString("filter")
			filter, err := domain.ParseStatusFilter(filterArg)
			if err != nil {
				return NewErrorHandler().Handle("list tasks", err)
			}
			if err := r.session.API.SetFilter(int(filter)); err != nil {
				return NewErrorHandler().Handle("list tasks", err)
			}

			app := r.newApp(cmd.OutOrStdout())
			return NewListCommand(app).Execute(ctx, []string{strings.Join(args, " ")})
		},
	}
	listCmd.Flags().String("filter", domain.FilterUndone.String(), "Status filter: Undone, Meetings, Consummation or 0-2")
	listCmd.Flags().String("format", "", "Output format: table, json, yaml, csv (overrides TASKS_DISPLAY_LIST_FORMAT)")

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Start a line-oriented session",
		Long: `Read commands from standard input, one per line, against a single session.
Failed commands print an error and the session continues. Type "help" to
see every command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.newApp(cmd.OutOrStdout()).Run(cmd.Context(), cmd.InOrStdin())
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), r.session.API, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	r.cmd.AddCommand(listCmd, shellCmd, tuiCmd)
}

func (r *RootCommand) newApp(out io.Writer) *App {
	if out == nil {
		out = os.Stdout
	}
	return NewApp(r.session.API, r.config, WithOutput(out), WithAppLogger(r.session.Logger))
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}
