package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"task-list/internal/api"
	"task-list/internal/config"
	"task-list/internal/errors"
	"task-list/internal/logging"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

const shellPrompt = "> "

// App represents an interactive line-oriented session
type App struct {
	api          api.API
	config       *config.Config
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	logger       *logging.Logger
	out          io.Writer
}

// AppOption customises an App
type AppOption func(*App)

// WithOutput redirects everything the app prints
func WithOutput(w io.Writer) AppOption {
	return func(a *App) { a.out = w }
}

// WithAppLogger sets the logger used for failed commands
func WithAppLogger(logger *logging.Logger) AppOption {
	return func(a *App) { a.logger = logger }
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config, opts ...AppOption) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		api:          apiInstance,
		config:       cfg,
		errorHandler: NewErrorHandler(),
		logger:       logging.NopLogger(),
		out:          os.Stdout,
	}
	for _, opt := range opts {
		opt(app)
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Execute runs a single command line. Blank lines are ignored.
func (a *App) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return a.registry.Execute(ctx, strings.ToLower(fields[0]), fields[1:])
}

// Run reads commands from in until EOF or quit. A failing command is
// reported and the session carries on.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(a.out, a.api.Today(timeNow()))
	fmt.Fprintln(a.out, `Type "help" for a list of commands.`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(a.out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(a.out)
			return scanner.Err()
		}

		err := a.Execute(ctx, scanner.Text())
		if err == errQuit {
			return nil
		}
		if err != nil {
			a.report(err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (a *App) report(err error) {
	if errors.ShouldLogError(err) {
		a.logger.Error("command failed", "error", err.Error(), "code", errors.GetErrorCode(err))
	}
	fmt.Fprintf(a.out, "error: %v\n", a.errorHandler.HandleSimple(err))
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
