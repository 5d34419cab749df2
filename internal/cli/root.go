package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todolist/internal/config"
	"github.com/Makepad-fr/todolist/internal/logging"
	"github.com/Makepad-fr/todolist/internal/store"
	"github.com/Makepad-fr/todolist/internal/todo"
	"github.com/Makepad-fr/todolist/internal/tui"
	"github.com/Makepad-fr/todolist/internal/ui"
)

// App carries root flags and the resources opened for one invocation.
type App struct {
	ConfigPath string
	DataDir    string
	Backend    string
	Theme      string
	LogLevel   string
	Color      string
	Yes        bool
	NoColor    bool

	Config config.Config
	Logger *log.Logger

	closers []io.Closer
}

// usageError marks bad invocations (exit code 2).
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// ExitCode maps a command error to a process exit code (0 ok, 1 error, 2 usage).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

// NewRootCmd builds the command tree. Prefer Run, which also releases the
// resources opened by the command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "todo - a tiny to-do list (CLI + TUI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo

  todo add "Buy milk"
  todo ls --group
  todo done 2
  todo edit '#1' "Buy oat milk"
  todo rm 3
`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown subcommand: %s", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.open()
			if err != nil {
				return err
			}
			return tui.Run(c, tui.Options{Logger: app.Logger})
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.init()
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	f := cmd.PersistentFlags()
	f.StringVar(&app.ConfigPath, "config", "", "Path to config file (.toml, .yaml)")
	f.StringVar(&app.DataDir, "data-dir", "", "Directory holding the todo data")
	f.StringVar(&app.Backend, "backend", "", "Storage backend (json|sqlite)")
	f.StringVar(&app.Theme, "theme", "", "Theme (classic|neon|mono)")
	f.StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	f.BoolVarP(&app.Yes, "yes", "y", false, "Skip confirmation prompts")
	f.StringVar(&app.Color, "color", "", "Color output (auto|always|never)")
	f.BoolVar(&app.NoColor, "no-color", false, "Disable colors (same as --color never)")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newClearDoneCmd(app))

	return cmd
}

// init resolves configuration (flags win over file and env) and the logger.
// Validation runs once, on the merged result.
func (app *App) init() error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if app.DataDir != "" {
		cfg.DataDir = app.DataDir
	}
	if app.Backend != "" {
		cfg.Backend = app.Backend
	}
	if app.Theme != "" {
		cfg.Theme = app.Theme
	}
	if app.LogLevel != "" {
		cfg.LogLevel = app.LogLevel
	}
	if app.Yes {
		cfg.Confirm = false
	}
	if err := cfg.Validate(); err != nil {
		return usageError{msg: err.Error()}
	}
	app.Config = cfg

	mode, err := app.colorMode()
	if err != nil {
		return err
	}
	ui.SetTheme(cfg.Theme)
	if err := ui.SetColorMode(mode); err != nil {
		return usageError{msg: err.Error()}
	}

	logger, f, err := logging.NewFile(cfg.DataDir, cfg.LogLevel)
	if err != nil {
		return err
	}
	app.Logger = logger
	app.closers = append(app.closers, f)
	return nil
}

// colorMode merges --color, --no-color and NO_COLOR; an explicit --color wins
// over the environment.
func (app *App) colorMode() (string, error) {
	switch {
	case app.NoColor && app.Color != "" && app.Color != ui.ColorNever:
		return "", usagef("--no-color conflicts with --color %s", app.Color)
	case app.NoColor:
		return ui.ColorNever, nil
	case app.Color != "":
		return app.Color, nil
	case os.Getenv("NO_COLOR") != "":
		return ui.ColorNever, nil
	}
	return ui.ColorAuto, nil
}

// open hydrates the container from the configured store.
func (app *App) open() (*todo.Container, error) {
	st, err := store.Open(context.Background(), app.Config)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, st)
	return todo.NewContainer(st, todo.Options{
		Logger: app.Logger,
		Layout: app.Config.TimestampLayout,
	}), nil
}

func (app *App) close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		errs = append(errs, app.closers[i].Close())
	}
	app.closers = nil
	return errors.Join(errs...)
}
