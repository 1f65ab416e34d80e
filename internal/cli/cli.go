// Package cli implements the echotab command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/echotab/echotab/pkg/buildinfo"
	"github.com/echotab/echotab/pkg/config"
	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/errors"
	"github.com/echotab/echotab/pkg/grid"
	"github.com/echotab/echotab/pkg/store"
	"github.com/echotab/echotab/pkg/widget"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// skipConfigAnnotation marks commands that run with defaults when the
// config file cannot be read.
const skipConfigAnnotation = "echotab/skip-config"

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	profile    string
	cfg        config.Config

	// openStore opens the configured backend. Tests replace it.
	openStore func(context.Context, config.Config, *log.Logger) (store.Store, error)
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:    newLogger(w, level),
		profile:   store.DefaultProfile,
		cfg:       config.Default(),
		openStore: store.Open,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "EchoTab arranges start page dashboards on a grid",
		Long: `EchoTab keeps the shortcuts and widgets of a browser start page on a
fixed-column grid. Items never overlap: moving one onto another swaps or
pushes its neighbours aside.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/echotab/config.toml)")
	root.PersistentFlags().StringVarP(&c.profile, "profile", "p", store.DefaultProfile, "dashboard profile")

	root.AddCommand(c.showCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.updateCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.widgetsCommand())
	root.AddCommand(c.profilesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		if cmd.Annotations[skipConfigAnnotation] == "" {
			return err
		}
		c.Logger.Warn("using default settings", "err", errors.UserMessage(err))
		cfg = config.Default()
	}
	c.cfg = cfg

	// The config can only make logging more verbose than the flags.
	if lvl := cfg.LogLevel(); lvl < c.Logger.GetLevel() {
		c.Logger.SetLevel(lvl)
	}

	if err := errors.ValidateProfileName(c.profile); err != nil {
		return err
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Store Helpers
// =============================================================================

// connect opens the configured store. Network backends show a spinner.
func (c *CLI) connect(ctx context.Context) (store.Store, error) {
	backend := c.cfg.Store.Backend
	if backend == "" || backend == config.BackendFile || backend == config.BackendMemory {
		return c.openStore(ctx, c.cfg, c.Logger)
	}

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Connecting to %s...", backend))
	spinner.Start()
	s, err := c.openStore(ctx, c.cfg, c.Logger)
	spinner.Stop()
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Connected to %s", backend))
	return s, nil
}

// load returns the active profile, or an empty dashboard on the configured
// grid. Inconsistent stored layouts are reported but still returned.
func (c *CLI) load(ctx context.Context, s store.Store) (dashboard.State, error) {
	st, err := store.LoadOrNew(ctx, s, c.profile, c.cfg.Grid)
	if err != nil {
		return st, err
	}
	if err := grid.Validate(st.Layout, st.Grid.Cols); err != nil {
		c.Logger.Warn("stored layout is inconsistent", "profile", c.profile, "err", errors.UserMessage(err))
	}
	return st, nil
}

// view loads the active profile for reading.
func (c *CLI) view(ctx context.Context) (dashboard.State, error) {
	s, err := c.connect(ctx)
	if err != nil {
		return dashboard.State{}, err
	}
	defer s.Close()
	return c.load(ctx, s)
}

// update applies actions to the active profile in order and saves the
// result. Nothing is saved if any action is rejected.
func (c *CLI) update(ctx context.Context, actions ...dashboard.Action) (dashboard.State, error) {
	s, err := c.connect(ctx)
	if err != nil {
		return dashboard.State{}, err
	}
	defer s.Close()

	st, err := c.load(ctx, s)
	if err != nil {
		return st, err
	}
	r := c.reducer()
	for _, a := range actions {
		if st, err = r.Apply(st, a); err != nil {
			return st, err
		}
	}
	if err := s.Save(ctx, c.profile, &st); err != nil {
		return st, err
	}
	c.Logger.Debug("saved profile", "profile", c.profile, "items", len(st.Layout))
	return st, nil
}

func (c *CLI) registry() *widget.Registry {
	reg := widget.NewRegistry(c.Logger)
	widget.RegisterBuiltins(reg)
	return reg
}

func (c *CLI) reducer() *dashboard.Reducer {
	r := dashboard.NewReducer(c.registry())
	r.StartRow = c.cfg.Placement.StartRow
	return r
}
