// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/switchscan/internal/cli/styles"
	"github.com/bnema/switchscan/internal/domain/build"
	"github.com/bnema/switchscan/internal/infrastructure/config"
	"github.com/bnema/switchscan/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/switchscan/internal/logging"
)

// Options select how the CLI app is built.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// Quiet keeps logs off stderr, for commands that own the terminal.
	Quiet bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and builds the logger every command shares.
func NewApp(opts Options) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if opts.ConfigFile != "" {
		mgr, err = config.NewManagerForFile(opts.ConfigFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: time.TimeOnly,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Quiet:      opts.Quiet,
	})
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", mgr.ConfigFile()).Msg("configuration loaded")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(cfg),
		ctx:     ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// OpenJournal opens the error journal configured in journal.path.
func (a *App) OpenJournal(ctx context.Context) (*sqlite.Journal, func() error, error) {
	db, err := sqlite.NewConnection(ctx, a.Config.Journal.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}
	return sqlite.NewJournal(db), db.Close, nil
}
