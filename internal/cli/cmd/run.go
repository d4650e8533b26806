package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	coreapp "github.com/bnema/switchscan/internal/app"
	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/cli/model"
	"github.com/bnema/switchscan/internal/cli/styles"
	"github.com/bnema/switchscan/internal/dispatch"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/infrastructure/config"
	"github.com/bnema/switchscan/internal/infrastructure/memtree"
	"github.com/bnema/switchscan/internal/infrastructure/metrics"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/ui/mainloop"
)

// journalRetention is how long recorded errors are kept.
const journalRetention = 30 * 24 * time.Hour

var errLoopStopped = errors.New("main loop stopped")

var runTreeFile string

var runCmd = &cobra.Command{
	Use:   "run --tree <tree.yaml>",
	Short: "Drive a simulated desktop with the switch keys",
	Long: `Load a desktop tree snapshot and navigate it from the terminal.

The keys bound in the [keys] section of the config act as the select, next and
previous switches. The simulator shows the tree with the primary and preview
focus rings, the action menu and the host calls the navigator made.

When metrics.listen is set, prometheus metrics are served on /metrics while the
simulator runs. Errors are recorded in the journal at journal.path.

Examples:
  switchscan run --tree desktop.yaml
  switchscan run --tree desktop.yaml --config ./dev.toml`,
	RunE: runSimulator,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runTreeFile, "tree", "t", "", "YAML snapshot of the desktop tree")
	_ = runCmd.MarkFlagRequired("tree")
}

func runSimulator(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	spec, err := memtree.LoadFile(runTreeFile)
	if err != nil {
		return err
	}
	loop := mainloop.New()
	host, err := memtree.New(spec, loop.Post)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}

	journal, closeJournal, err := app.OpenJournal(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = closeJournal() }()
	if pruned, pruneErr := journal.Prune(ctx, time.Now().Add(-journalRetention)); pruneErr != nil {
		log.Warn().Err(pruneErr).Msg("failed to prune error journal")
	} else if pruned > 0 {
		log.Debug().Int64("pruned", pruned).Msg("pruned error journal")
	}

	recorder := metrics.NewRecorder()
	prefs := config.NewPreferences(app.Manager, loop.Post)
	keys, err := dispatch.NewKeyMap(prefs.KeyBindings())
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		if err := loop.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	var core *coreapp.App
	var sweep port.Timer
	var initErr error
	ran := loop.Call(func() {
		core, initErr = coreapp.New(ctx, coreapp.Deps{
			Tree:      host,
			Editor:    host,
			Surface:   host,
			Prefs:     prefs,
			Scheduler: loop,
			Metrics:   recorder,
			Journal:   journal,
		})
		if initErr != nil {
			return
		}
		if initErr = core.Start(ctx); initErr != nil {
			core.Close(ctx)
			return
		}
		// The simulated surface moves its sweep line on the loop.
		sweep = loop.Every(prefs.PointScanSpeed(), host.StepPointScan)
	})
	if !ran {
		initErr = errLoopStopped
	}
	if initErr != nil {
		cancel()
		_ = g.Wait()
		return initErr
	}

	if listen := app.Config.Metrics.Listen; listen != "" {
		g.Go(func() error {
			return recorder.Serve(gctx, listen)
		})
	}
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	sim := model.NewSimulatorModel(ctx, app.Theme, model.SimulatorConfig{
		Bindings: keys,
		Dispatch: func(cmd entity.Command) error {
			var err error
			if !loop.Call(func() { err = core.Dispatch(ctx, cmd) }) {
				return errLoopStopped
			}
			return err
		},
		Snapshot: func() (styles.SimulatorFrame, bool) {
			var frame styles.SimulatorFrame
			ok := loop.Call(func() { frame = model.BuildFrame(ctx, host, core) })
			return frame, ok
		},
	})

	program := tea.NewProgram(sim, tea.WithAltScreen(), tea.WithContext(gctx))
	prefs.OnChange(func() {
		rebound, err := dispatch.NewKeyMap(prefs.KeyBindings())
		if err != nil {
			log.Warn().Err(err).Msg("keeping previous key bindings")
			return
		}
		// Send blocks until the program reads it; keep the loop free.
		go program.Send(model.BindingsMsg{Bindings: rebound})
	})

	g.Go(func() error {
		defer cancel()
		defer loop.Call(func() {
			sweep.Stop()
			core.Close(ctx)
		})

		_, err := program.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("simulator: %w", err)
		}
		return nil
	})

	err = g.Wait()
	log.Info().Msg("simulator stopped")
	return err
}
