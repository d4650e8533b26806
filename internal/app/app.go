// Package app wires the switch access controllers together. Only one App may
// be live at a time.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/switchscan/internal/action"
	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/autoscan"
	"github.com/bnema/switchscan/internal/dispatch"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/navigation"
	"github.com/bnema/switchscan/internal/pointscan"
	"github.com/bnema/switchscan/internal/scanmode"
	"github.com/bnema/switchscan/internal/textnav"
)

var (
	// ErrAlreadyInitialized is returned by New while another App is live.
	ErrAlreadyInitialized = errors.New("switch access already initialized")
	// ErrNotInitialized is returned when a closed App is used.
	ErrNotInitialized = errors.New("switch access not initialized")
	// ErrMissingDependency is returned by New when a required host port is nil.
	ErrMissingDependency = errors.New("missing dependency")
)

// InitError describes a failed construction or use of the App.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

var (
	liveMu sync.Mutex
	live   *App
)

// Deps are the host ports. Metrics and Journal may be nil.
type Deps struct {
	Tree      port.Tree
	Editor    port.TextEditor
	Surface   port.Surface
	Prefs     port.Preferences
	Scheduler port.Scheduler
	Metrics   port.Metrics
	Journal   port.ErrorJournal
}

// App holds the wired controllers. Its methods run on the main loop.
type App struct {
	tree     port.Tree
	prefs    port.Preferences
	reporter *navigation.Reporter
	closed   bool

	Mode       *scanmode.State
	Navigator  *navigation.ItemNavigator
	Actions    *action.Controller
	Point      *pointscan.Controller
	Text       *textnav.Controller
	AutoScan   *autoscan.Timer
	Dispatcher *dispatch.Dispatcher
}

// New constructs and wires every controller. It fails with
// ErrAlreadyInitialized until the previous App is closed.
func New(ctx context.Context, deps Deps) (*App, error) {
	ctx = logging.WithComponent(ctx, "app")
	log := logging.FromContext(ctx)

	if err := deps.validate(); err != nil {
		return nil, &InitError{Op: "new", Err: err}
	}

	liveMu.Lock()
	defer liveMu.Unlock()
	if live != nil {
		return nil, &InitError{Op: "new", Err: ErrAlreadyInitialized}
	}

	log.Debug().Msg("wiring switch access")

	metrics := deps.Metrics
	reporter := navigation.NewReporter(metrics, deps.Journal)
	mode := scanmode.New()

	nav := navigation.NewItemNavigator(ctx, navigation.Deps{
		Tree:      deps.Tree,
		Surface:   deps.Surface,
		Prefs:     deps.Prefs,
		Scheduler: deps.Scheduler,
		Mode:      mode,
		Reporter:  reporter,
	})
	actions := action.NewController(ctx, action.Deps{
		Navigator: nav,
		Tree:      deps.Tree,
		Surface:   deps.Surface,
		Prefs:     deps.Prefs,
		Scheduler: deps.Scheduler,
		Mode:      mode,
		Metrics:   metrics,
		Reporter:  reporter,
	})
	point := pointscan.New(ctx, deps.Surface, deps.Prefs, mode)
	text := textnav.New(ctx, deps.Tree, deps.Editor, deps.Surface, reporter)
	timer := autoscan.New(ctx, autoscan.Deps{
		Navigator: nav,
		Scheduler: deps.Scheduler,
		Prefs:     deps.Prefs,
		Mode:      mode,
		Metrics:   metrics,
	})

	nav.SetMenuHandler(actions)
	nav.SetTextActions(text)
	actions.SetPointScanner(point)
	point.SetMenuOpener(actions)

	dispatcher := dispatch.New(dispatch.Deps{
		Navigator: nav,
		Selector:  actions,
		Point:     point,
		AutoScan:  timer,
		Mode:      mode,
	})

	a := &App{
		tree:       deps.Tree,
		prefs:      deps.Prefs,
		reporter:   reporter,
		Mode:       mode,
		Navigator:  nav,
		Actions:    actions,
		Point:      point,
		Text:       text,
		AutoScan:   timer,
		Dispatcher: dispatcher,
	}
	live = a
	return a, nil
}

func (d Deps) validate() error {
	var missing []string
	if d.Tree == nil {
		missing = append(missing, "tree")
	}
	if d.Editor == nil {
		missing = append(missing, "editor")
	}
	if d.Surface == nil {
		missing = append(missing, "surface")
	}
	if d.Prefs == nil {
		missing = append(missing, "preferences")
	}
	if d.Scheduler == nil {
		missing = append(missing, "scheduler")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingDependency, missing)
	}
	return nil
}

// Start attaches the navigator to the tree and starts auto scanning when it
// is enabled.
func (a *App) Start(ctx context.Context) error {
	if a.closed {
		a.reporter.Report(ctx, entity.ErrorUninitialized, "start after close")
		return &InitError{Op: "start", Err: ErrNotInitialized}
	}
	if a.tree.Desktop() == nil {
		a.reporter.Report(ctx, entity.ErrorMissingBaseNode, "tree has no desktop")
		return &InitError{Op: "start", Err: errors.New("tree has no desktop")}
	}

	a.Navigator.Start(ctx)
	if a.prefs.AutoScanEnabled() {
		a.AutoScan.Start(ctx)
	}
	logging.FromContext(ctx).Info().
		Bool("auto_scan", a.AutoScan.IsRunning()).
		Msg("switch access started")
	return nil
}

// Dispatch runs one switch command.
func (a *App) Dispatch(ctx context.Context, cmd entity.Command) error {
	if a.closed {
		a.reporter.Report(ctx, entity.ErrorUninitialized, "command %s after close", cmd)
		return &InitError{Op: "dispatch", Err: ErrNotInitialized}
	}
	return a.Dispatcher.Dispatch(ctx, cmd)
}

// Close stops every controller and releases the single-instance guard.
func (a *App) Close(ctx context.Context) {
	if a.closed {
		return
	}
	a.closed = true

	a.AutoScan.Stop()
	if a.Mode.InPointScan() {
		a.Point.Stop(ctx)
	}
	a.Actions.ExitAllMenus(ctx)
	a.Text.ResetSelection(ctx)
	a.Navigator.Stop()

	liveMu.Lock()
	if live == a {
		live = nil
	}
	liveMu.Unlock()
	logging.FromContext(ctx).Debug().Msg("switch access closed")
}
