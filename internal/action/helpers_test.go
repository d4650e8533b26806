package action

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/infrastructure/memtree"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/navigation"
	"github.com/bnema/switchscan/internal/scanmode"
	"github.com/bnema/switchscan/internal/ui/mainloop/mainlooptest"
)

const menuTree = `
id: desktop
role: desktop
rect: [0, 0, 800, 600]
children:
  - id: vol
    role: slider
    rect: [10, 10, 200, 20]
  - id: ok
    role: button
    rect: [10, 50, 80, 20]
  - id: list
    role: list
    rect: [300, 0, 200, 300]
    scroll: {x: 0, x_max: 0, y: 0, y_max: 200}
    children:
      - {id: item1, role: button, rect: [300, 0, 200, 20]}
      - {id: item2, role: button, rect: [300, 30, 200, 20]}
  - id: entry
    role: textField
    editable: true
    focusable: true
    value: hello world
    rect: [10, 100, 200, 20]
`

type fakePrefs struct {
	textNavigation bool
}

func (p *fakePrefs) AutoScanEnabled() bool                    { return false }
func (p *fakePrefs) AutoScanPrimarySpeed() time.Duration      { return 0 }
func (p *fakePrefs) AutoScanKeyboardSpeed() time.Duration     { return 0 }
func (p *fakePrefs) PointScanSpeed() time.Duration            { return 0 }
func (p *fakePrefs) TextNavigationEnabled() bool              { return p.textNavigation }
func (p *fakePrefs) FocusRingColors() (string, string)        { return "", "" }
func (p *fakePrefs) KeyBindings() map[entity.Command][]string { return nil }
func (p *fakePrefs) OnChange(func())                          {}

type fakeMetrics struct {
	menus   []entity.MenuType
	actions []entity.MenuAction
	errors  []entity.ErrorType
}

func (m *fakeMetrics) RecordMenuOpened(menu entity.MenuType) { m.menus = append(m.menus, menu) }
func (m *fakeMetrics) RecordAction(a entity.MenuAction)      { m.actions = append(m.actions, a) }
func (m *fakeMetrics) RecordAutoScanTick()                   {}
func (m *fakeMetrics) RecordError(e entity.ErrorType)        { m.errors = append(m.errors, e) }

type fakePointScanner struct {
	mode    *scanmode.State
	starts  int
	stops   int
	clicked []entity.MenuAction
}

func (p *fakePointScanner) Start(context.Context) {
	p.starts++
	p.mode.Set(entity.ModePointScan)
}

func (p *fakePointScanner) Stop(context.Context) {
	p.stops++
	p.mode.Set(entity.ModeItemScan)
}

func (p *fakePointScanner) PerformMouseAction(_ context.Context, a entity.MenuAction) {
	p.clicked = append(p.clicked, a)
}

type fakeText struct{ resets int }

func (t *fakeText) ResetSelection(context.Context)                               { t.resets++ }
func (t *fakeText) StartSelection(context.Context, port.Node)                    {}
func (t *fakeText) EndSelection(context.Context, port.Node)                      {}
func (t *fakeText) Navigate(context.Context, port.Node, entity.MenuAction) error { return nil }
func (t *fakeText) Selecting() bool                                              { return false }

type fixture struct {
	ctx     context.Context
	host    *memtree.Host
	sched   *mainlooptest.Manual
	mode    *scanmode.State
	prefs   *fakePrefs
	metrics *fakeMetrics
	point   *fakePointScanner
	nav     *navigation.ItemNavigator
	ctl     *Controller
}

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// newFixture wires a navigator and controller over a memtree host. surface
// replaces the host's surface when non-nil.
func newFixture(t *testing.T, doc string, surface port.Surface) *fixture {
	t.Helper()

	spec, err := memtree.Parse([]byte(doc))
	require.NoError(t, err)
	sched := mainlooptest.New()
	host, err := memtree.New(spec, sched.Post)
	require.NoError(t, err)
	if surface == nil {
		surface = host
	}

	f := &fixture{
		ctx:     testContext(),
		host:    host,
		sched:   sched,
		mode:    scanmode.New(),
		prefs:   &fakePrefs{textNavigation: true},
		metrics: &fakeMetrics{},
	}
	f.point = &fakePointScanner{mode: f.mode}
	reporter := navigation.NewReporter(f.metrics, nil)

	f.nav = navigation.NewItemNavigator(f.ctx, navigation.Deps{
		Tree:      host,
		Surface:   surface,
		Prefs:     f.prefs,
		Scheduler: sched,
		Mode:      f.mode,
		Reporter:  reporter,
	})
	f.ctl = NewController(f.ctx, Deps{
		Navigator: f.nav,
		Tree:      host,
		Surface:   surface,
		Prefs:     f.prefs,
		Scheduler: sched,
		Mode:      f.mode,
		Metrics:   f.metrics,
		Reporter:  reporter,
	})
	f.ctl.SetPointScanner(f.point)
	f.nav.SetMenuHandler(f.ctl)
	f.nav.SetTextActions(&fakeText{})
	f.nav.Start(f.ctx)
	sched.Drain()
	t.Cleanup(f.nav.Stop)
	return f
}

// focus moves the navigator onto id inside the current group.
func (f *fixture) focus(t *testing.T, id entity.NodeID) {
	t.Helper()
	item := f.nav.CurrentGroup().FindChild(f.host.MustNode(id))
	require.NotNil(t, item, "no item for %s", id)
	f.nav.ForceFocusedNode(f.ctx, item)
}

// focusMenuItem moves focus onto the menu entry for a.
func (f *fixture) focusMenuItem(t *testing.T, a entity.MenuAction) {
	t.Helper()
	g := f.nav.CurrentGroup()
	require.True(t, g.IsMenu(), "focus is not in the menu")
	for _, c := range g.Children() {
		if item, ok := c.(*navigation.MenuItemNode); ok && item.Action() == a {
			f.nav.ForceFocusedNode(f.ctx, item)
			return
		}
	}
	t.Fatalf("menu has no %s item", a)
}

// selectMenuItem focuses the entry for a and selects it.
func (f *fixture) selectMenuItem(t *testing.T, a entity.MenuAction) {
	t.Helper()
	f.focusMenuItem(t, a)
	f.ctl.OnSelect(f.ctx)
	f.sched.Drain()
}

func (f *fixture) currentAction() entity.MenuAction {
	if item, ok := f.nav.CurrentNode().(*navigation.MenuItemNode); ok {
		return item.Action()
	}
	return ""
}

func (f *fixture) currentID() entity.NodeID {
	n := f.nav.CurrentNode()
	if n == nil || n.AutomationNode() == nil {
		return ""
	}
	return n.AutomationNode().ID()
}
