package navigation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/infrastructure/memtree"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/scanmode"
	"github.com/bnema/switchscan/internal/ui/mainloop/mainlooptest"
)

const basicTree = `
id: desktop
role: desktop
rect: [0, 0, 800, 600]
children:
  - id: groupA
    role: group
    rect: [0, 0, 400, 300]
    children:
      - id: button1
        role: button
        rect: [10, 10, 80, 20]
      - id: button2
        role: button
        rect: [100, 10, 80, 20]
  - id: other
    role: button
    rect: [500, 10, 80, 20]
  - id: field
    role: textField
    editable: true
    focusable: true
    value: hello world
    rect: [500, 100, 200, 20]
`

type fakePrefs struct {
	textNavigation bool
	primaryColor   string
	previewColor   string
}

func (p *fakePrefs) AutoScanEnabled() bool                    { return false }
func (p *fakePrefs) AutoScanPrimarySpeed() time.Duration      { return 0 }
func (p *fakePrefs) AutoScanKeyboardSpeed() time.Duration     { return 0 }
func (p *fakePrefs) PointScanSpeed() time.Duration            { return 0 }
func (p *fakePrefs) TextNavigationEnabled() bool              { return p.textNavigation }
func (p *fakePrefs) FocusRingColors() (string, string)        { return p.primaryColor, p.previewColor }
func (p *fakePrefs) KeyBindings() map[entity.Command][]string { return nil }
func (p *fakePrefs) OnChange(func())                          {}

type fakeMetrics struct {
	errors []entity.ErrorType
}

func (m *fakeMetrics) RecordMenuOpened(entity.MenuType)     {}
func (m *fakeMetrics) RecordAction(entity.MenuAction)       {}
func (m *fakeMetrics) RecordAutoScanTick()                  {}
func (m *fakeMetrics) RecordError(errType entity.ErrorType) { m.errors = append(m.errors, errType) }

func (m *fakeMetrics) count(errType entity.ErrorType) int {
	n := 0
	for _, e := range m.errors {
		if e == errType {
			n++
		}
	}
	return n
}

type fakeMenu struct {
	open      bool
	performed []entity.MenuAction
	exitAll   int
	exitOne   int
}

func (m *fakeMenu) PerformAction(_ context.Context, a entity.MenuAction) {
	m.performed = append(m.performed, a)
}
func (m *fakeMenu) ExitCurrentMenu(context.Context) { m.exitOne++ }
func (m *fakeMenu) ExitAllMenus(context.Context) {
	m.exitAll++
	m.open = false
}
func (m *fakeMenu) IsMenuOpen() bool { return m.open }

type fixture struct {
	ctx     context.Context
	host    *memtree.Host
	sched   *mainlooptest.Manual
	mode    *scanmode.State
	prefs   *fakePrefs
	metrics *fakeMetrics
	menu    *fakeMenu
	nav     *ItemNavigator
}

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newFixture(t *testing.T, doc string) *fixture {
	t.Helper()

	spec, err := memtree.Parse([]byte(doc))
	require.NoError(t, err)
	sched := mainlooptest.New()
	host, err := memtree.New(spec, sched.Post)
	require.NoError(t, err)

	f := &fixture{
		ctx:     testContext(),
		host:    host,
		sched:   sched,
		mode:    scanmode.New(),
		prefs:   &fakePrefs{textNavigation: true, primaryColor: "#FF0000", previewColor: "#00FF00"},
		metrics: &fakeMetrics{},
		menu:    &fakeMenu{},
	}
	f.nav = NewItemNavigator(f.ctx, Deps{
		Tree:      host,
		Surface:   host,
		Prefs:     f.prefs,
		Scheduler: sched,
		Mode:      f.mode,
		Reporter:  NewReporter(f.metrics, nil),
	})
	f.nav.SetMenuHandler(f.menu)
	f.nav.Start(f.ctx)
	sched.Drain()
	t.Cleanup(f.nav.Stop)
	return f
}

func (f *fixture) currentID() entity.NodeID {
	n := f.nav.CurrentNode()
	if n == nil || n.AutomationNode() == nil {
		return ""
	}
	return n.AutomationNode().ID()
}

func (f *fixture) groupID() entity.NodeID {
	if f.nav.CurrentGroup() == nil {
		return ""
	}
	return f.nav.CurrentGroup().AutomationNode().ID()
}
