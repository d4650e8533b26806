package pointscan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/switchscan/internal/application/port/mocks"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/infrastructure/memtree"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/scanmode"
	"github.com/bnema/switchscan/internal/ui/mainloop/mainlooptest"
)

const screen = `
id: desktop
role: desktop
rect: [0, 0, 200, 100]
children:
  - id: field
    role: textField
    focusable: true
    editable: true
    rect: [10, 10, 100, 20]
`

type fakeMenu struct{ opened []entity.Point }

func (m *fakeMenu) OpenPointScanMenu(_ context.Context, pt entity.Point) {
	m.opened = append(m.opened, pt)
}

type fakePrefs struct{ speed time.Duration }

func (p *fakePrefs) AutoScanEnabled() bool                    { return false }
func (p *fakePrefs) AutoScanPrimarySpeed() time.Duration      { return 0 }
func (p *fakePrefs) AutoScanKeyboardSpeed() time.Duration     { return 0 }
func (p *fakePrefs) PointScanSpeed() time.Duration            { return p.speed }
func (p *fakePrefs) TextNavigationEnabled() bool              { return false }
func (p *fakePrefs) FocusRingColors() (string, string)        { return "", "" }
func (p *fakePrefs) KeyBindings() map[entity.Command][]string { return nil }
func (p *fakePrefs) OnChange(func())                          {}

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fixture struct {
	ctx   context.Context
	host  *memtree.Host
	sched *mainlooptest.Manual
	mode  *scanmode.State
	menu  *fakeMenu
	ctl   *Controller
}

func newFixture(t *testing.T, prefs *fakePrefs) *fixture {
	t.Helper()
	spec, err := memtree.Parse([]byte(screen))
	require.NoError(t, err)
	sched := mainlooptest.New()
	host, err := memtree.New(spec, sched.Post)
	require.NoError(t, err)

	f := &fixture{ctx: testContext(), host: host, sched: sched, mode: scanmode.New(), menu: &fakeMenu{}}
	f.ctl = New(f.ctx, host, prefs, f.mode)
	f.ctl.SetMenuOpener(f.menu)
	return f
}

func TestStart_SwitchesModeAndSweeps(t *testing.T) {
	f := newFixture(t, &fakePrefs{speed: 30 * time.Millisecond})

	f.ctl.Start(f.ctx)

	assert.True(t, f.mode.InPointScan())
	snap := f.host.Snapshot()
	assert.True(t, snap.PointScanning)
	assert.Equal(t, 30*time.Millisecond, snap.PointSpeed)
	assert.Empty(t, snap.Rings)
}

func TestStart_DefaultSpeed(t *testing.T) {
	f := newFixture(t, &fakePrefs{})

	f.ctl.Start(f.ctx)

	assert.Equal(t, DefaultSpeed, f.host.Snapshot().PointSpeed)
}

func TestChosenPointOpensMenu(t *testing.T) {
	f := newFixture(t, &fakePrefs{})
	f.ctl.Start(f.ctx)
	f.host.SetPointScanCursor(entity.Point{X: 20, Y: 15})

	f.ctl.Advance(f.ctx)
	f.ctl.Advance(f.ctx)
	f.sched.Drain()

	require.Equal(t, []entity.Point{{X: 20, Y: 15}}, f.menu.opened)
	pt, ok := f.ctl.Point()
	assert.True(t, ok)
	assert.Equal(t, entity.Point{X: 20, Y: 15}, pt)
}

func TestStoppedSweepDropsLatePoint(t *testing.T) {
	f := newFixture(t, &fakePrefs{})
	f.ctl.Start(f.ctx)
	f.ctl.Advance(f.ctx)
	f.ctl.Advance(f.ctx)

	f.ctl.Stop(f.ctx)
	f.sched.Drain()

	assert.Empty(t, f.menu.opened)
	assert.Equal(t, entity.ModeItemScan, f.mode.Mode())
}

func TestPerformMouseAction(t *testing.T) {
	tests := []struct {
		name    string
		action  entity.MenuAction
		wantLog string
		focused bool
	}{
		{name: "left click focuses", action: entity.ActionLeftClick, wantLog: "click:left:20,15", focused: true},
		{name: "right click", action: entity.ActionRightClick, wantLog: "click:right:20,15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &fakePrefs{})
			f.ctl.Start(f.ctx)
			f.host.SetPointScanCursor(entity.Point{X: 20, Y: 15})
			f.ctl.Advance(f.ctx)
			f.ctl.Advance(f.ctx)
			f.sched.Drain()

			f.ctl.PerformMouseAction(f.ctx, tt.action)

			assert.Contains(t, f.host.Log(), tt.wantLog)
			assert.Equal(t, tt.focused, f.host.Focused(f.ctx) != nil)
			assert.True(t, f.host.Snapshot().PointScanning, "scanning restarts after the click")
		})
	}
}

func TestPerformMouseAction_Rejected(t *testing.T) {
	t.Run("not a mouse action", func(t *testing.T) {
		f := newFixture(t, &fakePrefs{})
		f.ctl.onPoint(f.ctx, entity.Point{X: 1, Y: 1})

		f.ctl.PerformMouseAction(f.ctx, entity.ActionSelect)

		assert.NotContains(t, f.host.Log(), "click:left:1,1")
		assert.False(t, f.mode.InPointScan())
	})

	t.Run("no point yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		surface := mocks.NewMockSurface(ctrl)
		ctl := New(testContext(), surface, nil, scanmode.New())

		// No Click expectation: the mock fails the test if one happens.
		ctl.PerformMouseAction(testContext(), entity.ActionLeftClick)
	})
}

func TestPerformMouseAction_ClickErrorStillRestarts(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)
	mode := scanmode.New()
	ctl := New(testContext(), surface, nil, mode)
	ctl.onPoint(testContext(), entity.Point{X: 5, Y: 6})

	gomock.InOrder(
		surface.EXPECT().Click(gomock.Any(), entity.Point{X: 5, Y: 6}, entity.MouseRight).Return(errors.New("no pointer")),
		surface.EXPECT().HideFocusRings(gomock.Any()).Return(nil),
		surface.EXPECT().StartPointScan(gomock.Any(), DefaultSpeed, gomock.Any()).Return(nil),
	)

	ctl.PerformMouseAction(testContext(), entity.ActionRightClick)

	assert.True(t, mode.InPointScan())
}
