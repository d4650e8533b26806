package autoscan

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/scanmode"
	"github.com/bnema/switchscan/internal/ui/mainloop"
	"github.com/bnema/switchscan/internal/ui/mainloop/mainlooptest"
)

type fakeNav struct {
	moves      atomic.Int32
	inKeyboard bool
	err        error
}

func (n *fakeNav) MoveForward(context.Context) error {
	n.moves.Add(1)
	return n.err
}

func (n *fakeNav) InKeyboard() bool { return n.inKeyboard }

type fakePrefs struct {
	enabled  bool
	primary  time.Duration
	keyboard time.Duration
	onChange []func()
}

func (p *fakePrefs) AutoScanEnabled() bool                    { return p.enabled }
func (p *fakePrefs) AutoScanPrimarySpeed() time.Duration      { return p.primary }
func (p *fakePrefs) AutoScanKeyboardSpeed() time.Duration     { return p.keyboard }
func (p *fakePrefs) PointScanSpeed() time.Duration            { return 0 }
func (p *fakePrefs) TextNavigationEnabled() bool              { return false }
func (p *fakePrefs) FocusRingColors() (string, string)        { return "", "" }
func (p *fakePrefs) KeyBindings() map[entity.Command][]string { return nil }
func (p *fakePrefs) OnChange(fn func())                       { p.onChange = append(p.onChange, fn) }

func (p *fakePrefs) changed() {
	for _, fn := range p.onChange {
		fn()
	}
}

type fakeMetrics struct{ ticks int }

func (m *fakeMetrics) RecordMenuOpened(entity.MenuType) {}
func (m *fakeMetrics) RecordAction(entity.MenuAction)   {}
func (m *fakeMetrics) RecordAutoScanTick()              { m.ticks++ }
func (m *fakeMetrics) RecordError(entity.ErrorType)     {}

type fixture struct {
	ctx     context.Context
	sched   *mainlooptest.Manual
	nav     *fakeNav
	prefs   *fakePrefs
	mode    *scanmode.State
	metrics *fakeMetrics
	timer   *Timer
}

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newFixture() *fixture {
	f := &fixture{
		ctx:     testContext(),
		sched:   mainlooptest.New(),
		nav:     &fakeNav{},
		prefs:   &fakePrefs{enabled: true, primary: time.Second},
		mode:    scanmode.New(),
		metrics: &fakeMetrics{},
	}
	f.timer = New(f.ctx, Deps{
		Navigator: f.nav,
		Scheduler: f.sched,
		Prefs:     f.prefs,
		Mode:      f.mode,
		Metrics:   f.metrics,
	})
	return f
}

func TestStart_SingleFlight(t *testing.T) {
	f := newFixture()

	for i := 0; i < 5; i++ {
		f.timer.Start(f.ctx)
	}

	assert.Equal(t, 1, f.sched.LivePeriodic())
	f.sched.Advance(3 * time.Second)
	assert.Equal(t, int32(3), f.nav.moves.Load())
	assert.Equal(t, 3, f.metrics.ticks)
}

func TestStart_NoOp(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{name: "primary interval unset", setup: func(f *fixture) { f.prefs.primary = 0 }},
		{name: "point scan", setup: func(f *fixture) { f.mode.Set(entity.ModePointScan) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			f.timer.Start(f.ctx)

			assert.False(t, f.timer.IsRunning())
			assert.Zero(t, f.sched.LivePeriodic())
		})
	}
}

func TestKeyboardInterval(t *testing.T) {
	tests := []struct {
		name       string
		keyboard   time.Duration
		inKeyboard bool
		want       time.Duration
	}{
		{name: "outside keyboard", keyboard: 2 * time.Second, want: time.Second},
		{name: "inside keyboard", keyboard: 2 * time.Second, inKeyboard: true, want: 2 * time.Second},
		{name: "keyboard interval unset", inKeyboard: true, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.prefs.keyboard = tt.keyboard
			f.nav.inKeyboard = tt.inKeyboard

			f.timer.Start(f.ctx)

			assert.Equal(t, tt.want, f.timer.Interval())
		})
	}
}

func TestTick_SwitchesIntervalWhenEnteringKeyboard(t *testing.T) {
	f := newFixture()
	f.prefs.keyboard = 3 * time.Second
	f.timer.Start(f.ctx)

	f.nav.inKeyboard = true
	f.sched.Advance(time.Second)

	assert.Equal(t, 3*time.Second, f.timer.Interval())
	assert.Equal(t, 1, f.sched.LivePeriodic())
	f.sched.Advance(2 * time.Second)
	assert.Equal(t, int32(1), f.nav.moves.Load())
	f.sched.Advance(time.Second)
	assert.Equal(t, int32(2), f.nav.moves.Load())
}

func TestTick_StopsInPointScan(t *testing.T) {
	f := newFixture()
	f.timer.Start(f.ctx)

	// Bypass the mode listener to reach the tick path.
	f.timer.mode = scanmode.New()
	f.timer.mode.Set(entity.ModePointScan)
	f.sched.Advance(time.Second)

	assert.False(t, f.timer.IsRunning())
	assert.Zero(t, f.nav.moves.Load())
	assert.Zero(t, f.sched.LivePeriodic())
}

func TestTick_MoveErrorKeepsRunning(t *testing.T) {
	f := newFixture()
	f.nav.err = errors.New("window has no location")
	f.timer.Start(f.ctx)

	f.sched.Advance(2 * time.Second)

	assert.True(t, f.timer.IsRunning())
	assert.Equal(t, int32(2), f.nav.moves.Load())
}

func TestRestartIfRunning(t *testing.T) {
	f := newFixture()

	f.timer.RestartIfRunning(f.ctx)
	assert.False(t, f.timer.IsRunning(), "restart does not start a stopped timer")

	f.timer.Start(f.ctx)
	f.sched.Advance(900 * time.Millisecond)
	f.timer.RestartIfRunning(f.ctx)
	f.sched.Advance(900 * time.Millisecond)

	assert.Zero(t, f.nav.moves.Load(), "a restart begins a full period")
	assert.Equal(t, 1, f.sched.LivePeriodic())
}

func TestSync_FollowsPreferencesAndMode(t *testing.T) {
	f := newFixture()
	f.timer.Sync(f.ctx)
	require.True(t, f.timer.IsRunning())

	f.prefs.primary = 2 * time.Second
	f.prefs.changed()
	assert.Equal(t, 2*time.Second, f.timer.Interval())
	assert.Equal(t, 1, f.sched.LivePeriodic())

	f.mode.Set(entity.ModePointScan)
	assert.False(t, f.timer.IsRunning())

	f.mode.Set(entity.ModeItemScan)
	assert.True(t, f.timer.IsRunning())

	f.prefs.enabled = false
	f.prefs.changed()
	assert.False(t, f.timer.IsRunning())
	assert.Zero(t, f.sched.LivePeriodic())
}

func TestTimer_NoGoroutineLeakOnRealLoop(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	loop := mainloop.New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = loop.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	nav := &fakeNav{}
	prefs := &fakePrefs{enabled: true, primary: 5 * time.Millisecond}
	var timer *Timer
	require.True(t, loop.Call(func() {
		timer = New(testContext(), Deps{Navigator: nav, Scheduler: loop, Prefs: prefs, Mode: scanmode.New()})
		timer.Start(testContext())
		timer.Start(testContext())
	}))

	require.Eventually(t, func() bool { return nav.moves.Load() >= 3 }, time.Second, time.Millisecond)
	require.True(t, loop.Call(timer.Stop))

	stopped := nav.moves.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, nav.moves.Load())
}
