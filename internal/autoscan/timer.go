// Package autoscan advances item scanning on a fixed interval so a user with
// a single switch only has to select.
package autoscan

import (
	"context"
	"time"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/scanmode"
)

// Navigator is the part of the item navigator the timer drives.
type Navigator interface {
	MoveForward(ctx context.Context) error
	InKeyboard() bool
}

// Deps are the collaborators of a Timer.
type Deps struct {
	Navigator Navigator
	Scheduler port.Scheduler
	Prefs     port.Preferences
	Mode      *scanmode.State
	Metrics   port.Metrics
}

// Timer holds at most one live periodic timer.
type Timer struct {
	ctx     context.Context
	nav     Navigator
	sched   port.Scheduler
	prefs   port.Preferences
	mode    *scanmode.State
	metrics port.Metrics

	timer    port.Timer
	interval time.Duration
}

// New creates a stopped timer that follows preference and mode changes.
func New(ctx context.Context, deps Deps) *Timer {
	ctx = logging.WithComponent(ctx, "autoscan")
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating auto-scan timer")

	t := &Timer{
		ctx:     ctx,
		nav:     deps.Navigator,
		sched:   deps.Scheduler,
		prefs:   deps.Prefs,
		mode:    deps.Mode,
		metrics: deps.Metrics,
	}
	if t.prefs != nil {
		t.prefs.OnChange(func() { t.Sync(t.ctx) })
	}
	if t.mode != nil {
		t.mode.OnChange(func(entity.ScanMode) { t.Sync(t.ctx) })
	}
	return t
}

// IsRunning reports whether a timer is live.
func (t *Timer) IsRunning() bool {
	return t.timer != nil
}

// Interval returns the interval of the live timer, or zero.
func (t *Timer) Interval() time.Duration {
	if t.timer == nil {
		return 0
	}
	return t.interval
}

// Start begins scanning. It does nothing when already running, in point
// scan, or with no primary interval configured.
func (t *Timer) Start(ctx context.Context) {
	log := logging.FromContext(ctx)

	if t.timer != nil {
		return
	}
	if t.mode != nil && t.mode.InPointScan() {
		log.Debug().Msg("auto-scan not started in point scan")
		return
	}
	interval := t.desiredInterval()
	if interval <= 0 {
		log.Debug().Msg("auto-scan interval not configured")
		return
	}

	t.interval = interval
	t.timer = t.sched.Every(interval, t.tick)
	log.Debug().Dur("interval", interval).Msg("auto-scan started")
}

// Stop cancels the live timer, if any.
func (t *Timer) Stop() {
	if t.timer == nil {
		return
	}
	t.timer.Stop()
	t.timer = nil
	t.interval = 0
}

// RestartIfRunning starts a fresh period, so a manual command is followed by
// a full interval before the next automatic move.
func (t *Timer) RestartIfRunning(ctx context.Context) {
	if t.timer == nil {
		return
	}
	t.Stop()
	t.Start(ctx)
}

// Sync starts or stops the timer to match the enabled preference and mode,
// picking up a changed interval.
func (t *Timer) Sync(ctx context.Context) {
	enabled := t.prefs != nil && t.prefs.AutoScanEnabled()
	if !enabled || (t.mode != nil && t.mode.InPointScan()) {
		t.Stop()
		return
	}
	if t.timer != nil && t.interval == t.desiredInterval() {
		return
	}
	t.Stop()
	t.Start(ctx)
}

func (t *Timer) tick() {
	if t.mode != nil && t.mode.InPointScan() {
		t.Stop()
		return
	}
	if t.metrics != nil {
		t.metrics.RecordAutoScanTick()
	}
	if err := t.nav.MoveForward(t.ctx); err != nil {
		logging.FromContext(t.ctx).Warn().Err(err).Msg("auto-scan move failed")
	}
	// Entering or leaving the keyboard can change the interval.
	if t.timer != nil && t.desiredInterval() != t.interval {
		t.Stop()
		t.Start(t.ctx)
	}
}

// desiredInterval is the keyboard interval inside the virtual keyboard when
// set, else the primary interval. Zero means unset.
func (t *Timer) desiredInterval() time.Duration {
	if t.prefs == nil {
		return 0
	}
	primary := t.prefs.AutoScanPrimarySpeed()
	if primary <= 0 {
		return 0
	}
	if t.nav != nil && t.nav.InKeyboard() {
		if kb := t.prefs.AutoScanKeyboardSpeed(); kb > 0 {
			return kb
		}
	}
	return primary
}
