// Package mainlooptest provides a deterministic scheduler for tests of code
// that runs on the main loop.
package mainlooptest

import (
	"sort"
	"time"

	"github.com/bnema/switchscan/internal/application/port"
)

// Manual is a port.Scheduler driven by the test. Posted tasks run on Drain and
// timers fire when Advance moves the virtual clock past their deadline.
type Manual struct {
	now    time.Duration
	queue  []func()
	timers []*manualTimer
	seq    int
}

var _ port.Scheduler = (*Manual)(nil)

func New() *Manual {
	return &Manual{}
}

type manualTimer struct {
	at       time.Duration
	every    time.Duration
	fn       func()
	stopped  bool
	order    int
	periodic bool
}

func (t *manualTimer) Stop() {
	t.stopped = true
}

// Post queues fn until the next Drain.
func (m *Manual) Post(fn func()) {
	m.queue = append(m.queue, fn)
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) port.Timer {
	return m.add(d, fn, false)
}

func (m *Manual) Every(d time.Duration, fn func()) port.Timer {
	return m.add(d, fn, true)
}

func (m *Manual) add(d time.Duration, fn func(), periodic bool) *manualTimer {
	m.seq++
	t := &manualTimer{at: m.now + d, every: d, fn: fn, order: m.seq, periodic: periodic}
	m.timers = append(m.timers, t)
	return t
}

// Drain runs queued tasks, including tasks they post, until the queue is empty.
func (m *Manual) Drain() {
	for len(m.queue) > 0 {
		fn := m.queue[0]
		m.queue = m.queue[1:]
		fn()
	}
}

// Pending returns the number of queued tasks.
func (m *Manual) Pending() int {
	return len(m.queue)
}

// Advance moves the clock forward by d, firing due timers in deadline order
// and draining the queue after each one.
func (m *Manual) Advance(d time.Duration) {
	m.Drain()
	target := m.now + d
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.now = t.at
		if t.periodic {
			t.at += t.every
		} else {
			t.stopped = true
		}
		t.fn()
		m.Drain()
	}
	m.now = target
	m.compact()
}

func (m *Manual) nextDue(target time.Duration) *manualTimer {
	var due []*manualTimer
	for _, t := range m.timers {
		if !t.stopped && t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].order < due[j].order
		}
		return due[i].at < due[j].at
	})
	return due[0]
}

func (m *Manual) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.timers = live
}

// LiveTimers returns how many timers are scheduled and not stopped.
func (m *Manual) LiveTimers() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// LivePeriodic returns how many Every timers are running.
func (m *Manual) LivePeriodic() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped && t.periodic {
			n++
		}
	}
	return n
}

// Now returns the virtual time elapsed since New.
func (m *Manual) Now() time.Duration {
	return m.now
}
