// Package mainloop runs the navigation core on a single goroutine. Every tree
// event, timer tick and user command is a task on this loop, so controllers
// never need locks of their own.
package mainloop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/switchscan/internal/application/port"
)

// Loop is an unbounded FIFO of tasks drained by Run.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	stopped bool

	wake     chan struct{}
	quit     chan struct{}
	stopOnce sync.Once
	tickers  sync.WaitGroup
}

var _ port.Scheduler = (*Loop)(nil)

func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
}

// Run drains tasks until ctx is cancelled or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.drain()
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.quit:
			return nil
		case <-l.wake:
		}
	}
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 || l.stopped {
			l.mu.Unlock()
			return
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		fn()
	}
}

// Post queues fn. Tasks posted after Stop are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Call runs fn on the loop and waits for it. It must not be called from the
// loop goroutine. Returns false if the loop stopped before fn ran.
func (l *Loop) Call(fn func()) bool {
	done := make(chan struct{})
	l.Post(func() {
		fn()
		close(done)
	})
	select {
	case <-done:
		return true
	case <-l.quit:
		return false
	}
}

// Stop ends Run, drops queued tasks and waits for interval goroutines.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		l.stopped = true
		l.queue = nil
		l.mu.Unlock()
		close(l.quit)
	})
	l.tickers.Wait()
}

type loopTimer struct {
	stopped  atomic.Bool
	pending  atomic.Bool
	timer    *time.Timer
	done     chan struct{}
	stopOnce sync.Once
}

func (t *loopTimer) Stop() {
	t.stopOnce.Do(func() {
		t.stopped.Store(true)
		if t.timer != nil {
			t.timer.Stop()
		}
		if t.done != nil {
			close(t.done)
		}
	})
}

// AfterFunc runs fn on the loop once after d unless stopped first.
func (l *Loop) AfterFunc(d time.Duration, fn func()) port.Timer {
	lt := &loopTimer{}
	lt.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if lt.stopped.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return lt
}

// Every runs fn on the loop every d until stopped. Ticks that fall due while
// the previous one is still queued are skipped.
func (l *Loop) Every(d time.Duration, fn func()) port.Timer {
	lt := &loopTimer{done: make(chan struct{})}
	ticker := time.NewTicker(d)

	l.tickers.Add(1)
	go func() {
		defer l.tickers.Done()
		defer ticker.Stop()
		for {
			select {
			case <-lt.done:
				return
			case <-l.quit:
				return
			case <-ticker.C:
				// At most one tick waits in the queue; a stalled loop drops the rest.
				if !lt.pending.CompareAndSwap(false, true) {
					continue
				}
				l.Post(func() {
					lt.pending.Store(false)
					if !lt.stopped.Load() {
						fn()
					}
				})
			}
		}
	}()
	return lt
}
