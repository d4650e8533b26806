package navigation

import (
	"time"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/domain/entity"
)

// AwaitNode calls found with the first node at or below root that matches.
// When nothing matches yet it retries on each children-changed or
// subtree-update event below root until timeout elapses, then calls missing.
// The returned func cancels the wait; found and missing never run after it.
func AwaitNode(
	tree port.Tree,
	sched port.Scheduler,
	root port.Node,
	match func(port.Node) bool,
	timeout time.Duration,
	found func(port.Node),
	missing func(),
) (cancel func()) {
	if hit := classify.FindDescendant(root, match); hit != nil {
		found(hit)
		return func() {}
	}

	w := &waiter{}
	w.unsubscribe = tree.Subscribe(root, []entity.EventType{
		entity.EventChildrenChanged,
		entity.EventSubtreeUpdateEnd,
	}, func(port.Event) {
		if w.done {
			return
		}
		if hit := classify.FindDescendant(root, match); hit != nil {
			w.finish()
			found(hit)
		}
	})
	w.timer = sched.AfterFunc(timeout, func() {
		if w.done {
			return
		}
		w.finish()
		if missing != nil {
			missing()
		}
	})
	return w.finish
}

type waiter struct {
	done        bool
	unsubscribe func()
	timer       port.Timer
}

func (w *waiter) finish() {
	if w.done {
		return
	}
	w.done = true
	if w.unsubscribe != nil {
		w.unsubscribe()
	}
	if w.timer != nil {
		w.timer.Stop()
	}
}
