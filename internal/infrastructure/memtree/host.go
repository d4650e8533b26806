// Package memtree is an in-memory accessibility host. It serves a tree loaded
// from a YAML snapshot through the same ports a real host exposes, delivers
// tree events through the main loop, and simulates the automation surface.
//
// A Host is not safe for concurrent use. All calls must happen on the loop
// goroutine that runs its posted tasks.
package memtree

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/domain/entity"
)

var (
	ErrUnknownNode = errors.New("unknown node")
	ErrRemovedNode = errors.New("node was removed")
)

// ScrollPage is how far one scroll action moves.
const ScrollPage = 100

type subscription struct {
	root    *Node
	types   map[entity.EventType]struct{}
	handler func(port.Event)
	active  bool
}

// Host owns one tree and implements port.Tree, port.TextEditor and
// port.Surface over it.
type Host struct {
	post func(func())

	root    *Node
	nodes   map[entity.NodeID]*Node
	focused *Node
	subs    []*subscription
	reads   atomic.Int64
	nextID  int

	surface surfaceState
	log     []string
}

var (
	_ port.Tree       = (*Host)(nil)
	_ port.TextEditor = (*Host)(nil)
	_ port.Surface    = (*Host)(nil)
)

// New builds a host from spec. post queues work on the main loop; events and
// hit-test replies are always delivered through it.
func New(spec *Spec, post func(func())) (*Host, error) {
	if spec == nil {
		return nil, errors.New("memtree: nil snapshot")
	}
	if post == nil {
		return nil, errors.New("memtree: nil post func")
	}
	if entity.Role(spec.Role) != entity.RoleDesktop {
		return nil, fmt.Errorf("memtree: root %q must have role desktop, got %q", spec.ID, spec.Role)
	}
	h := &Host{
		post:  post,
		nodes: make(map[entity.NodeID]*Node),
	}
	h.root = h.build(spec, nil)
	return h, nil
}

func (h *Host) read() {
	h.reads.Add(1)
}

// Reads returns how many node accessors were called since the last reset.
func (h *Host) Reads() int64 {
	return h.reads.Load()
}

// ResetReads zeroes the read counter.
func (h *Host) ResetReads() {
	h.reads.Store(0)
}

// Node returns the node with id, or nil.
func (h *Host) Node(id entity.NodeID) *Node {
	return h.nodes[id]
}

// MustNode returns the node with id and panics when it is missing.
func (h *Host) MustNode(id entity.NodeID) *Node {
	n := h.nodes[id]
	if n == nil {
		panic(fmt.Sprintf("memtree: no node %q", id))
	}
	return n
}

// Log returns the host calls recorded so far, such as "focus:ok".
func (h *Host) Log() []string {
	return append([]string(nil), h.log...)
}

func (h *Host) record(format string, args ...any) {
	h.log = append(h.log, fmt.Sprintf(format, args...))
}

func (h *Host) Desktop() port.Node {
	return h.root
}

func (h *Host) Focused(context.Context) port.Node {
	if h.focused == nil || h.focused.removed {
		return nil
	}
	return h.focused
}

// HitTest delivers the deepest visible node containing pt. Later siblings are
// treated as drawn above earlier ones.
func (h *Host) HitTest(_ context.Context, pt entity.Point, reply func(port.Node)) {
	hit := hitTest(h.root, pt)
	h.post(func() {
		if hit == nil {
			reply(nil)
			return
		}
		reply(hit)
	})
}

func hitTest(n *Node, pt entity.Point) *Node {
	if n.removed || n.state.Invisible || n.state.Offscreen {
		return nil
	}
	if n.hasRect && !n.rect.Contains(pt) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitTest(n.children[i], pt); hit != nil {
			return hit
		}
	}
	if !n.hasRect {
		return nil
	}
	return n
}

func (h *Host) Subscribe(root port.Node, types []entity.EventType, handler func(port.Event)) func() {
	r, ok := h.own(root)
	if !ok {
		return func() {}
	}
	sub := &subscription{
		root:    r,
		types:   make(map[entity.EventType]struct{}, len(types)),
		handler: handler,
		active:  true,
	}
	for _, t := range types {
		sub.types[t] = struct{}{}
	}
	h.subs = append(h.subs, sub)
	return func() {
		sub.active = false
		h.compactSubs()
	}
}

func (h *Host) compactSubs() {
	live := h.subs[:0]
	for _, s := range h.subs {
		if s.active {
			live = append(live, s)
		}
	}
	h.subs = live
}

// Subscribers returns the number of live subscriptions.
func (h *Host) Subscribers() int {
	return len(h.subs)
}

func (h *Host) own(n port.Node) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	mn, ok := n.(*Node)
	if !ok || mn.host != h {
		return nil, false
	}
	return mn, true
}

// emit posts one event to every matching subscription. Subscriptions are
// matched when the event is emitted and checked again on delivery.
func (h *Host) emit(t entity.EventType, target *Node, fromAction bool) {
	evt := port.Event{Type: t, Target: target, FromAction: fromAction}
	for _, s := range h.subs {
		if !s.active {
			continue
		}
		if _, ok := s.types[t]; !ok {
			continue
		}
		if !s.root.isAncestorOrSelf(target) {
			continue
		}
		sub := s
		h.post(func() {
			if sub.active {
				sub.handler(evt)
			}
		})
	}
}

func (h *Host) Focus(_ context.Context, n port.Node) error {
	mn, err := h.live(n)
	if err != nil {
		return err
	}
	h.record("focus:%s", mn.id)
	h.setFocus(mn, true)
	return nil
}

func (h *Host) setFocus(n *Node, fromAction bool) {
	if h.focused == n {
		return
	}
	if h.focused != nil {
		h.focused.state.Focused = false
	}
	h.focused = n
	n.state.Focused = true
	h.emit(entity.EventFocus, n, fromAction)
}

func (h *Host) DoDefault(_ context.Context, n port.Node) error {
	mn, err := h.live(n)
	if err != nil {
		return err
	}
	h.record("default:%s", mn.id)
	if mn.parent != nil && mn.parent.role == entity.RoleKeyboard {
		h.typeKey(mn)
		return nil
	}
	if mn.state.Focusable {
		h.setFocus(mn, true)
	}
	return nil
}

func (h *Host) Scroll(_ context.Context, n port.Node, dir entity.ScrollDirection) error {
	mn, err := h.live(n)
	if err != nil {
		return err
	}
	if !mn.scroll.Scrollable {
		return fmt.Errorf("scroll %s: not scrollable", mn.id)
	}
	s := &mn.scroll
	switch dir {
	case entity.ScrollUp:
		s.Y = max(s.YMin, s.Y-ScrollPage)
	case entity.ScrollDown:
		s.Y = min(s.YMax, s.Y+ScrollPage)
	case entity.ScrollLeft:
		s.X = max(s.XMin, s.X-ScrollPage)
	case entity.ScrollRight:
		s.X = min(s.XMax, s.X+ScrollPage)
	}
	h.record("scroll:%s:%d,%d", mn.id, s.X, s.Y)
	h.emit(entity.EventScrollPositionChanged, mn, true)
	return nil
}

func (h *Host) Increment(_ context.Context, n port.Node) error {
	mn, err := h.live(n)
	if err != nil {
		return err
	}
	h.record("increment:%s", mn.id)
	return nil
}

func (h *Host) Decrement(_ context.Context, n port.Node) error {
	mn, err := h.live(n)
	if err != nil {
		return err
	}
	h.record("decrement:%s", mn.id)
	return nil
}

func (h *Host) SetSelection(_ context.Context, n port.Node, start, end int) error {
	mn, err := h.live(n)
	if err != nil {
		return err
	}
	if start < 0 || end < 0 || start > len(mn.value) || end > len(mn.value) {
		return fmt.Errorf("selection %d-%d out of range for %s", start, end, mn.id)
	}
	mn.selStart, mn.selEnd = start, end
	h.record("select:%s:%d-%d", mn.id, start, end)
	return nil
}

func (h *Host) SetDocumentSelection(_ context.Context, anchor port.Node, anchorOffset int, focus port.Node, focusOffset int) error {
	a, err := h.live(anchor)
	if err != nil {
		return err
	}
	f, err := h.live(focus)
	if err != nil {
		return err
	}
	h.record("select_document:%s:%d-%s:%d", a.id, anchorOffset, f.id, focusOffset)
	return nil
}

func (h *Host) live(n port.Node) (*Node, error) {
	mn, ok := h.own(n)
	if !ok {
		return nil, ErrUnknownNode
	}
	if mn.removed {
		return nil, fmt.Errorf("%s: %w", mn.id, ErrRemovedNode)
	}
	return mn, nil
}
