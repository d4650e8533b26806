package port

import (
	"context"

	"github.com/bnema/switchscan/internal/domain/entity"
)

// Tree is the host accessibility tree service.
//
// All methods are called from the event loop goroutine. Replies and event
// handlers are delivered on that same goroutine, possibly after other
// events, so callers must revalidate any state captured before the call.
type Tree interface {
	// Desktop returns the root of the tree.
	Desktop() Node

	// Focused returns the node that currently holds host focus, or nil.
	Focused(ctx context.Context) Node

	// HitTest finds the deepest node at pt and delivers it to reply.
	// reply receives nil when nothing is hit.
	HitTest(ctx context.Context, pt entity.Point, reply func(Node))

	// Subscribe registers handler for events of the given types whose target
	// is root or one of its descendants. The returned func unsubscribes.
	Subscribe(root Node, types []entity.EventType, handler func(Event)) (unsubscribe func())

	// Focus asks the host to move input focus to n.
	Focus(ctx context.Context, n Node) error

	// DoDefault performs n's default action.
	DoDefault(ctx context.Context, n Node) error

	// Scroll scrolls n one page in the given direction.
	Scroll(ctx context.Context, n Node, dir entity.ScrollDirection) error

	// Increment and Decrement adjust a range control.
	Increment(ctx context.Context, n Node) error
	Decrement(ctx context.Context, n Node) error
}

// TextEditor commits text selections on the host.
type TextEditor interface {
	// SetSelection selects inside a single node from the anchor offset start
	// to the focus offset end. end precedes start for a backward selection.
	SetSelection(ctx context.Context, n Node, start, end int) error

	// SetDocumentSelection selects across nodes from an anchor to a focus position.
	SetDocumentSelection(ctx context.Context, anchor Node, anchorOffset int, focus Node, focusOffset int) error
}
