// Package port defines the boundaries between the switch navigation core and
// its host: the accessibility tree service, the automation-privileged
// surface, the preference store, telemetry sinks and the event loop.
package port

import "github.com/bnema/switchscan/internal/domain/entity"

// Node is a read-only view of one host accessibility node.
// The core never mutates nodes; identity is compared through ID.
type Node interface {
	ID() entity.NodeID
	Role() entity.Role
	Name() string
	// Location returns the screen rectangle, or false when the node has none.
	Location() (entity.Rect, bool)
	State() entity.NodeState
	DefaultActionVerb() entity.DefaultActionVerb
	Scroll() entity.ScrollState
	// TextSelection returns the caret/selection offsets of an editable node.
	// Offsets are -1 when the host does not know them.
	TextSelection() (start, end int)
	// Parent returns nil for the desktop root.
	Parent() Node
	Children() []Node
	// Exists reports whether the host still has this node in its tree.
	// Removed nodes keep their last parent link so ancestry can still be
	// inspected while handling a removal event.
	Exists() bool
}

// Event is a tree event delivered by the host.
type Event struct {
	Type   entity.EventType
	Target Node
	// FromAction is true when the event was caused by an action the core
	// itself requested (focus(), scroll, default action).
	FromAction bool
}
