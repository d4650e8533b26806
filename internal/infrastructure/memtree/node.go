package memtree

import (
	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/domain/entity"
)

// Node is one node of an in-memory accessibility tree. Every accessor except
// ID counts as a tree read on the owning Host.
type Node struct {
	host *Host

	id       entity.NodeID
	role     entity.Role
	name     string
	rect     entity.Rect
	hasRect  bool
	state    entity.NodeState
	verb     entity.DefaultActionVerb
	scroll   entity.ScrollState
	value    string
	selStart int
	selEnd   int

	parent   *Node
	children []*Node
	removed  bool
}

var _ port.Node = (*Node)(nil)

func (n *Node) ID() entity.NodeID { return n.id }

func (n *Node) Role() entity.Role {
	n.host.read()
	return n.role
}

func (n *Node) Name() string {
	n.host.read()
	return n.name
}

func (n *Node) Location() (entity.Rect, bool) {
	n.host.read()
	if !n.hasRect || n.removed {
		return entity.Rect{}, false
	}
	return n.rect, true
}

func (n *Node) State() entity.NodeState {
	n.host.read()
	return n.state
}

func (n *Node) DefaultActionVerb() entity.DefaultActionVerb {
	n.host.read()
	return n.verb
}

func (n *Node) Scroll() entity.ScrollState {
	n.host.read()
	return n.scroll
}

func (n *Node) TextSelection() (start, end int) {
	n.host.read()
	if !n.state.Editable {
		return -1, -1
	}
	return n.selStart, n.selEnd
}

// Value returns the text content of an editable node.
func (n *Node) Value() string {
	return n.value
}

// Parent returns nil for the root. The nil must be untyped so callers can
// compare the interface against nil.
func (n *Node) Parent() port.Node {
	n.host.read()
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Children() []port.Node {
	n.host.read()
	if n.removed {
		return nil
	}
	out := make([]port.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *Node) Exists() bool {
	n.host.read()
	return !n.removed
}

func (n *Node) String() string {
	return string(n.role) + "#" + string(n.id)
}

func (n *Node) isAncestorOrSelf(of *Node) bool {
	for p := of; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) markRemoved() {
	n.removed = true
	for _, c := range n.children {
		c.markRemoved()
	}
}
