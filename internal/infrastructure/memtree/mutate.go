package memtree

import (
	"fmt"

	"github.com/bnema/switchscan/internal/domain/entity"
)

// The methods below change the tree the way a live application would and
// emit the matching events. Changes made through them are not attributed to
// the navigation core.

// FocusExternally moves host focus to id as if the user or the application
// did it.
func (h *Host) FocusExternally(id entity.NodeID) error {
	n := h.nodes[id]
	if n == nil || n.removed {
		return fmt.Errorf("focus %s: %w", id, ErrUnknownNode)
	}
	h.setFocus(n, false)
	return nil
}

// Remove detaches id and its subtree. The removed nodes keep their parent
// links so listeners can still inspect their ancestry.
func (h *Host) Remove(id entity.NodeID) error {
	n := h.nodes[id]
	if n == nil || n.removed {
		return fmt.Errorf("remove %s: %w", id, ErrUnknownNode)
	}
	if n.parent == nil {
		return fmt.Errorf("remove %s: cannot remove the desktop", id)
	}
	h.detach(n)
	return nil
}

func (h *Host) detach(n *Node) {
	parent := h.unlink(n)
	h.emit(entity.EventNodeRemoved, n, false)
	h.emit(entity.EventChildrenChanged, parent, false)
	h.emit(entity.EventSubtreeUpdateEnd, parent, false)
}

// unlink removes n from its parent without emitting events and returns the
// parent.
func (h *Host) unlink(n *Node) *Node {
	parent := n.parent
	for i, c := range parent.children {
		if c == n {
			parent.children = append(parent.children[:i:i], parent.children[i+1:]...)
			break
		}
	}
	n.markRemoved()
	h.forget(n)
	if h.focused != nil && h.focused.removed {
		h.focused = nil
	}
	return parent
}

func (h *Host) forget(n *Node) {
	delete(h.nodes, n.id)
	for _, c := range n.children {
		h.forget(c)
	}
}

// Insert adds spec as a child of parentID at index, or at the end when index
// is out of range.
func (h *Host) Insert(parentID entity.NodeID, spec Spec, index int) (*Node, error) {
	parent := h.nodes[parentID]
	if parent == nil || parent.removed {
		return nil, fmt.Errorf("insert under %s: %w", parentID, ErrUnknownNode)
	}
	seen := make(map[string]struct{}, len(h.nodes))
	for id := range h.nodes {
		seen[string(id)] = struct{}{}
	}
	if err := spec.validate(seen); err != nil {
		return nil, err
	}
	n := h.build(&spec, parent)
	h.attach(parent, n, index)
	return n, nil
}

func (h *Host) attach(parent, n *Node, index int) {
	if index < 0 || index >= len(parent.children) {
		parent.children = append(parent.children, n)
	} else {
		parent.children = append(parent.children[:index], append([]*Node{n}, parent.children[index:]...)...)
	}
	h.emit(entity.EventChildrenChanged, parent, false)
	h.emit(entity.EventSubtreeUpdateEnd, parent, false)
}

// SetLocation moves id. A nil rect clears the location.
func (h *Host) SetLocation(id entity.NodeID, rect *entity.Rect) error {
	n := h.nodes[id]
	if n == nil {
		return fmt.Errorf("set location %s: %w", id, ErrUnknownNode)
	}
	if rect == nil {
		n.hasRect = false
	} else {
		n.rect, n.hasRect = *rect, true
	}
	h.emit(entity.EventSubtreeUpdateEnd, n, false)
	return nil
}

// UpdateState applies fn to id's state flags.
func (h *Host) UpdateState(id entity.NodeID, fn func(*entity.NodeState)) error {
	n := h.nodes[id]
	if n == nil {
		return fmt.Errorf("update state %s: %w", id, ErrUnknownNode)
	}
	fn(&n.state)
	h.emit(entity.EventSubtreeUpdateEnd, n, false)
	return nil
}

// ScrollExternally sets id's vertical offset as if the user scrolled with a
// pointer.
func (h *Host) ScrollExternally(id entity.NodeID, y int) error {
	n := h.nodes[id]
	if n == nil || !n.scroll.Scrollable {
		return fmt.Errorf("scroll %s: %w", id, ErrUnknownNode)
	}
	n.scroll.Y = min(max(y, n.scroll.YMin), n.scroll.YMax)
	h.emit(entity.EventScrollPositionChanged, n, false)
	return nil
}

func (h *Host) syntheticID(prefix string) entity.NodeID {
	for {
		h.nextID++
		id := entity.NodeID(fmt.Sprintf("%s-%d", prefix, h.nextID))
		if _, taken := h.nodes[id]; !taken {
			return id
		}
	}
}
