package entity

// EventType identifies a tree event delivered by the host.
type EventType int

const (
	EventFocus EventType = iota
	EventScrollPositionChanged
	EventChildrenChanged
	EventSubtreeUpdateEnd
	EventNodeRemoved
	EventTextSelectionChanged
)

func (t EventType) String() string {
	switch t {
	case EventFocus:
		return "focus"
	case EventScrollPositionChanged:
		return "scroll_position_changed"
	case EventChildrenChanged:
		return "children_changed"
	case EventSubtreeUpdateEnd:
		return "subtree_update_end"
	case EventNodeRemoved:
		return "node_removed"
	case EventTextSelectionChanged:
		return "text_selection_changed"
	default:
		return "unknown"
	}
}
