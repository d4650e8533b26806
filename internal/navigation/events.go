package navigation

import (
	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
)

// onFocusEvent follows host focus changes the user made outside switch
// scanning.
func (n *ItemNavigator) onFocusEvent(evt port.Event) {
	log := logging.FromContext(n.ctx)

	switch {
	case n.mode != nil && n.mode.InPointScan():
		return
	case evt.FromAction:
		return
	case n.suppressFocus:
		log.Debug().Msg("focus event suppressed while keyboard opens")
		return
	case n.menu != nil && n.menu.IsMenuOpen():
		return
	}
	if evt.Target == nil || !evt.Target.Exists() {
		return
	}
	if !n.moveTo(n.ctx, evt.Target) {
		log.Debug().Str("node", string(evt.Target.ID())).Msg("focused node has no interesting path")
	}
}

func (n *ItemNavigator) onScrollEvent(evt port.Event) {
	if !n.affectsGroup(evt.Target) {
		return
	}
	n.coalescer.Post(scrollRefreshKey, n.refreshInPlace)
}

func (n *ItemNavigator) onTreeChange(evt port.Event) {
	if !n.affectsGroup(evt.Target) && !n.affectsNode(evt.Target) {
		return
	}
	// Menu relayouts only matter once focus is inside the menu.
	if (n.group == nil || !n.group.IsMenu()) && classify.FindAncestor(evt.Target, isMenuOverlay) != nil {
		return
	}
	if evt.Type == entity.EventNodeRemoved {
		n.MoveToValidNode(n.ctx)
		return
	}
	n.refreshInPlace()
}

// affectsGroup reports whether target is the current group's root, inside it
// or one of its ancestors.
func (n *ItemNavigator) affectsGroup(target port.Node) bool {
	if n.group == nil || target == nil {
		return false
	}
	root := n.group.node
	return classify.SameNode(target, root) ||
		classify.IsDescendantOf(target, root) ||
		classify.IsDescendantOf(root, target)
}

func (n *ItemNavigator) affectsNode(target port.Node) bool {
	if n.node == nil || target == nil {
		return false
	}
	auto := n.node.AutomationNode()
	return auto != nil && (classify.SameNode(target, auto) || classify.IsDescendantOf(auto, target))
}

// refreshInPlace recomputes the group's children and repaints without
// touching history.
func (n *ItemNavigator) refreshInPlace() {
	if n.group == nil {
		return
	}
	n.group.RefreshChildren()
	if n.node != nil {
		if eq := n.group.FindEquivalent(n.node); eq != nil && eq.IsValidAndVisible() {
			n.node = eq
			n.rings.paint(n.ctx)
			return
		}
	}
	n.MoveToValidNode(n.ctx)
}
