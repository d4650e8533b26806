package navigation

import (
	"context"
	"fmt"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/domain/entity"
)

// FocusNode is one item the user can focus inside a group.
type FocusNode interface {
	// AutomationNode returns the backing host node, or nil for synthetic items.
	AutomationNode() port.Node
	// Actions lists the actions legal on this item, in display order.
	Actions() []entity.MenuAction
	Location() (entity.Rect, bool)
	IsGroup() bool
	// AsGroup builds the group this item opens, or nil for leaves.
	AsGroup() *GroupNode
	// IsEquivalentTo reports whether both items stand for the same thing,
	// even when one was rebuilt after a tree refresh.
	IsEquivalentTo(other FocusNode) bool
	IsValidAndVisible() bool
	PerformAction(ctx context.Context, action entity.MenuAction) entity.ActionResponse
	String() string
}

// BasicNode wraps one interesting host node.
type BasicNode struct {
	nav   *ItemNavigator
	node  port.Node
	group bool
}

func newBasicNode(nav *ItemNavigator, node port.Node, group bool) *BasicNode {
	return &BasicNode{nav: nav, node: node, group: group}
}

func (b *BasicNode) AutomationNode() port.Node { return b.node }

func (b *BasicNode) Location() (entity.Rect, bool) { return b.node.Location() }

func (b *BasicNode) IsGroup() bool { return b.group }

func (b *BasicNode) AsGroup() *GroupNode {
	if !b.group {
		return nil
	}
	return b.nav.newGroup(b.node, classify.NewCache())
}

func (b *BasicNode) IsEquivalentTo(other FocusNode) bool {
	o, ok := other.(*BasicNode)
	return ok && classify.SameNode(b.node, o.node)
}

func (b *BasicNode) IsValidAndVisible() bool {
	return b.node.Exists() && classify.IsVisible(b.node)
}

func (b *BasicNode) String() string {
	kind := "leaf"
	if b.group {
		kind = "group"
	}
	return fmt.Sprintf("%s %q [%s] %s", b.node.Role(), b.node.Name(), b.node.ID(), kind)
}

// BackButtonNode is the synthetic last item of every non-desktop group.
// It keeps the group's host node rather than the group itself.
type BackButtonNode struct {
	nav   *ItemNavigator
	owner port.Node
	menu  bool
}

func (b *BackButtonNode) AutomationNode() port.Node { return nil }

func (b *BackButtonNode) Actions() []entity.MenuAction {
	return []entity.MenuAction{entity.ActionSelect}
}

func (b *BackButtonNode) Location() (entity.Rect, bool) { return b.owner.Location() }

func (b *BackButtonNode) IsGroup() bool { return false }

func (b *BackButtonNode) AsGroup() *GroupNode { return nil }

func (b *BackButtonNode) IsEquivalentTo(other FocusNode) bool {
	o, ok := other.(*BackButtonNode)
	return ok && classify.SameNode(b.owner, o.owner)
}

func (b *BackButtonNode) IsValidAndVisible() bool {
	if !b.owner.Exists() {
		return false
	}
	_, ok := b.owner.Location()
	return ok
}

func (b *BackButtonNode) PerformAction(ctx context.Context, action entity.MenuAction) entity.ActionResponse {
	if action != entity.ActionSelect {
		return entity.ResponseNoActionTaken
	}
	if b.menu {
		if b.nav.menu != nil {
			b.nav.menu.ExitCurrentMenu(ctx)
		}
		return entity.ResponseExitSubmenu
	}
	b.nav.ExitGroupUnconditionally(ctx)
	return entity.ResponseCloseMenu
}

func (b *BackButtonNode) String() string {
	return fmt.Sprintf("back [%s]", b.owner.ID())
}

// MenuItemNode is one entry of the action menu overlay.
type MenuItemNode struct {
	nav    *ItemNavigator
	node   port.Node
	action entity.MenuAction
}

// Action returns the menu action this item runs.
func (m *MenuItemNode) Action() entity.MenuAction { return m.action }

func (m *MenuItemNode) AutomationNode() port.Node { return m.node }

func (m *MenuItemNode) Actions() []entity.MenuAction {
	return []entity.MenuAction{entity.ActionSelect}
}

func (m *MenuItemNode) Location() (entity.Rect, bool) { return m.node.Location() }

func (m *MenuItemNode) IsGroup() bool { return false }

func (m *MenuItemNode) AsGroup() *GroupNode { return nil }

func (m *MenuItemNode) IsEquivalentTo(other FocusNode) bool {
	o, ok := other.(*MenuItemNode)
	return ok && o.action == m.action
}

func (m *MenuItemNode) IsValidAndVisible() bool {
	return m.node.Exists() && classify.IsVisible(m.node)
}

func (m *MenuItemNode) PerformAction(ctx context.Context, action entity.MenuAction) entity.ActionResponse {
	if action != entity.ActionSelect || m.nav.menu == nil {
		return entity.ResponseNoActionTaken
	}
	m.nav.menu.PerformAction(ctx, m.action)
	return entity.ResponseRemainOpen
}

func (m *MenuItemNode) String() string {
	return fmt.Sprintf("menu item %s", m.action)
}
