package navigation

import (
	"context"
	"fmt"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
)

type groupKind int

const (
	kindDesktop groupKind = iota
	kindBasic
	kindKeyboard
	kindMenu
)

func (k groupKind) String() string {
	switch k {
	case kindDesktop:
		return "desktop"
	case kindKeyboard:
		return "keyboard"
	case kindMenu:
		return "menu"
	default:
		return "group"
	}
}

// GroupNode is a navigable scope: one host subtree decomposed into an ordered
// list of focusable children.
type GroupNode struct {
	nav      *ItemNavigator
	kind     groupKind
	node     port.Node
	children []FocusNode
}

func (n *ItemNavigator) newGroup(node port.Node, cache *classify.Cache) *GroupNode {
	g := &GroupNode{nav: n, node: node, kind: kindBasic}
	switch {
	case node.Role() == entity.RoleDesktop:
		g.kind = kindDesktop
	case node.Role() == entity.RoleKeyboard:
		g.kind = kindKeyboard
	case node.Name() == entity.MenuOverlayName:
		g.kind = kindMenu
	}
	g.children = g.computeChildren(cache)
	return g
}

func (g *GroupNode) computeChildren(cache *classify.Cache) []FocusNode {
	var children []FocusNode

	if g.kind == kindMenu {
		for _, item := range g.node.Children() {
			if item.Role() != entity.RoleMenuItem {
				continue
			}
			action, ok := entity.ParseMenuAction(item.Name())
			if !ok {
				continue
			}
			children = append(children, &MenuItemNode{nav: g.nav, node: item, action: action})
		}
	} else {
		for _, c := range classify.InterestingChildren(g.node, cache) {
			// The menu overlay is only reachable by jumping into it.
			if classify.FindAncestor(c, isMenuOverlay) != nil {
				continue
			}
			children = append(children, newBasicNode(g.nav, c, classify.IsGroup(c, g.node, cache)))
		}
	}

	if g.kind != kindDesktop {
		children = append(children, &BackButtonNode{nav: g.nav, owner: g.node, menu: g.kind == kindMenu})
	}
	return children
}

func isMenuOverlay(n port.Node) bool {
	return n.Name() == entity.MenuOverlayName
}

// AutomationNode returns the group's host root.
func (g *GroupNode) AutomationNode() port.Node { return g.node }

// Children returns the current children. The slice must not be modified.
func (g *GroupNode) Children() []FocusNode { return g.children }

func (g *GroupNode) Location() (entity.Rect, bool) { return g.node.Location() }

func (g *GroupNode) IsDesktop() bool  { return g.kind == kindDesktop }
func (g *GroupNode) IsKeyboard() bool { return g.kind == kindKeyboard }
func (g *GroupNode) IsMenu() bool     { return g.kind == kindMenu }

// IsValidGroup reports whether the group can still hold focus. It reads the
// children as last computed; call RefreshChildren first for a fresh answer.
func (g *GroupNode) IsValidGroup() bool {
	if !g.node.Exists() {
		return false
	}
	if g.kind == kindDesktop {
		return true
	}
	for _, c := range g.children {
		if _, back := c.(*BackButtonNode); back {
			continue
		}
		if c.IsValidAndVisible() {
			return true
		}
	}
	return false
}

// RefreshChildren recomputes the children in place. Children equivalent to
// an existing one keep the existing instance.
func (g *GroupNode) RefreshChildren() {
	if !g.node.Exists() {
		return
	}
	fresh := g.computeChildren(classify.NewCache())
	for i, c := range fresh {
		old := g.FindEquivalent(c)
		if old == nil {
			continue
		}
		if ob, ok := old.(*BasicNode); ok {
			if nb, ok := c.(*BasicNode); ok {
				ob.node, ob.group = nb.node, nb.group
			}
		}
		if om, ok := old.(*MenuItemNode); ok {
			if nm, ok := c.(*MenuItemNode); ok {
				om.node = nm.node
			}
		}
		fresh[i] = old
	}
	g.children = fresh
}

// FirstValidChild returns the first child that is valid and visible.
func (g *GroupNode) FirstValidChild() FocusNode {
	for _, c := range g.children {
		if c.IsValidAndVisible() {
			return c
		}
	}
	return nil
}

// Next returns the valid child after child, wrapping around. It returns
// child itself when nothing else is valid.
func (g *GroupNode) Next(child FocusNode) FocusNode { return g.step(child, 1) }

// Previous returns the valid child before child, wrapping around.
func (g *GroupNode) Previous(child FocusNode) FocusNode { return g.step(child, -1) }

func (g *GroupNode) step(child FocusNode, dir int) FocusNode {
	count := len(g.children)
	if count == 0 {
		return nil
	}
	idx := g.indexOf(child)
	if idx < 0 {
		return g.FirstValidChild()
	}
	for i := 1; i <= count; i++ {
		c := g.children[((idx+dir*i)%count+count)%count]
		if c.IsValidAndVisible() {
			return c
		}
	}
	return nil
}

func (g *GroupNode) indexOf(child FocusNode) int {
	if child == nil {
		return -1
	}
	for i, c := range g.children {
		if c == child || c.IsEquivalentTo(child) {
			return i
		}
	}
	return -1
}

// FindChild returns the child backed by node, or nil.
func (g *GroupNode) FindChild(node port.Node) FocusNode {
	if node == nil {
		return nil
	}
	for _, c := range g.children {
		if classify.SameNode(c.AutomationNode(), node) {
			return c
		}
	}
	return nil
}

// FindEquivalent returns the child equivalent to item, or nil.
func (g *GroupNode) FindEquivalent(item FocusNode) FocusNode {
	if i := g.indexOf(item); i >= 0 {
		return g.children[i]
	}
	return nil
}

// IsEquivalentTo reports whether both groups are rooted at the same host node.
func (g *GroupNode) IsEquivalentTo(other *GroupNode) bool {
	return other != nil && classify.SameNode(g.node, other.node)
}

// OnExit runs when navigation leaves the group.
func (g *GroupNode) OnExit(ctx context.Context) {
	if g.kind != kindKeyboard {
		return
	}
	if err := g.nav.surface.SetVirtualKeyboardVisible(ctx, false); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to hide virtual keyboard")
	}
}

func (g *GroupNode) String() string {
	return fmt.Sprintf("%s [%s] %d children", g.kind, g.node.ID(), len(g.children))
}
