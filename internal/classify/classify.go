// Package classify decides which host accessibility nodes are presented to a
// switch user.
//
// The predicates form a deliberately one-directional recursion:
//
//	IsGroup -> IsActionable, IsInterestingSubtree
//	IsInterestingSubtree -> IsActionable, IsInterestingSubtree (children)
//	IsActionable -> IsInterestingSubtree (children of focusable nodes)
//
// IsInterestingSubtree must never call IsGroup or IsInteresting; doing so
// closes a loop between a node and its own ancestors' classification.
// Every predicate takes the Cache explicitly; there is no package state.
package classify

import (
	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/domain/entity"
)

// GroupInterestingBranchThreshold is the number of independently interesting
// branches a node needs to be presented as a group. The value comes from
// product tuning.
const GroupInterestingBranchThreshold = 2

// IsActionable reports whether the user can invoke node directly.
func IsActionable(node port.Node, cache *Cache) bool {
	if node == nil {
		return false
	}
	cache = orNew(cache)
	id := node.ID()
	if v, ok := cache.actionable[id]; ok {
		return v
	}
	v := computeActionable(node, cache)
	cache.actionable[id] = v
	return v
}

func computeActionable(node port.Node, cache *Cache) bool {
	if !IsVisible(node) {
		return false
	}
	state := node.State()
	if state.Disabled {
		return false
	}

	role := node.Role()
	// Web containers are structural, never actionable themselves.
	if role == entity.RoleWebView || role == entity.RoleRootWebArea {
		return false
	}

	switch role {
	case entity.RoleButton, entity.RoleSlider, entity.RoleTab:
		return true
	}
	if IsComboBox(node) || IsEditText(node) {
		return true
	}

	verb := node.DefaultActionVerb()
	switch verb {
	case entity.VerbActivate, entity.VerbCheck, entity.VerbOpen,
		entity.VerbPress, entity.VerbSelect, entity.VerbUncheck:
		return true
	}
	if role == entity.RoleListItem && verb == entity.VerbClick {
		return true
	}

	// A focusable container is the actionable unit only while none of its
	// children is interesting; otherwise it defers to those children.
	if state.Focusable || role == entity.RoleMenuItem {
		for _, child := range node.Children() {
			if IsInterestingSubtree(child, cache) {
				return false
			}
		}
		return true
	}

	return false
}

// IsGroup reports whether node should be presented as a navigable scope
// inside scope. scope may be nil.
func IsGroup(node, scope port.Node, cache *Cache) bool {
	if node == nil {
		return false
	}
	cache = orNew(cache)
	key := scopedKey{node: node.ID()}
	if scope != nil {
		key.scope = scope.ID()
	}
	if v, ok := cache.group[key]; ok {
		return v
	}
	v := computeGroup(node, scope, cache)
	cache.group[key] = v
	return v
}

func computeGroup(node, scope port.Node, cache *Cache) bool {
	// A group exactly as large as its containing scope adds a redundant level.
	if scope != nil && !SameNode(node, scope) {
		scopeRect, scopeOK := scope.Location()
		nodeRect, nodeOK := node.Location()
		if scopeOK && nodeOK && scopeRect == nodeRect {
			return false
		}
	}
	if node.State().Invisible {
		return false
	}
	if node.Role() == entity.RoleKeyboard {
		return true
	}

	branches := 0
	if IsActionable(node, cache) {
		branches++
	}
	for _, child := range node.Children() {
		if IsInterestingSubtree(child, cache) {
			branches++
		}
		if branches >= GroupInterestingBranchThreshold {
			return true
		}
	}
	return branches >= GroupInterestingBranchThreshold
}

// IsInteresting reports whether node is ever exposed to the user inside scope.
func IsInteresting(node, scope port.Node, cache *Cache) bool {
	cache = orNew(cache)
	return IsActionable(node, cache) || IsGroup(node, scope, cache)
}

// IsInterestingSubtree reports whether node or any descendant is actionable.
// It only recurses through IsActionable and itself.
func IsInterestingSubtree(node port.Node, cache *Cache) bool {
	if node == nil {
		return false
	}
	cache = orNew(cache)
	id := node.ID()
	if v, ok := cache.subtree[id]; ok {
		return v
	}

	v := IsActionable(node, cache)
	if !v {
		for _, child := range node.Children() {
			if IsInterestingSubtree(child, cache) {
				v = true
				break
			}
		}
	}
	cache.subtree[id] = v
	return v
}

// IsVisible reports whether node is on screen with a non-negative origin.
func IsVisible(node port.Node) bool {
	if node == nil {
		return false
	}
	state := node.State()
	if state.Offscreen || state.Invisible {
		return false
	}
	rect, ok := node.Location()
	return ok && rect.Top >= 0 && rect.Left >= 0
}

// IsTextInput reports whether node accepts typed text.
func IsTextInput(node port.Node) bool {
	if node == nil {
		return false
	}
	switch node.Role() {
	case entity.RoleTextField, entity.RoleSearchBox, entity.RoleTextFieldWithComboBox:
		return true
	}
	return IsEditText(node)
}

// IsEditText reports whether node is the root of an editable region.
func IsEditText(node port.Node) bool {
	if node == nil || !node.State().Editable {
		return false
	}
	parent := node.Parent()
	return parent == nil || !parent.State().Editable
}

// IsComboBox reports whether node is any kind of combo box.
func IsComboBox(node port.Node) bool {
	if node == nil {
		return false
	}
	switch node.Role() {
	case entity.RoleComboBoxSelect, entity.RoleComboBoxMenuButton,
		entity.RoleComboBoxGrouping, entity.RoleTextFieldWithComboBox:
		return true
	}
	return false
}

// IsWindow reports whether node is a top-level window that other windows can
// cover.
func IsWindow(node port.Node) bool {
	return node != nil && node.Role() == entity.RoleWindow
}

// SameNode compares two host nodes by identity.
func SameNode(a, b port.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

// IsDescendantOf reports whether node lies strictly below ancestor.
func IsDescendantOf(node, ancestor port.Node) bool {
	if node == nil || ancestor == nil {
		return false
	}
	for p := node.Parent(); p != nil; p = p.Parent() {
		if SameNode(p, ancestor) {
			return true
		}
	}
	return false
}

// FindAncestor returns the closest ancestor of node (or node itself) matching
// pred, or nil.
func FindAncestor(node port.Node, pred func(port.Node) bool) port.Node {
	for n := node; n != nil; n = n.Parent() {
		if pred(n) {
			return n
		}
	}
	return nil
}

// FindDescendant returns the first node in pre-order below root (root
// included) matching pred, or nil.
func FindDescendant(root port.Node, pred func(port.Node) bool) port.Node {
	if root == nil {
		return nil
	}
	if pred(root) {
		return root
	}
	for _, child := range root.Children() {
		if found := FindDescendant(child, pred); found != nil {
			return found
		}
	}
	return nil
}
