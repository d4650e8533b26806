package navigation

import (
	"context"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
)

// FocusData is a focused child together with the group it belongs to.
// Membership holds when the data is recorded and is re-checked by IsValid.
type FocusData struct {
	Group *GroupNode
	Focus FocusNode
}

// IsValid refreshes the group and re-resolves Focus to its current
// equivalent, or to the first valid child when it is gone.
func (d *FocusData) IsValid() bool {
	if d == nil || d.Group == nil || !d.Group.node.Exists() {
		return false
	}
	d.Group.RefreshChildren()
	if !d.Group.IsValidGroup() {
		return false
	}
	if d.Focus != nil {
		if eq := d.Group.FindEquivalent(d.Focus); eq != nil && eq.IsValidAndVisible() {
			d.Focus = eq
			return true
		}
	}
	d.Focus = d.Group.FirstValidChild()
	return d.Focus != nil
}

// FocusHistory is the stack of scopes the user entered, desktop level first.
type FocusHistory struct {
	nav  *ItemNavigator
	data []*FocusData
}

func newFocusHistory(nav *ItemNavigator) *FocusHistory {
	return &FocusHistory{nav: nav}
}

// BuildFromAutomationNode replaces the history with the path of groups from
// the desktop down to node. It returns false and leaves the history alone
// when no usable path exists.
func (h *FocusHistory) BuildFromAutomationNode(ctx context.Context, node port.Node) bool {
	log := logging.FromContext(ctx)

	if node == nil || node.Parent() == nil {
		return false
	}

	var ancestors []port.Node
	var desktop port.Node
	for n := node; n != nil; n = n.Parent() {
		if n.Role() == entity.RoleDesktop {
			desktop = n
			break
		}
		ancestors = append(ancestors, n)
	}
	if desktop == nil || len(ancestors) == 0 {
		return false
	}

	cache := classify.NewCache()
	outermost := ancestors[len(ancestors)-1]
	if !classify.IsInterestingSubtree(outermost, cache) {
		log.Debug().Str("node", string(node.ID())).Msg("ancestor path has nothing interesting, keeping history")
		return false
	}

	var path []*FocusData
	group := h.nav.newGroup(desktop, cache)
	for i := len(ancestors) - 1; i >= 0; i-- {
		a := ancestors[i]
		if !classify.IsInteresting(a, group.node, cache) {
			continue
		}
		child := group.FindChild(a)
		if child == nil {
			continue
		}
		path = append(path, &FocusData{Group: group, Focus: child})
		if !child.IsGroup() {
			break
		}
		group = h.nav.newGroup(a, cache)
	}

	if len(path) == 0 {
		return false
	}
	h.data = path
	return true
}

// Retrieve pops entries until one is valid. When the stack runs dry it
// returns the desktop focused on its first valid child.
func (h *FocusHistory) Retrieve(ctx context.Context) *FocusData {
	for len(h.data) > 0 {
		d := h.data[len(h.data)-1]
		h.data = h.data[:len(h.data)-1]
		if d.IsValid() {
			return d
		}
	}

	desktop := h.nav.newGroup(h.nav.tree.Desktop(), classify.NewCache())
	return &FocusData{Group: desktop, Focus: desktop.FirstValidChild()}
}

// Peek returns the top entry without validating it.
func (h *FocusHistory) Peek() *FocusData {
	if len(h.data) == 0 {
		return nil
	}
	return h.data[len(h.data)-1]
}

// Save pushes d.
func (h *FocusHistory) Save(d *FocusData) {
	if d == nil || d.Group == nil {
		return
	}
	h.data = append(h.data, d)
}

// ContainsDataMatchingPredicate reports whether any entry satisfies pred.
func (h *FocusHistory) ContainsDataMatchingPredicate(pred func(*FocusData) bool) bool {
	for _, d := range h.data {
		if pred(d) {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (h *FocusHistory) Len() int {
	return len(h.data)
}

// Reset drops every entry.
func (h *FocusHistory) Reset() {
	h.data = nil
}
