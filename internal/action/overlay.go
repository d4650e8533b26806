package action

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/navigation"
)

// MenuLoadTimeout bounds the wait for the host to lay out the menu overlay.
const MenuLoadTimeout = time.Second

// MenuOverlay shows the menu through the host surface and moves focus into
// the overlay's tree once it is laid out.
type MenuOverlay struct {
	nav      *navigation.ItemNavigator
	tree     port.Tree
	surface  port.Surface
	sched    port.Scheduler
	reporter *navigation.Reporter

	open        bool
	location    entity.Rect
	displayed   []entity.MenuAction
	menuNode    port.Node
	cancelAwait func()
}

func newMenuOverlay(
	nav *navigation.ItemNavigator,
	tree port.Tree,
	surface port.Surface,
	sched port.Scheduler,
	reporter *navigation.Reporter,
) *MenuOverlay {
	return &MenuOverlay{
		nav:      nav,
		tree:     tree,
		surface:  surface,
		sched:    sched,
		reporter: reporter,
	}
}

// IsOpen reports whether the overlay is shown.
func (o *MenuOverlay) IsOpen() bool {
	return o.open
}

// Displayed returns the actions currently shown.
func (o *MenuOverlay) Displayed() []entity.MenuAction {
	return slices.Clone(o.displayed)
}

// Open shows actions anchored at location and focuses the item for focus,
// or the first item. An unchanged menu is not rendered again.
func (o *MenuOverlay) Open(ctx context.Context, location entity.Rect, actions []entity.MenuAction, focus entity.MenuAction) error {
	log := logging.FromContext(ctx)

	if o.open && o.location == location && slices.Equal(o.displayed, actions) {
		log.Debug().Msg("menu unchanged")
		if o.menuNode != nil && o.menuNode.Exists() {
			o.focusMenu(ctx, o.menuNode, focus)
		}
		return nil
	}

	o.stopWaiting()
	if err := o.surface.ShowMenu(ctx, location, actions); err != nil {
		return fmt.Errorf("show menu: %w", err)
	}
	o.open = true
	o.location = location
	o.displayed = slices.Clone(actions)

	want := o.displayed
	o.cancelAwait = navigation.AwaitNode(o.tree, o.sched, o.tree.Desktop(),
		func(n port.Node) bool { return showsActions(n, want) },
		MenuLoadTimeout,
		func(n port.Node) {
			o.cancelAwait = nil
			if !o.open {
				return
			}
			o.menuNode = n
			o.focusMenu(ctx, n, focus)
		},
		func() {
			o.cancelAwait = nil
			o.reporter.Report(ctx, entity.ErrorMenuNotFound, "menu overlay with %d actions did not appear", len(want))
		})
	return nil
}

// focusMenu moves into the menu group and focuses the item for focus.
func (o *MenuOverlay) focusMenu(ctx context.Context, menu port.Node, focus entity.MenuAction) {
	g := o.nav.CurrentGroup()
	if g != nil && g.IsMenu() && classify.SameNode(g.AutomationNode(), menu) {
		g.RefreshChildren()
	} else {
		if !o.nav.JumpTo(ctx, menu) {
			o.reporter.Report(ctx, entity.ErrorMenuNotFound, "menu overlay %s has no items", menu.ID())
			return
		}
		g = o.nav.CurrentGroup()
	}

	target := g.FirstValidChild()
	if focus != "" {
		for _, c := range g.Children() {
			if item, ok := c.(*navigation.MenuItemNode); ok && item.Action() == focus && item.IsValidAndVisible() {
				target = item
				break
			}
		}
	}
	if target != nil {
		o.nav.ForceFocusedNode(ctx, target)
	}
}

// Close hides the overlay and leaves the menu group if focus is in it.
func (o *MenuOverlay) Close(ctx context.Context) {
	o.stopWaiting()
	if !o.open {
		return
	}
	o.open = false
	o.displayed = nil
	if err := o.surface.HideMenu(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to hide menu")
	}
	if o.menuNode != nil {
		o.nav.ExitIfInGroup(ctx, o.menuNode)
		o.menuNode = nil
	}
}

// Loading reports whether the overlay was shown and its subtree has not
// appeared yet.
func (o *MenuOverlay) Loading() bool {
	return o.cancelAwait != nil
}

func (o *MenuOverlay) stopWaiting() {
	if o.cancelAwait != nil {
		o.cancelAwait()
		o.cancelAwait = nil
	}
}

// showsActions reports whether n is the menu overlay laid out with exactly
// actions, in order.
func showsActions(n port.Node, actions []entity.MenuAction) bool {
	if n.Name() != entity.MenuOverlayName {
		return false
	}
	i := 0
	for _, c := range n.Children() {
		if c.Role() != entity.RoleMenuItem {
			continue
		}
		if i >= len(actions) || c.Name() != string(actions[i]) {
			return false
		}
		i++
	}
	return i == len(actions)
}
