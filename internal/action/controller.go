// Package action runs the action menu: which actions a focused item offers,
// the stack of open menus, and what happens to focus after an action ran.
package action

import (
	"context"
	"slices"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/navigation"
	"github.com/bnema/switchscan/internal/scanmode"
)

// MinMenuActions is the smallest number of node actions worth a menu. With
// fewer, selecting performs the action directly.
const MinMenuActions = 2

// PointScanner is the point scan controller as the menu sees it.
type PointScanner interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
	PerformMouseAction(ctx context.Context, action entity.MenuAction)
}

// Deps are the collaborators of a Controller.
type Deps struct {
	Navigator *navigation.ItemNavigator
	Tree      port.Tree
	Surface   port.Surface
	Prefs     port.Preferences
	Scheduler port.Scheduler
	Mode      *scanmode.State
	Metrics   port.Metrics
	Reporter  *navigation.Reporter
}

// Controller owns the menu stack. It is driven from the main loop only.
type Controller struct {
	ctx      context.Context
	nav      *navigation.ItemNavigator
	surface  port.Surface
	prefs    port.Preferences
	mode     *scanmode.State
	metrics  port.Metrics
	reporter *navigation.Reporter
	overlay  *MenuOverlay
	point    PointScanner

	menuStack  []entity.MenuType
	actionNode navigation.FocusNode
	scanPoint  entity.Point
}

// NewController creates the action controller and its menu overlay.
func NewController(ctx context.Context, deps Deps) *Controller {
	ctx = logging.WithComponent(ctx, "action")
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating action controller")

	return &Controller{
		ctx:      ctx,
		nav:      deps.Navigator,
		surface:  deps.Surface,
		prefs:    deps.Prefs,
		mode:     deps.Mode,
		metrics:  deps.Metrics,
		reporter: deps.Reporter,
		overlay:  newMenuOverlay(deps.Navigator, deps.Tree, deps.Surface, deps.Scheduler, deps.Reporter),
	}
}

// SetPointScanner connects the point scan controller.
func (c *Controller) SetPointScanner(p PointScanner) {
	c.point = p
}

// IsMenuOpen reports whether any menu level is open.
func (c *Controller) IsMenuOpen() bool {
	return len(c.menuStack) > 0
}

// MenuStack returns a copy of the open menu levels, outermost first.
func (c *Controller) MenuStack() []entity.MenuType {
	return slices.Clone(c.menuStack)
}

// Overlay returns the menu overlay.
func (c *Controller) Overlay() *MenuOverlay {
	return c.overlay
}

// OnSelect handles the select command in item scan. Items with a single
// action, or nowhere to anchor a menu, act directly.
func (c *Controller) OnSelect(ctx context.Context) {
	log := logging.FromContext(ctx)

	node := c.nav.CurrentNode()
	if node == nil {
		log.Debug().Msg("select with nothing focused")
		return
	}
	if c.IsMenuOpen() {
		if g := c.nav.CurrentGroup(); g != nil && g.IsMenu() {
			node.PerformAction(ctx, entity.ActionSelect)
			return
		}
		if c.overlay.Loading() {
			log.Debug().Msg("select ignored while the menu loads")
			return
		}
		// The overlay never showed up or focus left it.
		log.Debug().Msg("closing menu that lost focus")
		c.ExitAllMenus(ctx)
		return
	}

	actions := node.Actions()
	_, hasLocation := node.Location()
	if len(actions) < MinMenuActions || !hasLocation {
		action := defaultAction(actions)
		c.recordAction(action)
		resp := node.PerformAction(ctx, action)
		log.Debug().
			Str("node", node.String()).
			Str("action", string(action)).
			Str("response", resp.String()).
			Msg("performed action without menu")
		return
	}

	c.actionNode = node
	c.menuStack = append(c.menuStack, entity.MenuMain)
	c.openCurrentMenu(ctx, "")
}

func defaultAction(actions []entity.MenuAction) entity.MenuAction {
	if len(actions) == 0 || slices.Contains(actions, entity.ActionSelect) {
		return entity.ActionSelect
	}
	return actions[0]
}

// OpenPointScanMenu opens the click menu at pt, replacing any open menu.
func (c *Controller) OpenPointScanMenu(ctx context.Context, pt entity.Point) {
	c.scanPoint = pt
	c.actionNode = nil
	c.menuStack = []entity.MenuType{entity.MenuPointScan}
	c.openCurrentMenu(ctx, "")
}

// PerformAction runs action. Global actions are handled here; the rest run
// on the item the menu was opened for.
func (c *Controller) PerformAction(ctx context.Context, action entity.MenuAction) {
	log := logging.FromContext(ctx)
	log.Debug().Str("action", string(action)).Msg("performing menu action")
	c.recordAction(action)

	switch action {
	case entity.ActionSettings:
		c.ExitAllMenus(ctx)
		if err := c.surface.OpenSettings(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to open settings")
		}
	case entity.ActionPointScan:
		c.ExitAllMenus(ctx)
		if c.point != nil {
			c.point.Start(ctx)
		}
	case entity.ActionItemScan:
		if c.point != nil {
			c.point.Stop(ctx)
		}
		c.ExitAllMenus(ctx)
	case entity.ActionLeftClick, entity.ActionRightClick:
		c.closeMenus(ctx)
		if c.point != nil {
			c.point.PerformMouseAction(ctx, action)
		}
	default:
		c.performOnActionNode(ctx, action)
	}
}

func (c *Controller) performOnActionNode(ctx context.Context, action entity.MenuAction) {
	node := c.actionNode
	if node == nil {
		c.reporter.Report(ctx, entity.ErrorUnknownAction, "action %s with no target item", action)
		c.ExitAllMenus(ctx)
		return
	}

	// Leave the menu so the action runs against the item's own group.
	c.nav.SuspendCurrentGroup(ctx)
	resp := node.PerformAction(ctx, action)
	logging.FromContext(ctx).Debug().
		Str("action", string(action)).
		Str("response", resp.String()).
		Msg("action performed")
	c.handleResponse(ctx, action, resp)
}

func (c *Controller) handleResponse(ctx context.Context, action entity.MenuAction, resp entity.ActionResponse) {
	switch resp {
	case entity.ResponseRemainOpen:
		c.nav.RestoreSuspendedGroup(ctx)
	case entity.ResponseCloseMenu, entity.ResponseNoActionTaken:
		c.nav.DiscardSuspendedGroup()
		c.ExitAllMenus(ctx)
	case entity.ResponseExitSubmenu:
		c.nav.DiscardSuspendedGroup()
		c.ExitCurrentMenu(ctx)
	case entity.ResponseReloadMenu:
		c.nav.RestoreSuspendedGroup(ctx)
		c.openCurrentMenu(ctx, action)
	case entity.ResponseOpenTextNavigationMenu:
		if c.prefs == nil || !c.prefs.TextNavigationEnabled() {
			c.nav.DiscardSuspendedGroup()
			c.ExitAllMenus(ctx)
			return
		}
		c.nav.RestoreSuspendedGroup(ctx)
		if n := len(c.menuStack); n == 0 || c.menuStack[n-1] != entity.MenuTextNavigation {
			c.menuStack = append(c.menuStack, entity.MenuTextNavigation)
		}
		c.openCurrentMenu(ctx, "")
	}
}

// ExitCurrentMenu closes the innermost menu level and reopens its parent.
func (c *Controller) ExitCurrentMenu(ctx context.Context) {
	if len(c.menuStack) > 0 {
		c.menuStack = c.menuStack[:len(c.menuStack)-1]
	}
	if len(c.menuStack) == 0 {
		c.ExitAllMenus(ctx)
		return
	}
	c.openCurrentMenu(ctx, "")
}

// ExitAllMenus closes every menu level. Point scanning resumes when it was
// the active mode.
func (c *Controller) ExitAllMenus(ctx context.Context) {
	c.closeMenus(ctx)
	if c.mode != nil && c.mode.InPointScan() && c.point != nil {
		c.point.Start(ctx)
	}
}

func (c *Controller) closeMenus(ctx context.Context) {
	c.menuStack = nil
	c.actionNode = nil
	c.overlay.Close(ctx)
}

// openCurrentMenu shows the top menu level, focusing the item for focus
// when it is still offered.
func (c *Controller) openCurrentMenu(ctx context.Context, focus entity.MenuAction) {
	if !c.IsMenuOpen() {
		return
	}
	menu := c.menuStack[len(c.menuStack)-1]

	actions := c.actionsForMenu(menu)
	if len(actions) == 0 {
		logging.FromContext(ctx).Debug().Str("menu", menu.String()).Msg("too few actions for a menu")
		c.ExitAllMenus(ctx)
		return
	}

	location, ok := c.menuLocation(menu)
	if !ok {
		c.reporter.Report(ctx, entity.ErrorMissingLocation, "no location to anchor the %s menu", menu)
		c.ExitAllMenus(ctx)
		return
	}

	if err := c.overlay.Open(ctx, location, actions, focus); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("menu", menu.String()).Msg("failed to open menu")
		c.ExitAllMenus(ctx)
		return
	}
	if c.metrics != nil {
		c.metrics.RecordMenuOpened(menu)
	}
}

// actionsForMenu returns the menu's entries, or nil when the menu would have
// fewer than MinMenuActions node actions.
func (c *Controller) actionsForMenu(menu entity.MenuType) []entity.MenuAction {
	var offered []entity.MenuAction
	switch {
	case menu == entity.MenuPointScan:
		offered = menu.AllowedActions()
	case c.actionNode != nil:
		offered = c.actionNode.Actions()
	}

	allowed := menu.AllowedActions()
	var actions []entity.MenuAction
	for _, a := range offered {
		if slices.Contains(allowed, a) {
			actions = append(actions, a)
		}
	}
	if len(actions) < MinMenuActions {
		return nil
	}

	if menu == entity.MenuMain || menu == entity.MenuPointScan {
		toggle := entity.ActionPointScan
		if c.mode != nil && c.mode.InPointScan() {
			toggle = entity.ActionItemScan
		}
		actions = append(actions, toggle, entity.ActionSettings)
	}
	return actions
}

func (c *Controller) menuLocation(menu entity.MenuType) (entity.Rect, bool) {
	if menu == entity.MenuPointScan {
		return entity.PointRect(c.scanPoint), true
	}
	if c.actionNode == nil {
		return entity.Rect{}, false
	}
	return c.actionNode.Location()
}

func (c *Controller) recordAction(action entity.MenuAction) {
	if c.metrics != nil {
		c.metrics.RecordAction(action)
	}
}
