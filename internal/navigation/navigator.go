// Package navigation keeps the switch user's position in the accessibility
// tree: the current group, the focused item inside it and the history of
// groups entered to get there.
package navigation

import (
	"context"
	"time"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/scanmode"
	"github.com/bnema/switchscan/internal/ui/mainloop"
)

// KeyboardFocusSuppression is how long host focus events are ignored after
// opening the virtual keyboard, which steals and returns focus while it
// appears.
const KeyboardFocusSuppression = 500 * time.Millisecond

const scrollRefreshKey = "scroll-refresh"

// TextActions are the caret and selection operations on text fields.
type TextActions interface {
	ResetSelection(ctx context.Context)
	StartSelection(ctx context.Context, field port.Node)
	EndSelection(ctx context.Context, field port.Node)
	Navigate(ctx context.Context, field port.Node, action entity.MenuAction) error
	// Selecting reports whether a selection was started and not yet ended.
	Selecting() bool
}

// MenuHandler is the action menu as the navigator sees it.
type MenuHandler interface {
	PerformAction(ctx context.Context, action entity.MenuAction)
	ExitCurrentMenu(ctx context.Context)
	ExitAllMenus(ctx context.Context)
	IsMenuOpen() bool
}

// Deps are the collaborators of an ItemNavigator.
type Deps struct {
	Tree      port.Tree
	Surface   port.Surface
	Prefs     port.Preferences
	Scheduler port.Scheduler
	Mode      *scanmode.State
	Reporter  *Reporter
}

// ItemNavigator owns the current group and focused item. All methods run on
// the main loop.
type ItemNavigator struct {
	ctx      context.Context
	tree     port.Tree
	surface  port.Surface
	prefs    port.Preferences
	sched    port.Scheduler
	mode     *scanmode.State
	reporter *Reporter
	menu     MenuHandler
	text     TextActions

	group     *GroupNode
	node      FocusNode
	history   *FocusHistory
	suspended *FocusData

	// moveSeq invalidates occlusion checks started before the latest move.
	moveSeq       uint64
	suppressFocus bool
	suppressTimer port.Timer
	cancelAwait   func()

	coalescer   *mainloop.Coalescer
	rings       *ringPainter
	unsubscribe []func()
}

// NewItemNavigator creates a navigator. Call Start to attach it to the tree.
func NewItemNavigator(ctx context.Context, deps Deps) *ItemNavigator {
	ctx = logging.WithComponent(ctx, "navigator")
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating item navigator")

	n := &ItemNavigator{
		ctx:      ctx,
		tree:     deps.Tree,
		surface:  deps.Surface,
		prefs:    deps.Prefs,
		sched:    deps.Scheduler,
		mode:     deps.Mode,
		reporter: deps.Reporter,
	}
	n.history = newFocusHistory(n)
	n.coalescer = mainloop.NewCoalescer(deps.Scheduler.Post)
	n.rings = newRingPainter(n)
	return n
}

// SetMenuHandler connects the action menu.
func (n *ItemNavigator) SetMenuHandler(menu MenuHandler) {
	n.menu = menu
}

// SetTextActions connects the text selection controller.
func (n *ItemNavigator) SetTextActions(text TextActions) {
	n.text = text
}

// Start subscribes to tree events and focuses the host's focused node.
func (n *ItemNavigator) Start(ctx context.Context) {
	desktop := n.tree.Desktop()
	n.unsubscribe = append(n.unsubscribe,
		n.tree.Subscribe(desktop, []entity.EventType{entity.EventFocus}, n.onFocusEvent),
		n.tree.Subscribe(desktop, []entity.EventType{entity.EventScrollPositionChanged}, n.onScrollEvent),
		n.tree.Subscribe(desktop, []entity.EventType{
			entity.EventNodeRemoved,
			entity.EventChildrenChanged,
			entity.EventSubtreeUpdateEnd,
		}, n.onTreeChange),
	)
	if n.mode != nil {
		n.mode.OnChange(n.onModeChange)
	}
	n.Restart(ctx)
}

// Stop detaches the navigator from the tree.
func (n *ItemNavigator) Stop() {
	for _, unsub := range n.unsubscribe {
		unsub()
	}
	n.unsubscribe = nil
	n.coalescer.Destroy()
	if n.cancelAwait != nil {
		n.cancelAwait()
		n.cancelAwait = nil
	}
	if n.suppressTimer != nil {
		n.suppressTimer.Stop()
	}
}

// CurrentNode returns the focused item, or nil before Start.
func (n *ItemNavigator) CurrentNode() FocusNode { return n.node }

// CurrentGroup returns the current group, or nil before Start.
func (n *ItemNavigator) CurrentGroup() *GroupNode { return n.group }

// History exposes the focus history.
func (n *ItemNavigator) History() *FocusHistory { return n.history }

// SuspendedGroup returns the data saved by SuspendCurrentGroup, if any.
func (n *ItemNavigator) SuspendedGroup() *FocusData { return n.suspended }

// InKeyboard reports whether focus is inside the virtual keyboard, including
// row groups nested in it.
func (n *ItemNavigator) InKeyboard() bool {
	if n.group == nil {
		return false
	}
	if n.group.IsKeyboard() {
		return true
	}
	return classify.FindAncestor(n.group.node, func(node port.Node) bool {
		return node.Role() == entity.RoleKeyboard
	}) != nil
}

func (n *ItemNavigator) setGroupAndNode(g *GroupNode, f FocusNode) {
	n.group = g
	n.setNode(f)
}

func (n *ItemNavigator) setNode(f FocusNode) {
	n.moveSeq++
	n.node = f
	if f != nil {
		logging.FromContext(n.ctx).Debug().Str("node", f.String()).Msg("focus moved")
	}
	n.rings.paint(n.ctx)
}

func (n *ItemNavigator) loadFromData(ctx context.Context, d *FocusData) {
	if d.Focus == nil {
		n.reporter.Report(ctx, entity.ErrorMalformedDesktop, "desktop has no valid child")
	}
	n.setGroupAndNode(d.Group, d.Focus)
}

// MoveForward focuses the next item in the group, skipping covered windows.
func (n *ItemNavigator) MoveForward(ctx context.Context) error {
	if n.node == nil || n.group == nil || !n.node.IsValidAndVisible() {
		n.MoveToValidNode(ctx)
		return nil
	}
	g := n.group
	return n.tryMoving(ctx, g.Next(n.node), g.Next, n.node)
}

// MoveBackward focuses the previous item in the group.
func (n *ItemNavigator) MoveBackward(ctx context.Context) error {
	if n.node == nil || n.group == nil || !n.node.IsValidAndVisible() {
		n.MoveToValidNode(ctx)
		return nil
	}
	g := n.group
	return n.tryMoving(ctx, g.Previous(n.node), g.Previous, n.node)
}

// tryMoving commits a move to candidate unless it is a window covered by
// another window at its top center, in which case it tries getNext(candidate).
// Reaching start again ends the walk.
func (n *ItemNavigator) tryMoving(ctx context.Context, candidate FocusNode, getNext func(FocusNode) FocusNode, start FocusNode) error {
	if candidate == nil {
		n.MoveToValidNode(ctx)
		return nil
	}
	if candidate == start || candidate.IsEquivalentTo(start) {
		return nil
	}

	auto := candidate.AutomationNode()
	if auto == nil || !classify.IsWindow(auto) {
		n.setNode(candidate)
		return nil
	}

	rect, ok := candidate.Location()
	if !ok {
		n.reporter.Report(ctx, entity.ErrorMissingLocation, "window %s has no location", auto.ID())
		n.sched.Post(func() { n.MoveToValidNode(n.ctx) })
		return ErrMissingLocation
	}

	seq, group := n.moveSeq, n.group
	n.tree.HitTest(ctx, rect.TopCenter(), func(hit port.Node) {
		// Focus moved while the hit test was in flight.
		if seq != n.moveSeq || group != n.group {
			return
		}
		if !candidate.IsValidAndVisible() {
			_ = n.tryMoving(ctx, getNext(candidate), getNext, start)
			return
		}
		if hit != nil && (classify.SameNode(hit, auto) || classify.IsDescendantOf(hit, auto)) {
			n.setNode(candidate)
			return
		}
		logging.FromContext(ctx).Debug().Str("window", string(auto.ID())).Msg("skipping covered window")
		if err := n.tryMoving(ctx, getNext(candidate), getNext, start); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("move abandoned")
		}
	})
	return nil
}

// EnterGroup makes the focused group the current group.
func (n *ItemNavigator) EnterGroup(ctx context.Context) {
	if n.node == nil || !n.node.IsGroup() {
		return
	}
	g := n.node.AsGroup()
	if g == nil {
		return
	}
	first := g.FirstValidChild()
	if !g.IsValidGroup() || first == nil {
		n.reporter.Report(ctx, entity.ErrorNoInterestingChildren, "group %s has no valid children", n.node)
		return
	}
	n.history.Save(&FocusData{Group: n.group, Focus: n.node})
	n.setGroupAndNode(g, first)
}

// ExitGroupUnconditionally leaves the current group for the closest valid
// entry in history.
func (n *ItemNavigator) ExitGroupUnconditionally(ctx context.Context) {
	if n.group != nil {
		n.group.OnExit(ctx)
	}
	n.loadFromData(ctx, n.history.Retrieve(ctx))
}

// ExitIfInGroup exits the current group when it is rooted at node.
func (n *ItemNavigator) ExitIfInGroup(ctx context.Context, node port.Node) {
	if n.group != nil && classify.SameNode(n.group.node, node) {
		n.ExitGroupUnconditionally(ctx)
	}
}

// MoveToValidNode repairs the position after the tree changed under it.
func (n *ItemNavigator) MoveToValidNode(ctx context.Context) {
	nodeValid := n.node != nil && n.node.IsValidAndVisible()
	groupValid := false
	if n.group != nil && n.group.node.Exists() {
		n.group.RefreshChildren()
		groupValid = n.group.IsValidGroup()
	}

	switch {
	case nodeValid && groupValid:
		if eq := n.group.FindEquivalent(n.node); eq != nil && eq.IsValidAndVisible() {
			n.setNode(eq)
		} else {
			n.setNode(n.group.FirstValidChild())
		}
	case nodeValid:
		auto := n.node.AutomationNode()
		if auto == nil || !n.rebuildAround(ctx, auto) {
			n.loadFromData(ctx, n.history.Retrieve(ctx))
		}
	case groupValid:
		n.setNode(n.group.FirstValidChild())
	default:
		n.loadFromData(ctx, n.history.Retrieve(ctx))
	}

	if n.menu != nil && n.menu.IsMenuOpen() && (n.group == nil || !n.group.IsMenu()) {
		n.menu.ExitAllMenus(ctx)
	}
}

// moveTo rebuilds history around node and restores from it. It returns false
// when node has no usable path, leaving the position unchanged.
func (n *ItemNavigator) moveTo(ctx context.Context, node port.Node) bool {
	if n.node != nil && classify.SameNode(n.node.AutomationNode(), node) {
		return true
	}
	return n.rebuildAround(ctx, node)
}

func (n *ItemNavigator) rebuildAround(ctx context.Context, node port.Node) bool {
	if !n.history.BuildFromAutomationNode(ctx, node) {
		return false
	}
	n.loadFromData(ctx, n.history.Retrieve(ctx))
	return true
}

// JumpTo enters the group rooted at node, saving the current position.
func (n *ItemNavigator) JumpTo(ctx context.Context, node port.Node) bool {
	if node == nil || !node.Exists() {
		return false
	}
	g := n.newGroup(node, classify.NewCache())
	first := g.FirstValidChild()
	if !g.IsValidGroup() || first == nil {
		logging.FromContext(ctx).Debug().Str("node", string(node.ID())).Msg("jump target has no valid children")
		return false
	}
	if n.group != nil {
		n.history.Save(&FocusData{Group: n.group, Focus: n.node})
	}
	n.setGroupAndNode(g, first)
	return true
}

// ForceFocusedNode focuses item without any validity check.
func (n *ItemNavigator) ForceFocusedNode(_ context.Context, item FocusNode) {
	n.setNode(item)
}

// SuspendCurrentGroup exits the current group and keeps its focus data aside
// so RestoreSuspendedGroup can return to it without consulting history.
func (n *ItemNavigator) SuspendCurrentGroup(ctx context.Context) {
	data := &FocusData{Group: n.group, Focus: n.node}
	n.ExitGroupUnconditionally(ctx)
	n.suspended = data
}

// RestoreSuspendedGroup returns to the suspended group, saving the current
// position in history.
func (n *ItemNavigator) RestoreSuspendedGroup(ctx context.Context) {
	d := n.suspended
	if d == nil {
		return
	}
	n.suspended = nil
	if n.group != nil {
		n.history.Save(&FocusData{Group: n.group, Focus: n.node})
	}
	if !d.IsValid() {
		n.MoveToValidNode(ctx)
		return
	}
	n.setGroupAndNode(d.Group, d.Focus)
}

// DiscardSuspendedGroup forgets the suspended group.
func (n *ItemNavigator) DiscardSuspendedGroup() {
	n.suspended = nil
}

// Restart drops history and focuses the host's focused node, or the first
// item on the desktop.
func (n *ItemNavigator) Restart(ctx context.Context) {
	n.history.Reset()
	n.suspended = nil

	desktop := n.newGroup(n.tree.Desktop(), classify.NewCache())
	n.loadFromData(ctx, &FocusData{Group: desktop, Focus: desktop.FirstValidChild()})

	if focused := n.tree.Focused(ctx); focused != nil {
		n.moveTo(ctx, focused)
	}
}

func (n *ItemNavigator) onModeChange(mode entity.ScanMode) {
	logging.FromContext(n.ctx).Debug().Str("mode", mode.String()).Msg("scan mode changed")
	n.rings.paint(n.ctx)
}
