package navigation

import (
	"context"

	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
)

// Actions lists what the user can do with the node. Groups can only be
// entered or scrolled.
func (b *BasicNode) Actions() []entity.MenuAction {
	n := b.node
	var actions []entity.MenuAction

	if b.group {
		actions = append(actions, entity.ActionSelect)
		return appendScrollActions(actions, n.Scroll())
	}

	textInput := classify.IsTextInput(n)
	if classify.IsActionable(n, nil) && !textInput {
		actions = append(actions, entity.ActionSelect)
	}
	if textInput {
		actions = append(actions, entity.ActionKeyboard, entity.ActionDictation)
		if b.nav.prefs != nil && b.nav.prefs.TextNavigationEnabled() {
			actions = append(actions, entity.ActionMoveCursor, entity.ActionStartTextSelection)
			actions = append(actions, textNavigationActions...)
			if b.nav.text != nil && b.nav.text.Selecting() {
				actions = append(actions, entity.ActionEndTextSelection)
			}
		}
		if start, end := n.TextSelection(); start >= 0 && start < end {
			actions = append(actions, entity.ActionCopy, entity.ActionCut)
		}
		actions = append(actions, entity.ActionPaste)
	}
	if n.Role() == entity.RoleSlider {
		actions = append(actions, entity.ActionIncrement, entity.ActionDecrement)
	}
	actions = appendScrollActions(actions, n.Scroll())

	if len(actions) == 0 {
		actions = append(actions, entity.ActionSelect)
	}
	return actions
}

func appendScrollActions(actions []entity.MenuAction, s entity.ScrollState) []entity.MenuAction {
	if s.CanScrollUp() {
		actions = append(actions, entity.ActionScrollUp)
	}
	if s.CanScrollDown() {
		actions = append(actions, entity.ActionScrollDown)
	}
	if s.CanScrollLeft() {
		actions = append(actions, entity.ActionScrollLeft)
	}
	if s.CanScrollRight() {
		actions = append(actions, entity.ActionScrollRight)
	}
	return actions
}

var textNavigationActions = []entity.MenuAction{
	entity.ActionJumpToBeginningOfText,
	entity.ActionJumpToEndOfText,
	entity.ActionMoveBackwardOneCharOfText,
	entity.ActionMoveBackwardOneWordOfText,
	entity.ActionMoveDownOneLineOfText,
	entity.ActionMoveForwardOneCharOfText,
	entity.ActionMoveForwardOneWordOfText,
	entity.ActionMoveUpOneLineOfText,
}

var scrollDirections = map[entity.MenuAction]entity.ScrollDirection{
	entity.ActionScrollUp:    entity.ScrollUp,
	entity.ActionScrollDown:  entity.ScrollDown,
	entity.ActionScrollLeft:  entity.ScrollLeft,
	entity.ActionScrollRight: entity.ScrollRight,
}

var clipboardKeys = map[entity.MenuAction]entity.Key{
	entity.ActionCopy:  entity.KeyC,
	entity.ActionCut:   entity.KeyX,
	entity.ActionPaste: entity.KeyV,
}

// PerformAction runs action on the host node and tells the menu what to do
// next.
func (b *BasicNode) PerformAction(ctx context.Context, action entity.MenuAction) entity.ActionResponse {
	log := logging.FromContext(ctx)
	nav := b.nav
	n := b.node

	fail := func(err error) entity.ActionResponse {
		log.Warn().Err(err).Str("action", string(action)).Str("node", string(n.ID())).Msg("action failed")
		return entity.ResponseNoActionTaken
	}

	switch action {
	case entity.ActionSelect:
		if b.group {
			nav.EnterGroup(ctx)
			return entity.ResponseCloseMenu
		}
		if err := nav.tree.DoDefault(ctx, n); err != nil {
			return fail(err)
		}
		return entity.ResponseCloseMenu

	case entity.ActionKeyboard:
		nav.EnterKeyboard(ctx, n)
		return entity.ResponseCloseMenu

	case entity.ActionDictation:
		if err := nav.surface.ToggleDictation(ctx); err != nil {
			return fail(err)
		}
		return entity.ResponseCloseMenu

	case entity.ActionIncrement:
		if err := nav.tree.Increment(ctx, n); err != nil {
			return fail(err)
		}
		return entity.ResponseRemainOpen

	case entity.ActionDecrement:
		if err := nav.tree.Decrement(ctx, n); err != nil {
			return fail(err)
		}
		return entity.ResponseRemainOpen

	case entity.ActionScrollUp, entity.ActionScrollDown, entity.ActionScrollLeft, entity.ActionScrollRight:
		if err := nav.tree.Scroll(ctx, n, scrollDirections[action]); err != nil {
			return fail(err)
		}
		// Scrolling can exhaust a direction, so the menu is rebuilt.
		return entity.ResponseReloadMenu

	case entity.ActionCopy, entity.ActionCut, entity.ActionPaste:
		if err := nav.surface.SendKey(ctx, entity.KeyPress{Key: clipboardKeys[action], Ctrl: true}); err != nil {
			return fail(err)
		}
		return entity.ResponseCloseMenu
	}

	if nav.text == nil || !action.IsTextNavigation() {
		return entity.ResponseNoActionTaken
	}

	switch action {
	case entity.ActionMoveCursor:
		nav.text.ResetSelection(ctx)
		return entity.ResponseOpenTextNavigationMenu
	case entity.ActionStartTextSelection:
		nav.text.StartSelection(ctx, n)
		return entity.ResponseOpenTextNavigationMenu
	case entity.ActionEndTextSelection:
		nav.text.EndSelection(ctx, n)
		return entity.ResponseExitSubmenu
	default:
		if err := nav.text.Navigate(ctx, n, action); err != nil {
			return fail(err)
		}
		return entity.ResponseRemainOpen
	}
}
