package entity

// MenuAction is an action a user can pick from the action menu.
type MenuAction string

const (
	ActionSelect             MenuAction = "select"
	ActionKeyboard           MenuAction = "keyboard"
	ActionDictation          MenuAction = "dictation"
	ActionIncrement          MenuAction = "increment"
	ActionDecrement          MenuAction = "decrement"
	ActionScrollUp           MenuAction = "scroll_up"
	ActionScrollDown         MenuAction = "scroll_down"
	ActionScrollLeft         MenuAction = "scroll_left"
	ActionScrollRight        MenuAction = "scroll_right"
	ActionCopy               MenuAction = "copy"
	ActionCut                MenuAction = "cut"
	ActionPaste              MenuAction = "paste"
	ActionMoveCursor         MenuAction = "move_cursor"
	ActionStartTextSelection MenuAction = "start_text_selection"
	ActionEndTextSelection   MenuAction = "end_text_selection"

	ActionJumpToBeginningOfText     MenuAction = "jump_to_beginning_of_text"
	ActionJumpToEndOfText           MenuAction = "jump_to_end_of_text"
	ActionMoveBackwardOneCharOfText MenuAction = "move_backward_one_char_of_text"
	ActionMoveBackwardOneWordOfText MenuAction = "move_backward_one_word_of_text"
	ActionMoveDownOneLineOfText     MenuAction = "move_down_one_line_of_text"
	ActionMoveForwardOneCharOfText  MenuAction = "move_forward_one_char_of_text"
	ActionMoveForwardOneWordOfText  MenuAction = "move_forward_one_word_of_text"
	ActionMoveUpOneLineOfText       MenuAction = "move_up_one_line_of_text"

	// Global actions, handled by the action controller itself.
	ActionSettings   MenuAction = "settings"
	ActionPointScan  MenuAction = "point_scan"
	ActionItemScan   MenuAction = "item_scan"
	ActionLeftClick  MenuAction = "left_click"
	ActionRightClick MenuAction = "right_click"
)

// IsGlobal reports whether the action is handled without a target node.
func (a MenuAction) IsGlobal() bool {
	switch a {
	case ActionSettings, ActionPointScan, ActionItemScan, ActionLeftClick, ActionRightClick:
		return true
	default:
		return false
	}
}

// IsTextNavigation reports whether the action moves the caret or edits the
// selection inside a text field.
func (a MenuAction) IsTextNavigation() bool {
	switch a {
	case ActionJumpToBeginningOfText, ActionJumpToEndOfText,
		ActionMoveBackwardOneCharOfText, ActionMoveBackwardOneWordOfText,
		ActionMoveDownOneLineOfText, ActionMoveForwardOneCharOfText,
		ActionMoveForwardOneWordOfText, ActionMoveUpOneLineOfText,
		ActionStartTextSelection, ActionEndTextSelection, ActionMoveCursor:
		return true
	default:
		return false
	}
}

// ParseMenuAction maps a host-supplied name back to a MenuAction.
func ParseMenuAction(name string) (MenuAction, bool) {
	a := MenuAction(name)
	if _, ok := knownActions[a]; ok {
		return a, true
	}
	return "", false
}

var knownActions = map[MenuAction]struct{}{
	ActionSelect: {}, ActionKeyboard: {}, ActionDictation: {}, ActionIncrement: {},
	ActionDecrement: {}, ActionScrollUp: {}, ActionScrollDown: {}, ActionScrollLeft: {},
	ActionScrollRight: {}, ActionCopy: {}, ActionCut: {}, ActionPaste: {},
	ActionMoveCursor: {}, ActionStartTextSelection: {}, ActionEndTextSelection: {},
	ActionJumpToBeginningOfText: {}, ActionJumpToEndOfText: {},
	ActionMoveBackwardOneCharOfText: {}, ActionMoveBackwardOneWordOfText: {},
	ActionMoveDownOneLineOfText: {}, ActionMoveForwardOneCharOfText: {},
	ActionMoveForwardOneWordOfText: {}, ActionMoveUpOneLineOfText: {},
	ActionSettings: {}, ActionPointScan: {}, ActionItemScan: {},
	ActionLeftClick: {}, ActionRightClick: {},
}

// ActionResponse is the signal a node returns after performing an action.
// The action controller interprets it to decide what happens to the menu.
type ActionResponse int

const (
	ResponseNoActionTaken ActionResponse = iota
	ResponseRemainOpen
	ResponseCloseMenu
	ResponseExitSubmenu
	ResponseReloadMenu
	ResponseOpenTextNavigationMenu
)

func (r ActionResponse) String() string {
	switch r {
	case ResponseNoActionTaken:
		return "no_action_taken"
	case ResponseRemainOpen:
		return "remain_open"
	case ResponseCloseMenu:
		return "close_menu"
	case ResponseExitSubmenu:
		return "exit_submenu"
	case ResponseReloadMenu:
		return "reload_menu"
	case ResponseOpenTextNavigationMenu:
		return "open_text_navigation_menu"
	default:
		return "unknown"
	}
}

// MenuType tags one level of the open menu stack.
type MenuType int

const (
	MenuMain MenuType = iota
	MenuTextNavigation
	MenuPointScan
)

func (m MenuType) String() string {
	switch m {
	case MenuMain:
		return "main"
	case MenuTextNavigation:
		return "text_navigation"
	case MenuPointScan:
		return "point_scan"
	default:
		return "unknown"
	}
}

// AllowedActions returns the allow-list of node actions a menu type may show,
// in display order.
func (m MenuType) AllowedActions() []MenuAction {
	switch m {
	case MenuMain:
		return []MenuAction{
			ActionKeyboard, ActionDictation, ActionMoveCursor, ActionStartTextSelection,
			ActionCopy, ActionCut, ActionPaste, ActionIncrement, ActionDecrement,
			ActionScrollUp, ActionScrollDown, ActionScrollLeft, ActionScrollRight,
			ActionSelect,
		}
	case MenuTextNavigation:
		return []MenuAction{
			ActionJumpToBeginningOfText, ActionJumpToEndOfText,
			ActionMoveBackwardOneCharOfText, ActionMoveBackwardOneWordOfText,
			ActionMoveDownOneLineOfText, ActionMoveForwardOneCharOfText,
			ActionMoveForwardOneWordOfText, ActionMoveUpOneLineOfText,
			ActionEndTextSelection,
		}
	case MenuPointScan:
		return []MenuAction{ActionLeftClick, ActionRightClick}
	default:
		return nil
	}
}
