package entity

// NodeID identifies an accessibility node. It is stable across repeated reads
// of the same host node and is the only identity the core compares on.
type NodeID string

// Role is the accessibility role tag of a node.
type Role string

const (
	RoleUnknown               Role = ""
	RoleDesktop               Role = "desktop"
	RoleWindow                Role = "window"
	RoleClient                Role = "client"
	RoleDialog                Role = "dialog"
	RoleGeneric               Role = "generic"
	RoleGroup                 Role = "group"
	RoleList                  Role = "list"
	RoleListItem              Role = "listItem"
	RoleToolbar               Role = "toolbar"
	RoleButton                Role = "button"
	RoleCheckBox              Role = "checkBox"
	RoleLink                  Role = "link"
	RoleSlider                Role = "slider"
	RoleTab                   Role = "tab"
	RoleTabList               Role = "tabList"
	RoleMenu                  Role = "menu"
	RoleMenuItem              Role = "menuItem"
	RoleStaticText            Role = "staticText"
	RoleImage                 Role = "image"
	RoleTextField             Role = "textField"
	RoleSearchBox             Role = "searchBox"
	RoleTextFieldWithComboBox Role = "textFieldWithComboBox"
	RoleComboBoxSelect        Role = "comboBoxSelect"
	RoleComboBoxMenuButton    Role = "comboBoxMenuButton"
	RoleComboBoxGrouping      Role = "comboBoxGrouping"
	RoleWebView               Role = "webView"
	RoleRootWebArea           Role = "rootWebArea"
	RoleKeyboard              Role = "keyboard"
)

// MenuOverlayName is the accessible name the host gives the root of the
// action menu overlay's own presentation.
const MenuOverlayName = "switch_access_menu"

// DefaultActionVerb is the optional verb the host advertises for a node's
// default action.
type DefaultActionVerb string

const (
	VerbNone          DefaultActionVerb = ""
	VerbActivate      DefaultActionVerb = "activate"
	VerbCheck         DefaultActionVerb = "check"
	VerbClick         DefaultActionVerb = "click"
	VerbClickAncestor DefaultActionVerb = "clickAncestor"
	VerbJump          DefaultActionVerb = "jump"
	VerbOpen          DefaultActionVerb = "open"
	VerbPress         DefaultActionVerb = "press"
	VerbSelect        DefaultActionVerb = "select"
	VerbUncheck       DefaultActionVerb = "uncheck"
)

// NodeState holds the boolean state flags the classifier reads.
type NodeState struct {
	Offscreen bool
	Invisible bool
	Focusable bool
	Editable  bool
	Disabled  bool
	Focused   bool
}

// ScrollState describes a node's scroll offsets and bounds.
// Scrollable is false for nodes the host cannot scroll.
type ScrollState struct {
	Scrollable bool
	X, XMin    int
	XMax       int
	Y, YMin    int
	YMax       int
}

// CanScrollUp reports whether scrolling up would move the viewport.
func (s ScrollState) CanScrollUp() bool { return s.Scrollable && s.Y > s.YMin }

// CanScrollDown reports whether scrolling down would move the viewport.
func (s ScrollState) CanScrollDown() bool { return s.Scrollable && s.Y < s.YMax }

// CanScrollLeft reports whether scrolling left would move the viewport.
func (s ScrollState) CanScrollLeft() bool { return s.Scrollable && s.X > s.XMin }

// CanScrollRight reports whether scrolling right would move the viewport.
func (s ScrollState) CanScrollRight() bool { return s.Scrollable && s.X < s.XMax }

// ScrollDirection selects which way a scroll action moves.
type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
	ScrollLeft
	ScrollRight
)
