package entity

// ErrorType names a recorded, non-fatal failure for telemetry.
type ErrorType string

const (
	ErrorUninitialized          ErrorType = "uninitialized"
	ErrorInvalidColor           ErrorType = "invalid_color"
	ErrorMissingLocation        ErrorType = "missing_location"
	ErrorInvalidSelectionBounds ErrorType = "invalid_selection_bounds"
	ErrorMalformedDesktop       ErrorType = "malformed_desktop"
	ErrorMissingKeyboard        ErrorType = "missing_keyboard"
	ErrorMissingBaseNode        ErrorType = "missing_base_node"
	ErrorMenuNotFound           ErrorType = "menu_not_found"
	ErrorUnknownAction          ErrorType = "unknown_action"
	ErrorNoInterestingChildren  ErrorType = "no_interesting_children"
)

// ErrorRecord is a persisted error entry.
type ErrorRecord struct {
	ID         int64
	Type       ErrorType
	Detail     string
	RecordedAt int64 // unix milliseconds
}
