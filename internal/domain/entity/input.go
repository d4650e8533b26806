package entity

// Key names a synthesized key press sent to the host.
type Key string

const (
	KeyHome  Key = "home"
	KeyEnd   Key = "end"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyC     Key = "c"
	KeyX     Key = "x"
	KeyV     Key = "v"
)

// KeyPress is a key with modifiers.
type KeyPress struct {
	Key   Key
	Ctrl  bool
	Shift bool
}

// MouseButton selects the button of a synthesized click.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

func (b MouseButton) String() string {
	if b == MouseRight {
		return "right"
	}
	return "left"
}
