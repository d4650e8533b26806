package entity

// RingKind distinguishes the focus-ring overlays.
type RingKind int

const (
	// RingPrimary surrounds the focused node.
	RingPrimary RingKind = iota
	// RingPreview surrounds the scope the user would enter or is in.
	RingPreview
)

// RingShape selects how the host draws a ring.
type RingShape int

const (
	ShapeSolid RingShape = iota
	ShapeDashed
)

// FocusRing is one overlay the host draws.
type FocusRing struct {
	Kind  RingKind
	Rect  Rect
	Shape RingShape
	Color string // #RRGGBB
}
