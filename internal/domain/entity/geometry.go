// Package entity contains domain types shared by the switch navigation core.
// These are pure Go types with no infrastructure dependencies.
package entity

import "fmt"

// Point is an absolute screen coordinate.
type Point struct {
	X, Y int
}

// Rect represents a node's screen position and size.
type Rect struct {
	Left, Top     int // Top-left position in screen coordinates
	Width, Height int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// TopCenter returns the point used as an occlusion probe: horizontally centered,
// just inside the top edge.
func (r Rect) TopCenter() Point {
	y := r.Top
	if r.Height > 1 {
		y++
	}
	return Point{X: r.Left + r.Width/2, Y: y}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// PointRect returns a 1x1 rectangle anchored at p.
func PointRect(p Point) Rect {
	return Rect{Left: p.X, Top: p.Y, Width: 1, Height: 1}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Left, r.Top, r.Width, r.Height)
}
