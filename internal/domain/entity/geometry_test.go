package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 30, Height: 40}

	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 60, r.Bottom())
	assert.Equal(t, Point{X: 25, Y: 40}, r.Center())
	assert.Equal(t, Point{X: 25, Y: 21}, r.TopCenter())
	assert.Equal(t, "(10,20 30x40)", r.String())
}

func TestRect_TopCenterOfThinRect(t *testing.T) {
	r := Rect{Left: 0, Top: 5, Width: 10, Height: 1}
	assert.Equal(t, Point{X: 5, Y: 5}, r.TopCenter())
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Point{0, 0}, true},
		{"inside", Point{5, 5}, true},
		{"right edge is exclusive", Point{10, 5}, false},
		{"bottom edge is exclusive", Point{5, 10}, false},
		{"negative", Point{-1, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRect_Empty(t *testing.T) {
	assert.True(t, Rect{}.Empty())
	assert.True(t, Rect{Width: 5}.Empty())
	assert.False(t, PointRect(Point{3, 4}).Empty())
	assert.True(t, PointRect(Point{3, 4}).Contains(Point{3, 4}))
}

func TestScrollState(t *testing.T) {
	s := ScrollState{Scrollable: true, X: 0, XMax: 100, Y: 50, YMax: 50}

	assert.True(t, s.CanScrollUp())
	assert.False(t, s.CanScrollDown())
	assert.False(t, s.CanScrollLeft())
	assert.True(t, s.CanScrollRight())

	s.Scrollable = false
	assert.False(t, s.CanScrollUp())
	assert.False(t, s.CanScrollRight())
}
