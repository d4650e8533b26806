package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_MergesBurstIntoSingleTask(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("scroll-refresh", func() { value = v })
	}

	require.Len(t, queue, 1)
	assert.True(t, c.Pending("scroll-refresh"))
	queue[0]()

	assert.Equal(t, 5, value, "latest callback should win")
	assert.False(t, c.Pending("scroll-refresh"))
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	c.Post("a", func() {})
	c.Post("b", func() {})
	c.Post("a", func() {})

	assert.Len(t, queue, 2)
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("tree-refresh", func() { ran = true })
	c.Destroy()

	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran, "queued work should be dropped after destroy")

	c.Post("tree-refresh", func() { ran = true })
	assert.Len(t, queue, 1, "no new task after destroy")
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}
