package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/infrastructure/memtree"
	"github.com/bnema/switchscan/internal/ui/mainloop/mainlooptest"
)

const fixture = `
id: desktop
role: desktop
rect: [0, 0, 1000, 800]
children:
  - id: win
    role: window
    rect: [0, 0, 1000, 800]
    children:
      - id: pair
        role: generic
        rect: [0, 0, 500, 100]
        children:
          - id: ok
            role: button
            rect: [0, 0, 50, 20]
          - id: cancel
            role: button
            rect: [60, 0, 50, 20]
      - id: wrapped
        role: generic
        rect: [0, 200, 500, 100]
        children:
          - id: wrapped-inner
            role: generic
            rect: [0, 200, 400, 80]
            children:
              - id: lonely
                role: button
                rect: [0, 200, 50, 20]
      - id: card
        role: generic
        focusable: true
        rect: [0, 400, 200, 100]
        children:
          - id: card-text
            role: staticText
            rect: [0, 400, 200, 20]
      - id: card-with-link
        role: generic
        focusable: true
        rect: [0, 500, 200, 100]
        children:
          - id: card-link
            role: link
            verb: jump
            focusable: true
            rect: [0, 500, 50, 20]
      - id: editor
        role: generic
        editable: true
        rect: [300, 400, 200, 100]
        children:
          - id: editor-para
            role: generic
            editable: true
            rect: [300, 400, 200, 20]
      - id: hidden
        role: button
        offscreen: true
        rect: [0, 0, 10, 10]
      - id: negative
        role: button
        rect: [-20, 0, 10, 10]
      - id: disabled
        role: button
        disabled: true
        rect: [600, 0, 10, 10]
      - id: web
        role: webView
        verb: press
        rect: [600, 100, 300, 300]
      - id: item
        role: listItem
        verb: click
        rect: [600, 500, 100, 20]
      - id: pressable
        role: generic
        verb: press
        rect: [600, 600, 100, 20]
      - id: combo
        role: comboBoxSelect
        rect: [700, 600, 100, 20]
      - id: kb
        role: keyboard
        rect: [0, 700, 1000, 100]
`

func newHost(t *testing.T, doc string) *memtree.Host {
	t.Helper()
	spec, err := memtree.Parse([]byte(doc))
	require.NoError(t, err)
	h, err := memtree.New(spec, mainlooptest.New().Post)
	require.NoError(t, err)
	return h
}

func TestIsActionable(t *testing.T) {
	h := newHost(t, fixture)

	tests := []struct {
		id   entity.NodeID
		want bool
	}{
		{"ok", true},
		{"pair", false},
		{"card", true},
		{"card-with-link", false},
		{"editor", true},
		{"editor-para", false},
		{"hidden", false},
		{"negative", false},
		{"disabled", false},
		{"web", false},
		{"item", true},
		{"pressable", true},
		{"combo", true},
		{"card-text", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.want, classify.IsActionable(h.MustNode(tt.id), classify.NewCache()))
		})
	}
}

func TestIsActionable_NilCacheAndNilNode(t *testing.T) {
	h := newHost(t, fixture)
	assert.True(t, classify.IsActionable(h.MustNode("ok"), nil))
	assert.False(t, classify.IsActionable(nil, nil))
	assert.False(t, classify.IsGroup(nil, nil, nil))
	assert.False(t, classify.IsInterestingSubtree(nil, nil))
}

func TestIsGroup_Threshold(t *testing.T) {
	h := newHost(t, fixture)
	win := h.MustNode("win")

	tests := []struct {
		name string
		id   entity.NodeID
		want bool
	}{
		{"two buttons form a group", "pair", true},
		{"one wrapped button is not a group", "wrapped", false},
		{"one wrapped button at any depth", "wrapped-inner", false},
		{"leaf button", "ok", false},
		{"virtual keyboard is always a group", "kb", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify.IsGroup(h.MustNode(tt.id), win, classify.NewCache()))
		})
	}
}

func TestIsGroup_SameRectAsScopeIsRedundant(t *testing.T) {
	h := newHost(t, fixture)
	cache := classify.NewCache()

	win := h.MustNode("win")
	desktop := h.Desktop()

	assert.False(t, classify.IsGroup(win, desktop, cache), "window fills the desktop")
	assert.True(t, classify.IsGroup(win, win, cache), "a scope is compared to itself only by content")
	assert.True(t, classify.IsGroup(win, nil, cache))
}

func TestIsGroup_InvisibleNeverGroups(t *testing.T) {
	h := newHost(t, fixture)
	require.NoError(t, h.UpdateState("pair", func(s *entity.NodeState) { s.Invisible = true }))
	assert.False(t, classify.IsGroup(h.MustNode("pair"), h.MustNode("win"), nil))
}

func TestIsInteresting(t *testing.T) {
	h := newHost(t, fixture)
	win := h.MustNode("win")

	assert.True(t, classify.IsInteresting(h.MustNode("ok"), win, nil))
	assert.True(t, classify.IsInteresting(h.MustNode("pair"), win, nil))
	assert.False(t, classify.IsInteresting(h.MustNode("wrapped"), win, nil))
	assert.False(t, classify.IsInteresting(h.MustNode("card-text"), win, nil))
}

func TestIsInterestingSubtree_Monotonic(t *testing.T) {
	h := newHost(t, fixture)
	cache := classify.NewCache()

	var check func(n port.Node)
	check = func(n port.Node) {
		want := classify.IsActionable(n, cache)
		for _, c := range n.Children() {
			if classify.IsInterestingSubtree(c, cache) {
				want = true
			}
			check(c)
		}
		assert.Equal(t, want, classify.IsInterestingSubtree(n, cache), "node %s", n.ID())
	}
	check(h.Desktop())
}

func TestCache_SecondQueryDoesNoReads(t *testing.T) {
	h := newHost(t, fixture)
	cache := classify.NewCache()
	win := h.MustNode("win")
	pair := h.MustNode("pair")

	first := []bool{
		classify.IsGroup(pair, win, cache),
		classify.IsActionable(pair, cache),
		classify.IsInterestingSubtree(pair, cache),
	}
	h.ResetReads()
	second := []bool{
		classify.IsGroup(pair, win, cache),
		classify.IsActionable(pair, cache),
		classify.IsInterestingSubtree(pair, cache),
	}

	assert.Equal(t, first, second)
	assert.Equal(t, int64(0), h.Reads())
	assert.Positive(t, cache.Len())
}

func TestCache_GroupIsScopedToScope(t *testing.T) {
	h := newHost(t, fixture)
	cache := classify.NewCache()
	win := h.MustNode("win")

	assert.False(t, classify.IsGroup(win, h.Desktop(), cache))
	assert.True(t, classify.IsGroup(win, win, cache))
}

func TestIsVisibleAndInputs(t *testing.T) {
	h := newHost(t, fixture)

	assert.True(t, classify.IsVisible(h.MustNode("ok")))
	assert.False(t, classify.IsVisible(h.MustNode("hidden")))
	assert.False(t, classify.IsVisible(h.MustNode("negative")))

	assert.True(t, classify.IsTextInput(h.MustNode("editor")))
	assert.False(t, classify.IsTextInput(h.MustNode("editor-para")))
	assert.True(t, classify.IsWindow(h.MustNode("win")))
	assert.False(t, classify.IsWindow(h.MustNode("pair")))
	assert.True(t, classify.IsComboBox(h.MustNode("combo")))
}

func TestIsDescendantOf(t *testing.T) {
	h := newHost(t, fixture)

	assert.True(t, classify.IsDescendantOf(h.MustNode("lonely"), h.MustNode("win")))
	assert.False(t, classify.IsDescendantOf(h.MustNode("win"), h.MustNode("win")))
	assert.False(t, classify.IsDescendantOf(h.MustNode("ok"), h.MustNode("wrapped")))
	assert.True(t, classify.SameNode(h.MustNode("ok"), h.MustNode("ok")))
	assert.True(t, classify.SameNode(nil, nil))
	assert.False(t, classify.SameNode(h.MustNode("ok"), nil))
}

func TestInterestingChildren_OneLevelDecomposition(t *testing.T) {
	h := newHost(t, fixture)

	ids := func(nodes []port.Node) []entity.NodeID {
		out := make([]entity.NodeID, len(nodes))
		for i, n := range nodes {
			out[i] = n.ID()
		}
		return out
	}

	want := []entity.NodeID{"pair", "lonely", "card", "card-link", "editor", "item", "pressable", "combo", "kb"}
	assert.Equal(t, want, ids(classify.InterestingChildren(h.MustNode("win"), nil)))
	assert.Equal(t, []entity.NodeID{"ok", "cancel"}, ids(classify.InterestingChildren(h.MustNode("pair"), nil)))

	// The window covers the whole desktop, so it adds no level of its own.
	assert.Equal(t, want, ids(classify.InterestingChildren(h.Desktop(), nil)))
}

func TestRestrictionsFor(t *testing.T) {
	h := newHost(t, fixture)
	win := h.MustNode("win")
	r := classify.RestrictionsFor(win, nil)

	assert.True(t, r.Root(win))
	assert.False(t, r.Leaf(win), "the scope is never a leaf")
	assert.True(t, r.Leaf(h.MustNode("pair")))
	assert.True(t, r.Leaf(h.MustNode("card-text")))
	assert.False(t, r.Leaf(h.MustNode("wrapped")))
	assert.False(t, r.Visit(h.Desktop()))
	assert.True(t, r.Visit(h.MustNode("ok")))
}
