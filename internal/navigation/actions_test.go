package navigation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/domain/entity"
)

const actionsTree = `
id: desktop
role: desktop
rect: [0, 0, 800, 600]
children:
  - id: list
    role: list
    rect: [0, 0, 300, 300]
    scroll: {x: 0, x_max: 0, y: 0, y_max: 200}
    children:
      - {id: item1, role: button, rect: [0, 0, 300, 20]}
      - {id: item2, role: button, rect: [0, 30, 300, 20]}
  - id: vol
    role: slider
    rect: [400, 0, 200, 20]
  - id: entry
    role: textField
    editable: true
    focusable: true
    value: hello world
    selection: [0, 5]
    rect: [400, 100, 200, 20]
  - id: empty
    role: textField
    editable: true
    focusable: true
    rect: [400, 200, 200, 20]
`

type fakeText struct {
	selecting bool
	reset     int
	started   []entity.NodeID
	ended     []entity.NodeID
	navigated []entity.MenuAction
	err       error
}

func (t *fakeText) ResetSelection(context.Context) { t.reset++ }
func (t *fakeText) Selecting() bool                { return t.selecting }
func (t *fakeText) StartSelection(_ context.Context, n port.Node) {
	t.started = append(t.started, n.ID())
}
func (t *fakeText) EndSelection(_ context.Context, n port.Node) {
	t.ended = append(t.ended, n.ID())
}
func (t *fakeText) Navigate(_ context.Context, _ port.Node, a entity.MenuAction) error {
	t.navigated = append(t.navigated, a)
	return t.err
}

func (f *fixture) item(id entity.NodeID) FocusNode {
	return f.nav.CurrentGroup().FindChild(f.host.MustNode(id))
}

func TestBasicNode_Actions(t *testing.T) {
	tests := []struct {
		name    string
		id      entity.NodeID
		textNav bool
		want    []entity.MenuAction
	}{
		{
			name: "scrollable group",
			id:   "list",
			want: []entity.MenuAction{entity.ActionSelect, entity.ActionScrollDown},
		},
		{
			name: "slider",
			id:   "vol",
			want: []entity.MenuAction{entity.ActionSelect, entity.ActionIncrement, entity.ActionDecrement},
		},
		{
			name:    "text field with selection",
			id:      "entry",
			textNav: true,
			want: append(append([]entity.MenuAction{
				entity.ActionKeyboard, entity.ActionDictation,
				entity.ActionMoveCursor, entity.ActionStartTextSelection,
			}, textNavigationActions...),
				entity.ActionCopy, entity.ActionCut, entity.ActionPaste,
			),
		},
		{
			name: "text field without text navigation",
			id:   "empty",
			want: []entity.MenuAction{entity.ActionKeyboard, entity.ActionDictation, entity.ActionPaste},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, actionsTree)
			f.prefs.textNavigation = tt.textNav

			item := f.item(tt.id)
			require.NotNil(t, item)
			assert.Equal(t, tt.want, item.Actions())
		})
	}
}

func TestBasicNode_PerformAction(t *testing.T) {
	tests := []struct {
		name   string
		id     entity.NodeID
		action entity.MenuAction
		want   entity.ActionResponse
		log    string
	}{
		{name: "select leaf", id: "vol", action: entity.ActionSelect, want: entity.ResponseCloseMenu, log: "default:vol"},
		{name: "increment", id: "vol", action: entity.ActionIncrement, want: entity.ResponseRemainOpen, log: "increment:vol"},
		{name: "decrement", id: "vol", action: entity.ActionDecrement, want: entity.ResponseRemainOpen, log: "decrement:vol"},
		{name: "scroll", id: "list", action: entity.ActionScrollDown, want: entity.ResponseReloadMenu, log: "scroll:list:0,100"},
		{name: "copy", id: "entry", action: entity.ActionCopy, want: entity.ResponseCloseMenu, log: "key:ctrl+c"},
		{name: "paste", id: "entry", action: entity.ActionPaste, want: entity.ResponseCloseMenu, log: "key:ctrl+v"},
		{name: "dictation", id: "entry", action: entity.ActionDictation, want: entity.ResponseCloseMenu, log: "dictation:true"},
		{name: "global action", id: "vol", action: entity.ActionSettings, want: entity.ResponseNoActionTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, actionsTree)
			item := f.item(tt.id)
			require.NotNil(t, item)

			assert.Equal(t, tt.want, item.PerformAction(f.ctx, tt.action))
			if tt.log != "" {
				assert.Contains(t, f.host.Log(), tt.log)
			}
		})
	}
}

func TestBasicNode_SelectGroupEntersIt(t *testing.T) {
	f := newFixture(t, actionsTree)

	resp := f.item("list").PerformAction(f.ctx, entity.ActionSelect)

	assert.Equal(t, entity.ResponseCloseMenu, resp)
	assert.Equal(t, entity.NodeID("list"), f.groupID())
	assert.Equal(t, entity.NodeID("item1"), f.currentID())
}

func TestBasicNode_ScrollUpdatesActions(t *testing.T) {
	f := newFixture(t, actionsTree)
	item := f.item("list")

	require.Equal(t, entity.ResponseReloadMenu, item.PerformAction(f.ctx, entity.ActionScrollDown))
	assert.Equal(t, []entity.MenuAction{entity.ActionSelect, entity.ActionScrollUp, entity.ActionScrollDown}, item.Actions())

	require.Equal(t, entity.ResponseReloadMenu, item.PerformAction(f.ctx, entity.ActionScrollDown))
	assert.Equal(t, []entity.MenuAction{entity.ActionSelect, entity.ActionScrollUp}, item.Actions())
}

func TestBasicNode_TextNavigation(t *testing.T) {
	f := newFixture(t, actionsTree)
	text := &fakeText{}
	f.nav.SetTextActions(text)
	item := f.item("entry")

	assert.Equal(t, entity.ResponseOpenTextNavigationMenu, item.PerformAction(f.ctx, entity.ActionMoveCursor))
	assert.Equal(t, 1, text.reset)

	assert.Equal(t, entity.ResponseOpenTextNavigationMenu, item.PerformAction(f.ctx, entity.ActionStartTextSelection))
	assert.Equal(t, []entity.NodeID{"entry"}, text.started)

	assert.Equal(t, entity.ResponseRemainOpen, item.PerformAction(f.ctx, entity.ActionJumpToEndOfText))
	assert.Equal(t, []entity.MenuAction{entity.ActionJumpToEndOfText}, text.navigated)

	assert.Equal(t, entity.ResponseExitSubmenu, item.PerformAction(f.ctx, entity.ActionEndTextSelection))
	assert.Equal(t, []entity.NodeID{"entry"}, text.ended)

	text.err = errors.New("caret lost")
	assert.Equal(t, entity.ResponseNoActionTaken, item.PerformAction(f.ctx, entity.ActionMoveForwardOneWordOfText))
}

func TestBasicNode_EndSelectionOfferedWhileSelecting(t *testing.T) {
	f := newFixture(t, actionsTree)
	text := &fakeText{}
	f.nav.SetTextActions(text)
	item := f.item("entry")

	assert.NotContains(t, item.Actions(), entity.ActionEndTextSelection)
	text.selecting = true
	assert.Contains(t, item.Actions(), entity.ActionEndTextSelection)
}

func TestBasicNode_TextNavigationWithoutController(t *testing.T) {
	f := newFixture(t, actionsTree)

	resp := f.item("entry").PerformAction(f.ctx, entity.ActionMoveCursor)

	assert.Equal(t, entity.ResponseNoActionTaken, resp)
}
