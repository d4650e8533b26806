package navigation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/switchscan/internal/domain/entity"
)

// Three windows; the third covers the top center of the second.
const windowsTree = `
id: desktop
role: desktop
rect: [0, 0, 1000, 800]
children:
  - id: win1
    role: window
    rect: [0, 0, 200, 200]
    children:
      - {id: w1a, role: button, rect: [0, 50, 20, 20]}
      - {id: w1b, role: button, rect: [30, 50, 20, 20]}
  - id: win2
    role: window
    rect: [300, 0, 200, 200]
    children:
      - {id: w2a, role: button, rect: [300, 150, 20, 20]}
      - {id: w2b, role: button, rect: [330, 150, 20, 20]}
  - id: win3
    role: window
    rect: [250, 0, 400, 100]
    children:
      - {id: w3a, role: button, rect: [260, 50, 20, 20]}
      - {id: w3b, role: button, rect: [600, 50, 20, 20]}
`

func TestMoveForward_SkipsCoveredWindow(t *testing.T) {
	f := newFixture(t, windowsTree)
	require.Equal(t, entity.NodeID("win1"), f.currentID())

	require.NoError(t, f.nav.MoveForward(f.ctx))
	assert.Equal(t, entity.NodeID("win1"), f.currentID(), "windows are checked asynchronously")
	f.sched.Drain()

	assert.Equal(t, entity.NodeID("win3"), f.currentID())
}

func TestMoveBackward_SkipsCoveredWindow(t *testing.T) {
	f := newFixture(t, windowsTree)

	require.NoError(t, f.nav.MoveBackward(f.ctx))
	f.sched.Drain()
	require.Equal(t, entity.NodeID("win3"), f.currentID())

	require.NoError(t, f.nav.MoveBackward(f.ctx))
	f.sched.Drain()
	assert.Equal(t, entity.NodeID("win1"), f.currentID())
}

func TestMoveForward_TerminatesWhenEveryWindowIsCovered(t *testing.T) {
	f := newFixture(t, windowsTree)

	// An uninteresting full-screen layer above every window.
	_, err := f.host.Insert("desktop", mustSpec(t, "id: veil\nrole: image\nrect: [0, 0, 1000, 800]\n"), -1)
	require.NoError(t, err)
	f.sched.Drain()
	require.Equal(t, entity.NodeID("win1"), f.currentID())

	require.NoError(t, f.nav.MoveForward(f.ctx))
	f.sched.Drain()

	assert.Equal(t, entity.NodeID("win1"), f.currentID())
	assert.Equal(t, 0, f.sched.Pending())
}

func TestMoveForward_StaleHitTestIsIgnored(t *testing.T) {
	f := newFixture(t, windowsTree)

	require.NoError(t, f.nav.MoveForward(f.ctx))
	// The user moves on before the occlusion check replies.
	f.nav.ForceFocusedNode(f.ctx, f.nav.CurrentGroup().FindChild(f.host.MustNode("win2")))
	f.sched.Drain()

	assert.Equal(t, entity.NodeID("win2"), f.currentID())
}

func TestTryMoving_MissingLocationSchedulesRepair(t *testing.T) {
	f := newFixture(t, windowsTree)
	g := f.nav.CurrentGroup()
	win2 := g.FindChild(f.host.MustNode("win2"))
	require.NoError(t, f.host.SetLocation("win2", nil))

	err := f.nav.tryMoving(f.ctx, win2, g.Next, f.nav.CurrentNode())
	assert.True(t, errors.Is(err, ErrMissingLocation))
	assert.Equal(t, 1, f.metrics.count(entity.ErrorMissingLocation))

	f.sched.Drain()
	assert.Equal(t, entity.NodeID("win1"), f.currentID())
}
