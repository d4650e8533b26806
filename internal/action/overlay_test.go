package action

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/switchscan/internal/application/port/mocks"
	"github.com/bnema/switchscan/internal/domain/entity"
)

var volMenu = []entity.MenuAction{
	entity.ActionSelect, entity.ActionIncrement, entity.ActionDecrement,
	entity.ActionPointScan, entity.ActionSettings,
}

func newMockSurface(t *testing.T) *mocks.MockSurface {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)
	surface.EXPECT().ShowFocusRings(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	surface.EXPECT().HideFocusRings(gomock.Any()).Return(nil).AnyTimes()
	return surface
}

func TestMenuOverlay_ReportsMenuThatNeverAppears(t *testing.T) {
	surface := newMockSurface(t)
	surface.EXPECT().
		ShowMenu(gomock.Any(), entity.Rect{Left: 10, Top: 10, Width: 200, Height: 20}, volMenu).
		Return(nil)

	f := newFixture(t, menuTree, surface)
	f.ctl.OnSelect(f.ctx)
	f.sched.Drain()
	require.True(t, f.ctl.Overlay().IsOpen())

	f.sched.Advance(MenuLoadTimeout)

	assert.Equal(t, []entity.ErrorType{entity.ErrorMenuNotFound}, f.metrics.errors)
	assert.True(t, f.nav.CurrentGroup().IsDesktop())
	assert.Equal(t, entity.NodeID("vol"), f.currentID())
}

func TestOnSelect_ClosesMenuThatNeverAppeared(t *testing.T) {
	surface := newMockSurface(t)
	surface.EXPECT().ShowMenu(gomock.Any(), gomock.Any(), volMenu).Return(nil)
	surface.EXPECT().HideMenu(gomock.Any()).Return(nil)

	f := newFixture(t, menuTree, surface)
	f.ctl.OnSelect(f.ctx)
	f.sched.Drain()
	f.sched.Advance(MenuLoadTimeout)
	require.True(t, f.ctl.IsMenuOpen())
	require.False(t, f.ctl.Overlay().Loading())

	f.ctl.OnSelect(f.ctx)

	assert.False(t, f.ctl.IsMenuOpen())
	assert.False(t, f.ctl.Overlay().IsOpen())
	assert.NotContains(t, f.host.Log(), "default:vol")
	assert.Empty(t, f.metrics.actions)
}

func TestMenuOverlay_ShowFailureClosesMenu(t *testing.T) {
	surface := newMockSurface(t)
	surface.EXPECT().ShowMenu(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("compositor gone"))

	f := newFixture(t, menuTree, surface)
	f.ctl.OnSelect(f.ctx)

	assert.False(t, f.ctl.IsMenuOpen())
	assert.False(t, f.ctl.Overlay().IsOpen())
	assert.Empty(t, f.metrics.menus)
}

func TestMenuOverlay_HidesOnce(t *testing.T) {
	surface := newMockSurface(t)
	gomock.InOrder(
		surface.EXPECT().ShowMenu(gomock.Any(), gomock.Any(), volMenu).Return(nil),
		surface.EXPECT().HideMenu(gomock.Any()).Return(nil).Times(1),
	)

	f := newFixture(t, menuTree, surface)
	f.ctl.OnSelect(f.ctx)
	f.ctl.ExitAllMenus(f.ctx)
	f.ctl.ExitAllMenus(f.ctx)

	assert.False(t, f.ctl.Overlay().IsOpen())
	f.sched.Advance(MenuLoadTimeout)
	assert.Empty(t, f.metrics.errors, "the wait ends with the menu")
}

func TestMenuOverlay_UnchangedMenuIsNotRenderedAgain(t *testing.T) {
	f := newFixture(t, menuTree, nil)
	openMainMenu(t, f, "vol")
	f.focusMenuItem(t, entity.ActionDecrement)

	f.ctl.openCurrentMenu(f.ctx, entity.ActionIncrement)
	f.sched.Drain()

	shows := 0
	for _, entry := range f.host.Log() {
		if entry == "show_menu:select,increment,decrement,point_scan,settings" {
			shows++
		}
	}
	assert.Equal(t, 1, shows)
	assert.Equal(t, entity.ActionIncrement, f.currentAction())
}

func TestShowsActions(t *testing.T) {
	f := newFixture(t, menuTree, nil)
	openMainMenu(t, f, "vol")
	menu := f.nav.CurrentGroup().AutomationNode()

	assert.True(t, showsActions(menu, volMenu))
	assert.False(t, showsActions(menu, volMenu[:2]))
	assert.False(t, showsActions(menu, append(volMenu[1:], entity.ActionSelect)))
	assert.False(t, showsActions(f.host.Desktop(), volMenu))
}
