package port

//go:generate mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks

import (
	"context"
	"time"

	"github.com/bnema/switchscan/internal/domain/entity"
)

// Surface is the automation-privileged host surface: overlays, synthetic
// input and system pages.
type Surface interface {
	// ShowMenu shows the action menu overlay next to location. The overlay's
	// own presentation appears in the tree under a node named
	// entity.MenuOverlayName once the host has laid it out.
	ShowMenu(ctx context.Context, location entity.Rect, actions []entity.MenuAction) error
	HideMenu(ctx context.Context) error

	ShowFocusRings(ctx context.Context, rings []entity.FocusRing) error
	HideFocusRings(ctx context.Context) error

	// StartPointScan begins an X-then-Y sweep; onPoint is called once with
	// the chosen point.
	StartPointScan(ctx context.Context, speed time.Duration, onPoint func(entity.Point)) error
	// AdvancePointScan fixes the current sweep axis.
	AdvancePointScan(ctx context.Context) error
	StopPointScan(ctx context.Context) error

	Click(ctx context.Context, pt entity.Point, button entity.MouseButton) error
	SendKey(ctx context.Context, key entity.KeyPress) error

	SetVirtualKeyboardVisible(ctx context.Context, visible bool) error
	ToggleDictation(ctx context.Context) error
	OpenSettings(ctx context.Context) error
}
