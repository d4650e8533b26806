// Package pointscan drives point scanning: the host sweeps a line across
// the screen on each axis and the user picks a point to click.
package pointscan

import (
	"context"
	"time"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/scanmode"
)

// DefaultSpeed is the sweep speed used when the preference is unset.
const DefaultSpeed = 50 * time.Millisecond

// MenuOpener opens the click menu at a chosen point.
type MenuOpener interface {
	OpenPointScanMenu(ctx context.Context, pt entity.Point)
}

// Controller holds the last chosen point.
type Controller struct {
	ctx     context.Context
	surface port.Surface
	prefs   port.Preferences
	mode    *scanmode.State
	menu    MenuOpener

	point    entity.Point
	hasPoint bool
	// gen tags each sweep so a late point from a stopped sweep is dropped.
	gen uint64
}

// New creates a point scan controller.
func New(ctx context.Context, surface port.Surface, prefs port.Preferences, mode *scanmode.State) *Controller {
	ctx = logging.WithComponent(ctx, "pointscan")
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating point scan controller")

	return &Controller{
		ctx:     ctx,
		surface: surface,
		prefs:   prefs,
		mode:    mode,
	}
}

// SetMenuOpener connects the action menu.
func (c *Controller) SetMenuOpener(m MenuOpener) {
	c.menu = m
}

// Point returns the last chosen point.
func (c *Controller) Point() (entity.Point, bool) {
	return c.point, c.hasPoint
}

// Start hides the focus rings, switches to point scan and begins a sweep.
func (c *Controller) Start(ctx context.Context) {
	log := logging.FromContext(ctx)

	if err := c.surface.HideFocusRings(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to hide focus rings")
	}
	c.mode.Set(entity.ModePointScan)

	c.gen++
	gen := c.gen
	if err := c.surface.StartPointScan(ctx, c.speed(), func(pt entity.Point) {
		if gen != c.gen || !c.mode.InPointScan() {
			return
		}
		c.onPoint(ctx, pt)
	}); err != nil {
		log.Warn().Err(err).Msg("failed to start point scan")
	}
}

func (c *Controller) onPoint(ctx context.Context, pt entity.Point) {
	logging.FromContext(ctx).Debug().Int("x", pt.X).Int("y", pt.Y).Msg("point chosen")
	c.point, c.hasPoint = pt, true
	if c.menu != nil {
		c.menu.OpenPointScanMenu(ctx, pt)
	}
}

// Advance fixes the axis being swept.
func (c *Controller) Advance(ctx context.Context) {
	if err := c.surface.AdvancePointScan(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to advance point scan")
	}
}

// Stop ends the sweep and returns to item scan.
func (c *Controller) Stop(ctx context.Context) {
	c.gen++
	c.mode.Set(entity.ModeItemScan)
	if err := c.surface.StopPointScan(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to stop point scan")
	}
}

// PerformMouseAction clicks at the chosen point and starts a new sweep.
// Only left and right clicks are accepted.
func (c *Controller) PerformMouseAction(ctx context.Context, action entity.MenuAction) {
	log := logging.FromContext(ctx)

	var button entity.MouseButton
	switch action {
	case entity.ActionLeftClick:
		button = entity.MouseLeft
	case entity.ActionRightClick:
		button = entity.MouseRight
	default:
		log.Warn().Str("action", string(action)).Msg("not a mouse action")
		return
	}
	if !c.hasPoint {
		log.Warn().Msg("click without a chosen point")
		return
	}

	if err := c.surface.Click(ctx, c.point, button); err != nil {
		log.Warn().Err(err).Msg("click failed")
	}
	c.Start(ctx)
}

func (c *Controller) speed() time.Duration {
	if c.prefs != nil {
		if s := c.prefs.PointScanSpeed(); s > 0 {
			return s
		}
	}
	return DefaultSpeed
}
