package navigation

import (
	"context"

	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/domain/validation"
	"github.com/bnema/switchscan/internal/logging"
)

const (
	DefaultPrimaryColor = "#1A73E8"
	DefaultPreviewColor = "#AECBFA"

	previewInset = 2
)

// ringPainter draws the focus rings for the navigator's position.
type ringPainter struct {
	nav *ItemNavigator
	// reported holds invalid colors already reported, so a bad preference is
	// recorded once rather than on every move.
	reported map[string]bool
}

func newRingPainter(nav *ItemNavigator) *ringPainter {
	return &ringPainter{nav: nav, reported: make(map[string]bool)}
}

func (p *ringPainter) paint(ctx context.Context) {
	nav := p.nav
	if nav.surface == nil {
		return
	}
	log := logging.FromContext(ctx)

	rings := p.rings(ctx)
	var err error
	if len(rings) == 0 {
		err = nav.surface.HideFocusRings(ctx)
	} else {
		err = nav.surface.ShowFocusRings(ctx, rings)
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to update focus rings")
	}
}

func (p *ringPainter) rings(ctx context.Context) []entity.FocusRing {
	nav := p.nav
	if nav.node == nil {
		return nil
	}
	// Point scanning draws its own lines; only the menu is item-scanned then.
	if nav.mode != nil && nav.mode.InPointScan() && (nav.group == nil || !nav.group.IsMenu()) {
		return nil
	}

	primaryColor, previewColor := p.colors(ctx)
	var rings []entity.FocusRing

	rect, ok := nav.node.Location()
	if ok {
		rings = append(rings, entity.FocusRing{Kind: entity.RingPrimary, Rect: rect, Shape: entity.ShapeSolid, Color: primaryColor})
	}

	switch {
	case nav.node.IsGroup() && ok:
		rings = append(rings, entity.FocusRing{Kind: entity.RingPreview, Rect: inset(rect, previewInset), Shape: entity.ShapeDashed, Color: previewColor})
	case nav.group != nil && !nav.group.IsDesktop():
		if groupRect, ok := nav.group.Location(); ok {
			rings = append(rings, entity.FocusRing{Kind: entity.RingPreview, Rect: groupRect, Shape: entity.ShapeSolid, Color: previewColor})
		}
	}
	return rings
}

func (p *ringPainter) colors(ctx context.Context) (primary, preview string) {
	if p.nav.prefs == nil {
		return DefaultPrimaryColor, DefaultPreviewColor
	}
	wantPrimary, wantPreview := p.nav.prefs.FocusRingColors()
	return p.pick(ctx, wantPrimary, DefaultPrimaryColor), p.pick(ctx, wantPreview, DefaultPreviewColor)
}

// pick returns want, or fallback when want is unset or invalid.
func (p *ringPainter) pick(ctx context.Context, want, fallback string) string {
	if want == "" {
		return fallback
	}
	if !validation.IsHexColor(want) {
		p.reportColor(ctx, want)
		return fallback
	}
	return want
}

func (p *ringPainter) reportColor(ctx context.Context, color string) {
	if p.reported[color] {
		return
	}
	p.reported[color] = true
	p.nav.reporter.Report(ctx, entity.ErrorInvalidColor, "invalid focus ring color %q", color)
}

func inset(r entity.Rect, by int) entity.Rect {
	if r.Width <= 2*by || r.Height <= 2*by {
		return r
	}
	return entity.Rect{Left: r.Left + by, Top: r.Top + by, Width: r.Width - 2*by, Height: r.Height - 2*by}
}
