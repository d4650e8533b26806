// Package dispatch turns switch commands into navigation calls.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/scanmode"
)

// ErrUnknownCommand is returned for a command outside entity.Commands.
var ErrUnknownCommand = errors.New("unknown command")

// Navigator moves focus between items.
type Navigator interface {
	MoveForward(ctx context.Context) error
	MoveBackward(ctx context.Context) error
}

// Selector acts on the focused item.
type Selector interface {
	OnSelect(ctx context.Context)
	IsMenuOpen() bool
}

// PointScanner advances the point-scan sweep.
type PointScanner interface {
	Advance(ctx context.Context)
}

// AutoScan is restarted after every command so the user gets a full interval.
type AutoScan interface {
	RestartIfRunning(ctx context.Context)
}

// Deps are the controllers a Dispatcher drives.
type Deps struct {
	Navigator Navigator
	Selector  Selector
	Point     PointScanner
	AutoScan  AutoScan
	Mode      *scanmode.State
}

// Dispatcher routes commands. It runs on the main loop.
type Dispatcher struct {
	nav      Navigator
	selector Selector
	point    PointScanner
	autoScan AutoScan
	mode     *scanmode.State
}

// New creates a Dispatcher.
func New(deps Deps) *Dispatcher {
	return &Dispatcher{
		nav:      deps.Navigator,
		selector: deps.Selector,
		point:    deps.Point,
		autoScan: deps.AutoScan,
		mode:     deps.Mode,
	}
}

// Dispatch runs cmd. While point scanning with no menu open, select advances
// the sweep and next/previous are ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd entity.Command) error {
	log := logging.FromContext(ctx)
	sweeping := d.mode != nil && d.mode.InPointScan() && !d.selector.IsMenuOpen()

	var err error
	switch cmd {
	case entity.CommandSelect:
		if sweeping {
			d.point.Advance(ctx)
		} else {
			d.selector.OnSelect(ctx)
		}
	case entity.CommandNext:
		if !sweeping {
			err = d.nav.MoveForward(ctx)
		}
	case entity.CommandPrevious:
		if !sweeping {
			err = d.nav.MoveBackward(ctx)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	log.Debug().Str("command", cmd.String()).Bool("point_scan", sweeping).Msg("command dispatched")
	if d.autoScan != nil {
		d.autoScan.RestartIfRunning(ctx)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}
