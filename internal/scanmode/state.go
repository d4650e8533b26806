// Package scanmode holds the single global scanning mode.
package scanmode

import (
	"slices"

	"github.com/bnema/switchscan/internal/domain/entity"
)

// State is the live scan mode. It is owned by the main loop goroutine.
type State struct {
	mode      entity.ScanMode
	listeners []func(entity.ScanMode)
}

// New returns a State in item-scan mode.
func New() *State {
	return &State{mode: entity.ModeItemScan}
}

func (s *State) Mode() entity.ScanMode {
	return s.mode
}

// InPointScan reports whether point scanning is live.
func (s *State) InPointScan() bool {
	return s.mode == entity.ModePointScan
}

// Set switches the mode and notifies listeners when it changed.
func (s *State) Set(mode entity.ScanMode) {
	if s.mode == mode {
		return
	}
	s.mode = mode
	for _, fn := range slices.Clone(s.listeners) {
		fn(mode)
	}
}

// OnChange registers fn to run after every mode switch.
func (s *State) OnChange(fn func(entity.ScanMode)) {
	s.listeners = append(s.listeners, fn)
}
