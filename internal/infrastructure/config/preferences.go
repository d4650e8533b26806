package config

import (
	"time"

	"github.com/bnema/switchscan/internal/domain/entity"
)

func (k KeysConfig) forCommand(cmd entity.Command) []string {
	switch cmd {
	case entity.CommandSelect:
		return k.Select
	case entity.CommandNext:
		return k.Next
	case entity.CommandPrevious:
		return k.Previous
	default:
		return nil
	}
}

// Preferences exposes a Manager as port.Preferences. Change callbacks are
// handed to post so they run on the main loop.
type Preferences struct {
	manager *Manager
	post    func(func())
}

// NewPreferences adapts m. A nil post runs callbacks on the watcher goroutine.
func NewPreferences(m *Manager, post func(func())) *Preferences {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Preferences{manager: m, post: post}
}

func (p *Preferences) AutoScanEnabled() bool {
	return p.manager.Get().AutoScan.Enabled
}

func (p *Preferences) AutoScanPrimarySpeed() time.Duration {
	return msToDuration(p.manager.Get().AutoScan.PrimarySpeedMs)
}

func (p *Preferences) AutoScanKeyboardSpeed() time.Duration {
	return msToDuration(p.manager.Get().AutoScan.KeyboardSpeedMs)
}

func (p *Preferences) PointScanSpeed() time.Duration {
	return msToDuration(p.manager.Get().PointScan.SpeedMs)
}

func (p *Preferences) TextNavigationEnabled() bool {
	return p.manager.Get().TextNavigation.Enabled
}

func (p *Preferences) FocusRingColors() (primary, preview string) {
	ring := p.manager.Get().FocusRing
	return ring.PrimaryColor, ring.PreviewColor
}

func (p *Preferences) KeyBindings() map[entity.Command][]string {
	keys := p.manager.Get().Keys
	out := make(map[entity.Command][]string, len(entity.Commands))
	for _, cmd := range entity.Commands {
		out[cmd] = keys.forCommand(cmd)
	}
	return out
}

// OnChange registers callback for every successful reload.
func (p *Preferences) OnChange(callback func()) {
	p.manager.OnConfigChange(func(*Config) {
		p.post(callback)
	})
}
