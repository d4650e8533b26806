package port

import (
	"time"

	"github.com/bnema/switchscan/internal/domain/entity"
)

// Preferences is the persisted user preference store.
type Preferences interface {
	AutoScanEnabled() bool
	// AutoScanPrimarySpeed is zero when unset.
	AutoScanPrimarySpeed() time.Duration
	// AutoScanKeyboardSpeed is zero when unset.
	AutoScanKeyboardSpeed() time.Duration
	PointScanSpeed() time.Duration
	TextNavigationEnabled() bool
	FocusRingColors() (primary, preview string)
	// KeyBindings maps each command to the key names that trigger it.
	KeyBindings() map[entity.Command][]string

	// OnChange registers a callback invoked after preferences change.
	OnChange(callback func())
}
