package config

import (
	"time"
)

const (
	defaultPrimarySpeedMs   = 1000
	defaultPointScanSpeedMs = 50
	defaultPrimaryColor     = "#1A73E8"
	defaultPreviewColor     = "#AECBFA"
)

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		AutoScan: AutoScanConfig{
			Enabled:         false,
			PrimarySpeedMs:  defaultPrimarySpeedMs,
			KeyboardSpeedMs: 0,
		},
		PointScan: PointScanConfig{
			SpeedMs: defaultPointScanSpeedMs,
		},
		TextNavigation: TextNavigationConfig{
			Enabled: false,
		},
		FocusRing: FocusRingConfig{
			PrimaryColor: defaultPrimaryColor,
			PreviewColor: defaultPreviewColor,
		},
		Keys: KeysConfig{
			Select:   []string{"enter", "space"},
			Next:     []string{"tab", "right", "down"},
			Previous: []string{"shift+tab", "left", "up"},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
