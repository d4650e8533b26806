package config

// Config represents the complete configuration for switchscan.
type Config struct {
	AutoScan       AutoScanConfig       `mapstructure:"auto_scan" toml:"auto_scan"`
	PointScan      PointScanConfig      `mapstructure:"point_scan" toml:"point_scan"`
	TextNavigation TextNavigationConfig `mapstructure:"text_navigation" toml:"text_navigation"`
	FocusRing      FocusRingConfig      `mapstructure:"focus_ring" toml:"focus_ring"`
	Keys           KeysConfig           `mapstructure:"keys" toml:"keys"`
	Logging        LoggingConfig        `mapstructure:"logging" toml:"logging"`
	Metrics        MetricsConfig        `mapstructure:"metrics" toml:"metrics"`
	Journal        JournalConfig        `mapstructure:"journal" toml:"journal"`
}

// AutoScanConfig controls automatic item scanning.
type AutoScanConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
	// PrimarySpeedMs is the interval between automatic moves.
	PrimarySpeedMs int `mapstructure:"primary_speed_ms" toml:"primary_speed_ms" jsonschema:"minimum=0"`
	// KeyboardSpeedMs overrides the interval inside the virtual keyboard.
	// Zero uses PrimarySpeedMs.
	KeyboardSpeedMs int `mapstructure:"keyboard_speed_ms" toml:"keyboard_speed_ms" jsonschema:"minimum=0"`
}

// PointScanConfig controls the point-scan sweep.
type PointScanConfig struct {
	SpeedMs int `mapstructure:"speed_ms" toml:"speed_ms" jsonschema:"minimum=1"`
}

// TextNavigationConfig controls the caret and selection menu.
type TextNavigationConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
}

// FocusRingConfig holds the focus ring palette as #RRGGBB colors.
type FocusRingConfig struct {
	PrimaryColor string `mapstructure:"primary_color" toml:"primary_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	PreviewColor string `mapstructure:"preview_color" toml:"preview_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}

// KeysConfig binds key names to the three switch commands.
type KeysConfig struct {
	Select   []string `mapstructure:"select" toml:"select"`
	Next     []string `mapstructure:"next" toml:"next"`
	Previous []string `mapstructure:"previous" toml:"previous"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	// File enables a rotated log file when set.
	File       string `mapstructure:"file" toml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days"`
}

// MetricsConfig controls the prometheus endpoint.
type MetricsConfig struct {
	// Listen is a host:port for /metrics. Empty disables the endpoint.
	Listen string `mapstructure:"listen" toml:"listen"`
}

// JournalConfig locates the error journal database.
type JournalConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}
