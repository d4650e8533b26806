// Package config loads switchscan preferences with viper, validates them and
// reloads them when the file changes.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/switchscan/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	explicit  bool
}

// NewManager creates a manager that reads config.toml from the XDG config
// directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	return newManager(v, false)
}

// NewManagerForFile creates a manager bound to a single config file. The file
// is created with defaults when missing.
func NewManagerForFile(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return newManager(v, true)
}

func newManager(v *viper.Viper, explicit bool) (*Manager, error) {
	// SWITCHSCAN_AUTO_SCAN_ENABLED overrides auto_scan.enabled and so on.
	v.SetEnvPrefix("SWITCHSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SWITCHSCAN_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SWITCHSCAN_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SWITCHSCAN_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SWITCHSCAN_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:    v,
		explicit: explicit,
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.explicit {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.apply()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configPath(), createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// apply decodes, normalizes and validates the viper state into m.config.
// Must be called with m.mu held for write.
func (m *Manager) apply() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureJournalPath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureJournalPath(config *Config) error {
	if config.Journal.Path != "" {
		return nil
	}
	path, err := GetJournalFile()
	if err != nil {
		return fmt.Errorf("failed to get journal path: %w", err)
	}
	config.Journal.Path = path
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.FocusRing.PrimaryColor = strings.TrimSpace(config.FocusRing.PrimaryColor)
	config.FocusRing.PreviewColor = strings.TrimSpace(config.FocusRing.PreviewColor)
	config.Keys.Select = normalizeKeys(config.Keys.Select)
	config.Keys.Next = normalizeKeys(config.Keys.Next)
	config.Keys.Previous = normalizeKeys(config.Keys.Previous)
	config.Metrics.Listen = strings.TrimSpace(config.Metrics.Listen)
}

func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, strings.ToLower(strings.TrimSpace(k)))
	}
	return out
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Keys.Select = slices.Clone(m.config.Keys.Select)
	configCopy.Keys.Next = slices.Clone(m.config.Keys.Next)
	configCopy.Keys.Previous = slices.Clone(m.config.Keys.Previous)
	return &configCopy
}

// ConfigFile returns the path to the configuration file being used.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, err := GetConfigFile()
	if err != nil {
		return "config.toml"
	}
	return path
}

// createDefaultConfig writes the defaults to the config file.
func (m *Manager) createDefaultConfig() error {
	configFile := m.configPath()
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if !errors.As(err, &exists) {
			return fmt.Errorf("failed to write config file: %w", err)
		}
	}
	m.viper.SetConfigFile(configFile)

	logger := logging.NewFromEnv()
	logger.Info().Str("file", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("auto_scan.enabled", defaults.AutoScan.Enabled)
	m.viper.SetDefault("auto_scan.primary_speed_ms", defaults.AutoScan.PrimarySpeedMs)
	m.viper.SetDefault("auto_scan.keyboard_speed_ms", defaults.AutoScan.KeyboardSpeedMs)
	m.viper.SetDefault("point_scan.speed_ms", defaults.PointScan.SpeedMs)
	m.viper.SetDefault("text_navigation.enabled", defaults.TextNavigation.Enabled)
	m.viper.SetDefault("focus_ring.primary_color", defaults.FocusRing.PrimaryColor)
	m.viper.SetDefault("focus_ring.preview_color", defaults.FocusRing.PreviewColor)
	m.viper.SetDefault("keys.select", defaults.Keys.Select)
	m.viper.SetDefault("keys.next", defaults.Keys.Next)
	m.viper.SetDefault("keys.previous", defaults.Keys.Previous)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("metrics.listen", defaults.Metrics.Listen)
	m.viper.SetDefault("journal.path", defaults.Journal.Path)
}
