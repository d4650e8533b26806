package config

import (
	"os"
	"path/filepath"
)

const (
	appName     = "switchscan"
	journalName = "switchscan.sqlite"
	dirPerm     = 0755
	filePerm    = 0644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for switchscan:
// - $XDG_CONFIG_HOME/switchscan (default: ~/.config/switchscan)
// - $XDG_DATA_HOME/switchscan (default: ~/.local/share/switchscan)
// - $XDG_STATE_HOME/switchscan (default: ~/.local/state/switchscan)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(envOr("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config")), appName),
		DataHome:   filepath.Join(envOr("XDG_DATA_HOME", filepath.Join(homeDir, ".local", "share")), appName),
		StateHome:  filepath.Join(envOr("XDG_STATE_HOME", filepath.Join(homeDir, ".local", "state")), appName),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetConfigDir returns the XDG config directory for switchscan.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetJournalFile returns the default path of the error journal. It lives in
// XDG_STATE_HOME since it can be deleted without losing user data.
func GetJournalFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, journalName), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
