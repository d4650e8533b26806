package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/bnema/switchscan/internal/domain/entity"
	domainvalidation "github.com/bnema/switchscan/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAutoScan(config)...)
	validationErrors = append(validationErrors, validatePointScan(config)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateRingColors(
		"focus_ring", config.FocusRing.PrimaryColor, config.FocusRing.PreviewColor)...)
	validationErrors = append(validationErrors, validateKeys(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateMetrics(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateAutoScan(config *Config) []string {
	var validationErrors []string
	if config.AutoScan.PrimarySpeedMs < 0 {
		validationErrors = append(validationErrors, "auto_scan.primary_speed_ms must be non-negative")
	}
	if config.AutoScan.Enabled && config.AutoScan.PrimarySpeedMs == 0 {
		validationErrors = append(validationErrors, "auto_scan.primary_speed_ms must be set when auto_scan.enabled is true")
	}
	if config.AutoScan.KeyboardSpeedMs < 0 {
		validationErrors = append(validationErrors, "auto_scan.keyboard_speed_ms must be non-negative")
	}
	return validationErrors
}

func validatePointScan(config *Config) []string {
	if config.PointScan.SpeedMs <= 0 {
		return []string{"point_scan.speed_ms must be positive"}
	}
	return nil
}

func validateKeys(config *Config) []string {
	var validationErrors []string
	bound := make(map[string]string)
	for _, cmd := range entity.Commands {
		field := "keys." + cmd.String()
		keys := config.Keys.forCommand(cmd)
		if len(keys) == 0 {
			validationErrors = append(validationErrors, field+" must bind at least one key")
		}
		for _, key := range keys {
			if errs := domainvalidation.ValidateKeyBinding(field, key); len(errs) > 0 {
				validationErrors = append(validationErrors, errs...)
				continue
			}
			if prev, ok := bound[key]; ok && prev != field {
				validationErrors = append(validationErrors, fmt.Sprintf("%s key %q is already bound by %s", field, key, prev))
				continue
			}
			bound[key] = field
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateMetrics(config *Config) []string {
	if config.Metrics.Listen == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(config.Metrics.Listen); err != nil {
		return []string{fmt.Sprintf("metrics.listen must be host:port (got: %s)", config.Metrics.Listen)}
	}
	return nil
}
