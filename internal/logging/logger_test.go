package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(in))
		})
	}
}

func TestNewFromConfigValues_Level(t *testing.T) {
	logger := NewFromConfigValues("debug", "json")
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNew_WithFileSink(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "switchscan.log")
	logger := New(cfg)
	logger.Info().Msg("hello")
	assert.FileExists(t, cfg.File)
}

func TestWithComponent_AddsField(t *testing.T) {
	ctx := WithContext(context.Background(), NewFromConfigValues("debug", "json"))
	ctx = WithComponent(ctx, "navigator")
	assert.NotNil(t, FromContext(ctx))
}

func TestNew_QuietWritesOnlyToFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Quiet = true
	cfg.File = filepath.Join(t.TempDir(), "switchscan.log")
	logger := New(cfg)
	logger.Info().Msg("hello")

	data, err := os.ReadFile(cfg.File)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}
