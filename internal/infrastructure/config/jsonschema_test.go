package config

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "switchscan configuration", doc["title"])

	defs, ok := doc["$defs"].(map[string]any)
	require.True(t, ok)
	autoScan, ok := defs["AutoScanConfig"].(map[string]any)
	require.True(t, ok)
	props, ok := autoScan["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "primary_speed_ms")
	assert.Contains(t, props, "keyboard_speed_ms")
}

func TestWriteSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.schema.json")
	require.NoError(t, WriteSchemaFile(path))
	assert.FileExists(t, path)
}
