package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/switchscan/internal/domain/entity"
)

func TestKeyMap_Lookup(t *testing.T) {
	m, err := NewKeyMap(map[entity.Command][]string{
		entity.CommandSelect:   {"enter", "space"},
		entity.CommandNext:     {"tab", " Right "},
		entity.CommandPrevious: {"shift+tab"},
	})
	require.NoError(t, err)

	tests := []struct {
		key  string
		want entity.Command
		ok   bool
	}{
		{"enter", entity.CommandSelect, true},
		{"space", entity.CommandSelect, true},
		{"right", entity.CommandNext, true},
		{"TAB", entity.CommandNext, true},
		{"shift+tab", entity.CommandPrevious, true},
		{"q", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := m.Lookup(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, []string{"enter", "space"}, m.Keys(entity.CommandSelect))
}

func TestNewKeyMap_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[entity.Command][]string
		contains string
	}{
		{
			name:     "empty key",
			bindings: map[entity.Command][]string{entity.CommandSelect: {""}},
			contains: "keys.select key cannot be empty",
		},
		{
			name:     "malformed key",
			bindings: map[entity.Command][]string{entity.CommandNext: {"ctrl+"}},
			contains: "keys.next key must be a key name",
		},
		{
			name: "duplicate",
			bindings: map[entity.Command][]string{
				entity.CommandSelect: {"space"},
				entity.CommandNext:   {"space"},
			},
			contains: `keys.next key "space" is already bound to select`,
		},
		{
			name:     "unknown command",
			bindings: map[entity.Command][]string{entity.Command(9): {"x"}},
			contains: "bindings for unknown command(9)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewKeyMap(tt.bindings)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestKeyMap_NilLookup(t *testing.T) {
	var m *KeyMap
	_, ok := m.Lookup("enter")
	assert.False(t, ok)
}
