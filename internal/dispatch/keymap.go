package dispatch

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/domain/validation"
)

// KeyMap resolves key names to commands.
type KeyMap struct {
	keys map[string]entity.Command
}

// NewKeyMap builds a KeyMap from per-command key lists. Every key must be a
// valid key name bound to exactly one command.
func NewKeyMap(bindings map[entity.Command][]string) (*KeyMap, error) {
	var errs []string
	keys := make(map[string]entity.Command)

	for _, cmd := range entity.Commands {
		for _, raw := range bindings[cmd] {
			field := "keys." + cmd.String()
			key := normalize(raw)
			if e := validation.ValidateKeyBinding(field, key); len(e) > 0 {
				errs = append(errs, e...)
				continue
			}
			if prev, ok := keys[key]; ok && prev != cmd {
				errs = append(errs, fmt.Sprintf("%s key %q is already bound to %s", field, key, prev))
				continue
			}
			keys[key] = cmd
		}
	}
	for cmd := range bindings {
		if !slices.Contains(entity.Commands, cmd) {
			errs = append(errs, fmt.Sprintf("bindings for unknown %s", cmd))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid key bindings: %s", strings.Join(errs, "; "))
	}
	return &KeyMap{keys: keys}, nil
}

// Lookup returns the command bound to key.
func (m *KeyMap) Lookup(key string) (entity.Command, bool) {
	if m == nil {
		return 0, false
	}
	cmd, ok := m.keys[normalize(key)]
	return cmd, ok
}

// Keys returns the keys bound to cmd, sorted.
func (m *KeyMap) Keys(cmd entity.Command) []string {
	var out []string
	for k, c := range m.keys {
		if c == cmd {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
