package validation

import (
	"regexp"
	"strings"
)

// keyNameRE accepts bubbletea-style key names such as "enter", "space", "tab",
// "ctrl+n" or a single printable character.
var keyNameRE = regexp.MustCompile(`^((ctrl|alt|shift)\+)*([a-z0-9]+|[[:punct:]])$`)

func ValidateKeyBinding(field, value string) []string {
	var errs []string
	value = strings.TrimSpace(value)
	if value == "" {
		errs = append(errs, field+" key cannot be empty")
		return errs
	}
	if !keyNameRE.MatchString(value) {
		errs = append(errs, field+" key must be a key name like \"space\", \"enter\" or \"ctrl+n\"")
	}
	return errs
}
