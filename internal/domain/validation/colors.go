package validation

import (
	"fmt"
	"regexp"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateRingColors checks the focus-ring palette and returns one message per
// invalid entry.
func ValidateRingColors(prefix, primary, preview string) []string {
	var errs []string

	if !IsHexColor(primary) {
		errs = append(errs, fmt.Sprintf("%s.primary_color must be a hex color like #RRGGBB, got %q", prefix, primary))
	}
	if !IsHexColor(preview) {
		errs = append(errs, fmt.Sprintf("%s.preview_color must be a hex color like #RRGGBB, got %q", prefix, preview))
	}

	return errs
}
