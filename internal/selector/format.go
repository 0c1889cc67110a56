package selector

import "github.com/huddle-tui/huddle/internal/roster"

// Compact resolves whether names should render abbreviated. An explicit
// override always wins; without one, a narrow viewport means compact.
func Compact(override *bool, narrow bool) bool {
	if override != nil {
		return *override
	}
	return narrow
}

// FormatName renders a person's name. Full mode returns the display
// name unchanged. Compact mode abbreviates to "Given F." when both
// structured parts exist, falls back to the given name alone, and to
// the full display name when there is no given name to abbreviate.
func FormatName(p roster.Person, compact bool) string {
	if !compact || p.GivenName == "" {
		return p.FullName
	}
	if p.FamilyName == "" {
		return p.GivenName
	}
	initial := string([]rune(p.FamilyName)[0])
	return p.GivenName + " " + initial + "."
}
