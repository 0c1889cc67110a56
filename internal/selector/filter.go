package selector

import (
	"strings"

	"github.com/huddle-tui/huddle/internal/roster"
)

// Criteria is the active filter triple. Empty fields match everything.
type Criteria struct {
	Search     string
	Department string
	Role       string
}

// Matches reports whether a single person passes all three predicates.
// The predicates are independent, so filtering composes in any order.
func (c Criteria) Matches(p roster.Person) bool {
	if c.Department != "" && p.Department != c.Department {
		return false
	}
	if c.Role != "" && p.Role != c.Role {
		return false
	}
	if c.Search == "" {
		return true
	}
	// Case-insensitive substring match, no fuzziness: diacritics are
	// compared literally.
	q := strings.ToLower(c.Search)
	for _, field := range []string{p.FullName, p.Email, p.Role, p.Title} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Normalize clears the role constraint when the chosen department no
// longer offers it. This is an expected transition, not an error.
// It reports whether anything changed.
func (c *Criteria) Normalize(people []roster.Person, allRoles []string) bool {
	if c.Role == "" {
		return false
	}
	for _, r := range AvailableRoles(people, c.Department, allRoles) {
		if r == c.Role {
			return false
		}
	}
	c.Role = ""
	return true
}

// Filter narrows an ordered roster by criteria, preserving order.
func Filter(people []roster.Person, c Criteria) []roster.Person {
	var out []roster.Person
	for _, p := range people {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// AvailableRoles returns the subset of allRoles actually present in the
// chosen department, in allRoles order. No department means no
// restriction.
func AvailableRoles(people []roster.Person, department string, allRoles []string) []string {
	if department == "" {
		return allRoles
	}
	present := make(map[string]bool)
	for _, p := range people {
		if p.Department == department && p.Role != "" {
			present[p.Role] = true
		}
	}
	var out []string
	for _, r := range allRoles {
		if present[r] {
			out = append(out, r)
		}
	}
	return out
}
