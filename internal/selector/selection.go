package selector

// Mode is the selection cardinality rule.
type Mode int

const (
	Single Mode = iota
	Multiple
)

// ModeFromString parses a config value. Unknown values map to Single.
func ModeFromString(s string) Mode {
	if s == "multiple" {
		return Multiple
	}
	return Single
}

// Selection owns the set of chosen person ids. The slice keeps insertion
// order for display; order carries no other meaning.
//
// Every rejected operation is a silent no-op: cap hits, disabled
// toggles, clearing when not allowed. These are UX constraints, not
// errors.
type Selection struct {
	mode       Mode
	max        int // 0 = unbounded (multiple mode only)
	allowClear bool
	disabled   bool
	ids        []string
}

// ToggleResult describes what a Toggle did. Collapse is set on a
// single-mode commit (select or permitted clear): the popover should
// close and focus return to the trigger.
type ToggleResult struct {
	Changed  bool
	Collapse bool
}

// NewSelection builds a selection machine seeded with initial ids.
// In single mode only the first initial id is kept; in multiple mode
// the initial set is truncated to max when a cap is configured.
func NewSelection(mode Mode, max int, allowClear bool, initial []string) *Selection {
	s := &Selection{mode: mode, max: max, allowClear: allowClear}
	for _, id := range initial {
		if s.Contains(id) {
			continue
		}
		if mode == Single && len(s.ids) == 1 {
			break
		}
		if mode == Multiple && max > 0 && len(s.ids) == max {
			break
		}
		s.ids = append(s.ids, id)
	}
	return s
}

// SetDisabled freezes or unfreezes all mutating operations.
func (s *Selection) SetDisabled(disabled bool) { s.disabled = disabled }

// Mode returns the cardinality rule.
func (s *Selection) Mode() Mode { return s.mode }

// Len returns the current selection size.
func (s *Selection) Len() int { return len(s.ids) }

// Contains reports whether id is selected.
func (s *Selection) Contains(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the selected ids in insertion order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// First returns the sole selected id in single mode, or "" when empty.
func (s *Selection) First() string {
	if len(s.ids) == 0 {
		return ""
	}
	return s.ids[0]
}

// Toggle flips membership of id under the mode's rules.
//
// Single mode: re-toggling the selected id clears it only when
// allowClear is set; selecting a new id always replaces. Both commits
// request a collapse. Multiple mode: removal is always permitted, adds
// are rejected outright once the cap is reached (never truncated).
func (s *Selection) Toggle(id string) ToggleResult {
	if s.disabled {
		return ToggleResult{}
	}

	if s.mode == Single {
		if s.Contains(id) {
			if !s.allowClear {
				return ToggleResult{}
			}
			s.ids = nil
			return ToggleResult{Changed: true, Collapse: true}
		}
		s.ids = []string{id}
		return ToggleResult{Changed: true, Collapse: true}
	}

	if s.Contains(id) {
		s.remove(id)
		return ToggleResult{Changed: true}
	}
	if s.max > 0 && len(s.ids) >= s.max {
		return ToggleResult{}
	}
	s.ids = append(s.ids, id)
	return ToggleResult{Changed: true}
}

// Remove drops id from the selection if present.
func (s *Selection) Remove(id string) bool {
	if s.disabled || !s.Contains(id) {
		return false
	}
	s.remove(id)
	return true
}

// Clear empties the selection.
func (s *Selection) Clear() bool {
	if s.disabled || len(s.ids) == 0 {
		return false
	}
	s.ids = nil
	return true
}

// Replace sets the selection to exactly id. Used by keyboard navigation
// in single mode.
func (s *Selection) Replace(id string) bool {
	if s.disabled {
		return false
	}
	if len(s.ids) == 1 && s.ids[0] == id {
		return false
	}
	s.ids = []string{id}
	return true
}

func (s *Selection) remove(id string) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}
