package selector

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/huddle-tui/huddle/internal/roster"
)

// SortMode selects the roster ordering strategy.
type SortMode int

const (
	SortNone SortMode = iota
	SortAlphabetical
	SortManagement
)

// String returns the config-file spelling of the mode.
func (m SortMode) String() string {
	switch m {
	case SortAlphabetical:
		return "alphabetical"
	case SortManagement:
		return "management"
	default:
		return "none"
	}
}

// SortModeFromString parses a config value. Unknown values map to SortNone.
func SortModeFromString(s string) SortMode {
	switch s {
	case "alphabetical":
		return SortAlphabetical
	case "management":
		return SortManagement
	default:
		return SortNone
	}
}

// collator compares full display names. language.Und gives
// locale-neutral Unicode collation, which handles accented and
// non-Latin names where byte comparison would not.
var collator = collate.New(language.Und)

// Sort returns a new slice ordered by mode. The input is never mutated.
//
// Management mode needs currentUserID; when it is empty or not present
// in the roster the input order is returned untouched. Tiers: the
// current user first, then their declared direct reports, then siblings
// (people on their superior's declared reports list), then everyone
// else. Each tier past the first is ordered alphabetically by full
// name. Dangling ids simply land in the last tier.
func Sort(people []roster.Person, mode SortMode, currentUserID string) []roster.Person {
	out := make([]roster.Person, len(people))
	copy(out, people)

	switch mode {
	case SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].FullName, out[j].FullName) < 0
		})
	case SortManagement:
		byID := roster.ByID(people)
		current, ok := byID[currentUserID]
		if currentUserID == "" || !ok {
			return out
		}
		tierOf := managementTiers(current, byID)
		sort.SliceStable(out, func(i, j int) bool {
			ti, tj := tierOf(out[i].ID), tierOf(out[j].ID)
			if ti != tj {
				return ti < tj
			}
			return collator.CompareString(out[i].FullName, out[j].FullName) < 0
		})
	}
	return out
}

// managementTiers builds the tier lookup for one sort pass.
// 0 = current user, 1 = direct report, 2 = sibling, 3 = everyone else.
func managementTiers(current roster.Person, byID map[string]roster.Person) func(id string) int {
	reports := make(map[string]bool, len(current.ReportIDs))
	for _, id := range current.ReportIDs {
		if _, ok := byID[id]; ok && id != current.ID {
			reports[id] = true
		}
	}

	siblings := make(map[string]bool)
	if superior, ok := byID[current.ManagerID]; ok && superior.ID != current.ID {
		for _, id := range superior.ReportIDs {
			if _, ok := byID[id]; ok && id != current.ID {
				siblings[id] = true
			}
		}
	}

	return func(id string) int {
		switch {
		case id == current.ID:
			return 0
		case reports[id]:
			return 1
		case siblings[id]:
			return 2
		default:
			return 3
		}
	}
}
