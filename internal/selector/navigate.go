package selector

import "github.com/huddle-tui/huddle/internal/roster"

// Direction is a navigation step direction.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Step computes the id the selection should move to within view, the
// filtered and sorted roster slice. It wraps at both ends. When
// currentID is empty or not in the view, Forward lands on the first row
// and Backward on the last. ok is false only for an empty view.
//
// Step is independent of whether the popover is open: quick cycling
// from the closed trigger uses the same path.
func Step(view []roster.Person, currentID string, dir Direction) (id string, ok bool) {
	n := len(view)
	if n == 0 {
		return "", false
	}

	idx := -1
	for i, p := range view {
		if p.ID == currentID {
			idx = i
			break
		}
	}

	switch dir {
	case Forward:
		idx = (idx + 1) % n
	case Backward:
		if idx <= 0 {
			idx = n - 1
		} else {
			idx--
		}
	}
	return view[idx].ID, true
}

// ClampHighlight keeps a virtual highlight index valid for a view of n
// rows. The highlight is list-level state, deliberately decoupled from
// terminal focus; keyboard toggling in multiple mode acts on it.
func ClampHighlight(highlight, n int) int {
	if n == 0 {
		return 0
	}
	if highlight >= n {
		return n - 1
	}
	if highlight < 0 {
		return 0
	}
	return highlight
}
