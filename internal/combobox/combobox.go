// Package combobox implements the company combobox: a single-select
// filterable dropdown over the roster file's company list.
package combobox

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sahilm/fuzzy"

	"github.com/huddle-tui/huddle/internal/roster"
)

// companySource implements fuzzy.Source over the company list.
type companySource []roster.Company

func (c companySource) String(i int) string {
	// Match against both name and domain for better results
	return c[i].Name + " " + c[i].Domain
}

func (c companySource) Len() int {
	return len(c)
}

// Model is the combobox state: a text input narrowing the visible
// companies plus a wrap-around cursor over the matches. Filtered is a
// slice of indices into the full list, so the backing data is never
// copied or reordered.
type Model struct {
	companies []roster.Company
	filtered  []int

	Input  textinput.Model
	cursor int
	chosen string
}

// New creates a combobox over companies.
func New(companies []roster.Company) Model {
	input := textinput.New()
	input.Placeholder = "company..."
	input.CharLimit = 64

	m := Model{companies: companies, Input: input}
	m.applyFilter()
	return m
}

// applyFilter recomputes the visible index set from the input value.
func (m *Model) applyFilter() {
	query := m.Input.Value()
	if query == "" {
		m.filtered = make([]int, len(m.companies))
		for i := range m.companies {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.FindFrom(query, companySource(m.companies))
		m.filtered = nil
		for _, match := range matches {
			m.filtered = append(m.filtered, match.Index)
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Refilter re-applies the filter after the input changed.
func (m *Model) Refilter() { m.applyFilter() }

// Visible returns the companies currently matching the input, in match
// order.
func (m *Model) Visible() []roster.Company {
	out := make([]roster.Company, 0, len(m.filtered))
	for _, i := range m.filtered {
		out = append(out, m.companies[i])
	}
	return out
}

// Cursor returns the highlighted row index within Visible.
func (m *Model) Cursor() int { return m.cursor }

// MoveUp moves the highlight up, wrapping to the last match.
func (m *Model) MoveUp() {
	if len(m.filtered) == 0 {
		return
	}
	if m.cursor == 0 {
		m.cursor = len(m.filtered) - 1
	} else {
		m.cursor--
	}
}

// MoveDown moves the highlight down, wrapping to the first match.
func (m *Model) MoveDown() {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.filtered)
}

// Commit selects the highlighted company. It is a no-op when nothing
// matches.
func (m *Model) Commit() bool {
	if len(m.filtered) == 0 {
		return false
	}
	m.chosen = m.companies[m.filtered[m.cursor]].Name
	return true
}

// Chosen returns the committed company name, or "" before any commit.
func (m *Model) Chosen() string { return m.chosen }

// ClearChoice resets the committed company.
func (m *Model) ClearChoice() { m.chosen = "" }
