package combobox

import (
	"testing"

	"github.com/huddle-tui/huddle/internal/roster"
)

var testCompanies = []roster.Company{
	{Name: "Acme", Domain: "acme.io"},
	{Name: "Globex", Domain: "globex.com"},
	{Name: "Initech", Domain: "initech.dev"},
}

func setQuery(m *Model, q string) {
	m.Input.SetValue(q)
	m.Refilter()
}

func TestEmptyQueryShowsAll(t *testing.T) {
	m := New(testCompanies)

	visible := m.Visible()
	if len(visible) != 3 {
		t.Fatalf("Expected all 3 companies visible, got %d", len(visible))
	}
	for i, c := range testCompanies {
		if visible[i].Name != c.Name {
			t.Errorf("Visible[%d] = %q, want %q", i, visible[i].Name, c.Name)
		}
	}
}

func TestFuzzyFilter(t *testing.T) {
	m := New(testCompanies)

	setQuery(&m, "glbx")
	visible := m.Visible()
	if len(visible) != 1 || visible[0].Name != "Globex" {
		t.Errorf("Expected [Globex], got %v", visible)
	}
}

func TestFilterMatchesDomain(t *testing.T) {
	m := New(testCompanies)

	setQuery(&m, "dev")
	visible := m.Visible()
	if len(visible) != 1 || visible[0].Name != "Initech" {
		t.Errorf("Expected [Initech] via domain match, got %v", visible)
	}
}

func TestFilterClampsCursor(t *testing.T) {
	m := New(testCompanies)
	m.MoveDown()
	m.MoveDown()
	if m.Cursor() != 2 {
		t.Fatalf("Expected cursor 2, got %d", m.Cursor())
	}

	// Narrowing to a single match must pull the cursor back in range.
	setQuery(&m, "acme")
	if m.Cursor() != 0 {
		t.Errorf("Expected cursor clamped to 0, got %d", m.Cursor())
	}
}

func TestCursorWraps(t *testing.T) {
	m := New(testCompanies)

	m.MoveUp()
	if m.Cursor() != 2 {
		t.Errorf("Expected MoveUp from 0 to wrap to 2, got %d", m.Cursor())
	}

	m.MoveDown()
	if m.Cursor() != 0 {
		t.Errorf("Expected MoveDown from last to wrap to 0, got %d", m.Cursor())
	}
}

func TestCommit(t *testing.T) {
	m := New(testCompanies)

	m.MoveDown()
	if !m.Commit() {
		t.Fatal("Expected Commit to succeed")
	}
	if m.Chosen() != "Globex" {
		t.Errorf("Expected chosen 'Globex', got %q", m.Chosen())
	}

	m.ClearChoice()
	if m.Chosen() != "" {
		t.Errorf("Expected empty choice after clear, got %q", m.Chosen())
	}
}

func TestCommitWithNoMatches(t *testing.T) {
	m := New(testCompanies)

	setQuery(&m, "zzzzzz")
	if len(m.Visible()) != 0 {
		t.Fatalf("Expected no matches, got %v", m.Visible())
	}
	if m.Commit() {
		t.Error("Expected Commit with no matches to be a no-op")
	}
	if m.Chosen() != "" {
		t.Errorf("Expected no choice, got %q", m.Chosen())
	}
}
