package selector

import (
	"testing"
)

func TestMultipleModeCap(t *testing.T) {
	s := NewSelection(Multiple, 1, true, nil)

	res := s.Toggle("1")
	if !res.Changed || res.Collapse {
		t.Errorf("Expected changed without collapse, got %+v", res)
	}
	if got := s.IDs(); len(got) != 1 || got[0] != "1" {
		t.Errorf("Expected ['1'], got %v", got)
	}

	// At the cap: the add is rejected outright, nothing truncated
	res = s.Toggle("2")
	if res.Changed {
		t.Error("Expected toggle past the cap to be a no-op")
	}
	if got := s.IDs(); len(got) != 1 || got[0] != "1" {
		t.Errorf("Selection must be unchanged, got %v", got)
	}

	// Removal is always permitted, even at the cap
	res = s.Toggle("1")
	if !res.Changed {
		t.Error("Expected removal to succeed at the cap")
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty selection, got %v", s.IDs())
	}
}

func TestCapInvariantUnderToggleSequences(t *testing.T) {
	const k = 3
	s := NewSelection(Multiple, k, true, nil)

	ids := []string{"a", "b", "c", "d", "e", "a", "c", "f", "b", "g", "a"}
	for _, id := range ids {
		before := s.Len()
		s.Toggle(id)
		after := s.Len()
		if after > k {
			t.Fatalf("Cap exceeded: %d > %d", after, k)
		}
		if before-after > 1 {
			t.Fatalf("Toggle removed more than one id: %d -> %d", before, after)
		}
	}
}

func TestMultipleModeUnbounded(t *testing.T) {
	s := NewSelection(Multiple, 0, true, nil)
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		s.Toggle(id)
	}
	if s.Len() != 5 {
		t.Errorf("Expected 5 selected with no cap, got %d", s.Len())
	}
}

func TestSingleModeReplaces(t *testing.T) {
	s := NewSelection(Single, 0, false, nil)

	res := s.Toggle("1")
	if !res.Changed || !res.Collapse {
		t.Errorf("Expected changed with collapse, got %+v", res)
	}

	// Selecting another id replaces, never accumulates
	res = s.Toggle("2")
	if !res.Changed || !res.Collapse {
		t.Errorf("Expected changed with collapse, got %+v", res)
	}
	if got := s.IDs(); len(got) != 1 || got[0] != "2" {
		t.Errorf("Expected ['2'], got %v", got)
	}
}

func TestSingleModeCardinalityInvariant(t *testing.T) {
	s := NewSelection(Single, 0, true, nil)
	for _, id := range []string{"1", "2", "2", "3", "1", "1"} {
		s.Toggle(id)
		if s.Len() > 1 {
			t.Fatalf("Single mode held %d ids", s.Len())
		}
	}
}

func TestSingleModeAllowClear(t *testing.T) {
	s := NewSelection(Single, 0, true, nil)
	s.Toggle("1")

	// Re-toggling the selected id clears it and still collapses
	res := s.Toggle("1")
	if !res.Changed || !res.Collapse {
		t.Errorf("Expected clear with collapse, got %+v", res)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty selection, got %v", s.IDs())
	}
}

func TestSingleModeClearNotAllowed(t *testing.T) {
	s := NewSelection(Single, 0, false, nil)
	s.Toggle("1")

	res := s.Toggle("1")
	if res.Changed || res.Collapse {
		t.Errorf("Expected no-op, got %+v", res)
	}
	if got := s.First(); got != "1" {
		t.Errorf("Expected '1' still selected, got %q", got)
	}
}

func TestDisabledFreezesEverything(t *testing.T) {
	s := NewSelection(Multiple, 0, true, []string{"1"})
	s.SetDisabled(true)

	if res := s.Toggle("2"); res.Changed {
		t.Error("Toggle must be a no-op while disabled")
	}
	if s.Remove("1") {
		t.Error("Remove must be a no-op while disabled")
	}
	if s.Clear() {
		t.Error("Clear must be a no-op while disabled")
	}
	if got := s.IDs(); len(got) != 1 || got[0] != "1" {
		t.Errorf("Expected ['1'] untouched, got %v", got)
	}

	s.SetDisabled(false)
	if res := s.Toggle("2"); !res.Changed {
		t.Error("Expected toggle to work again after enabling")
	}
}

func TestRemoveAndClear(t *testing.T) {
	s := NewSelection(Multiple, 0, true, []string{"1", "2", "3"})

	if !s.Remove("2") {
		t.Error("Expected remove to succeed")
	}
	if s.Remove("2") {
		t.Error("Expected removing an absent id to be a no-op")
	}
	if got := s.IDs(); len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Errorf("Expected ['1','3'], got %v", got)
	}

	if !s.Clear() {
		t.Error("Expected clear to succeed")
	}
	if s.Clear() {
		t.Error("Expected clearing an empty selection to be a no-op")
	}
}

func TestNewSelectionSeeding(t *testing.T) {
	// Single mode keeps only the first initial id
	s := NewSelection(Single, 0, true, []string{"1", "2"})
	if got := s.IDs(); len(got) != 1 || got[0] != "1" {
		t.Errorf("Expected ['1'], got %v", got)
	}

	// Multiple mode respects the cap and drops duplicates
	s = NewSelection(Multiple, 2, true, []string{"1", "1", "2", "3"})
	if got := s.IDs(); len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("Expected ['1','2'], got %v", got)
	}
}

func TestSelectionStaysWhenFilteredOut(t *testing.T) {
	// Selection may hold ids not present in the current filtered view;
	// the machine itself never consults the view.
	s := NewSelection(Multiple, 0, true, []string{"hidden"})
	if !s.Contains("hidden") {
		t.Error("Expected selection to keep ids regardless of any view")
	}
}
