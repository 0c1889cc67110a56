package selector

import "testing"

func TestNotifierFilterDedup(t *testing.T) {
	n := &Notifier{}

	var events [][3]string
	n.OnFiltersChanged = func(dept, role, search string) {
		events = append(events, [3]string{dept, role, search})
	}

	n.FiltersChanged("Design", "", "")
	n.FiltersChanged("Design", "", "") // duplicate, suppressed
	n.FiltersChanged("Design", "", "sa")
	n.FiltersChanged("Design", "", "sa") // duplicate
	n.FiltersChanged("", "", "")

	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d: %v", len(events), events)
	}
	if events[0] != [3]string{"Design", "", ""} ||
		events[1] != [3]string{"Design", "", "sa"} ||
		events[2] != [3]string{"", "", ""} {
		t.Errorf("Unexpected event sequence: %v", events)
	}
}

func TestNotifierFirstEmptyTripleFires(t *testing.T) {
	// The zero triple still counts as a first emission.
	n := &Notifier{}
	count := 0
	n.OnFiltersChanged = func(string, string, string) { count++ }

	n.FiltersChanged("", "", "")
	n.FiltersChanged("", "", "")

	if count != 1 {
		t.Errorf("Expected 1 event, got %d", count)
	}
}

func TestNotifierNilCallbacks(t *testing.T) {
	n := &Notifier{}
	// Must not panic
	n.SelectionChanged([]string{"1"})
	n.FiltersChanged("a", "b", "c")
}
