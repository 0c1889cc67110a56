package selector

import (
	"testing"

	"github.com/huddle-tui/huddle/internal/roster"
)

var navView = []roster.Person{
	{ID: "a", FullName: "Ann"},
	{ID: "b", FullName: "Ben"},
	{ID: "c", FullName: "Cat"},
}

func TestStepForward(t *testing.T) {
	tests := []struct {
		name    string
		current string
		want    string
	}{
		{"from first", "a", "b"},
		{"from middle", "b", "c"},
		{"wraps from last", "c", "a"},
		{"from none", "", "a"},
		{"from id outside view", "zzz", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Step(navView, tt.current, Forward)
			if !ok || got != tt.want {
				t.Errorf("Step(%q, Forward) = %q/%v, want %q", tt.current, got, ok, tt.want)
			}
		})
	}
}

func TestStepBackward(t *testing.T) {
	tests := []struct {
		name    string
		current string
		want    string
	}{
		{"from last", "c", "b"},
		{"wraps from first", "a", "c"},
		{"from none", "", "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Step(navView, tt.current, Backward)
			if !ok || got != tt.want {
				t.Errorf("Step(%q, Backward) = %q/%v, want %q", tt.current, got, ok, tt.want)
			}
		})
	}
}

func TestStepEmptyView(t *testing.T) {
	if _, ok := Step(nil, "a", Forward); ok {
		t.Error("Expected Step on an empty view to report not-ok")
	}
}

func TestStepFullCycleReturnsToStart(t *testing.T) {
	// N forward steps from any position land back where they started.
	for _, start := range []string{"a", "b", "c"} {
		current := start
		for i := 0; i < len(navView); i++ {
			next, ok := Step(navView, current, Forward)
			if !ok {
				t.Fatalf("Step returned not-ok mid-cycle")
			}
			current = next
		}
		if current != start {
			t.Errorf("Cycle from %q ended at %q", start, current)
		}
	}
}

func TestClampHighlight(t *testing.T) {
	tests := []struct {
		highlight int
		n         int
		want      int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{5, 3, 2},
		{-1, 3, 0},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := ClampHighlight(tt.highlight, tt.n); got != tt.want {
			t.Errorf("ClampHighlight(%d, %d) = %d, want %d", tt.highlight, tt.n, got, tt.want)
		}
	}
}
