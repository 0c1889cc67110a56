package selector

import (
	"testing"

	"github.com/huddle-tui/huddle/internal/roster"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		name     string
		person   roster.Person
		compact  bool
		expected string
	}{
		{
			"full mode returns display name",
			roster.Person{FullName: "Sarah Chen", GivenName: "Sarah", FamilyName: "Chen"},
			false,
			"Sarah Chen",
		},
		{
			"compact abbreviates family name",
			roster.Person{FullName: "Sarah Chen", GivenName: "Sarah", FamilyName: "Chen"},
			true,
			"Sarah C.",
		},
		{
			"compact without family name",
			roster.Person{FullName: "Sarah", GivenName: "Sarah"},
			true,
			"Sarah",
		},
		{
			"compact without given name falls back",
			roster.Person{FullName: "Sarah Chen"},
			true,
			"Sarah Chen",
		},
		{
			"non-ascii initial",
			roster.Person{FullName: "Ana Øster", GivenName: "Ana", FamilyName: "Øster"},
			true,
			"Ana Ø.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatName(tt.person, tt.compact); got != tt.expected {
				t.Errorf("FormatName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCompactPrecedence(t *testing.T) {
	forceFull := false
	forceCompact := true

	tests := []struct {
		name     string
		override *bool
		narrow   bool
		expected bool
	}{
		{"explicit false beats narrow viewport", &forceFull, true, false},
		{"explicit true beats wide viewport", &forceCompact, false, true},
		{"no override follows narrow", nil, true, true},
		{"no override follows wide", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compact(tt.override, tt.narrow); got != tt.expected {
				t.Errorf("Compact() = %v, want %v", got, tt.expected)
			}
		})
	}
}
