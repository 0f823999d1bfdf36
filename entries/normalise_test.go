package entries

import (
	"testing"
	"time"
)

func TestNormalise(t *testing.T) {
	tests := []struct {
		cell     string
		expected string
		ok       bool
	}{
		{"03/10/2024", "03/10/2024", true},
		{"  03/10/2024  ", "03/10/2024", true},
		{"2024-03-10", "03/10/2024", true},
		{"3/9/2024", "03/09/2024", true},
		{"March 10, 2024", "03/10/2024", true},
		{"", "", false},
		{"   ", "", false},
		{"not-a-date", "", false},
		{"bad", "", false},
		{"02/30/2024", "", false},
	}

	for _, test := range tests {
		normalised, ok := Normalise(test.cell, time.UTC)
		if ok != test.ok {
			t.Errorf("Incorrect result for '%v' - expected:%v, got:%v", test.cell, test.ok, ok)
		} else if normalised != test.expected {
			t.Errorf("Incorrect normalised date for '%v'\n   expected: %v\n   got:      %v", test.cell, test.expected, normalised)
		}
	}
}

func TestNormaliseIsIdempotent(t *testing.T) {
	dates := []string{"01/01/2024", "02/29/2024", "12/31/1999", "07/04/2026"}

	for _, date := range dates {
		once, ok := Normalise(date, time.UTC)
		if !ok {
			t.Fatalf("Failed to normalise '%v'", date)
		}

		twice, ok := Normalise(once, time.UTC)
		if !ok {
			t.Fatalf("Failed to normalise '%v'", once)
		}

		if once != twice || once != date {
			t.Errorf("Normalise is not idempotent for '%v' (%v, %v)", date, once, twice)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		cell     string
		date     string
		expected bool
	}{
		{"03/10/2024", "03/10/2024", true},
		{" 03/10/2024", "03/10/2024", true},
		{"2024-03-10", "03/10/2024", true},
		{"2024-03-09", "03/10/2024", false},
		{"", "03/10/2024", false},
		{"not-a-date", "03/10/2024", false},
	}

	for _, test := range tests {
		if matched := Matches(test.cell, test.date, time.UTC); matched != test.expected {
			t.Errorf("Incorrect match for '%v' and '%v' - expected:%v, got:%v", test.cell, test.date, test.expected, matched)
		}
	}
}
