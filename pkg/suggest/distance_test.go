package suggest

import (
	"fmt"
	"testing"
)

// check if our distance impl returns the correct edit count
func TestDistance(t *testing.T) {
	testCases := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"book", "back", 2},
		{"book", "books", 1},
		{"hello", "hallo", 1},
		{"approve", "approved", 1},
		{"aproved", "approved", 1},
		{"invoice", "invoice", 0},
		{"résumé", "resume", 2},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s→%s", tc.a, tc.b), func(t *testing.T) {
			dist := Distance(tc.a, tc.b)
			if dist != tc.expected {
				t.Errorf("Expected distance %d, got %d", tc.expected, dist)
			}
		})
	}
}

// distance(a, a) == 0 for all a
func TestDistanceIdentity(t *testing.T) {
	words := []string{"", "a", "payroll", "reconciliation", "日本語"}
	for _, w := range words {
		if dist := Distance(w, w); dist != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", w, w, dist)
		}
	}
}

// distance(a, b) == distance(b, a)
func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"ledger", "larger"},
		{"", "audit"},
		{"meeting", "meet"},
	}
	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if ab != ba {
			t.Errorf("Distance(%q, %q) = %d but Distance(%q, %q) = %d",
				p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}
