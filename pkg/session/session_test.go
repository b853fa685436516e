package session

import (
	"reflect"
	"testing"

	"typeahead/pkg/dictionary"
	"typeahead/pkg/suggest"
)

func newTestSession() *Session {
	dict := dictionary.New([]string{"meeting", "meetings", "meet", "manager", "mandatory"})
	return New(suggest.NewRanker(dict, suggest.DefaultOptions()))
}

func TestSessionStartsIdle(t *testing.T) {
	s := newTestSession()
	if s.Visible() {
		t.Error("new session should be idle")
	}
	if s.Suggestions() != nil {
		t.Errorf("idle session has suggestions: %v", s.Suggestions())
	}
	if s.SelectedIndex() != 0 {
		t.Errorf("idle selected index = %d, want 0", s.SelectedIndex())
	}
}

func TestTextChangedActivates(t *testing.T) {
	s := newTestSession()
	s.TextChanged("mee", 3)

	if !s.Visible() {
		t.Fatal("session should be active after a matching text change")
	}
	want := []string{"meeting", "meetings", "meet"}
	if !reflect.DeepEqual(s.Suggestions(), want) {
		t.Errorf("Suggestions = %v, want %v", s.Suggestions(), want)
	}
	if s.SelectedIndex() != 0 {
		t.Errorf("selected index = %d, want 0 after activation", s.SelectedIndex())
	}
}

func TestTextChangedShortWordDeactivates(t *testing.T) {
	s := newTestSession()
	s.TextChanged("mee", 3)
	if !s.Visible() {
		t.Fatal("precondition: session active")
	}

	s.TextChanged("m", 1)
	if s.Visible() {
		t.Error("single character word must drop the session to idle")
	}
	if s.Suggestions() != nil {
		t.Errorf("idle suggestions = %v, want nil", s.Suggestions())
	}
}

func TestTextChangedNoMatchesDeactivates(t *testing.T) {
	s := newTestSession()
	s.TextChanged("zzzz", 4)
	if s.Visible() {
		t.Error("no matches must leave the session idle")
	}
}

func TestSelectionResetsOnReplacement(t *testing.T) {
	s := newTestSession()
	s.TextChanged("mee", 3)
	s.ArrowDown()
	s.ArrowDown()
	if s.SelectedIndex() != 2 {
		t.Fatalf("selected = %d, want 2", s.SelectedIndex())
	}

	s.TextChanged("meet", 4)
	if s.SelectedIndex() != 0 {
		t.Errorf("selected = %d, want 0 after list replacement", s.SelectedIndex())
	}
}

// ArrowDown n times where n == len(suggestions) wraps back around
func TestArrowWrapAround(t *testing.T) {
	s := newTestSession()
	s.TextChanged("mee", 3)
	n := len(s.Suggestions())

	for i := 0; i < n; i++ {
		s.ArrowDown()
	}
	if s.SelectedIndex() != 0 {
		t.Errorf("after %d ArrowDown, selected = %d, want 0", n, s.SelectedIndex())
	}

	s.ArrowUp()
	if s.SelectedIndex() != n-1 {
		t.Errorf("ArrowUp from 0 should wrap to %d, got %d", n-1, s.SelectedIndex())
	}
}

func TestArrowsNoOpWhenIdle(t *testing.T) {
	s := newTestSession()
	s.ArrowDown()
	s.ArrowUp()
	if s.Visible() || s.SelectedIndex() != 0 {
		t.Error("arrows must be no-ops in idle state")
	}
}

func TestAcceptSplicesAndGoesIdle(t *testing.T) {
	s := newTestSession()
	s.TextChanged("please mee", 10)
	s.ArrowDown() // select "meetings"

	splice := s.Accept()
	if splice == nil {
		t.Fatal("Accept returned nil in active state")
	}
	if splice.NewBuffer != "please meetings " {
		t.Errorf("NewBuffer = %q, want %q", splice.NewBuffer, "please meetings ")
	}
	if splice.NewCursor != len("please meetings ") {
		t.Errorf("NewCursor = %d, want %d", splice.NewCursor, len("please meetings "))
	}
	if s.Visible() {
		t.Error("session must be idle after accept")
	}
}

func TestAcceptWhenIdleReturnsNil(t *testing.T) {
	s := newTestSession()
	if splice := s.Accept(); splice != nil {
		t.Errorf("Accept in idle state = %+v, want nil", splice)
	}
}

func TestDismiss(t *testing.T) {
	s := newTestSession()
	s.TextChanged("mee", 3)
	if !s.Visible() {
		t.Fatal("precondition: session active")
	}

	s.Dismiss()
	if s.Visible() || s.Suggestions() != nil || s.SelectedIndex() != 0 {
		t.Error("dismiss must fully reset to idle")
	}

	// dismissing an idle session stays a no-op
	s.Dismiss()
	if s.Visible() {
		t.Error("idle dismiss changed state")
	}
}

func TestSessionWithNilRanker(t *testing.T) {
	s := New(nil)
	s.TextChanged("mee", 3)
	if s.Visible() {
		t.Error("session without ranker must stay idle")
	}
	if splice := s.Accept(); splice != nil {
		t.Errorf("Accept = %+v, want nil", splice)
	}
}

// invariant: visible implies non-empty suggestions and valid selection,
// across a whole interaction cycle
func TestSessionInvariants(t *testing.T) {
	s := newTestSession()
	steps := []func(){
		func() { s.TextChanged("ma", 2) },
		func() { s.ArrowDown() },
		func() { s.TextChanged("man", 3) },
		func() { s.ArrowUp() },
		func() { s.Accept() },
		func() { s.TextChanged("x", 1) },
		func() { s.Dismiss() },
	}

	for i, step := range steps {
		step()
		if s.Visible() && len(s.Suggestions()) == 0 {
			t.Fatalf("step %d: visible with empty suggestions", i)
		}
		if n := len(s.Suggestions()); n > 0 && (s.SelectedIndex() < 0 || s.SelectedIndex() >= n) {
			t.Fatalf("step %d: selected index %d out of range [0, %d)", i, s.SelectedIndex(), n)
		}
	}
}
