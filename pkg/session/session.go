/*
Package session owns the live interaction state of the inline
suggestion control: the current word span, the ranked suggestion list,
the selected index, and the splice that commits an accepted word back
into the buffer.

The session is a two-state machine, Idle and Active. Idle is both the
initial state and the resting state between interactions; Active means
a non-empty suggestion list is visible with a valid selection. Every
operation runs to completion inside one event-handling turn, so a
session must only ever be driven by a single interactive control.
*/
package session

import (
	"typeahead/pkg/suggest"
)

// Session tracks suggestion state for one text control.
type Session struct {
	ranker      suggest.Suggester
	buffer      string
	span        Span
	suggestions []string
	selected    int
	visible     bool
}

// New creates an Idle session driven by the given ranker.
func New(ranker suggest.Suggester) *Session {
	return &Session{ranker: ranker}
}

// TextChanged re-ranks against the word under the cursor in the new
// buffer. An empty ranking result drops the session to Idle; anything
// else activates it with the selection reset to the first entry.
func (s *Session) TextChanged(buffer string, cursor int) {
	s.buffer = buffer
	s.span = Locate(buffer, cursor)

	suggestions := []string(nil)
	if s.ranker != nil {
		suggestions = s.ranker.Rank(s.span.Word)
	}
	if len(suggestions) == 0 {
		s.deactivate()
		return
	}

	s.suggestions = suggestions
	s.selected = 0
	s.visible = true
}

// ArrowDown moves the selection down, wrapping at the end. No-op when
// Idle.
func (s *Session) ArrowDown() {
	if !s.visible {
		return
	}
	s.selected = (s.selected + 1) % len(s.suggestions)
}

// ArrowUp moves the selection up, wrapping at the start. No-op when
// Idle.
func (s *Session) ArrowUp() {
	if !s.visible {
		return
	}
	n := len(s.suggestions)
	s.selected = (s.selected - 1 + n) % n
}

// Accept commits the selected suggestion into the buffer and returns
// the spliced result. Returns nil when Idle; the session is Idle
// afterwards either way. Applying NewBuffer to the underlying control
// and restoring focus is the caller's job.
func (s *Session) Accept() *Splice {
	if !s.visible {
		return nil
	}

	word := s.suggestions[s.selected]
	splice := SpliceWord(s.buffer, s.span, word)

	s.buffer = splice.NewBuffer
	s.deactivate()
	return &splice
}

// Dismiss drops to Idle unconditionally, leaving the buffer untouched.
// Escape, blur, and outside clicks all land here.
func (s *Session) Dismiss() {
	s.deactivate()
}

func (s *Session) deactivate() {
	s.suggestions = nil
	s.selected = 0
	s.visible = false
}

// Visible reports whether a suggestion list is showing.
func (s *Session) Visible() bool {
	return s.visible
}

// Suggestions returns the current list, nil when Idle. The list is
// replaced wholesale on every text change, never mutated in place.
func (s *Session) Suggestions() []string {
	return s.suggestions
}

// SelectedIndex returns the highlighted entry's index, 0 when Idle.
func (s *Session) SelectedIndex() int {
	return s.selected
}

// Word returns the current word span the suggestions apply to.
func (s *Session) Word() Span {
	return s.span
}
