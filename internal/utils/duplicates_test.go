package utils

import "testing"

func TestCandidateFilter(t *testing.T) {
	f := NewCandidateFilter("Meeting")

	if f.ShouldInclude("meeting") {
		t.Error("input word must be excluded case-insensitively")
	}
	if !f.ShouldInclude("meetings") {
		t.Error("first occurrence should pass")
	}
	if f.ShouldInclude("Meetings") {
		t.Error("repeat should be suppressed case-insensitively")
	}
	if !f.Seen("meetings") {
		t.Error("Seen should report emitted words")
	}
	if f.Seen("manager") {
		t.Error("Seen must not mark words")
	}
	if !f.ShouldInclude("manager") {
		t.Error("unseen word should pass after Seen check")
	}
}
