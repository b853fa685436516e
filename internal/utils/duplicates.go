package utils

import (
	"strings"
)

// CandidateFilter suppresses duplicate suggestions and the typed word
// itself, comparing case-insensitively.
type CandidateFilter struct {
	seenWords map[string]bool
	inputWord string
}

// NewCandidateFilter creates a filter that excludes the given input word
// from the start.
func NewCandidateFilter(input string) *CandidateFilter {
	lowerInput := strings.ToLower(input)
	seenWords := make(map[string]bool)
	seenWords[lowerInput] = true

	return &CandidateFilter{
		seenWords: seenWords,
		inputWord: lowerInput,
	}
}

// ShouldInclude reports whether a word should appear in results. The
// first occurrence of a word passes; repeats and the input word do not.
func (f *CandidateFilter) ShouldInclude(word string) bool {
	lowerWord := strings.ToLower(word)
	if f.seenWords[lowerWord] {
		return false
	}
	f.seenWords[lowerWord] = true
	return true
}

// Seen reports whether a word was already emitted or excluded, without
// marking it.
func (f *CandidateFilter) Seen(word string) bool {
	return f.seenWords[strings.ToLower(word)]
}
