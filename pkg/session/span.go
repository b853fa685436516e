package session

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span describes the token immediately preceding the cursor in a text
// buffer. Word always equals buffer[Start:End] and End equals the
// cursor offset at extraction time.
type Span struct {
	Word  string
	Start int
	End   int
}

// Locate extracts the current word: the substring between the last
// whitespace boundary before the cursor and the cursor itself. Offsets
// are byte offsets into text. The cursor is clamped into
// [0, len(text)] rather than faulting on out-of-range input.
//
// Start is derived directly from the split (cursor minus word length),
// never by re-searching the buffer, so a word that recurs earlier in
// the line cannot mislocate the span.
func Locate(text string, cursor int) Span {
	cursor = clampCursor(text, cursor)
	prefix := text[:cursor]

	idx := strings.LastIndexFunc(prefix, unicode.IsSpace)
	start := 0
	if idx >= 0 {
		_, size := utf8.DecodeRuneInString(prefix[idx:])
		start = idx + size
	}

	return Span{
		Word:  prefix[start:],
		Start: start,
		End:   cursor,
	}
}

// Splice is the result of committing a suggestion into a buffer.
type Splice struct {
	NewBuffer string
	NewCursor int
}

// SpliceWord replaces the span in buffer with word plus a single
// trailing space and positions the cursor right after that space.
// The space is inserted unconditionally, even when the text following
// the span already starts with whitespace; a double space after accept
// is the documented behavior, not a defect.
func SpliceWord(buffer string, span Span, word string) Splice {
	start := clampCursor(buffer, span.Start)
	end := clampCursor(buffer, span.End)
	if end < start {
		start, end = end, start
	}

	newBuffer := buffer[:start] + word + " " + buffer[end:]
	return Splice{
		NewBuffer: newBuffer,
		NewCursor: start + len(word) + 1,
	}
}

// clampCursor restricts an offset to [0, len(text)] and backs it off a
// partial UTF-8 sequence so slicing never splits a rune.
func clampCursor(text string, cursor int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > len(text) {
		return len(text)
	}
	for cursor > 0 && cursor < len(text) && !utf8.RuneStart(text[cursor]) {
		cursor--
	}
	return cursor
}
