// Package suggest is the core ranking engine: edit distance plus the
// two-phase prefix/fuzzy policy that turns a partial word into a
// bounded, ordered candidate list.
package suggest

// Suggester is the interface consumed by the session and the CLI.
type Suggester interface {
	// Rank returns ranked suggestions for a typed word. An empty or
	// too-short word yields nil.
	Rank(word string) []string

	// Options returns the tunables in effect.
	Options() Options
}
