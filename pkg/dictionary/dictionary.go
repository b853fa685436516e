/*
Package dictionary holds the candidate vocabulary the suggestion engine
ranks against.

A Dictionary is an ordered, read-only word list. Insertion order is
significant: the ranker breaks ties between equally ranked candidates in
favor of earlier entries. Lookups by prefix go through a patricia trie
that maps each lower-cased word to its position in the list, so callers
get both fast prefix traversal and a stable order to sort back into.

The default vocabulary ships as an embedded data asset (data/words.txt)
rather than as source, so it can be swapped or localized without touching
the ranking code. Custom word lists load from plain text files with one
word per line.
*/
package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

//go:embed data/words.txt
var defaultWords []byte

// Dictionary is an immutable, ordered set of candidate words.
type Dictionary struct {
	words []string
	trie  *patricia.Trie
}

// New builds a Dictionary from the given words, preserving their order.
// Duplicates are kept in the list; the trie keeps the last index for a
// repeated lower-cased form.
func New(words []string) *Dictionary {
	d := &Dictionary{
		words: words,
		trie:  patricia.NewTrie(),
	}
	for i, w := range words {
		d.trie.Insert(patricia.Prefix(strings.ToLower(w)), i)
	}
	return d
}

// Default returns the embedded HR/finance vocabulary.
func Default() *Dictionary {
	words, err := parseWordList(bytes.NewReader(defaultWords))
	if err != nil {
		// The embedded asset is read at build time; a parse failure here
		// means a broken build, not a runtime condition.
		log.Errorf("Parsing embedded word list: %v", err)
		return New(nil)
	}
	return New(words)
}

// Load reads a plain text word list from path, one word per line.
// Lines starting with '#' and blank lines are skipped.
func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list %s: %w", path, err)
	}
	defer file.Close()

	words, err := parseWordList(file)
	if err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s", len(words), path)
	return New(words), nil
}

func parseWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Words returns the entries in dictionary order. Callers must not
// mutate the returned slice.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// VisitPrefix calls fn for every entry whose lower-cased form starts
// with lowerPrefix. key is the lower-cased form, index the entry's
// position in dictionary order. Trie traversal order is not dictionary
// order; callers sort by index when order matters.
func (d *Dictionary) VisitPrefix(lowerPrefix string, fn func(key string, index int)) {
	err := d.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		idx, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			return nil
		}
		fn(string(p), idx)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
}
