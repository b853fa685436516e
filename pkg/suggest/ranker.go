package suggest

import (
	"sort"
	"strings"
	"unicode/utf8"

	"typeahead/internal/utils"
	"typeahead/pkg/dictionary"
)

// Options holds the ranking tunables. Defaults must stay as stated for
// compatibility with existing hosts.
type Options struct {
	// Limit caps the number of suggestions returned.
	Limit int
	// MinWordLength is the shortest typed word that produces suggestions.
	MinWordLength int
	// MaxEditDistance bounds the fuzzy phase.
	MaxEditDistance int
}

// DefaultOptions returns the standard tunables: 5 suggestions, words of
// at least 2 runes, edit distance up to 2.
func DefaultOptions() Options {
	return Options{
		Limit:           5,
		MinWordLength:   2,
		MaxEditDistance: 2,
	}
}

// normalized fills zero or negative fields with defaults so a partially
// built Options never panics or returns unbounded results.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Limit <= 0 {
		o.Limit = def.Limit
	}
	if o.MinWordLength <= 0 {
		o.MinWordLength = def.MinWordLength
	}
	if o.MaxEditDistance <= 0 {
		o.MaxEditDistance = def.MaxEditDistance
	}
	return o
}

// Ranker produces ranked, size-bounded suggestion lists for a partial
// word against a fixed dictionary.
type Ranker struct {
	dict *dictionary.Dictionary
	opts Options
}

// NewRanker binds a dictionary to the given options.
func NewRanker(dict *dictionary.Dictionary, opts Options) *Ranker {
	return &Ranker{
		dict: dict,
		opts: opts.normalized(),
	}
}

// Options returns the tunables the ranker was built with.
func (r *Ranker) Options() Options {
	return r.opts
}

// Rank returns up to Limit candidate words for the typed word, prefix
// matches first (dictionary order), then fuzzy matches within
// MaxEditDistance sorted ascending by distance with ties kept in
// dictionary order. The typed word itself never appears in the result,
// compared case-insensitively.
func (r *Ranker) Rank(word string) []string {
	return r.rank(word, r.opts.Limit)
}

// RankWithLimit ranks with a per-call cap instead of the configured
// one. A non-positive limit falls back to the configured Limit.
func (r *Ranker) RankWithLimit(word string, limit int) []string {
	if limit <= 0 {
		limit = r.opts.Limit
	}
	return r.rank(word, limit)
}

func (r *Ranker) rank(word string, limit int) []string {
	if r.dict == nil || r.dict.Len() == 0 {
		return nil
	}
	if utf8.RuneCountInString(word) < r.opts.MinWordLength {
		return nil
	}

	lower := strings.ToLower(word)
	filter := utils.NewCandidateFilter(lower)

	result := r.prefixMatches(lower, filter)
	if len(result) >= limit {
		return result[:limit]
	}

	result = append(result, r.fuzzyMatches(lower, filter, limit-len(result))...)
	return result
}

// prefixHit pairs a dictionary index with its entry so trie hits can be
// sorted back into dictionary order.
type prefixHit struct {
	index int
	word  string
}

func (r *Ranker) prefixMatches(lower string, filter *utils.CandidateFilter) []string {
	var hits []prefixHit
	r.dict.VisitPrefix(lower, func(key string, index int) {
		// Skip the exact lower-cased form of the input.
		if key == lower {
			return
		}
		hits = append(hits, prefixHit{index: index, word: r.dict.Words()[index]})
	})

	// Trie traversal order is structural; dictionary order decides ties.
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].index < hits[j].index
	})

	var matches []string
	for _, h := range hits {
		if !filter.ShouldInclude(h.word) {
			continue
		}
		matches = append(matches, h.word)
	}
	return matches
}

// scoredHit carries a fuzzy candidate and its edit distance.
type scoredHit struct {
	word string
	dist int
}

func (r *Ranker) fuzzyMatches(lower string, filter *utils.CandidateFilter, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var hits []scoredHit
	for _, w := range r.dict.Words() {
		if filter.Seen(w) {
			continue
		}
		dist := Distance(lower, strings.ToLower(w))
		if dist > r.opts.MaxEditDistance {
			continue
		}
		if !filter.ShouldInclude(w) {
			continue
		}
		hits = append(hits, scoredHit{word: w, dist: dist})
	}

	// Stable: equal distances keep dictionary order.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].dist < hits[j].dist
	})

	var matches []string
	for _, h := range hits {
		if len(matches) >= limit {
			break
		}
		matches = append(matches, h.word)
	}
	return matches
}
