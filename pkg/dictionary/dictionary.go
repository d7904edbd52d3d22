// Package dictionary holds the authoritative set of correctly spelled words
// and exposes the membership and enumeration primitives the matching core
// needs. A Dictionary is built once, is immutable afterwards, and is safe
// for concurrent readers without locking.
package dictionary

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Options fixes the dictionary's normalization policy at construction time.
type Options struct {
	// CaseSensitive keeps words as supplied. The default folds every word
	// to lowercase, and Contains folds its argument the same way.
	CaseSensitive bool
}

// Dictionary is an immutable set of unique words indexed two ways: a
// patricia trie for exact membership, and buckets keyed by rune count for
// the length-pruned enumeration used during matching. Every word lives in
// exactly one bucket.
type Dictionary struct {
	index         *patricia.Trie
	buckets       map[int][]string
	size          int
	caseSensitive bool
}

// New builds a Dictionary from a word list. Entries are trimmed of
// surrounding whitespace; empty or whitespace-only entries are dropped and
// duplicates are collapsed. The options' folding policy applies to every
// word and cannot change after construction.
func New(words []string, opts Options) *Dictionary {
	d := &Dictionary{
		index:         patricia.NewTrie(),
		buckets:       make(map[int][]string),
		caseSensitive: opts.CaseSensitive,
	}

	dropped := 0
	for _, w := range words {
		if !d.add(w) {
			dropped++
		}
	}
	if dropped > 0 {
		log.Debugf("Dictionary: dropped %d empty or duplicate entries", dropped)
	}

	// Sorted buckets keep enumeration order independent of input order.
	for _, bucket := range d.buckets {
		sort.Strings(bucket)
	}
	return d
}

// add folds, validates and indexes one word. Returns false for entries that
// were dropped.
func (d *Dictionary) add(word string) bool {
	w := strings.TrimSpace(word)
	if w == "" {
		return false
	}
	w = d.fold(w)

	if !d.index.Insert(patricia.Prefix(w), true) {
		// Already present.
		return false
	}
	n := utf8.RuneCountInString(w)
	d.buckets[n] = append(d.buckets[n], w)
	d.size++
	return true
}

func (d *Dictionary) fold(w string) string {
	if d.caseSensitive {
		return w
	}
	return strings.ToLower(w)
}

// Contains reports exact membership of word, folded per the dictionary's
// policy. Used to short-circuit correction when the query is already valid.
func (d *Dictionary) Contains(word string) bool {
	return d.index.Get(patricia.Prefix(d.fold(word))) != nil
}

// Len returns the number of unique words.
func (d *Dictionary) Len() int {
	return d.size
}

// CaseSensitive reports the folding policy the dictionary was built with.
func (d *Dictionary) CaseSensitive() bool {
	return d.caseSensitive
}

// WordsNear returns the length buckets for every word whose rune count is
// within k of length. Any word further away cannot be within edit distance
// k, since each edit changes length by at most one. The returned slices are
// shared with the dictionary and must not be modified.
func (d *Dictionary) WordsNear(length, k int) [][]string {
	if k < 0 {
		return nil
	}
	lo := length - k
	if lo < 1 {
		lo = 1
	}
	var out [][]string
	for n := lo; n <= length+k; n++ {
		if bucket, ok := d.buckets[n]; ok {
			out = append(out, bucket)
		}
	}
	return out
}

// Words returns all words in lexicographic order. Intended for diagnostics
// and tests, not the matching hot path.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, d.size)
	for _, bucket := range d.buckets {
		out = append(out, bucket...)
	}
	sort.Strings(out)
	return out
}

// Stats returns basic size information keyed the same way the server
// reports it.
func (d *Dictionary) Stats() map[string]int {
	minLen, maxLen := 0, 0
	for n := range d.buckets {
		if minLen == 0 || n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
	}
	return map[string]int{
		"totalWords": d.size,
		"buckets":    len(d.buckets),
		"minWordLen": minLen,
		"maxWordLen": maxLen,
	}
}
