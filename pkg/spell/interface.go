// Package spell is the core, computing bounded Damerau-Levenshtein distances
// and ranking dictionary words as correction candidates for a query token.
package spell

import "errors"

// Sentinel errors reported before any dictionary scanning begins. Both are
// fatal to the call and recoverable by the caller: fix the configuration or
// supply a non-empty dictionary and invoke again.
var (
	// ErrEmptyDictionary means there are no words to match against.
	ErrEmptyDictionary = errors.New("spell: empty dictionary")

	// ErrInvalidConfig means MaxDistance or MaxResults is out of range.
	ErrInvalidConfig = errors.New("spell: invalid configuration")
)

// ISuggester defines the interface for correction engines, implemented by
// Engine and consumed by the server and CLI layers.
type ISuggester interface {
	// Suggest returns ranked correction candidates for a query token.
	Suggest(query string) (*Result, error)

	// Limit returns the configured maximum number of candidates.
	Limit() int
}
