package spell

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// parallelThreshold is the pruned candidate count above which the scan is
// sharded across worker goroutines. Below it the goroutine overhead costs
// more than the scan itself.
const parallelThreshold = 4096

// Config controls a suggestion request.
type Config struct {
	// MaxDistance is the largest edit distance a candidate may have.
	// Zero is legal and degenerate: only an exact match can succeed.
	MaxDistance int
	// MaxResults bounds the length of the returned candidate list.
	MaxResults int
	// CaseSensitive disables the lowercase fold on the query. It must
	// match the policy the dictionary was built with; a mismatch is
	// rejected as invalid configuration before any scan.
	CaseSensitive bool
}

// DefaultConfig mirrors the CLI defaults: up to 5 suggestions within
// distance 2, case-insensitive.
func DefaultConfig() Config {
	return Config{MaxDistance: 2, MaxResults: 5}
}

// Validate reports ErrInvalidConfig for out-of-range fields.
func (c Config) Validate() error {
	if c.MaxDistance < 0 {
		return fmt.Errorf("%w: max distance %d is negative", ErrInvalidConfig, c.MaxDistance)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("%w: max results %d, want at least 1", ErrInvalidConfig, c.MaxResults)
	}
	return nil
}

// Candidate pairs a dictionary word with its edit distance from the query.
type Candidate struct {
	Word     string
	Distance int
}

// Result is the outcome of one suggestion request. An exact hit and an empty
// candidate list are both normal outcomes, never errors: Exact means the
// query is already spelled correctly, an empty list means nothing in the
// dictionary was within tolerance.
type Result struct {
	Query      string
	Exact      bool
	Candidates []Candidate
}

// Engine scans a dictionary for the closest corrections of a query token.
// The dictionary is read-only once constructed, so a single Engine is safe
// for concurrent use.
type Engine struct {
	dict *dictionary.Dictionary
	cfg  Config
}

// NewEngine validates cfg and the dictionary up front so that a misconfigured
// engine fails at construction rather than on the first query.
func NewEngine(dict *dictionary.Dictionary, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if dict == nil || dict.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	if err := checkCasePolicy(dict, cfg); err != nil {
		return nil, err
	}
	return &Engine{dict: dict, cfg: cfg}, nil
}

// Limit returns the configured maximum number of candidates.
func (e *Engine) Limit() int {
	return e.cfg.MaxResults
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Dictionary returns the engine's dictionary. The dictionary is immutable,
// so sharing the reference is safe.
func (e *Engine) Dictionary() *dictionary.Dictionary {
	return e.dict
}

// Suggest returns ranked corrections for query. See the package-level
// Suggest for the contract.
func (e *Engine) Suggest(query string) (*Result, error) {
	return Suggest(query, e.dict, e.cfg)
}

// Suggest looks up the closest corrections for query in dict.
//
// The query is folded per cfg.CaseSensitive, then checked for exact
// membership: a hit returns Result.Exact with no candidates, since no
// correction is needed. Otherwise every dictionary word whose length is
// within MaxDistance of the query's is compared with a bounded distance
// computation, survivors are sorted by ascending distance with ties broken
// lexicographically, and the list is cut to MaxResults. Identical inputs
// always produce identical output.
func Suggest(query string, dict *dictionary.Dictionary, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if dict == nil || dict.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	if err := checkCasePolicy(dict, cfg); err != nil {
		return nil, err
	}

	normalized := query
	if !cfg.CaseSensitive {
		normalized = strings.ToLower(query)
	}

	res := &Result{Query: query}
	if dict.Contains(normalized) {
		res.Exact = true
		return res, nil
	}

	buckets := dict.WordsNear(runeLen(normalized), cfg.MaxDistance)
	candidates := scanBuckets(normalized, buckets, cfg.MaxDistance)

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].Word < candidates[j].Word
	})
	if len(candidates) > cfg.MaxResults {
		candidates = candidates[:cfg.MaxResults]
	}

	res.Candidates = candidates
	return res, nil
}

// checkCasePolicy rejects a config whose case handling differs from the
// folding policy the dictionary was built with. A case-insensitive query
// against a case-preserving dictionary (or the reverse) would silently
// miss exact matches, so the mismatch is surfaced up front.
func checkCasePolicy(dict *dictionary.Dictionary, cfg Config) error {
	if cfg.CaseSensitive != dict.CaseSensitive() {
		return fmt.Errorf("%w: case sensitivity does not match the dictionary's folding policy", ErrInvalidConfig)
	}
	return nil
}

// scanBuckets compares the query against every word in the given length
// buckets. Large scans are sharded one goroutine per bucket; each worker
// fills its own slot, and all slots are joined before the caller's single
// final sort, so parallelism never affects ordering.
func scanBuckets(query string, buckets [][]string, maxDist int) []Candidate {
	total := 0
	for _, b := range buckets {
		total += len(b)
	}
	if total == 0 {
		return nil
	}

	if total < parallelThreshold || runtime.GOMAXPROCS(0) < 2 || len(buckets) < 2 {
		return scanWords(query, buckets, maxDist, nil)
	}

	log.Debugf("Parallel scan: %d words across %d buckets", total, len(buckets))

	partials := make([][]Candidate, len(buckets))
	var wg sync.WaitGroup
	for i, words := range buckets {
		wg.Add(1)
		go func(slot int, words []string) {
			defer wg.Done()
			partials[slot] = scanWords(query, [][]string{words}, maxDist, nil)
		}(i, words)
	}
	wg.Wait()

	merged := make([]Candidate, 0, total/8)
	for _, p := range partials {
		merged = append(merged, p...)
	}
	return merged
}

// scanWords appends every word within maxDist of query to out.
func scanWords(query string, buckets [][]string, maxDist int, out []Candidate) []Candidate {
	for _, words := range buckets {
		for _, w := range words {
			if d, ok := BoundedDistance(query, w, maxDist); ok {
				out = append(out, Candidate{Word: w, Distance: d})
			}
		}
	}
	return out
}
