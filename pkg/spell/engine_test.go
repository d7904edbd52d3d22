package spell

import (
	"fmt"
	"testing"

	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDict(t *testing.T, words ...string) *dictionary.Dictionary {
	t.Helper()
	return dictionary.New(words, dictionary.Options{})
}

func TestSuggestRanking(t *testing.T) {
	dict := newDict(t, "hello", "help", "hell", "world")

	result, err := Suggest("helo", dict, Config{MaxDistance: 1, MaxResults: 10})
	require.NoError(t, err)

	assert.False(t, result.Exact)
	// All three are one edit away; ties are broken alphabetically.
	assert.Equal(t, []Candidate{
		{Word: "hell", Distance: 1},
		{Word: "hello", Distance: 1},
		{Word: "help", Distance: 1},
	}, result.Candidates)
}

func TestSuggestExactMatch(t *testing.T) {
	dict := newDict(t, "cat", "bat", "rat")

	result, err := Suggest("cat", dict, DefaultConfig())
	require.NoError(t, err)

	assert.True(t, result.Exact)
	assert.Empty(t, result.Candidates)
}

func TestSuggestExactMatchCaseFolded(t *testing.T) {
	dict := newDict(t, "cat", "bat", "rat")

	result, err := Suggest("CAT", dict, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, result.Exact)
}

func TestSuggestNothingWithinTolerance(t *testing.T) {
	dict := newDict(t, "xyz")

	result, err := Suggest("abc", dict, Config{MaxDistance: 1, MaxResults: 10})
	require.NoError(t, err)

	assert.False(t, result.Exact)
	assert.Empty(t, result.Candidates)
}

func TestSuggestEmptyDictionary(t *testing.T) {
	dict := dictionary.New(nil, dictionary.Options{})

	_, err := Suggest("anything", dict, DefaultConfig())
	assert.ErrorIs(t, err, ErrEmptyDictionary)

	_, err = Suggest("anything", nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

func TestSuggestInvalidConfig(t *testing.T) {
	dict := newDict(t, "word")

	_, err := Suggest("word", dict, Config{MaxDistance: -1, MaxResults: 5})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Suggest("word", dict, Config{MaxDistance: 2, MaxResults: 0})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Suggest("word", dict, Config{MaxDistance: 2, MaxResults: -3})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// MaxDistance zero is degenerate but legal: only an exact hit can succeed.
func TestSuggestZeroDistance(t *testing.T) {
	dict := newDict(t, "cat", "bat")

	result, err := Suggest("cut", dict, Config{MaxDistance: 0, MaxResults: 5})
	require.NoError(t, err)
	assert.False(t, result.Exact)
	assert.Empty(t, result.Candidates)

	result, err = Suggest("cat", dict, Config{MaxDistance: 0, MaxResults: 5})
	require.NoError(t, err)
	assert.True(t, result.Exact)
}

func TestSuggestRespectsLimits(t *testing.T) {
	dict := newDict(t, "cat", "bat", "rat", "hat", "mat", "sat", "fat", "pat")
	cfg := Config{MaxDistance: 2, MaxResults: 3}

	result, err := Suggest("cut", dict, cfg)
	require.NoError(t, err)

	assert.Len(t, result.Candidates, 3)
	for _, c := range result.Candidates {
		assert.LessOrEqual(t, c.Distance, cfg.MaxDistance)
	}
	// cat sorts first among the distance-1 candidates.
	assert.Equal(t, "cat", result.Candidates[0].Word)
}

func TestSuggestDistanceBeatsAlphabet(t *testing.T) {
	dict := newDict(t, "aaaa", "abce")

	result, err := Suggest("abcd", dict, Config{MaxDistance: 3, MaxResults: 10})
	require.NoError(t, err)

	require.Len(t, result.Candidates, 2)
	assert.Equal(t, Candidate{Word: "abce", Distance: 1}, result.Candidates[0])
	assert.Equal(t, Candidate{Word: "aaaa", Distance: 3}, result.Candidates[1])
}

func TestSuggestCaseSensitive(t *testing.T) {
	dict := dictionary.New([]string{"Cat", "cat"}, dictionary.Options{CaseSensitive: true})
	cfg := Config{MaxDistance: 1, MaxResults: 10, CaseSensitive: true}

	result, err := Suggest("Cat", dict, cfg)
	require.NoError(t, err)
	assert.True(t, result.Exact)

	result, err = Suggest("CAt", dict, cfg)
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "Cat", result.Candidates[0].Word)
}

// A config whose case handling differs from the dictionary's folding
// policy would silently miss exact matches, so it is rejected up front.
func TestSuggestCasePolicyMismatch(t *testing.T) {
	sensitive := dictionary.New([]string{"Cat"}, dictionary.Options{CaseSensitive: true})

	_, err := Suggest("cat", sensitive, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewEngine(sensitive, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	folded := newDict(t, "cat")
	_, err = Suggest("cat", folded, Config{MaxDistance: 1, MaxResults: 5, CaseSensitive: true})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSuggestDeterministic(t *testing.T) {
	dict := newDict(t, "hello", "help", "hell", "held", "helm", "helps", "jello")
	cfg := Config{MaxDistance: 2, MaxResults: 10}

	first, err := Suggest("helo", dict, cfg)
	require.NoError(t, err)
	second, err := Suggest("helo", dict, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// The parallel scan path must produce the same ordered output as the serial
// one; a dictionary past the threshold exercises it.
func TestSuggestParallelScanDeterministic(t *testing.T) {
	// Spread words over several lengths so the scan sees multiple buckets.
	words := make([]string, 0, 2*parallelThreshold)
	for i := 0; i < 2*parallelThreshold; i++ {
		words = append(words, fmt.Sprintf("word%0*d", 4+i%3, i))
	}
	dict := dictionary.New(words, dictionary.Options{})
	cfg := Config{MaxDistance: 2, MaxResults: 20}

	first, err := Suggest("word0123", dict, cfg)
	require.NoError(t, err)
	assert.True(t, first.Exact)

	first, err = Suggest("wrd1234", dict, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, first.Candidates)
	for i := 1; i < len(first.Candidates); i++ {
		prev, curr := first.Candidates[i-1], first.Candidates[i]
		ordered := prev.Distance < curr.Distance ||
			(prev.Distance == curr.Distance && prev.Word < curr.Word)
		assert.True(t, ordered, "candidates %d and %d out of order", i-1, i)
	}

	second, err := Suggest("wrd1234", dict, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNewEngine(t *testing.T) {
	dict := newDict(t, "word")

	engine, err := NewEngine(dict, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 5, engine.Limit())
	assert.Same(t, dict, engine.Dictionary())

	_, err = NewEngine(dict, Config{MaxDistance: 1, MaxResults: 0})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewEngine(nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

func BenchmarkSuggest(b *testing.B) {
	words := make([]string, 0, 10000)
	for i := 0; i < 10000; i++ {
		words = append(words, fmt.Sprintf("word%05d", i))
	}
	dict := dictionary.New(words, dictionary.Options{})
	cfg := Config{MaxDistance: 2, MaxResults: 5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Suggest("wrod1234", dict, cfg)
	}
}
