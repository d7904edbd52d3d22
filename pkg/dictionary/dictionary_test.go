package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollapsesDuplicatesAndJunk(t *testing.T) {
	dict := New([]string{
		"hello", "Hello", "HELLO",
		"  world  ", "world",
		"", "   ", "\t",
	}, Options{})

	assert.Equal(t, 2, dict.Len())
	assert.Equal(t, []string{"hello", "world"}, dict.Words())
}

func TestContainsFoldsCase(t *testing.T) {
	dict := New([]string{"Hello"}, Options{})

	assert.True(t, dict.Contains("hello"))
	assert.True(t, dict.Contains("HELLO"))
	assert.False(t, dict.Contains("hell"))
}

func TestCaseSensitiveOption(t *testing.T) {
	dict := New([]string{"Hello", "hello"}, Options{CaseSensitive: true})

	assert.Equal(t, 2, dict.Len())
	assert.True(t, dict.Contains("Hello"))
	assert.True(t, dict.Contains("hello"))
	assert.False(t, dict.Contains("HELLO"))
}

func TestWordsNear(t *testing.T) {
	dict := New([]string{"a", "ab", "abc", "abcd", "abcde", "abcdef"}, Options{})

	var got []string
	for _, bucket := range dict.WordsNear(3, 1) {
		got = append(got, bucket...)
	}
	assert.ElementsMatch(t, []string{"ab", "abc", "abcd"}, got)

	// k = 0 is just the query's own bucket
	got = nil
	for _, bucket := range dict.WordsNear(3, 0) {
		got = append(got, bucket...)
	}
	assert.Equal(t, []string{"abc"}, got)

	assert.Nil(t, dict.WordsNear(3, -1))
	assert.Empty(t, dict.WordsNear(100, 2))
}

// Buckets are keyed by rune count, not byte length.
func TestWordsNearUnicode(t *testing.T) {
	dict := New([]string{"café", "naïve"}, Options{})

	var got []string
	for _, bucket := range dict.WordsNear(4, 0) {
		got = append(got, bucket...)
	}
	assert.Equal(t, []string{"café"}, got)
}

func TestWordsNearBucketsAreSorted(t *testing.T) {
	dict := New([]string{"zebra", "mango", "apple"}, Options{})

	buckets := dict.WordsNear(5, 0)
	require.Len(t, buckets, 1)
	assert.Equal(t, []string{"apple", "mango", "zebra"}, buckets[0])
}

func TestStats(t *testing.T) {
	dict := New([]string{"ab", "abc", "abcd"}, Options{})

	stats := dict.Stats()
	assert.Equal(t, 3, stats["totalWords"])
	assert.Equal(t, 3, stats["buckets"])
	assert.Equal(t, 2, stats["minWordLen"])
	assert.Equal(t, 4, stats["maxWordLen"])
}

func TestLoadWordList(t *testing.T) {
	input := "hello\nworld\n\nhello\n  padded  \n"
	dict, err := LoadWordList(strings.NewReader(input), Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, dict.Len())
	assert.True(t, dict.Contains("padded"))
}
