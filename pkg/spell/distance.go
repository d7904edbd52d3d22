package spell

import "unicode/utf8"

// Distance returns the Damerau-Levenshtein edit distance between a and b:
// the minimum number of single-rune insertions, deletions, substitutions and
// adjacent transpositions needed to turn a into b (the OSA variant, where
// only strictly adjacent swaps count as one edit).
//
// The metric is exact: no case folding or other normalization is applied.
// Callers that want case-insensitive comparison fold both inputs first.
func Distance(a, b string) int {
	d, _ := damerau([]rune(a), []rune(b), -1)
	return d
}

// BoundedDistance computes the same metric as Distance with an early-exit
// bound. It returns (d, true) when the distance d is at most bound, and
// (0, false) as soon as the result is known to exceed it. The negative case
// is a normal outcome used for pruning, not an error.
//
// A dictionary scan with maxDistance k can drop most entries after only a
// few matrix rows, which is what makes scanning tens of thousands of words
// per query tractable.
func BoundedDistance(a, b string, bound int) (int, bool) {
	if bound < 0 {
		return 0, false
	}
	return damerau([]rune(a), []rune(b), bound)
}

// damerau fills the (m+1)x(n+1) DP matrix three rows at a time. prev2 is
// kept around for the transposition lookback. A bound below zero disables
// the early exit.
func damerau(s, t []rune, bound int) (int, bool) {
	m, n := len(s), len(t)
	if m == 0 {
		if bound >= 0 && n > bound {
			return 0, false
		}
		return n, true
	}
	if n == 0 {
		if bound >= 0 && m > bound {
			return 0, false
		}
		return m, true
	}
	// Every edit changes length by at most one.
	if bound >= 0 && absInt(m-n) > bound {
		return 0, false
	}

	prev2 := make([]int, n+1)
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= n; j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			d := min(prev[j-1]+cost, prev[j]+1, curr[j-1]+1)
			if i > 1 && j > 1 && s[i-1] == t[j-2] && s[i-2] == t[j-1] {
				d = min(d, prev2[j-2]+1)
			}
			curr[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		// Cells only ever grow between rows, so once the whole row is past
		// the bound the final distance must be too.
		if bound >= 0 && rowMin > bound {
			return 0, false
		}
		prev2, prev, curr = prev, curr, prev2
	}

	d := prev[n]
	if bound >= 0 && d > bound {
		return 0, false
	}
	return d, true
}

// runeLen reports the length of s in runes, which is the unit the metric
// operates in and the key used for dictionary length buckets.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
