// Package utils has shared helpers for input filtering, TOML handling and
// filesystem/path resolution used across spellserve packages.
package utils

import "unicode"

// IsSeparator checks if a rune is a separator character allowed inside
// dictionary words (hyphenated and dotted entries).
func IsSeparator(r rune) bool {
	return r == '-' || r == '.' || r == '\'' || r == '_'
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits.
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars checks if a string contains characters that are
// neither letters, digits nor allowed separators.
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !IsSeparator(r) {
			return true
		}
	}
	return false
}

// IsRepetitive checks if a string is a single character repeated three or
// more times ("aaa", "zzzz"), which never makes a useful query.
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}

// IsValidWord checks if a token should be processed for correction.
// Returns false for empty strings, strings of digits, strings with special
// characters and repetitive strings.
func IsValidWord(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if ContainsSpecialChars(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}
