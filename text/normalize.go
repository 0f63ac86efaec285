package text

import (
	"strings"
	"unicode"
)

// RemovePunctuations replaces punctuation and symbol runes with spaces so they
// delimit tokens instead of surviving inside them.
func RemovePunctuations(s string) string {
	return strings.Map(func(c rune) rune {
		if unicode.IsPunct(c) || unicode.IsSymbol(c) {
			return ' '
		}
		return c
	}, s)
}

// RemoveTrailingSpaces removes leading and trailing whitespace of a string.
func RemoveTrailingSpaces(s string) string {
	return strings.Trim(s, " \t\n")
}

// Normalize removes
// 1) punctuation and symbols
// 2) leading and trailing whitespace from a string.
func Normalize(s string) string {
	s = RemovePunctuations(s)
	s = RemoveTrailingSpaces(s)
	return s
}
