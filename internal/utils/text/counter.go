// Package text provides small string helpers shared by the domain layer.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters count once, so "日本語" is 3 and "Hello👋" is 6.
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}

// LengthBetween reports whether text has between minLen and maxLen runes, inclusive.
func LengthBetween(text string, minLen, maxLen int) bool {
	n := CountRunes(text)
	return n >= minLen && n <= maxLen
}
