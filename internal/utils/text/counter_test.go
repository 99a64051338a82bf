package text_test

import (
	"strings"
	"testing"

	"magazine-catalog/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty string", input: "", expected: 0},
		{name: "ASCII text", input: "hello", expected: 5},
		{name: "ASCII with spaces", input: "hello world", expected: 11},
		{name: "Japanese kanji", input: "日本語", expected: 3},
		{name: "mixed text", input: "hello世界", expected: 7},
		{name: "emoji", input: "Hello👋", expected: 6},
		{name: "accented latin", input: "café", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.CountRunes(tt.input); got != tt.expected {
				t.Errorf("CountRunes(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLengthBetween(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		min    int
		max    int
		expect bool
	}{
		{name: "below minimum", input: "abcd", min: 5, max: 50, expect: false},
		{name: "at minimum", input: "abcde", min: 5, max: 50, expect: true},
		{name: "at maximum", input: strings.Repeat("a", 50), min: 5, max: 50, expect: true},
		{name: "above maximum", input: strings.Repeat("a", 51), min: 5, max: 50, expect: false},
		{name: "multi-byte counted as runes", input: "日本語の本", min: 5, max: 5, expect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.LengthBetween(tt.input, tt.min, tt.max); got != tt.expect {
				t.Errorf("LengthBetween(%q, %d, %d) = %v, want %v", tt.input, tt.min, tt.max, got, tt.expect)
			}
		})
	}
}
