// Package runes converts character (rune) offsets into byte offsets so the
// host protocol's string indices can address Go strings safely.
package runes

import "unicode/utf8"

// ByteOffsets builds a cumulative byte-offset table for text. The returned
// slice has one entry per rune plus a trailing entry, so result[i] is the
// byte position where rune i starts and result[len(result)-1] == len(text).
func ByteOffsets(text string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return offsets
}

// Count returns the number of runes covered by a table from ByteOffsets.
func Count(offsets []int) int {
	return len(offsets) - 1
}

// Slice returns text[start:end] addressed in rune offsets, using a table
// built by ByteOffsets over the same text. Out-of-range and reversed offsets
// are clamped, so the result is always a valid (possibly empty) substring.
func Slice(text string, offsets []int, start, end int) string {
	n := Count(offsets)
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return text[offsets[start]:offsets[end]]
}
