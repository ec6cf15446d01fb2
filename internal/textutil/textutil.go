// Package textutil canonicalizes host-supplied text before tokenization.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC normalization, trims surrounding whitespace, and
// drops control characters other than newlines and tabs.
func Normalize(text string) string {
	normed := norm.NFKC.String(text)
	normed = strings.TrimSpace(normed)
	normed = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	return normed
}
