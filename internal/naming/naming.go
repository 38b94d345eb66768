// Package naming splits schema keys into words for human-readable headings.
package naming

import (
	"strings"
	"unicode"
)

// Words splits a key into words. Underscores, hyphens, dots, slashes and
// spaces separate words, as do lower-to-upper case transitions. A run of
// capitals stays together unless its last letter starts a new word:
// "HTTPServer" splits into "HTTP" and "Server".
func Words(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// Phrase joins the words of s with single spaces.
func Phrase(s string) string {
	return strings.Join(Words(s), " ")
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', '/', ' ':
		return true
	}
	return false
}
