package normalize

import (
	"strings"
	"unicode/utf8"
)

// WholeWord reports whether kw occurs in text delimited by non-word runes on both sides
// Both arguments are expected to be normalized already; every occurrence is checked
func WholeWord(text, kw string) bool {
	if kw == "" {
		return false
	}
	from := 0
	for from <= len(text)-len(kw) {
		i := strings.Index(text[from:], kw)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(kw)
		if boundaryOK(text, start, end) {
			return true
		}
		_, sz := utf8.DecodeRuneInString(text[start:])
		from = start + sz
	}
	return false
}

// boundaryOK checks that the runes just outside [start,end) are not word runes
func boundaryOK(s string, start, end int) bool {
	if start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(s[:start])
		if IsWordRune(prev) {
			return false
		}
	}
	if end < len(s) {
		next, _ := utf8.DecodeRuneInString(s[end:])
		if IsWordRune(next) {
			return false
		}
	}
	return true
}
