// Package normalize canonicalizes free text into a comparable form
// Pipeline order
// 1 drop control runes and invalid UTF-8, information separators become spaces
// 2 lower case
// 3 canonical decomposition (NFD)
// 4 remove combining marks and format chars
// 5 replace every non-word rune with a space
// 6 collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// lower before NFD so composed lowercase forms still decompose
		return transform.Chain(
			cases.Lower(language.Und),
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)), // accents
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF etc
		)
	},
}

var std = New()

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Text normalizes s with the shared Normalizer
func Text(s string) string { return std.Normalize(s) }

// Normalize returns the normalized form of s following the pipeline described above
// It never fails; empty input yields empty output
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// a chain over valid UTF-8 does not fail in practice; fall back to plain lowering
		ns = strings.ToLower(s)
	}

	return collapseSpaces(wordFold(ns))
}

// IsWordRune reports whether r counts as part of a word: letters, numbers and underscore
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// wordFold maps every rune that is neither a word rune nor whitespace to a space
func wordFold(s string) string {
	return strings.Map(func(r rune) rune {
		if IsWordRune(r) || isSpace(r) {
			return r
		}
		return ' '
	}, s)
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if isSpace(r) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
