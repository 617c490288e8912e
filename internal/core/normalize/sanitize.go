package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isSpace is unicode.IsSpace plus the information separators U+001C..U+001F,
// which legacy data treats as whitespace
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Sanitize drops invalid UTF-8 bytes and control runes (C0, DEL, C1)
// Whitespace controls such as tab and newline survive so word boundaries are kept;
// the information separators become a plain space
func Sanitize(s string) string {
	clean := true
	for _, r := range s {
		if r == utf8.RuneError || (unicode.IsControl(r) && !unicode.IsSpace(r)) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == utf8.RuneError:
			return -1
		case isSpace(r) && !unicode.IsSpace(r):
			return ' '
		case unicode.IsControl(r) && !unicode.IsSpace(r):
			return -1
		}
		return r
	}, s)
}
