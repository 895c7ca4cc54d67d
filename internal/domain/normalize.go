package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeText prepares free text (game titles, platforms) for storage and
// lookup:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - treats every run of whitespace (spaces, tabs, newlines) as one separator
//   - upper-cases the first letter of each word
//
// "hollow   knight", "Hollow Knight" and "HOLLOW KNIGHT" all become
// "Hollow Knight". Punctuation and digits are preserved.
func NormalizeText(text string) string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}
