package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title trims s and title-cases every run of letters, so a letter after any
// non-letter starts a new word ("o'neill" -> "O'Neill", "ann-marie" ->
// "Ann-Marie"). Applying it twice yields the same value.
func Title(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	caser := cases.Title(language.English)

	var b strings.Builder
	b.Grow(len(s))
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}
