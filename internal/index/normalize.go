package index

import (
	"strings"
	"unicode"

	"github.com/gosimple/unidecode"
)

// Normalize folds a string into index form: diacritics transliterated to
// ASCII, lowercased, punctuation mapped to spaces, runs of whitespace
// collapsed. Normalize is idempotent: applying it to its own output
// returns the same string.
func Normalize(s string) string {
	s = strings.ToLower(unidecode.Unidecode(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes a string and splits it into tokens.
func Tokenize(s string) []string {
	norm := Normalize(s)
	if norm == "" {
		return nil
	}
	return strings.Split(norm, " ")
}
