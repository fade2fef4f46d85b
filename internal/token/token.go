// Package token turns raw extracted text into the filtered token stream the
// frequency analyzer consumes.
package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinLength is the exclusive lower bound on kept token length, in runes.
// Tokens of two characters or fewer carry too little signal to rank.
const MinLength = 2

// Tokenize lowercases the text, strips every rune that is neither
// alphanumeric nor whitespace (unicode letters survive), splits on
// whitespace, and drops stop words and short tokens. It is pure: identical
// input always yields the identical ordered slice.
func Tokenize(text string, stop map[string]struct{}) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	fields := strings.Fields(b.String())
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if utf8.RuneCountInString(w) <= MinLength {
			continue
		}
		if _, isStop := stop[w]; isStop {
			continue
		}
		out = append(out, w)
	}
	return out
}
