// Package textutils provides text normalization and keyword scoring for
// document classification.
package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minTokenLength drops short function words ("de", "e", "em") that carry no
// classification signal in Portuguese financial text.
const minTokenLength = 3

// stripDiacritics removes combining marks after NFD decomposition, so that
// "salário" and "salario" normalize to the same token.
var stripDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize lower-cases text, strips diacritics and removes every rune that
// is not a letter, digit or whitespace.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	stripped, _, err := transform.String(stripDiacritics, lowered)
	if err != nil {
		// Transform failures leave the text usable, only unnormalized.
		stripped = lowered
	}

	var builder strings.Builder
	builder.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Tokenize normalizes text and splits it into tokens of at least
// minTokenLength runes. Empty input yields an empty slice, never an error.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len([]rune(field)) >= minTokenLength {
			tokens = append(tokens, field)
		}
	}
	return tokens
}
