package usecase

import (
	"strings"
	"unicode"
)

// turnInput carries the three views of one user message through the rules.
// trimmed and norm differ only by case, so a byte offset found in norm is
// valid in trimmed; name capture relies on this to slice the user's original
// capitalization.
type turnInput struct {
	raw     string // original message, stored in history as-is
	trimmed string // end-trimmed original
	norm    string // lower-cased trimmed, used for matching
}

// newTurnInput normalizes a raw message. Normalization is case folding and
// end-trimming only; it never touches interior characters.
func newTurnInput(raw string) turnInput {
	trimmed := strings.TrimSpace(raw)
	return turnInput{
		raw:     raw,
		trimmed: trimmed,
		norm:    strings.ToLower(trimmed),
	}
}

// titleWords capitalizes the first letter of each space-separated word and
// lowercases the rest.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		for j := 1; j < len(r); j++ {
			r[j] = unicode.ToLower(r[j])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// joinOrNA joins list values with ", "; an empty list renders as "N/A",
// never as an empty string.
func joinOrNA(values []string) string {
	if len(values) == 0 {
		return "N/A"
	}
	return strings.Join(values, ", ")
}

// orNA substitutes "N/A" for absent text fields.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
