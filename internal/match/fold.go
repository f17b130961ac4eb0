package match

import (
	"strings"
	"unicode"
)

// FoldKey normalizes a field label for loose matching.
// The pipeline:
// 1. Split on separators and CamelCase boundaries.
// 2. Case-fold every token to lower.
// 3. Join the tokens without separators.
//
// Separators are spaces, underscores, hyphens, and punctuation such as
// "." or "'", so "No. of openings" and "no_of_openings" fold alike.
func FoldKey(s string) string {
	return strings.Join(Tokenize(s), "")
}

// Tokenize splits a field label into lower-case tokens.
func Tokenize(s string) []string {
	tokens := splitLabel(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// splitLabel splits a label into its words, keeping their original case.
// Examples:
//   - "Job_posting_date" -> ["Job", "posting", "date"]
//   - "companyName" -> ["company", "Name"]
//   - "HTMLBody" -> ["HTML", "Body"]
//   - "No. of openings" -> ["No", "of", "openings"]
func splitLabel(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// startsWord reports whether runes[i] begins a new CamelCase word.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "companyName": lower -> upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "HTMLBody": end of an acronym before a lower-case rune
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
