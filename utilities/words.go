package utilities

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Letters, digits, underscore, apostrophes and hyphens form a word, so contractions
// such as "couldn't" survive. Works for non-latin scripts.
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_'’\-]+`)

// ParseWords creates a non-unique, lowercased word list from sample text.
func ParseWords(text string) []string {
	return wordPattern.FindAllString(Lower(text), -1)
}

// ParseWordsPreserveCase splits text like ParseWords but keeps the original casing.
func ParseWordsPreserveCase(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// Lower lowercases s without language specific rules.
// A new Caser is built per call, cases.Caser is not safe for concurrent use.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
