// Package casing reapplies the letter case of an original text onto a lowercase correction.
package casing

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// TransferPositional copies the case of each rune of withCasing onto the rune at the
// same position of withoutCasing. Runes past the shorter length keep their own case.
func TransferPositional(withCasing, withoutCasing string) string {
	src := []rune(withCasing)
	dst := []rune(withoutCasing)
	for i := range dst {
		if i >= len(src) {
			break
		}
		dst[i] = applyCase(src[i], dst[i])
	}
	return string(dst)
}

// TransferSimilar aligns withCasing (lowercased) against withoutCasing and transfers
// case block by block: equal blocks are copied from withCasing, replaced blocks are
// mapped positionally, inserted runes follow the case of their left neighbour (or of
// the next rune at a word start) and deleted runes are dropped.
func TransferSimilar(withCasing, withoutCasing string) string {
	if withoutCasing == "" || withCasing == "" {
		return withoutCasing
	}

	src := []rune(withCasing)
	dst := []rune(withoutCasing)
	lowered := make([]rune, len(src))
	for i, r := range src {
		lowered[i] = unicode.ToLower(r)
	}
	matcher := difflib.NewMatcher(splitRunes(lowered), splitRunes(dst))

	var sb strings.Builder
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			sb.WriteString(string(src[op.I1:op.I2]))
		case 'r':
			sb.WriteString(TransferPositional(string(src[op.I1:op.I2]), string(dst[op.J1:op.J2])))
		case 'i':
			inserted := string(dst[op.J1:op.J2])
			if insertUpper(src, op.I1) {
				sb.WriteString(strings.ToUpper(inserted))
			} else {
				sb.WriteString(strings.ToLower(inserted))
			}
		case 'd':
		}
	}
	return sb.String()
}

func insertUpper(src []rune, at int) bool {
	if at == 0 || src[at-1] == ' ' {
		return at < len(src) && unicode.IsUpper(src[at])
	}
	return unicode.IsUpper(src[at-1])
}

func applyCase(model, r rune) rune {
	if unicode.IsUpper(model) {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}

// The matcher works on string sequences, one element per rune.
func splitRunes(runes []rune) []string {
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
