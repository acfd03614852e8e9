// Package deletes generates delete signatures and keeps the signature-hash → term-id index
// the symmetric delete lookup probes.
package deletes

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Generator derives delete signatures from terms.
// Only deletes are generated. Replaces and inserts are expensive and language dependent
// (Chinese alone has 70,000 Unicode Han characters).
type Generator struct {
	MaxEditDistance int
	PrefixLength    int
}

// Edits adds every string reachable from word by deleting between one and MaxEditDistance-editDistance
// runes to deleteWords and returns the set.
func (g Generator) Edits(word []rune, editDistance int, deleteWords mapset.Set[string]) mapset.Set[string] {
	editDistance++
	if len(word) <= 1 {
		return deleteWords
	}
	for i := range word {
		del := make([]rune, 0, len(word)-1)
		del = append(del, word[:i]...)
		del = append(del, word[i+1:]...)
		if deleteWords.Add(string(del)) && editDistance < g.MaxEditDistance {
			g.Edits(del, editDistance, deleteWords)
		}
	}
	return deleteWords
}

// EditsPrefix returns the term's prefix plus all of its deletes. Terms no longer than
// MaxEditDistance also yield the empty signature.
func (g Generator) EditsPrefix(term string) mapset.Set[string] {
	word := []rune(term)
	edits := mapset.NewThreadUnsafeSet[string]()

	if len(word) <= g.MaxEditDistance {
		edits.Add("")
	}
	if len(word) > g.PrefixLength {
		word = word[:g.PrefixLength]
	}
	edits.Add(string(word))

	return g.Edits(word, 0, edits)
}
