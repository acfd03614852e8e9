package symspell

import (
	"cmp"
	"fmt"
	"sort"
)

// Suggestion contains a spelling suggestion
type Suggestion struct {
	Term     string // Term is the suggested correctly spelled word
	Distance int    // Distance between searched for word and suggestion in terms of edits
	Count    int64  // Count of suggestion in the dictionary (a measure of how common the word is)
}

// NewSuggestion creates a new instance of a Suggestion
func NewSuggestion(term string, dist int, count int64) *Suggestion {
	return &Suggestion{Term: term, Distance: dist, Count: count}
}

// Compare orders by ascending distance, then descending count, then ascending term.
func (s *Suggestion) Compare(other *Suggestion) int {
	if c := cmp.Compare(s.Distance, other.Distance); c != 0 {
		return c
	}
	if c := cmp.Compare(other.Count, s.Count); c != 0 {
		return c
	}
	return cmp.Compare(s.Term, other.Term)
}

// Less reports whether s sorts before other
func (s *Suggestion) Less(other *Suggestion) bool {
	return s.Compare(other) < 0
}

// String renders "term, distance, count"
func (s *Suggestion) String() string {
	return fmt.Sprintf("%s, %d, %d", s.Term, s.Distance, s.Count)
}

// ShallowCopy creates a copy of the suggestion
func (s *Suggestion) ShallowCopy() *Suggestion {
	return NewSuggestion(s.Term, s.Distance, s.Count)
}

// Suggestions exists to implement the sort interface
type Suggestions []*Suggestion

// NewSuggestions returns an empty Suggestions set
func NewSuggestions() Suggestions {
	return make([]*Suggestion, 0)
}

func (s Suggestions) Len() int {
	return len(s)
}

func (s Suggestions) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (s Suggestions) Less(i, j int) bool {
	return s[i].Less(s[j])
}

// Sort orders the list in place, see Suggestion.Compare.
func (s Suggestions) Sort() {
	sort.Stable(s)
}

// Clear empties the list, keeping its backing array.
func (s *Suggestions) Clear() {
	*s = (*s)[:0]
}

// Terms returns the suggested terms in order.
func (s Suggestions) Terms() []string {
	terms := make([]string, len(s))
	for i, sugg := range s {
		terms[i] = sugg.Term
	}
	return terms
}
