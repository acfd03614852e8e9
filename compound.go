package symspell

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/morezian/go-symspell/casing"
	"github.com/morezian/go-symspell/utilities"
	verb "github.com/morezian/go-symspell/verbosity"
)

// LookupCompound corrects a multi-word input with the max dictionary edit distance. It handles
//  1. a space mistakenly inserted into a correct word, which led to two incorrect terms
//  2. a space mistakenly omitted between two correct words, which led to one incorrect combined term
//  3. multiple independent input terms with or without spelling errors
func (s *SymSpell) LookupCompound(input string) (Suggestions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookupCompound(input, s.opts.MaxDictionaryEditDistance, false)
}

// LookupCompoundWithEditDistance corrects a multi-word input allowing editDistance edits per term.
func (s *SymSpell) LookupCompoundWithEditDistance(input string, editDistance int) (Suggestions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookupCompound(input, editDistance, false)
}

// LookupCompoundTransferCasing is LookupCompoundWithEditDistance that keeps the casing of each input term.
func (s *SymSpell) LookupCompoundTransferCasing(input string, editDistance int) (Suggestions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookupCompound(input, editDistance, true)
}

// part is one corrected piece of the sentence and the input text it replaced.
type part struct {
	*Suggestion
	source string
}

// unknownCount estimates the count of an unknown word from the probability P=10 / (N * 10^len).
func unknownCount(term string) int64 {
	return int64(10 / math.Pow(10, float64(utf8.RuneCountInString(term))))
}

func (s *SymSpell) topSuggestion(term string, editDistance int) *Suggestion {
	suggestions, err := s.lookup(term, verb.Top, editDistance, false)
	if err != nil || len(suggestions) == 0 {
		return nil
	}
	return suggestions[0]
}

func (s *SymSpell) lookupCompound(input string, editDistance int, transferCasing bool) (Suggestions, error) {
	if err := s.checkDistance(editDistance); err != nil {
		return nil, err
	}

	sources := utilities.ParseWordsPreserveCase(input)
	terms := make([]string, len(sources))
	for i, src := range sources {
		terms[i] = utilities.Lower(src)
	}

	parts := make([]part, 0, len(terms))
	// translate every term to its best suggestion, otherwise it remains unchanged
	lastCombi := false
	for i, term := range terms {
		best := s.topSuggestion(term, editDistance)

		// combi check, always before split
		if i > 0 && !lastCombi {
			if combi := s.topSuggestion(terms[i-1]+term, editDistance); combi != nil {
				best1 := parts[len(parts)-1]
				best2 := best
				if best2 == nil {
					// unknown word with estimated edit distance
					best2 = NewSuggestion(term, editDistance+1, unknownCount(term))
				}

				// edit distance between the 2 split terms and their best corrections, as comparative value for the combination
				distance1 := best1.Distance + best2.Distance
				if distance1 >= 0 && (combi.Distance+1 < distance1 ||
					(combi.Distance+1 == distance1 &&
						float64(combi.Count) > float64(best1.Count)/float64(N)*float64(best2.Count))) {
					combi.Distance++
					parts[len(parts)-1] = part{combi, sources[i-1] + " " + sources[i]}
					lastCombi = true
					continue
				}
			}
		}
		lastCombi = false

		// never split terms with suggestion ed=0 and never split single char terms
		if best != nil && (best.Distance == 0 || utf8.RuneCountInString(term) == 1) {
			parts = append(parts, part{best, sources[i]})
			continue
		}

		split := s.bestSplit(term, best, editDistance)
		if split == nil {
			split = NewSuggestion(term, editDistance+1, unknownCount(term))
		}
		parts = append(parts, part{split, sources[i]})
	}

	count := float64(N)
	terms = terms[:0]
	for _, p := range parts {
		terms = append(terms, p.Term)
		count *= float64(p.Count) / float64(N)
	}
	joined := strings.Join(terms, " ")
	distance := s.comparer.Compare(utilities.Lower(input), joined, math.MaxInt)

	if transferCasing {
		for i, p := range parts {
			terms[i] = casing.TransferSimilar(p.source, p.Term)
		}
		joined = strings.Join(terms, " ")
	}

	return Suggestions{NewSuggestion(joined, distance, int64(count))}, nil
}

// bestSplit tries every two-way split of term and returns the best scoring one, or single
// when no split beats it. A nil result means neither the term nor any split is known.
func (s *SymSpell) bestSplit(term string, single *Suggestion, editDistance int) *Suggestion {
	runes := []rune(term)
	if len(runes) <= 1 {
		return single
	}

	var best *Suggestion
	if single != nil {
		best = single.ShallowCopy()
	}
	// a split only replaces best when its count is higher, so best must carry a count to compete
	bestCount := func() int64 {
		if best == nil {
			return 0
		}
		return best.Count
	}

	for j := 1; j < len(runes); j++ {
		part1, part2 := string(runes[:j]), string(runes[j:])
		suggestion1 := s.topSuggestion(part1, editDistance)
		if suggestion1 == nil {
			continue
		}
		suggestion2 := s.topSuggestion(part2, editDistance)
		if suggestion2 == nil {
			continue
		}

		split := NewSuggestion(suggestion1.Term+" "+suggestion2.Term, 0, 0)
		distance2 := s.comparer.Compare(term, split.Term, editDistance)
		if distance2 < 0 {
			distance2 = editDistance + 1
		}

		if bestCount() > 0 {
			if distance2 > best.Distance {
				continue
			}
			if distance2 < best.Distance {
				best.Count = 0
			}
		}
		split.Distance = distance2

		if bigramCount, ok := s.bigrams[split.Term]; ok {
			split.Count = bigramCount
			// increase count, if split corrections are part of or identical to input
			if single != nil {
				if suggestion1.Term+suggestion2.Term == term {
					// make count bigger than count of single term correction
					split.Count = max(split.Count, single.Count+2)
				} else if suggestion1.Term == single.Term || suggestion2.Term == single.Term {
					split.Count = max(split.Count, single.Count+1)
				}
			} else if suggestion1.Term+suggestion2.Term == term {
				split.Count = max(split.Count, max(suggestion1.Count, suggestion2.Count)+2)
			}
		} else {
			// The Naive Bayes probability of the word combination is the product of the two word probabilities: P(AB) = P(A) * P(B)
			// use it to estimate the count of the combination, which then is used to rank/select the best splitting variant
			split.Count = min(s.bigramCountMin, int64(float64(suggestion1.Count)/float64(N)*float64(suggestion2.Count)))
		}

		if split.Count > bestCount() {
			best = split
		}
	}

	if bestCount() == 0 {
		return nil
	}
	return best
}
