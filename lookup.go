package symspell

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/morezian/go-symspell/casing"
	"github.com/morezian/go-symspell/utilities"
	verb "github.com/morezian/go-symspell/verbosity"
)

// LookupDefault looks up input with the engine's max dictionary edit distance.
func (s *SymSpell) LookupDefault(input string, verbosity verb.Verbosity) (Suggestions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(input, verbosity, s.opts.MaxDictionaryEditDistance, false)
}

// LookupEditDistance looks up input within maxEditDistance.
func (s *SymSpell) LookupEditDistance(input string, verbosity verb.Verbosity, maxEditDistance int) (Suggestions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(input, verbosity, maxEditDistance, false)
}

// Lookup finds dictionary words within maxEditDistance of input.
//
//   - verbosity=Top: the suggestion with the highest count of the suggestions of smallest edit distance found
//   - verbosity=Closest: all suggestions of smallest edit distance found, ordered by count
//   - verbosity=All: all suggestions <= maxEditDistance, ordered by edit distance then by count (slower, no early termination)
//
// With includeUnknown the input itself is returned with distance 0 and count 0 when nothing matched.
// maxEditDistance can't be bigger than the max dictionary edit distance the index was built for.
func (s *SymSpell) Lookup(input string, verbosity verb.Verbosity, maxEditDistance int, includeUnknown bool) (Suggestions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(input, verbosity, maxEditDistance, includeUnknown)
}

// LookupTransferCasing lowercases input before the lookup and reapplies its casing to every suggestion.
func (s *SymSpell) LookupTransferCasing(input string, verbosity verb.Verbosity, maxEditDistance int, includeUnknown bool) (Suggestions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	suggestions, err := s.lookup(utilities.Lower(input), verbosity, maxEditDistance, includeUnknown)
	if err != nil {
		return nil, err
	}
	for _, sugg := range suggestions {
		sugg.Term = casing.TransferSimilar(input, sugg.Term)
	}
	return suggestions, nil
}

func (s *SymSpell) lookup(input string, verbosity verb.Verbosity, maxEditDistance int, includeUnknown bool) (Suggestions, error) {
	if err := s.checkDistance(maxEditDistance); err != nil {
		return nil, err
	}

	suggestions := s.search(input, []rune(input), verbosity, maxEditDistance)
	if len(suggestions) > 1 {
		suggestions.Sort()
	}
	if includeUnknown && len(suggestions) == 0 {
		suggestions = append(suggestions, NewSuggestion(input, 0, 0))
	}
	return suggestions, nil
}

func (s *SymSpell) search(input string, in []rune, verbosity verb.Verbosity, maxEditDistance int) Suggestions {
	suggestions := NewSuggestions()
	inputLen := len(in)
	prefixLength := s.opts.PrefixLength

	// early exit - word is too big to possibly match any words
	if inputLen-maxEditDistance > s.words.MaxLength() {
		return suggestions
	}

	if count, ok := s.words.Get(input); ok {
		suggestions = append(suggestions, NewSuggestion(input, 0, count))
		// early exit - return exact match, unless caller wants all matches
		if verbosity != verb.All {
			return suggestions
		}
	}

	// early termination, if we only want to check if word in dictionary or get its count
	if maxEditDistance == 0 {
		return suggestions
	}

	consideredDeletes := mapset.NewThreadUnsafeSet[string]()
	// we considered the input already in the exact match above
	consideredSuggestions := mapset.NewThreadUnsafeSet(input)

	maxEditDistance2 := maxEditDistance
	inputPrefixLen := min(inputLen, prefixLength)
	candidates := [][]rune{in[:inputPrefixLen]}

	for pointer := 0; pointer < len(candidates); pointer++ {
		candidate := candidates[pointer]
		candidateLen := len(candidate)
		lengthDiff := inputPrefixLen - candidateLen

		// if candidate distance is already higher than suggestion distance, then there are no better suggestions to be expected
		if lengthDiff > maxEditDistance2 {
			// candidates are ordered by delete distance, so none are closer than current
			if verbosity == verb.All {
				continue
			}
			break
		}

		if ids, ok := s.index.Get(utilities.GetStringHash(string(candidate), s.compactMask)); ok {
			for _, id := range ids {
				suggestion := s.words.Term(id)
				if suggestion == input {
					continue
				}
				sugg := []rune(suggestion)
				suggestionLen := len(sugg)

				if utilities.Abs(suggestionLen-inputLen) > maxEditDistance2 || // input and sugg lengths diff > allowed/current best distance
					suggestionLen < candidateLen || // sugg must be for a different delete string, in same bin only because of hash collision
					(suggestionLen == candidateLen && suggestion != string(candidate)) { // if sugg len = delete len, then it either equals delete or is in same bin only because of hash collision
					continue
				}
				suggPrefixLen := min(suggestionLen, prefixLength)
				if suggPrefixLen > inputPrefixLen && suggPrefixLen-candidateLen > maxEditDistance2 {
					continue
				}

				// Simultaneous deletes on both the input and the dictionary side can make two strings
				// that are further apart than maxEditDistance share a signature
				// (bank==bnak and bank==bink, but bank!=kanb and bank!=xban for maxEditDistance=1),
				// so the real distance is always computed.
				var distance int
				switch {
				case candidateLen == 0:
					// suggestions which have no common chars with input (inputLen<=maxEditDistance && suggestionLen<=maxEditDistance)
					distance = max(inputLen, suggestionLen)
					if distance > maxEditDistance2 || !consideredSuggestions.Add(suggestion) {
						continue
					}
				case suggestionLen == 1:
					if slices.Index(in, sugg[0]) < 0 {
						distance = inputLen
					} else {
						distance = inputLen - 1
					}
					if distance > maxEditDistance2 || !consideredSuggestions.Add(suggestion) {
						continue
					}
				case prefixLength-maxEditDistance == candidateLen && suffixRulesOut(in, sugg, prefixLength):
					// number of edits in prefix == maxEditDistance and no identical suffix,
					// then edit distance > maxEditDistance and no need for the distance calculation
					continue
				default:
					// deleteInSuggestionPrefix is somewhat expensive, and only pays off when verbosity is Top or Closest
					if (verbosity != verb.All && !deleteInSuggestionPrefix(candidate, sugg, prefixLength)) ||
						!consideredSuggestions.Add(suggestion) {
						continue
					}
					distance = s.comparer.Compare(input, suggestion, maxEditDistance2)
					if distance < 0 {
						continue
					}
				}

				// do not process higher distances than those already found, if verbosity<All
				// (maxEditDistance2 will always equal maxEditDistance when verbosity is All)
				if distance > maxEditDistance2 {
					continue
				}
				count := s.words.Count(id)
				si := NewSuggestion(suggestion, distance, count)
				if len(suggestions) > 0 {
					switch verbosity {
					case verb.Closest:
						// we will calculate the distance only to the smallest found distance so far
						if distance < maxEditDistance2 {
							suggestions.Clear()
						}
					case verb.Top:
						if distance < maxEditDistance2 || count > suggestions[0].Count {
							maxEditDistance2 = distance
							suggestions[0] = si
						}
						continue
					}
				}
				if verbosity != verb.All {
					maxEditDistance2 = distance
				}
				suggestions = append(suggestions, si)
			}
		}

		// derive edits (deletes) from candidate (input) and add them to candidates list
		// this is a recursive process until the maximum edit distance has been reached
		if lengthDiff < maxEditDistance && candidateLen <= prefixLength {
			// do not create edits with edit distance smaller than suggestions already found
			if verbosity != verb.All && lengthDiff >= maxEditDistance2 {
				continue
			}
			for i := range candidate {
				del := make([]rune, 0, candidateLen-1)
				del = append(del, candidate[:i]...)
				del = append(del, candidate[i+1:]...)
				if consideredDeletes.Add(string(del)) {
					candidates = append(candidates, del)
				}
			}
		}
	}
	return suggestions
}

// suffixRulesOut reports whether the parts of input and suggestion past the indexed prefix
// differ by more than a transposition. Only valid when the prefix already used up every edit.
func suffixRulesOut(in, sugg []rune, prefixLength int) bool {
	inputLen, suggestionLen := len(in), len(sugg)
	m := min(inputLen, suggestionLen) - prefixLength
	if m > 1 && string(in[inputLen+1-m:]) != string(sugg[suggestionLen+1-m:]) {
		return true
	}
	return m > 0 && in[inputLen-m] != sugg[suggestionLen-m] &&
		(in[inputLen-m-1] != sugg[suggestionLen-m] || in[inputLen-m] != sugg[suggestionLen-m-1])
}

// deleteInSuggestionPrefix checks whether all delete chars are present in the suggestion prefix in correct order,
// otherwise this is just a hash collision
func deleteInSuggestionPrefix(del, suggestion []rune, prefixLength int) bool {
	if len(del) == 0 {
		return true
	}
	suggestionLen := min(len(suggestion), prefixLength)
	j := 0
	for _, c := range del {
		for j < suggestionLen && c != suggestion[j] {
			j++
		}
		if j == suggestionLen {
			return false
		}
	}
	return true
}
