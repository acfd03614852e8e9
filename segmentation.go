package symspell

import (
	"math"
	"strings"
	"unicode"

	"github.com/morezian/go-symspell/utilities"
	verb "github.com/morezian/go-symspell/verbosity"
)

// Composition is the result of WordSegmentation.
type Composition struct {
	// SegmentedString is the input with spaces inserted.
	SegmentedString string
	// CorrectedString is the segmented string with every part spelling corrected.
	CorrectedString string
	// DistanceSum is the edit distance between the input and CorrectedString.
	DistanceSum int
	// ProbabilityLogSum is the sum of the log10 word probabilities, a measure of how
	// common and probable the corrected segmentation is.
	ProbabilityLogSum float64
}

// WordSegmentation inserts missing spaces into input without correcting spelling.
// Parts are at most MaxLength runes long.
func (s *SymSpell) WordSegmentation(input string) (Composition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wordSegmentation(input, 0, s.words.MaxLength())
}

// WordSegmentationWithOptions inserts missing spaces into input and corrects each part
// within maxEditDistance. Parts longer than maxSegmentationWordLength runes are never considered.
//
// The optimum composition is found in linear time with a circular buffer of the best
// composition ending at each of the last maxSegmentationWordLength positions, no recursion.
func (s *SymSpell) WordSegmentationWithOptions(input string, maxEditDistance, maxSegmentationWordLength int) (Composition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wordSegmentation(input, maxEditDistance, maxSegmentationWordLength)
}

func (s *SymSpell) wordSegmentation(input string, maxEditDistance, maxSegmentationWordLength int) (Composition, error) {
	if err := s.checkDistance(maxEditDistance); err != nil {
		return Composition{}, err
	}
	runes := []rune(input)
	if len(runes) == 0 {
		return Composition{}, nil
	}
	maxSegmentationWordLength = max(maxSegmentationWordLength, 1)

	arraySize := min(maxSegmentationWordLength, len(runes))
	compositions := make([]Composition, arraySize)
	circularIndex := -1

	// outer loop (column): all possible part start positions
	for j := range runes {
		// inner loop (row): all possible part lengths from the start position
		imax := min(len(runes)-j, maxSegmentationWordLength)
		for i := 1; i <= imax; i++ {
			part := runes[j : j+i]
			separatorLength := 0
			topEd := 0

			if unicode.IsSpace(part[0]) {
				// remove space for the distance calculation
				part = part[1:]
			} else {
				// add ed+1: space did not exist, had to be inserted
				separatorLength = 1
			}

			// remove spaces from the part and add the number of removed spaces to topEd
			topEd += len(part)
			part = stripSpaces(part)
			topEd -= len(part)

			partText := string(part)
			topResult, ed, probabilityLog := s.scorePart(partText, maxEditDistance)
			topEd += ed

			destinationIndex := (i + circularIndex) % arraySize

			// set values in first loop
			if j == 0 {
				compositions[destinationIndex] = Composition{
					SegmentedString:   partText,
					CorrectedString:   topResult,
					DistanceSum:       topEd,
					ProbabilityLogSum: probabilityLog,
				}
				continue
			}

			prev := compositions[circularIndex]
			dest := compositions[destinationIndex]
			if i == maxSegmentationWordLength ||
				// replace values if better probabilityLogSum, if same edit distance OR one space difference
				((prev.DistanceSum+topEd == dest.DistanceSum || prev.DistanceSum+separatorLength+topEd == dest.DistanceSum) &&
					dest.ProbabilityLogSum < prev.ProbabilityLogSum+probabilityLog) ||
				// replace values if smaller edit distance
				prev.DistanceSum+separatorLength+topEd < dest.DistanceSum {
				compositions[destinationIndex] = Composition{
					SegmentedString:   prev.SegmentedString + " " + partText,
					CorrectedString:   prev.CorrectedString + " " + topResult,
					DistanceSum:       prev.DistanceSum + separatorLength + topEd,
					ProbabilityLogSum: prev.ProbabilityLogSum + probabilityLog,
				}
			}
		}
		circularIndex++
		if circularIndex == arraySize {
			circularIndex = 0
		}
	}
	return compositions[circularIndex], nil
}

// scorePart returns the best correction of part, its edit distance and its log10 probability.
//
// Word probabilities are assumed independent, so the probability of a segmentation is the
// product of its parts. Logarithms are summed instead, because products of many probabilities
// around 10^-10 underflow.
func (s *SymSpell) scorePart(part string, maxEditDistance int) (string, int, float64) {
	lowered := utilities.Lower(part)
	suggestions, err := s.lookup(lowered, verb.Top, maxEditDistance, false)
	if err == nil && len(suggestions) > 0 {
		top := suggestions[0]
		term := top.Term
		if first, ok := firstRune(part); ok && unicode.IsUpper(first) {
			term = capitalize(term)
		}
		return term, top.Distance, math.Log10(float64(top.Count) / float64(N))
	}
	// Unknown parts are priced by length, otherwise long input text would win as one long
	// unknown word although many spaces should be inserted.
	n := float64(len([]rune(part)))
	return part, len([]rune(part)), math.Log10(10 / (float64(N) * math.Pow(10, n)))
}

func stripSpaces(runes []rune) []rune {
	out := runes[:0:0]
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return out
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func capitalize(s string) string {
	r, ok := firstRune(s)
	if !ok {
		return s
	}
	return strings.Replace(s, string(r), string(unicode.ToUpper(r)), 1)
}
