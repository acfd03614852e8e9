package symspell

import (
	"errors"

	"github.com/hbollon/go-edlib"
)

// Distance returns the unbounded edit distance between a and b under algorithm.
func Distance(a, b string, algorithm edlib.Algorithm) (int, error) {
	switch algorithm {
	case edlib.OSADamerauLevenshtein:
		return edlib.OSADamerauLevenshteinDistance(a, b), nil
	case edlib.DamerauLevenshtein:
		return edlib.DamerauLevenshteinDistance(a, b), nil
	case edlib.Levenshtein:
		return edlib.LevenshteinDistance(a, b), nil
	}

	return -1, errors.New("invalid algorithm")
}

// DamerauOSA computes the optimal string alignment distance with an upper bound.
// Strings are compared as runes. The zero value is ready to use and safe for concurrent use.
type DamerauOSA struct{}

// Distance returns the OSA distance between a and b, or -1 as soon as it is known to exceed maxDistance.
func (DamerauOSA) Distance(a, b string, maxDistance int) int {
	if a == "" || b == "" {
		return emptyDistance(a, b, maxDistance)
	}
	if maxDistance <= 0 {
		if a == b {
			return 0
		}
		return -1
	}

	r1, r2 := []rune(a), []rune(b)
	// r1 is the shorter one
	if len(r1) > len(r2) {
		r1, r2 = r2, r1
	}
	if len(r2)-len(r1) > maxDistance {
		return -1
	}

	len1, len2, start := trimAffixes(r1, r2)
	if len1 == 0 {
		if len2 <= maxDistance {
			return len2
		}
		return -1
	}

	costs := make([]int, len2)
	prevCosts := make([]int, len2)
	if maxDistance < len2 {
		return osaBounded(r1[start:start+len1], r2[start:start+len2], maxDistance, costs, prevCosts)
	}
	return osa(r1[start:start+len1], r2[start:start+len2], costs, prevCosts)
}

func emptyDistance(a, b string, maxDistance int) int {
	if a == b {
		return 0
	}
	d := max(len([]rune(a)), len([]rune(b)))
	if d > maxDistance {
		return -1
	}
	return d
}

// trimAffixes strips the common prefix and suffix, which never change the distance.
func trimAffixes(r1, r2 []rune) (len1, len2, start int) {
	len1, len2 = len(r1), len(r2)
	for start < len1 && start < len2 && r1[start] == r2[start] {
		start++
	}
	len1 -= start
	len2 -= start
	for len1 > 0 && len2 > 0 && r1[start+len1-1] == r2[start+len2-1] {
		len1--
		len2--
	}
	return len1, len2, start
}

func osa(s1, s2 []rune, costs, prevCosts []int) int {
	for j := range s2 {
		costs[j] = j + 1
	}
	var c1, prevC1 rune
	current := 0
	for i := range s1 {
		prevC1 = c1
		c1 = s1[i]
		var c2, prevC2 rune
		left, above := i, i
		nextTrans := 0
		for j := range s2 {
			thisTrans := nextTrans
			nextTrans = prevCosts[j]
			current = left
			prevCosts[j] = current
			left = costs[j]
			prevC2 = c2
			c2 = s2[j]
			if c1 != c2 {
				current = min(current, above, left) + 1
				if i != 0 && j != 0 && c1 == prevC2 && prevC1 == c2 && thisTrans+1 < current {
					current = thisTrans + 1
				}
			}
			costs[j] = current
			above = current
		}
	}
	return current
}

// osaBounded only fills the diagonal band of width maxDistance and bails out
// once every cell on the band exceeds it.
func osaBounded(s1, s2 []rune, maxDistance int, costs, prevCosts []int) int {
	len1, len2 := len(s1), len(s2)
	for j := 0; j < maxDistance; j++ {
		costs[j] = j + 1
	}
	for j := maxDistance; j < len2; j++ {
		costs[j] = maxDistance + 1
	}
	lenDiff := len2 - len1
	jStartOffset := maxDistance - lenDiff
	jStart, jEnd := 0, maxDistance

	var c1, prevC1 rune
	current := 0
	for i := range s1 {
		prevC1 = c1
		c1 = s1[i]
		var c2, prevC2 rune
		left, above := i, i
		nextTrans := 0
		if i > jStartOffset {
			jStart++
		}
		if jEnd < len2 {
			jEnd++
		}
		for j := jStart; j < jEnd; j++ {
			thisTrans := nextTrans
			nextTrans = prevCosts[j]
			current = left
			prevCosts[j] = current
			left = costs[j]
			prevC2 = c2
			c2 = s2[j]
			if c1 != c2 {
				current = min(current, above, left) + 1
				if i != 0 && j != 0 && c1 == prevC2 && prevC1 == c2 && thisTrans+1 < current {
					current = thisTrans + 1
				}
			}
			costs[j] = current
			above = current
		}
		if costs[i+lenDiff] > maxDistance {
			return -1
		}
	}
	if current <= maxDistance {
		return current
	}
	return -1
}

// DistanceComparer verifies candidates with the configured algorithm.
// OSA uses the bounded implementation, the other algorithms go through go-edlib.
type DistanceComparer struct {
	Algorithm edlib.Algorithm
}

// Compare returns the distance between a and b, or -1 when it exceeds maxDistance.
func (c DistanceComparer) Compare(a, b string, maxDistance int) int {
	if c.Algorithm == edlib.OSADamerauLevenshtein {
		return DamerauOSA{}.Distance(a, b, maxDistance)
	}
	d, err := Distance(a, b, c.Algorithm)
	if err != nil || d > maxDistance {
		return -1
	}
	return d
}
