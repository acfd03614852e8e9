package symspell

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/hbollon/go-edlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamerauOSADistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"ab", "ba", 1},
		{"ca", "abc", 3},
		{"flaw", "lawn", 2},
		{"kitten", "sitting", 3},
		{"the", "teh", 1},
		{"АБ", "АБИ", 1},
		{"prefixsuffix", "prefixXsuffix", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, DamerauOSA{}.Distance(tt.a, tt.b, 10))
			assert.Equal(t, tt.expected, DamerauOSA{}.Distance(tt.b, tt.a, 10))
		})
	}
}

func TestDamerauOSADistanceBounded(t *testing.T) {
	assert.Equal(t, -1, DamerauOSA{}.Distance("kitten", "sitting", 2))
	assert.Equal(t, 3, DamerauOSA{}.Distance("kitten", "sitting", 3))
	assert.Equal(t, -1, DamerauOSA{}.Distance("a", "abcd", 2))
	assert.Equal(t, -1, DamerauOSA{}.Distance("abc", "", 2))
	assert.Equal(t, 0, DamerauOSA{}.Distance("same", "same", 0))
	assert.Equal(t, -1, DamerauOSA{}.Distance("same", "sane", 0))
}

func TestDamerauOSAMatchesEdlib(t *testing.T) {
	words := []string{"steam", "steams", "steem", "machine", "machie", "pipe", "pips", "abcdef", "badcfe", "a", "ab"}
	for _, a := range words {
		for _, b := range words {
			expected := edlib.OSADamerauLevenshteinDistance(a, b)
			for maxDistance := 0; maxDistance <= 6; maxDistance++ {
				got := DamerauOSA{}.Distance(a, b, maxDistance)
				if expected <= maxDistance {
					assert.Equal(t, expected, got, "%s %s %d", a, b, maxDistance)
				} else {
					assert.Equal(t, -1, got, "%s %s %d", a, b, maxDistance)
				}
			}
		}
	}
}

func TestDamerauOSATransposition(t *testing.T) {
	assert.Equal(t, 2, DamerauOSA{}.Distance("annc", "ncn", math.MaxInt))
	assert.Equal(t, 2, DamerauOSA{}.Distance("ccnb", "cbbn", 2))
	assert.Equal(t, 2, DamerauOSA{}.Distance("bnak", "tank", 2))
	assert.Equal(t, 2, DamerauOSA{}.Distance("whereis th elove", "where is the love", math.MaxInt))
	assert.Equal(t, 2, DamerauOSA{}.Distance("whereis th elove", "whereas the love", math.MaxInt))
}

func TestDamerauOSAMatchesEdlibRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	word := func() string {
		var sb strings.Builder
		for n := 1 + rng.Intn(6); n > 0; n-- {
			sb.WriteByte("abcn"[rng.Intn(4)])
		}
		return sb.String()
	}

	for range 20000 {
		a, b := word(), word()
		expected := edlib.OSADamerauLevenshteinDistance(a, b)
		require.Equal(t, expected, DamerauOSA{}.Distance(a, b, math.MaxInt), "%s %s", a, b)
		if expected <= 2 {
			require.Equal(t, expected, DamerauOSA{}.Distance(a, b, 2), "%s %s", a, b)
		} else {
			require.Equal(t, -1, DamerauOSA{}.Distance(a, b, 2), "%s %s", a, b)
		}
	}
}

func TestDistance(t *testing.T) {
	d, err := Distance("ca", "abc", edlib.DamerauLevenshtein)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = Distance("ab", "ba", edlib.Levenshtein)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	_, err = Distance("a", "b", edlib.Jaro)
	assert.Error(t, err)
}

func TestDistanceComparer(t *testing.T) {
	osa := DistanceComparer{Algorithm: edlib.OSADamerauLevenshtein}
	assert.Equal(t, 3, osa.Compare("ca", "abc", 3))
	assert.Equal(t, -1, osa.Compare("ca", "abc", 2))

	lev := DistanceComparer{Algorithm: edlib.Levenshtein}
	assert.Equal(t, 2, lev.Compare("ab", "ba", 2))
	assert.Equal(t, -1, lev.Compare("ab", "ba", 1))
}
