package symspell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCompoundMergesSplitWord(t *testing.T) {
	s := newDefaultTestEngine(t)
	s.CreateDictionaryEntry("steam", 1)
	s.CreateDictionaryEntry("machine", 1)

	result, err := s.LookupCompoundWithEditDistance("ste am machie", 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "steam machine", result[0].Term)
	assert.Equal(t, 2, result[0].Distance)
}

func TestLookupCompoundKeepsUnknownWords(t *testing.T) {
	s := newDefaultTestEngine(t)
	s.CreateDictionaryEntry("steam", 1)
	s.CreateDictionaryEntry("machine", 1)

	result, err := s.LookupCompound("qwer erty ytui a")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "qwer erty ytui a", result[0].Term)
	assert.Equal(t, 0, result[0].Distance)
	assert.Equal(t, int64(0), result[0].Count)
}

func TestLookupCompoundSplitsRunTogetherWords(t *testing.T) {
	s := newDefaultTestEngine(t)
	s.CreateDictionaryEntry("can", 300000000)
	s.CreateDictionaryEntry("you", 200000000)
	s.CreateDictionaryEntry("read", 50000000)
	s.CreateDictionaryEntry("this", 400000000)

	result, err := s.LookupCompound("can yu readthis")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "can you read this", result[0].Term)
	assert.Equal(t, 2, result[0].Distance)
}

func TestLookupCompoundTransferCasingPerTerm(t *testing.T) {
	s := newDefaultTestEngine(t)
	s.CreateDictionaryEntry("steam", 1)
	s.CreateDictionaryEntry("machine", 1)

	result, err := s.LookupCompoundTransferCasing("ste Am MACHIE", 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "steAm MACHINE", result[0].Term)
	assert.Equal(t, 2, result[0].Distance)
}

func TestLookupCompoundEmptyInput(t *testing.T) {
	s := newDefaultTestEngine(t)
	result, err := s.LookupCompound("  ")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "", result[0].Term)
}

func TestLookupCompoundEnglish(t *testing.T) {
	tests := []struct {
		typo       string
		correction string
		distance   int
		count      int64
	}{
		{"whereis th elove", "where is the love", 2, 47},
		{"the bigjest playrs", "the biggest players", 2, 20},
		{"can yu readthis", "can you read this", 2, 11440},
		{
			"whereis th elove hehad dated forImuch of thepast who couqdn'tread in sixthgrade and ins pired him",
			"where is the love he had dated for much of the past who couldn't read in sixth grade and inspired him",
			9, 0,
		},
		{
			"in te dhird qarter oflast jear he hadlearned ofca sekretplan",
			"in the third quarter of last year he had learned of a secret plan",
			9, 0,
		},
		{
			"the bigjest playrs in te strogsommer film slatew ith plety of funn",
			"the biggest players in the strong summer film slate with plenty of fun",
			9, 0,
		},
		{
			"can yu readthis messa ge despite thehorible sppelingmsitakes",
			"can you read this message despite the horrible spelling mistakes",
			9, 0,
		},
	}

	s := englishEngine(t, 2, true)
	for _, tt := range tests {
		result, err := s.LookupCompoundWithEditDistance(tt.typo, 2)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, tt.correction, result[0].Term)
		assert.Equal(t, tt.distance, result[0].Distance, tt.typo)
		assert.Equal(t, tt.count, result[0].Count, tt.typo)
	}
}

func TestLookupCompoundEnglishWithoutBigrams(t *testing.T) {
	tests := []struct {
		typo       string
		correction string
		distance   int
		count      int64
	}{
		{"whereis th elove", "whereas the love", 2, 35},
		{"the bigjest playrs", "the biggest players", 2, 20},
		{"can yu readthis", "can you read this", 2, 4},
		{
			"whereis th elove hehad dated forImuch of thepast who couqdn'tread in sixthgrade and ins pired him",
			"whereas the love head dated for much of the past who couldn't read in sixth grade and inspired him",
			9, 0,
		},
		{
			"in te dhird qarter oflast jear he hadlearned ofca sekretplan",
			"in the third quarter of last year he had learned of a secret plan",
			9, 0,
		},
	}

	s := englishEngine(t, 2, false)
	for _, tt := range tests {
		result, err := s.LookupCompound(tt.typo)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, tt.correction, result[0].Term)
		assert.Equal(t, tt.distance, result[0].Distance, tt.typo)
		assert.Equal(t, tt.count, result[0].Count, tt.typo)
	}
}

func TestLookupCompoundTransferCasingEnglish(t *testing.T) {
	typo := "Whereis th elove hehaD Dated forImuch of thepast who couqdn'tread in sixthgrade AND ins pired him"

	s := englishEngine(t, 2, true)
	result, err := s.LookupCompoundTransferCasing(typo, 2)
	require.NoError(t, err)
	assert.Equal(t, "Where is the love he haD Dated for much of the past who couldn't read in sixth grade AND inspired him", result[0].Term)

	s = englishEngine(t, 2, false)
	result, err = s.LookupCompoundTransferCasing(typo, 2)
	require.NoError(t, err)
	assert.Equal(t, "Whereas the love heaD Dated for much of the past who couldn't read in sixth grade AND inspired him", result[0].Term)
}
