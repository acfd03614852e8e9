package symspell

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	verb "github.com/morezian/go-symspell/verbosity"
)

func newSnapshotSource(t *testing.T) *SymSpell {
	t.Helper()
	s := newTestEngine(t, 2, 7, 10)
	s.CreateDictionaryEntry("steam", 20)
	s.CreateDictionaryEntry("steams", 15)
	s.CreateDictionaryEntry("steem", 30)
	s.CreateDictionaryEntry("machinery", 12)
	s.CreateDictionaryEntry("rare", 3)
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := newSnapshotSource(t)
	path := filepath.Join(t.TempDir(), "engine.snap")
	require.NoError(t, src.SaveSnapshot(path))

	dst := newTestEngine(t, 1, 3, 1)
	require.NoError(t, dst.LoadSnapshot(path))

	assert.Equal(t, 2, dst.MaxDictionaryEditDistance())
	assert.Equal(t, 7, dst.PrefixLength())
	assert.Equal(t, int64(10), dst.CountThreshold())
	assert.Equal(t, src.WordCount(), dst.WordCount())
	assert.Equal(t, src.EntryCount(), dst.EntryCount())
	assert.Equal(t, 9, dst.MaxLength())

	want, err := src.LookupEditDistance("steems", verb.All, 2)
	require.NoError(t, err)
	got, err := dst.LookupEditDistance("steems", verb.All, 2)
	require.NoError(t, err)
	assert.Equal(t, want.Terms(), got.Terms())

	// below threshold counts survive
	assert.True(t, dst.CreateDictionaryEntry("rare", 7))
	count, ok := dst.Count("rare")
	assert.True(t, ok)
	assert.Equal(t, int64(10), count)
}

func TestSnapshotBytesRoundTripKeepsBigrams(t *testing.T) {
	src := newSnapshotSource(t)
	require.True(t, src.LoadBigramDictionaryFrom(strings.NewReader("steam machinery 500\n"), 0, 2, DefaultSeparator))
	data, err := src.SnapshotBytes()
	require.NoError(t, err)

	dst := newDefaultTestEngine(t)
	require.NoError(t, dst.LoadSnapshotBytes(data))
	assert.Equal(t, 1, dst.BigramCount())
}

func TestLoadSnapshotRejectsCorruptData(t *testing.T) {
	src := newSnapshotSource(t)
	data, err := src.SnapshotBytes()
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", data[:len(data)/2]},
		{"garbage", []byte{0xc1, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := newDefaultTestEngine(t)
			dst.CreateDictionaryEntry("pipe", 5)

			err := dst.LoadSnapshotBytes(tt.data)
			assert.ErrorIs(t, err, ErrCorruptSnapshot)
			assert.Equal(t, 1, dst.WordCount())
			assert.Equal(t, DefaultOptions().PrefixLength, dst.PrefixLength())
		})
	}
}

func TestLoadSnapshotRejectsInvalidRecords(t *testing.T) {
	valid := func() snapshotRecord {
		return newSnapshotSource(t).snapshotRecord()
	}

	tests := []struct {
		name   string
		mutate func(r *snapshotRecord)
	}{
		{"bad magic", func(r *snapshotRecord) { r.Magic = "NOTSPELL" }},
		{"unknown version", func(r *snapshotRecord) { r.Version = 99 }},
		{"invalid options", func(r *snapshotRecord) { r.Options.PrefixLength = 1 }},
		{"duplicate term", func(r *snapshotRecord) { r.Entries = append(r.Entries, r.Entries[0]) }},
		{"negative count", func(r *snapshotRecord) { r.Entries[0].Count = -1 }},
		{"max length mismatch", func(r *snapshotRecord) { r.MaxLength = 3 }},
		{"negative bigram", func(r *snapshotRecord) { r.Bigrams = map[string]int64{"a b": -2} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid()
			tt.mutate(&record)
			data, err := msgpack.Marshal(&record)
			require.NoError(t, err)

			dst := newDefaultTestEngine(t)
			dst.CreateDictionaryEntry("pipe", 5)
			assert.ErrorIs(t, dst.LoadSnapshotBytes(data), ErrCorruptSnapshot)
			assert.Equal(t, 1, dst.WordCount())
		})
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	s := newDefaultTestEngine(t)
	err := s.LoadSnapshot(filepath.Join(t.TempDir(), "missing.snap"))
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestSaveSnapshotUnwritableDirectory(t *testing.T) {
	s := newSnapshotSource(t)
	err := s.SaveSnapshot(filepath.Join(t.TempDir(), "missing", "engine.snap"))
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestSnapshotEnglish(t *testing.T) {
	src := englishEngine(t, 2, false)
	before, err := src.LookupDefault("tke", verb.Closest)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "english.snap")
	require.NoError(t, src.SaveSnapshot(path))

	dst := newDefaultTestEngine(t)
	require.NoError(t, dst.LoadSnapshot(path))
	after, err := dst.LookupDefault("tke", verb.Closest)
	require.NoError(t, err)
	assert.Equal(t, before[0].Term, after[0].Term)
	assert.Equal(t, src.MaxLength(), dst.MaxLength())
}
