package symspell

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/morezian/go-symspell/staging"
	"github.com/morezian/go-symspell/utilities"
)

const (
	snapshotMagic   = "SYMSPELL"
	snapshotVersion = 1
)

type snapshotOptions struct {
	MaxDictionaryEditDistance int   `msgpack:"max_dictionary_edit_distance"`
	PrefixLength              int   `msgpack:"prefix_length"`
	CountThreshold            int64 `msgpack:"count_threshold"`
	CompactLevel              int   `msgpack:"compact_level"`
	DistanceAlgorithm         uint8 `msgpack:"distance_algorithm"`
}

type snapshotEntry struct {
	Term  string `msgpack:"t"`
	Count int64  `msgpack:"c"`
}

// snapshotRecord is the on-disk form of an engine. The delete index is not stored, it is
// rebuilt from the entries on load so it always matches the recorded options.
type snapshotRecord struct {
	Magic          string           `msgpack:"magic"`
	Version        int              `msgpack:"version"`
	Options        snapshotOptions  `msgpack:"options"`
	Entries        []snapshotEntry  `msgpack:"entries"`
	BelowThreshold map[string]int64 `msgpack:"below_threshold"`
	Bigrams        map[string]int64 `msgpack:"bigrams"`
	BigramCountMin int64            `msgpack:"bigram_count_min"`
	MaxLength      int              `msgpack:"max_length"`
}

// SaveSnapshot writes the engine to path. The file is written next to path and renamed
// into place, so readers never see a partial snapshot.
func (s *SymSpell) SaveSnapshot(path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := s.WriteSnapshot(w); err != nil {
		tmp.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	s.logger.Info("Saved snapshot", "path", path)
	return nil
}

// WriteSnapshot encodes the engine to w.
func (s *SymSpell) WriteSnapshot(w io.Writer) error {
	s.mu.RLock()
	record := s.snapshotRecord()
	s.mu.RUnlock()

	if err := msgpack.NewEncoder(w).Encode(&record); err != nil {
		return fmt.Errorf("%w: encode snapshot: %w", ErrResourceUnavailable, err)
	}
	return nil
}

// SnapshotBytes returns the encoded engine.
func (s *SymSpell) SnapshotBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.WriteSnapshot(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *SymSpell) snapshotRecord() snapshotRecord {
	entries := s.words.Entries()
	record := snapshotRecord{
		Magic:   snapshotMagic,
		Version: snapshotVersion,
		Options: snapshotOptions{
			MaxDictionaryEditDistance: s.opts.MaxDictionaryEditDistance,
			PrefixLength:              s.opts.PrefixLength,
			CountThreshold:            s.opts.CountThreshold,
			CompactLevel:              s.opts.CompactLevel,
			DistanceAlgorithm:         uint8(s.opts.DistanceAlgorithm),
		},
		Entries:        make([]snapshotEntry, len(entries)),
		BelowThreshold: make(map[string]int64, len(s.belowThresholdWords)),
		Bigrams:        make(map[string]int64, len(s.bigrams)),
		BigramCountMin: s.bigramCountMin,
		MaxLength:      s.words.MaxLength(),
	}
	for i, e := range entries {
		record.Entries[i] = snapshotEntry{Term: e.Term, Count: e.Count}
	}
	for k, v := range s.belowThresholdWords {
		record.BelowThreshold[k] = v
	}
	for k, v := range s.bigrams {
		record.Bigrams[k] = v
	}
	return record
}

// LoadSnapshot replaces the engine's configuration and contents with the snapshot at path.
// A nil error means the snapshot was accepted. On any error the engine is left exactly as it was.
func (s *SymSpell) LoadSnapshot(path string) error {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Warn("Rejected snapshot", "path", path, "err", err)
		return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	defer f.Close()
	if err := s.ReadSnapshot(bufio.NewReader(f)); err != nil {
		return err
	}
	s.logger.Info("Loaded snapshot", "path", path)
	return nil
}

// LoadSnapshotBytes is LoadSnapshot reading from data.
func (s *SymSpell) LoadSnapshotBytes(data []byte) error {
	return s.ReadSnapshot(bytes.NewReader(data))
}

// ReadSnapshot is LoadSnapshot reading from r.
func (s *SymSpell) ReadSnapshot(r io.Reader) error {
	var record snapshotRecord
	if err := msgpack.NewDecoder(r).Decode(&record); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("truncated: %w", err)
		}
		s.logger.Warn("Rejected snapshot", "err", err)
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	fresh, err := s.restore(record)
	if err != nil {
		s.logger.Warn("Rejected snapshot", "err", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = fresh.opts
	s.compactMask = fresh.compactMask
	s.generator = fresh.generator
	s.comparer = fresh.comparer
	s.words = fresh.words
	s.index = fresh.index
	s.belowThresholdWords = fresh.belowThresholdWords
	s.bigrams = fresh.bigrams
	s.bigramCountMin = fresh.bigramCountMin
	return nil
}

// restore validates record and builds an independent engine from it.
func (s *SymSpell) restore(record snapshotRecord) (*SymSpell, error) {
	corrupt := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrCorruptSnapshot}, args...)...)
	}
	if record.Magic != snapshotMagic {
		return nil, corrupt("bad magic %q", record.Magic)
	}
	if record.Version != snapshotVersion {
		return nil, corrupt("unsupported version %d", record.Version)
	}

	opts := DefaultOptions()
	opts.MaxDictionaryEditDistance = record.Options.MaxDictionaryEditDistance
	opts.PrefixLength = record.Options.PrefixLength
	opts.CountThreshold = record.Options.CountThreshold
	opts.CompactLevel = record.Options.CompactLevel
	opts.DistanceAlgorithm = Algorithm(record.Options.DistanceAlgorithm)
	opts.InitialCapacity = len(record.Entries)
	if err := opts.Validate(); err != nil {
		return nil, corrupt("%w", err)
	}

	fresh := &SymSpell{logger: s.logger}
	fresh.reset(opts)

	stage := staging.NewStage(len(record.Entries))
	maxLength := 0
	for _, e := range record.Entries {
		if e.Count < 0 {
			return nil, corrupt("negative count for %q", e.Term)
		}
		id, created := fresh.words.Insert(e.Term, e.Count)
		if !created {
			return nil, corrupt("duplicate term %q", e.Term)
		}
		maxLength = max(maxLength, utf8.RuneCountInString(e.Term))
		for del := range fresh.generator.EditsPrefix(e.Term).Iter() {
			stage.Add(utilities.GetStringHash(del, fresh.compactMask), id)
		}
	}
	if maxLength != record.MaxLength {
		return nil, corrupt("max length %d does not match entries (%d)", record.MaxLength, maxLength)
	}
	stage.CommitTo(fresh.index)

	for k, v := range record.BelowThreshold {
		if v < 0 {
			return nil, corrupt("negative count for %q", k)
		}
		fresh.belowThresholdWords[k] = v
	}
	for k, v := range record.Bigrams {
		if v < 0 {
			return nil, corrupt("negative bigram count for %q", k)
		}
		fresh.bigrams[k] = v
	}
	fresh.bigramCountMin = record.BigramCountMin
	return fresh, nil
}
