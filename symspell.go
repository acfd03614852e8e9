// Package symspell implements symmetric delete spelling correction: single word lookup,
// compound aware correction of whole sentences and word segmentation of run-together text.
//
// An engine keeps a dictionary of terms with counts and an index from delete signatures
// (the term with up to MaxDictionaryEditDistance runes removed from its prefix) to terms.
// A lookup derives the same signatures from the input, collects the terms sharing one and
// verifies each candidate with a bounded edit distance.
//
// All methods are safe for concurrent use. Lookups take a read lock, mutations and loads
// take the write lock.
package symspell

import (
	"fmt"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hbollon/go-edlib"

	"github.com/morezian/go-symspell/deletes"
	"github.com/morezian/go-symspell/dictionary"
	"github.com/morezian/go-symspell/internal/logger"
	"github.com/morezian/go-symspell/staging"
	"github.com/morezian/go-symspell/utilities"
)

// N is the number of words in the corpus the bundled English frequency dictionary was built from.
// Counts are divided by it to estimate word probabilities.
const N int64 = 1024908267229

// SymSpell is a spelling correction engine.
type SymSpell struct {
	mu sync.RWMutex

	opts        Options
	compactMask uint
	generator   deletes.Generator
	comparer    DistanceComparer

	words *dictionary.Store
	// Delete signature hash to ids of the words that produced it. Collisions are tolerated,
	// because suggestions are ultimately verified via an edit distance function.
	index *deletes.Index
	// Words seen fewer than CountThreshold times. They are promoted once they reach it.
	belowThresholdWords map[string]int64

	bigrams        map[string]int64
	bigramCountMin int64

	logger *log.Logger
}

// NewSymSpellDefault returns an engine with max edit distance 2, prefix length 7 and count threshold 1.
func NewSymSpellDefault() (*SymSpell, error) {
	return NewSymSpell(defaultMaxEditDistance, defaultPrefixLength, defaultCountThreshold)
}

// NewSymSpell returns an empty engine. maxDictionaryEditDistance bounds every later lookup,
// prefixLength bounds how much of each term is indexed and countThreshold is the count a term
// needs to be offered as a correction.
func NewSymSpell(maxDictionaryEditDistance, prefixLength int, countThreshold int64, opts ...Option) (*SymSpell, error) {
	o := DefaultOptions()
	o.MaxDictionaryEditDistance = maxDictionaryEditDistance
	o.PrefixLength = prefixLength
	o.CountThreshold = countThreshold
	return NewFromOptions(o, opts...)
}

// NewFromOptions returns an empty engine configured by opts, with extra applied on top.
func NewFromOptions(opts Options, extra ...Option) (*SymSpell, error) {
	for _, opt := range extra {
		opt(&opts)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	l := opts.logger
	if l == nil {
		l = logger.New("symspell")
	}
	s := &SymSpell{logger: l}
	s.reset(opts)
	return s, nil
}

// reset replaces the configuration and empties every structure. Callers hold the write lock.
func (s *SymSpell) reset(opts Options) {
	s.opts = opts
	s.compactMask = utilities.CompactMask(opts.CompactLevel)
	s.generator = deletes.Generator{
		MaxEditDistance: opts.MaxDictionaryEditDistance,
		PrefixLength:    opts.PrefixLength,
	}
	s.comparer = DistanceComparer{Algorithm: edlib.Algorithm(opts.DistanceAlgorithm)}
	s.words = dictionary.NewStore(opts.InitialCapacity)
	s.index = deletes.NewIndex(opts.InitialCapacity)
	s.belowThresholdWords = make(map[string]int64)
	s.bigrams = make(map[string]int64)
	s.bigramCountMin = math.MaxInt64
}

// Options returns the engine's configuration.
func (s *SymSpell) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o := s.opts
	o.logger = nil
	return o
}

// WordCount returns the number of words that can be offered as corrections.
func (s *SymSpell) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words.Len()
}

// EntryCount returns the number of delete signature buckets.
func (s *SymSpell) EntryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Len()
}

// MaxLength returns the rune length of the longest word.
func (s *SymSpell) MaxLength() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words.MaxLength()
}

// MaxDictionaryEditDistance returns the largest edit distance a lookup may ask for.
func (s *SymSpell) MaxDictionaryEditDistance() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.MaxDictionaryEditDistance
}

// PrefixLength returns the number of leading runes used to derive deletes.
func (s *SymSpell) PrefixLength() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.PrefixLength
}

// CountThreshold returns the count a word needs to be offered as a correction.
func (s *SymSpell) CountThreshold() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.CountThreshold
}

// BigramCount returns the number of loaded bigrams.
func (s *SymSpell) BigramCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bigrams)
}

// Count returns the count of a word that can be offered as a correction.
func (s *SymSpell) Count(term string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words.Get(term)
}

// CreateDictionaryEntry adds count to term, creating it if needed.
// It reports false for negative counts and for words that stay below the count threshold.
// Adding to an existing word reports true. Counts saturate at math.MaxInt64.
func (s *SymSpell) CreateDictionaryEntry(term string, count int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createEntry(term, count, nil)
}

func (s *SymSpell) createEntry(term string, count int64, stage *staging.Stage) bool {
	if count < 0 {
		return false
	}
	threshold := s.opts.CountThreshold
	if count == 0 && threshold > 0 {
		// a zero count can't change anything
		return false
	}

	if previous, ok := s.belowThresholdWords[term]; threshold > 1 && ok {
		count = utilities.SaturatingAdd(previous, count)
		if count < threshold {
			s.belowThresholdWords[term] = count
			return false
		}
		delete(s.belowThresholdWords, term)
	} else if _, ok := s.words.ID(term); ok {
		s.words.Insert(term, count)
		return true
	} else if count < threshold {
		s.belowThresholdWords[term] = count
		return false
	}

	id, _ := s.words.Insert(term, count)
	for del := range s.generator.EditsPrefix(term).Iter() {
		hash := utilities.GetStringHash(del, s.compactMask)
		if stage != nil {
			stage.Add(hash, id)
		} else {
			s.index.Add(hash, id)
		}
	}
	return true
}

// DeleteDictionaryEntry removes term together with all of its delete signatures.
// It reports false if the term is unknown.
func (s *SymSpell) DeleteDictionaryEntry(term string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.belowThresholdWords[term]; ok {
		delete(s.belowThresholdWords, term)
		return true
	}
	id, ok := s.words.Delete(term)
	if !ok {
		return false
	}
	for del := range s.generator.EditsPrefix(term).Iter() {
		s.index.Remove(utilities.GetStringHash(del, s.compactMask), id)
	}
	return true
}

// PurgeBelowThresholdWords forgets every word still below the count threshold.
// Useful to reduce memory once a corpus has been loaded with CreateDictionary.
func (s *SymSpell) PurgeBelowThresholdWords() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.belowThresholdWords = make(map[string]int64)
}

func (s *SymSpell) checkDistance(maxEditDistance int) error {
	if maxEditDistance < 0 || maxEditDistance > s.opts.MaxDictionaryEditDistance {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrDistanceTooLarge, maxEditDistance, s.opts.MaxDictionaryEditDistance)
	}
	return nil
}
