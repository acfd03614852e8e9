package symspell

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/hbollon/go-edlib"
)

const (
	defaultMaxEditDistance = 2
	defaultPrefixLength    = 7
	defaultCountThreshold  = 1
	defaultInitialCapacity = 16
	defaultCompactLevel    = 5
	maxCompactLevel        = 16
)

// Algorithm names the edit distance used to verify candidates.
// It wraps edlib.Algorithm so the choice can be written by name in TOML files.
type Algorithm edlib.Algorithm

var algorithmNames = map[edlib.Algorithm]string{
	edlib.OSADamerauLevenshtein: "osa",
	edlib.DamerauLevenshtein:    "damerau",
	edlib.Levenshtein:           "levenshtein",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[edlib.Algorithm(a)]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

func (a Algorithm) MarshalText() ([]byte, error) {
	name, ok := algorithmNames[edlib.Algorithm(a)]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported distance algorithm %d", ErrConfiguration, uint8(a))
	}
	return []byte(name), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	for algo, name := range algorithmNames {
		if strings.EqualFold(name, strings.TrimSpace(string(text))) {
			*a = Algorithm(algo)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown distance algorithm %q", ErrConfiguration, text)
}

// Options configures an engine. They are fixed once the engine is built.
type Options struct {
	// MaxDictionaryEditDistance is the largest edit distance lookups may ask for.
	MaxDictionaryEditDistance int `toml:"max_dictionary_edit_distance"`
	// PrefixLength bounds how many leading runes of a term are used to generate deletes.
	PrefixLength int `toml:"prefix_length"`
	// CountThreshold is the count a term needs before it counts as a correct spelling.
	CountThreshold int64 `toml:"count_threshold"`
	// InitialCapacity presizes the term store.
	InitialCapacity int `toml:"initial_capacity"`
	// CompactLevel in 0..16 trades delete index memory for lookup speed.
	CompactLevel int `toml:"compact_level"`
	// DistanceAlgorithm verifies candidates. Defaults to optimal string alignment.
	DistanceAlgorithm Algorithm `toml:"distance_algorithm"`

	logger *log.Logger
}

// DefaultOptions returns distance 2, prefix length 7 and threshold 1.
func DefaultOptions() Options {
	return Options{
		MaxDictionaryEditDistance: defaultMaxEditDistance,
		PrefixLength:              defaultPrefixLength,
		CountThreshold:            defaultCountThreshold,
		InitialCapacity:           defaultInitialCapacity,
		CompactLevel:              defaultCompactLevel,
		DistanceAlgorithm:         Algorithm(edlib.OSADamerauLevenshtein),
	}
}

// Validate reports the first option that is out of bounds.
func (o Options) Validate() error {
	switch {
	case o.MaxDictionaryEditDistance < 0:
		return fmt.Errorf("%w: max_dictionary_edit_distance cannot be negative", ErrConfiguration)
	case o.PrefixLength <= 1:
		return fmt.Errorf("%w: prefix_length must be at least 2", ErrConfiguration)
	case o.PrefixLength <= o.MaxDictionaryEditDistance:
		return fmt.Errorf("%w: prefix_length must be greater than max_dictionary_edit_distance", ErrConfiguration)
	case o.CountThreshold < 0:
		return fmt.Errorf("%w: count_threshold cannot be negative", ErrConfiguration)
	case o.InitialCapacity < 0:
		return fmt.Errorf("%w: initial_capacity cannot be negative", ErrConfiguration)
	case o.CompactLevel < 0 || o.CompactLevel > maxCompactLevel:
		return fmt.Errorf("%w: compact_level must be between 0 and %d", ErrConfiguration, maxCompactLevel)
	}
	if _, ok := algorithmNames[edlib.Algorithm(o.DistanceAlgorithm)]; !ok {
		return fmt.Errorf("%w: unsupported distance_algorithm %d", ErrConfiguration, uint8(o.DistanceAlgorithm))
	}
	return nil
}

// LoadOptions decodes a TOML file on top of DefaultOptions and validates the result.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, fmt.Errorf("%w: decode %s: %w", ErrConfiguration, path, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Option customizes an engine built with NewSymSpell.
type Option func(*Options)

// WithInitialCapacity presizes the term store.
func WithInitialCapacity(capacity int) Option {
	return func(o *Options) { o.InitialCapacity = capacity }
}

// WithCompactLevel sets the delete hash compact level.
func WithCompactLevel(level int) Option {
	return func(o *Options) { o.CompactLevel = level }
}

// WithDistanceAlgorithm replaces the candidate verification distance.
func WithDistanceAlgorithm(algorithm edlib.Algorithm) Option {
	return func(o *Options) { o.DistanceAlgorithm = Algorithm(algorithm) }
}

// WithLogger replaces the engine's logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) { o.logger = logger }
}
