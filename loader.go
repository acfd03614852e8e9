package symspell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/morezian/go-symspell/staging"
	"github.com/morezian/go-symspell/utilities"
)

// DefaultSeparator splits dictionary lines on runs of whitespace.
const DefaultSeparator = " "

const stageCapacity = 16384

// splitFields splits a dictionary line. A blank or single space separator splits on runs of whitespace.
func splitFields(line, separator string) []string {
	if separator == "" || separator == DefaultSeparator {
		return strings.Fields(line)
	}
	return strings.Split(line, separator)
}

func openCorpus(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	return f, nil
}

// LoadDictionary loads term/count pairs from a file, one per line, fields picked by zero based index.
// Malformed lines are skipped. It reports false only if the file can't be read.
func (s *SymSpell) LoadDictionary(path string, termIndex, countIndex int, separator string) bool {
	f, err := openCorpus(path)
	if err != nil {
		s.logger.Error("Failed to open dictionary", "path", path, "err", err)
		return false
	}
	defer f.Close()
	return s.LoadDictionaryFrom(f, termIndex, countIndex, separator)
}

// LoadDictionaryFrom is LoadDictionary reading from r.
func (s *SymSpell) LoadDictionaryFrom(r io.Reader, termIndex, countIndex int, separator string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stage := staging.NewStage(stageCapacity)
	lines, skipped := 0, 0
	err := scanLines(r, func(line string) {
		lines++
		fields := splitFields(line, separator)
		if len(fields) <= max(termIndex, countIndex) {
			skipped++
			s.logger.Debug("Skipping dictionary line", "line", lines, "reason", "missing fields")
			return
		}
		count, err := strconv.ParseInt(fields[countIndex], 10, 64)
		if err != nil {
			skipped++
			s.logger.Debug("Skipping dictionary line", "line", lines, "err", err)
			return
		}
		s.createEntry(fields[termIndex], count, stage)
	})
	stage.CommitTo(s.index)
	if err != nil {
		s.logger.Error("Failed to read dictionary", "err", err)
		return false
	}
	s.logger.Info("Loaded dictionary", "lines", lines, "skipped", skipped, "words", s.words.Len(), "entries", s.index.Len())
	return true
}

// LoadBigramDictionary loads bigram counts from a file. With the default separator a line holds
// the two words at termIndex and termIndex+1, otherwise the whole bigram sits at termIndex.
func (s *SymSpell) LoadBigramDictionary(path string, termIndex, countIndex int, separator string) bool {
	f, err := openCorpus(path)
	if err != nil {
		s.logger.Error("Failed to open bigram dictionary", "path", path, "err", err)
		return false
	}
	defer f.Close()
	return s.LoadBigramDictionaryFrom(f, termIndex, countIndex, separator)
}

// LoadBigramDictionaryFrom is LoadBigramDictionary reading from r.
func (s *SymSpell) LoadBigramDictionaryFrom(r io.Reader, termIndex, countIndex int, separator string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	whitespace := separator == "" || separator == DefaultSeparator
	minFields := 2
	if whitespace {
		minFields = 3
	}
	lines, skipped := 0, 0
	err := scanLines(r, func(line string) {
		lines++
		fields := splitFields(line, separator)
		last := max(termIndex, countIndex)
		if whitespace {
			last = max(termIndex+1, countIndex)
		}
		if len(fields) < minFields || len(fields) <= last {
			skipped++
			s.logger.Debug("Skipping bigram line", "line", lines, "reason", "missing fields")
			return
		}
		key := fields[termIndex]
		if whitespace {
			key = fields[termIndex] + " " + fields[termIndex+1]
		}
		count, err := strconv.ParseInt(fields[countIndex], 10, 64)
		if err != nil || count < 0 {
			skipped++
			s.logger.Debug("Skipping bigram line", "line", lines, "count", fields[countIndex])
			return
		}
		s.bigrams[key] = utilities.SaturatingAdd(s.bigrams[key], count)
		s.bigramCountMin = min(s.bigramCountMin, count)
	})
	if err != nil {
		s.logger.Error("Failed to read bigram dictionary", "err", err)
		return false
	}
	s.logger.Info("Loaded bigram dictionary", "lines", lines, "skipped", skipped, "bigrams", len(s.bigrams))
	return true
}

// CreateDictionary builds the dictionary from a free text corpus, counting every word once per occurrence.
func (s *SymSpell) CreateDictionary(path string) bool {
	f, err := openCorpus(path)
	if err != nil {
		s.logger.Error("Failed to open corpus", "path", path, "err", err)
		return false
	}
	defer f.Close()
	return s.CreateDictionaryFrom(f)
}

// CreateDictionaryFrom is CreateDictionary reading from r.
func (s *SymSpell) CreateDictionaryFrom(r io.Reader) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stage := staging.NewStage(stageCapacity)
	tokens := 0
	err := scanLines(r, func(line string) {
		for _, key := range utilities.ParseWords(line) {
			tokens++
			s.createEntry(key, 1, stage)
		}
	})
	stage.CommitTo(s.index)
	if err != nil {
		s.logger.Error("Failed to read corpus", "err", err)
		return false
	}
	s.logger.Info("Created dictionary", "tokens", tokens, "words", s.words.Len(), "below_threshold", len(s.belowThresholdWords))
	return true
}

func scanLines(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fn(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	return nil
}
