// Package dictionary holds the unique terms known to a SymSpell engine together with
// their frequency counts.
//
// Terms live in a single arena and are referred to by a stable uint32 id everywhere
// else, so the delete index stores small integers instead of copies of each term.
package dictionary

import (
	"unicode/utf8"

	"github.com/morezian/go-symspell/utilities"
)

// Entry is a term and its frequency count.
type Entry struct {
	Term  string
	Count int64
}

// Store is an arena of entries with a term→id map. It is not safe for concurrent use.
type Store struct {
	entries []Entry
	live    []bool
	ids     map[string]uint32
	free    []uint32

	maxLength int
}

// NewStore returns an empty store sized for initialCapacity terms.
func NewStore(initialCapacity int) *Store {
	return &Store{
		entries: make([]Entry, 0, initialCapacity),
		live:    make([]bool, 0, initialCapacity),
		ids:     make(map[string]uint32, initialCapacity),
	}
}

// Len returns the number of live terms.
func (s *Store) Len() int {
	return len(s.ids)
}

// MaxLength returns the length in runes of the longest live term.
func (s *Store) MaxLength() int {
	return s.maxLength
}

// ID returns the id of term, if present.
func (s *Store) ID(term string) (uint32, bool) {
	id, ok := s.ids[term]
	return id, ok
}

// Get returns the count of term, if present.
func (s *Store) Get(term string) (int64, bool) {
	id, ok := s.ids[term]
	if !ok {
		return 0, false
	}
	return s.entries[id].Count, true
}

// Term returns the term stored under id.
func (s *Store) Term(id uint32) string {
	return s.entries[id].Term
}

// Count returns the count stored under id.
func (s *Store) Count(id uint32) int64 {
	return s.entries[id].Count
}

// Insert adds count to term, creating the entry when it does not exist yet.
// Counts saturate at math.MaxInt64. created reports whether a new entry was made.
func (s *Store) Insert(term string, count int64) (id uint32, created bool) {
	if id, ok := s.ids[term]; ok {
		s.entries[id].Count = utilities.SaturatingAdd(s.entries[id].Count, count)
		return id, false
	}

	entry := Entry{Term: term, Count: count}
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
		s.entries[id] = entry
		s.live[id] = true
	} else {
		id = uint32(len(s.entries))
		s.entries = append(s.entries, entry)
		s.live = append(s.live, true)
	}
	s.ids[term] = id

	if l := utf8.RuneCountInString(term); l > s.maxLength {
		s.maxLength = l
	}
	return id, true
}

// Delete removes term and returns the id it was stored under. The id is recycled by
// later inserts. The maximum term length is recomputed over the remaining terms.
func (s *Store) Delete(term string) (uint32, bool) {
	id, ok := s.ids[term]
	if !ok {
		return 0, false
	}
	delete(s.ids, term)
	s.entries[id] = Entry{}
	s.live[id] = false
	s.free = append(s.free, id)

	if utf8.RuneCountInString(term) >= s.maxLength {
		s.maxLength = 0
		for t := range s.ids {
			if l := utf8.RuneCountInString(t); l > s.maxLength {
				s.maxLength = l
			}
		}
	}
	return id, true
}

// Entries returns a copy of the live entries in id order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.ids))
	for id, entry := range s.entries {
		if s.live[id] {
			out = append(out, entry)
		}
	}
	return out
}
