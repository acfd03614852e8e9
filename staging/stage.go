// Package staging buffers delete signature registrations during bulk loads.
//
// Appending to the permanent index one id at a time grows every bucket slice many times.
// A Stage chains the ids of each bucket through a single node arena instead, and
// CommitTo copies every chain into the index with one allocation per bucket.
package staging

import "github.com/morezian/go-symspell/deletes"

type node struct {
	id   uint32
	next int
}

type entry struct {
	count int
	first int
}

// Stage holds staged (hash, id) pairs. The zero value is not usable, use NewStage.
type Stage struct {
	deletes map[int]entry
	nodes   []node
}

// NewStage returns a stage sized for initialCapacity distinct hashes.
func NewStage(initialCapacity int) *Stage {
	return &Stage{
		deletes: make(map[int]entry, initialCapacity),
		nodes:   make([]node, 0, initialCapacity*2),
	}
}

// DeleteCount returns the number of distinct hashes staged.
func (s *Stage) DeleteCount() int {
	return len(s.deletes)
}

// NodeCount returns the number of staged pairs.
func (s *Stage) NodeCount() int {
	return len(s.nodes)
}

// Clear empties the stage.
func (s *Stage) Clear() {
	clear(s.deletes)
	s.nodes = s.nodes[:0]
}

// Add stages id under deleteHash.
func (s *Stage) Add(deleteHash int, id uint32) {
	e, ok := s.deletes[deleteHash]
	if !ok {
		e = entry{first: -1}
	}
	next := e.first
	e.count++
	e.first = len(s.nodes)
	s.deletes[deleteHash] = e
	s.nodes = append(s.nodes, node{id: id, next: next})
}

// CommitTo appends every staged pair to index. Ids keep the order they were staged in.
func (s *Stage) CommitTo(index *deletes.Index) {
	for hash, e := range s.deletes {
		ids := make([]uint32, e.count)
		i := e.count - 1
		for next := e.first; next >= 0; next = s.nodes[next].next {
			ids[i] = s.nodes[next].id
			i--
		}
		index.AddAll(hash, ids)
	}
}
