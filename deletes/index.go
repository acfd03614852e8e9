package deletes

import "slices"

// Index maps delete signature hashes to the ids of the terms that produced them.
// Hash collisions are tolerated, every member is verified by edit distance during lookup.
type Index struct {
	buckets map[int][]uint32
}

// NewIndex returns an empty index sized for initialCapacity buckets.
func NewIndex(initialCapacity int) *Index {
	return &Index{buckets: make(map[int][]uint32, initialCapacity)}
}

// Len returns the number of buckets.
func (ix *Index) Len() int {
	return len(ix.buckets)
}

// Get returns the bucket for hash. The slice is owned by the index.
func (ix *Index) Get(hash int) ([]uint32, bool) {
	ids, ok := ix.buckets[hash]
	return ids, ok
}

// Add appends id to the bucket for hash.
func (ix *Index) Add(hash int, id uint32) {
	ix.buckets[hash] = append(ix.buckets[hash], id)
}

// AddAll appends ids to the bucket for hash in one grow.
func (ix *Index) AddAll(hash int, ids []uint32) {
	bucket := ix.buckets[hash]
	if bucket == nil {
		bucket = make([]uint32, 0, len(ids))
	}
	ix.buckets[hash] = append(bucket, ids...)
}

// Remove drops id from the bucket for hash. An emptied bucket is deleted.
func (ix *Index) Remove(hash int, id uint32) bool {
	bucket, ok := ix.buckets[hash]
	if !ok {
		return false
	}
	i := slices.Index(bucket, id)
	if i < 0 {
		return false
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(ix.buckets, hash)
	} else {
		ix.buckets[hash] = bucket
	}
	return true
}
