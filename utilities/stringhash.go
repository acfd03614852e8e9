package utilities

import "math"

const (
	offsetBasis uint = 14695981039346656037
	prime       uint = 1099511628211
)

// CompactMask returns the mask applied to delete hashes for a compact level in 0..16.
// Higher levels keep fewer hash bits, trading lookup speed for memory.
func CompactMask(compactLevel int) uint {
	return (math.MaxUint >> (3 + compactLevel)) << 2
}

// GetStringHash hashes a delete signature. The two low bits carry min(len, 3) in runes,
// so strings of different short lengths never share a bucket.
func GetStringHash(s string, compactMask uint) int {
	lenMask := 0
	var hash uint = offsetBasis

	for _, c := range s {
		hash ^= uint(c)
		hash *= prime
		if lenMask < 3 {
			lenMask++
		}
	}

	hash &= compactMask
	hash |= uint(lenMask)
	return int(hash)
}
