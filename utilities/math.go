package utilities

import "math"

// Abs returns the absolute value of x
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of a and b
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// SaturatingAdd adds two non-negative counts, clamping at math.MaxInt64 instead of wrapping.
func SaturatingAdd(a, b int64) int64 {
	if math.MaxInt64-a > b {
		return a + b
	}
	return math.MaxInt64
}
