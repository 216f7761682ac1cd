package safe

import (
	"math"
)

// Uint64ToInt64 safely converts an uint64 value to int64, clamping to math.MaxInt64 if overflow
// would occur.
// Returns the converted value and a boolean indicating whether clamping occurred.
func Uint64ToInt64(val uint64) (int64, bool) {
	if val > math.MaxInt64 {
		return math.MaxInt64, true
	}
	return int64(val), false
}

// Span returns the exclusive end of a range of n bytes starting at offset.
// The boolean is true when the end is not representable as an int64 file
// position.
func Span(offset uint64, n int) (int64, bool) {
	start, clamped := Uint64ToInt64(offset)
	if clamped || n < 0 {
		return math.MaxInt64, true
	}
	if int64(n) > math.MaxInt64-start {
		return math.MaxInt64, true
	}
	return start + int64(n), false
}
