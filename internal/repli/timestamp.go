// Package repli defines the opaque comparable timestamp carried on
// replicated values. Timestamps come from a wrapping 32-bit counter, so
// ordering is decided by signed difference rather than plain comparison.
package repli

import "math"

// Timestamp is an opaque monotonic counter value. Two values are reserved:
// Invalid marks a missing timestamp and DistantPast sorts before every
// live value.
type Timestamp uint32

const (
	// Invalid marks a timestamp that was never assigned.
	Invalid Timestamp = math.MaxUint32
	// DistantPast is older than any live timestamp.
	DistantPast Timestamp = 0
)

// Newer returns the more recent of two timestamps. The signed-difference
// comparison stays correct when the counter wraps around, as long as the
// two values are within half the counter range of each other.
func Newer(x, y Timestamp) Timestamp {
	if int32(uint32(x)-uint32(y)) < 0 {
		return y
	}
	return x
}
