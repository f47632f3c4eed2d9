package clock

import "time"

// Ticks are raw monotonic readings in nanoseconds, used for cheap interval
// measurements where no calendar correlation is needed.

// GetTicks returns the current monotonic reading in nanoseconds. The epoch
// is arbitrary; only differences between readings are meaningful.
func GetTicks() int64 {
	mono, err := readMonotonic()
	if err != nil {
		return 0
	}
	return mono.Nanoseconds()
}

// SecsToTicks converts seconds to ticks.
func SecsToTicks(secs float64) int64 {
	return int64(secs * float64(nanosPerSecond))
}

// TicksToSecs converts ticks to seconds.
func TicksToSecs(ticks int64) float64 {
	return float64(ticks) / float64(nanosPerSecond)
}

// Microtime returns the wall clock as microseconds since the unix epoch.
// Unlike Now, this reads the wall clock directly and is affected by clock
// steps; it exists for callers that want a compact absolute value rather
// than a correlated one.
func Microtime() uint64 {
	t := time.Now()
	return uint64(t.Unix())*1_000_000 + uint64(t.Nanosecond()/1000)
}

// GCD returns the greatest common divisor of two non-negative integers,
// used to reduce tick-rate ratios.
func GCD(x, y int) int {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}
