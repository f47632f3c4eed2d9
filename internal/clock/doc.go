// Package clock correlates the monotonic clock with the wall clock and
// formats absolute timestamps with microsecond precision.
//
// The monotonic clock has no defined epoch, so it cannot be turned into a
// calendar date directly. A Correlator captures both clocks once, close
// together, and afterwards only ever adds monotonic deltas to that origin.
// Timestamps produced this way are unaffected by wall-clock steps (NTP
// adjustments, manual clock sets) that happen after the origin is captured,
// while uptime measurements keep monotonic ordering.
//
// The two origin reads are separated by whatever scheduling jitter exists
// between the two system calls, so absolute timestamps are approximate to
// that bound.
//
// The package-level functions operate on a process-wide Correlator that must
// be installed by Initialize (or SetOrigin, when a cooperating process hands
// an origin over) before any other goroutine calls Now or Uptime. That
// startup ordering is a precondition, not enforced by a lock, which keeps
// the read path free of synchronization.
package clock
