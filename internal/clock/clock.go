package clock

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

const nanosPerSecond = 1_000_000_000

// FormattedLength is the exact length of a string produced by Format.
const FormattedLength = 26

// Timespec is a monotonic duration split into whole seconds and a
// nanosecond remainder. Values produced by this package are normalized:
// 0 <= Nsec < 1e9.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Nanoseconds returns the duration as a single nanosecond count.
func (t Timespec) Nanoseconds() int64 {
	return t.Sec*nanosPerSecond + t.Nsec
}

// Timestamp is a decomposed absolute time, always UTC.
type Timestamp struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
	Nsec   int64
}

// Correlator holds the origin pair that maps the monotonic clock onto the
// wall clock: a monotonic reading and the wall-clock seconds captured at
// (roughly) the same instant.
//
// A Correlator is written once, at startup or at a process handoff, and is
// read-only afterwards. Concurrent SetOrigin and Now is a startup-ordering
// violation, not a supported use.
type Correlator struct {
	monoOrigin Timespec
	wallOrigin int64 // unix seconds
}

// NewCorrelator reads the monotonic clock and the wall clock in immediate
// succession and returns a correlator anchored at that instant.
//
// The process cannot produce meaningful timestamps without a monotonic
// clock, so a failed monotonic read at this point is fatal.
func NewCorrelator() *Correlator {
	mono, err := readMonotonic()
	if err != nil {
		log.Fatalf("failed to get initial monotonic clock value: %v", err)
	}
	return &Correlator{
		monoOrigin: mono,
		wallOrigin: time.Now().Unix(),
	}
}

// SetOrigin overrides the origin pair with one captured elsewhere, so that a
// cooperating process or thread reuses an existing correlation instead of
// deriving a fresh, possibly skewed one.
func (c *Correlator) SetOrigin(mono Timespec, wallSec int64) {
	c.monoOrigin = mono
	c.wallOrigin = wallSec
}

// Origin returns the origin pair for handoff to a cooperating process.
func (c *Correlator) Origin() (mono Timespec, wallSec int64) {
	return c.monoOrigin, c.wallOrigin
}

// Uptime returns the elapsed time since the origin was captured.
//
// When the monotonic clock cannot be read it degrades to a wall-clock
// measurement at one-second resolution rather than failing the call;
// total monotonic failure after a successful initialization is an
// abnormal condition and the precision loss is accepted.
func (c *Correlator) Uptime() Timespec {
	now, err := readMonotonic()
	if err != nil {
		return Timespec{Sec: time.Now().Unix() - c.wallOrigin}
	}
	up := Timespec{
		Sec:  now.Sec - c.monoOrigin.Sec,
		Nsec: now.Nsec - c.monoOrigin.Nsec,
	}
	if up.Nsec < 0 {
		up.Nsec += nanosPerSecond
		up.Sec--
	}
	return up
}

// Absolute converts a duration relative to the origin into an absolute
// UTC calendar timestamp.
func (c *Correlator) Absolute(relative Timespec) Timestamp {
	sec := c.wallOrigin + relative.Sec
	nsec := c.monoOrigin.Nsec + relative.Nsec
	if nsec >= nanosPerSecond {
		nsec -= nanosPerSecond
		sec++
	}
	utc := time.Unix(sec, 0).UTC()
	year, month, day := utc.Date()
	hour, minute, second := utc.Clock()
	return Timestamp{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
		Nsec:   nsec,
	}
}

// Now returns the current absolute time derived from the origin pair plus
// the monotonic delta since it was captured.
func (c *Correlator) Now() Timestamp {
	return c.Absolute(c.Uptime())
}

// Format renders a timestamp as YYYY-MM-DDTHH:MM:SS.ffffff: exactly
// FormattedLength characters, with the fraction truncated (not rounded)
// to microseconds.
func Format(ts Timestamp) string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%06d",
		ts.Year, int(ts.Month), ts.Day,
		ts.Hour, ts.Minute, ts.Second, ts.Nsec/1000)
}

// process is the process-wide correlator behind the package-level
// functions. Single writer at startup, unsynchronized readers afterwards.
var process = &Correlator{}

// Initialize captures the origin pair for the process-wide correlator.
// Call it once, early, before any other goroutine calls Now or Uptime.
func Initialize() {
	process = NewCorrelator()
}

// SetOrigin installs an origin pair captured by a cooperating process into
// the process-wide correlator.
func SetOrigin(mono Timespec, wallSec int64) {
	process.SetOrigin(mono, wallSec)
}

// Origin returns the process-wide origin pair for handoff.
func Origin() (mono Timespec, wallSec int64) {
	return process.Origin()
}

// Uptime returns elapsed time since Initialize on the process-wide
// correlator.
func Uptime() Timespec {
	return process.Uptime()
}

// Now returns the current absolute time from the process-wide correlator.
func Now() Timestamp {
	return process.Now()
}

var debugMu sync.Mutex

// Debugf writes a diagnostic line to stderr prefixed with the current
// formatted precise time. The whole write is serialized so that concurrent
// callers do not interleave. The caller supplies the trailing newline.
func Debugf(format string, args ...interface{}) {
	debugMu.Lock()
	defer debugMu.Unlock()
	fmt.Fprintf(os.Stderr, "%s ", Format(Now()))
	fmt.Fprintf(os.Stderr, format, args...)
}
