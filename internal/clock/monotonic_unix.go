//go:build linux || darwin

package clock

import "golang.org/x/sys/unix"

// readMonotonic reads CLOCK_MONOTONIC, matching the clock the kernel uses
// for uptime accounting.
func readMonotonic() (Timespec, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return Timespec{}, err
	}
	return Timespec{Sec: int64(ts.Sec), Nsec: int64(ts.Nsec)}, nil
}
