package backtrace

import (
	"fmt"
	"os"
	"runtime"
	"sync"
)

// DefaultMaxFrames bounds how deep a capture walks the stack.
const DefaultMaxFrames = 100

// Capture is a snapshot of a call stack: the raw program counters, plus a
// textual rendering of each frame in the native backtrace layout
// module(function+0xoffset) [0xaddress]. Frames are in capture order,
// innermost first; that order is preserved all the way to the report.
type Capture struct {
	PCs   []uintptr
	Lines []string
}

// Unavailable reports whether the capture recorded no frames at all.
func (c *Capture) Unavailable() bool {
	return c == nil || len(c.Lines) == 0
}

var (
	executableOnce sync.Once
	executable     string
)

// executablePath returns the running binary's path, used as the module
// component of rendered frame lines.
func executablePath() string {
	executableOnce.Do(func() {
		path, err := os.Executable()
		if err != nil {
			if len(os.Args) > 0 {
				path = os.Args[0]
			} else {
				path = "?"
			}
		}
		executable = path
	})
	return executable
}

// CaptureStack records up to maxFrames return addresses of the calling
// goroutine's stack, skipping CaptureStack itself, and renders each in the
// native textual layout. Frames whose symbol the runtime cannot resolve get
// the module-and-address layout instead.
func CaptureStack(maxFrames int) *Capture {
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}

	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(2, pcs)
	pcs = pcs[:n]
	if n == 0 {
		return &Capture{}
	}

	c := &Capture{PCs: pcs, Lines: make([]string, 0, n)}
	module := executablePath()

	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if frame.Function == "" {
			c.Lines = append(c.Lines, fmt.Sprintf("%s [0x%x]", module, frame.PC))
		} else {
			c.Lines = append(c.Lines, fmt.Sprintf("%s(%s+0x%x) [0x%x]",
				module, frame.Function, frame.PC-frame.Entry, frame.PC))
		}
		if !more {
			break
		}
	}

	return c
}
