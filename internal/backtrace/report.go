package backtrace

import (
	"fmt"
	"io"
	"sync"

	"enginekit/internal/config"

	"github.com/expr-lang/expr/vm"
)

// Reporter writes stack reports. The zero value reports with defaults: up
// to DefaultMaxFrames frames, the default resolver and no frame filter.
type Reporter struct {
	// MaxFrames bounds the capture depth; 0 means DefaultMaxFrames.
	MaxFrames int
	// ResolverPath is the external symbolizer command; empty means
	// DefaultResolverPath.
	ResolverPath string

	filter *vm.Program
}

// NewReporter builds a reporter from diagnostics configuration, compiling
// the frame filter if one is set. Filter compile errors surface here, at
// configuration time, never during a report.
func NewReporter(cfg *config.Diagnostics) (*Reporter, error) {
	r := &Reporter{
		MaxFrames:    cfg.MaxFrames,
		ResolverPath: cfg.ResolverPath,
	}
	if cfg.FrameFilter != "" {
		prog, err := compileFilter(cfg.FrameFilter)
		if err != nil {
			return nil, fmt.Errorf("failed to compile frame filter: %w", err)
		}
		r.filter = prog
	}
	return r, nil
}

// outputMu serializes whole reports so concurrent callers on different
// goroutines do not interleave frame listings. Unrelated writers of the
// same stream are not covered unless they share this lock.
var outputMu sync.Mutex

// Report captures the calling goroutine's stack and writes one numbered
// line per frame: a 1-based index, the resolved display name, " at ", and
// the resolved location. Frames stay in capture order, innermost first.
func (r *Reporter) Report(w io.Writer, useExternal bool) {
	max := r.MaxFrames
	if max <= 0 {
		max = DefaultMaxFrames
	}
	r.ReportCapture(w, CaptureStack(max), useExternal)
}

// ReportCapture writes a previously captured stack. A capture with no
// frames produces exactly one line saying the backtrace is unavailable;
// there is nothing else to iterate in that case.
func (r *Reporter) ReportCapture(w io.Writer, c *Capture, useExternal bool) {
	outputMu.Lock()
	defer outputMu.Unlock()

	if c.Unavailable() {
		fmt.Fprintf(w, "(too little memory for backtrace)\n")
		return
	}

	for i, raw := range c.Lines {
		frame, err := ParseFrameLine(raw)
		if err != nil {
			fmt.Fprintf(w, "%d: %s\n", i+1, raw)
			continue
		}
		if !r.matchFrame(frame) {
			continue
		}
		name := ResolveName(frame)
		loc := ResolveLocation(r.ResolverPath, frame.Module, frame.Address, useExternal)
		fmt.Fprintf(w, "%d: %s at %s\n", i+1, name.Text, loc.Text)
	}
}

// Report writes a report of the calling goroutine's stack with default
// settings. Diagnostic entry point for fatal-signal and assertion handlers.
func Report(w io.Writer, useExternal bool) {
	c := CaptureStack(DefaultMaxFrames)
	(&Reporter{}).ReportCapture(w, c, useExternal)
}
