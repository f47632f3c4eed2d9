package backtrace

import (
	"bytes"
	"strings"
	"testing"

	"enginekit/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureStack(t *testing.T) {
	c := CaptureStack(DefaultMaxFrames)

	require.False(t, c.Unavailable())
	assert.NotEmpty(t, c.PCs)
	assert.GreaterOrEqual(t, len(c.Lines), len(c.PCs))

	// The innermost frame is this test function.
	frame, err := ParseFrameLine(c.Lines[0])
	require.NoError(t, err)
	assert.Contains(t, frame.Function, "TestCaptureStack")
}

func TestCaptureStack_MaxFramesBound(t *testing.T) {
	c := CaptureStack(2)
	assert.LessOrEqual(t, len(c.PCs), 2)
}

func TestReport_CurrentStack(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, false)

	out := buf.String()
	require.NotEmpty(t, out)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "1: "),
		"first line should carry index 1: %q", lines[0])
	assert.Contains(t, lines[0], " at ")
	assert.Contains(t, out, "TestReport_CurrentStack")
}

func TestReportCapture_Fallbacks(t *testing.T) {
	c := &Capture{
		Lines: []string{
			"/bin/foo(_Z3fooi+0x10) [0x1000]", // demangles
			"/bin/foo(bar+0x20) [0x2000]",     // plain symbol: name+offset
			"/bin/foo [0x3000]",               // no symbol: "?"
			"garbage line without structure",  // unparsable: echoed raw
		},
	}

	var buf bytes.Buffer
	(&Reporter{}).ReportCapture(&buf, c, false)

	want := "1: foo(int) at 0x1000 (/bin/foo)\n" +
		"2: bar+0x20 at 0x2000 (/bin/foo)\n" +
		"3: ? at 0x3000 (/bin/foo)\n" +
		"4: garbage line without structure\n"
	assert.Equal(t, want, buf.String())
}

func TestReportCapture_Unavailable(t *testing.T) {
	var buf bytes.Buffer
	(&Reporter{}).ReportCapture(&buf, &Capture{}, false)
	assert.Equal(t, "(too little memory for backtrace)\n", buf.String())

	buf.Reset()
	(&Reporter{}).ReportCapture(&buf, nil, false)
	assert.Equal(t, "(too little memory for backtrace)\n", buf.String())
}

func TestReportCapture_OrderPreserved(t *testing.T) {
	c := &Capture{
		Lines: []string{
			"/bin/foo(inner+0x1) [0x1]",
			"/bin/foo(middle+0x2) [0x2]",
			"/bin/foo(outer+0x3) [0x3]",
		},
	}

	var buf bytes.Buffer
	(&Reporter{}).ReportCapture(&buf, c, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "inner")
	assert.Contains(t, lines[1], "middle")
	assert.Contains(t, lines[2], "outer")
}

func TestNewReporter_FrameFilter(t *testing.T) {
	cfg := &config.Diagnostics{
		MaxFrames:   100,
		FrameFilter: `module != "/lib/noise.so"`,
	}
	r, err := NewReporter(cfg)
	require.NoError(t, err)

	c := &Capture{
		Lines: []string{
			"/bin/foo(keep+0x1) [0x1]",
			"/lib/noise.so(skip+0x2) [0x2]",
			"/bin/foo(also_keep+0x3) [0x3]",
		},
	}

	var buf bytes.Buffer
	r.ReportCapture(&buf, c, false)

	out := buf.String()
	assert.Contains(t, out, "1: keep+0x1")
	assert.NotContains(t, out, "skip+0x2")
	// Dropped frames keep their stack positions; indices are not renumbered.
	assert.Contains(t, out, "3: also_keep+0x3")
}

func TestNewReporter_BadFilter(t *testing.T) {
	cfg := &config.Diagnostics{FrameFilter: `module +`}
	_, err := NewReporter(cfg)
	assert.Error(t, err)
}

func TestNewReporter_NonBooleanFilter(t *testing.T) {
	cfg := &config.Diagnostics{FrameFilter: `module`}
	_, err := NewReporter(cfg)
	assert.Error(t, err)
}
