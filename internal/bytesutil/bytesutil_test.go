package bytesutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		sign int
	}{
		{name: "equal", a: "abc", b: "abc", sign: 0},
		{name: "prefix decides", a: "abd", b: "abc", sign: 1},
		{name: "prefix decides negative", a: "abb", b: "abc", sign: -1},
		{name: "shorter is smaller", a: "ab", b: "abc", sign: -1},
		{name: "longer is larger", a: "abcd", b: "abc", sign: 1},
		{name: "both empty", a: "", b: "", sign: 0},
		{name: "empty vs nonempty", a: "", b: "x", sign: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare([]byte(tt.a), []byte(tt.b))
			switch {
			case tt.sign < 0:
				assert.Negative(t, got)
			case tt.sign > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestHexDump_Basic(t *testing.T) {
	var buf bytes.Buffer
	HexDump(&buf, []byte("Hello, world!!!!"), 0)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)

	assert.True(t, strings.HasPrefix(lines[0], "00000000  48 65 6c 6c 6f "),
		"unexpected row: %q", lines[0])
	assert.Contains(t, lines[0], "| Hello, world!!!!")
}

func TestHexDump_NonPrintable(t *testing.T) {
	var buf bytes.Buffer
	HexDump(&buf, []byte{0x01, 0x41}, 0)

	assert.Contains(t, buf.String(), "| .A")
}

func TestHexDump_CollapsesFillRows(t *testing.T) {
	data := make([]byte, 64)
	copy(data[48:], "0123456789abcdef")
	// Rows 0..2 are all zero, row 3 is text.

	var buf bytes.Buffer
	HexDump(&buf, data, 0)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2, "zero rows should collapse to one *: %q", lines)
	assert.Equal(t, "*", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "00000030  30 31 32 "),
		"offset should keep counting across skipped rows: %q", lines[1])
}

func TestHexDump_PoisonAndOnesRows(t *testing.T) {
	data := append(bytes.Repeat([]byte{0xBD}, 16), bytes.Repeat([]byte{0xFF}, 16)...)

	var buf bytes.Buffer
	HexDump(&buf, data, 0)

	// A run of skippable rows of any fill collapses to a single marker.
	assert.Equal(t, "*\n", buf.String())
}

func TestHexDump_ShortTailNotSkipped(t *testing.T) {
	// A final partial row of zeros is not a full fill row and must print.
	data := make([]byte, 20)

	var buf bytes.Buffer
	HexDump(&buf, data, 0x100)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "*", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "00000110  00 00 00 00 "),
		"partial row should be printed: %q", lines[1])
}
