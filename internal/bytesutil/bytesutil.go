// Package bytesutil holds small byte-range helpers: a three-way sized
// comparison and a hex dump for debugging buffer contents.
package bytesutil

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Compare three-way compares two byte ranges: first the common-length
// prefix, then by length difference. The result is negative, zero or
// positive like a standard string compare.
func Compare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if res := bytes.Compare(a[:n], b[:n]); res != 0 {
		return res
	}
	return len(a) - len(b)
}

// Rows of these fill bytes usually mean unwritten or poisoned memory; the
// dump collapses runs of them into a single marker line.
var skipSamples = [][]byte{
	bytes.Repeat([]byte{0xBD}, 16),
	bytes.Repeat([]byte{0x00}, 16),
	bytes.Repeat([]byte{0xFF}, 16),
}

var dumpMu sync.Mutex

// HexDump writes buf to w in 16-byte rows: an 8-digit hex offset, the
// bytes in hex, and a printable-character gutter. Runs of rows consisting
// entirely of 0x00, 0xFF or 0xBD collapse to a single "*" line. The whole
// dump is serialized so concurrent dumps do not interleave.
func HexDump(w io.Writer, buf []byte, offset uint) {
	dumpMu.Lock()
	defer dumpMu.Unlock()

	skippedLast := false
	for len(buf) > 0 {
		row := buf
		if len(row) > 16 {
			row = row[:16]
		}

		if skippableRow(row) {
			if !skippedLast {
				fmt.Fprintf(w, "*\n")
			}
			skippedLast = true
		} else {
			skippedLast = false
			fmt.Fprintf(w, "%.8x  ", offset)
			for i := 0; i < 16; i++ {
				if i < len(row) {
					fmt.Fprintf(w, "%.2x ", row[i])
				} else {
					fmt.Fprintf(w, "   ")
				}
			}
			fmt.Fprintf(w, "| ")
			for i := 0; i < 16; i++ {
				switch {
				case i >= len(row):
					fmt.Fprintf(w, " ")
				case row[i] >= 0x20 && row[i] < 0x7f:
					fmt.Fprintf(w, "%c", row[i])
				default:
					fmt.Fprintf(w, ".")
				}
			}
			fmt.Fprintf(w, "\n")
		}

		offset += 16
		buf = buf[len(row):]
	}
}

func skippableRow(row []byte) bool {
	if len(row) != 16 {
		return false
	}
	for _, sample := range skipSamples {
		if bytes.Equal(row, sample) {
			return true
		}
	}
	return false
}
