package backtrace

import (
	"errors"
	"strings"
)

// Frame is one parsed line of the textual backtrace rendering.
type Frame struct {
	// Module is the path of the object the address falls in.
	Module string
	// Function is the symbol name, empty when the loader could not
	// resolve one for this frame.
	Function string
	// Offset is the hex offset into Function, empty when Function is.
	Offset string
	// Address is the hex return address.
	Address string
}

// ErrMalformedLine reports a line that does not match either known layout.
// Callers print the raw line verbatim instead.
var ErrMalformedLine = errors.New("backtrace line does not match expected layout")

// ParseFrameLine parses one line of a textual backtrace. Lines come in one
// of two layouts, depending on whether the loader resolved a symbol:
//
//	module(function+offset) [address]
//	module [address]
//
// The match is strictly structural: unbalanced parentheses, a missing '+',
// a missing space before '[' or a ']' that is not the final character all
// fail the parse. A platform whose backtrace text differs simply gets its
// lines echoed raw, never a crash.
func ParseFrameLine(line string) (Frame, error) {
	var f Frame
	rest := line

	if open := strings.IndexByte(line, '('); open >= 0 {
		closing := strings.IndexByte(line, ')')
		if closing < open {
			return Frame{}, ErrMalformedLine
		}
		f.Module = line[:open]
		inner := line[open+1 : closing]
		plus := strings.IndexByte(inner, '+')
		if plus < 0 {
			return Frame{}, ErrMalformedLine
		}
		f.Function = inner[:plus]
		f.Offset = inner[plus+1:]
		rest = line[closing+1:]
		if !strings.HasPrefix(rest, " ") {
			return Frame{}, ErrMalformedLine
		}
		rest = rest[1:]
	} else {
		bracket := strings.IndexByte(line, '[')
		if bracket < 1 || line[bracket-1] != ' ' {
			return Frame{}, ErrMalformedLine
		}
		f.Module = line[:bracket-1]
		rest = line[bracket:]
	}

	if len(rest) < 2 || rest[0] != '[' || rest[len(rest)-1] != ']' {
		return Frame{}, ErrMalformedLine
	}
	addr := rest[1 : len(rest)-1]
	if strings.IndexByte(addr, ']') >= 0 {
		return Frame{}, ErrMalformedLine
	}
	f.Address = addr

	return f, nil
}
