package backtrace

import (
	"errors"
	"fmt"

	"github.com/ianlancetaylor/demangle"
)

// ErrDemangleFailed reports a name that is not a validly mangled symbol,
// such as a plain C identifier or a corrupted/truncated name. Callers fall
// back to displaying the raw name plus offset.
var ErrDemangleFailed = errors.New("demangle failed")

// Demangle recovers the human-readable signature from a compiler-mangled
// symbol name.
func Demangle(mangled string) (string, error) {
	name, err := demangle.ToString(mangled)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrDemangleFailed, mangled)
	}
	return name, nil
}

// DisplayName is the outcome of turning a frame's symbol into display text.
// Demangled reports whether the demangler succeeded; otherwise Text carries
// the raw mangled name plus offset, or "?" when the frame had no symbol.
type DisplayName struct {
	Text      string
	Demangled bool
}

// ResolveName produces the display name for a parsed frame.
func ResolveName(f Frame) DisplayName {
	if f.Function == "" {
		return DisplayName{Text: "?"}
	}
	if name, err := Demangle(f.Function); err == nil {
		return DisplayName{Text: name, Demangled: true}
	}
	return DisplayName{Text: f.Function + "+" + f.Offset}
}
