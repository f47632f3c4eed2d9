// Package strictnum parses integer prefixes of strings with strict failure
// semantics: malformed input and overflow are both reported uniformly as
// zero characters consumed, never as a sentinel value, so callers detect
// failure without a separate error channel.
package strictnum

import "math"

// ParseUint parses an unsigned integer prefix of s in the given base
// (2..36, or 0 to auto-detect a 0x/0 prefix). It returns the value and the
// number of bytes consumed, including any leading whitespace and sign.
// Consumed is 0 when no digits are present, when the value overflows
// uint64, or when the input begins with a minus sign after optional
// whitespace.
func ParseUint(s string, base int) (uint64, int) {
	i := skipSpace(s, 0)
	if i < len(s) && s[i] == '-' {
		return 0, 0
	}
	if i < len(s) && s[i] == '+' {
		i++
	}
	i, base = consumePrefix(s, i, base)

	val, end, ok := parseDigits(s, i, base, math.MaxUint64)
	if !ok {
		return 0, 0
	}
	return val, end
}

// ParseInt parses a signed integer prefix of s in the given base (2..36,
// or 0 to auto-detect). It returns the value and the number of bytes
// consumed, with the same zero-consumed convention as ParseUint for
// malformed input and int64 overflow.
func ParseInt(s string, base int) (int64, int) {
	i := skipSpace(s, 0)
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	i, base = consumePrefix(s, i, base)

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	val, end, ok := parseDigits(s, i, base, limit)
	if !ok {
		return 0, 0
	}
	if neg {
		return -int64(val), end
	}
	return int64(val), end
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

// consumePrefix resolves base 0 auto-detection and skips a 0x prefix when
// the base allows one and a hex digit follows it.
func consumePrefix(s string, i, base int) (int, int) {
	hexPrefix := i+2 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') &&
		digitVal(s[i+2], 16) >= 0

	switch base {
	case 0:
		switch {
		case hexPrefix:
			return i + 2, 16
		case i < len(s) && s[i] == '0':
			return i, 8
		default:
			return i, 10
		}
	case 16:
		if hexPrefix {
			return i + 2, 16
		}
	}
	return i, base
}

// parseDigits accumulates digits of the given base starting at i, bounded
// by limit. ok is false when no digits were consumed or the value passed
// the limit.
func parseDigits(s string, i, base int, limit uint64) (uint64, int, bool) {
	var val uint64
	start := i
	for i < len(s) {
		v := digitVal(s[i], base)
		if v < 0 {
			break
		}
		if val > (limit-uint64(v))/uint64(base) {
			return 0, 0, false
		}
		val = val*uint64(base) + uint64(v)
		i++
	}
	if i == start {
		return 0, 0, false
	}
	return val, i, true
}

// digitVal returns the value of c as a digit in the given base, or -1.
func digitVal(c byte, base int) int {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return -1
	}
	if v >= base {
		return -1
	}
	return v
}
