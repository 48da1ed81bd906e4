package bigint

import "strings"

// Parse reads an integer from a string: optional leading blanks, one
// optional sign, then digits. A 0x or 0X prefix selects hex; passing
// allowOctal interprets a remaining leading zero as octal, matching
// the legacy text format. Parsing is lenient: an empty digit run
// yields zero.
func Parse(s string, allowOctal ...bool) Int {
	octal := len(allowOctal) > 0 && allowOctal[0]
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var v Int
	rest := s[i:]
	switch {
	case strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X"):
		v = parseDigits(rest[2:], 16)
	case octal && strings.HasPrefix(rest, "0"):
		v = parseDigits(rest, 8)
	default:
		v = parseDigits(rest, 10)
	}
	if neg {
		return v.Neg()
	}
	return v
}

// parseDigits consumes the longest prefix of digits valid for the base
// and accumulates them most significant first.
func parseDigits(s string, base int) Int {
	var v Int
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i], base)
		if d < 0 {
			break
		}
		switch base {
		case 16:
			v = v.Lsh(4)
		case 8:
			v = v.Lsh(3)
		default:
			v = v.MulDigit(10)
		}
		v = v.Add(FromInt64(int64(d)))
	}
	return v
}

// digitValue returns the value of c in the given base, or -1 if c is
// not a valid digit for it.
func digitValue(c byte, base int) int {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return -1
	}
	if d >= base {
		return -1
	}
	return d
}
