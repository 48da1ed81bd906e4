package bigint

import (
	"bufio"
	"io"
	"unicode"

	"github.com/pkg/errors"
)

// Scanner reads whitespace-separated integers from a byte stream. Each
// call to Next skips leading whitespace, accepts one optional sign and
// an optional 0x prefix, and consumes the longest run of digits valid
// for the detected base. The byte following the number is left
// unconsumed.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	r *bufio.Reader

	// AllowOctal makes a leading zero select the legacy octal
	// interpretation instead of decimal.
	AllowOctal bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Next returns the next integer in the stream. It returns io.EOF when
// the stream ends before any non-space byte, and an error wrapping
// ErrParse when the next token contains no digits.
func (s *Scanner) Next() (Int, error) {
	var c byte
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return Int{}, err
		}
		if !unicode.IsSpace(rune(b)) {
			c = b
			break
		}
	}

	neg := false
	if c == '+' || c == '-' {
		neg = c == '-'
		b, err := s.r.ReadByte()
		if err != nil {
			return Int{}, errors.WithMessage(ErrParse, "sign with no digits")
		}
		c = b
	}
	if digitValue(c, 10) < 0 {
		_ = s.r.UnreadByte()
		return Int{}, errors.WithMessage(ErrParse, "no digits in input")
	}

	base := 10
	var v Int
	if c == '0' {
		peek, err := s.r.Peek(1)
		switch {
		case err == nil && (peek[0] == 'x' || peek[0] == 'X'):
			after, err := s.r.Peek(2)
			if err != nil || digitValue(after[1], 16) < 0 {
				// A bare "0x" is the number zero followed by the
				// letter, which stays in the stream.
				return Int{}, nil
			}
			_, _ = s.r.ReadByte()
			base = 16
		case s.AllowOctal:
			base = 8
		}
	} else {
		v = FromInt64(int64(c - '0'))
	}

	for {
		peek, err := s.r.Peek(1)
		if err != nil {
			break
		}
		d := digitValue(peek[0], base)
		if d < 0 {
			break
		}
		_, _ = s.r.ReadByte()
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
	if neg {
		return v.Neg(), nil
	}
	return v, nil
}
