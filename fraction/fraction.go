// Package fraction implements exact rational arithmetic over bigint.
// A Frac is always held in reduced canonical form: the denominator is
// strictly positive, numerator and denominator are coprime, the sign
// lives on the numerator, and zero is uniquely 0/1.
package fraction

import (
	"strings"

	"github.com/pkg/errors"

	"bignum/bigint"
)

// Frac is an exact rational number. The zero value represents zero.
type Frac struct {
	n, d bigint.Int
}

var (
	one  = bigint.FromInt64(1)
	half = Frac{bigint.FromInt64(1), bigint.FromInt64(2)}
)

// New returns n/d in reduced form. A zero denominator fails with the
// division-by-zero error.
func New(n, d bigint.Int) (Frac, error) {
	if d.IsZero() {
		return Frac{}, errors.WithMessage(bigint.ErrOverflow, "zero denominator")
	}
	return reduced(n, d), nil
}

// FromInt returns v/1.
func FromInt(v bigint.Int) Frac {
	return Frac{v, one}
}

// FromInt64 returns v/1.
func FromInt64(v int64) Frac {
	return Frac{bigint.FromInt64(v), one}
}

// Parse reads "N" or "N/D", each part an integer in any base Parse
// accepts. A zero denominator is a parse error; a negative one is
// normalized away.
func Parse(s string) (Frac, error) {
	idx := strings.IndexByte(s, '/')
	if idx < 0 {
		return Frac{bigint.Parse(s), one}, nil
	}
	n := bigint.Parse(s[:idx])
	d := bigint.Parse(s[idx+1:])
	if d.IsZero() {
		return Frac{}, errors.WithMessage(bigint.ErrParse, "zero denominator")
	}
	return reduced(n, d), nil
}

// reduced establishes the canonical form for a nonzero denominator.
func reduced(n, d bigint.Int) Frac {
	if n.IsZero() {
		return Frac{bigint.Int{}, one}
	}
	g := bigint.GCD(n, d)
	if g.Cmp(one) > 0 {
		n, _ = n.Div(g)
		d, _ = d.Div(g)
	}
	if d.Sign() < 0 {
		n, d = n.Neg(), d.Neg()
	}
	return Frac{n, d}
}

// den returns the denominator, treating the zero value as 0/1.
func (f Frac) den() bigint.Int {
	if f.d.IsZero() {
		return one
	}
	return f.d
}

// Num returns the numerator, which carries the sign.
func (f Frac) Num() bigint.Int { return f.n }

// Den returns the denominator, always strictly positive.
func (f Frac) Den() bigint.Int { return f.den() }

// IsZero reports whether f is zero.
func (f Frac) IsZero() bool { return f.n.IsZero() }

// Sign returns -1, 0, or +1.
func (f Frac) Sign() int { return f.n.Sign() }

// Neg returns -f.
func (f Frac) Neg() Frac { return Frac{f.n.Neg(), f.den()} }

// Abs returns |f|.
func (f Frac) Abs() Frac { return Frac{f.n.Abs(), f.den()} }

// Add returns f + g.
func (f Frac) Add(g Frac) Frac {
	return reduced(f.n.Mul(g.den()).Add(g.n.Mul(f.den())), f.den().Mul(g.den()))
}

// Sub returns f - g.
func (f Frac) Sub(g Frac) Frac {
	return reduced(f.n.Mul(g.den()).Sub(g.n.Mul(f.den())), f.den().Mul(g.den()))
}

// Mul returns f * g.
func (f Frac) Mul(g Frac) Frac {
	return reduced(f.n.Mul(g.n), f.den().Mul(g.den()))
}

// Div returns f / g; a zero divisor fails with the division-by-zero
// error.
func (f Frac) Div(g Frac) (Frac, error) {
	if g.n.IsZero() {
		return Frac{}, errors.WithMessage(bigint.ErrOverflow, "divide by zero")
	}
	return reduced(f.n.Mul(g.den()), f.den().Mul(g.n)), nil
}

// Mod returns the remainder of f / g over the common denominator, with
// the sign behavior of integer remainders.
func (f Frac) Mod(g Frac) (Frac, error) {
	if g.n.IsZero() {
		return Frac{}, errors.WithMessage(bigint.ErrOverflow, "divide by zero")
	}
	num := f.n.Mul(g.den())
	div := g.n.Mul(f.den())
	r, _ := num.Mod(div)
	return reduced(r, f.den().Mul(g.den())), nil
}

// Cmp compares f and g by cross products.
func (f Frac) Cmp(g Frac) int {
	return f.n.Mul(g.den()).Cmp(g.n.Mul(f.den()))
}

// Equal reports whether f and g represent the same value. Canonical
// form makes a component-wise comparison sufficient.
func (f Frac) Equal(g Frac) bool {
	return f.n.Equal(g.n) && f.den().Equal(g.den())
}

// String renders "N" when the denominator is one, "N/D" otherwise.
func (f Frac) String() string {
	d := f.den()
	if d.Equal(one) {
		return f.n.String()
	}
	return f.n.String() + "/" + d.String()
}
