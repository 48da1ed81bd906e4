package fraction

import (
	"strings"

	"github.com/pkg/errors"

	"bignum/bigint"
)

// Pow returns base**exp. A negative exponent yields the reciprocal of
// the positive power, which fails with the division-by-zero error when
// base is zero. Exponentiation runs on numerator and denominator
// independently.
func Pow(base Frac, exp bigint.Int) (Frac, error) {
	if exp.Sign() < 0 {
		p, err := Pow(base, exp.Neg())
		if err != nil {
			return Frac{}, err
		}
		return FromInt64(1).Div(p)
	}
	n, _ := bigint.Pow(base.n, exp)
	d, _ := bigint.Pow(base.den(), exp)
	return reduced(n, d), nil
}

// ModPow returns base**exp reduced by m after every multiplication.
// The exponent must not be negative; a zero modulus yields zero.
func ModPow(base Frac, exp bigint.Int, m Frac) (Frac, error) {
	if exp.Sign() < 0 {
		return Frac{}, errors.WithMessage(bigint.ErrDomain, "modPow with exponent < 0")
	}
	if m.IsZero() {
		return Frac{}, nil
	}
	base, _ = base.Mod(m)
	result := FromInt64(1)
	for e := exp; !e.IsZero(); {
		if r, _ := e.Mod(bigint.FromInt64(2)); !r.IsZero() {
			result = result.Mul(base)
			result, _ = result.Mod(m)
		}
		e = e.Rsh(1)
		if !e.IsZero() {
			base = base.Mul(base)
			base, _ = base.Mod(m)
		}
	}
	return result, nil
}

// Floor returns the largest integer not greater than f.
func Floor(f Frac) bigint.Int {
	if f.Sign() < 0 {
		return Ceil(f.Neg()).Neg()
	}
	q, _ := f.n.Div(f.den())
	return q
}

// Ceil returns the smallest integer not less than f.
func Ceil(f Frac) bigint.Int {
	if f.Sign() < 0 {
		return Floor(f.Neg()).Neg()
	}
	d := f.den()
	q, _ := f.n.Add(d).Sub(one).Div(d)
	return q
}

// SetDenominator rounds f to the nearest multiple of 1/denominator,
// halves upward, via floor(f*denominator + 1/2). The denominator must
// be strictly positive.
func SetDenominator(f Frac, denominator bigint.Int) (Frac, error) {
	if denominator.Sign() <= 0 {
		return Frac{}, errors.WithMessage(bigint.ErrDomain, "setDenominator with denominator <= 0")
	}
	adjusted := f.Mul(FromInt(denominator)).Add(half)
	return reduced(Floor(adjusted), denominator), nil
}

// Decimal renders f with exactly fractionalDigits digits after the
// point, rounding half up. With zero digits requested the point is
// omitted.
func (f Frac) Decimal(fractionalDigits int) string {
	if fractionalDigits < 0 {
		fractionalDigits = 0
	}
	pow10, _ := bigint.Pow(bigint.FromInt64(10), bigint.FromInt64(int64(fractionalDigits)))
	rounded, _ := SetDenominator(f, pow10)
	negative := rounded.Sign() < 0
	rounded = rounded.Abs()
	intPart := Floor(rounded)

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.WriteString(intPart.String())
	if fractionalDigits == 0 {
		return sb.String()
	}
	frac := rounded.Sub(FromInt(intPart)).Mul(FromInt(pow10))
	digits := Floor(frac).String()
	sb.WriteByte('.')
	for i := len(digits); i < fractionalDigits; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(digits)
	return sb.String()
}

// Sqrt approximates the square root of f as a multiple of
// 1/denominator: isqrt(floor(f*denominator^2 + 1/2)) over denominator.
// It fails with a domain error for a non-positive denominator or a
// negative f.
func Sqrt(f Frac, denominator bigint.Int) (Frac, error) {
	if denominator.Sign() <= 0 {
		return Frac{}, errors.WithMessage(bigint.ErrDomain, "sqrt with denominator <= 0")
	}
	if f.Sign() < 0 {
		return Frac{}, errors.WithMessage(bigint.ErrDomain, "sqrt of a negative value")
	}
	adjusted := f.Mul(FromInt(denominator.Mul(denominator))).Add(half)
	root, err := bigint.Isqrt(Floor(adjusted))
	if err != nil {
		return Frac{}, err
	}
	return reduced(root, denominator), nil
}
