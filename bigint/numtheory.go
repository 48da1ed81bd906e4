package bigint

import "github.com/pkg/errors"

// GCD returns the greatest common divisor of |a| and |b| via the
// Euclidean algorithm. If either argument is zero the result is zero.
func GCD(a, b Int) Int {
	if a.IsZero() || b.IsZero() {
		return Int{}
	}
	a, b = a.Abs(), b.Abs()
	for {
		c, _ := a.Mod(b)
		if c.IsZero() {
			return b
		}
		a, b = b, c
	}
}

// Log2 returns the position of the most significant set bit of x.
// It fails with a domain error for x <= 0.
func (x Int) Log2() (int, error) {
	if x.Sign() <= 0 {
		return 0, errors.WithMessage(ErrDomain, "log2 of a value <= 0")
	}
	return magLog2(x.mag), nil
}

// Pow returns base**exp by binary exponentiation. The exponent must
// not be negative.
func Pow(base, exp Int) (Int, error) {
	if exp.Sign() < 0 {
		return Int{}, errors.WithMessage(ErrDomain, "pow with exponent < 0")
	}
	result := intOne
	for e := exp; !e.IsZero(); {
		if e.odd() {
			result = result.Mul(base)
		}
		e = e.Rsh(1)
		if !e.IsZero() {
			base = base.Mul(base)
		}
	}
	return result, nil
}

// ModPow returns base**exp mod m, reducing after every multiplication.
// The exponent must not be negative; if |m| <= 1 the result is zero.
// A negative base yields the same signed residues the plain Mod
// operation would.
func ModPow(base, exp, m Int) (Int, error) {
	if exp.Sign() < 0 {
		return Int{}, errors.WithMessage(ErrDomain, "modPow with exponent < 0")
	}
	if m.Abs().Cmp(intOne) <= 0 {
		return Int{}, nil
	}
	base, _ = base.Mod(m)
	result := intOne
	for e := exp; !e.IsZero(); {
		if e.odd() {
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

// ModInverse returns the multiplicative inverse of x modulo m via the
// extended Euclidean algorithm, normalized to [0, m). It fails with a
// domain error when gcd(x, m) != 1.
func (x Int) ModInverse(m Int) (Int, error) {
	t, newT := Int{}, intOne
	r, newR := m, x
	for !newR.IsZero() {
		q, _ := r.Div(newR)
		t, newT = newT, t.Sub(q.Mul(newT))
		r, newR = newR, r.Sub(q.Mul(newR))
	}
	if r.Cmp(intOne) > 0 {
		return Int{}, errors.WithMessage(ErrDomain, "no modular inverse")
	}
	if t.Sign() < 0 {
		t = t.Add(m)
	}
	return t, nil
}

// Isqrt returns floor(sqrt(v)) for v >= 0, computed with a Newton
// iteration over a scaled copy of v followed by a final correction to
// the exact floor. Negative input fails with a domain error.
func Isqrt(v Int) (Int, error) {
	if v.Sign() < 0 {
		return Int{}, errors.WithMessage(ErrDomain, "isqrt of a negative value")
	}
	if v.IsZero() {
		return Int{}, nil
	}
	orig := v
	lg, _ := v.Log2()
	scale := uint(lg - lg%2)
	vScale := scale + 8
	v = v.Lsh(8)
	x := intOne.Lsh(vScale)
	for {
		last := x
		q, _ := v.Lsh(vScale).Div(x)
		x = x.Add(q).Rsh(1)
		if last.Sub(x).Abs().Cmp(intTwo) <= 0 {
			break
		}
	}
	x = x.Rsh(vScale - scale/2)
	for x.Mul(x).Cmp(orig) > 0 {
		x = x.Sub(intOne)
	}
	for next := x.Add(intOne); next.Mul(next).Cmp(orig) <= 0; next = x.Add(intOne) {
		x = next
	}
	return x, nil
}
