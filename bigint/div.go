package bigint

import "github.com/pkg/errors"

// DivMod returns the quotient and remainder of x / y. Division
// truncates toward zero: the quotient sign is the XOR of the operand
// signs and a nonzero remainder carries the dividend's sign, so that
// q*y + r == x always holds with |r| < |y|.
//
// Dividing by zero returns an error wrapping ErrOverflow.
func (x Int) DivMod(y Int) (Int, Int, error) {
	if y.IsZero() {
		return Int{}, Int{}, errors.WithMessage(ErrOverflow, "divide by zero")
	}
	switch magCmp(x.mag, y.mag) {
	case -1:
		return Int{}, x, nil
	case 0:
		return makeInt(x.neg != y.neg, []uint32{1}), Int{}, nil
	}
	if len(y.mag) == 1 {
		qm, r := magDivDigit(x.mag, y.mag[0])
		var rem Int
		if r != 0 {
			rem = Int{x.neg, []uint32{r}}
		}
		return makeInt(x.neg != y.neg, qm), rem, nil
	}
	qm, rm := magDivNewton(x.mag, y.mag)
	return makeInt(x.neg != y.neg, qm), makeInt(x.neg, rm), nil
}

// Div returns the truncated quotient x / y.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x / y, with the dividend's sign.
func (x Int) Mod(y Int) (Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// magDivDigit divides a magnitude by a single nonzero digit with one
// long-division pass, most significant digit first.
func magDivDigit(a []uint32, d uint32) ([]uint32, uint32) {
	q := make([]uint32, len(a))
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		v := rem<<32 | uint64(a[i])
		q[i] = uint32(v / uint64(d))
		rem = v % uint64(d)
	}
	return trim(q), uint32(rem)
}

// magDivNewton divides |a| by |b| for a multi-digit divisor with
// |a| > |b|, via a fixed-point Newton iteration for the reciprocal of
// the divisor.
//
// With L the divisor's bit length and S = 32 plus the dividend's bit
// length, the divisor is scaled to the fixed-point value |b|/2^L with
// S fractional bits. Starting from 1.5, x converges to 2^L/|b| under
//
//	x <- x + x*(1 - b*x/2^S)/2^S
//
// and the quotient estimate x*|a| >> (L+S) is corrected by +-1 steps
// until the remainder lands in [0, |b|). Taking S from the dividend
// keeps the estimate within a step or two of the quotient however much
// wider the dividend is than the divisor.
func magDivNewton(am, bm []uint32) ([]uint32, []uint32) {
	a := Int{mag: am}
	b := Int{mag: bm}
	shift := uint(magLog2(bm) + 1)
	scale := 32 + uint(magLog2(am)+1)
	bScaled := b.Lsh(scale - shift)
	x := FromInt64(3).Lsh(scale - 1)
	oneFixed := intOne.Lsh(scale)
	for {
		last := x
		x = x.Add(x.Mul(oneFixed.Sub(bScaled.Mul(x).Rsh(scale))).Rsh(scale))
		if last.Sub(x).Abs().Cmp(intOne) <= 0 {
			break
		}
	}
	q := x.Mul(a).Rsh(shift + scale)
	r := a.Sub(q.Mul(b))
	for r.Sign() < 0 {
		r = r.Add(b)
		q = q.Sub(intOne)
	}
	for r.Cmp(b) >= 0 {
		r = r.Sub(b)
		q = q.Add(intOne)
	}
	return q.mag, r.mag
}

// magLog2 returns the position of the most significant set bit of a
// nonzero magnitude.
func magLog2(m []uint32) int {
	return (len(m)-1)*32 + log2Digit(m[len(m)-1])
}
