package bigint

import "math/bits"

// Add returns x + y. Same-sign operands add magnitudes with carry;
// mixed signs subtract the smaller magnitude from the larger and take
// the larger operand's sign.
func (x Int) Add(y Int) Int {
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	if x.neg == y.neg {
		return Int{x.neg, magAdd(x.mag, y.mag)}
	}
	switch magCmp(x.mag, y.mag) {
	case 0:
		return Int{}
	case 1:
		return makeInt(x.neg, magSub(x.mag, y.mag))
	default:
		return makeInt(y.neg, magSub(y.mag, x.mag))
	}
}

// Sub returns x - y, defined as x + (-y).
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y using schoolbook multiplication with 64-bit
// intermediate products. The result sign is the XOR of the operand
// signs.
func (x Int) Mul(y Int) Int {
	return makeInt(x.neg != y.neg, magMul(x.mag, y.mag))
}

// MulDigit returns x * d for a single unsigned 32-bit multiplier,
// keeping x's sign.
func (x Int) MulDigit(d uint32) Int {
	return makeInt(x.neg, magMulDigit(x.mag, d))
}

func magAdd(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint32
	for i, ad := range a {
		var bd uint32
		if i < len(b) {
			bd = b[i]
		}
		out[i], carry = bits.Add32(ad, bd, carry)
	}
	out[len(a)] = carry
	return trim(out)
}

// magSub computes a - b; a must not be smaller than b.
func magSub(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint32
	for i, ad := range a {
		var bd uint32
		if i < len(b) {
			bd = b[i]
		}
		out[i], borrow = bits.Sub32(ad, bd, borrow)
	}
	return trim(out)
}

func magMul(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	// Iterate the shorter operand on the outside.
	if len(a) > len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+len(b))
	for i, ad := range a {
		m := uint64(ad)
		var carry uint64
		for j, bd := range b {
			s := m*uint64(bd) + uint64(out[i+j]) + carry
			out[i+j] = uint32(s)
			carry = s >> 32
		}
		for k := i + len(b); carry != 0; k++ {
			s := uint64(out[k]) + carry
			out[k] = uint32(s)
			carry = s >> 32
		}
	}
	return trim(out)
}

func magMulDigit(a []uint32, d uint32) []uint32 {
	if len(a) == 0 || d == 0 {
		return nil
	}
	out := make([]uint32, len(a)+1)
	m := uint64(d)
	var carry uint64
	for i, ad := range a {
		s := m*uint64(ad) + carry
		out[i] = uint32(s)
		carry = s >> 32
	}
	out[len(a)] = uint32(carry)
	return trim(out)
}
