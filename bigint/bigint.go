// Package bigint implements a signed arbitrary-precision integer in
// sign-magnitude form: a negative flag plus a little-endian vector of
// 32-bit digits. Values are immutable; every operation returns a fresh
// value and leaves its operands untouched.
package bigint

// Int is a signed arbitrary-precision integer. The zero value is a
// valid representation of zero.
//
// Internally the magnitude is kept normalized: no trailing (most
// significant) zero digits, and an empty digit vector means zero. The
// negative flag is never set on zero, so equality and ordering can
// compare representations directly.
type Int struct {
	neg bool
	mag []uint32
}

// Frequently used small constants. Shared freely; nothing in this
// package mutates a magnitude after it is stored in an Int.
var (
	intOne = Int{mag: []uint32{1}}
	intTwo = Int{mag: []uint32{2}}
)

// FromInt64 returns the Int with the given value.
func FromInt64(v int64) Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	return makeInt(neg, []uint32{uint32(u), uint32(u >> 32)})
}

// makeInt assembles a value from a sign and a raw magnitude,
// re-establishing the normalized form.
func makeInt(neg bool, mag []uint32) Int {
	mag = trim(mag)
	if len(mag) == 0 {
		neg = false
	}
	return Int{neg, mag}
}

// trim strips trailing zero digits. The empty slice represents zero.
func trim(m []uint32) []uint32 {
	for len(m) > 0 && m[len(m)-1] == 0 {
		m = m[:len(m)-1]
	}
	return m
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool {
	return len(x.mag) == 0
}

// Sign returns -1, 0, or +1.
func (x Int) Sign() int {
	if len(x.mag) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.IsZero() {
		return x
	}
	return Int{!x.neg, x.mag}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if !x.neg {
		return x
	}
	return Int{false, x.mag}
}

// Cmp compares x and y, returning -1, 0, or +1. Signs are compared
// first, then digit counts, then digits from the most significant end.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	}
	c := magCmp(x.mag, y.mag)
	if xs < 0 {
		return -c
	}
	return c
}

// Equal reports whether x and y represent the same value.
func (x Int) Equal(y Int) bool {
	if x.neg != y.neg || len(x.mag) != len(y.mag) {
		return false
	}
	for i, d := range x.mag {
		if y.mag[i] != d {
			return false
		}
	}
	return true
}

// Int64 returns the low 64 bits of the magnitude with x's sign
// applied. Values wider than 64 bits are truncated.
func (x Int) Int64() int64 {
	if x.neg {
		return -int64(x.uint64())
	}
	return int64(x.uint64())
}

func (x Int) uint64() uint64 {
	var v uint64
	if len(x.mag) > 0 {
		v = uint64(x.mag[0])
	}
	if len(x.mag) > 1 {
		v |= uint64(x.mag[1]) << 32
	}
	return v
}

// odd reports whether the low bit of the magnitude is set.
func (x Int) odd() bool {
	return len(x.mag) > 0 && x.mag[0]&1 == 1
}

// magCmp compares two normalized magnitudes.
func magCmp(a, b []uint32) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
