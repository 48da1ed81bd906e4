package bigint

import "github.com/pkg/errors"

// FromASCII packs a byte string into an integer, least significant
// byte first, with a 0x01 sentinel byte above the top so that leading
// zero bytes survive the round trip.
func FromASCII(b []byte) Int {
	v := intOne
	for i := len(b) - 1; i >= 0; i-- {
		v = v.Lsh(8).Add(FromInt64(int64(b[i])))
	}
	return v
}

// ToASCII unpacks an integer produced by FromASCII back into bytes,
// dropping the sentinel. Log2 of the value (the position of the
// sentinel bit) must be a multiple of eight; anything else fails with
// a domain error, as does a non-positive value.
func (x Int) ToASCII() ([]byte, error) {
	lg, err := x.Log2()
	if err != nil {
		return nil, err
	}
	if lg%8 != 0 {
		return nil, errors.WithMessage(ErrDomain, "bit length is not a whole number of bytes")
	}
	out := make([]byte, lg/8)
	for i := range out {
		out[i] = byte(x.mag[i/4] >> (8 * (i % 4)))
	}
	return out, nil
}
