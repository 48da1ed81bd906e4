package bigint

import (
	"io"

	"github.com/pkg/errors"
)

// Random returns a value uniformly distributed in [0, 2^bits), drawing
// entropy from the provided reader. The caller chooses the source;
// pass a deterministic reader to reproduce a sequence.
func Random(bits int, rand io.Reader) (Int, error) {
	if bits < 0 {
		return Int{}, errors.WithMessage(ErrRange, "negative bit count")
	}
	if bits == 0 {
		return Int{}, nil
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return Int{}, errors.WithMessage(err, "reading random source")
	}
	if rem := bits % 8; rem != 0 {
		buf[len(buf)-1] &= 1<<rem - 1
	}
	mag := make([]uint32, (len(buf)+3)/4)
	for i, b := range buf {
		mag[i/4] |= uint32(b) << (8 * (i % 4))
	}
	return makeInt(false, mag), nil
}
