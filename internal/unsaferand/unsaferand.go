// Package unsaferand provides the module's non-cryptographic random
// sources: deterministic seeded readers for tests, and the shared
// process-wide generator that secure requests fall back to when the
// platform source is unavailable.
package unsaferand

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	mrand "math/rand"
	"sync"
	"time"
)

// Rand is an io.Reader over math/rand.Rand. The generated sequence is
// not cryptographically secure and must only be used for testing and
// for work that does not need secrecy, such as Miller-Rabin witness
// selection. A Rand is not safe for concurrent use.
type Rand struct {
	*mrand.Rand
}

var _ io.Reader = &Rand{}

// New returns a Rand producing a deterministic sequence derived from
// the seed arguments. Determinism depends on the fmt "%#v" rendering
// of the arguments, so avoid maps.
func New(seedArgs ...any) *Rand {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%#v", seedArgs)
	return &Rand{mrand.New(mrand.NewSource(int64(h.Sum64())))}
}

// NewNondeterministic returns a Rand seeded from the platform source,
// or from the clock if that fails.
func NewNondeterministic() *Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return &Rand{mrand.New(mrand.NewSource(time.Now().UnixNano()))}
	}
	return &Rand{mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))}
}

// The process-wide generator behind Shared. Lazily initialized;
// guarded by sharedMu because Rand itself is not concurrency-safe.
var (
	sharedMu   sync.Mutex
	sharedRand *Rand
)

type sharedReader struct{}

func (sharedReader) Read(p []byte) (int, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedRand == nil {
		sharedRand = NewNondeterministic()
	}
	return sharedRand.Read(p)
}

// Shared returns the process-wide non-secure source. It is safe for
// concurrent use.
func Shared() io.Reader {
	return sharedReader{}
}

// The platform CSPRNG is probed once; if the probe fails, secure
// requests are served by the shared generator for the life of the
// process.
var (
	secureOnce sync.Once
	secureOK   bool
)

type secureReader struct{}

func (secureReader) Read(p []byte) (int, error) {
	secureOnce.Do(func() {
		var probe [1]byte
		_, err := crand.Read(probe[:])
		secureOK = err == nil
	})
	if secureOK {
		return io.ReadFull(crand.Reader, p)
	}
	return sharedReader{}.Read(p)
}

// Source selects between the platform CSPRNG (with fallback to the
// shared generator) and the shared generator itself.
func Source(secure bool) io.Reader {
	if secure {
		return secureReader{}
	}
	return Shared()
}
