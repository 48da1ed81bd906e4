package rsa

import (
	"io"

	"github.com/pkg/errors"

	"bignum/bigint"
	"bignum/internal/unsaferand"
)

type streamConfig struct {
	padRand       io.Reader
	ownsTransport bool
}

// StreamOption adjusts a stream adapter at construction.
type StreamOption func(*streamConfig)

// WithPaddingSource overrides the source of block padding bytes. The
// default is the platform secure source.
func WithPaddingSource(r io.Reader) StreamOption {
	return func(c *streamConfig) { c.padRand = r }
}

// WithTransportOwnership makes Close also close the wrapped stream if
// it implements io.Closer. Without it the adapter only borrows the
// transport.
func WithTransportOwnership() StreamOption {
	return func(c *streamConfig) { c.ownsTransport = true }
}

// blockLength returns the plaintext bytes packed per ciphertext
// integer for the given modulus. A modulus can pass the key check yet
// leave no room for the padding; that is a range error.
func blockLength(modulus bigint.Int) (int, error) {
	lg, err := modulus.Log2()
	if err != nil {
		return 0, err
	}
	n := lg/8 - PaddingLength
	if n <= 0 {
		return 0, errors.WithMessage(bigint.ErrRange, "modulus leaves no room for padded blocks")
	}
	return n, nil
}

// Encrypter packs written bytes into padded blocks, encrypts each
// block, and emits ciphertext integers in hex, one per block, each
// followed by a single space. Close (or Flush) encrypts any partial
// final block.
type Encrypter struct {
	w     io.Writer
	key   EncryptionKey
	rand  io.Reader
	buf   []byte
	limit int
	owns  bool
}

// NewWriter wraps w in an encrypting adapter for the key.
func (k EncryptionKey) NewWriter(w io.Writer, opts ...StreamOption) (*Encrypter, error) {
	cfg := streamConfig{padRand: unsaferand.Source(true)}
	for _, opt := range opts {
		opt(&cfg)
	}
	limit, err := blockLength(k.modulus)
	if err != nil {
		return nil, err
	}
	return &Encrypter{
		w:     w,
		key:   k,
		rand:  cfg.padRand,
		buf:   make([]byte, 0, limit),
		limit: limit,
		owns:  cfg.ownsTransport,
	}, nil
}

// Write buffers p, encrypting and emitting a block whenever the buffer
// fills.
func (e *Encrypter) Write(p []byte) (int, error) {
	written := 0
	for _, b := range p {
		e.buf = append(e.buf, b)
		if len(e.buf) >= e.limit {
			if err := e.encryptBuffer(); err != nil {
				return written, err
			}
		}
		written++
	}
	return written, nil
}

// Flush encrypts and emits the buffered partial block, if any.
func (e *Encrypter) Flush() error {
	return e.encryptBuffer()
}

// Close flushes the remaining block and, when the adapter owns its
// transport, closes the wrapped stream.
func (e *Encrypter) Close() error {
	err := e.encryptBuffer()
	if e.owns {
		if c, ok := e.w.(io.Closer); ok {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}
	}
	return err
}

func (e *Encrypter) encryptBuffer() error {
	if len(e.buf) == 0 {
		return nil
	}
	pad, err := bigint.Random(PaddingLength*8, e.rand)
	if err != nil {
		return err
	}
	v := bigint.FromASCII(e.buf).Lsh(PaddingLength * 8).Or(pad)
	ciphertext := e.key.Encrypt(v)
	if _, err := io.WriteString(e.w, ciphertext.HexString()+" "); err != nil {
		return errors.WithMessage(err, "writing ciphertext")
	}
	e.buf = e.buf[:0]
	return nil
}

// Decrypter reads whitespace-separated ciphertext integers, decrypts
// them, and surfaces the unpacked plaintext bytes in order. The first
// parse failure, out-of-range value, or corrupt block latches the
// reader closed; from then on every Read returns io.EOF.
type Decrypter struct {
	sc   *bigint.Scanner
	key  DecryptionKey
	src  io.Reader
	buf  []byte
	good bool
	owns bool
}

// NewReader wraps r in a decrypting adapter for the key.
func (k DecryptionKey) NewReader(r io.Reader, opts ...StreamOption) (*Decrypter, error) {
	cfg := streamConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, err := blockLength(k.modulus); err != nil {
		return nil, err
	}
	return &Decrypter{
		sc:   bigint.NewScanner(r),
		key:  k,
		src:  r,
		good: true,
		owns: cfg.ownsTransport,
	}, nil
}

// Read copies decrypted plaintext into p, pulling and decrypting the
// next ciphertext integer on demand.
func (d *Decrypter) Read(p []byte) (int, error) {
	for len(d.buf) == 0 {
		if !d.good {
			return 0, io.EOF
		}
		if !d.decryptNext() {
			d.good = false
			return 0, io.EOF
		}
	}
	n := copy(p, d.buf)
	d.buf = d.buf[n:]
	return n, nil
}

// decryptNext pulls one ciphertext integer and refills the plaintext
// buffer. Any failure means the stream is exhausted or corrupt; the
// distinction is deliberately not surfaced.
func (d *Decrypter) decryptNext() bool {
	v, err := d.sc.Next()
	if err != nil {
		return false
	}
	if v.Sign() < 0 || v.Cmp(d.key.modulus) >= 0 {
		return false
	}
	plain := d.key.Decrypt(v).Rsh(PaddingLength * 8)
	b, err := plain.ToASCII()
	if err != nil || len(b) == 0 {
		return false
	}
	d.buf = b
	return true
}

// Close releases the transport when the adapter owns it.
func (d *Decrypter) Close() error {
	if d.owns {
		if c, ok := d.src.(io.Closer); ok {
			return c.Close()
		}
	}
	return nil
}
