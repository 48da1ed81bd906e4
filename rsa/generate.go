package rsa

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"bignum/bigint"
	"bignum/internal/unsaferand"
)

// publicExponent is the fixed encryption exponent of every generated
// key pair.
var publicExponent = bigint.FromInt64(65537)

// KeyPair holds the surviving parameters of a generated pair. The
// primes are discarded as soon as n and d are known.
type KeyPair struct {
	e, d, n bigint.Int
}

// EncryptionKey returns the public key (e, n).
func (kp *KeyPair) EncryptionKey() EncryptionKey {
	return EncryptionKey{kp.e, kp.n}
}

// DecryptionKey returns the private key (d, n).
func (kp *KeyPair) DecryptionKey() DecryptionKey {
	return DecryptionKey{kp.d, kp.n}
}

type genConfig struct {
	log2Probability int
	logger          logrus.FieldLogger
	metrics         *Metrics
	witnessRand     io.Reader
}

// GenOption adjusts key-pair generation.
type GenOption func(*genConfig)

// WithLogger attaches a logger that reports prime-search progress and
// the generated key sizes.
func WithLogger(l logrus.FieldLogger) GenOption {
	return func(c *genConfig) { c.logger = l }
}

// WithMetrics attaches generation counters.
func WithMetrics(m *Metrics) GenOption {
	return func(c *genConfig) { c.metrics = m }
}

// WithWitnessSource overrides the randomness used for Miller-Rabin
// witnesses. Witness selection does not need a secure source; tests
// use this for determinism.
func WithWitnessSource(r io.Reader) GenOption {
	return func(c *genConfig) { c.witnessRand = r }
}

// WithErrorBound sets the primality log2-probability bound (default
// 100, i.e. a false-prime chance of at most 2^-100 per prime).
func WithErrorBound(log2Probability int) GenOption {
	return func(c *genConfig) { c.log2Probability = log2Probability }
}

// GenerateKeyPair produces a key pair with a modulus of at least bits
// bits, drawing prime candidates from rand. Each prime comes from
// MakeProbablePrime(bits/2), so its top bit is at position bits/2;
// bits/2 below 128 is a range error. In the rare
// case that 65537 divides phi, the pair is regenerated.
func GenerateKeyPair(bits int, rand io.Reader, opts ...GenOption) (*KeyPair, error) {
	primeBits := bits >> 1
	if primeBits < 8*PaddingLength {
		return nil, errors.WithMessagef(bigint.ErrRange, "bit count %d is too small for a key pair", bits)
	}
	cfg := genConfig{log2Probability: 100, witnessRand: unsaferand.Shared()}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	candidates := 0
	progress := func() {
		candidates++
		if cfg.metrics != nil {
			cfg.metrics.PrimeCandidatesTested.Inc()
		}
		if cfg.logger != nil && candidates%128 == 0 {
			cfg.logger.WithField("candidates", candidates).Debug("prime search in progress")
		}
	}

	for {
		u, err := bigint.MakeProbablePrime(primeBits, cfg.log2Probability, rand, cfg.witnessRand, progress)
		if err != nil {
			return nil, err
		}
		v, err := bigint.MakeProbablePrime(primeBits, cfg.log2Probability, rand, cfg.witnessRand, progress)
		if err != nil {
			return nil, err
		}
		n := u.Mul(v)
		phi := u.Sub(one).Mul(v.Sub(one))
		d, err := publicExponent.ModInverse(phi)
		if err != nil {
			if errors.Is(err, bigint.ErrDomain) {
				if cfg.logger != nil {
					cfg.logger.Debug("exponent shares a factor with phi, regenerating primes")
				}
				continue
			}
			return nil, err
		}

		if cfg.metrics != nil {
			cfg.metrics.KeyPairsGenerated.Inc()
			cfg.metrics.KeyGenDuration.Observe(time.Since(start).Seconds())
		}
		if cfg.logger != nil {
			lg, _ := n.Log2()
			cfg.logger.WithFields(logrus.Fields{
				"modulus_bits": lg + 1,
				"candidates":   candidates,
			}).Info("generated RSA key pair")
		}
		return &KeyPair{publicExponent, d, n}, nil
	}
}
