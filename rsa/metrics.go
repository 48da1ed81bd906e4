package rsa

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts key-generation work. Construct with NewMetrics and
// attach to GenerateKeyPair via WithMetrics.
type Metrics struct {
	KeyPairsGenerated     prometheus.Counter
	PrimeCandidatesTested prometheus.Counter
	KeyGenDuration        prometheus.Histogram
}

// NewMetrics builds the generation metrics and registers them with r
// when r is non-nil.
func NewMetrics(r prometheus.Registerer) *Metrics {
	m := &Metrics{
		KeyPairsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bignum",
			Subsystem: "rsa",
			Name:      "keypairs_generated_total",
			Help:      "Number of RSA key pairs generated.",
		}),
		PrimeCandidatesTested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bignum",
			Subsystem: "rsa",
			Name:      "prime_candidates_tested_total",
			Help:      "Number of candidates fed to the primality test.",
		}),
		KeyGenDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bignum",
			Subsystem: "rsa",
			Name:      "keygen_duration_seconds",
			Help:      "Wall-clock time spent generating a key pair.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
		}),
	}
	if r != nil {
		r.MustRegister(m.KeyPairsGenerated, m.PrimeCandidatesTested, m.KeyGenDuration)
	}
	return m
}
