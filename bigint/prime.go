package bigint

import "io"

// smallPrimes are the trial divisors applied before any Miller-Rabin
// round. A candidate that survives them and is at most 13*13 must be
// prime.
var smallPrimes = []int64{3, 5, 7, 11, 13}

// IsProbablePrime runs trial division by the small primes followed by
// ceil(log2Probability/2) Miller-Rabin rounds with witnesses drawn
// uniformly from [2, n-2] using the provided reader. For a composite
// n the probability of acceptance is at most 2^-log2Probability.
func IsProbablePrime(n Int, log2Probability int, rand io.Reader) (bool, error) {
	if n.Cmp(intOne) <= 0 {
		return false, nil
	}
	if n.Cmp(FromInt64(3)) <= 0 {
		return true, nil
	}
	if !n.odd() {
		return false, nil
	}
	for _, p := range smallPrimes {
		pv := FromInt64(p)
		if n.Equal(pv) {
			return true, nil
		}
		if r, _ := n.Mod(pv); r.IsZero() {
			return false, nil
		}
	}
	if n.Cmp(FromInt64(13*13)) <= 0 {
		return true, nil
	}

	// Write n-1 = 2^s * d with d odd.
	d := n.Sub(intOne)
	s := 0
	for !d.odd() {
		d = d.Rsh(1)
		s++
	}

	rounds := (log2Probability + 1) / 2
	lg, _ := n.Log2()
	nMinus1 := n.Sub(intOne)
	nMinus3 := n.Sub(FromInt64(3))
	for i := 0; i < rounds; i++ {
		// Rejection sampling keeps the witness uniform over [2, n-2].
		a := nMinus3
		for a.Cmp(nMinus3) >= 0 {
			rv, err := Random(lg+1, rand)
			if err != nil {
				return false, err
			}
			a = rv
		}
		a = a.Add(intTwo)
		x, _ := ModPow(a, d, n)
		if x.Equal(intOne) || x.Equal(nMinus1) {
			continue
		}
		witness := false
		for j := 1; ; j++ {
			if j >= s {
				witness = true
				break
			}
			x = x.Mul(x)
			x, _ = x.Mod(n)
			if x.Equal(intOne) {
				witness = true
				break
			}
			if x.Equal(nMinus1) {
				break
			}
		}
		if witness {
			return false, nil
		}
	}
	return true, nil
}

// MakeProbablePrime searches for a probable prime whose top set bit is
// at position bits, by testing odd candidates
// (random(bits-2) << 1) | 1<<bits | 1. The result therefore has bits+1
// bits, and its bit bits-1 is always zero. Candidate bits come from genRand; Miller-Rabin
// witnesses come from testRand, which need not be a secure source.
//
// An optional progress callback is invoked once per candidate tested.
func MakeProbablePrime(bits, log2Probability int, genRand, testRand io.Reader, progress ...func()) (Int, error) {
	if bits < 3 {
		bits = 3
	}
	topBit := intOne.Lsh(uint(bits))
	for {
		rv, err := Random(bits-2, genRand)
		if err != nil {
			return Int{}, err
		}
		n := rv.Lsh(1).Or(topBit).Or(intOne)
		for _, fn := range progress {
			fn()
		}
		ok, err := IsProbablePrime(n, log2Probability, testRand)
		if err != nil {
			return Int{}, err
		}
		if ok {
			return n, nil
		}
	}
}
