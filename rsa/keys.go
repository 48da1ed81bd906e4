// Package rsa implements textbook RSA over the bigint kernel: key
// pairs with e = 65537, raw modular-exponentiation encryption, and
// block-buffered stream adapters that pack ASCII bytes into padded
// integers. The padding is random but NOT a standards-compliant
// scheme; nothing here is safe for protecting real data.
package rsa

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"bignum/bigint"
)

// ErrBadKey marks a key whose exponent or modulus fails validation.
var ErrBadKey = errors.New("bad key")

// PaddingLength is the number of random bytes ORed below each
// plaintext block before encryption.
const PaddingLength = 16

var (
	one        = bigint.FromInt64(1)
	minModulus = bigint.FromInt64(1).Lsh(120)
)

func checkKey(exponent, modulus bigint.Int) error {
	if exponent.Cmp(one) <= 0 {
		return errors.WithMessage(ErrBadKey, "exponent must be greater than one")
	}
	if modulus.Cmp(minModulus) < 0 {
		return errors.WithMessage(ErrBadKey, "modulus must be at least 2^120")
	}
	return nil
}

// The keys hold validated (exponent, modulus) pairs, so the modular
// exponentiation below cannot fail; an error would be a programming
// error and panics.
func apply(v, exponent, modulus bigint.Int) bigint.Int {
	r, err := bigint.ModPow(v, exponent, modulus)
	if err != nil {
		panic(err)
	}
	return r
}

// EncryptionKey is the public half of a key pair: (e, n).
type EncryptionKey struct {
	exponent, modulus bigint.Int
}

// NewEncryptionKey validates and returns the key (exponent, modulus).
func NewEncryptionKey(exponent, modulus bigint.Int) (EncryptionKey, error) {
	if err := checkKey(exponent, modulus); err != nil {
		return EncryptionKey{}, err
	}
	return EncryptionKey{exponent, modulus}, nil
}

// ParseEncryptionKey reads the two whitespace-separated integers of
// the key wire format from r.
func ParseEncryptionKey(r io.Reader) (EncryptionKey, error) {
	e, n, err := scanKey(r)
	if err != nil {
		return EncryptionKey{}, err
	}
	return NewEncryptionKey(e, n)
}

// MaxInput returns the modulus; valid message blocks are in [0, n).
func (k EncryptionKey) MaxInput() bigint.Int { return k.modulus }

// Encrypt raises v to the public exponent modulo n.
func (k EncryptionKey) Encrypt(v bigint.Int) bigint.Int {
	return apply(v, k.exponent, k.modulus)
}

// DecryptSignature recovers a value signed with the private key. The
// computation is identical to Encrypt; the name states the intent.
func (k EncryptionKey) DecryptSignature(v bigint.Int) bigint.Int {
	return apply(v, k.exponent, k.modulus)
}

// String renders the key wire format: exponent and modulus in decimal.
func (k EncryptionKey) String() string {
	return fmt.Sprintf("%s %s", k.exponent, k.modulus)
}

// DecryptionKey is the private half of a key pair: (d, n).
type DecryptionKey struct {
	exponent, modulus bigint.Int
}

// NewDecryptionKey validates and returns the key (exponent, modulus).
func NewDecryptionKey(exponent, modulus bigint.Int) (DecryptionKey, error) {
	if err := checkKey(exponent, modulus); err != nil {
		return DecryptionKey{}, err
	}
	return DecryptionKey{exponent, modulus}, nil
}

// ParseDecryptionKey reads the two whitespace-separated integers of
// the key wire format from r.
func ParseDecryptionKey(r io.Reader) (DecryptionKey, error) {
	d, n, err := scanKey(r)
	if err != nil {
		return DecryptionKey{}, err
	}
	return NewDecryptionKey(d, n)
}

// MaxInput returns the modulus; valid ciphertext blocks are in [0, n).
func (k DecryptionKey) MaxInput() bigint.Int { return k.modulus }

// Decrypt raises v to the private exponent modulo n.
func (k DecryptionKey) Decrypt(v bigint.Int) bigint.Int {
	return apply(v, k.exponent, k.modulus)
}

// EncryptSignature signs a value; identical to Decrypt by
// construction.
func (k DecryptionKey) EncryptSignature(v bigint.Int) bigint.Int {
	return apply(v, k.exponent, k.modulus)
}

// String renders the key wire format: exponent and modulus in decimal.
func (k DecryptionKey) String() string {
	return fmt.Sprintf("%s %s", k.exponent, k.modulus)
}

func scanKey(r io.Reader) (bigint.Int, bigint.Int, error) {
	sc := bigint.NewScanner(r)
	e, err := sc.Next()
	if err != nil {
		return bigint.Int{}, bigint.Int{}, errors.WithMessage(err, "reading key exponent")
	}
	n, err := sc.Next()
	if err != nil {
		return bigint.Int{}, bigint.Int{}, errors.WithMessage(err, "reading key modulus")
	}
	return e, n, nil
}
