package bigint_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"bignum/bigint"
)

func TestScannerSequence(t *testing.T) {
	sc := bigint.NewScanner(strings.NewReader("  123\t0x1F\n-42 +7 junk"))
	for _, want := range []string{"123", "31", "-42", "7"} {
		v, err := sc.Next()
		require.NoError(t, err)
		require.Equal(t, want, v.String())
	}
	_, err := sc.Next()
	require.ErrorIs(t, err, bigint.ErrParse)
}

func TestScannerEOF(t *testing.T) {
	sc := bigint.NewScanner(strings.NewReader("   \n\t "))
	_, err := sc.Next()
	require.ErrorIs(t, err, io.EOF)

	sc = bigint.NewScanner(strings.NewReader(""))
	_, err = sc.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestScannerSignWithoutDigits(t *testing.T) {
	sc := bigint.NewScanner(strings.NewReader("-"))
	_, err := sc.Next()
	require.ErrorIs(t, err, bigint.ErrParse)

	sc = bigint.NewScanner(strings.NewReader("+x"))
	_, err = sc.Next()
	require.ErrorIs(t, err, bigint.ErrParse)
}

func TestScannerBarePrefix(t *testing.T) {
	// "0x" with no hex digit is the number zero; the letter stays in
	// the stream and poisons the next read.
	sc := bigint.NewScanner(strings.NewReader("0x "))
	v, err := sc.Next()
	require.NoError(t, err)
	require.True(t, v.IsZero())
	_, err = sc.Next()
	require.ErrorIs(t, err, bigint.ErrParse)
}

func TestScannerStopsAtNonDigit(t *testing.T) {
	sc := bigint.NewScanner(strings.NewReader("123abc"))
	v, err := sc.Next()
	require.NoError(t, err)
	require.Equal(t, "123", v.String())
	_, err = sc.Next()
	require.ErrorIs(t, err, bigint.ErrParse)
}

func TestScannerHexSigned(t *testing.T) {
	sc := bigint.NewScanner(strings.NewReader("-0xff 0XAB"))
	v, err := sc.Next()
	require.NoError(t, err)
	require.Equal(t, "-255", v.String())
	v, err = sc.Next()
	require.NoError(t, err)
	require.Equal(t, "171", v.String())
}

func TestScannerOctalMode(t *testing.T) {
	sc := bigint.NewScanner(strings.NewReader("017 017"))
	sc.AllowOctal = true
	v, err := sc.Next()
	require.NoError(t, err)
	require.Equal(t, "15", v.String())

	sc.AllowOctal = false
	v, err = sc.Next()
	require.NoError(t, err)
	require.Equal(t, "17", v.String())
}

func TestScannerLargeValue(t *testing.T) {
	const digits = "123456789012345678901234567890123456789"
	sc := bigint.NewScanner(strings.NewReader(digits))
	v, err := sc.Next()
	require.NoError(t, err)
	require.Equal(t, digits, v.String())
}
