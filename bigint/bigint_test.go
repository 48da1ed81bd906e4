package bigint_test

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"bignum/bigint"
	"bignum/internal/unsaferand"
)

// toBig converts a value to math/big for cross-checking. The decimal
// rendering it relies on is itself pinned by the fixed vectors below.
func toBig(t *testing.T, x bigint.Int) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(x.String(), 10)
	require.True(t, ok, "unparseable rendering %q", x.String())
	return v
}

func randOperand(t *testing.T, rng *unsaferand.Rand, bits int) bigint.Int {
	t.Helper()
	v, err := bigint.Random(bits, rng)
	require.NoError(t, err)
	if rng.Intn(2) == 1 {
		v = v.Neg()
	}
	return v
}

func TestFromInt64Rendering(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -42, 1 << 40, -(1 << 40), 1<<63 - 1, -1 << 63} {
		require.Equal(t, strconv.FormatInt(v, 10), bigint.FromInt64(v).String())
		require.Equal(t, v, bigint.FromInt64(v).Int64())
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"  -42", "-42"},
		{"+17", "17"},
		{"0x1A", "26"},
		{"-0XFF", "-255"},
		{"", "0"},
		{"abc", "0"},
		{"0x", "0"},
		{"017", "17"},
		{"12junk34", "12"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, bigint.Parse(c.in).String(), "input %q", c.in)
	}
	require.Equal(t, "15", bigint.Parse("017", true).String())
	require.Equal(t, "-7", bigint.Parse("-07", true).String())
	require.Equal(t, "8", bigint.Parse("8", true).String())
}

func TestStringRoundTrip(t *testing.T) {
	rng := unsaferand.New("string round trip")
	for _, bits := range []int{1, 31, 32, 33, 64, 100, 333, 1024} {
		for i := 0; i < 8; i++ {
			v := randOperand(t, rng, bits)
			require.True(t, bigint.Parse(v.String()).Equal(v))
			require.True(t, bigint.Parse(v.HexString()).Equal(v))
		}
	}
}

func TestDecimalPadding(t *testing.T) {
	// Exercise the recursive 10^19 splitter around its boundaries,
	// including interior blocks that need zero padding.
	pow19, err := bigint.Pow(bigint.FromInt64(10), bigint.FromInt64(19))
	require.NoError(t, err)
	require.Equal(t, "10000000000000000000", pow19.String())

	pow40, err := bigint.Pow(bigint.FromInt64(10), bigint.FromInt64(40))
	require.NoError(t, err)
	require.Equal(t, "1"+string(make40zeros()), pow40.String())
	require.Equal(t, "1"+string(make40zeros()[:39])+"7", pow40.Add(bigint.FromInt64(7)).String())
}

func make40zeros() []byte {
	b := make([]byte, 40)
	for i := range b {
		b[i] = '0'
	}
	return b
}

func TestHexString(t *testing.T) {
	require.Equal(t, "0x0", bigint.FromInt64(0).HexString())
	require.Equal(t, "0xFF", bigint.FromInt64(255).HexString())
	require.Equal(t, "-0x1A", bigint.FromInt64(-26).HexString())
	require.Equal(t, "0x123456789ABCDEF0", bigint.FromInt64(0x123456789ABCDEF0).HexString())
}

func TestCmpAndSign(t *testing.T) {
	values := []string{"-1000000000000000000000", "-42", "-1", "0", "1", "42", "1000000000000000000000"}
	for i, a := range values {
		for j, b := range values {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			require.Equal(t, want, bigint.Parse(a).Cmp(bigint.Parse(b)), "%s vs %s", a, b)
		}
	}
	require.Equal(t, -1, bigint.Parse("-5").Sign())
	require.Equal(t, 0, bigint.Parse("0").Sign())
	require.Equal(t, 1, bigint.Parse("5").Sign())
	require.True(t, bigint.Parse("-0").Equal(bigint.FromInt64(0)))
}

func TestAddSubAgainstOracle(t *testing.T) {
	rng := unsaferand.New("add sub")
	for i := 0; i < 64; i++ {
		a := randOperand(t, rng, 20+rng.Intn(300))
		b := randOperand(t, rng, 20+rng.Intn(300))
		ba, bb := toBig(t, a), toBig(t, b)
		require.Equal(t, new(big.Int).Add(ba, bb).String(), a.Add(b).String())
		require.Equal(t, new(big.Int).Sub(ba, bb).String(), a.Sub(b).String())
	}
}

func TestAddIdentities(t *testing.T) {
	rng := unsaferand.New("add identities")
	zero := bigint.Int{}
	for i := 0; i < 16; i++ {
		a := randOperand(t, rng, 200)
		b := randOperand(t, rng, 150)
		c := randOperand(t, rng, 90)
		require.True(t, a.Add(zero).Equal(a))
		require.True(t, a.Add(a.Neg()).IsZero())
		require.True(t, a.Add(b).Equal(b.Add(a)))
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))))
	}
}

func TestMulAgainstOracle(t *testing.T) {
	rng := unsaferand.New("mul")
	for i := 0; i < 48; i++ {
		a := randOperand(t, rng, 10+rng.Intn(400))
		b := randOperand(t, rng, 10+rng.Intn(400))
		require.Equal(t, new(big.Int).Mul(toBig(t, a), toBig(t, b)).String(), a.Mul(b).String())
	}
}

func TestMulIdentities(t *testing.T) {
	a := bigint.Parse("123456789012345678901234567890")
	require.Equal(t, "123456789012345678901234567890", a.Mul(bigint.FromInt64(1)).String())
	require.True(t, a.Mul(bigint.Int{}).IsZero())
	require.Equal(t, "246913578024691357802469135780", a.MulDigit(2).String())
	require.Equal(t, "-246913578024691357802469135780", a.Neg().MulDigit(2).String())
}

func TestShiftsAgainstOracle(t *testing.T) {
	rng := unsaferand.New("shifts")
	for i := 0; i < 48; i++ {
		a := randOperand(t, rng, 10+rng.Intn(300))
		s := uint(rng.Intn(130))
		ba := toBig(t, a)
		require.Equal(t, new(big.Int).Lsh(ba, s).String(), a.Lsh(s).String(), "%s << %d", a, s)
		require.Equal(t, new(big.Int).Rsh(ba, s).String(), a.Rsh(s).String(), "%s >> %d", a, s)
	}
}

func TestShiftEdges(t *testing.T) {
	require.Equal(t, "-1", bigint.FromInt64(-1).Rsh(100).String())
	require.Equal(t, "-1", bigint.FromInt64(-4).Rsh(3).String())
	require.Equal(t, "-1", bigint.FromInt64(-4).Rsh(2).String())
	require.Equal(t, "-2", bigint.FromInt64(-7).Rsh(2).String())
	require.Equal(t, "0", bigint.FromInt64(7).Rsh(3).String())
	pow, _ := bigint.Pow(bigint.FromInt64(2), bigint.FromInt64(100))
	require.True(t, bigint.FromInt64(1).Lsh(100).Equal(pow))
}

func TestBitwiseAgainstOracle(t *testing.T) {
	rng := unsaferand.New("bitwise")
	for i := 0; i < 64; i++ {
		a := randOperand(t, rng, 5+rng.Intn(200))
		b := randOperand(t, rng, 5+rng.Intn(200))
		ba, bb := toBig(t, a), toBig(t, b)
		require.Equal(t, new(big.Int).And(ba, bb).String(), a.And(b).String(), "%s & %s", a, b)
		require.Equal(t, new(big.Int).Or(ba, bb).String(), a.Or(b).String(), "%s | %s", a, b)
		require.Equal(t, new(big.Int).Xor(ba, bb).String(), a.Xor(b).String(), "%s ^ %s", a, b)
	}
}

func TestBitwiseIdentities(t *testing.T) {
	rng := unsaferand.New("bitwise identities")
	for i := 0; i < 16; i++ {
		a := randOperand(t, rng, 170)
		require.True(t, a.And(a).Equal(a))
		require.True(t, a.Or(a).Equal(a))
		require.True(t, a.Xor(a).IsZero())
		require.True(t, a.Not().Equal(bigint.FromInt64(-1).Sub(a)))
	}
}

func TestRandomBounds(t *testing.T) {
	rng := unsaferand.New("random bounds")
	for _, bits := range []int{1, 7, 8, 9, 31, 32, 33, 129} {
		limit := bigint.FromInt64(1).Lsh(uint(bits))
		for i := 0; i < 16; i++ {
			v, err := bigint.Random(bits, rng)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v.Sign(), 0)
			require.Equal(t, -1, v.Cmp(limit))
		}
	}
	v, err := bigint.Random(0, rng)
	require.NoError(t, err)
	require.True(t, v.IsZero())
}

func TestRandomDeterminism(t *testing.T) {
	a, err := bigint.Random(256, unsaferand.New("seed", 7))
	require.NoError(t, err)
	b, err := bigint.Random(256, unsaferand.New("seed", 7))
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestASCIIRoundTrip(t *testing.T) {
	for _, msg := range []string{"A", "Hello, world", "\x00leading zero byte", "x"} {
		v := bigint.FromASCII([]byte(msg))
		back, err := v.ToASCII()
		require.NoError(t, err)
		require.Equal(t, msg, string(back))
	}

	empty, err := bigint.FromASCII(nil).ToASCII()
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestToASCIIErrors(t *testing.T) {
	_, err := bigint.FromInt64(5).ToASCII()
	require.ErrorIs(t, err, bigint.ErrDomain)
	_, err = bigint.Int{}.ToASCII()
	require.ErrorIs(t, err, bigint.ErrDomain)
	_, err = bigint.FromInt64(-256).ToASCII()
	require.ErrorIs(t, err, bigint.ErrDomain)
}
