package bigint

import (
	"fmt"
	"strconv"
	"strings"
)

// decimalBase is 10^19, the largest power of ten that fits in 64 bits.
// The decimal writer halves values by escalating powers of it so that
// every leaf formats with plain 64-bit arithmetic.
var decimalBase = Int{mag: []uint32{0x89E80000, 0x8AC72304}}

const decimalBaseDigits = 19

// String renders x in decimal with an optional leading minus sign.
func (x Int) String() string {
	if x.IsZero() {
		return "0"
	}
	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	writeDecimal(&sb, x.Abs(), 0)
	return sb.String()
}

// writeDecimal splits v by the largest useful power of 10^19, recursing
// on quotient and remainder. Leaves are padded with leading zeros to
// the width their position demands.
func writeDecimal(sb *strings.Builder, v Int, expected int) {
	if v.Cmp(decimalBase) >= 0 {
		divisor := decimalBase
		width := decimalBaseDigits
		for next := divisor.Mul(divisor); v.Cmp(next) >= 0; next = divisor.Mul(divisor) {
			divisor = next
			width *= 2
		}
		q, r, _ := v.DivMod(divisor)
		upper := 0
		if expected > width {
			upper = expected - width
		}
		writeDecimal(sb, q, upper)
		writeDecimal(sb, r, width)
		return
	}
	s := strconv.FormatUint(v.uint64(), 10)
	for i := len(s); i < expected; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(s)
}

// HexString renders x as 0x followed by uppercase hex digits with
// leading zeros suppressed; the sign precedes the prefix.
func (x Int) HexString() string {
	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	sb.WriteString("0x")
	if x.IsZero() {
		sb.WriteByte('0')
		return sb.String()
	}
	fmt.Fprintf(&sb, "%X", x.mag[len(x.mag)-1])
	for i := len(x.mag) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08X", x.mag[i])
	}
	return sb.String()
}
