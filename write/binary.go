package write

import (
	"math/bits"

	"github.com/calebcase/lexical/decimal"
	"github.com/calebcase/lexical/extfloat"
)

// binary regroups the mantissa of a finite, positive float into digits of a
// power of two radix. The digits are exact.
func binary(v uint64, info *extfloat.Info, radix uint32) decimal.Block {
	m, e := info.Decode(v)
	t := int32(bits.TrailingZeros32(radix))

	// Align the exponent to a multiple of the digit width.
	q := e / t
	if e%t < 0 {
		q--
	}
	m <<= uint(e - q*t)

	var scratch [64]byte
	i := len(scratch)
	mask := uint64(radix - 1)
	for m != 0 {
		i--
		scratch[i] = byte(m & mask)
		m >>= uint(t)
	}

	digits := append([]byte(nil), scratch[i:]...)

	b := decimal.Block{
		Digits: digits,
		Exp:    int32(len(digits)) - 1 + q,
		Radix:  radix,
	}
	b.Trim()

	return b
}
