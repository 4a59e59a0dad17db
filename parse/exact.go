package parse

import (
	"math"
	"math/bits"

	"github.com/calebcase/lexical/cached"
	"github.com/calebcase/lexical/extfloat"
)

// pow2Limit bounds binary exponents handed to Round, well past the range
// where every 64-bit mantissa is zero or infinite.
const pow2Limit = 1 << 14

// exact resolves values that need no error tracking: any power of two radix,
// or an exact mantissa scaled by an exact power.
func exact(mant uint64, exp int64, truncated bool, info *extfloat.Info, radix uint32) (bits uint64, ok bool) {
	if radix&(radix-1) == 0 {
		return exactPow2(mant, exp, truncated, info, radix), true
	}

	if truncated || mant>>(info.MantBits+1) != 0 {
		return 0, false
	}

	limit := int64(cached.ExactExponent(radix, info.MantBits))
	if exp > limit || exp < -limit {
		return 0, false
	}

	p := powFloat(radix, exp)

	if info == extfloat.Float32 {
		v, q := float32(mant), float32(p)
		if exp >= 0 {
			v = float32(v * q)
		} else {
			v = float32(v / q)
		}

		return uint64(math.Float32bits(v)), true
	}

	v := float64(mant)
	if exp >= 0 {
		v = float64(v * p)
	} else {
		v = float64(v / p)
	}

	return math.Float64bits(v), true
}

// exactPow2 scales by the exponent in bits. The truncated digits act as a
// sticky bit below the mantissa.
func exactPow2(mant uint64, exp int64, truncated bool, info *extfloat.Info, radix uint32) uint64 {
	e := exp * int64(bits.TrailingZeros32(radix))
	e = min(max(e, -pow2Limit), pow2Limit)

	return extfloat.Round(extfloat.From64(mant, int32(e)), info, extfloat.NearestEven, truncated)
}

// powFloat returns radix^|exp|, exact for exponents within ExactExponent.
func powFloat(radix uint32, exp int64) float64 {
	if exp < 0 {
		exp = -exp
	}

	p, r := 1.0, float64(radix)
	for ; exp > 0; exp-- {
		p *= r
	}

	return p
}
