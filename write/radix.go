package write

import (
	"math"

	"github.com/calebcase/lexical/bigint"
	"github.com/calebcase/lexical/decimal"
	"github.com/calebcase/lexical/extfloat"
)

// radixDigits generates the shortest digits of a finite, positive float in
// any radix. R/S is the remaining value and Mp/S, Ml/S are the half gaps to
// the neighboring floats, all held exactly. Digit generation stops at the
// first digit that lands inside the rounding interval, rounding up when only
// the digit above does.
func radixDigits(v uint64, info *extfloat.Info, radix uint32) decimal.Block {
	m, e := info.Decode(v)
	asym := m == info.Hidden() && e > info.DenormalExp()
	even := m&1 == 0

	var r, s, mp, ml bigint.Bigint
	if e >= 0 {
		r.SetUint64(m)
		r.Shl(uint(e) + 2)
		s.SetUint64(4)
		mp.SetUint64(1)
		mp.Shl(uint(e) + 1)
		ml = mp
		if asym {
			ml.SetUint64(1)
			ml.Shl(uint(e))
		}
	} else {
		r.SetUint64(m << 2)
		s.SetUint64(1)
		s.Shl(uint(2 - e))
		mp.SetUint64(2)
		ml = mp
		if asym {
			ml.SetUint64(1)
		}
	}

	// Scale so that 1/radix <= R/S < 1, with est the radix exponent of S.
	est := int32(math.Ceil(math.Log(info.FromBits(v)) / math.Log(float64(radix))))
	if est >= 0 {
		s.Pow(radix, uint32(est))
	} else {
		r.Pow(radix, uint32(-est))
		mp.Pow(radix, uint32(-est))
		ml.Pow(radix, uint32(-est))
	}

	for r.Cmp(&s) >= 0 {
		s.MulSmall(radix)
		est++
	}

	for {
		t := r
		t.MulSmall(radix)
		if t.Cmp(&s) >= 0 {
			break
		}

		r = t
		mp.MulSmall(radix)
		ml.MulSmall(radix)
		est--
	}

	// QuoRem needs the top limb of the divisor in [2^25, 2^26).
	shift := uint((s.LeadingZeros() + 32 - 6) % 32)
	r.Shl(shift)
	s.Shl(shift)
	mp.Shl(shift)
	ml.Shl(shift)

	var digits []byte
	for {
		r.MulSmall(radix)
		mp.MulSmall(radix)
		ml.MulSmall(radix)

		d := r.QuoRem(&s)
		digits = append(digits, byte(d))

		// An even mantissa wins ties, so its boundaries are inclusive.
		t := r
		t.Add(&mp)
		low, high := r.Cmp(&ml), t.Cmp(&s)
		if even {
			low--
			high++
		}

		switch {
		case low < 0 && high > 0:
			if above(&r, &s, d) {
				digits, est = roundUp(digits, radix, est)
			}
		case high > 0:
			digits, est = roundUp(digits, radix, est)
		case low < 0:
		default:
			continue
		}

		break
	}

	b := decimal.Block{
		Digits: digits,
		Exp:    est - 1,
		Radix:  radix,
	}
	b.Trim()

	return b
}

// above reports whether 2R > S, or 2R == S with an odd last digit.
func above(r, s *bigint.Bigint, d uint32) bool {
	t := *r
	t.Shl(1)

	c := t.Cmp(s)

	return c > 0 || c == 0 && d&1 == 1
}

// roundUp increments the last digit, carrying through digits at radix-1.
func roundUp(digits []byte, radix uint32, est int32) ([]byte, int32) {
	for i := len(digits) - 1; i >= 0; i-- {
		if uint32(digits[i])+1 < radix {
			digits[i]++

			return digits[:i+1], est
		}
	}

	return append(digits[:0], 1), est + 1
}
