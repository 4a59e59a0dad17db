package parse

import (
	"fortio.org/safecast"

	"github.com/calebcase/lexical/cached"
	"github.com/calebcase/lexical/extfloat"
)

// errorHalf is half a unit of the last mantissa bit, in units of 1/8.
const errorHalf = 4

// moderate multiplies the mantissa by the cached power radix^exp, tracking the
// accumulated error. It returns the product, its nearest native rounding and
// whether the error bound rules out a different rounding.
func moderate[M extfloat.Mantissa[M]](mant M, exp int64, truncated bool, info *extfloat.Info, tbl *cached.Table[M]) (fp extfloat.ExtendedFloat[M], bits uint64, conclusive bool) {
	k, err := safecast.Conv[int32](exp)
	switch {
	case err != nil && exp < 0, err == nil && k < tbl.Min():
		return fp, 0, true
	case err != nil, k > tbl.Max():
		return fp, info.Inf(), true
	}

	large, small, smallInt, _ := tbl.Get(k)

	var errors uint64
	if truncated {
		errors += errorHalf
	}

	// Errors count units of the current mantissa, so every normalization
	// shift scales them.
	fp = extfloat.ExtendedFloat[M]{Mant: mant}
	if next, overflow := mant.MulAdd(smallInt, 0); !overflow {
		fp.Mant = next
		errors *= smallInt
	} else {
		errors <<= uint(fp.Normalize())
		fp = fp.Mul(small)
		errors += errorHalf
	}
	errors <<= uint(fp.Normalize())

	fp = fp.Mul(large)
	if errors > 0 {
		errors++
	}
	errors += errorHalf

	shift := fp.Normalize()
	errors <<= uint(shift)

	width := fp.Mant.Width()
	s := extfloat.RoundingShift(fp.Exp, width, info)
	switch {
	case s > width+1:
		// Below a quarter of the smallest denormal.
		return fp, 0, true
	case s >= width:
		return fp, extfloat.Round(fp, info, extfloat.NearestEven, false), false
	}

	var z M
	extra := fp.Mant.Sub(fp.Mant.Rsh(uint(s)).Lsh(uint(s)))
	half := z.FromUint64(1).Lsh(uint(s - 1))

	var diff M
	if extra.Cmp(half) >= 0 {
		diff = extra.Sub(half)
	} else {
		diff = half.Sub(extra)
	}

	bits = extfloat.Round(fp, info, extfloat.NearestEven, false)

	return fp, bits, diff.Cmp(z.FromUint64(errors)) >= 0
}
