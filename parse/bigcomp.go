package parse

import (
	"math"

	"github.com/shogo82148/int128"

	"github.com/calebcase/lexical/bigint"
	"github.com/calebcase/lexical/cached"
	"github.com/calebcase/lexical/extfloat"
	"github.com/calebcase/lexical/options"
)

// ratioHeadroom keeps the 128-bit divisor small enough that a remainder
// times any radix still fits.
const ratioHeadroom = 6

// digitSource generates the digits of a ratio, most significant first.
type digitSource interface {
	// First returns the leading digit, which may exceed the radix when the
	// ratio is at least radix.
	First() uint32
	Next() uint32
	Done() bool
}

// bigcomp resolves a value the extended tier could not: first by retrying
// with a 128-bit mantissa, then by comparing the input digits against the
// halfway point above the value rounded toward zero.
func bigcomp(num *Number, info *extfloat.Info, f *options.Format) uint64 {
	mant, exp, truncated := accumulate[extfloat.U128](num, f)

	fp, bits, ok := moderate(mant, exp, truncated, info, cached.For128(f.Radix))
	if ok {
		return bits
	}

	b := extfloat.Round(fp, info, extfloat.TowardZero, false)
	if b == info.Inf() {
		return b
	}

	m, e := info.Decode(b)
	sci, first, count := shape(num, f)

	var src digitSource
	if count <= cached.ExactDigits(f.Radix) {
		if r, ok := newSmallRatio(m, e, sci, f.Radix); ok {
			src = r
		}
	}
	if src == nil {
		src = newBigRatio(m, e, sci, f.Radix)
	}

	in := mantissaDigits(num, f)
	for i := 0; i < first; i++ {
		in.Next()
	}

	switch c := compareDigits(in, count, src); {
	case c > 0:
		return b + 1
	case c < 0:
		return b
	}

	if b&1 == 0 {
		return b
	}

	return b + 1
}

// compareDigits compares count input digits against the generated digits.
func compareDigits(in *digits, count int, src digitSource) int {
	in.Next()
	if c := cmpDigit(in.Digit(), src.First()); c != 0 {
		return c
	}

	for i := 1; i < count; i++ {
		if src.Done() {
			return +1
		}

		d := src.Next()
		in.Next()

		if c := cmpDigit(in.Digit(), d); c != 0 {
			return c
		}
	}

	if !src.Done() {
		return -1
	}

	return 0
}

func cmpDigit(x, y uint32) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return +1
	}

	return 0
}

// smallRatio generates the digits of num/den with 128-bit integers.
type smallRatio struct {
	num, den extfloat.U128
	radix    uint64
}

// newSmallRatio builds (2m+1) * 2^(e-1) / radix^sci. ok is false when any
// part does not fit.
func newSmallRatio(m uint64, e int32, sci int64, radix uint32) (r *smallRatio, ok bool) {
	r = &smallRatio{
		num:   extfloat.U128{L: 2*m + 1},
		den:   extfloat.U128{L: 1},
		radix: uint64(radix),
	}

	shift := int64(e) - 1
	if shift >= 0 {
		if int64(r.num.LeadingZeros()) <= shift {
			return nil, false
		}
		r.num = r.num.Lsh(uint(shift))
	} else {
		if -shift > 127-ratioHeadroom {
			return nil, false
		}
		r.den = r.den.Lsh(uint(-shift))
	}

	target := &r.den
	if sci < 0 {
		target = &r.num
	}

	for k := abs64(sci); k > 0; k-- {
		next, overflow := target.MulAdd(r.radix, 0)
		if overflow {
			return nil, false
		}
		*target = next
	}

	if r.den.LeadingZeros() < ratioHeadroom {
		return nil, false
	}

	return r, true
}

func (r *smallRatio) divmod() uint32 {
	q, rem := int128.Uint128(r.num).DivMod(int128.Uint128(r.den))
	r.num = extfloat.U128(rem)

	if q.H != 0 || q.L > math.MaxUint32 {
		return math.MaxUint32
	}

	return uint32(q.L)
}

func (r *smallRatio) First() uint32 {
	return r.divmod()
}

func (r *smallRatio) Next() uint32 {
	r.num, _ = r.num.MulAdd(r.radix, 0)

	return r.divmod()
}

func (r *smallRatio) Done() bool {
	return r.num.IsZero()
}

// bigRatio generates the digits of num/den with big integers.
type bigRatio struct {
	num, den bigint.Bigint
	radix    bigint.Limb
}

func newBigRatio(m uint64, e int32, sci int64, radix uint32) *bigRatio {
	r := &bigRatio{radix: radix}
	r.num.SetUint64(2*m + 1)
	r.den.SetUint64(1)

	shift := int64(e) - 1
	if shift >= 0 {
		r.num.Shl(uint(shift))
	} else {
		r.den.Shl(uint(-shift))
	}

	if sci >= 0 {
		r.den.Pow(radix, uint32(sci))
	} else {
		r.num.Pow(radix, uint32(-sci))
	}

	// QuoRem needs the top limb of the divisor in [2^25, 2^26).
	s := uint((r.den.LeadingZeros() + 32 - 6) % 32)
	r.num.Shl(s)
	r.den.Shl(s)

	return r
}

func (r *bigRatio) First() uint32 {
	rem := r.num.Div(&r.den)

	d := uint32(math.MaxUint32)
	switch q := r.num.Limbs(); len(q) {
	case 0:
		d = 0
	case 1:
		d = q[0]
	}

	r.num = rem

	return d
}

func (r *bigRatio) Next() uint32 {
	r.num.MulSmall(r.radix)

	return r.num.QuoRem(&r.den)
}

func (r *bigRatio) Done() bool {
	return r.num.IsZero()
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
