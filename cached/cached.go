package cached

import (
	"math"
	"math/big"
	"math/bits"
	"sort"
	"sync"

	"github.com/zeebo/errs"

	"github.com/calebcase/lexical/extfloat"
)

// Error is the class of table lookup failures.
var Error = errs.Class("cached")

// Radix bounds.
const (
	MinRadix = 2
	MaxRadix = 36
)

// maxStepValue bounds r^Step so small mantissas times a small power stay
// far from overflow.
const maxStepValue = 1 << 27

// Table is a cached power table for one radix and mantissa width.
type Table[M extfloat.Mantissa[M]] struct {
	Radix uint32
	Step  int32
	Bias  int32

	Large    []extfloat.ExtendedFloat[M]
	Small    []extfloat.ExtendedFloat[M]
	SmallInt []uint64
}

// Min returns the smallest exponent in the table.
func (t *Table[M]) Min() int32 {
	return -t.Bias
}

// Max returns the largest exponent in the table.
func (t *Table[M]) Max() int32 {
	return -t.Bias + t.Step*int32(len(t.Large)) - 1
}

// Get returns the large and small factors of r^k. ok is false when k is
// outside the table.
func (t *Table[M]) Get(k int32) (large, small extfloat.ExtendedFloat[M], smallInt uint64, ok bool) {
	if k < t.Min() || k > t.Max() {
		return large, small, 0, false
	}

	i, j := (k+t.Bias)/t.Step, (k+t.Bias)%t.Step

	return t.Large[i], t.Small[j], t.SmallInt[j], true
}

// LargeExp returns the radix exponent of Large[i].
func (t *Table[M]) LargeExp(i int) int32 {
	return int32(i)*t.Step - t.Bias
}

// Search returns the index of the first large power whose binary exponent is
// at least e, or len(Large) if there is none.
func (t *Table[M]) Search(e int32) int {
	return sort.Search(len(t.Large), func(i int) bool {
		return t.Large[i].Exp >= e
	})
}

var (
	tables64  [MaxRadix + 1]func() *Table[extfloat.U64]
	tables128 [MaxRadix + 1]func() *Table[extfloat.U128]
)

func init() {
	for r := uint32(MinRadix); r <= MaxRadix; r++ {
		tables64[r] = sync.OnceValue(func() *Table[extfloat.U64] {
			return build[extfloat.U64](r)
		})
		tables128[r] = sync.OnceValue(func() *Table[extfloat.U128] {
			return build[extfloat.U128](r)
		})
	}
}

// For64 returns the 64-bit table for radix r.
func For64(r uint32) *Table[extfloat.U64] {
	if r < MinRadix || r > MaxRadix {
		panic(Error.New("invalid radix: %d", r))
	}

	return tables64[r]()
}

// For128 returns the 128-bit table for radix r.
func For128(r uint32) *Table[extfloat.U128] {
	if r < MinRadix || r > MaxRadix {
		panic(Error.New("invalid radix: %d", r))
	}

	return tables128[r]()
}

// Decimal returns the 64-bit table for radix 10.
func Decimal() *Table[extfloat.U64] {
	return For64(10)
}

// Step returns the largest s with r^s <= 2^27.
func Step(r uint32) int32 {
	s, v := int32(0), uint64(1)
	for v*uint64(r) <= maxStepValue {
		v *= uint64(r)
		s++
	}

	return s
}

func build[M extfloat.Mantissa[M]](r uint32) *Table[M] {
	var z M
	width := z.Width()

	step := Step(r)

	// Every mantissa below 2^width times r^k for k outside the range is
	// certainly zero or infinite, for both native widths.
	reach := int32(math.Ceil(float64(1075+width+1) / math.Log2(float64(r))))
	lo, hi := -reach-step, reach+step

	t := &Table[M]{
		Radix: r,
		Step:  step,
		Bias:  -lo,
	}

	for k := lo; k <= hi; k += step {
		t.Large = append(t.Large, power[M](r, k, width))
	}

	for j := int32(0); j < step; j++ {
		t.Small = append(t.Small, power[M](r, j, width))
		t.SmallInt = append(t.SmallInt, pow(uint64(r), j))
	}

	return t
}

func pow(r uint64, k int32) uint64 {
	v := uint64(1)
	for ; k > 0; k-- {
		v *= r
	}

	return v
}

// power returns r^k as a normalized extended float rounded to nearest.
func power[M extfloat.Mantissa[M]](r uint32, k int32, width int) extfloat.ExtendedFloat[M] {
	v := new(big.Int).Exp(big.NewInt(int64(r)), big.NewInt(int64(abs(k))), nil)
	bl := v.BitLen()

	var mant *big.Int
	var exp int

	if k >= 0 {
		if bl <= width {
			mant = v.Lsh(v, uint(width-bl))
			exp = bl - width
		} else {
			mant, exp = roundShift(v, uint(bl-width)), bl-width
		}
	} else {
		// 2^s / r^-k with s chosen so the quotient has width bits.
		s := width - 1 + bl
		mant = roundDiv(s, v)
		if mant.BitLen() > width {
			s--
			mant = roundDiv(s, v)
		}
		exp = -s
	}

	if mant.BitLen() > width {
		mant.Rsh(mant, 1)
		exp++
	}

	var z M
	lo := new(big.Int).And(mant, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	hi := new(big.Int).Rsh(mant, 64).Uint64()

	f := extfloat.ExtendedFloat[M]{
		Mant: z.FromWords(hi, lo),
		Exp:  int32(exp),
	}
	f.Normalize()

	return f
}

// roundShift returns v >> n rounded half up.
func roundShift(v *big.Int, n uint) *big.Int {
	half := new(big.Int).Lsh(big.NewInt(1), n-1)
	q := new(big.Int).Add(v, half)

	return q.Rsh(q, n)
}

// roundDiv returns 2^s / v rounded half up.
func roundDiv(s int, v *big.Int) *big.Int {
	num := new(big.Int).Lsh(big.NewInt(1), uint(s))
	num.Add(num, new(big.Int).Rsh(v, 1))

	return num.Quo(num, v)
}

func abs(k int32) int32 {
	if k < 0 {
		return -k
	}

	return k
}

// ExactExponent returns the largest k for which r^k is exactly representable
// with mantBits+1 bits of mantissa, ignoring the factors of two.
func ExactExponent(r uint32, mantBits uint) int32 {
	odd := uint64(r) >> bits.TrailingZeros32(r)
	if odd == 1 {
		return math.MaxInt32
	}

	limit := uint64(1) << (mantBits + 1)

	k, v := int32(0), uint64(1)
	for {
		hi, lo := bits.Mul64(v, odd)
		if hi != 0 || lo > limit {
			return k
		}

		v = lo
		k++
	}
}

// exactDigits is the number of radix r digits below which a value and the
// halfway point both fit a 128-bit ratio.
var exactDigits = [MaxRadix + 1]int{
	3: 78, 5: 53, 6: 47, 7: 43, 9: 38, 10: 36, 11: 35, 12: 33, 13: 32, 14: 31,
	15: 30, 17: 29, 18: 28, 19: 28, 20: 27, 21: 27, 22: 26, 23: 26, 24: 25,
	25: 25, 26: 25, 27: 24, 28: 24, 29: 24, 30: 24, 31: 23, 33: 23, 34: 23,
	35: 22, 36: 22,
}

// ExactDigits returns the digit count threshold of the 128-bit bigcomp ratio
// for radix r. It is zero for powers of two, which never need bigcomp.
func ExactDigits(r uint32) int {
	if r > MaxRadix {
		return 0
	}

	return exactDigits[r]
}
