package extfloat

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

// Mantissa is the capability set of an unsigned fixed-width mantissa. All
// operations wrap modulo 2^Width except where noted. Shifts by Width or more
// produce zero.
type Mantissa[M any] interface {
	Width() int
	IsZero() bool
	LeadingZeros() int
	Lsh(n uint) M
	Rsh(n uint) M
	Add(y M) M
	Sub(y M) M
	Cmp(y M) int

	// MulRound returns the high Width bits of the full product, rounded by
	// the most significant dropped bit.
	MulRound(y M) M

	// MulAdd returns m*mul + add and whether the result overflowed.
	MulAdd(mul, add uint64) (M, bool)

	FromUint64(v uint64) M
	FromWords(hi, lo uint64) M
	Uint64() uint64
}

// U64 is a 64-bit mantissa.
type U64 uint64

var _ Mantissa[U64] = U64(0)

func (U64) Width() int { return 64 }

func (m U64) IsZero() bool { return m == 0 }

func (m U64) LeadingZeros() int { return bits.LeadingZeros64(uint64(m)) }

func (m U64) Lsh(n uint) U64 { return m << n }

func (m U64) Rsh(n uint) U64 { return m >> n }

func (m U64) Add(y U64) U64 { return m + y }

func (m U64) Sub(y U64) U64 { return m - y }

func (m U64) Cmp(y U64) int {
	switch {
	case m < y:
		return -1
	case m > y:
		return +1
	}

	return 0
}

func (m U64) MulRound(y U64) U64 {
	hi, lo := bits.Mul64(uint64(m), uint64(y))

	return U64(hi + lo>>63)
}

func (m U64) MulAdd(mul, add uint64) (U64, bool) {
	hi, lo := bits.Mul64(uint64(m), mul)
	lo, c := bits.Add64(lo, add, 0)

	return U64(lo), hi != 0 || c != 0
}

func (U64) FromUint64(v uint64) U64 { return U64(v) }

// FromWords ignores hi.
func (U64) FromWords(hi, lo uint64) U64 { return U64(lo) }

func (m U64) Uint64() uint64 { return uint64(m) }

// U128 is a 128-bit mantissa.
type U128 int128.Uint128

var _ Mantissa[U128] = U128{}

func (m U128) u() int128.Uint128 { return int128.Uint128(m) }

func (U128) Width() int { return 128 }

func (m U128) IsZero() bool { return m.H == 0 && m.L == 0 }

func (m U128) LeadingZeros() int {
	if m.H != 0 {
		return bits.LeadingZeros64(m.H)
	}

	return 64 + bits.LeadingZeros64(m.L)
}

func (m U128) Lsh(n uint) U128 {
	switch {
	case n == 0:
		return m
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{H: m.L << (n - 64)}
	}

	return U128{H: m.H<<n | m.L>>(64-n), L: m.L << n}
}

func (m U128) Rsh(n uint) U128 {
	switch {
	case n == 0:
		return m
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{L: m.H >> (n - 64)}
	}

	return U128{H: m.H >> n, L: m.L>>n | m.H<<(64-n)}
}

func (m U128) Add(y U128) U128 { return U128(m.u().Add(y.u())) }

func (m U128) Sub(y U128) U128 { return U128(m.u().Sub(y.u())) }

func (m U128) Cmp(y U128) int { return m.u().Cmp(y.u()) }

func (m U128) MulRound(y U128) U128 {
	hi0, _ := bits.Mul64(m.L, y.L)
	hi1, lo1 := bits.Mul64(m.L, y.H)
	hi2, lo2 := bits.Mul64(m.H, y.L)
	hi3, lo3 := bits.Mul64(m.H, y.H)

	w1, c1 := bits.Add64(hi0, lo1, 0)
	w1, c2 := bits.Add64(w1, lo2, 0)
	carry := c1 + c2

	w2, c1 := bits.Add64(hi1, hi2, 0)
	w2, c2 = bits.Add64(w2, lo3, 0)
	w3 := hi3 + c1 + c2
	w2, c1 = bits.Add64(w2, carry, 0)
	w3 += c1

	if w1>>63 == 1 {
		w2, c1 = bits.Add64(w2, 1, 0)
		w3 += c1
	}

	return U128{H: w3, L: w2}
}

func (m U128) MulAdd(mul, add uint64) (U128, bool) {
	hiL, loL := bits.Mul64(m.L, mul)
	hiH, loH := bits.Mul64(m.H, mul)

	l, c := bits.Add64(loL, add, 0)
	h, c := bits.Add64(loH, hiL, c)

	return U128{H: h, L: l}, hiH != 0 || c != 0
}

func (U128) FromUint64(v uint64) U128 { return U128{L: v} }

func (U128) FromWords(hi, lo uint64) U128 { return U128{H: hi, L: lo} }

func (m U128) Uint64() uint64 { return m.L }
