package write

import (
	"github.com/calebcase/lexical/cached"
	"github.com/calebcase/lexical/decimal"
	"github.com/calebcase/lexical/extfloat"
)

var pow10 = [20]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

type diyFp = extfloat.ExtendedFloat[extfloat.U64]

// grisu2 generates the decimal digits of a finite, positive float.
func grisu2(v uint64, info *extfloat.Info) decimal.Block {
	f := extfloat.FromFloat(v, info)
	wm, wp := extfloat.NormalizedBoundaries(f, info)

	// Pick 10^-k so the scaled upper boundary has a binary exponent in
	// [-60, -32].
	tbl := cached.Decimal()
	i := tbl.Search(-124 - wp.Exp)
	c := tbl.Large[i]
	k := -tbl.LargeExp(i)

	w := f.Normalized().Mul(c)
	hi := wp.Mul(c)
	lo := wm.Mul(c)
	lo.Mant++
	hi.Mant--

	digits, k := digitGen(w, hi, uint64(hi.Mant-lo.Mant), k)

	b := decimal.Block{
		Digits: digits,
		Exp:    int32(len(digits)) - 1 + k,
		Radix:  10,
	}
	b.Trim()

	return b
}

func digitGen(w, mp diyFp, delta uint64, k int32) ([]byte, int32) {
	shift := uint(-mp.Exp)
	one := uint64(1) << shift
	wpw := uint64(mp.Mant - w.Mant)

	p1 := uint32(uint64(mp.Mant) >> shift)
	p2 := uint64(mp.Mant) & (one - 1)

	buf := make([]byte, 0, 20)

	kappa := countDigits(p1)
	for kappa > 0 {
		p := uint32(pow10[kappa-1])
		d := p1 / p
		p1 %= p

		if d != 0 || len(buf) > 0 {
			buf = append(buf, byte(d))
		}
		kappa--

		rest := uint64(p1)<<shift + p2
		if rest <= delta {
			k += int32(kappa)
			grisuRound(buf, delta, rest, pow10[kappa]<<shift, wpw)

			return buf, k
		}
	}

	for {
		p2 *= 10
		delta *= 10

		d := byte(p2 >> shift)
		if d != 0 || len(buf) > 0 {
			buf = append(buf, d)
		}
		p2 &= one - 1
		kappa--

		if p2 < delta {
			k += int32(kappa)
			grisuRound(buf, delta, p2, one, wpw*pow10[-kappa])

			return buf, k
		}
	}
}

// grisuRound walks the last digit down toward w while it stays inside the
// interval and gets closer.
func grisuRound(buf []byte, delta, rest, tenKappa, wpw uint64) {
	last := len(buf) - 1
	for rest < wpw && delta-rest >= tenKappa &&
		(rest+tenKappa < wpw || wpw-rest > rest+tenKappa-wpw) {
		buf[last]--
		rest += tenKappa
	}
}

func countDigits(v uint32) int {
	n := 1
	for n < 10 && uint64(v) >= pow10[n] {
		n++
	}

	return n
}
