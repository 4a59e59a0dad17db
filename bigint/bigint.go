package bigint

import (
	"math/bits"

	"github.com/zeebo/errs"
)

// Error is the class of bigint precondition failures.
var Error = errs.Class("bigint")

// Capacity is the maximum number of limbs in a Bigint.
const Capacity = 128

// Bigint is a fixed-capacity unsigned integer.
type Bigint struct {
	limbs [Capacity]Limb
	n     int
}

// FromUint64 returns v as a Bigint.
func FromUint64(v uint64) Bigint {
	var x Bigint
	x.SetUint64(v)

	return x
}

// FromLimbs returns the Bigint with the little-endian limbs ls.
func FromLimbs(ls []Limb) Bigint {
	var x Bigint
	x.grow(len(ls))
	copy(x.limbs[:], ls)
	x.n = len(ls)
	x.trim()

	return x
}

// SetUint64 sets x to v.
func (x *Bigint) SetUint64(v uint64) *Bigint {
	x.clear()
	x.limbs[0] = Limb(v)
	x.limbs[1] = Limb(v >> limbBits)
	x.n = 2
	x.trim()

	return x
}

// Limbs returns the used limbs, least significant first. The slice aliases x.
func (x *Bigint) Limbs() []Limb {
	return x.limbs[:x.n]
}

// Len returns the number of used limbs.
func (x *Bigint) Len() int {
	return x.n
}

// IsZero reports whether x is zero.
func (x *Bigint) IsZero() bool {
	return x.n == 0
}

// BitLen returns the number of significant bits in x.
func (x *Bigint) BitLen() int {
	if x.n == 0 {
		return 0
	}

	return (x.n-1)*limbBits + bits.Len32(x.limbs[x.n-1])
}

// LeadingZeros returns the leading zero bits of the most significant limb. It
// is 32 for zero.
func (x *Bigint) LeadingZeros() int {
	if x.n == 0 {
		return limbBits
	}

	return bits.LeadingZeros32(x.limbs[x.n-1])
}

// TrailingZeros returns the number of trailing zero bits. It is 0 for zero.
func (x *Bigint) TrailingZeros() int {
	for i := 0; i < x.n; i++ {
		if x.limbs[i] != 0 {
			return i*limbBits + bits.TrailingZeros32(x.limbs[i])
		}
	}

	return 0
}

// Hi64 returns the 64 most significant bits of x, left justified so the top
// bit is set, and whether any lower bit was nonzero.
func (x *Bigint) Hi64() (hi uint64, truncated bool) {
	switch x.n {
	case 0:
		return 0, false
	case 1:
		v := uint64(x.limbs[0])
		return v << bits.LeadingZeros64(v), false
	case 2:
		v := uint64(x.limbs[1])<<limbBits | uint64(x.limbs[0])
		return v << bits.LeadingZeros64(v), false
	}

	s := uint(bits.LeadingZeros32(x.limbs[x.n-1]))
	top := uint64(x.limbs[x.n-1])<<limbBits | uint64(x.limbs[x.n-2])
	next := x.limbs[x.n-3]

	hi = top << s
	if s != 0 {
		hi |= uint64(next) >> (limbBits - s)
	}

	truncated = next<<s != 0
	for i := x.n - 4; i >= 0 && !truncated; i-- {
		truncated = x.limbs[i] != 0
	}

	return hi, truncated
}

// Cmp compares x and y, returning -1, 0 or +1.
func (x *Bigint) Cmp(y *Bigint) int {
	if x.n != y.n {
		if x.n < y.n {
			return -1
		}

		return +1
	}

	for i := x.n - 1; i >= 0; i-- {
		switch {
		case x.limbs[i] < y.limbs[i]:
			return -1
		case x.limbs[i] > y.limbs[i]:
			return +1
		}
	}

	return 0
}

// Add sets x to x + y.
func (x *Bigint) Add(y *Bigint) {
	m := max(x.n, y.n)
	x.grow(m)

	c := addVV(x.limbs[:m], x.limbs[:m], y.limbs[:m])
	x.n = m
	x.push(c)
}

// AddSmall sets x to x + v.
func (x *Bigint) AddSmall(v Limb) {
	c := addVW(x.limbs[:x.n], x.limbs[:x.n], v)
	x.push(c)
}

// Sub sets x to x - y. The caller guarantees x >= y.
func (x *Bigint) Sub(y *Bigint) {
	subVV(x.limbs[:x.n], x.limbs[:x.n], y.limbs[:x.n])
	x.trim()
}

// SubSmall sets x to x - v. The caller guarantees x >= v.
func (x *Bigint) SubSmall(v Limb) {
	subVW(x.limbs[:x.n], x.limbs[:x.n], v)
	x.trim()
}

// MulSmall sets x to x * v.
func (x *Bigint) MulSmall(v Limb) {
	c := mulAddVWW(x.limbs[:x.n], x.limbs[:x.n], v, 0)
	x.push(c)
	x.trim()
}

// Mul sets x to x * y.
func (x *Bigint) Mul(y *Bigint) {
	if x.n == 0 || y.n == 0 {
		x.clear()
		return
	}

	var z Bigint
	z.grow(x.n + y.n)
	z.n = x.n + y.n
	mul(z.limbs[:z.n], x.Limbs(), y.Limbs())
	z.trim()

	*x = z
}

// Pow sets x to x * base^exp using repeated squaring.
func (x *Bigint) Pow(base Limb, exp uint32) {
	if exp == 0 {
		return
	}

	p := FromUint64(uint64(base))
	for {
		if exp&1 == 1 {
			x.Mul(&p)
		}

		exp >>= 1
		if exp == 0 {
			return
		}

		p.Mul(&p)
	}
}

// Shl sets x to x << n.
func (x *Bigint) Shl(n uint) {
	if x.n == 0 || n == 0 {
		return
	}

	limbs, rem := int(n/limbBits), n%limbBits
	x.grow(x.n + limbs + 1)

	c := shlVU(x.limbs[:x.n], x.limbs[:x.n], rem)
	x.limbs[x.n] = c
	m := x.n + 1

	if limbs > 0 {
		copy(x.limbs[limbs:limbs+m], x.limbs[:m])
		for i := 0; i < limbs; i++ {
			x.limbs[i] = 0
		}
	}

	x.n = m + limbs
	x.trim()
}

// Shr sets x to x >> n and reports whether any nonzero bit was shifted out.
// With roundEven the result is rounded half to even instead of truncated.
func (x *Bigint) Shr(n uint, roundEven bool) (truncated bool) {
	if x.n == 0 || n == 0 {
		return false
	}

	// Below half of the lowest kept bit, rounds to zero either way.
	if int(n) > x.BitLen() {
		x.clear()

		return true
	}

	var halfBit, below bool
	if roundEven {
		halfBit = x.bit(n - 1)
		below = x.anyBelow(n - 1)
	} else {
		below = x.anyBelow(n)
	}

	limbs, rem := int(n/limbBits), n%limbBits
	if limbs > 0 {
		copy(x.limbs[:], x.limbs[limbs:x.n])
		for i := x.n - limbs; i < x.n; i++ {
			x.limbs[i] = 0
		}
		x.n -= limbs
	}

	shrVU(x.limbs[:x.n], x.limbs[:x.n], rem)
	x.trim()

	if !roundEven {
		return below
	}

	if halfBit && (below || x.n > 0 && x.limbs[0]&1 == 1) {
		x.AddSmall(1)
	}

	return halfBit || below
}

// Div sets x to x / y and returns the remainder. The caller guarantees y is
// not zero.
func (x *Bigint) Div(y *Bigint) (rem Bigint) {
	if y.n == 0 {
		panic(Error.New("division by zero"))
	}

	if x.Cmp(y) < 0 {
		rem = *x
		x.clear()

		return rem
	}

	var q Bigint
	q.n = x.n - y.n + 1
	r := divmod(q.limbs[:q.n], x.Limbs(), y.Limbs())
	q.trim()

	rem = FromLimbs(r)
	*x = q

	return rem
}

// QuoRem divides x by y in place, leaving the remainder in x, and returns the
// quotient. The caller guarantees the top limb of y is in [2^25, 2^26) and
// x < 36*y, so the estimate from the top limbs is corrected at most once.
func (x *Bigint) QuoRem(y *Bigint) Limb {
	n := y.n
	if x.n < n {
		return 0
	}
	if x.n > n {
		panic(Error.New("quorem: dividend too large: %d > %d limbs", x.n, n))
	}

	q := x.limbs[n-1] / (y.limbs[n-1] + 1)
	if q != 0 {
		t := *y
		t.MulSmall(q)
		x.Sub(&t)
	}

	if x.Cmp(y) >= 0 {
		q++
		x.Sub(y)
	}

	return q
}

func (x *Bigint) bit(i uint) bool {
	l := int(i / limbBits)
	if l >= x.n {
		return false
	}

	return x.limbs[l]>>(i%limbBits)&1 == 1
}

// anyBelow reports whether any of the n lowest bits are set.
func (x *Bigint) anyBelow(n uint) bool {
	l, rem := int(n/limbBits), n%limbBits
	for i := 0; i < l && i < x.n; i++ {
		if x.limbs[i] != 0 {
			return true
		}
	}

	if rem != 0 && l < x.n {
		return x.limbs[l]&(1<<rem-1) != 0
	}

	return false
}

func (x *Bigint) push(c Limb) {
	if c == 0 {
		return
	}

	x.grow(x.n + 1)
	x.limbs[x.n] = c
	x.n++
}

func (x *Bigint) grow(n int) {
	if n > Capacity {
		panic(Error.New("capacity exceeded: %d > %d limbs", n, Capacity))
	}
}

func (x *Bigint) trim() {
	for x.n > 0 && x.limbs[x.n-1] == 0 {
		x.n--
	}
}

func (x *Bigint) clear() {
	for i := 0; i < x.n; i++ {
		x.limbs[i] = 0
	}
	x.n = 0
}
