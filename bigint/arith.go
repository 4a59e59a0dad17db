package bigint

import "math/bits"

// Limb is one 32-bit digit of a Bigint.
type Limb = uint32

const limbBits = 32

// z = x + y, returns carry. len(z) == len(x) == len(y).
func addVV(z, x, y []Limb) (c Limb) {
	for i := range z {
		t := uint64(x[i]) + uint64(y[i]) + uint64(c)
		z[i] = Limb(t)
		c = Limb(t >> limbBits)
	}

	return c
}

// z = x - y, returns borrow. len(z) == len(x) == len(y).
func subVV(z, x, y []Limb) (b Limb) {
	for i := range z {
		zi, bo := bits.Sub32(x[i], y[i], b)
		z[i] = zi
		b = bo
	}

	return b
}

// z = x + y, returns carry.
func addVW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := range z {
		zi, co := bits.Add32(x[i], c, 0)
		z[i] = zi
		c = co
	}

	return c
}

// z = x - y, returns borrow.
func subVW(z, x []Limb, y Limb) (b Limb) {
	b = y
	for i := range z {
		zi, bo := bits.Sub32(x[i], b, 0)
		z[i] = zi
		b = bo
	}

	return b
}

// z = x*y + r, returns carry.
func mulAddVWW(z, x []Limb, y, r Limb) (c Limb) {
	c = r
	for i := range z {
		t := uint64(x[i])*uint64(y) + uint64(c)
		z[i] = Limb(t)
		c = Limb(t >> limbBits)
	}

	return c
}

// z += x*y, returns carry. len(z) == len(x).
func addMulVVW(z, x []Limb, y Limb) (c Limb) {
	for i := range z {
		t := uint64(x[i])*uint64(y) + uint64(z[i]) + uint64(c)
		z[i] = Limb(t)
		c = Limb(t >> limbBits)
	}

	return c
}

// z = x << s, returns the bits shifted out. 0 <= s < 32 and len(z) == len(x).
func shlVU(z, x []Limb, s uint) (c Limb) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}

	n := len(z)
	c = x[n-1] >> (limbBits - s)
	for i := n - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>(limbBits-s)
	}
	z[0] = x[0] << s

	return c
}

// z = x >> s, returns the bits shifted out (left justified). 0 <= s < 32 and
// len(z) == len(x).
func shrVU(z, x []Limb, s uint) (c Limb) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}

	n := len(z)
	c = x[0] << (limbBits - s)
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<(limbBits-s)
	}
	z[n-1] = x[n-1] >> s

	return c
}

// trimmed returns x without its most significant zero limbs.
func trimmed(x []Limb) []Limb {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}

	return x[:n]
}

// addAt adds x into z starting at limb offset off, propagating the carry.
// The sum must fit in z.
func addAt(z, x []Limb, off int) {
	x = trimmed(x)
	if len(x) == 0 {
		return
	}

	c := addVV(z[off:off+len(x)], z[off:off+len(x)], x)
	for i := off + len(x); c != 0 && i < len(z); i++ {
		z[i], c = bits.Add32(z[i], c, 0)
	}

	if c != 0 {
		panic(Error.New("carry out of product"))
	}
}

// subFrom subtracts x from z in place. z must be at least x.
func subFrom(z, x []Limb) {
	x = trimmed(x)
	if len(x) == 0 {
		return
	}

	b := subVV(z[:len(x)], z[:len(x)], x)
	for i := len(x); b != 0 && i < len(z); i++ {
		z[i], b = bits.Sub32(z[i], b, 0)
	}
}
