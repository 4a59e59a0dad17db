package bigint

// karatsubaCutoff is the shorter operand length, in limbs, at which mul
// switches from schoolbook to Karatsuba.
const karatsubaCutoff = 32

// mul sets z = x * y. z must be zero and len(z) >= len(x)+len(y).
func mul(z, x, y []Limb) {
	x, y = trimmed(x), trimmed(y)
	if len(x) < len(y) {
		x, y = y, x
	}

	switch {
	case len(y) == 0:
		return
	case len(y) < karatsubaCutoff:
		basicMul(z, x, y)
	case len(x) >= 2*len(y):
		unevenMul(z, x, y)
	default:
		karatsuba(z, x, y)
	}
}

// basicMul is the schoolbook product. z must be zero.
func basicMul(z, x, y []Limb) {
	for i, d := range y {
		if d == 0 {
			continue
		}

		z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
	}
}

// unevenMul multiplies a long x by a short y by splitting x into chunks of
// len(y) limbs. z must be zero.
func unevenMul(z, x, y []Limb) {
	tmp := make([]Limb, 2*len(y))
	for off := 0; off < len(x); off += len(y) {
		end := min(off+len(y), len(x))

		clear(tmp)
		mul(tmp, x[off:end], y)
		addAt(z, tmp, off)
	}
}

// karatsuba splits both operands at half of x. It requires
// len(x) >= len(y) > len(x)/2. z must be zero.
func karatsuba(z, x, y []Limb) {
	m := len(x) / 2

	x0, x1 := x[:m], x[m:]
	y0, y1 := y[:m], y[m:]

	z0 := make([]Limb, 2*m)
	mul(z0, x0, y0)

	z2 := make([]Limb, len(x1)+len(y1))
	mul(z2, x1, y1)

	xs := make([]Limb, len(x1)+1)
	copy(xs, x1)
	addAt(xs, x0, 0)

	ys := make([]Limb, max(len(y1), m)+1)
	copy(ys, y1)
	addAt(ys, y0, 0)

	z1 := make([]Limb, len(xs)+len(ys))
	mul(z1, xs, ys)
	subFrom(z1, z0)
	subFrom(z1, z2)

	addAt(z, z0, 0)
	addAt(z, z1, m)
	addAt(z, z2, 2*m)
}
