package bigint

import "math/bits"

// divmod sets q = u / v and returns u % v. It implements Knuth's algorithm D
// over 32-bit limbs. v must be trimmed and non-zero, len(u) >= len(v), q must
// hold len(u)-len(v)+1 limbs. u is not modified.
func divmod(q, u, v []Limb) []Limb {
	n := len(v)
	if n == 1 {
		return []Limb{divW(q, u, v[0])}
	}

	m := len(u) - n

	s := uint(bits.LeadingZeros32(v[n-1]))
	vn := make([]Limb, n)
	shlVU(vn, v, s)

	un := make([]Limb, len(u)+1)
	un[len(u)] = shlVU(un[:len(u)], u, s)

	const b = 1 << limbBits

	for j := m; j >= 0; j-- {
		num := uint64(un[j+n])<<limbBits | uint64(un[j+n-1])
		qhat := num / uint64(vn[n-1])
		rhat := num % uint64(vn[n-1])

		for qhat >= b || qhat*uint64(vn[n-2]) > rhat<<limbBits|uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat >= b {
				break
			}
		}

		var k int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - k - int64(p&(b-1))
			un[i+j] = Limb(t)
			k = int64(p>>limbBits) - t>>limbBits
		}
		t := int64(un[j+n]) - k
		un[j+n] = Limb(t)

		q[j] = Limb(qhat)
		if t < 0 {
			q[j]--

			var c uint64
			for i := 0; i < n; i++ {
				c += uint64(un[i+j]) + uint64(vn[i])
				un[i+j] = Limb(c)
				c >>= limbBits
			}
			un[j+n] += Limb(c)
		}
	}

	r := make([]Limb, n)
	shrVU(r, un[:n], s)

	return r
}

// divW sets q = u / d and returns u % d.
func divW(q, u []Limb, d Limb) Limb {
	var r uint64
	for i := len(u) - 1; i >= 0; i-- {
		t := r<<limbBits | uint64(u[i])
		if i < len(q) {
			q[i] = Limb(t / uint64(d))
		}
		r = t % uint64(d)
	}

	return Limb(r)
}
