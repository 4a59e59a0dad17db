package extfloat

// ExtendedFloat is Mant * 2^Exp.
type ExtendedFloat[M Mantissa[M]] struct {
	Mant M
	Exp  int32
}

// From64 returns the 64-bit extended float m * 2^e.
func From64(m uint64, e int32) ExtendedFloat[U64] {
	return ExtendedFloat[U64]{Mant: U64(m), Exp: e}
}

// FromFloat decodes the bits of a finite, non-negative native float into an
// unnormalized ExtendedFloat.
func FromFloat(bits uint64, info *Info) ExtendedFloat[U64] {
	m, e := info.Decode(bits)

	return From64(m, e)
}

// IsZero reports whether the mantissa is zero.
func (f ExtendedFloat[M]) IsZero() bool {
	return f.Mant.IsZero()
}

// Mul returns the approximate product f * g. Neither operand needs to be
// normalized, but the result only keeps the top Width bits of the product.
func (f ExtendedFloat[M]) Mul(g ExtendedFloat[M]) ExtendedFloat[M] {
	return ExtendedFloat[M]{
		Mant: f.Mant.MulRound(g.Mant),
		Exp:  f.Exp + g.Exp + int32(f.Mant.Width()),
	}
}

// Normalize shifts the mantissa left until its top bit is set and returns the
// shift. Zero is left unchanged.
func (f *ExtendedFloat[M]) Normalize() int {
	if f.Mant.IsZero() {
		return 0
	}

	s := f.Mant.LeadingZeros()
	if s != 0 {
		f.Mant = f.Mant.Lsh(uint(s))
		f.Exp -= int32(s)
	}

	return s
}

// Normalized returns a normalized copy of f.
func (f ExtendedFloat[M]) Normalized() ExtendedFloat[M] {
	f.Normalize()

	return f
}

// NormalizedBoundaries returns the points halfway to the neighboring native
// floats, normalized to a common exponent. f must be an unnormalized native
// value as returned by FromFloat. When f is a power of two above the smallest
// normal, the lower neighbor is half as far away.
func NormalizedBoundaries[M Mantissa[M]](f ExtendedFloat[M], info *Info) (lower, upper ExtendedFloat[M]) {
	var z M
	one := z.FromUint64(1)

	upper = ExtendedFloat[M]{
		Mant: f.Mant.Lsh(1).Add(one),
		Exp:  f.Exp - 1,
	}
	upper.Normalize()

	if f.Mant.Cmp(z.FromUint64(info.Hidden())) == 0 && f.Exp > info.DenormalExp() {
		lower = ExtendedFloat[M]{
			Mant: f.Mant.Lsh(2).Sub(one),
			Exp:  f.Exp - 2,
		}
	} else {
		lower = ExtendedFloat[M]{
			Mant: f.Mant.Lsh(1).Sub(one),
			Exp:  f.Exp - 1,
		}
	}

	lower.Mant = lower.Mant.Lsh(uint(lower.Exp - upper.Exp))
	lower.Exp = upper.Exp

	return lower, upper
}
