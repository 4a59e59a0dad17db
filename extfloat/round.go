package extfloat

// Mode selects how Round treats the dropped bits.
type Mode uint8

// Rounding modes.
const (
	NearestEven Mode = iota
	TowardZero
)

// RoundingShift returns how many low bits of a normalized mantissa of the
// given width and exponent are dropped when converting to the native format.
// It exceeds width when the value is below the smallest denormal.
func RoundingShift(exp int32, width int, info *Info) int {
	shift := int64(width) - 1 - int64(info.MantBits)

	e := int64(exp) + shift
	if d := int64(info.DenormalExp()); e < d {
		shift += d - e
	}

	if shift > int64(width)+2 {
		return width + 2
	}

	return int(shift)
}

// Round converts f to the native bit pattern. sticky marks nonzero bits below
// the mantissa, which break ties upward under NearestEven.
func Round[M Mantissa[M]](f ExtendedFloat[M], info *Info, mode Mode, sticky bool) uint64 {
	if f.Mant.IsZero() {
		return 0
	}

	f.Normalize()

	width := f.Mant.Width()
	shift := RoundingShift(f.Exp, width, info)
	if shift > width {
		return 0
	}

	var z M
	one := z.FromUint64(1)

	q := f.Mant.Rsh(uint(shift))
	if mode == NearestEven {
		rem := f.Mant.Sub(q.Lsh(uint(shift)))
		half := one.Lsh(uint(shift - 1))

		c := rem.Cmp(half)
		if c > 0 || c == 0 && (sticky || q.Uint64()&1 == 1) {
			q = q.Add(one)
		}
	}

	exp := int64(f.Exp) + int64(shift)
	if exp > int64(info.MaxExp())+1 {
		return info.Inf()
	}

	mant := q.Uint64()
	if mant == 2*info.Hidden() {
		mant >>= 1
		exp++
	}

	return info.Encode(mant, exp)
}
