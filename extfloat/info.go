package extfloat

import "math"

// Info describes a native binary float format.
type Info struct {
	MantBits uint
	ExpBits  uint
	Bias     int
}

// Native float formats.
var (
	Float32 = &Info{23, 8, -127}
	Float64 = &Info{52, 11, -1023}
)

// Hidden returns the implicit leading mantissa bit of normal floats.
func (i *Info) Hidden() uint64 {
	return 1 << i.MantBits
}

// DenormalExp returns the binary exponent of the denormal range, where the
// value is mant * 2^DenormalExp with mant < Hidden.
func (i *Info) DenormalExp() int32 {
	return int32(i.Bias + 1 - int(i.MantBits))
}

// MaxExp returns the exponent of the largest finite float.
func (i *Info) MaxExp() int32 {
	return int32(1<<i.ExpBits-2+i.Bias) - int32(i.MantBits)
}

// Inf returns the positive infinity bit pattern.
func (i *Info) Inf() uint64 {
	return (1<<i.ExpBits - 1) << i.MantBits
}

// NaN returns the quiet NaN bit pattern.
func (i *Info) NaN() uint64 {
	return i.Inf() | 1<<(i.MantBits-1)
}

// SignBit returns the sign bit mask.
func (i *Info) SignBit() uint64 {
	return 1 << (i.MantBits + i.ExpBits)
}

// Decode splits the bit pattern of a finite, non-negative float into its
// mantissa (with the hidden bit for normals) and binary exponent.
func (i *Info) Decode(bits uint64) (mant uint64, exp int32) {
	biased := bits >> i.MantBits & (1<<i.ExpBits - 1)
	mant = bits & (i.Hidden() - 1)

	if biased == 0 {
		return mant, i.DenormalExp()
	}

	return mant | i.Hidden(), int32(biased) + int32(i.Bias) - int32(i.MantBits)
}

// Encode builds the bit pattern for mant * 2^exp. mant must be below
// 2*Hidden, and exp must equal DenormalExp when mant is below Hidden. Exponents
// past MaxExp produce infinity.
func (i *Info) Encode(mant uint64, exp int64) uint64 {
	if mant < i.Hidden() {
		return mant
	}

	biased := exp - int64(i.DenormalExp()) + 1
	if biased >= 1<<i.ExpBits-1 {
		return i.Inf()
	}

	return uint64(biased)<<i.MantBits | mant&(i.Hidden()-1)
}

// IsSpecial reports whether bits is an infinity or NaN.
func (i *Info) IsSpecial(bits uint64) bool {
	return bits&i.Inf() == i.Inf()
}

// Bits returns the bit pattern of f, which must be a float32 for Float32.
func (i *Info) Bits(f float64) uint64 {
	if i == Float32 {
		return uint64(math.Float32bits(float32(f)))
	}

	return math.Float64bits(f)
}

// FromBits returns the float64 value of bits, widening float32 patterns.
func (i *Info) FromBits(bits uint64) float64 {
	if i == Float32 {
		return float64(math.Float32frombits(uint32(bits)))
	}

	return math.Float64frombits(bits)
}
