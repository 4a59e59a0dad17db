package integer

import (
	"math/bits"
	"unsafe"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"

	"github.com/calebcase/lexical/lexerr"
	"github.com/calebcase/lexical/options"
)

// Error is the class of integer codec failures.
var Error = errs.Class("integer")

// Digits are the output digits for radix up to 36.
const Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// limits returns whether T is signed and its size in bits.
func limits[T constraints.Integer]() (signed bool, size uint) {
	var z T
	z--

	return z < 0, uint(unsafe.Sizeof(z)) * 8
}

// Parse parses all of b as a T in the given radix.
func Parse[T constraints.Integer](b []byte, radix uint32) (v T, err error) {
	v, n, err := ParsePartial[T](b, radix)
	if err != nil {
		return v, err
	}

	if n != len(b) {
		return 0, lexerr.New(lexerr.InvalidDigit, n)
	}

	return v, nil
}

// ParsePartial parses the longest integer prefix of b and returns the number
// of bytes consumed.
func ParsePartial[T constraints.Integer](b []byte, radix uint32) (v T, n int, err error) {
	if !options.Supported(radix) {
		return 0, 0, Error.Wrap(oops.Trace(options.ErrInvalidRadix))
	}

	signed, size := limits[T]()

	if len(b) == 0 {
		return 0, 0, lexerr.New(lexerr.Empty, 0)
	}

	i, neg := 0, false
	switch b[0] {
	case '+':
		i++
	case '-':
		if !signed {
			return 0, 0, lexerr.New(lexerr.InvalidDigit, 0)
		}

		i++
		neg = true
	}

	if i == len(b) {
		return 0, i, lexerr.New(lexerr.Empty, i)
	}

	limit := uint64(1)<<size - 1
	if signed {
		limit = uint64(1)<<(size-1) - 1
		if neg {
			limit++
		}
	}

	start := i
	acc, saturated := uint64(0), false

	for ; i < len(b); i++ {
		d, ok := options.DigitValue(b[i], radix)
		if !ok {
			break
		}

		if saturated {
			continue
		}

		hi, lo := bits.Mul64(acc, uint64(radix))
		lo, c := bits.Add64(lo, uint64(d), 0)
		if hi != 0 || c != 0 || lo > limit {
			saturated = true
			continue
		}

		acc = lo
	}

	if i == start {
		return 0, i, lexerr.New(lexerr.InvalidDigit, i)
	}

	if saturated {
		if neg {
			return -T(limit), i, lexerr.New(lexerr.Underflow, 0)
		}

		return T(limit), i, lexerr.New(lexerr.Overflow, 0)
	}

	if neg {
		return -T(acc), i, nil
	}

	return T(acc), i, nil
}

// magnitude returns |v| and whether v is negative.
func magnitude[T constraints.Integer](v T) (mag uint64, neg bool) {
	if v < 0 {
		return uint64(-int64(v)), true
	}

	return uint64(v), false
}

// BufferSize returns the longest output for T in the given radix.
func BufferSize[T constraints.Integer](radix uint32) int {
	signed, size := limits[T]()

	n := len(uintBytes(uint64(1)<<size-1, radix, nil))
	if signed {
		n++
	}

	return n
}

// Write formats v into buf and returns the number of bytes written.
func Write[T constraints.Integer](buf []byte, v T, radix uint32) (n int, err error) {
	if !options.Supported(radix) {
		return 0, Error.Wrap(oops.Trace(options.ErrInvalidRadix))
	}

	var scratch [65]byte
	out := appendInt(scratch[:0], v, radix)
	if len(out) > len(buf) {
		return 0, lexerr.New(lexerr.BufferTooSmall, len(buf))
	}

	return copy(buf, out), nil
}

// Append appends the formatted v to dst.
func Append[T constraints.Integer](dst []byte, v T, radix uint32) ([]byte, error) {
	if !options.Supported(radix) {
		return dst, Error.Wrap(oops.Trace(options.ErrInvalidRadix))
	}

	return appendInt(dst, v, radix), nil
}

func appendInt[T constraints.Integer](dst []byte, v T, radix uint32) []byte {
	mag, neg := magnitude(v)
	if neg {
		dst = append(dst, '-')
	}

	return uintBytes(mag, radix, dst)
}

// uintBytes appends the digits of v in radix to dst.
func uintBytes(v uint64, radix uint32, dst []byte) []byte {
	var scratch [64]byte

	i := len(scratch)
	r := uint64(radix)
	for v >= r {
		i--
		scratch[i] = Digits[v%r]
		v /= r
	}

	i--
	scratch[i] = Digits[v]

	return append(dst, scratch[i:]...)
}
