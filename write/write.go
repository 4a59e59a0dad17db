package write

import (
	"math"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/lexical/decimal"
	"github.com/calebcase/lexical/extfloat"
	"github.com/calebcase/lexical/integer"
	"github.com/calebcase/lexical/lexerr"
	"github.com/calebcase/lexical/options"
)

// Error is the class of writer configuration failures.
var Error = errs.Class("write")

// Upper bounds on generated digits before padding.
const (
	decimalDigits = 28
	radixDigitMax = 64
)

// BufferSize returns the longest output of Float for the format and options.
func BufferSize(info *extfloat.Info, opts *options.WriteOptions) int {
	digits := radixDigitMax
	if opts.Radix == 10 {
		digits = decimalDigits
	}
	if opts.MaxSignificantDigits > 0 {
		digits = min(digits, opts.MaxSignificantDigits)
	}
	digits = max(digits, opts.MinSignificantDigits)

	// Exponents never leave this range, so wider breaks add nothing.
	limit := maxExponent(info, opts.Radix)
	pos := min(int(opts.PositiveExponentBreak), limit)
	neg := min(-int(opts.NegativeExponentBreak), limit)
	exp := integer.BufferSize[int16](opts.Radix)

	n := 1 + 2 + digits + max(pos+1, neg, exp) + 1

	return max(n, 1+len(opts.Inf), len(opts.NaN))
}

// maxExponent bounds the magnitude of the scientific exponent of any finite
// float in radix.
func maxExponent(info *extfloat.Info, radix uint32) int {
	bits := float64(-info.DenormalExp()) + 1

	return int(math.Ceil(bits/math.Log2(float64(radix)))) + 1
}

// Float writes the float with bit pattern v into buf, returning the number of
// bytes written. buf must hold at least BufferSize bytes.
func Float(buf []byte, v uint64, info *extfloat.Info, opts *options.WriteOptions) (n int, err error) {
	if !options.Supported(opts.Radix) {
		return 0, Error.Wrap(oops.Trace(options.ErrInvalidRadix))
	}

	if len(buf) < BufferSize(info, opts) {
		return 0, lexerr.New(lexerr.BufferTooSmall, len(buf))
	}

	out := appendFloat(buf[:0:len(buf)], v, info, opts)
	if len(out) > len(buf) {
		return 0, lexerr.New(lexerr.BufferTooSmall, len(buf))
	}

	return len(out), nil
}

// Append appends the float with bit pattern v to dst.
func Append(dst []byte, v uint64, info *extfloat.Info, opts *options.WriteOptions) ([]byte, error) {
	if !options.Supported(opts.Radix) {
		return dst, Error.Wrap(oops.Trace(options.ErrInvalidRadix))
	}

	return appendFloat(dst, v, info, opts), nil
}

func appendFloat(dst []byte, v uint64, info *extfloat.Info, opts *options.WriteOptions) []byte {
	neg := v&info.SignBit() != 0
	v &^= info.SignBit()

	if info.IsSpecial(v) {
		if v != info.Inf() {
			return append(dst, opts.NaN...)
		}

		if neg {
			dst = append(dst, '-')
		}

		return append(dst, opts.Inf...)
	}

	if neg {
		dst = append(dst, '-')
	}

	b := Digits(v, info, opts.Radix)
	b.Round(opts.MaxSignificantDigits, opts.RoundMode)
	b.Pad(opts.MinSignificantDigits)

	return b.Format(dst, opts)
}

// Digits returns round-tripping digits of a finite, non-negative float. They
// are the shortest possible except in radix 10, where Grisu2 occasionally
// emits one digit more and never rounds onto an exact halfway boundary.
func Digits(v uint64, info *extfloat.Info, radix uint32) decimal.Block {
	switch {
	case v == 0:
		return decimal.Zero(radix)
	case radix == 10:
		return grisu2(v, info)
	case radix&(radix-1) == 0:
		return binary(v, info, radix)
	}

	return radixDigits(v, info, radix)
}
