package parse

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/lexical/cached"
	"github.com/calebcase/lexical/extfloat"
	"github.com/calebcase/lexical/lexerr"
	"github.com/calebcase/lexical/options"
)

// Error is the class of parser configuration failures.
var Error = errs.Class("parse")

// Tier is the stage that resolved a value.
type Tier uint8

// Tiers in the order they are tried.
const (
	Exact Tier = iota
	Extended
	Bigcomp
)

func (t Tier) String() string {
	switch t {
	case Exact:
		return "exact"
	case Extended:
		return "extended"
	case Bigcomp:
		return "bigcomp"
	}

	return "unknown"
}

// Float parses all of b as a float of the format described by info, returning
// its bit pattern.
func Float(b []byte, info *extfloat.Info, opts *options.ParseOptions) (bits uint64, n int, err error) {
	bits, n, _, err = float(b, info, opts, false)

	return bits, n, err
}

// FloatPartial parses the longest float prefix of b and returns the number of
// bytes consumed.
func FloatPartial(b []byte, info *extfloat.Info, opts *options.ParseOptions) (bits uint64, n int, err error) {
	bits, n, _, err = float(b, info, opts, true)

	return bits, n, err
}

// Trace parses all of b like Float and also reports the tier that resolved
// the value.
func Trace(b []byte, info *extfloat.Info, opts *options.ParseOptions) (bits uint64, tier Tier, err error) {
	bits, _, tier, err = float(b, info, opts, false)

	return bits, tier, err
}

func float(b []byte, info *extfloat.Info, opts *options.ParseOptions, partial bool) (bits uint64, n int, tier Tier, err error) {
	if !options.Supported(opts.Radix) {
		return 0, 0, Exact, Error.Wrap(oops.Trace(options.ErrInvalidRadix))
	}

	if !opts.NoSpecial {
		if sb, sn, ok := special(b, info, opts); ok {
			if !partial && sn != len(b) {
				return 0, sn, Exact, lexerr.New(lexerr.InvalidDigit, sn)
			}

			return sb, sn, Exact, nil
		}
	}

	num, err := Scan(b, &opts.Format, partial)
	if err != nil {
		return 0, num.N, Exact, err
	}

	bits, tier = value(&num, info, opts)
	if num.Negative {
		bits |= info.SignBit()
	}

	return bits, num.N, tier, nil
}

// value resolves the magnitude of num through the tiers.
func value(num *Number, info *extfloat.Info, opts *options.ParseOptions) (bits uint64, tier Tier) {
	f := &opts.Format

	mant, exp, truncated := accumulate[extfloat.U64](num, f)
	if mant.IsZero() {
		return 0, Exact
	}

	bits, ok := exact(uint64(mant), exp, truncated, info, f.Radix)
	if ok {
		return bits, Exact
	}

	_, bits, ok = moderate(mant, exp, truncated, info, cached.For64(f.Radix))
	if ok || opts.Lossy {
		return bits, Extended
	}

	return bigcomp(num, info, f), Bigcomp
}
