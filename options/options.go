package options

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the class of option validation failures.
var Error = errs.Class("options")

// Validation sentinels.
var (
	ErrInvalidRadix     = Error.New("invalid radix")
	ErrInvalidCharacter = Error.New("invalid character")
	ErrInvalidDigits    = Error.New("invalid significant digits")
	ErrInvalidBreak     = Error.New("invalid exponent break")
	ErrInvalidSpecial   = Error.New("invalid special value")
)

// Radix bounds.
const (
	MinRadix = 2
	MaxRadix = 36
)

// RoundMode selects how digits beyond MaxSignificantDigits are dropped.
type RoundMode uint8

// Round modes.
const (
	NearestTieEven RoundMode = iota
	Truncate
)

func (m RoundMode) String() string {
	switch m {
	case NearestTieEven:
		return "nearest"
	case Truncate:
		return "truncate"
	}

	return "unknown"
}

// ExponentChar returns the default exponent marker for radix r.
func ExponentChar(r uint32) byte {
	if r < 15 {
		return 'e'
	}

	return '^'
}

// Format is the number syntax shared by parsing.
type Format struct {
	Radix          uint32
	DecimalPoint   byte
	Exponent       byte
	DigitSeparator byte
	BasePrefix     byte
	BaseSuffix     byte

	RequiredIntegerDigits  bool
	RequiredFractionDigits bool
	RequiredExponentDigits bool

	NoExponentNotation bool
	NoSpecial          bool
}

// Decimal is the default radix 10 format.
func Decimal() Format {
	return Format{
		Radix:                  10,
		DecimalPoint:           '.',
		RequiredExponentDigits: true,
	}
}

// ExponentMarker returns the configured exponent marker or the radix default.
func (f *Format) ExponentMarker() byte {
	if f.Exponent != 0 {
		return f.Exponent
	}

	return ExponentChar(f.Radix)
}

// Validate checks the format for conflicts.
func (f *Format) Validate() (err error) {
	if !Supported(f.Radix) {
		return oops.Trace(ErrInvalidRadix)
	}

	chars := []byte{f.DecimalPoint, f.ExponentMarker()}
	if f.DigitSeparator != 0 {
		chars = append(chars, f.DigitSeparator)
	}
	if f.BaseSuffix != 0 {
		chars = append(chars, f.BaseSuffix)
	}

	for i, c := range chars {
		if c == '+' || c == '-' || IsDigit(c, f.Radix) {
			return oops.Trace(ErrInvalidCharacter)
		}

		for _, d := range chars[:i] {
			if lower(c) == lower(d) {
				return oops.Trace(ErrInvalidCharacter)
			}
		}
	}

	if f.BasePrefix != 0 && (IsDigit(f.BasePrefix, f.Radix) || f.BasePrefix == '+' || f.BasePrefix == '-') {
		return oops.Trace(ErrInvalidCharacter)
	}

	return nil
}

// ParseOptions configures float parsing.
type ParseOptions struct {
	Format

	// Lossy stops after the extended tier instead of resolving ambiguous
	// cases exactly.
	Lossy bool

	NaN      string
	Inf      string
	Infinity string
}

// DefaultParse returns the default radix 10 parse options.
func DefaultParse() ParseOptions {
	return ParseOptions{
		Format:   Decimal(),
		NaN:      "NaN",
		Inf:      "inf",
		Infinity: "infinity",
	}
}

// ParseRadix returns the default parse options for radix r.
func ParseRadix(r uint32) ParseOptions {
	o := DefaultParse()
	o.Radix = r

	return o
}

// Validate checks the parse options.
func (o *ParseOptions) Validate() (err error) {
	err = o.Format.Validate()
	if err != nil {
		return err
	}

	if o.NoSpecial {
		return nil
	}

	for _, s := range []string{o.NaN, o.Inf, o.Infinity} {
		if s == "" {
			return oops.Trace(ErrInvalidSpecial)
		}

		if s[0] == o.DecimalPoint || s[0] == '+' || s[0] == '-' {
			return oops.Trace(ErrInvalidSpecial)
		}
	}

	return nil
}

// WriteOptions configures float writing.
type WriteOptions struct {
	Radix        uint32
	DecimalPoint byte
	Exponent     byte

	// MaxSignificantDigits limits the digits written, rounding per
	// RoundMode. Zero means no limit.
	MaxSignificantDigits int

	// MinSignificantDigits pads with trailing zeros. Zero means no padding.
	MinSignificantDigits int

	// Scientific notation is used when the exponent is above
	// PositiveExponentBreak or below NegativeExponentBreak.
	PositiveExponentBreak int32
	NegativeExponentBreak int32

	RoundMode RoundMode

	// TrimFloats drops a trailing ".0".
	TrimFloats bool

	NaN string
	Inf string
}

// DefaultWrite returns the default radix 10 write options.
func DefaultWrite() WriteOptions {
	return WriteOptions{
		Radix:                 10,
		DecimalPoint:          '.',
		PositiveExponentBreak: 9,
		NegativeExponentBreak: -5,
		NaN:                   "NaN",
		Inf:                   "inf",
	}
}

// WriteRadix returns the default write options for radix r.
func WriteRadix(r uint32) WriteOptions {
	o := DefaultWrite()
	o.Radix = r

	return o
}

// ExponentMarker returns the configured exponent marker or the radix default.
func (o *WriteOptions) ExponentMarker() byte {
	if o.Exponent != 0 {
		return o.Exponent
	}

	return ExponentChar(o.Radix)
}

// Validate checks the write options.
func (o *WriteOptions) Validate() (err error) {
	if !Supported(o.Radix) {
		return oops.Trace(ErrInvalidRadix)
	}

	if o.DecimalPoint == 0 || IsDigit(o.DecimalPoint, o.Radix) {
		return oops.Trace(ErrInvalidCharacter)
	}

	e := o.ExponentMarker()
	if IsDigit(e, o.Radix) || lower(e) == lower(o.DecimalPoint) || e == '-' {
		return oops.Trace(ErrInvalidCharacter)
	}

	if o.MaxSignificantDigits < 0 || o.MinSignificantDigits < 0 ||
		o.MaxSignificantDigits != 0 && o.MinSignificantDigits > o.MaxSignificantDigits {
		return oops.Trace(ErrInvalidDigits)
	}

	if o.PositiveExponentBreak < 0 || o.NegativeExponentBreak > 0 {
		return oops.Trace(ErrInvalidBreak)
	}

	if o.NaN == "" || o.Inf == "" {
		return oops.Trace(ErrInvalidSpecial)
	}

	return nil
}

// IsDigit reports whether c is a digit in radix r.
func IsDigit(c byte, r uint32) bool {
	_, ok := DigitValue(c, r)

	return ok
}

// DigitValue returns the value of c as a digit in radix r.
func DigitValue(c byte, r uint32) (uint32, bool) {
	var v uint32

	switch {
	case c >= '0' && c <= '9':
		v = uint32(c - '0')
	case c >= 'a' && c <= 'z':
		v = uint32(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = uint32(c-'A') + 10
	default:
		return 0, false
	}

	return v, v < r
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}
