package lexical

import (
	"math"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"

	"github.com/calebcase/lexical/extfloat"
	"github.com/calebcase/lexical/integer"
	"github.com/calebcase/lexical/options"
	"github.com/calebcase/lexical/parse"
	"github.com/calebcase/lexical/write"
)

// Error is the class of invalid option failures from this package.
var Error = errs.Class("lexical")

var (
	defaultParse = options.DefaultParse()
	defaultWrite = options.DefaultWrite()
)

// ParseFloat64 parses all of b as a radix 10 float64.
func ParseFloat64(b []byte) (float64, error) {
	bits, _, err := parse.Float(b, extfloat.Float64, &defaultParse)

	return math.Float64frombits(bits), err
}

// ParseFloat32 parses all of b as a radix 10 float32.
func ParseFloat32(b []byte) (float32, error) {
	bits, _, err := parse.Float(b, extfloat.Float32, &defaultParse)

	return math.Float32frombits(uint32(bits)), err
}

// ParseFloat64Partial parses the longest radix 10 float64 prefix of b.
func ParseFloat64Partial(b []byte) (float64, int, error) {
	bits, n, err := parse.FloatPartial(b, extfloat.Float64, &defaultParse)

	return math.Float64frombits(bits), n, err
}

// ParseFloat32Partial parses the longest radix 10 float32 prefix of b.
func ParseFloat32Partial(b []byte) (float32, int, error) {
	bits, n, err := parse.FloatPartial(b, extfloat.Float32, &defaultParse)

	return math.Float32frombits(uint32(bits)), n, err
}

// ParseFloat64Options parses all of b as a float64 described by opts.
func ParseFloat64Options(b []byte, opts *options.ParseOptions) (float64, error) {
	if err := opts.Validate(); err != nil {
		return 0, Error.Wrap(err)
	}

	bits, _, err := parse.Float(b, extfloat.Float64, opts)

	return math.Float64frombits(bits), err
}

// ParseFloat32Options parses all of b as a float32 described by opts.
func ParseFloat32Options(b []byte, opts *options.ParseOptions) (float32, error) {
	if err := opts.Validate(); err != nil {
		return 0, Error.Wrap(err)
	}

	bits, _, err := parse.Float(b, extfloat.Float32, opts)

	return math.Float32frombits(uint32(bits)), err
}

// ParseFloat64PartialOptions parses the longest float64 prefix of b described
// by opts.
func ParseFloat64PartialOptions(b []byte, opts *options.ParseOptions) (float64, int, error) {
	if err := opts.Validate(); err != nil {
		return 0, 0, Error.Wrap(err)
	}

	bits, n, err := parse.FloatPartial(b, extfloat.Float64, opts)

	return math.Float64frombits(bits), n, err
}

// ParseFloat32PartialOptions parses the longest float32 prefix of b described
// by opts.
func ParseFloat32PartialOptions(b []byte, opts *options.ParseOptions) (float32, int, error) {
	if err := opts.Validate(); err != nil {
		return 0, 0, Error.Wrap(err)
	}

	bits, n, err := parse.FloatPartial(b, extfloat.Float32, opts)

	return math.Float32frombits(uint32(bits)), n, err
}

// BufferSize64 returns the buffer length WriteFloat64 needs with opts.
func BufferSize64(opts *options.WriteOptions) int {
	return write.BufferSize(extfloat.Float64, opts)
}

// BufferSize32 returns the buffer length WriteFloat32 needs with opts.
func BufferSize32(opts *options.WriteOptions) int {
	return write.BufferSize(extfloat.Float32, opts)
}

// WriteFloat64 writes f in radix 10 to buf and returns the bytes written.
func WriteFloat64(buf []byte, f float64) (int, error) {
	return write.Float(buf, math.Float64bits(f), extfloat.Float64, &defaultWrite)
}

// WriteFloat32 writes f in radix 10 to buf and returns the bytes written.
func WriteFloat32(buf []byte, f float32) (int, error) {
	return write.Float(buf, uint64(math.Float32bits(f)), extfloat.Float32, &defaultWrite)
}

// WriteFloat64Options writes f to buf as described by opts.
func WriteFloat64Options(buf []byte, f float64, opts *options.WriteOptions) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, Error.Wrap(err)
	}

	return write.Float(buf, math.Float64bits(f), extfloat.Float64, opts)
}

// WriteFloat32Options writes f to buf as described by opts.
func WriteFloat32Options(buf []byte, f float32, opts *options.WriteOptions) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, Error.Wrap(err)
	}

	return write.Float(buf, uint64(math.Float32bits(f)), extfloat.Float32, opts)
}

// AppendFloat64 appends the radix 10 text of f to dst.
func AppendFloat64(dst []byte, f float64) []byte {
	// The default options are valid.
	dst, _ = write.Append(dst, math.Float64bits(f), extfloat.Float64, &defaultWrite)

	return dst
}

// AppendFloat32 appends the radix 10 text of f to dst.
func AppendFloat32(dst []byte, f float32) []byte {
	dst, _ = write.Append(dst, uint64(math.Float32bits(f)), extfloat.Float32, &defaultWrite)

	return dst
}

// AppendFloat64Options appends the text of f described by opts to dst.
func AppendFloat64Options(dst []byte, f float64, opts *options.WriteOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return dst, Error.Wrap(err)
	}

	return write.Append(dst, math.Float64bits(f), extfloat.Float64, opts)
}

// AppendFloat32Options appends the text of f described by opts to dst.
func AppendFloat32Options(dst []byte, f float32, opts *options.WriteOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return dst, Error.Wrap(err)
	}

	return write.Append(dst, uint64(math.Float32bits(f)), extfloat.Float32, opts)
}

// FormatFloat64 returns the radix 10 text of f.
func FormatFloat64(f float64) string {
	var buf [64]byte

	return string(AppendFloat64(buf[:0], f))
}

// FormatFloat32 returns the radix 10 text of f.
func FormatFloat32(f float32) string {
	var buf [64]byte

	return string(AppendFloat32(buf[:0], f))
}

// ParseInt parses all of b as an integer of type T in radix.
func ParseInt[T constraints.Integer](b []byte, radix uint32) (T, error) {
	return integer.Parse[T](b, radix)
}

// ParseIntPartial parses the longest integer prefix of b in radix.
func ParseIntPartial[T constraints.Integer](b []byte, radix uint32) (T, int, error) {
	return integer.ParsePartial[T](b, radix)
}

// WriteInt writes v in radix to buf and returns the bytes written.
func WriteInt[T constraints.Integer](buf []byte, v T, radix uint32) (int, error) {
	return integer.Write(buf, v, radix)
}

// AppendInt appends the text of v in radix to dst.
func AppendInt[T constraints.Integer](dst []byte, v T, radix uint32) ([]byte, error) {
	return integer.Append(dst, v, radix)
}

// FormatInt returns the text of v in radix.
func FormatInt[T constraints.Integer](v T, radix uint32) (string, error) {
	var buf [72]byte

	out, err := integer.Append(buf[:0], v, radix)
	if err != nil {
		return "", oops.Trace(err)
	}

	return string(out), nil
}
