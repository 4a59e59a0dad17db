package write

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/lexical/decimal"
	"github.com/calebcase/lexical/extfloat"
	"github.com/calebcase/lexical/lexerr"
	"github.com/calebcase/lexical/options"
	"github.com/calebcase/lexical/parse"
)

func none(o *options.WriteOptions) {}

func write64(t *testing.T, f float64, opts *options.WriteOptions) string {
	t.Helper()

	out, err := Append(nil, math.Float64bits(f), extfloat.Float64, opts)
	require.NoError(t, err)

	return string(out)
}

func TestFloat(t *testing.T) {
	type TC struct {
		Input  float64
		Radix  uint32
		Modify func(o *options.WriteOptions)
		Output string
		Mark   error
	}

	tcs := []TC{
		{Input: 0, Radix: 10, Modify: none, Output: "0.0", Mark: oops.New("unexpected")},
		{Input: math.Copysign(0, -1), Radix: 10, Modify: none, Output: "-0.0", Mark: oops.New("unexpected")},
		{Input: 1, Radix: 10, Modify: none, Output: "1.0", Mark: oops.New("unexpected")},
		{Input: 0.1, Radix: 10, Modify: none, Output: "0.1", Mark: oops.New("unexpected")},
		{Input: 1.5, Radix: 10, Modify: none, Output: "1.5", Mark: oops.New("unexpected")},
		{Input: -2.5, Radix: 10, Modify: none, Output: "-2.5", Mark: oops.New("unexpected")},
		{Input: 123456789, Radix: 10, Modify: none, Output: "123456789.0", Mark: oops.New("unexpected")},
		{Input: 1e10, Radix: 10, Modify: none, Output: "1.0e10", Mark: oops.New("unexpected")},
		{Input: 1e-5, Radix: 10, Modify: none, Output: "0.00001", Mark: oops.New("unexpected")},
		{Input: 1.5e-6, Radix: 10, Modify: none, Output: "1.5e-6", Mark: oops.New("unexpected")},
		{Input: 1.7976931348623157e308, Radix: 10, Modify: none, Output: "1.7976931348623157e308", Mark: oops.New("unexpected")},
		{Input: 5e-324, Radix: 10, Modify: none, Output: "5.0e-324", Mark: oops.New("unexpected")},
		{Input: math.NaN(), Radix: 10, Modify: none, Output: "NaN", Mark: oops.New("unexpected")},
		{Input: math.Inf(1), Radix: 10, Modify: none, Output: "inf", Mark: oops.New("unexpected")},
		{Input: math.Inf(-1), Radix: 10, Modify: none, Output: "-inf", Mark: oops.New("unexpected")},
		{Input: 1024, Radix: 2, Modify: none, Output: "1.0e1010", Mark: oops.New("unexpected")},
		{Input: 0.375, Radix: 2, Modify: none, Output: "0.011", Mark: oops.New("unexpected")},
		{Input: 255.5, Radix: 16, Modify: none, Output: "FF.8", Mark: oops.New("unexpected")},
		{Input: 0.5, Radix: 8, Modify: none, Output: "0.4", Mark: oops.New("unexpected")},
		{Input: 3, Radix: 3, Modify: none, Output: "10.0", Mark: oops.New("unexpected")},
		{Input: 0.5, Radix: 3, Modify: none, Output: "0.1111111111111111111111111111111112", Mark: oops.New("unexpected")},
		{Input: 0.75, Radix: 3, Modify: none, Output: "0.202020202020202020202020202020202", Mark: oops.New("unexpected")},
		{Input: 35, Radix: 36, Modify: none, Output: "Z.0", Mark: oops.New("unexpected")},
		{Input: 1, Radix: 10, Modify: func(o *options.WriteOptions) { o.TrimFloats = true }, Output: "1", Mark: oops.New("unexpected")},
		{Input: 1e10, Radix: 10, Modify: func(o *options.WriteOptions) { o.TrimFloats = true }, Output: "1e10", Mark: oops.New("unexpected")},
		{Input: 1.5, Radix: 10, Modify: func(o *options.WriteOptions) { o.MinSignificantDigits = 5 }, Output: "1.5000", Mark: oops.New("unexpected")},
		{Input: 1.23456, Radix: 10, Modify: func(o *options.WriteOptions) { o.MaxSignificantDigits = 4 }, Output: "1.235", Mark: oops.New("unexpected")},
		{
			Input: 1.23456,
			Radix: 10,
			Modify: func(o *options.WriteOptions) {
				o.MaxSignificantDigits = 4
				o.RoundMode = options.Truncate
			},
			Output: "1.234",
			Mark:   oops.New("unexpected"),
		},
		{Input: 1.2345678901234567890, Radix: 10, Modify: func(o *options.WriteOptions) { o.MaxSignificantDigits = 4 }, Output: "1.235", Mark: oops.New("unexpected")},
		{
			Input: 1.2345678901234567890,
			Radix: 10,
			Modify: func(o *options.WriteOptions) {
				o.MaxSignificantDigits = 4
				o.RoundMode = options.Truncate
			},
			Output: "1.234",
			Mark:   oops.New("unexpected"),
		},
		{Input: 9.9999, Radix: 10, Modify: func(o *options.WriteOptions) { o.MaxSignificantDigits = 3 }, Output: "10.0", Mark: oops.New("unexpected")},
		{Input: 1000, Radix: 10, Modify: func(o *options.WriteOptions) { o.PositiveExponentBreak = 2 }, Output: "1.0e3", Mark: oops.New("unexpected")},
		{Input: 0.015, Radix: 10, Modify: func(o *options.WriteOptions) { o.NegativeExponentBreak = -1 }, Output: "1.5e-2", Mark: oops.New("unexpected")},
		{Input: 1.5e-6, Radix: 10, Modify: func(o *options.WriteOptions) { o.Exponent = 'E' }, Output: "1.5E-6", Mark: oops.New("unexpected")},
		{Input: 2.5, Radix: 10, Modify: func(o *options.WriteOptions) { o.DecimalPoint = ',' }, Output: "2,5", Mark: oops.New("unexpected")},
		{Input: math.Inf(1), Radix: 10, Modify: func(o *options.WriteOptions) { o.Inf = "Infinity" }, Output: "Infinity", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Output), func(t *testing.T) {
			opts := options.WriteRadix(tc.Radix)
			tc.Modify(&opts)
			require.NoError(t, opts.Validate(), tc.Mark)

			require.Equal(t, tc.Output, write64(t, tc.Input, &opts), tc.Mark)
		})
	}
}

func TestFloat32(t *testing.T) {
	type TC struct {
		Input  float32
		Output string
		Mark   error
	}

	tcs := []TC{
		{Input: 0.1, Output: "0.1", Mark: oops.New("unexpected")},
		{Input: 1.1, Output: "1.1", Mark: oops.New("unexpected")},
		{Input: 16777216, Output: "16777216.0", Mark: oops.New("unexpected")},
		{Input: 3.4028235e38, Output: "3.4028235e38", Mark: oops.New("unexpected")},
		{Input: 1e-45, Output: "1.0e-45", Mark: oops.New("unexpected")},
	}

	opts := options.DefaultWrite()

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Output), func(t *testing.T) {
			out, err := Append(nil, uint64(math.Float32bits(tc.Input)), extfloat.Float32, &opts)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, string(out), tc.Mark)
		})
	}
}

func TestBuffer(t *testing.T) {
	opts := options.DefaultWrite()
	size := BufferSize(extfloat.Float64, &opts)

	_, err := Float(make([]byte, size-1), math.Float64bits(1), extfloat.Float64, &opts)
	require.ErrorIs(t, err, lexerr.ErrBufferTooSmall)

	buf := make([]byte, size)
	n, err := Float(buf, math.Float64bits(-2.2250738585072014e-308), extfloat.Float64, &opts)
	require.NoError(t, err)
	require.Equal(t, "-2.2250738585072014e-308", string(buf[:n]))

	opts = options.WriteRadix(99)
	_, err = Float(buf, 0, extfloat.Float64, &opts)
	require.ErrorIs(t, err, options.ErrInvalidRadix)
	require.True(t, Error.Has(err))

	_, err = Append(nil, 0, extfloat.Float64, &opts)
	require.ErrorIs(t, err, options.ErrInvalidRadix)
}

// TestBufferSize writes extreme values with wide padding and breaks and
// checks each fits.
func TestBufferSize(t *testing.T) {
	values := []float64{
		5e-324, 2.2250738585072014e-308, 1.7976931348623157e308, 1, 0.1,
		math.Inf(-1), math.NaN(), -1.2345678901234567e-300,
	}

	for r := uint32(options.MinRadix); r <= options.MaxRadix; r++ {
		if !options.Supported(r) {
			continue
		}

		for _, wide := range []bool{false, true} {
			opts := options.WriteRadix(r)
			if wide {
				opts.MinSignificantDigits = 50
				opts.PositiveExponentBreak = math.MaxInt32
				opts.NegativeExponentBreak = math.MinInt32
			}

			size := BufferSize(extfloat.Float64, &opts)
			buf := make([]byte, size)

			for _, v := range values {
				n, err := Float(buf, math.Float64bits(v), extfloat.Float64, &opts)
				require.NoError(t, err, "radix %d value %v", r, v)
				require.LessOrEqual(t, n, size)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for radix := uint32(options.MinRadix); radix <= options.MaxRadix; radix++ {
		if !options.Supported(radix) {
			continue
		}

		wopts := options.WriteRadix(radix)
		popts := options.ParseRadix(radix)

		t.Run(fmt.Sprintf("radix %d", radix), func(t *testing.T) {
			for i := 0; i < 200; i++ {
				bits := r.Uint64() &^ extfloat.Float64.SignBit()
				if extfloat.Float64.IsSpecial(bits) {
					continue
				}

				out, err := Append(nil, bits, extfloat.Float64, &wopts)
				require.NoError(t, err)

				got, n, err := parse.Float(out, extfloat.Float64, &popts)
				require.NoError(t, err, string(out))
				require.Equal(t, len(out), n, string(out))
				require.Equal(t, bits, got, "%v wrote %s", math.Float64frombits(bits), out)
			}

			for i := 0; i < 100; i++ {
				bits := uint64(r.Uint32()) & (extfloat.Float32.Inf() - 1)

				out, err := Append(nil, bits, extfloat.Float32, &wopts)
				require.NoError(t, err)

				got, _, err := parse.Float(out, extfloat.Float32, &popts)
				require.NoError(t, err, string(out))
				require.Equal(t, bits, got, "%v wrote %s", math.Float32frombits(uint32(bits)), out)
			}
		})
	}
}

// shorterRoundTrips reports whether some digit string one digit shorter than
// b also parses back to f.
func shorterRoundTrips(f float64, b decimal.Block) bool {
	n := len(b.Digits)
	if n < 2 {
		return false
	}

	// Candidates are c * radix^exp with n-1 digits around f.
	exp := int64(b.Exp) - int64(n-2)
	p := new(big.Int).Exp(big.NewInt(int64(b.Radix)), big.NewInt(abs(exp)), nil)
	scale := new(big.Rat).SetInt(p)
	if exp < 0 {
		scale.Inv(scale)
	}

	q := new(big.Rat).Quo(new(big.Rat).SetFloat64(f), scale)
	c := new(big.Int).Quo(q.Num(), q.Denom())

	for i := 0; i < 2; i++ {
		got, _ := new(big.Rat).Mul(new(big.Rat).SetInt(c), scale).Float64()
		if got == f {
			return true
		}
		c.Add(c, big.NewInt(1))
	}

	return false
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

func TestShortest(t *testing.T) {
	type TC struct {
		Bits  uint64
		Radix uint32
		Mark  error
	}

	tcs := []TC{
		{Bits: 0x43d56d1e36992dfc, Radix: 6, Mark: oops.New("unexpected")},
		{Bits: math.Float64bits(0.1), Radix: 3, Mark: oops.New("unexpected")},
		{Bits: math.Float64bits(0x1p-1022), Radix: 7, Mark: oops.New("unexpected")},
		{Bits: math.Float64bits(5e-324), Radix: 36, Mark: oops.New("unexpected")},
		{Bits: math.Float64bits(math.MaxFloat64), Radix: 11, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%#x", i, tc.Bits), func(t *testing.T) {
			b := Digits(tc.Bits, extfloat.Float64, tc.Radix)
			require.False(t, shorterRoundTrips(math.Float64frombits(tc.Bits), b), tc.Mark)
		})
	}

	r := rand.New(rand.NewSource(3))
	for radix := uint32(3); radix <= options.MaxRadix; radix++ {
		if radix&(radix-1) == 0 || radix == 10 {
			continue
		}

		t.Run(fmt.Sprintf("radix %d", radix), func(t *testing.T) {
			for i := 0; i < 500; i++ {
				bits := r.Uint64() &^ extfloat.Float64.SignBit()
				if extfloat.Float64.IsSpecial(bits) || bits == 0 {
					continue
				}

				f := math.Float64frombits(bits)
				b := Digits(bits, extfloat.Float64, radix)
				require.False(t, shorterRoundTrips(f, b), "%#x radix %d", bits, radix)
			}
		})
	}
}

// mantissaDigits returns the significant digits of strconv's shortest form.
func mantissaDigits(f float64) string {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	s = s[:strings.IndexByte(s, 'e')]

	return strings.Replace(s, ".", "", 1)
}

func TestGrisu(t *testing.T) {
	known := []float64{
		1, 0.1, 0.3, 2.5, 1e22, 1.7976931348623157e308, 5e-324, 123456.789,
		9007199254740993, 0.1 + 0.2, 2.2250738585072014e-308, 4.35, 1e-7,
	}

	for i, f := range known {
		t.Run(fmt.Sprintf("[%d]%v", i, f), func(t *testing.T) {
			b := grisu2(math.Float64bits(f), extfloat.Float64)

			var sb strings.Builder
			for _, d := range b.Digits {
				sb.WriteByte('0' + d)
			}

			require.Equal(t, mantissaDigits(f), sb.String())
			_, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
			require.Equal(t, exp, fmt.Sprintf("%+03d", b.Exp))
		})
	}

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		f := math.Float64frombits(r.Uint64() >> 2)
		if math.IsInf(f, 0) || f == 0 {
			continue
		}

		b := grisu2(math.Float64bits(f), extfloat.Float64)
		require.GreaterOrEqual(t, len(b.Digits), len(mantissaDigits(f)), "%v", f)
		require.LessOrEqual(t, len(b.Digits), 17, "%v", f)
	}
}

func TestBinary(t *testing.T) {
	type TC struct {
		name  string
		value float64
		radix uint32
		want  decimal.Block
	}

	tcs := []TC{
		{name: "denormal", value: 0x1p-1074, radix: 32, want: decimal.Block{Digits: []byte{2}, Exp: -215, Radix: 32}},
		{name: "hex", value: 0xF0, radix: 16, want: decimal.Block{Digits: []byte{15}, Exp: 1, Radix: 16}},
		{name: "octal", value: 0.5, radix: 8, want: decimal.Block{Digits: []byte{4}, Exp: -1, Radix: 8}},
		{name: "binary", value: 5, radix: 2, want: decimal.Block{Digits: []byte{1, 0, 1}, Exp: 2, Radix: 2}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			got := binary(math.Float64bits(tc.value), extfloat.Float64, tc.radix)
			require.Empty(t, cmp.Diff(tc.want, got))
		})
	}
}

func BenchmarkFloat(b *testing.B) {
	values := []float64{1, 0.1, 1.7976931348623157e308, 5e-324, 123456.789}

	for _, radix := range []uint32{10, 16, 3} {
		opts := options.WriteRadix(radix)
		buf := make([]byte, BufferSize(extfloat.Float64, &opts))

		b.Run(fmt.Sprintf("radix %d", radix), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Float(buf, math.Float64bits(values[i%len(values)]), extfloat.Float64, &opts)
			}
		})
	}
}
