package integer_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/lexical/integer"
	"github.com/calebcase/lexical/lexerr"
	"github.com/calebcase/lexical/options"
)

func TestParseUint8(t *testing.T) {
	type TC struct {
		Input string
		Radix uint32
		Value uint8
		Err   *lexerr.Error
		Mark  error
	}

	tcs := []TC{
		{Input: "0", Radix: 10, Value: 0, Mark: oops.New("unexpected")},
		{Input: "255", Radix: 10, Value: 255, Mark: oops.New("unexpected")},
		{Input: "+7", Radix: 10, Value: 7, Mark: oops.New("unexpected")},
		{Input: "ff", Radix: 16, Value: 255, Mark: oops.New("unexpected")},
		{Input: "FF", Radix: 16, Value: 255, Mark: oops.New("unexpected")},
		{Input: "11111111", Radix: 2, Value: 255, Mark: oops.New("unexpected")},
		{Input: "73", Radix: 36, Value: 255, Mark: oops.New("unexpected")},
		{Input: "256", Radix: 10, Value: 255, Err: lexerr.New(lexerr.Overflow, 0), Mark: oops.New("unexpected")},
		{Input: "1000", Radix: 10, Value: 255, Err: lexerr.New(lexerr.Overflow, 0), Mark: oops.New("unexpected")},
		{Input: "1a", Radix: 10, Err: lexerr.New(lexerr.InvalidDigit, 1), Mark: oops.New("unexpected")},
		{Input: "", Radix: 10, Err: lexerr.New(lexerr.Empty, 0), Mark: oops.New("unexpected")},
		{Input: "+", Radix: 10, Err: lexerr.New(lexerr.Empty, 1), Mark: oops.New("unexpected")},
		{Input: "-1", Radix: 10, Err: lexerr.New(lexerr.InvalidDigit, 0), Mark: oops.New("unexpected")},
		{Input: "x", Radix: 10, Err: lexerr.New(lexerr.InvalidDigit, 0), Mark: oops.New("unexpected")},
		{Input: "2", Radix: 2, Err: lexerr.New(lexerr.InvalidDigit, 0), Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.Input), func(t *testing.T) {
			v, err := integer.Parse[uint8]([]byte(tc.Input), tc.Radix)
			if tc.Err != nil {
				require.Equal(t, tc.Err, err, tc.Mark)
			} else {
				require.NoError(t, err, tc.Mark)
			}
			require.Equal(t, tc.Value, v, tc.Mark)
		})
	}
}

func TestParseInt8(t *testing.T) {
	type TC struct {
		Input string
		Value int8
		Err   *lexerr.Error
		Mark  error
	}

	tcs := []TC{
		{Input: "127", Value: 127, Mark: oops.New("unexpected")},
		{Input: "-128", Value: -128, Mark: oops.New("unexpected")},
		{Input: "-0", Value: 0, Mark: oops.New("unexpected")},
		{Input: "128", Value: 127, Err: lexerr.New(lexerr.Overflow, 0), Mark: oops.New("unexpected")},
		{Input: "-129", Value: -128, Err: lexerr.New(lexerr.Underflow, 0), Mark: oops.New("unexpected")},
		{Input: "-", Err: lexerr.New(lexerr.Empty, 1), Mark: oops.New("unexpected")},
		{Input: "-a", Err: lexerr.New(lexerr.InvalidDigit, 1), Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.Input), func(t *testing.T) {
			v, err := integer.Parse[int8]([]byte(tc.Input), 10)
			if tc.Err != nil {
				require.Equal(t, tc.Err, err, tc.Mark)
			} else {
				require.NoError(t, err, tc.Mark)
			}
			require.Equal(t, tc.Value, v, tc.Mark)
		})
	}
}

func TestParsePartial(t *testing.T) {
	v, n, err := integer.ParsePartial[int32]([]byte("1234abc"), 10)
	require.NoError(t, err)
	require.Equal(t, int32(1234), v)
	require.Equal(t, 4, n)

	v, n, err = integer.ParsePartial[int32]([]byte("99999999999,"), 10)
	require.True(t, errors.Is(err, lexerr.ErrOverflow))
	require.Equal(t, int32(math.MaxInt32), v)
	require.Equal(t, 11, n)

	_, err = integer.Parse[int32]([]byte("1,"), 10)
	require.Equal(t, lexerr.New(lexerr.InvalidDigit, 1), err)
}

func TestLimits(t *testing.T) {
	v64, err := integer.Parse[int64]([]byte("-9223372036854775808"), 10)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v64)

	u64, err := integer.Parse[uint64]([]byte("18446744073709551615"), 10)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), u64)

	u64, err = integer.Parse[uint64]([]byte("18446744073709551616"), 10)
	require.True(t, errors.Is(err, lexerr.ErrOverflow))
	require.Equal(t, uint64(math.MaxUint64), u64)

	v16, err := integer.Parse[int16]([]byte("-8000"), 16)
	require.NoError(t, err)
	require.Equal(t, int16(math.MinInt16), v16)
}

func TestInvalidRadix(t *testing.T) {
	_, err := integer.Parse[int]([]byte("1"), 37)
	require.ErrorIs(t, err, options.ErrInvalidRadix)

	_, err = integer.Append[int](nil, 1, 1)
	require.ErrorIs(t, err, options.ErrInvalidRadix)
}

func TestAppend(t *testing.T) {
	type TC struct {
		Value  int64
		Radix  uint32
		Output string
	}

	tcs := []TC{
		{Value: 0, Radix: 10, Output: "0"},
		{Value: -1, Radix: 10, Output: "-1"},
		{Value: 255, Radix: 16, Output: "FF"},
		{Value: math.MinInt64, Radix: 10, Output: "-9223372036854775808"},
		{Value: math.MinInt64, Radix: 2, Output: "-1" + strings.Repeat("0", 63)},
		{Value: 1295, Radix: 36, Output: "ZZ"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Output), func(t *testing.T) {
			out, err := integer.Append(nil, tc.Value, tc.Radix)
			require.NoError(t, err)
			require.Equal(t, tc.Output, string(out))
		})
	}
}

func TestWrite(t *testing.T) {
	require.Equal(t, 4, integer.BufferSize[int8](10))
	require.Equal(t, 3, integer.BufferSize[uint8](10))
	require.Equal(t, 65, integer.BufferSize[int64](2))
	require.Equal(t, 20, integer.BufferSize[uint64](10))

	buf := make([]byte, integer.BufferSize[int8](10))
	n, err := integer.Write(buf, int8(-128), 10)
	require.NoError(t, err)
	require.Equal(t, "-128", string(buf[:n]))

	_, err = integer.Write(buf[:2], int8(-128), 10)
	require.True(t, errors.Is(err, lexerr.ErrBufferTooSmall))
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		v := int64(r.Uint64())
		radix := uint32(2 + r.Intn(35))

		out, err := integer.Append(nil, v, radix)
		require.NoError(t, err)
		require.Equal(t, strconv.FormatInt(v, int(radix)), string(toLower(out)))

		got, err := integer.Parse[int64](out, radix)
		require.NoError(t, err)
		require.Equal(t, v, got, "radix %d: %s", radix, out)
	}
}

func toLower(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}

	return out
}

func BenchmarkParse(b *testing.B) {
	input := []byte("-9223372036854775808")
	for i := 0; i < b.N; i++ {
		_, _ = integer.Parse[int64](input, 10)
	}
}
