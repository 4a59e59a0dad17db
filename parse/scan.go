package parse

import (
	"github.com/calebcase/lexical/extfloat"
	"github.com/calebcase/lexical/lexerr"
	"github.com/calebcase/lexical/options"
)

// maxExponent bounds the magnitude of a written exponent. Anything past it
// is zero or infinite for every mantissa.
const maxExponent = 1 << 40

// Number is the syntax of a scanned number.
type Number struct {
	Negative bool

	// Integer and Fraction are the raw digit runs, separators included.
	Integer  []byte
	Fraction []byte

	// Exponent is the written exponent, saturated at ±2^40.
	Exponent int64

	// N is the number of bytes consumed.
	N int
}

// Scan scans a number from the start of b. Unless partial is set the number
// must cover all of b.
func Scan(b []byte, f *options.Format, partial bool) (num Number, err error) {
	if len(b) == 0 {
		return num, lexerr.New(lexerr.Empty, 0)
	}

	i := 0
	switch b[0] {
	case '+':
		i++
	case '-':
		num.Negative = true
		i++
	}

	if i == len(b) {
		return num, lexerr.New(lexerr.Empty, i)
	}

	if f.BasePrefix != 0 && i+1 < len(b) && b[i] == '0' && lower(b[i+1]) == lower(f.BasePrefix) {
		i += 2
	}

	start := i
	end := run(b, i, f)
	num.Integer = b[i:end]
	i = end

	point := false
	if i < len(b) && b[i] == f.DecimalPoint {
		point = true
		i++

		end = run(b, i, f)
		num.Fraction = b[i:end]
		i = end
	}

	marker := f.ExponentMarker()
	isMarker := !f.NoExponentNotation && i < len(b) && lower(b[i]) == lower(marker)

	if len(num.Integer) == 0 && len(num.Fraction) == 0 {
		switch {
		case point || isMarker:
			return num, lexerr.New(lexerr.EmptyMantissa, start)
		case i == len(b):
			return num, lexerr.New(lexerr.Empty, i)
		}

		return num, lexerr.New(lexerr.InvalidDigit, i)
	}

	if f.RequiredIntegerDigits && len(num.Integer) == 0 {
		return num, lexerr.New(lexerr.EmptyInteger, start)
	}

	if f.RequiredFractionDigits && point && len(num.Fraction) == 0 {
		return num, lexerr.New(lexerr.EmptyFraction, i)
	}

	if isMarker {
		j, neg := i+1, false
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			neg = b[j] == '-'
			j++
		}

		end = run(b, j, f)
		switch {
		case end > j:
			num.Exponent = exponent(b[j:end], f, neg)
			i = end
		case f.RequiredExponentDigits:
			return num, lexerr.New(lexerr.EmptyExponent, j)
		}
	}

	if f.BaseSuffix != 0 && i < len(b) && lower(b[i]) == lower(f.BaseSuffix) {
		i++
	}

	num.N = i

	if !partial && i != len(b) {
		return num, lexerr.New(lexerr.InvalidDigit, i)
	}

	return num, nil
}

// run returns the end of the digit run starting at i. A separator is part of
// the run only when a digit follows it.
func run(b []byte, i int, f *options.Format) int {
	start := i
	for i < len(b) {
		c := b[i]
		if options.IsDigit(c, f.Radix) {
			i++
			continue
		}

		if f.DigitSeparator != 0 && c == f.DigitSeparator && i > start &&
			i+1 < len(b) && options.IsDigit(b[i+1], f.Radix) {
			i++
			continue
		}

		break
	}

	return i
}

func exponent(run []byte, f *options.Format, neg bool) int64 {
	var v int64

	it := newDigits(run, f)
	for it.Next() {
		v = v*int64(f.Radix) + int64(it.Digit())
		if v >= maxExponent {
			v = maxExponent
			break
		}
	}

	if neg {
		return -v
	}

	return v
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}

// digits iterates the digit values of runs, skipping separators.
type digits struct {
	runs  [2][]byte
	run   int
	i     int
	radix uint32
	sep   byte
	digit uint32
}

func newDigits(run []byte, f *options.Format) *digits {
	return &digits{
		runs:  [2][]byte{run},
		radix: f.Radix,
		sep:   f.DigitSeparator,
	}
}

// mantissaDigits iterates the integer then fraction digits of num.
func mantissaDigits(num *Number, f *options.Format) *digits {
	it := newDigits(num.Integer, f)
	it.runs[1] = num.Fraction

	return it
}

// Next advances to the next digit.
func (it *digits) Next() bool {
	for it.run < len(it.runs) {
		r := it.runs[it.run]
		for it.i < len(r) {
			c := r[it.i]
			it.i++

			if it.sep != 0 && c == it.sep {
				continue
			}

			it.digit, _ = options.DigitValue(c, it.radix)

			return true
		}

		it.run++
		it.i = 0
	}

	return false
}

// Digit returns the current digit value.
func (it *digits) Digit() uint32 {
	return it.digit
}

// countDigits returns the digits in run, separators excluded.
func countDigits(run []byte, sep byte) int {
	n := len(run)
	if sep == 0 {
		return n
	}

	for _, c := range run {
		if c == sep {
			n--
		}
	}

	return n
}

// accumulate reads the mantissa of num into M. Leading zeros are skipped and
// digits that do not fit are dropped, marking truncated when any of them is
// nonzero. The value is mant * radix^exp.
func accumulate[M extfloat.Mantissa[M]](num *Number, f *options.Format) (mant M, exp int64, truncated bool) {
	r := uint64(f.Radix)

	var dropped, used int64
	full := false

	it := newDigits(num.Integer, f)
	for it.Next() {
		d := it.Digit()

		switch {
		case full:
			dropped++
			truncated = truncated || d != 0
			continue
		case mant.IsZero() && d == 0:
			continue
		}

		next, overflow := mant.MulAdd(r, uint64(d))
		if overflow {
			full = true
			dropped++
			truncated = d != 0
			continue
		}

		mant = next
	}

	it = newDigits(num.Fraction, f)
	for it.Next() {
		d := it.Digit()

		switch {
		case full:
			truncated = truncated || d != 0
			continue
		case mant.IsZero() && d == 0:
			used++
			continue
		}

		next, overflow := mant.MulAdd(r, uint64(d))
		if overflow {
			full = true
			truncated = truncated || d != 0
			continue
		}

		mant = next
		used++
	}

	return mant, num.Exponent + dropped - used, truncated
}

// shape returns the scientific exponent of num, the position of its first
// significant digit and the count of significant digits with trailing zeros
// trimmed. Zero has no significant digits.
func shape(num *Number, f *options.Format) (sci int64, first, count int) {
	first, last, pos := -1, -1, 0

	it := mantissaDigits(num, f)
	for it.Next() {
		if it.Digit() != 0 {
			if first < 0 {
				first = pos
			}
			last = pos
		}
		pos++
	}

	if first < 0 {
		return 0, 0, 0
	}

	nInt := countDigits(num.Integer, f.DigitSeparator)

	return num.Exponent + int64(nInt-first) - 1, first, last - first + 1
}
