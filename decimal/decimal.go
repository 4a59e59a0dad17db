package decimal

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/lexical/integer"
	"github.com/calebcase/lexical/options"
)

// Error is the class of digit block failures.
var Error = errs.Class("decimal")

// Block is a run of significant digits and its scientific exponent.
type Block struct {
	// Digits are digit values, not characters.
	Digits []byte
	Exp    int32
	Radix  uint32
}

// Zero returns the block for zero.
func Zero(radix uint32) Block {
	return Block{Digits: []byte{0}, Radix: radix}
}

// IsZero reports whether the block is zero.
func (b *Block) IsZero() bool {
	for _, d := range b.Digits {
		if d != 0 {
			return false
		}
	}

	return true
}

// Trim drops trailing zero digits, keeping at least one digit.
func (b *Block) Trim() {
	n := len(b.Digits)
	for n > 1 && b.Digits[n-1] == 0 {
		n--
	}

	b.Digits = b.Digits[:n]
}

// Round limits the block to max digits. A max of zero leaves the block
// unchanged.
func (b *Block) Round(max int, mode options.RoundMode) {
	if max <= 0 || len(b.Digits) <= max {
		return
	}

	up := mode == options.NearestTieEven && b.roundsUp(max)
	b.Digits = b.Digits[:max]

	if up {
		b.increment()
	}

	b.Trim()
}

// roundsUp compares the digits from max on against half a unit of the digit
// before them.
func (b *Block) roundsUp(max int) bool {
	tail := b.Digits[max:]

	if b.Radix%2 == 1 {
		h := byte((b.Radix - 1) / 2)
		for _, d := range tail {
			if d != h {
				return d > h
			}
		}

		return false
	}

	h := byte(b.Radix / 2)
	switch {
	case tail[0] > h:
		return true
	case tail[0] < h:
		return false
	}

	for _, d := range tail[1:] {
		if d != 0 {
			return true
		}
	}

	return b.Digits[max-1]%2 == 1
}

func (b *Block) increment() {
	for i := len(b.Digits) - 1; i >= 0; i-- {
		if uint32(b.Digits[i])+1 < b.Radix {
			b.Digits[i]++
			b.Digits = b.Digits[:i+1]

			return
		}
	}

	b.Digits = append(b.Digits[:0], 1)
	b.Exp++
}

// Pad appends zero digits until the block has at least min digits.
func (b *Block) Pad(min int) {
	for len(b.Digits) < min {
		b.Digits = append(b.Digits, 0)
	}
}

// Scientific reports whether Format uses scientific notation with o.
func (b *Block) Scientific(o *options.WriteOptions) bool {
	return b.Exp < o.NegativeExponentBreak || b.Exp > o.PositiveExponentBreak
}

// Format appends the text of the block, laid out per o, to dst.
func (b *Block) Format(dst []byte, o *options.WriteOptions) []byte {
	if b.Scientific(o) {
		return b.scientific(dst, o)
	}

	if b.Exp < 0 {
		dst = append(dst, '0', o.DecimalPoint)
		for i := int32(-1); i > b.Exp; i-- {
			dst = append(dst, '0')
		}

		return b.digits(dst, b.Digits)
	}

	n := int(b.Exp) + 1
	if n >= len(b.Digits) {
		dst = b.digits(dst, b.Digits)
		for i := len(b.Digits); i < n; i++ {
			dst = append(dst, '0')
		}

		return b.point(dst, o)
	}

	dst = b.digits(dst, b.Digits[:n])
	dst = append(dst, o.DecimalPoint)

	return b.digits(dst, b.Digits[n:])
}

func (b *Block) scientific(dst []byte, o *options.WriteOptions) []byte {
	dst = b.digits(dst, b.Digits[:1])
	if len(b.Digits) > 1 {
		dst = append(dst, o.DecimalPoint)
		dst = b.digits(dst, b.Digits[1:])
	} else {
		dst = b.point(dst, o)
	}

	dst = append(dst, o.ExponentMarker())

	// The radix was validated with the options.
	dst, _ = integer.Append(dst, b.Exp, o.Radix)

	return dst
}

// point appends the ".0" of a number without fraction digits.
func (b *Block) point(dst []byte, o *options.WriteOptions) []byte {
	if o.TrimFloats {
		return dst
	}

	return append(dst, o.DecimalPoint, '0')
}

func (b *Block) digits(dst, ds []byte) []byte {
	for _, d := range ds {
		dst = append(dst, integer.Digits[d])
	}

	return dst
}

// Parse builds a block from digit characters with an optional point, such as
// "1.25" or "0.0031". Leading zeros are skipped and the result is trimmed.
func Parse(s string, radix uint32) (b Block, err error) {
	b = Block{Radix: radix}

	point, seen := -1, 0
	b.Exp = -1

	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			if point >= 0 {
				return b, Error.New("multiple points in %q", s)
			}

			point = seen
			continue
		}

		v, ok := options.DigitValue(s[i], radix)
		if !ok {
			return b, Error.New("invalid digit %q in %q", s[i], s)
		}

		if v == 0 && len(b.Digits) == 0 {
			seen++
			continue
		}

		if len(b.Digits) == 0 {
			b.Exp = int32(seen)
		}

		b.Digits = append(b.Digits, byte(v))
		seen++
	}

	if len(b.Digits) == 0 {
		return Zero(radix), nil
	}

	if point < 0 {
		point = seen
	}

	b.Exp = int32(point) - b.Exp - 1
	b.Trim()

	return b, nil
}
