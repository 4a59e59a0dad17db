package lexerr

import "fmt"

// Code identifies the kind of failure.
type Code uint8

// Error codes.
const (
	Empty Code = iota + 1
	InvalidDigit
	Overflow
	Underflow
	EmptyMantissa
	EmptyInteger
	EmptyFraction
	EmptyExponent
	BufferTooSmall
)

var names = [...]string{
	Empty:          "empty",
	InvalidDigit:   "invalid digit",
	Overflow:       "overflow",
	Underflow:      "underflow",
	EmptyMantissa:  "empty mantissa",
	EmptyInteger:   "empty integer",
	EmptyFraction:  "empty fraction",
	EmptyExponent:  "empty exponent",
	BufferTooSmall: "buffer too small",
}

func (c Code) String() string {
	if int(c) < len(names) && names[c] != "" {
		return names[c]
	}

	return fmt.Sprintf("code(%d)", uint8(c))
}

// Error is a numeric conversion failure at a byte index.
type Error struct {
	Code  Code
	Index int
}

// Sentinels for use with errors.Is.
var (
	ErrEmpty          = &Error{Code: Empty}
	ErrInvalidDigit   = &Error{Code: InvalidDigit}
	ErrOverflow       = &Error{Code: Overflow}
	ErrUnderflow      = &Error{Code: Underflow}
	ErrEmptyMantissa  = &Error{Code: EmptyMantissa}
	ErrEmptyInteger   = &Error{Code: EmptyInteger}
	ErrEmptyFraction  = &Error{Code: EmptyFraction}
	ErrEmptyExponent  = &Error{Code: EmptyExponent}
	ErrBufferTooSmall = &Error{Code: BufferTooSmall}
)

// New returns an error with the code at index.
func New(code Code, index int) *Error {
	return &Error{
		Code:  code,
		Index: index,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical: %s at index %d", e.Code, e.Index)
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}
