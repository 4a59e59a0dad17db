// Package lexerr defines the error taxonomy shared by the numeric parsers and
// writers.
//
// Every failure is an *Error carrying a Code and the byte Index of the first
// offending character:
//
//  | Code           | Meaning                                          |
//  |----------------|--------------------------------------------------|
//  | Empty          | no characters where a number must start          |
//  | InvalidDigit   | a byte that cannot continue the number           |
//  | Overflow       | magnitude exceeds the type maximum               |
//  | Underflow      | negative magnitude exceeds the type minimum      |
//  | EmptyMantissa  | neither integer nor fraction digits              |
//  | EmptyInteger   | integer digits required but missing              |
//  | EmptyFraction  | fraction digits required but missing             |
//  | EmptyExponent  | exponent marker not followed by digits           |
//  | BufferTooSmall | output buffer below the documented maximum       |
//
// Errors compare equal under errors.Is when their codes match, so the
// package level sentinels (ErrEmpty, ErrOverflow, ...) can be used as
// targets regardless of index.
package lexerr
