// Package lexical converts between numbers and their text in any radix from
// 2 to 36.
//
// Floats parse with correct rounding through three escalating tiers (see
// package parse) and write the shortest digits that parse back to the same
// value (see package write). Integers are handled for every Go integer width
// with overflow reporting.
//
// Conversion failures are *lexerr.Error values carrying a code and byte
// index. Invalid options are reported as errors of the options class.
package lexical
