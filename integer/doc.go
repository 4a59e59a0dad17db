// Package integer parses and formats Go integers of every width in radix 2
// through 36.
//
// Parsing accepts an optional sign followed by digits:
//
//  [+|-] digit { digit }
//
// A '-' on an unsigned type is an invalid digit. Values past the range of the
// type saturate: the result is the nearest bound and the error is Overflow
// (or Underflow for negative values) located at the start of the number.
// Digits keep being consumed after the value saturates, so the consumed count
// still covers the whole number.
//
// Formatting writes uppercase digits with a leading '-' for negative values.
package integer
