// Package write formats native floats in radix 2 through 36.
//
// Digits come from one of three generators, all producing a decimal.Block of
// significant digits and a scientific exponent:
//
//  | radix          | generator                                            |
//  |----------------|------------------------------------------------------|
//  | 10             | Grisu2 over the cached powers of ten, shortest in    |
//  |                | nearly all cases and always round-tripping          |
//  | power of two   | the mantissa regrouped into digits of the radix     |
//  | anything else  | exact digit generation on big integers, stopping as  |
//  |                | soon as the digits identify the value               |
//  |----------------|------------------------------------------------------|
//
// The block is then rounded to the maximum significant digits, padded to the
// minimum, and laid out in positional or scientific notation.
package write
