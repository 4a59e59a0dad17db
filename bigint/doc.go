// Package bigint provides a fixed-capacity arbitrary-precision unsigned
// integer for the exact paths of the float algorithms.
//
// A Bigint is a little-endian array of 32-bit limbs and a length:
//
//  | limbs[0] | limbs[1] | ... | limbs[n-1] | 0 | 0 | ... | 0 |
//  |----------|----------|-----|------------|---|---|-----|---|
//  | 2^0      | 2^32     |     | 2^(32(n-1))|  unused (zero) |
//
// The most significant used limb is never zero: every mutating operation
// trims. Limbs past the length are always zero, so operations may read a
// shorter operand as though it were zero-extended.
//
// Capacity is fixed at Capacity limbs. The float algorithms need at most a
// third of it. An operation whose result would not fit panics; callers are
// expected to stay inside that bound, the same as the other preconditions
// documented on each method (Sub requires the minuend to be the larger value,
// Div and QuoRem require a non-zero divisor).
//
// Multiplication is schoolbook below karatsubaCutoff limbs and Karatsuba
// above it. Operands that differ in length by at least a factor of two are
// multiplied by chunking the longer one (uneven Karatsuba).
package bigint
