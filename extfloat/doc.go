// Package extfloat provides extended-precision floats: a mantissa and a
// binary exponent representing
//
//  value = Mant * 2^Exp
//
// The mantissa is a type parameter so the same algorithms run over 64-bit
// (U64) and 128-bit (U128) mantissas. A float is normalized when the most
// significant bit of its mantissa is set, or the mantissa is zero.
//
// Mul is the only inexact operation: it keeps the high half of the product,
// rounded by the top bit of the low half, so its error is at most half a unit
// in the last place.
//
// Native floats are described by Info (mantissa bits, exponent bits, bias) in
// the style of strconv. Round converts a normalized ExtendedFloat back into a
// native bit pattern:
//
//  | Mant (W bits)                              |
//  |------------------------|-------------------|
//  | 1 + MantBits kept bits | RoundingShift bits|
//
// Denormal results drop additional low bits. Values past the largest finite
// float round to infinity and values below half of the smallest denormal
// round to zero.
package extfloat
