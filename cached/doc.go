// Package cached provides tables of powers of a radix as extended floats.
//
// A table holds the powers r^k for every k in [-Bias, -Bias+Step*len(Large))
// split into a large power and a small residual:
//
//  r^k = Large[i] * Small[j]    where k + Bias = i*Step + j, 0 <= j < Step
//
// Step is the largest stride with r^Step <= 2^27, which for radix 10 is 8.
// Small powers are exact. Large powers are rounded to nearest, so each entry
// is within half a unit in the last place of the true power. The extended
// parser relies on that bound.
//
// Tables are built on first use for each radix and width from math/big and
// are immutable afterwards, so they may be shared freely between goroutines.
package cached
