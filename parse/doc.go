// Package parse converts numeric text in radix 2 through 36 to the correctly
// rounded native float.
//
// A number is first scanned into its syntactic parts, then resolved by up to
// three tiers, each either conclusive or handing off to the next:
//
//  | tier     | method                                   | conclusive when                 |
//  |----------|------------------------------------------|---------------------------------|
//  | Exact    | power of two scaling, or one native      | radix is a power of two, or the |
//  |          | multiply/divide by an exact power        | mantissa and power are exact    |
//  | Extended | 64-bit mantissa times cached power with  | the error bound cannot change   |
//  |          | tracked error                            | the rounding                    |
//  | Bigcomp  | 128-bit retry, then the digits of the    | always                          |
//  |          | halfway point compared to the input      |                                 |
//  |----------|------------------------------------------|---------------------------------|
//
// Errors are measured in eighths of the last mantissa bit. The Bigcomp tier
// takes b, the Extended result rounded toward zero, and decides between b and
// its successor by generating the digits of b+h, the halfway point, exactly:
//
//  input < b+h  ->  b
//  input > b+h  ->  b+1
//  input = b+h  ->  whichever of the two is even
//
// Lossy parsing stops after the Extended tier.
package parse
