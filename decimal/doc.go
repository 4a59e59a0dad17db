// Package decimal provides a block of significant digits in any radix, the
// shared post-processing stage of the float writers.
//
// The equation for a block is:
//
//  number = d0.d1d2...dn * radix ^ exp
//
// Where d0 is the first significant digit (nonzero unless the number is
// zero) and exp is the scientific exponent. For example, in radix 10:
//
//  1.23  = [1 2 3] * 10^0
//  0.001 = [1]     * 10^-3
//
// Rounding
//
// Round limits the block to a maximum number of digits. NearestTieEven
// compares the dropped tail against half a unit of the last kept digit. In an
// even radix, half is the digit radix/2 followed by zeros:
//
//  radix 10, keep 4: 1.234|5     tie, 4 is even, round down -> 1.234
//                    1.234|50001 above, round up          -> 1.235
//
// In an odd radix half is the repeating digit (radix-1)/2, which a finite
// tail never equals:
//
//  radix 3, keep 2: 1.1|1111 below, round down -> 1.1
//                   1.1|112  above, round up   -> 1.2
//
// A carry out of the first digit yields [1] and increments exp. Truncate
// simply drops the tail.
//
// Layout
//
// Format chooses scientific notation when exp is below the negative break or
// above the positive break, otherwise positional notation:
//
//  | exp              | layout        | example (radix 10) |
//  |------------------|---------------|--------------------|
//  | exp < neg break  | d.ddd e exp   | 1.5e-7             |
//  | exp > pos break  | d.ddd e exp   | 1.0e30             |
//  | 0 <= exp         | ddd.ddd       | 1500.25            |
//  | exp < 0          | 0.000ddd      | 0.00015            |
//  |------------------|---------------|--------------------|
//
// A number without fraction digits keeps a trailing ".0" unless trimming is
// requested. The exponent is written in the radix, with a '-' for negative
// values and no '+'.
package decimal
