// Package options holds the configuration consumed by the parsers and
// writers: the number Format (syntax), ParseOptions and WriteOptions.
//
// A Format describes the accepted syntax:
//
//  [sign] [0 BasePrefix] digits [DecimalPoint digits] [Exponent [sign] digits] [BaseSuffix]
//
// All digits, including exponent digits, are in Radix, and the exponent
// base is Radix. When Exponent is zero the marker defaults to 'e' below radix
// 15 and '^' otherwise, since 'e' is a digit from radix 15 up. Markers,
// prefixes, suffixes and special values match case-insensitively.
//
// Special values are matched before digits, so in radixes where their
// spellings are digits they still parse as NaN or infinity unless NoSpecial is
// set.
//
// DigitSeparator, when set, may appear between two digits of any digit run.
//
// The set of radixes compiled in is a build capability: building with the
// lexical_decimal tag restricts Supported to radix 10.
package options
