//go:build lexical_decimal

package options

// Supported reports whether radix r is available in this build.
func Supported(r uint32) bool {
	return r == 10
}
