package parse

import (
	"github.com/calebcase/lexical/extfloat"
	"github.com/calebcase/lexical/options"
)

// special matches a signed NaN or infinity spelling at the start of b,
// preferring the longest match.
func special(b []byte, info *extfloat.Info, opts *options.ParseOptions) (bits uint64, n int, ok bool) {
	i, neg := 0, false
	if len(b) > 0 && (b[0] == '+' || b[0] == '-') {
		neg = b[0] == '-'
		i++
	}

	best := 0
	for _, sp := range []struct {
		s    string
		bits uint64
	}{
		{opts.Infinity, info.Inf()},
		{opts.Inf, info.Inf()},
		{opts.NaN, info.NaN()},
	} {
		if len(sp.s) > best && hasPrefixFold(b[i:], sp.s) {
			best, bits = len(sp.s), sp.bits
		}
	}

	if best == 0 {
		return 0, 0, false
	}

	if neg {
		bits |= info.SignBit()
	}

	return bits, i + best, true
}

func hasPrefixFold(b []byte, s string) bool {
	if len(b) < len(s) {
		return false
	}

	for i := 0; i < len(s); i++ {
		if lower(b[i]) != lower(s[i]) {
			return false
		}
	}

	return true
}
