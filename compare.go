package matchable

import (
	"strings"

	"go.dw1.io/matchable/internal/wyhash"
)

// Equal reports whether m and other have the same kind and text. Regular
// expressions compare by source pattern and flags; behaviorally equivalent
// but differently written patterns are not equal.
func (m Matchable) Equal(other Matchable) bool {
	return Compare(m, other) == 0
}

// Compare orders a and b: strings sort before regular expressions, then by
// text, then by flags. It returns -1, 0 or +1 and can be passed to
// slices.SortFunc.
func Compare(a, b Matchable) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}

	if c := strings.Compare(a.String(), b.String()); c != 0 {
		return c
	}
	return strings.Compare(a.Flags(), b.Flags())
}

// Hash returns a 64-bit hash of m consistent with Equal.
func (m Matchable) Hash() uint64 {
	return m.HashSeed(0)
}

// HashSeed is like Hash with a caller-provided seed.
func (m Matchable) HashSeed(seed uint64) uint64 {
	d := wyhash.New(seed)
	_ = d.WriteByte(byte(m.kind))
	if m.kind == KindRegex {
		_, _ = d.WriteString(m.Flags())
		_ = d.WriteByte(0)
	}
	_, _ = d.WriteString(m.String())
	return d.Sum64()
}
