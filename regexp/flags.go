package regexp

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// Flags is a set of matching modifiers applied to a whole pattern.
type Flags uint8

const (
	// IgnoreCase matches letters case-insensitively (flag "i").
	IgnoreCase Flags = 1 << iota
	// MultiLine makes ^ and $ match at line boundaries (flag "m").
	MultiLine
	// DotAll lets . match \n (flag "s").
	DotAll
)

// flagLetters is ordered; String emits flags in this order.
var flagLetters = [...]struct {
	flag   Flags
	letter byte
}{
	{IgnoreCase, 'i'},
	{MultiLine, 'm'},
	{DotAll, 's'},
}

// ParseFlags parses a flag string such as "im". Letters may repeat and appear
// in any order. The empty string yields no flags.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for i := 0; i < len(s); i++ {
		known := false
		for _, fl := range flagLetters {
			if s[i] == fl.letter {
				f |= fl.flag
				known = true
				break
			}
		}
		if !known {
			return 0, errors.Errorf("regexp: unknown flag %q in %q", s[i], s)
		}
	}

	return f, nil
}

// String returns the canonical flag string, e.g. "ims".
func (f Flags) String() string {
	if f == 0 {
		return ""
	}

	var b strings.Builder
	for _, fl := range flagLetters {
		if f&fl.flag != 0 {
			b.WriteByte(fl.letter)
		}
	}
	return b.String()
}

// inline returns the RE2 inline group that enables f, e.g. "(?is)".
func (f Flags) inline() string {
	if f == 0 {
		return ""
	}
	return "(?" + f.String() + ")"
}

// options maps f onto regexp2. RE2 mode keeps $, \d, \s and \w meaning
// what they mean under coregex.
func (f Flags) options() regexp2.RegexOptions {
	opts := regexp2.RE2
	if f&IgnoreCase != 0 {
		opts |= regexp2.IgnoreCase
	}
	if f&MultiLine != 0 {
		opts |= regexp2.Multiline
	}
	if f&DotAll != 0 {
		opts |= regexp2.Singleline
	}
	return opts
}
