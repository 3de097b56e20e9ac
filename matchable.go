package matchable

import "go.dw1.io/matchable/regexp"

// Kind identifies which variant a Matchable holds.
type Kind uint8

const (
	// KindStr is an exact-match literal.
	KindStr Kind = iota
	// KindRegex is a compiled regular expression.
	KindRegex
)

func (k Kind) String() string {
	switch k {
	case KindStr:
		return "str"
	case KindRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// Matchable is either an exact string or a compiled regular expression.
//
// The zero value is Str(""), which only matches the empty string. A
// Matchable is immutable and safe for concurrent use.
type Matchable struct {
	kind Kind
	str  string
	re   *regexp.Regexp
}

// Str returns a Matchable that matches text equal to s. s is stored
// verbatim.
func Str(s string) Matchable {
	return Matchable{kind: KindStr, str: s}
}

// Regex compiles pattern and returns a Matchable that matches any text
// containing a match of it.
func Regex(pattern string) (Matchable, error) {
	return RegexFlags(pattern, "")
}

// RegexFlags is like Regex but applies flags to the whole pattern. Supported
// flags are "i" (ignore case), "m" (multi-line anchors) and "s" (dot matches
// newline).
func RegexFlags(pattern, flags string) (Matchable, error) {
	f, err := regexp.ParseFlags(flags)
	if err != nil {
		return Matchable{}, &InvalidPatternError{Pattern: pattern, Flags: flags, Err: err}
	}

	re, err := regexp.CompileFlags(pattern, f)
	if err != nil {
		return Matchable{}, &InvalidPatternError{Pattern: pattern, Flags: flags, Err: err}
	}

	return FromRegexp(re), nil
}

// MustRegex is like Regex but panics if pattern does not compile.
func MustRegex(pattern string) Matchable {
	m, err := Regex(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRegexp wraps an already compiled regular expression. A nil re yields
// the zero value, Str("").
func FromRegexp(re *regexp.Regexp) Matchable {
	if re == nil {
		return Matchable{}
	}
	return Matchable{kind: KindRegex, re: re}
}

// IsMatch reports whether text matches m.
//
// A string matches only if it is byte-for-byte equal to text. A regular
// expression matches if it is found anywhere in text; anchors in the pattern
// are respected.
func (m Matchable) IsMatch(text string) bool {
	if m.kind == KindRegex {
		return m.re.MatchString(text)
	}
	return m.str == text
}

// Kind returns the variant held by m.
func (m Matchable) Kind() Kind { return m.kind }

// IsRegex reports whether m holds a regular expression.
func (m Matchable) IsRegex() bool { return m.kind == KindRegex }

// String returns the literal text of a string, or the source pattern of a
// regular expression without its flags.
func (m Matchable) String() string {
	if m.kind == KindRegex {
		return m.re.String()
	}
	return m.str
}

// Flags returns the canonical flags of a regular expression, e.g. "is". It
// is empty for strings.
func (m Matchable) Flags() string {
	if m.kind == KindRegex {
		return m.re.Flags().String()
	}
	return ""
}

// Regexp returns the compiled regular expression, or nil for strings.
func (m Matchable) Regexp() *regexp.Regexp {
	return m.re
}
