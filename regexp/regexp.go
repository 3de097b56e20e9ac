package regexp

import (
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (PCRE-compatible) depending on the
// pattern features detected at compile time.
//
// A Regexp is immutable and safe for concurrent use.
type Regexp struct {
	pattern string
	flags   Flags
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses a regular expression and returns a compiled Regexp.
// Compilation errors are returned exactly as the selected engine reports them.
func Compile(pattern string) (*Regexp, error) {
	return CompileFlags(pattern, 0)
}

// CompileFlags is like Compile but applies flags to the whole pattern.
// Patterns that require PCRE/Perl-only features (detected by needsPCRE) are
// compiled with regexp2; everything else uses coregex.
func CompileFlags(pattern string, flags Flags) (*Regexp, error) {
	if needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, flags.options())
		if err != nil {
			return nil, err
		}
		return &Regexp{pattern: pattern, flags: flags, pcre: re}, nil
	}

	re, err := coregex.Compile(flags.inline() + pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, flags: flags, core: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether s contains any match of pattern.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source pattern used to compile the Regexp, without any
// flags.
func (r *Regexp) String() string {
	return r.pattern
}

// Flags returns the flags the Regexp was compiled with.
func (r *Regexp) Flags() Flags {
	return r.flags
}

// MatchString reports whether s contains any match of the Regexp. The search
// is unanchored unless the pattern itself anchors.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	// regexp2 only errors on match timeouts, which are never set here.
	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// Match reports whether b contains any match of the Regexp.
func (r *Regexp) Match(b []byte) bool {
	if r.core != nil {
		return r.core.Match(b)
	}

	return r.MatchString(string(b))
}
