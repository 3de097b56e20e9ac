package regexp

import "strings"

// pcreGroups are group openers RE2 rejects but regexp2 (.NET/PCRE syntax)
// accepts. PCRE2-only verbs and recursion are left out: neither engine can
// compile them.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreGroups = []string{
	// lookarounds
	"(?=", "(?!", "(?<=", "(?<!",
	// atomic groups, conditionals, comments
	"(?>", "(?(", "(?#",
	// NOTE: RE2 accepts (?P<name>...) and (?<name>...) but not (?'name'...).
	"(?'",
}

// needsPCRE reports whether pattern uses syntax only regexp2 can compile.
// Only live syntax counts: escaped characters, character classes and \Q..\E
// literals are skipped.
func needsPCRE(pattern string) bool {
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\':
			if i+1 >= len(pattern) {
				return false
			}
			if pattern[i+1] == 'Q' {
				end := strings.Index(pattern[i+2:], `\E`)
				if end < 0 {
					return false
				}
				i += 2 + end + 1
				continue
			}
			if !inClass && pcreEscape(pattern[i+1:]) {
				return true
			}
			i++
		case inClass:
			if c == '[' && strings.HasPrefix(pattern[i:], "[:") {
				if end := strings.Index(pattern[i+2:], ":]"); end >= 0 {
					i += 2 + end + 1
				}
			} else if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			// a ] right after [ or [^ is a literal member
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				i++
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				i++
			}
		case c == '(':
			if pcreGroup(pattern[i:]) {
				return true
			}
		}
	}
	return false
}

func pcreGroup(s string) bool {
	for _, g := range pcreGroups {
		if strings.HasPrefix(s, g) {
			return true
		}
	}
	return false
}

// pcreEscape reports whether s, the text after an unescaped backslash,
// starts an escape RE2 does not know: a backreference \1 .. \9, a named
// backreference \k<..> or \k'..', or \e, \G, \Z.
func pcreEscape(s string) bool {
	switch c := s[0]; {
	case c >= '1' && c <= '9':
		return true
	case c == 'e', c == 'G', c == 'Z':
		return true
	case c == 'k':
		return len(s) > 1 && (s[1] == '<' || s[1] == '\'')
	}
	return false
}
