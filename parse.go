package matchable

import "strings"

// Parse reads the slash-delimited notation common in configuration files.
// "/src/" and "/src/flags" become a regular expression; any other string,
// including "/src" and "src/i", becomes an exact string.
//
// Everything after the last slash is read as flags, and only "i", "m" and
// "s" are accepted. A path such as "/usr/local/bin" is therefore an
// *InvalidPatternError (flags "bin"), not an exact string; callers holding
// such values should use Str.
//
// Decoding never applies this notation on its own; callers opt in by
// calling Parse.
func Parse(s string) (Matchable, error) {
	src, flags, ok := splitSlashed(s)
	if !ok {
		return Str(s), nil
	}
	return RegexFlags(src, flags)
}

// splitSlashed splits "/src/flags" at the last slash.
func splitSlashed(s string) (src, flags string, ok bool) {
	rest, ok := strings.CutPrefix(s, "/")
	if !ok {
		return "", "", false
	}

	i := strings.LastIndexByte(rest, '/')
	if i < 0 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}
