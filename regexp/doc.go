// Package regexp compiles the regular expressions held by a Matchable.
//
// Patterns are compiled with coregex (an accelerated RE2-compatible engine)
// by default. When the pattern requires PCRE/Perl features that RE2 cannot
// execute, such as lookarounds or backreferences, the package falls back to
// [regexp2].
//
// A compiled [Regexp] always remembers the exact source text and flags it was
// built from, so callers can compare, hash and serialize it without touching
// the compiled form.
package regexp
