// Package matchable provides a value that is either an exact string or a
// regular expression, and checks whether a piece of text matches it.
//
//	matchable.Str("Abc").IsMatch("Abc")          // true
//	matchable.Str("Abc").IsMatch("abc")          // false
//	matchable.MustRegex("abc.").IsMatch("xabcd") // true
//
// A plain string always means an exact match. A regular expression has to be
// asked for explicitly, either with [Regex] or, when decoding JSON or YAML,
// with the tagged form:
//
//	"hello"                          -> Str("hello")
//	{"str": "hello"}                 -> Str("hello")
//	{"regex": "h.llo"}               -> Regex("h.llo")
//	{"regex": "h.llo", "flags": "i"} -> case-insensitive Regex("h.llo")
//
// Regular expressions are compiled as soon as they are constructed or
// decoded; a pattern that does not compile is reported as an
// [*InvalidPatternError] and never reaches matching.
//
// Two values are equal when they have the same kind and the same text. For
// regular expressions that is the source text and flags, not the behavior:
// "a|b" and "b|a" are different values.
package matchable
