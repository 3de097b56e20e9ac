package matchable

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.dw1.io/matchable/json"
	"go.dw1.io/matchable/regexp"
)

// Regexp is a regular expression that decodes from a bare string. Unlike
// Matchable, every decoded string is compiled as a pattern.
type Regexp struct {
	*regexp.Regexp
}

// CompileRegexp compiles pattern into a Regexp.
func CompileRegexp(pattern string) (Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Regexp{}, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return Regexp{re}, nil
}

// Matchable converts r into a regular-expression Matchable. An empty r, such
// as one left by decoding null, yields the zero value Str("").
func (r Regexp) Matchable() Matchable {
	return FromRegexp(r.Regexp)
}

// MarshalJSON encodes the source pattern as a JSON string, or null when r is
// empty.
func (r Regexp) MarshalJSON() ([]byte, error) {
	if r.Regexp == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON compiles a JSON string. null leaves r unchanged.
func (r *Regexp) UnmarshalJSON(data []byte) error {
	v, err := decodeJSON(data)
	if err != nil {
		return err
	}

	return r.set(v)
}

// MarshalYAML returns the source pattern, or nil when r is empty.
func (r Regexp) MarshalYAML() (any, error) {
	if r.Regexp == nil {
		return nil, nil
	}
	return r.String(), nil
}

// UnmarshalYAML compiles a YAML scalar.
func (r *Regexp) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return errors.Wrap(err, "matchable: decode yaml")
	}

	return r.set(v)
}

func (r *Regexp) set(v any) error {
	if v == nil {
		return nil
	}

	pattern, err := scalar(v)
	if err != nil {
		return err
	}

	compiled, err := CompileRegexp(pattern)
	if err != nil {
		return err
	}

	*r = compiled
	return nil
}
