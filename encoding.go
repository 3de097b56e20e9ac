package matchable

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"go.dw1.io/matchable/json"
)

// Keys of the tagged form. "pattern" is an alias of "regex".
const (
	keyStr     = "str"
	keyRegex   = "regex"
	keyPattern = "pattern"
	keyFlags   = "flags"
)

// MarshalJSON encodes a string as a bare JSON string and a regular
// expression as {"regex": source}, adding "flags" when any are set.
func (m Matchable) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.value())
}

// UnmarshalJSON accepts a bare string or the tagged object form. Regular
// expressions are compiled immediately. null leaves m unchanged. Numbers
// keep their literal text, so 12345678901234567890 becomes
// Str("12345678901234567890").
func (m *Matchable) UnmarshalJSON(data []byte) error {
	v, err := decodeJSON(data)
	if err != nil {
		return err
	}

	return m.set(v)
}

// decodeJSON decodes data into a generic value, keeping numbers as
// json.Number.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "matchable: decode json")
	}
	return v, nil
}

// MarshalYAML returns the same shapes as MarshalJSON.
func (m Matchable) MarshalYAML() (any, error) {
	return m.value(), nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (m *Matchable) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return errors.Wrap(err, "matchable: decode yaml")
	}

	return m.set(v)
}

func (m *Matchable) set(v any) error {
	if v == nil {
		return nil
	}

	parsed, err := FromAny(v)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

func (m Matchable) value() any {
	if m.kind != KindRegex {
		return m.str
	}

	v := map[string]string{keyRegex: m.re.String()}
	if flags := m.Flags(); flags != "" {
		v[keyFlags] = flags
	}
	return v
}

// FromAny builds a Matchable from an already decoded configuration value,
// such as one produced by encoding/json, yaml or viper.
//
// Strings and other scalars become exact strings. Maps must hold exactly one
// of "str", "regex" or "pattern", plus an optional "flags" for regular
// expressions.
func FromAny(v any) (Matchable, error) {
	switch v := v.(type) {
	case Matchable:
		return v, nil
	case string:
		return Str(v), nil
	case map[string]any:
		return fromMap(v)
	case map[any]any:
		m, err := cast.ToStringMapE(v)
		if err != nil {
			return Matchable{}, errors.Wrapf(ErrUnsupported, "%T", v)
		}
		return fromMap(m)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return fromMap(m)
	}

	s, err := scalar(v)
	if err != nil {
		return Matchable{}, err
	}
	return Str(s), nil
}

func fromMap(m map[string]any) (Matchable, error) {
	var key string
	for _, k := range [...]string{keyStr, keyRegex, keyPattern} {
		if _, ok := m[k]; !ok {
			continue
		}
		if key != "" {
			return Matchable{}, errors.Wrapf(ErrUnsupported, "keys %q and %q are mutually exclusive", key, k)
		}
		key = k
	}
	if key == "" {
		return Matchable{}, errors.Wrapf(ErrUnsupported, "expected one of %q, %q or %q", keyStr, keyRegex, keyPattern)
	}

	for k := range m {
		if k != key && k != keyFlags {
			return Matchable{}, errors.Wrapf(ErrUnsupported, "unknown key %q", k)
		}
	}

	text, err := scalar(m[key])
	if err != nil {
		return Matchable{}, errors.WithMessagef(err, "value of %q", key)
	}

	var flags string
	if f, ok := m[keyFlags]; ok {
		if key == keyStr {
			return Matchable{}, errors.Wrapf(ErrUnsupported, "%q does not take %q", keyStr, keyFlags)
		}
		if flags, err = scalar(f); err != nil {
			return Matchable{}, errors.WithMessagef(err, "value of %q", keyFlags)
		}
	}

	if key == keyStr {
		return Str(text), nil
	}
	return RegexFlags(text, flags)
}

// scalar stringifies strings, numbers and booleans. json.Number keeps its
// literal text; float64 values from other decoders are formatted by
// spf13/cast and may lose integer precision beyond 2^53.
func scalar(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case nil, map[string]any, map[any]any, []any:
		return "", errors.Wrapf(ErrUnsupported, "%T is not a scalar", v)
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", errors.Wrapf(ErrUnsupported, "%T", v)
	}
	return s, nil
}
