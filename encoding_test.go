package matchable

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"go.dw1.io/matchable/json"
)

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		text  string
		flags string
	}{
		{name: "bare string", input: `"hello"`, kind: KindStr, text: "hello"},
		{name: "bare slashed string stays str", input: `"/h.llo/"`, kind: KindStr, text: "/h.llo/"},
		{name: "tagged str", input: `{"str":"h.llo"}`, kind: KindStr, text: "h.llo"},
		{name: "tagged regex", input: `{"regex":"h.llo"}`, kind: KindRegex, text: "h.llo"},
		{name: "pattern alias", input: `{"pattern":"\\d+"}`, kind: KindRegex, text: `\d+`},
		{name: "regex with flags", input: `{"regex":"h.llo","flags":"i"}`, kind: KindRegex, text: "h.llo", flags: "i"},
		{name: "number", input: `42`, kind: KindStr, text: "42"},
		{name: "bool", input: `true`, kind: KindStr, text: "true"},
		{name: "large integer", input: `12345678901234567890`, kind: KindStr, text: "12345678901234567890"},
		{name: "decimal", input: `1.50`, kind: KindStr, text: "1.50"},
		{name: "tagged number", input: `{"str":9007199254740993}`, kind: KindStr, text: "9007199254740993"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Matchable
			if err := json.Unmarshal([]byte(tt.input), &m); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if m.Kind() != tt.kind || m.String() != tt.text || m.Flags() != tt.flags {
				t.Fatalf("got %v %q %q, want %v %q %q", m.Kind(), m.String(), m.Flags(), tt.kind, tt.text, tt.flags)
			}
		})
	}
}

func TestUnmarshalJSONScenario(t *testing.T) {
	var m Matchable
	if err := json.Unmarshal([]byte(`{"regex":"h.llo"}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !m.Equal(MustRegex("h.llo")) {
		t.Fatalf("got %v, want Regex(h.llo)", m)
	}
	if !m.IsMatch("say hallo") {
		t.Fatal("decoded regex does not match")
	}
}

func TestUnmarshalJSONInvalidPattern(t *testing.T) {
	var m Matchable
	err := m.UnmarshalJSON([]byte(`{"regex":"("}`))

	var ipe *InvalidPatternError
	if !errors.As(err, &ipe) {
		t.Fatalf("error = %v, want *InvalidPatternError", err)
	}
	if ipe.Pattern != "(" {
		t.Fatalf("pattern = %q, want %q", ipe.Pattern, "(")
	}

	if err := json.Unmarshal([]byte(`{"regex":"["}`), &m); err == nil {
		t.Fatal("expected error through json.Unmarshal")
	}
}

func TestUnmarshalJSONRejectsBadShapes(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"str":"a","regex":"b"}`,
		`{"regex":"a","pattern":"b"}`,
		`{"regex":"a","extra":1}`,
		`{"str":"a","flags":"i"}`,
		`{"regex":["a"]}`,
		`{"regex":null}`,
		`{"regex":{"nested":"a"}}`,
		`["a"]`,
	}

	for _, in := range inputs {
		var m Matchable
		err := m.UnmarshalJSON([]byte(in))
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("unmarshal %s: error = %v, want ErrUnsupported", in, err)
		}
	}

	var m Matchable
	if err := m.UnmarshalJSON([]byte(`{"regex":`)); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestUnmarshalJSONNullKeepsValue(t *testing.T) {
	m := Str("keep")
	if err := m.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !m.Equal(Str("keep")) {
		t.Fatalf("null replaced the value with %v", m)
	}
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		m    Matchable
		want string
	}{
		{name: "str", m: Str("hello"), want: `"hello"`},
		{name: "regex", m: MustRegex("h.llo"), want: `{"regex":"h.llo"}`},
		{name: "regex flags", m: mustRegexFlags(t, "h.llo", "i"), want: `{"flags":"i","regex":"h.llo"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.m)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

type rule struct {
	Name  string      `json:"name" yaml:"name"`
	Match Matchable   `json:"match" yaml:"match"`
	Skip  []Matchable `json:"skip,omitempty" yaml:"skip,omitempty"`
}

func TestJSONRoundTrip(t *testing.T) {
	values := []Matchable{
		Str(""),
		Str("Abc"),
		Str(`{"regex":"not really"}`),
		MustRegex(`^\d+$`),
		MustRegex("(?<=a)b"),
		mustRegexFlags(t, "h.llo", "ms"),
	}

	for _, want := range values {
		data, err := json.Marshal(rule{Name: "r", Match: want, Skip: []Matchable{want}})
		if err != nil {
			t.Fatalf("marshal %v: %v", want, err)
		}

		var got rule
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if !got.Match.Equal(want) || len(got.Skip) != 1 || !got.Skip[0].Equal(want) {
			t.Fatalf("round trip of %s produced %v", data, got.Match)
		}
		if got.Match.Kind() != want.Kind() || got.Match.Flags() != want.Flags() {
			t.Fatalf("round trip changed kind or flags: %v", got.Match)
		}
	}
}

func TestUnmarshalYAML(t *testing.T) {
	const doc = `
- name: literal
  match: Abc
- name: tagged
  match:
    regex: abc.
- name: flagged
  match:
    pattern: ABC
    flags: i
  skip:
    - abcd
    - str: "x"
`
	var rules []rule
	if err := yaml.Unmarshal([]byte(doc), &rules); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("got %d rules, want 3", len(rules))
	}

	if !rules[0].Match.Equal(Str("Abc")) {
		t.Fatalf("rule 0 = %v", rules[0].Match)
	}
	if !rules[1].Match.Equal(MustRegex("abc.")) || !rules[1].Match.IsMatch("abcd") {
		t.Fatalf("rule 1 = %v", rules[1].Match)
	}
	if !rules[2].Match.IsRegex() || rules[2].Match.Flags() != "i" || !rules[2].Match.IsMatch("xabcx") {
		t.Fatalf("rule 2 = %v", rules[2].Match)
	}
	if len(rules[2].Skip) != 2 || !rules[2].Skip[0].Equal(Str("abcd")) || !rules[2].Skip[1].Equal(Str("x")) {
		t.Fatalf("rule 2 skip = %v", rules[2].Skip)
	}
}

func TestUnmarshalYAMLInvalidPattern(t *testing.T) {
	var r rule
	err := yaml.Unmarshal([]byte("match:\n  regex: \"(\"\n"), &r)
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("error = %v, want ErrInvalidPattern", err)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	in := []rule{
		{Name: "a", Match: Str("Abc")},
		{Name: "b", Match: mustRegexFlags(t, `\d+`, "i")},
	}

	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}

	var out []rule
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal yaml %s: %v", data, err)
	}

	summary := func(rs []rule) []string {
		var s []string
		for _, r := range rs {
			s = append(s, r.Name, r.Match.Kind().String(), r.Match.String(), r.Match.Flags())
		}
		return s
	}
	if diff := cmp.Diff(summary(in), summary(out)); diff != "" {
		t.Fatalf("yaml round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Matchable
	}{
		{name: "string", input: "a", want: Str("a")},
		{name: "int", input: 7, want: Str("7")},
		{name: "float", input: 1.5, want: Str("1.5")},
		{name: "matchable", input: MustRegex("x"), want: MustRegex("x")},
		{name: "string map", input: map[string]string{"regex": "a.c"}, want: MustRegex("a.c")},
		{name: "any map", input: map[string]any{"str": "a.c"}, want: Str("a.c")},
		{name: "interface map", input: map[any]any{"pattern": "a.c", "flags": "i"}, want: mustRegexFlags(t, "a.c", "i")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.input)
			if err != nil {
				t.Fatalf("FromAny(%v): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("FromAny(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	for _, bad := range []any{nil, []any{"a"}, struct{}{}} {
		if _, err := FromAny(bad); !errors.Is(err, ErrUnsupported) {
			t.Fatalf("FromAny(%#v): error = %v, want ErrUnsupported", bad, err)
		}
	}
}
