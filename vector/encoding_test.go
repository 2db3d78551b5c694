package vector

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want *Vector2
	}{
		{"[3;4]", New(3, 4)},
		{"[3; 4]", New(3, 4)},
		{"  [ -1.5 ;0.25 ] ", New(-1.5, 0.25)},
		{"[1e3;-2e-2]", New(1000, -0.02)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "3;4", "[3;4", "[3]", "[1;2;3]", "[a;4]", "[3;b]", "[NaN;1]", "[1;Inf]", "[-Inf; 0]", "[1e400;0]"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseRoundTripsString(t *testing.T) {
	for _, v := range []*Vector2{New(3, 4), New(-0.125, 1e-7), New(123456.5, -9)} {
		got, err := Parse(v.String())
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestTextMarshaling(t *testing.T) {
	text, err := New(3, 4).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "[3; 4]", string(text))

	v := Zero()
	require.NoError(t, v.UnmarshalText([]byte("[5;6]")))
	require.Equal(t, New(5, 6), v)

	require.ErrorIs(t, v.UnmarshalText([]byte("5,6")), ErrMalformed)
	require.Equal(t, New(5, 6), v)

	require.ErrorIs(t, v.UnmarshalText([]byte("[NaN; +Inf]")), ErrMalformed)
	require.Equal(t, New(5, 6), v)
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(New(3, 4))
	require.NoError(t, err)
	require.JSONEq(t, `{"x":3,"y":4}`, string(data))

	var doc struct {
		Record  Vector2 `json:"record"`
		Array   Vector2 `json:"array"`
		Text    Vector2 `json:"text"`
		Partial Vector2 `json:"partial"`
	}
	doc.Partial = Vector2{X: 1, Y: 2}

	in := `{"record":{"x":1,"y":-1},"array":[2,3],"text":"[4; 5]","partial":{"y":9}}`
	require.NoError(t, json.Unmarshal([]byte(in), &doc))
	require.Equal(t, Vector2{X: 1, Y: -1}, doc.Record)
	require.Equal(t, Vector2{X: 2, Y: 3}, doc.Array)
	require.Equal(t, Vector2{X: 4, Y: 5}, doc.Text)
	require.Equal(t, Vector2{X: 1, Y: 9}, doc.Partial)
}

func TestJSONRejects(t *testing.T) {
	for _, in := range []string{`[1]`, `[1,2,3]`, `"nope"`, `true`, `"[NaN; 0]"`} {
		t.Run(in, func(t *testing.T) {
			var v Vector2
			require.Error(t, json.Unmarshal([]byte(in), &v))
		})
	}
}

func TestYAML(t *testing.T) {
	data, err := yaml.Marshal(New(1, 2))
	require.NoError(t, err)
	require.Equal(t, "x: 1\ny: 2\n", string(data))

	var doc struct {
		Mapping  Vector2 `yaml:"mapping"`
		Sequence Vector2 `yaml:"sequence"`
		Quoted   Vector2 `yaml:"quoted"`
		Bare     Vector2 `yaml:"bare"`
		Partial  Vector2 `yaml:"partial"`
	}
	doc.Partial = Vector2{X: 7, Y: 7}

	in := `
mapping: {x: 1, y: 2}
sequence: [3, 4]
quoted: "[5; 6]"
bare: [7; 8]
partial:
  x: -1
`
	require.NoError(t, yaml.Unmarshal([]byte(in), &doc))
	require.Equal(t, Vector2{X: 1, Y: 2}, doc.Mapping)
	require.Equal(t, Vector2{X: 3, Y: 4}, doc.Sequence)
	require.Equal(t, Vector2{X: 5, Y: 6}, doc.Quoted)
	require.Equal(t, Vector2{X: 7, Y: 8}, doc.Bare)
	require.Equal(t, Vector2{X: -1, Y: 7}, doc.Partial)
}

func TestYAMLRejects(t *testing.T) {
	for _, in := range []string{"v: [1, 2, 3]", "v: nope", "v: {x: a}", `v: "[NaN; 0]"`, "v: [.inf, 0]", "v: {y: .nan}"} {
		t.Run(in, func(t *testing.T) {
			var doc struct {
				V Vector2 `yaml:"v"`
			}
			require.Error(t, yaml.Unmarshal([]byte(in), &doc))
		})
	}
}
