package vector

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned when text or encoded data does not describe a vector.
var ErrMalformed = errors.New("vector: malformed input")

// Parse decodes the text form "[x;y]". Spaces around either number are
// allowed, so the output of String parses back.
func Parse(s string) (*Vector2, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("%w: %q is not bracketed", ErrMalformed, s)
	}
	parts := strings.Split(s[1:len(s)-1], ";")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q has %d components, want 2", ErrMalformed, s, len(parts))
	}
	x, err := parseCoord("x", parts[0])
	if err != nil {
		return nil, err
	}
	y, err := parseCoord("y", parts[1])
	if err != nil {
		return nil, err
	}
	return New(x, y), nil
}

func parseCoord(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}
	return f, checkFinite(name, f)
}

func checkFinite(name string, f float64) error {
	if !isFinite(f) {
		return fmt.Errorf("%w: %s is %v", ErrMalformed, name, f)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Vector2) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vector2) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = *p
	return nil
}

// partialRecord tracks which keys were present so absent ones keep their
// current value.
type partialRecord struct {
	X *float64 `json:"x" yaml:"x"`
	Y *float64 `json:"y" yaml:"y"`
}

func (p partialRecord) check() error {
	if p.X != nil {
		if err := checkFinite("x", *p.X); err != nil {
			return err
		}
	}
	if p.Y != nil {
		return checkFinite("y", *p.Y)
	}
	return nil
}

func (p partialRecord) applyTo(v *Vector2) {
	if p.X != nil {
		v.X = *p.X
	}
	if p.Y != nil {
		v.Y = *p.Y
	}
}

func fromPair(v *Vector2, pair []float64) error {
	if len(pair) != 2 {
		return fmt.Errorf("%w: sequence has %d elements, want 2", ErrMalformed, len(pair))
	}
	if err := checkFinite("x", pair[0]); err != nil {
		return err
	}
	if err := checkFinite("y", pair[1]); err != nil {
		return err
	}
	v.X, v.Y = pair[0], pair[1]
	return nil
}

// MarshalJSON encodes v as {"x":..,"y":..}.
func (v Vector2) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToObject())
}

// UnmarshalJSON accepts a record, a two-element array or a text string.
func (v *Vector2) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty JSON", ErrMalformed)
	}
	switch data[0] {
	case '{':
		var rec partialRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("decoding vector record: %w", err)
		}
		if err := rec.check(); err != nil {
			return err
		}
		rec.applyTo(v)
		return nil
	case '[':
		var pair []float64
		if err := json.Unmarshal(data, &pair); err != nil {
			return fmt.Errorf("decoding vector array: %w", err)
		}
		return fromPair(v, pair)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding vector text: %w", err)
		}
		return v.UnmarshalText([]byte(s))
	case 'n':
		// null leaves v untouched, as encoding/json does for other types.
		return nil
	default:
		return fmt.Errorf("%w: unexpected JSON %q", ErrMalformed, data)
	}
}

// MarshalYAML encodes v as a mapping with keys x and y.
func (v Vector2) MarshalYAML() (interface{}, error) {
	return v.ToObject(), nil
}

// UnmarshalYAML accepts a mapping, a two-element sequence or a text scalar.
func (v *Vector2) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var rec partialRecord
		if err := node.Decode(&rec); err != nil {
			return fmt.Errorf("decoding vector mapping: %w", err)
		}
		if err := rec.check(); err != nil {
			return err
		}
		rec.applyTo(v)
		return nil
	case yaml.SequenceNode:
		// An unquoted [x; y] reads as a flow sequence holding one scalar.
		if len(node.Content) == 1 && strings.Contains(node.Content[0].Value, ";") {
			return v.UnmarshalText([]byte("[" + node.Content[0].Value + "]"))
		}
		var pair []float64
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("decoding vector sequence: %w", err)
		}
		return fromPair(v, pair)
	case yaml.ScalarNode:
		return v.UnmarshalText([]byte(node.Value))
	default:
		return fmt.Errorf("%w: line %d: unsupported YAML node", ErrMalformed, node.Line)
	}
}
