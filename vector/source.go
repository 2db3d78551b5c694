package vector

import "strings"

// Source is anything From can read coordinates out of: a Record, a
// Sequence, a Text or another *Vector2.
type Source interface {
	applyTo(v *Vector2)
}

// Record is the keyed form of a vector.
type Record struct {
	X float64 `json:"x" yaml:"x" csv:"x"`
	Y float64 `json:"y" yaml:"y" csv:"y"`
}

// Sequence is the ordered form of a vector: element 0 is x, element 1 is y.
// Elements that are not Go numbers are ignored.
type Sequence []any

// Text is the bracketed form "[x;y]".
type Text string

// From copies coordinates out of src through Set and returns v. Invalid
// parts of src are skipped; a nil src does nothing.
func (v *Vector2) From(src Source) *Vector2 {
	if src != nil {
		src.applyTo(v)
	}
	return v
}

func (r Record) applyTo(v *Vector2) {
	v.Set(r.X, r.Y)
}

func (v *Vector2) applyTo(dst *Vector2) {
	if v == nil {
		return
	}
	dst.Set(v.X, v.Y)
}

func (s Sequence) applyTo(v *Vector2) {
	if len(s) > 0 {
		if x, ok := number(s[0]); ok {
			v.Set(x, v.Y)
		}
	}
	if len(s) > 1 {
		if y, ok := number(s[1]); ok {
			v.Set(v.X, y)
		}
	}
}

// applyTo strips the brackets and splits on ';'. The parts stay strings, so
// the sequence step rejects them and v is left as it was. Parse is the
// decoding path for text.
func (t Text) applyTo(v *Vector2) {
	s := strings.Replace(string(t), "]", "", 1)
	s = strings.Replace(s, "[", "", 1)
	parts := strings.Split(s, ";")
	seq := make(Sequence, len(parts))
	for i, p := range parts {
		seq[i] = p
	}
	seq.applyTo(v)
}

// number accepts Go numeric kinds only.
func number(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
