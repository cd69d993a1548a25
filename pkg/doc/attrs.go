package doc

import (
	"maps"
	"reflect"
	"slices"

	"github.com/matzehuels/slidekit/pkg/schema"
)

// Attrs holds the attributes of a node. Values decoded from JSON are
// normalized to Go types: integers to int, width lists to []float64 and
// chart data to []schema.ChartDatum.
type Attrs map[string]any

// Clone returns a copy of a that does not share slices with the original.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	c := make(Attrs, len(a))
	for k, v := range a {
		switch v := v.(type) {
		case []float64:
			c[k] = slices.Clone(v)
		case []schema.ChartDatum:
			c[k] = slices.Clone(v)
		default:
			c[k] = v
		}
	}
	return c
}

// With returns a copy of a with the entries of b applied on top.
func (a Attrs) With(b Attrs) Attrs {
	c := a.Clone()
	if c == nil {
		c = make(Attrs, len(b))
	}
	maps.Copy(c, b.Clone())
	return c
}

// Equal reports whether a and b hold the same values. A missing key and a
// nil value are considered equal.
func (a Attrs) Equal(b Attrs) bool {
	for k, v := range a {
		if !reflect.DeepEqual(v, b[k]) {
			return false
		}
	}
	for k, v := range b {
		if _, ok := a[k]; !ok && v != nil {
			return false
		}
	}
	return true
}

// Int returns an integer attribute.
func (a Attrs) Int(key string) (int, bool) {
	switch v := a[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), v == float64(int(v))
	}
	return 0, false
}

// String returns a string attribute.
func (a Attrs) String(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// Floats returns a number list attribute. The result is a copy.
func (a Attrs) Floats(key string) []float64 {
	switch v := a[key].(type) {
	case []float64:
		return slices.Clone(v)
	case []any:
		out := make([]float64, 0, len(v))
		for _, x := range v {
			if f, ok := toFloat(x); ok {
				out = append(out, f)
			}
		}
		return out
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
