package doc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/matzehuels/slidekit/pkg/schema"
)

// ErrUnknownType is returned when decoding a node type outside the schema.
var ErrUnknownType = errors.New("unknown node type")

type jsonNode struct {
	Type    string      `json:"type"`
	Attrs   Attrs       `json:"attrs,omitempty"`
	Content []*jsonNode `json:"content,omitempty"`
	Text    string      `json:"text,omitempty"`
	Marks   []Mark      `json:"marks,omitempty"`
}

// MarshalJSON encodes n in the editor's JSON document format:
//
//	{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"hi"}]}]}
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(n))
}

// UnmarshalJSON decodes the editor's JSON document format. Attributes are
// normalized to Go types and missing attributes take their defaults.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw jsonNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := fromJSON(&raw)
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}

func toJSON(n *Node) *jsonNode {
	j := &jsonNode{Type: n.Type.String(), Attrs: n.Attrs, Text: n.Text, Marks: n.Marks}
	for _, c := range n.Content {
		j.Content = append(j.Content, toJSON(c))
	}
	return j
}

func fromJSON(j *jsonNode) (*Node, error) {
	t, ok := schema.ParseType(j.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, j.Type)
	}
	n := &Node{Type: t, Text: j.Text, Marks: j.Marks}
	if defaults := schema.DefaultAttrs(t); defaults != nil {
		n.Attrs = Attrs(defaults).With(normalizeAttrs(j.Attrs))
	}
	for _, c := range j.Content {
		child, err := fromJSON(c)
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, child)
	}
	return n, nil
}

// normalizeAttrs converts JSON-decoded attribute values to the Go types used
// throughout the module.
func normalizeAttrs(a Attrs) Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		switch k {
		case schema.AttrLevel, schema.AttrStart:
			// Non-integral numbers stay floats so Validate rejects them.
			if i, ok := a.Int(k); ok {
				v = i
			}
		case schema.AttrColumnWidths:
			widths := a.Floats(k)
			if widths == nil {
				widths = []float64{}
			}
			v = widths
		case schema.AttrData:
			v = chartData(v)
		}
		out[k] = v
	}
	return out
}

func chartData(v any) []schema.ChartDatum {
	items, ok := v.([]any)
	if !ok {
		if data, ok := v.([]schema.ChartDatum); ok {
			return data
		}
		return nil
	}
	out := make([]schema.ChartDatum, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		label, _ := m["label"].(string)
		value, _ := toFloat(m["value"])
		out = append(out, schema.ChartDatum{Label: label, Value: value})
	}
	return out
}
