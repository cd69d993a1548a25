package doc

import (
	"slices"

	"github.com/matzehuels/slidekit/pkg/schema"
)

func newNode(t schema.Type, content []*Node) *Node {
	return &Node{Type: t, Attrs: Attrs(schema.DefaultAttrs(t)), Content: content}
}

// NewDoc returns a document holding blocks.
func NewDoc(blocks ...*Node) *Node { return newNode(schema.Doc, blocks) }

// Row returns a row of columns with the given width ratios. A nil widths
// leaves the ratios empty for normalization to fill in.
func Row(widths []float64, columns ...*Node) *Node {
	n := newNode(schema.Row, columns)
	if widths == nil {
		widths = []float64{}
	}
	n.Attrs[schema.AttrColumnWidths] = slices.Clone(widths)
	return n
}

// Column returns a column stacking blocks.
func Column(blocks ...*Node) *Node { return newNode(schema.Column, blocks) }

// Paragraph returns a paragraph holding inline nodes. Empty text nodes are
// dropped.
func Paragraph(inline ...*Node) *Node { return newNode(schema.Paragraph, compactInline(inline)) }

// Heading returns a heading of the given level holding inline nodes.
func Heading(level int, inline ...*Node) *Node {
	n := newNode(schema.Heading, compactInline(inline))
	n.Attrs[schema.AttrLevel] = level
	return n
}

// Image returns an image block.
func Image(src string) *Node {
	n := newNode(schema.Image, nil)
	n.Attrs[schema.AttrSrc] = src
	return n
}

// Chart returns a chart block. A nil data uses the default sample data.
func Chart(kind string, data []schema.ChartDatum) *Node {
	n := newNode(schema.Chart, nil)
	if kind != "" {
		n.Attrs[schema.AttrChartType] = kind
	}
	if data != nil {
		n.Attrs[schema.AttrData] = slices.Clone(data)
	}
	return n
}

// BulletList returns a bullet list of items.
func BulletList(items ...*Node) *Node { return newNode(schema.BulletList, items) }

// OrderedList returns an ordered list numbered from start.
func OrderedList(start int, items ...*Node) *Node {
	n := newNode(schema.OrderedList, items)
	n.Attrs[schema.AttrStart] = start
	return n
}

// ListItem wraps a paragraph into a list item.
func ListItem(p *Node) *Node { return newNode(schema.ListItem, []*Node{p}) }

// Text returns an inline text node.
func Text(s string, marks ...Mark) *Node {
	return &Node{Type: schema.Text, Text: s, Marks: marks}
}

// P is shorthand for a paragraph holding plain text.
func P(s string) *Node { return Paragraph(Text(s)) }

// H is shorthand for a heading holding plain text.
func H(level int, s string) *Node { return Heading(level, Text(s)) }

// LI is shorthand for a list item holding a plain paragraph.
func LI(s string) *Node { return ListItem(P(s)) }

func compactInline(inline []*Node) []*Node {
	out := make([]*Node, 0, len(inline))
	for _, n := range inline {
		if n != nil && !(n.IsText() && n.Text == "") {
			out = append(out, n)
		}
	}
	return out
}
