package doc

import (
	"reflect"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/slidekit/pkg/schema"
)

// Mark is an inline annotation on a text node, such as bold or a link.
type Mark struct {
	Type  string `json:"type"`
	Attrs Attrs  `json:"attrs,omitempty"`
}

// Node is a block or text node of a slide document.
//
// Nodes are treated as immutable once they are part of a document: steps
// build new nodes instead of editing existing ones, so subtrees may be
// shared between documents. Use [Node.Clone] before mutating a node that
// came out of a document.
type Node struct {
	Type    schema.Type
	Attrs   Attrs
	Content []*Node
	Text    string // only for schema.Text
	Marks   []Mark // only for schema.Text
}

// IsText reports whether n is an inline text node.
func (n *Node) IsText() bool { return n.Type == schema.Text }

// IsAtom reports whether n occupies a single position.
func (n *Node) IsAtom() bool { return schema.IsAtom(n.Type) }

// Size returns the number of positions n occupies in its parent.
func (n *Node) Size() int {
	switch {
	case n.IsText():
		return utf8.RuneCountInString(n.Text)
	case n.IsAtom():
		return 1
	}
	return n.ContentSize() + 2
}

// ContentSize returns the combined size of n's children.
func (n *Node) ContentSize() int {
	size := 0
	for _, c := range n.Content {
		size += c.Size()
	}
	return size
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.Content) }

// Child returns the i-th child, or nil when i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Content) {
		return nil
	}
	return n.Content[i]
}

// TextContent concatenates the text of every descendant text node.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Content {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Type:  n.Type,
		Attrs: n.Attrs.Clone(),
		Text:  n.Text,
		Marks: slices.Clone(n.Marks),
	}
	if n.Content != nil {
		c.Content = make([]*Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = child.Clone()
		}
	}
	return c
}

// Copy returns a shallow copy of n holding content instead of n's children.
func (n *Node) Copy(content []*Node) *Node {
	return &Node{Type: n.Type, Attrs: n.Attrs, Content: content, Text: n.Text, Marks: n.Marks}
}

// Equal reports whether n and o describe the same tree.
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if n.Type != o.Type || n.Text != o.Text || len(n.Content) != len(o.Content) {
		return false
	}
	if !n.Attrs.Equal(o.Attrs) || !marksEqual(n.Marks, o.Marks) {
		return false
	}
	for i := range n.Content {
		if !n.Content[i].Equal(o.Content[i]) {
			return false
		}
	}
	return true
}

func marksEqual(a, b []Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type != b[i].Type || !reflect.DeepEqual(a[i].Attrs, b[i].Attrs) {
			return false
		}
	}
	return true
}

// ColumnWidths returns the column width ratios of a row, or nil for other
// node types.
func (n *Node) ColumnWidths() []float64 {
	if n.Type != schema.Row {
		return nil
	}
	return n.Attrs.Floats(schema.AttrColumnWidths)
}

// Descendants calls fn for every descendant of n in document order.
// pos is the node's position relative to the start of n's content. When fn
// returns false the node's children are skipped.
func (n *Node) Descendants(fn func(node *Node, pos int, parent *Node, index int) bool) {
	n.descend(0, fn)
}

func (n *Node) descend(start int, fn func(*Node, int, *Node, int) bool) {
	pos := start
	for i, c := range n.Content {
		if fn(c, pos, n, i) && len(c.Content) > 0 {
			c.descend(pos+1, fn)
		}
		pos += c.Size()
	}
}

// String renders a compact, single-line form of n, e.g.
// doc(row(column(paragraph("hi")), column(image))).
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsText() {
		return `"` + n.Text + `"`
	}
	if len(n.Content) == 0 {
		return n.Type.String()
	}
	parts := make([]string, len(n.Content))
	for i, c := range n.Content {
		parts[i] = c.String()
	}
	return n.Type.String() + "(" + strings.Join(parts, ", ") + ")"
}
