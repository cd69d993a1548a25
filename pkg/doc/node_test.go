package doc

import (
	"testing"

	"github.com/matzehuels/slidekit/pkg/schema"
)

// sample returns
//
//	0 paragraph("hi") 4 row( 5 column( 6 paragraph("a") ) 10 column( 11 image ) ) 14
func sample() *Node {
	return NewDoc(
		P("hi"),
		Row(nil, Column(P("a")), Column(Image("x.png"))),
	)
}

func TestSize(t *testing.T) {
	d := sample()
	tests := []struct {
		name string
		node *Node
		want int
	}{
		{"text counts runes", Text("héllo"), 5},
		{"paragraph", d.Content[0], 4},
		{"image atom", Image("x.png"), 1},
		{"chart atom", Chart("", nil), 1},
		{"row", d.Content[1], 10},
		{"empty paragraph", Paragraph(), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
	if got := d.ContentSize(); got != 14 {
		t.Errorf("ContentSize() = %d, want 14", got)
	}
}

func TestNodeAt(t *testing.T) {
	d := sample()
	tests := []struct {
		pos  int
		want schema.Type
		ok   bool
	}{
		{0, schema.Paragraph, true},
		{1, schema.Text, true},
		{2, schema.Text, true},
		{4, schema.Row, true},
		{5, schema.Column, true},
		{6, schema.Paragraph, true},
		{10, schema.Column, true},
		{11, schema.Image, true},
		{14, schema.Unknown, false},
		{-1, schema.Unknown, false},
		{99, schema.Unknown, false},
	}
	for _, tt := range tests {
		n, ok := d.NodeAt(tt.pos)
		if ok != tt.ok {
			t.Errorf("NodeAt(%d) ok = %v, want %v", tt.pos, ok, tt.ok)
			continue
		}
		if ok && n.Type != tt.want {
			t.Errorf("NodeAt(%d) = %s, want %s", tt.pos, n.Type, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	d := sample()

	r, err := d.Resolve(6)
	if err != nil {
		t.Fatalf("Resolve(6): %v", err)
	}
	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	if r.Parent().Type != schema.Column {
		t.Errorf("Parent() = %s, want column", r.Parent().Type)
	}
	if r.Index() != 0 {
		t.Errorf("Index() = %d, want 0", r.Index())
	}
	if r.Start(2) != 6 || r.Before(2) != 5 || r.Before(1) != 4 {
		t.Errorf("Start/Before = %d/%d/%d, want 6/5/4", r.Start(2), r.Before(2), r.Before(1))
	}
	if n := r.NodeAfter(); n == nil || n.Type != schema.Paragraph {
		t.Errorf("NodeAfter() = %v, want paragraph", n)
	}

	r, err = d.Resolve(10)
	if err != nil {
		t.Fatalf("Resolve(10): %v", err)
	}
	if r.Parent().Type != schema.Row || r.Index() != 1 {
		t.Errorf("Resolve(10) = %s[%d], want row[1]", r.Parent().Type, r.Index())
	}

	r, err = d.Resolve(2)
	if err != nil {
		t.Fatalf("Resolve(2): %v", err)
	}
	if r.AtBoundary() {
		t.Error("Resolve(2) inside text reported as boundary")
	}

	if _, err := d.Resolve(15); err == nil {
		t.Error("Resolve(15) succeeded, want error")
	}
}

func TestDescendants(t *testing.T) {
	var got []int
	sample().Descendants(func(n *Node, pos int, _ *Node, _ int) bool {
		if !n.IsText() {
			got = append(got, pos)
		}
		return n.Type != schema.Column
	})
	want := []int{0, 4, 5, 10}
	if len(got) != len(want) {
		t.Fatalf("positions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("positions = %v, want %v", got, want)
		}
	}
}

func TestCloneAndEqual(t *testing.T) {
	d := sample()
	c := d.Clone()
	if !d.Equal(c) {
		t.Fatal("clone not equal to original")
	}
	c.Content[1].Attrs[schema.AttrColumnWidths] = []float64{1, 1}
	if d.Equal(c) {
		t.Error("mutating clone attrs changed equality")
	}
	if w := d.Content[1].ColumnWidths(); len(w) != 0 {
		t.Errorf("original widths = %v, want empty", w)
	}
}

func TestString(t *testing.T) {
	want := `doc(paragraph("hi"), row(column(paragraph("a")), column(image)))`
	if got := sample().String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}
