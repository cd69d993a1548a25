package transform

import (
	"testing"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/schema"
)

func normalized(d *doc.Node) (*doc.Node, Stats) {
	tr := doc.NewTransaction(d)
	stats := NormalizeRows(tr)
	return tr.Doc(), stats
}

func TestNormalizeRows(t *testing.T) {
	tests := []struct {
		name string
		doc  *doc.Node
		want *doc.Node
		sts  Stats
	}{
		{
			name: "single column row is unwrapped",
			doc:  doc.NewDoc(doc.Row(nil, doc.Column(doc.P("x")))),
			want: doc.NewDoc(doc.P("x")),
			sts:  Stats{Collapsed: 1},
		},
		{
			name: "later rows follow earlier collapses",
			doc: doc.NewDoc(
				doc.Row(nil, doc.Column(doc.P("a"), doc.P("b"))),
				doc.Row(nil, doc.Column(doc.P("c"))),
				doc.Row([]float64{1}, doc.Column(doc.P("d")), doc.Column(doc.P("e"))),
			),
			want: doc.NewDoc(
				doc.P("a"), doc.P("b"), doc.P("c"),
				doc.Row([]float64{1, 1}, doc.Column(doc.P("d")), doc.Column(doc.P("e"))),
			),
			sts: Stats{Collapsed: 2, Resynced: 1},
		},
		{
			name: "extra widths are truncated",
			doc:  doc.NewDoc(doc.Row([]float64{2, 1, 1}, doc.Column(doc.P("a")), doc.Column(doc.P("b")))),
			want: doc.NewDoc(doc.Row([]float64{2, 1}, doc.Column(doc.P("a")), doc.Column(doc.P("b")))),
			sts:  Stats{Resynced: 1},
		},
		{
			name: "already normal",
			doc:  doc.NewDoc(doc.H(1, "T"), doc.Row([]float64{1, 2}, doc.Column(doc.P("a")), doc.Column(doc.Image("x.png")))),
			want: doc.NewDoc(doc.H(1, "T"), doc.Row([]float64{1, 2}, doc.Column(doc.P("a")), doc.Column(doc.Image("x.png")))),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := normalized(tt.doc)
			assertDoc(t, got, tt.want)
			if stats != tt.sts {
				t.Errorf("Stats = %+v, want %+v", stats, tt.sts)
			}
		})
	}
}

func TestNormalizeRowsIsIdempotent(t *testing.T) {
	docs := []*doc.Node{
		doc.NewDoc(doc.Row(nil, doc.Column(doc.P("x")))),
		doc.NewDoc(doc.P("t"), doc.Row([]float64{3}, doc.Column(doc.P("a")), doc.Column(doc.P("b")), doc.Column(doc.P("c")))),
		doc.NewDoc(doc.Row([]float64{1, 1, 1, 1, 1}, doc.Column(doc.BulletList(doc.LI("a"))), doc.Column(doc.Chart(schema.ChartLine, nil)))),
	}
	for _, d := range docs {
		once, _ := normalized(d)
		tr := doc.NewTransaction(once)
		if stats := NormalizeRows(tr); stats.Changed() || !tr.Empty() {
			t.Errorf("second pass on %s changed %+v", once, stats)
		}
		checkRowInvariants(t, once)
	}
}

// checkRowInvariants asserts no singleton rows and one width per column.
func checkRowInvariants(t *testing.T, d *doc.Node) {
	t.Helper()
	d.Descendants(func(n *doc.Node, pos int, _ *doc.Node, _ int) bool {
		if n.Type == schema.Row {
			if n.ChildCount() == 1 {
				t.Errorf("singleton row at %d in %s", pos, d)
			}
			if len(n.ColumnWidths()) != n.ChildCount() {
				t.Errorf("row at %d has %d widths for %d columns", pos, len(n.ColumnWidths()), n.ChildCount())
			}
		}
		return true
	})
}

func TestNormalizePlugin(t *testing.T) {
	d := doc.NewDoc(doc.H(1, "T"), doc.Row([]float64{1, 1}, doc.Column(doc.P("a")), doc.Column(doc.P("b"))))

	attrOnly := doc.NewTransaction(d)
	if err := attrOnly.SetAttrs(3, doc.Attrs{schema.AttrColumnWidths: []float64{1}}); err != nil {
		t.Fatal(err)
	}
	if tr := (NormalizePlugin{}).AppendTransaction([]*doc.Transaction{attrOnly}, d, attrOnly.Doc()); tr != nil {
		t.Error("plugin fired for attribute-only transaction")
	}

	move := doc.NewTransaction(d)
	if _, err := Move(move, 5, 0, dnd.Top); err != nil {
		t.Fatal(err)
	}
	tr := (NormalizePlugin{}).AppendTransaction([]*doc.Transaction{move}, d, move.Doc())
	if tr == nil {
		t.Fatal("plugin did not fire after a move")
	}
	if tr.Meta(MetaOrigin) != OriginNormalize {
		t.Errorf("origin = %v, want %s", tr.Meta(MetaOrigin), OriginNormalize)
	}
	assertDoc(t, tr.Doc(), doc.NewDoc(doc.P("a"), doc.H(1, "T"), doc.P("b")))

	if again := (NormalizePlugin{}).AppendTransaction([]*doc.Transaction{tr}, move.Doc(), tr.Doc()); again != nil {
		t.Error("plugin fired on its own normalized output")
	}
}
