package transform

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/doc"
)

func twoColumns(widths []float64) *doc.Node {
	return doc.NewDoc(doc.Row(widths, doc.Column(doc.P("a")), doc.Column(doc.P("b"))))
}

func TestAddColumn(t *testing.T) {
	tr := doc.NewTransaction(twoColumns([]float64{2, 1}))
	if err := AddColumn(tr, 0, 1, dnd.DefaultPolicy()); err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}
	want := doc.NewDoc(doc.Row([]float64{2, 1, 1}, doc.Column(doc.P("a")), doc.Column(doc.Paragraph()), doc.Column(doc.P("b"))))
	assertDoc(t, tr.Doc(), want)

	tr = doc.NewTransaction(twoColumns(nil))
	if err := AddColumn(tr, 0, -1, dnd.DefaultPolicy()); err != nil {
		t.Fatalf("AddColumn(append) error = %v", err)
	}
	if got := tr.Doc().Content[0].ColumnWidths(); !slices.Equal(got, []float64{1, 1, 1}) {
		t.Errorf("widths = %v, want [1 1 1]", got)
	}

	full := doc.NewDoc(doc.Row(nil, doc.Column(doc.P("1")), doc.Column(doc.P("2")), doc.Column(doc.P("3")), doc.Column(doc.P("4"))))
	tr = doc.NewTransaction(full)
	if err := AddColumn(tr, 0, 0, dnd.DefaultPolicy()); !errors.Is(err, ErrDisallowed) {
		t.Errorf("AddColumn(full row) error = %v, want ErrDisallowed", err)
	}

	three := doc.NewDoc(doc.Row(nil, doc.Column(doc.P("1")), doc.Column(doc.P("2")), doc.Column(doc.P("3"))))
	tr = doc.NewTransaction(three)
	if err := AddColumn(tr, 0, -1, dnd.Policy{MaxColumnsPerRow: 3}); !errors.Is(err, ErrDisallowed) {
		t.Errorf("AddColumn(capped at 3) error = %v, want ErrDisallowed", err)
	}
	if !tr.Doc().Equal(three) {
		t.Errorf("capped row changed: %s", tr.Doc())
	}

	tr = doc.NewTransaction(doc.NewDoc(doc.P("x")))
	if err := AddColumn(tr, 0, 0, dnd.DefaultPolicy()); !errors.Is(err, ErrUnresolvable) {
		t.Errorf("AddColumn(paragraph) error = %v, want ErrUnresolvable", err)
	}
}

func TestRemoveColumn(t *testing.T) {
	three := doc.NewDoc(doc.Row([]float64{1, 2, 3}, doc.Column(doc.P("a")), doc.Column(doc.P("b")), doc.Column(doc.P("c"))))
	tr := doc.NewTransaction(three)
	if err := RemoveColumn(tr, 0, 0); err != nil {
		t.Fatalf("RemoveColumn() error = %v", err)
	}
	assertDoc(t, tr.Doc(), doc.NewDoc(doc.Row([]float64{2, 3}, doc.Column(doc.P("b")), doc.Column(doc.P("c")))))

	tr = doc.NewTransaction(doc.NewDoc(doc.P("t"), doc.Row([]float64{1}, doc.Column(doc.P("a")))))
	if err := RemoveColumn(tr, 3, 0); err != nil {
		t.Fatalf("RemoveColumn(only column) error = %v", err)
	}
	assertDoc(t, tr.Doc(), doc.NewDoc(doc.P("t")))

	tr = doc.NewTransaction(three)
	if err := RemoveColumn(tr, 0, 3); !errors.Is(err, ErrUnresolvable) {
		t.Errorf("RemoveColumn(out of range) error = %v, want ErrUnresolvable", err)
	}
}

func TestSetColumnWidths(t *testing.T) {
	tests := []struct {
		name    string
		widths  []float64
		wantErr error
	}{
		{"valid", []float64{1.5, 0.5}, nil},
		{"too few", []float64{1}, ErrInvalidWidths},
		{"zero", []float64{1, 0}, ErrInvalidWidths},
		{"negative", []float64{-1, 2}, ErrInvalidWidths},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := doc.NewTransaction(twoColumns(nil))
			err := SetColumnWidths(tr, 0, tt.widths)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetColumnWidths() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && !slices.Equal(tr.Doc().Content[0].ColumnWidths(), tt.widths) {
				t.Errorf("widths = %v, want %v", tr.Doc().Content[0].ColumnWidths(), tt.widths)
			}
		})
	}
}

func TestResizeColumns(t *testing.T) {
	tests := []struct {
		name    string
		widths  []float64
		index   int
		delta   float64
		want    []float64
		wantErr error
	}{
		{"grow left", []float64{1, 1}, 0, 0.5, []float64{1.5, 0.5}, nil},
		{"shrink left", []float64{1, 1}, 0, -0.25, []float64{0.75, 1.25}, nil},
		{"missing widths default to 1", nil, 0, 0.5, []float64{1.5, 0.5}, nil},
		{"would collapse a column", []float64{1, 1}, 0, 1, nil, ErrInvalidWidths},
		{"no border after last column", []float64{1, 1}, 1, 0.1, nil, ErrUnresolvable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := doc.NewTransaction(twoColumns(tt.widths))
			err := ResizeColumns(tr, 0, tt.index, tt.delta)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ResizeColumns() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && !slices.Equal(tr.Doc().Content[0].ColumnWidths(), tt.want) {
				t.Errorf("widths = %v, want %v", tr.Doc().Content[0].ColumnWidths(), tt.want)
			}
		})
	}
}

func TestDeleteBlock(t *testing.T) {
	d := doc.NewDoc(doc.P("a"), doc.Row(nil, doc.Column(doc.P("b")), doc.Column(doc.P("c"))))
	tr := doc.NewTransaction(d)
	if err := DeleteBlock(tr, 5); err != nil {
		t.Fatalf("DeleteBlock() error = %v", err)
	}
	assertDoc(t, tr.Doc(), doc.NewDoc(doc.P("a"), doc.Row(nil, doc.Column(doc.P("c")))))

	tr = doc.NewTransaction(doc.NewDoc(doc.P("only")))
	if err := DeleteBlock(tr, 0); !errors.Is(err, ErrDisallowed) {
		t.Errorf("DeleteBlock(last block) error = %v, want ErrDisallowed", err)
	}
}
