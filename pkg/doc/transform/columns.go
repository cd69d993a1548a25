package transform

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/schema"
)

// ErrInvalidWidths is returned when column widths do not match the row or
// are not all positive.
var ErrInvalidWidths = errors.New("invalid column widths")

// rowAt returns the row starting at pos.
func rowAt(d *doc.Node, pos int) (*doc.Node, error) {
	n, err := blockAt(d, pos)
	if err != nil {
		return nil, err
	}
	if n.Type != schema.Row {
		return nil, fmt.Errorf("%w: %s at %d is not a row", ErrUnresolvable, n.Type, pos)
	}
	return n, nil
}

// liveWidths returns the row's widths with one entry per column, filling
// missing entries with 1.
func liveWidths(row *doc.Node) []float64 {
	return resync(row.ColumnWidths(), row.ChildCount())
}

// childPos returns the position of the index-th child of the node at pos.
func childPos(n *doc.Node, pos, index int) int {
	p := pos + 1
	for _, c := range n.Content[:index] {
		p += c.Size()
	}
	return p
}

// AddColumn inserts an empty column at index in the row at rowPos. An index
// outside the row appends. The new column gets width ratio 1. Rows already
// holding policy's column cap are left alone.
func AddColumn(tr *doc.Transaction, rowPos, index int, policy dnd.Policy) error {
	row, err := rowAt(tr.Doc(), rowPos)
	if err != nil {
		return err
	}
	if row.ChildCount() >= policy.MaxColumns() {
		return fmt.Errorf("%w: row already has %d columns", ErrDisallowed, row.ChildCount())
	}
	if index < 0 || index > row.ChildCount() {
		index = row.ChildCount()
	}
	widths := slices.Insert(liveWidths(row), index, 1)

	sub := doc.NewTransaction(tr.Doc())
	if err := sub.Insert(childPos(row, rowPos, index), doc.Column(doc.Paragraph())); err != nil {
		return disallowed(err)
	}
	if err := sub.SetAttrs(rowPos, doc.Attrs{schema.AttrColumnWidths: widths}); err != nil {
		return disallowed(err)
	}
	return merge(tr, sub)
}

// RemoveColumn deletes the index-th column of the row at rowPos along with
// its width ratio. Removing the only column removes the row.
func RemoveColumn(tr *doc.Transaction, rowPos, index int) error {
	d := tr.Doc()
	row, err := rowAt(d, rowPos)
	if err != nil {
		return err
	}
	if index < 0 || index >= row.ChildCount() {
		return fmt.Errorf("%w: column %d of %d", ErrUnresolvable, index, row.ChildCount())
	}
	if row.ChildCount() == 1 {
		return DeleteBlock(tr, rowPos)
	}
	widths := slices.Delete(liveWidths(row), index, index+1)

	sub := doc.NewTransaction(d)
	from := childPos(row, rowPos, index)
	if err := sub.Delete(from, from+row.Child(index).Size()); err != nil {
		return disallowed(err)
	}
	if err := sub.SetAttrs(rowPos, doc.Attrs{schema.AttrColumnWidths: widths}); err != nil {
		return disallowed(err)
	}
	return merge(tr, sub)
}

// SetColumnWidths replaces the width ratios of the row at rowPos. There
// must be one positive ratio per column.
func SetColumnWidths(tr *doc.Transaction, rowPos int, widths []float64) error {
	row, err := rowAt(tr.Doc(), rowPos)
	if err != nil {
		return err
	}
	if len(widths) != row.ChildCount() {
		return fmt.Errorf("%w: %d widths for %d columns", ErrInvalidWidths, len(widths), row.ChildCount())
	}
	if err := checkWidths(widths); err != nil {
		return err
	}
	return tr.SetAttrs(rowPos, doc.Attrs{schema.AttrColumnWidths: slices.Clone(widths)})
}

// ResizeColumns moves deltaFr of width from column index+1 to column index,
// as when dragging the border between them. Both columns must keep a
// positive width.
func ResizeColumns(tr *doc.Transaction, rowPos, index int, deltaFr float64) error {
	row, err := rowAt(tr.Doc(), rowPos)
	if err != nil {
		return err
	}
	if index < 0 || index+1 >= row.ChildCount() {
		return fmt.Errorf("%w: no border after column %d of %d", ErrUnresolvable, index, row.ChildCount())
	}
	widths := liveWidths(row)
	widths[index] += deltaFr
	widths[index+1] -= deltaFr
	if err := checkWidths(widths); err != nil {
		return err
	}
	return tr.SetAttrs(rowPos, doc.Attrs{schema.AttrColumnWidths: widths})
}

func checkWidths(widths []float64) error {
	for i, w := range widths {
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: width %d is %v", ErrInvalidWidths, i, w)
		}
	}
	return nil
}
