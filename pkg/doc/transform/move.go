package transform

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/schema"
)

var (
	// ErrUnresolvable is returned when a position no longer points at a
	// block, usually because the document changed after it was taken.
	ErrUnresolvable = errors.New("position does not resolve to a block")

	// ErrNoop is returned when an edit would not change anything, such as
	// dropping a block onto itself.
	ErrNoop = errors.New("edit has no effect")

	// ErrDisallowed is returned when an edit would break the containment
	// schema, for example a fifth column or a heading inside a list item.
	ErrDisallowed = errors.New("edit not allowed by schema")
)

// IsRejected reports whether err is one of the expected "no transaction"
// outcomes rather than a failure.
func IsRejected(err error) bool {
	return errors.Is(err, ErrUnresolvable) || errors.Is(err, ErrNoop) || errors.Is(err, ErrDisallowed)
}

// Commit applies a finished drop to tr. The drop's snapshots are checked
// against tr's document first; stale snapshots yield [ErrUnresolvable].
func Commit(tr *doc.Transaction, drop dnd.Drop) (Rewrite, error) {
	for _, info := range []dnd.NodeInfo{drop.Source, drop.Target} {
		live, ok := dnd.InfoAt(tr.Doc(), info.Pos)
		if !ok || live.Type != info.Type || live.Size != info.Size {
			return Rewrite{}, fmt.Errorf("%w: %s at %d", ErrUnresolvable, info.Type, info.Pos)
		}
	}
	return Move(tr, drop.Source.Pos, drop.Target.Pos, drop.Edge)
}

// Move drags the block at sourcePos onto edge of the block at targetPos.
//
// The steps are, in order: delete the source (widened to any column or row
// it leaves empty), insert the rewritten block at the target position mapped
// through that deletion, and, when the rewrite replaces the target, delete
// the target at its position mapped through both. The result must satisfy
// the schema; otherwise tr is left unchanged and [ErrDisallowed] returned.
func Move(tr *doc.Transaction, sourcePos, targetPos int, edge dnd.Edge) (Rewrite, error) {
	d := tr.Doc()
	source, err := blockAt(d, sourcePos)
	if err != nil {
		return Rewrite{}, err
	}
	target, err := blockAt(d, targetPos)
	if err != nil {
		return Rewrite{}, err
	}
	if sourcePos == targetPos {
		return Rewrite{}, ErrNoop
	}
	if targetPos > sourcePos && targetPos < sourcePos+source.Size() {
		return Rewrite{}, fmt.Errorf("%w: target inside dragged %s", ErrNoop, source.Type)
	}

	from, to := deletionRange(d, sourcePos, source.Size())
	if targetPos >= from && targetPos+target.Size() <= to {
		return Rewrite{}, fmt.Errorf("%w: target removed with dragged %s", ErrNoop, source.Type)
	}

	rw := ComputeRewrite(source, target, edge)

	insertAt := targetPos
	switch {
	case target.Type == schema.Row && !edge.Vertical():
		// Beside a row means inside it, as its first or last column.
		insertAt = targetPos + 1
		if !edge.Leading() {
			insertAt = targetPos + target.Size() - 1
		}
		rw.DeleteTargetSlot = false
	case !edge.Leading():
		insertAt += target.Size()
	}

	sub := doc.NewTransaction(d)
	width, err := dropColumnWidth(sub, from, to)
	if err != nil {
		return Rewrite{}, disallowed(err)
	}
	if source.Type != schema.Column {
		width = 1
	}
	if err := sub.Delete(from, to); err != nil {
		return Rewrite{}, disallowed(err)
	}
	at := sub.Mapping().Map(insertAt)
	if err := sub.Insert(at, rw.Node); err != nil {
		return Rewrite{}, disallowed(err)
	}
	if rw.Node.Type == schema.Column {
		if err := insertColumnWidth(sub, at, width); err != nil {
			return Rewrite{}, disallowed(err)
		}
	}
	if rw.DeleteTargetSlot {
		slot := sub.Mapping().Map(targetPos)
		if err := sub.Delete(slot, slot+target.Size()); err != nil {
			return Rewrite{}, disallowed(err)
		}
	}
	if err := doc.Validate(sub.Doc()); err != nil {
		return Rewrite{}, disallowed(err)
	}
	return rw, merge(tr, sub)
}

// dropColumnWidth removes the width ratio of the column spanning [from, to)
// from its row and returns it. Anything else, or a row whose ratios are out
// of step with its columns, is left for normalization and yields ratio 1.
func dropColumnWidth(tr *doc.Transaction, from, to int) (float64, error) {
	r, err := tr.Doc().Resolve(from)
	if err != nil || r.Depth() == 0 {
		return 1, nil
	}
	row, index := r.Parent(), r.Index()
	if row.Type != schema.Row || index >= row.ChildCount() || row.Child(index).Size() != to-from {
		return 1, nil
	}
	widths := row.ColumnWidths()
	if len(widths) != row.ChildCount() {
		return 1, nil
	}
	w := widths[index]
	widths = slices.Delete(widths, index, index+1)
	return w, tr.SetAttrs(r.Before(r.Depth()), doc.Attrs{schema.AttrColumnWidths: widths})
}

// insertColumnWidth gives the column just inserted at pos ratio w at its own
// index, so its neighbours keep theirs.
func insertColumnWidth(tr *doc.Transaction, pos int, w float64) error {
	r, err := tr.Doc().Resolve(pos)
	if err != nil || r.Depth() == 0 {
		return nil
	}
	row := r.Parent()
	widths := row.ColumnWidths()
	if row.Type != schema.Row || len(widths) != row.ChildCount()-1 {
		return nil
	}
	widths = slices.Insert(widths, r.Index(), w)
	return tr.SetAttrs(r.Before(r.Depth()), doc.Attrs{schema.AttrColumnWidths: widths})
}

// DeleteBlock removes the block at pos together with any column or row it
// leaves empty.
func DeleteBlock(tr *doc.Transaction, pos int) error {
	d := tr.Doc()
	n, err := blockAt(d, pos)
	if err != nil {
		return err
	}
	from, to := deletionRange(d, pos, n.Size())
	sub := doc.NewTransaction(d)
	if err := sub.Delete(from, to); err != nil {
		return disallowed(err)
	}
	if err := doc.Validate(sub.Doc()); err != nil {
		return disallowed(err)
	}
	return merge(tr, sub)
}

func blockAt(d *doc.Node, pos int) (*doc.Node, error) {
	n, ok := d.NodeAt(pos)
	if !ok || n.IsText() {
		return nil, fmt.Errorf("%w: %d", ErrUnresolvable, pos)
	}
	r, err := d.Resolve(pos)
	if err != nil || !r.AtBoundary() {
		return nil, fmt.Errorf("%w: %d", ErrUnresolvable, pos)
	}
	return n, nil
}

// deletionRange widens [pos, pos+size) to cover every column or row that
// would be left without children.
func deletionRange(d *doc.Node, pos, size int) (from, to int) {
	from, to = pos, pos+size
	r, err := d.Resolve(pos)
	if err != nil {
		return from, to
	}
	for depth := r.Depth(); depth >= 1; depth-- {
		parent := r.Node(depth)
		if !schema.IsContainer(parent.Type) || parent.ChildCount() != 1 {
			break
		}
		from = r.Before(depth)
		to = from + parent.Size()
	}
	return from, to
}

// merge replays the steps of sub onto tr.
func merge(tr, sub *doc.Transaction) error {
	for _, s := range sub.Steps() {
		if err := tr.Step(s); err != nil {
			return err
		}
	}
	return nil
}

func disallowed(err error) error {
	return fmt.Errorf("%w: %w", ErrDisallowed, err)
}
