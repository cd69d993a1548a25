package transform

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/observability"
	"github.com/matzehuels/slidekit/pkg/schema"
)

// MetaOrigin is the transaction metadata key naming the edit that produced
// a transaction.
const MetaOrigin = "origin"

// Origins recorded under [MetaOrigin].
const (
	OriginDrop      = "drop"
	OriginNormalize = "normalize"
	OriginColumns   = "columns"
)

// Stats counts the rows a normalization pass touched.
type Stats struct {
	Collapsed int // single-column rows unwrapped
	Resynced  int // rows whose columnWidths were resized
}

// Changed reports whether the pass modified the document.
func (s Stats) Changed() bool { return s.Collapsed+s.Resynced > 0 }

// NormalizeRows appends to tr the steps that restore the row invariants of
// tr's current document:
//
//   - a row with exactly one column is replaced by that column's content
//   - a row's columnWidths is padded with 1 or truncated to its column count
//
// Rows are found in one forward walk; positions of later rows are shifted by
// the size change of earlier replacements. Running it on an already
// normalized document adds no steps.
func NormalizeRows(tr *doc.Transaction) Stats {
	var (
		stats  Stats
		offset int
	)
	tr.Doc().Descendants(func(n *doc.Node, pos int, _ *doc.Node, _ int) bool {
		if n.Type != schema.Row {
			return true
		}
		at := pos + offset

		if n.ChildCount() == 1 {
			content := n.Child(0).Content
			if err := tr.ReplaceWith(at, at+n.Size(), content...); err != nil {
				log.Debug("row not collapsed", "pos", at, "err", err)
				return false
			}
			offset += contentSize(content) - n.Size()
			stats.Collapsed++
			return false
		}

		widths := n.ColumnWidths()
		if len(widths) != n.ChildCount() {
			if err := tr.SetAttrs(at, doc.Attrs{schema.AttrColumnWidths: resync(widths, n.ChildCount())}); err != nil {
				log.Debug("row widths not resynced", "pos", at, "err", err)
				return true
			}
			stats.Resynced++
		}
		return true
	})
	return stats
}

func resync(widths []float64, n int) []float64 {
	if len(widths) >= n {
		return slices.Clone(widths[:n])
	}
	out := slices.Clone(widths)
	for len(out) < n {
		out = append(out, 1)
	}
	return out
}

func contentSize(nodes []*doc.Node) int {
	size := 0
	for _, n := range nodes {
		size += n.Size()
	}
	return size
}

// NormalizePlugin runs [NormalizeRows] after transactions that changed the
// document structure.
type NormalizePlugin struct{}

// Name identifies the plugin in logs.
func (NormalizePlugin) Name() string { return "row-normalization" }

// AppendTransaction returns a follow-up transaction on next that restores
// the row invariants, or nil when none of trs changed the structure or
// nothing needed fixing.
func (NormalizePlugin) AppendTransaction(trs []*doc.Transaction, _, next *doc.Node) *doc.Transaction {
	changed := slices.ContainsFunc(trs, (*doc.Transaction).DocChanged)
	if !changed {
		return nil
	}
	tr := doc.NewTransaction(next).SetMeta(MetaOrigin, OriginNormalize)
	stats := NormalizeRows(tr)
	if !stats.Changed() {
		return nil
	}
	observability.Editor().OnNormalize(stats.Collapsed, stats.Resynced)
	return tr
}
