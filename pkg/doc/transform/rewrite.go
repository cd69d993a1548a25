package transform

import (
	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/schema"
)

// Case classifies a horizontal rewrite by whether target and source may be
// wrapped into columns.
type Case int

const (
	// CaseVertical is a TOP or BOTTOM drop.
	CaseVertical Case = iota
	// CaseNewRow wraps target and source into a new row (both columnable).
	CaseNewRow
	// CaseNewColumn adds the source as a sibling column (target is a
	// container, source columnable).
	CaseNewColumn
	// CaseWrapTarget wraps the target into a column next to the source
	// (target columnable, source not).
	CaseWrapTarget
	// CasePassThrough inserts the source as is (neither columnable).
	CasePassThrough
)

var caseNames = [...]string{"vertical", "new-row", "new-column", "wrap-target", "pass-through"}

func (c Case) String() string {
	if int(c) < len(caseNames) {
		return caseNames[c]
	}
	return "unknown"
}

// Rewrite is the block to insert for a drop.
type Rewrite struct {
	Node *doc.Node
	// DeleteTargetSlot is set when Node replaces the target, which must
	// then be removed from its old position.
	DeleteTargetSlot bool
	Case             Case
}

// ComputeRewrite returns what to insert when source is dropped on edge of
// target. It does not validate the result against the schema.
func ComputeRewrite(source, target *doc.Node, edge dnd.Edge) Rewrite {
	if edge.Vertical() {
		return Rewrite{Node: verticalNode(source, target), Case: CaseVertical}
	}

	targetColumnable := schema.IsColumnable(target.Type)
	sourceColumnable := schema.IsColumnable(source.Type)
	switch {
	case targetColumnable && sourceColumnable:
		cols := ordered(edge, doc.Column(target), doc.Column(source))
		return Rewrite{Node: doc.Row([]float64{1, 1}, cols...), DeleteTargetSlot: true, Case: CaseNewRow}
	case sourceColumnable:
		return Rewrite{Node: doc.Column(source), Case: CaseNewColumn}
	case targetColumnable:
		cols := ordered(edge, doc.Column(target), source)
		return Rewrite{Node: doc.Row([]float64{1, 1}, cols...), DeleteTargetSlot: true, Case: CaseWrapTarget}
	}
	return Rewrite{Node: source, Case: CasePassThrough}
}

func verticalNode(source, target *doc.Node) *doc.Node {
	switch {
	case source.Type == schema.Row:
		// Clone keeps columnWidths as they are.
		return source.Clone()
	case schema.IsListItem(target.Type) && schema.IsTextBlock(source.Type):
		return doc.ListItem(doc.Paragraph(cloneAll(source.Content)...))
	}
	return source
}

// ordered returns [t, s] for RIGHT and [s, t] for LEFT.
func ordered(edge dnd.Edge, t, s *doc.Node) []*doc.Node {
	if edge == dnd.Left {
		return []*doc.Node{s, t}
	}
	return []*doc.Node{t, s}
}

func cloneAll(nodes []*doc.Node) []*doc.Node {
	out := make([]*doc.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
