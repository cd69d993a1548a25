package dnd

import "github.com/matzehuels/slidekit/pkg/schema"

// Policy tunes which drops the resolver offers.
type Policy struct {
	// MaxColumnsPerRow caps the columns a row may grow to by dropping
	// blocks beside an existing column.
	MaxColumnsPerRow int `toml:"max_columns_per_row" json:"maxColumnsPerRow"`

	// AllowRowBesideLeaf lets a dragged row land to the left or right of a
	// top-level leaf. Rows stack vertically by default.
	AllowRowBesideLeaf bool `toml:"allow_row_beside_leaf" json:"allowRowBesideLeaf"`
}

// DefaultPolicy returns the standard policy: rows of at most
// [schema.MaxColumnsPerRow] columns and rows never placed beside leaves.
func DefaultPolicy() Policy {
	return Policy{MaxColumnsPerRow: schema.MaxColumnsPerRow}
}

// AllowedEdges returns the edges of target on which a block of type source
// may be dropped.
//
//   - leaf at the document root: all edges, or only TOP/BOTTOM for a row
//   - leaf elsewhere: TOP/BOTTOM
//   - list item: TOP/BOTTOM if source converts to a list item, else none
//   - list: TOP/BOTTOM
//   - column: LEFT/RIGHT while its row has room, else none
//   - row: TOP/BOTTOM
func AllowedEdges(target NodeInfo, source schema.Type, p Policy) EdgeSet {
	switch t := target.Type; {
	case schema.IsLeaf(t):
		if target.ParentType != schema.Doc {
			return verticalEdges
		}
		if source == schema.Row && !p.AllowRowBesideLeaf {
			return verticalEdges
		}
		return allEdges
	case schema.IsListItem(t):
		if schema.CanConvertToListItem(source) {
			return verticalEdges
		}
		return noEdges
	case schema.IsList(t):
		return verticalEdges
	case t == schema.Column:
		if target.ParentChildCount < p.MaxColumns() {
			return sideEdges
		}
		return noEdges
	case t == schema.Row:
		return verticalEdges
	}
	return noEdges
}

// MaxColumns returns the effective column cap. Unset or out-of-range values
// fall back to the schema maximum.
func (p Policy) MaxColumns() int {
	if p.MaxColumnsPerRow <= 0 || p.MaxColumnsPerRow > schema.MaxColumnsPerRow {
		return schema.MaxColumnsPerRow
	}
	return p.MaxColumnsPerRow
}
