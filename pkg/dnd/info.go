package dnd

import (
	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/schema"
)

// NodeInfo is a snapshot of a block at a position in a particular document.
// It goes stale as soon as the document changes; re-read it with [InfoAt].
type NodeInfo struct {
	Pos              int         `json:"pos"`
	Type             schema.Type `json:"type"`
	Size             int         `json:"size"`
	ParentType       schema.Type `json:"parentType"`
	ParentChildCount int         `json:"parentChildCount"`
}

// InfoAt describes the block starting at pos in d. It returns false when no
// block starts there.
func InfoAt(d *doc.Node, pos int) (NodeInfo, bool) {
	r, err := d.Resolve(pos)
	if err != nil {
		return NodeInfo{}, false
	}
	n := r.NodeAfter()
	if n == nil || n.IsText() {
		return NodeInfo{}, false
	}
	parent := r.Parent()
	return NodeInfo{
		Pos:              pos,
		Type:             n.Type,
		Size:             n.Size(),
		ParentType:       parent.Type,
		ParentChildCount: parent.ChildCount(),
	}, true
}
