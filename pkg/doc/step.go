package doc

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/slidekit/pkg/schema"
)

var (
	// ErrPositionOutOfRange is returned when a position lies outside the
	// document.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrNotBoundary is returned by [ReplaceStep] when an endpoint falls
	// inside a node instead of between two children.
	ErrNotBoundary = errors.New("position is not a child boundary")

	// ErrParentMismatch is returned by [ReplaceStep] when from and to resolve
	// to different parents.
	ErrParentMismatch = errors.New("replace endpoints in different parents")

	// ErrContentRejected is returned by [ReplaceStep] when the parent does not
	// accept one of the inserted nodes.
	ErrContentRejected = errors.New("content not allowed here")

	// ErrNoNode is returned by [AttrStep] when no node starts at the position.
	ErrNoNode = errors.New("no node at position")
)

// Step is an atomic document change.
type Step interface {
	// Apply returns the document produced by the step. d is not modified.
	Apply(d *Node) (*Node, error)
	// Map describes how the step moves positions.
	Map() StepMap
}

// ReplaceStep replaces the children between From and To with Content.
// Both positions must sit on child boundaries of the same parent.
type ReplaceStep struct {
	From, To int
	Content  []*Node
}

// Apply implements [Step].
func (s ReplaceStep) Apply(d *Node) (*Node, error) {
	if s.From > s.To {
		return nil, fmt.Errorf("%w: from %d after to %d", ErrPositionOutOfRange, s.From, s.To)
	}
	from, err := d.Resolve(s.From)
	if err != nil {
		return nil, err
	}
	to, err := d.Resolve(s.To)
	if err != nil {
		return nil, err
	}
	if !from.AtBoundary() || !to.AtBoundary() {
		return nil, fmt.Errorf("%w: %d..%d", ErrNotBoundary, s.From, s.To)
	}
	if !sameParent(from, to) {
		return nil, fmt.Errorf("%w: %d..%d", ErrParentMismatch, s.From, s.To)
	}
	parent := from.Parent()
	for _, c := range s.Content {
		if !schema.Accepts(parent.Type, c.Type) {
			return nil, fmt.Errorf("%w: %s inside %s", ErrContentRejected, c.Type, parent.Type)
		}
	}
	content := slices.Concat(parent.Content[:from.Index()], s.Content, parent.Content[to.Index():])
	return rebuild(from, from.Depth(), parent.Copy(content)), nil
}

// Map implements [Step].
func (s ReplaceStep) Map() StepMap {
	size := 0
	for _, c := range s.Content {
		size += c.Size()
	}
	if s.From == s.To && size == 0 {
		return EmptyMap
	}
	return StepMap{Ranges: []Range{{Start: s.From, OldSize: s.To - s.From, NewSize: size}}}
}

// AttrStep merges Attrs into the attributes of the node starting at Pos.
// A nil value removes nothing; it sets the attribute to null.
type AttrStep struct {
	Pos   int
	Attrs Attrs
}

// Apply implements [Step].
func (s AttrStep) Apply(d *Node) (*Node, error) {
	r, err := d.Resolve(s.Pos)
	if err != nil {
		return nil, err
	}
	target := r.NodeAfter()
	if target == nil || target.IsText() {
		return nil, fmt.Errorf("%w: %d", ErrNoNode, s.Pos)
	}
	updated := &Node{
		Type:    target.Type,
		Attrs:   target.Attrs.With(s.Attrs),
		Content: target.Content,
	}
	parent := r.Parent()
	content := slices.Clone(parent.Content)
	content[r.Index()] = updated
	return rebuild(r, r.Depth(), parent.Copy(content)), nil
}

// Map implements [Step].
func (s AttrStep) Map() StepMap { return EmptyMap }

func sameParent(a, b ResolvedPos) bool {
	if a.Depth() != b.Depth() {
		return false
	}
	for d := 0; d < a.Depth(); d++ {
		if a.IndexAt(d) != b.IndexAt(d) {
			return false
		}
	}
	return true
}

// rebuild replaces the ancestor at depth with node and copies every ancestor
// above it, returning the new root.
func rebuild(r ResolvedPos, depth int, node *Node) *Node {
	for d := depth - 1; d >= 0; d-- {
		parent := r.Node(d)
		content := slices.Clone(parent.Content)
		content[r.IndexAt(d)] = node
		node = parent.Copy(content)
	}
	return node
}
