package doc

import "fmt"

// NodeAt returns the outermost node that starts at pos, where pos is relative
// to the start of n's content.
func (n *Node) NodeAt(pos int) (*Node, bool) {
	node := n
	for {
		index, offset, ok := node.findIndex(pos)
		if !ok {
			return nil, false
		}
		child := node.Child(index)
		if child == nil {
			return nil, false
		}
		if offset == pos || child.IsText() {
			return child, true
		}
		pos -= offset + 1
		node = child
	}
}

// findIndex locates the child containing pos. offset is the position at
// which that child starts. pos equal to the content size yields the index
// one past the last child.
func (n *Node) findIndex(pos int) (index, offset int, ok bool) {
	if pos < 0 || pos > n.ContentSize() {
		return 0, 0, false
	}
	cur := 0
	for i, c := range n.Content {
		if cur == pos {
			return i, cur, true
		}
		end := cur + c.Size()
		if end > pos {
			return i, cur, true
		}
		cur = end
	}
	return len(n.Content), cur, true
}

type level struct {
	node   *Node
	index  int // index of the child that holds or follows the position
	offset int // absolute position at which that child starts
}

// ResolvedPos is a position together with the chain of ancestors that
// contain it.
type ResolvedPos struct {
	Pos  int
	path []level
}

// Resolve locates pos inside n. The returned value describes every ancestor
// from n (depth 0) down to the innermost node whose content holds pos.
func (n *Node) Resolve(pos int) (ResolvedPos, error) {
	if pos < 0 || pos > n.ContentSize() {
		return ResolvedPos{}, fmt.Errorf("%w: %d not in [0, %d]", ErrPositionOutOfRange, pos, n.ContentSize())
	}
	r := ResolvedPos{Pos: pos}
	node, start, rel := n, 0, pos
	for {
		index, offset, _ := node.findIndex(rel)
		r.path = append(r.path, level{node: node, index: index, offset: start + offset})
		rem := rel - offset
		if rem == 0 {
			break
		}
		child := node.Child(index)
		if child.IsText() || child.IsAtom() {
			break
		}
		rel = rem - 1
		start += offset + 1
		node = child
	}
	return r, nil
}

// Depth is the number of ancestors between the root and the parent of the
// position. A position directly inside the root has depth 0.
func (r ResolvedPos) Depth() int { return len(r.path) - 1 }

// Parent returns the innermost node whose content holds the position.
func (r ResolvedPos) Parent() *Node { return r.path[len(r.path)-1].node }

// Node returns the ancestor at the given depth.
func (r ResolvedPos) Node(depth int) *Node { return r.path[depth].node }

// Index returns the index of the position within its parent.
func (r ResolvedPos) Index() int { return r.path[len(r.path)-1].index }

// IndexAt returns the child index at the given depth.
func (r ResolvedPos) IndexAt(depth int) int { return r.path[depth].index }

// Start returns the position at which the content of the ancestor at depth
// begins.
func (r ResolvedPos) Start(depth int) int {
	if depth == 0 {
		return 0
	}
	return r.path[depth-1].offset + 1
}

// Before returns the position directly before the ancestor at depth.
// Depth must be at least 1.
func (r ResolvedPos) Before(depth int) int { return r.path[depth-1].offset }

// AtBoundary reports whether the position sits between two children of its
// parent rather than inside a text node or atom.
func (r ResolvedPos) AtBoundary() bool { return r.path[len(r.path)-1].offset == r.Pos }

// NodeAfter returns the child of the parent that starts at the position, or
// nil when the position is at the end of the parent or inside a child.
func (r ResolvedPos) NodeAfter() *Node {
	if !r.AtBoundary() {
		return nil
	}
	return r.Parent().Child(r.Index())
}
