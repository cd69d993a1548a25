package outline

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/matzehuels/slidekit/pkg/doc"
)

var (
	enumeratorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).PaddingRight(1)
	rootStyle       = lipgloss.NewStyle().Bold(true)
)

// Tree renders d as an indented tree. Styling is dropped automatically when
// the output is not a terminal.
func Tree(d *doc.Node, opts Options) string {
	t := tree.Root(d.Type.String()).
		Enumerator(tree.DefaultEnumerator).
		EnumeratorStyle(enumeratorStyle).
		RootStyle(rootStyle)
	addChildren(t, d, 0, opts)
	return t.String()
}

func addChildren(t *tree.Tree, n *doc.Node, start int, opts Options) {
	pos := start
	for _, c := range n.Content {
		if c.IsText() {
			pos += c.Size()
			continue
		}
		label := Label(c, pos, opts)
		if hasBlockChildren(c) {
			sub := tree.Root(label)
			addChildren(sub, c, pos+1, opts)
			t.Child(sub)
		} else {
			t.Child(label)
		}
		pos += c.Size()
	}
}

func hasBlockChildren(n *doc.Node) bool {
	for _, c := range n.Content {
		if !c.IsText() {
			return true
		}
	}
	return false
}
