package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/doc/transform"
	"github.com/matzehuels/slidekit/pkg/editor"
	"github.com/matzehuels/slidekit/pkg/render/outline"
	"github.com/matzehuels/slidekit/pkg/schema"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listSourceStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	dropMarkerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

// cellSize is the side of the square box each outline line occupies in
// the virtual pointer space. Square boxes keep the nearest-edge bias off,
// so a pointer on a side always selects that side.
const cellSize = 100.0

// blockLine is one draggable block of the outline.
type blockLine struct {
	pos   int
	depth int
	node  *doc.Node
	id    dnd.TargetID
}

// editModel is the bubbletea model of the keyboard drag editor. The cursor
// stands in for the pointer: up and down pick the hovered block, left and
// right cycle through the edges that accept the dragged block.
type editModel struct {
	path   string
	ed     *editor.Editor
	opts   []editor.Option
	policy dnd.Policy

	tracker *dnd.Tracker
	lines   []blockLine
	cursor  int

	session *dnd.Session
	edgeIdx int

	undo   []*doc.Node
	dirty  bool
	status string
	height int
	offset int
}

func newEditModel(path string, d *doc.Node, policy dnd.Policy, opts ...editor.Option) (*editModel, error) {
	ed, err := editor.New(d, opts...)
	if err != nil {
		return nil, err
	}
	m := &editModel{path: path, ed: ed, opts: opts, policy: policy, height: 20}
	m.tracker = dnd.NewTracker(m.liveDoc, policy, dnd.DefaultNearestOptions())
	m.rebuild()
	return m, nil
}

func (m *editModel) liveDoc() *doc.Node { return m.ed.Doc() }

// rebuild re-reads the outline after the document changed and registers a
// drop target per line.
func (m *editModel) rebuild() {
	for _, l := range m.lines {
		m.tracker.Unregister(l.id)
	}
	m.lines = m.lines[:0]
	m.ed.Doc().Descendants(func(n *doc.Node, pos int, parent *doc.Node, _ int) bool {
		if n.IsText() || (n.Type == schema.Paragraph && parent.Type == schema.ListItem) {
			return false
		}
		m.lines = append(m.lines, blockLine{pos: pos, node: n})
		return true
	})
	m.assignDepths()
	for i := range m.lines {
		pos, row := m.lines[i].pos, i
		m.lines[i].id = m.tracker.Register(
			func() (int, bool) { return pos, true },
			func() (dnd.Rect, bool) { return cellBounds(row), true },
		)
	}
	if m.cursor >= len(m.lines) {
		m.cursor = max(len(m.lines)-1, 0)
	}
}

// assignDepths derives nesting from block extents.
func (m *editModel) assignDepths() {
	var ends []int
	for i := range m.lines {
		l := &m.lines[i]
		for len(ends) > 0 && l.pos >= ends[len(ends)-1] {
			ends = ends[:len(ends)-1]
		}
		l.depth = len(ends)
		ends = append(ends, l.pos+l.node.Size())
	}
}

func cellBounds(row int) dnd.Rect {
	top := float64(row) * cellSize
	return dnd.Rect{Top: top, Left: 0, Bottom: top + cellSize, Right: cellSize}
}

// edgePoint is the virtual pointer position on side e of box.
func edgePoint(box dnd.Rect, e dnd.Edge) dnd.Point {
	midX, midY := (box.Left+box.Right)/2, (box.Top+box.Bottom)/2
	switch e {
	case dnd.Top:
		return dnd.Point{X: midX, Y: box.Top}
	case dnd.Bottom:
		return dnd.Point{X: midX, Y: box.Bottom}
	case dnd.Left:
		return dnd.Point{X: box.Left, Y: midY}
	case dnd.Right:
		return dnd.Point{X: box.Right, Y: midY}
	}
	// Far outside every box, which clears the drop cursor.
	return dnd.Point{X: -10 * cellSize, Y: -10 * cellSize}
}

// candidates lists the edges of the hovered block accepting the dragged one.
func (m *editModel) candidates() []dnd.Edge {
	if m.session == nil || len(m.lines) == 0 {
		return nil
	}
	info, ok := dnd.InfoAt(m.ed.Doc(), m.lines[m.cursor].pos)
	if !ok {
		return nil
	}
	return dnd.AllowedEdges(info, m.session.Source.Type, m.policy).Edges()
}

// hover moves the virtual pointer to the selected edge of the cursor line.
func (m *editModel) hover() {
	if m.session == nil {
		return
	}
	var e dnd.Edge
	if edges := m.candidates(); len(edges) > 0 {
		m.edgeIdx = ((m.edgeIdx % len(edges)) + len(edges)) % len(edges)
		e = edges[m.edgeIdx]
	}
	m.session.Move(m.lines[m.cursor].id, edgePoint(cellBounds(m.cursor), e))
}

func (m *editModel) Init() tea.Cmd { return nil }

func (m *editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m *editModel) handleKey(key string) tea.Cmd {
	switch key {
	case "ctrl+c", "q":
		if m.session != nil {
			m.session.Cancel()
		}
		return tea.Quit
	case "esc":
		if m.session == nil {
			return tea.Quit
		}
		m.session.Cancel()
		m.session = nil
		m.status = "drag cancelled"
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "left", "h":
		m.edgeIdx--
		m.hover()
	case "right", "l", "tab":
		m.edgeIdx++
		m.hover()
	case " ", "space":
		m.pickUp()
	case "enter":
		m.drop()
	case "d", "x":
		m.deleteBlock()
	case "u":
		m.undoLast()
	case "w":
		m.save()
	}
	return nil
}

func (m *editModel) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.lines) {
		return
	}
	m.cursor = next
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	m.edgeIdx = 0
	m.hover()
}

func (m *editModel) pickUp() {
	if m.session != nil {
		m.session.Cancel()
		m.session = nil
		m.status = "drag cancelled"
		return
	}
	if len(m.lines) == 0 {
		return
	}
	s, err := m.tracker.Start(m.lines[m.cursor].pos)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.session = s
	m.edgeIdx = 0
	m.status = "dragging " + s.Source.Type.String()
	m.hover()
}

func (m *editModel) drop() {
	if m.session == nil {
		return
	}
	s := m.session
	m.session = nil
	d, ok, err := s.End(m.lines[m.cursor].id)
	if err != nil || !ok {
		m.status = "no drop target here"
		return
	}
	before := m.ed.Doc()
	rw, err := m.ed.Drop(d)
	if err != nil {
		m.status = "drop rejected: " + err.Error()
		return
	}
	m.changed(before)
	m.status = fmt.Sprintf("dropped %s on %s of %s (%s)", d.Source.Type, d.Edge, d.Target.Type, rw.Case)
}

func (m *editModel) deleteBlock() {
	if m.session != nil || len(m.lines) == 0 {
		return
	}
	before := m.ed.Doc()
	pos := m.lines[m.cursor].pos
	if err := m.ed.Apply("delete", func(tr *doc.Transaction) error { return transform.DeleteBlock(tr, pos) }); err != nil {
		m.status = "delete rejected: " + err.Error()
		return
	}
	m.changed(before)
	m.status = "deleted block"
}

func (m *editModel) changed(before *doc.Node) {
	m.undo = append(m.undo, before)
	m.dirty = true
	m.rebuild()
}

func (m *editModel) undoLast() {
	if m.session != nil || len(m.undo) == 0 {
		return
	}
	prev := m.undo[len(m.undo)-1]
	ed, err := editor.New(prev, m.opts...)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.undo = m.undo[:len(m.undo)-1]
	m.ed = ed
	m.dirty = true
	m.rebuild()
	m.status = "undone"
}

func (m *editModel) save() {
	data, err := json.MarshalIndent(m.ed.Doc(), "", "  ")
	if err == nil {
		err = os.WriteFile(m.path, append(data, '\n'), 0o644)
	}
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.dirty = false
	m.status = "saved " + m.path
}

func (m *editModel) View() string {
	var b strings.Builder

	title := "Edit " + m.path
	if m.dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move  space pick up  ←/→ edge  ⏎ drop  d delete  u undo  w save  q quit"))
	b.WriteString("\n\n")

	var (
		targetID dnd.TargetID
		edge     dnd.Edge
		active   bool
	)
	if m.session != nil {
		targetID, edge, active = m.session.Cursor()
	}

	end := min(m.offset+m.height, len(m.lines))
	for i := m.offset; i < end; i++ {
		l := m.lines[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := cursor + strings.Repeat("  ", l.depth) + outline.Label(l.node, l.pos, outline.Options{Positions: true})

		style := listNormalStyle
		switch {
		case m.session != nil && l.pos == m.session.Source.Pos:
			style = listSourceStyle
		case i == m.cursor:
			style = listSelectedStyle
		}
		if active && l.id == targetID && edge.Vertical() && edge == dnd.Top {
			b.WriteString(dropMarkerStyle.Render(strings.Repeat(" ", 2+2*l.depth) + "── drop here ──"))
			b.WriteString("\n")
		}
		b.WriteString(style.Render(line))
		if active && l.id == targetID && !edge.Vertical() {
			b.WriteString(" " + dropMarkerStyle.Render("◂ drop "+strings.ToLower(edge.String())))
		}
		b.WriteString("\n")
		if active && l.id == targetID && edge == dnd.Bottom {
			b.WriteString(dropMarkerStyle.Render(strings.Repeat(" ", 2+2*l.depth) + "── drop here ──"))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(listDimStyle.Render("  " + m.status))
	}
	return b.String()
}
