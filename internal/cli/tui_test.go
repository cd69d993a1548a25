package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/editor"
)

func newTestEditModel(t *testing.T) *editModel {
	t.Helper()
	d := doc.NewDoc(doc.P("a"), doc.P("b"), doc.P("c"))
	m, err := newEditModel(filepath.Join(t.TempDir(), "slide.json"), d, dnd.DefaultPolicy(), editor.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// press feeds keys to the model; single characters are typed, anything else
// is a named key.
func press(m *editModel, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestEditModelDrops(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		want  *doc.Node
		lines int
	}{
		{
			name:  "above",
			keys:  []string{"j", " ", "k", "enter"},
			want:  doc.NewDoc(doc.P("b"), doc.P("a"), doc.P("c")),
			lines: 3,
		},
		{
			name:  "beside",
			keys:  []string{"j", " ", "k", "l", "enter"},
			want:  doc.NewDoc(doc.Row([]float64{1, 1}, doc.Column(doc.P("a")), doc.Column(doc.P("b"))), doc.P("c")),
			lines: 6,
		},
		{
			name:  "below last",
			keys:  []string{" ", "j", "j", "l", "l", "enter"},
			want:  doc.NewDoc(doc.P("b"), doc.P("c"), doc.P("a")),
			lines: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestEditModel(t)
			press(m, tt.keys...)
			if got := m.ed.Doc(); !got.Equal(tt.want) {
				t.Errorf("doc = %v, want %v (status %q)", got, tt.want, m.status)
			}
			if !m.dirty || len(m.undo) != 1 || m.session != nil {
				t.Errorf("dirty=%v undo=%d session=%v", m.dirty, len(m.undo), m.session)
			}
			if len(m.lines) != tt.lines || m.tracker.Len() != tt.lines {
				t.Errorf("lines = %d, targets = %d, want %d", len(m.lines), m.tracker.Len(), tt.lines)
			}
		})
	}
}

func TestEditModelRejectsSelfDrop(t *testing.T) {
	m := newTestEditModel(t)
	before := m.ed.Doc()
	press(m, " ", "enter")
	if m.ed.Doc() != before || m.dirty {
		t.Errorf("self drop changed the document: %v", m.ed.Doc())
	}
	if !strings.Contains(m.status, "rejected") {
		t.Errorf("status = %q", m.status)
	}
}

func TestEditModelCancelAndQuit(t *testing.T) {
	m := newTestEditModel(t)
	if cmd := press(m, " ", "esc"); cmd != nil {
		t.Error("esc while dragging should only cancel the drag")
	}
	if m.session != nil || m.status != "drag cancelled" {
		t.Errorf("session = %v, status = %q", m.session, m.status)
	}
	if cmd := press(m, "esc"); cmd == nil {
		t.Error("esc without a drag should quit")
	}
}

func TestEditModelDeleteUndoSave(t *testing.T) {
	m := newTestEditModel(t)
	press(m, "j", "j", "d")
	if want := doc.NewDoc(doc.P("a"), doc.P("b")); !m.ed.Doc().Equal(want) {
		t.Fatalf("after delete = %v", m.ed.Doc())
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want clamped to 1", m.cursor)
	}

	press(m, "u")
	if want := doc.NewDoc(doc.P("a"), doc.P("b"), doc.P("c")); !m.ed.Doc().Equal(want) {
		t.Fatalf("after undo = %v", m.ed.Doc())
	}

	press(m, "w")
	if m.dirty {
		t.Errorf("dirty after save, status %q", m.status)
	}
	data, err := os.ReadFile(m.path)
	if err != nil {
		t.Fatal(err)
	}
	var saved doc.Node
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatal(err)
	}
	if !saved.Equal(m.ed.Doc()) {
		t.Errorf("saved = %v", &saved)
	}
}

func TestEditModelView(t *testing.T) {
	m := newTestEditModel(t)
	press(m, " ", "j")
	view := m.View()
	for _, want := range []string{"slide.json", "dragging paragraph", "drop here", `paragraph "b" @3`} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestEdgePoint(t *testing.T) {
	box := cellBounds(2)
	for _, e := range dnd.Order {
		got, ok := dnd.NearestEdge(box, edgePoint(box, e), dnd.EdgeSet{Top: true, Right: true, Bottom: true, Left: true}, dnd.DefaultNearestOptions())
		if !ok || got != e {
			t.Errorf("pointer on %s resolved to %s, %v", e, got, ok)
		}
	}
	if _, ok := dnd.NearestEdge(box, edgePoint(box, 0), dnd.EdgeSet{Top: true}, dnd.DefaultNearestOptions()); ok {
		t.Error("the parking point should be out of range")
	}
}
