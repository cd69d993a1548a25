package io

import (
	"slices"
	"strings"
	"unicode"

	"github.com/matzehuels/slidekit/pkg/doc"
)

// Mark names produced by the importers.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
	MarkStrike    = "strike"
	MarkCode      = "code"
	MarkLink      = "link"
)

// runs accumulates inline text with its marks and collapses whitespace the
// way a browser would when laying out a paragraph.
type runs struct {
	nodes []*doc.Node
}

func (r *runs) add(s string, marks []doc.Mark) {
	if s == "" {
		return
	}
	r.nodes = append(r.nodes, doc.Text(s, slices.Clone(marks)...))
}

func (r *runs) empty() bool {
	for _, n := range r.nodes {
		if strings.TrimSpace(n.Text) != "" {
			return false
		}
	}
	return true
}

// finish collapses whitespace runs, trims the edges and merges neighbours
// carrying the same marks.
func (r *runs) finish() []*doc.Node {
	var out []*doc.Node
	space := true // leading whitespace is dropped
	for _, n := range r.nodes {
		s := collapse(n.Text, space)
		if s == "" {
			continue
		}
		space = strings.HasSuffix(s, " ")
		if len(out) > 0 && sameMarks(out[len(out)-1].Marks, n.Marks) {
			last := out[len(out)-1]
			out[len(out)-1] = doc.Text(last.Text+s, last.Marks...)
			continue
		}
		out = append(out, doc.Text(s, n.Marks...))
	}
	for len(out) > 0 {
		last := out[len(out)-1]
		trimmed := strings.TrimRight(last.Text, " ")
		if trimmed != "" {
			out[len(out)-1] = doc.Text(trimmed, last.Marks...)
			break
		}
		out = out[:len(out)-1]
	}
	r.nodes = nil
	return out
}

func collapse(s string, afterSpace bool) string {
	var b strings.Builder
	for _, c := range s {
		if unicode.IsSpace(c) {
			if afterSpace {
				continue
			}
			afterSpace = true
			b.WriteByte(' ')
			continue
		}
		afterSpace = false
		b.WriteRune(c)
	}
	return b.String()
}

func sameMarks(a, b []doc.Mark) bool {
	return slices.EqualFunc(a, b, func(x, y doc.Mark) bool {
		return x.Type == y.Type && x.Attrs.Equal(y.Attrs)
	})
}

func withMark(marks []doc.Mark, m doc.Mark) []doc.Mark {
	for _, have := range marks {
		if have.Type == m.Type {
			return marks
		}
	}
	return append(slices.Clone(marks), m)
}
