// Package layouts provides ready-made slide layouts.
//
// Layouts are kept as markup snippets in the dialect of [io.ParseHTML] so
// they read the same way they render. Rows in layouts carry no widths;
// normalization assigns equal widths once a layout lands in an editor.
package layouts

import (
	"fmt"
	"html"
	"strings"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/io"
	"github.com/matzehuels/slidekit/pkg/schema"
)

// Layout is a named slide skeleton.
type Layout struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content"`
}

// Doc parses the layout into a fresh document.
func (l Layout) Doc() (*doc.Node, error) {
	d, err := io.ParseHTMLString(l.Content)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", l.ID, err)
	}
	return d, nil
}

// Category groups related layouts.
type Category struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Layouts []Layout `json:"layouts"`
}

// Categories returns all layout categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c
		out[i].Layouts = append([]Layout(nil), c.Layouts...)
	}
	return out
}

// All returns every layout, category by category.
func All() []Layout {
	var out []Layout
	for _, c := range categories {
		out = append(out, c.Layouts...)
	}
	return out
}

// ByID looks up a layout. Unknown ids yield a LAYOUT_NOT_FOUND error.
func ByID(id string) (Layout, error) {
	for _, c := range categories {
		for _, l := range c.Layouts {
			if l.ID == id {
				return l, nil
			}
		}
	}
	return Layout{}, errors.New(errors.ErrCodeLayoutNotFound, "layout %q not found", id)
}

// Snippet builders.

func text(s string) string { return html.EscapeString(s) }

func heading(level int, s string) string { return fmt.Sprintf("<h%d>%s</h%d>", level, text(s), level) }

func paragraph(s string) string { return "<p>" + text(s) + "</p>" }

func emptyParagraph() string { return "<p></p>" }

func image(layout string) string { return `<img layout="` + layout + `">` }

func placeholder() string { return image(schema.ImageLayoutDefault) }

func chart(kind string) string {
	return `<chart data-chart-type="` + kind + `"></chart>`
}

func column(children ...string) string { return "<column>" + strings.Join(children, "") + "</column>" }

func row(columns ...string) string { return "<row>" + strings.Join(columns, "") + "</row>" }

func items(entries []string) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("<li>" + paragraph(e) + "</li>")
	}
	return b.String()
}

func bulletList(entries ...string) string { return "<ul>" + items(entries) + "</ul>" }

func orderedList(entries ...string) string { return "<ol>" + items(entries) + "</ol>" }

func wrap(parts ...string) string { return strings.Join(parts, "") }
