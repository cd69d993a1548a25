package outline

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/schema"
)

// Options configures outline rendering.
type Options struct {
	// Positions appends the document position of every block.
	Positions bool

	// Preview caps quoted text previews, in runes. Zero means 24; negative
	// disables previews.
	Preview int
}

func (o Options) preview() int {
	if o.Preview == 0 {
		return 24
	}
	return o.Preview
}

// Label describes n at pos in a single line, e.g. `row 2:1 @7`.
func Label(n *doc.Node, pos int, opts Options) string {
	parts := []string{n.Type.String()}
	parts = append(parts, details(n, opts)...)
	if opts.Positions {
		parts = append(parts, "@"+strconv.Itoa(pos))
	}
	return strings.Join(parts, " ")
}

func details(n *doc.Node, opts Options) []string {
	var out []string
	switch n.Type {
	case schema.Heading:
		level, _ := n.Attrs.Int(schema.AttrLevel)
		out = append(out, "h"+strconv.Itoa(level))
	case schema.Row:
		if w := n.ColumnWidths(); len(w) > 0 {
			parts := make([]string, len(w))
			for i, f := range w {
				parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
			}
			out = append(out, strings.Join(parts, ":"))
		}
	case schema.Image:
		if src, ok := n.Attrs.String(schema.AttrSrc); ok && src != "" {
			out = append(out, shorten(src, 32))
		} else {
			out = append(out, "(empty)")
		}
		if l, ok := n.Attrs.String(schema.AttrLayout); ok && l != "" && l != schema.ImageLayoutDefault {
			out = append(out, l)
		}
	case schema.Chart:
		kind, _ := n.Attrs.String(schema.AttrChartType)
		out = append(out, kind)
		if data, ok := n.Attrs[schema.AttrData].([]schema.ChartDatum); ok {
			out = append(out, fmt.Sprintf("(%d points)", len(data)))
		}
	case schema.OrderedList:
		if start, ok := n.Attrs.Int(schema.AttrStart); ok && start != 1 {
			out = append(out, "from "+strconv.Itoa(start))
		}
	}
	if schema.IsTextBlock(n.Type) && opts.preview() > 0 {
		if text := n.TextContent(); text != "" {
			out = append(out, strconv.Quote(shorten(text, opts.preview())))
		}
	}
	return out
}

func shorten(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}
