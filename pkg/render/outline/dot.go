package outline

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/schema"
)

// ToDOT converts d to Graphviz DOT source. Nodes are named by position
// ("n7") so the source stays stable across renders of the same document.
func ToDOT(d *doc.Node, opts Options) string {
	var nodes, edges bytes.Buffer
	fmt.Fprintf(&nodes, "  %q [label=%q, shape=folder];\n", "doc", d.Type.String())
	writeDOT(&nodes, &edges, d, "doc", 0, opts)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")
	buf.Write(nodes.Bytes())
	buf.WriteString("\n")
	buf.Write(edges.Bytes())
	buf.WriteString("}\n")
	return buf.String()
}

func writeDOT(nodes, edges *bytes.Buffer, n *doc.Node, parentID string, start int, opts Options) {
	pos := start
	for _, c := range n.Content {
		if !c.IsText() {
			id := "n" + strconv.Itoa(pos)
			fmt.Fprintf(nodes, "  %q [label=%q%s];\n", id, Label(c, pos, opts), nodeStyle(c))
			fmt.Fprintf(edges, "  %q -> %q;\n", parentID, id)
			writeDOT(nodes, edges, c, id, pos+1, opts)
		}
		pos += c.Size()
	}
}

func nodeStyle(n *doc.Node) string {
	switch n.Type {
	case schema.Row:
		return `, style="filled", fillcolor="#dbeafe"`
	case schema.Column:
		return `, style="dashed"`
	case schema.BulletList, schema.OrderedList, schema.ListItem:
		return `, fillcolor="#f1f5f9"`
	}
	return ""
}

// RenderSVG lays out DOT source with Graphviz and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz pt-based svg header with a plain
// pixel one.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
