package io

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/schema"
)

// ParseHTML converts an HTML snippet or page into a slide document. The
// result is validated; an input without any content yields a document with
// a single empty paragraph.
func ParseHTML(r io.Reader) (*doc.Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse html")
	}
	if body := findBody(root); body != nil {
		root = body
	}
	blocks := blocksOf(root)
	if len(blocks) == 0 {
		blocks = append(blocks, doc.Paragraph())
	}
	d := doc.NewDoc(blocks...)
	if err := doc.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseHTMLString is [ParseHTML] over a string.
func ParseHTMLString(s string) (*doc.Node, error) {
	return ParseHTML(strings.NewReader(s))
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

// blocksOf converts the children of n into blocks. Stray inline content is
// gathered into paragraphs.
func blocksOf(n *html.Node) []*doc.Node {
	var out []*doc.Node
	var pending runs
	flush := func() {
		if !pending.empty() {
			out = append(out, doc.Paragraph(pending.finish()...))
		}
		pending = runs{}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isInline(c) {
			inlineOf(c, nil, &pending)
			continue
		}
		flush()
		out = append(out, block(c)...)
	}
	flush()
	return out
}

func isInline(n *html.Node) bool {
	switch n.Type {
	case html.TextNode:
		return true
	case html.ElementNode:
		switch n.Data {
		case "strong", "b", "em", "i", "u", "s", "strike", "del", "code", "a", "span", "br", "sub", "sup", "mark":
			return true
		}
	}
	return false
}

func block(n *html.Node) []*doc.Node {
	if n.Type != html.ElementNode {
		return nil
	}
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		h := doc.Heading(int(n.Data[1]-'0'), inlineContent(n)...)
		return []*doc.Node{aligned(h, n)}
	case "p":
		return []*doc.Node{aligned(doc.Paragraph(inlineContent(n)...), n)}
	case "row":
		var cols []*doc.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "column" {
				cols = append(cols, column(c))
			}
		}
		return []*doc.Node{doc.Row(parseWidths(attr(n, "columnwidths")), cols...)}
	case "column":
		// A column outside a row has no meaning of its own.
		return blocksOf(n)
	case "img", "image":
		return []*doc.Node{image(n)}
	case "chart":
		return []*doc.Node{doc.Chart(attrOr(n, "data-chart-type", schema.ChartBar), parseChartData(attr(n, "data-chart")))}
	case "ul":
		return []*doc.Node{doc.BulletList(listItems(n)...)}
	case "ol":
		start := 1
		if v, err := strconv.Atoi(attr(n, "start")); err == nil {
			start = v
		}
		return []*doc.Node{doc.OrderedList(start, listItems(n)...)}
	case "li":
		return []*doc.Node{doc.BulletList(listItem(n)...)}
	case "script", "style", "head", "title", "template", "hr":
		return nil
	}
	return blocksOf(n)
}

func column(n *html.Node) *doc.Node {
	blocks := blocksOf(n)
	if len(blocks) == 0 {
		blocks = append(blocks, doc.Paragraph())
	}
	return doc.Column(blocks...)
}

func image(n *html.Node) *doc.Node {
	img := doc.Image(attr(n, "src"))
	if !hasAttr(n, "src") {
		img.Attrs[schema.AttrSrc] = nil
	}
	if v := attr(n, "alt"); v != "" {
		img.Attrs[schema.AttrAlt] = v
	}
	if v := attr(n, "layout"); v != "" {
		img.Attrs[schema.AttrLayout] = v
	}
	if v := attr(n, "size"); v != "" {
		img.Attrs[schema.AttrSize] = v
	}
	return img
}

// listItems collects the li children of a list.
func listItems(list *html.Node) []*doc.Node {
	var items []*doc.Node
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "li" {
			items = append(items, listItem(c)...)
		}
	}
	if len(items) == 0 {
		items = append(items, doc.ListItem(doc.Paragraph()))
	}
	return items
}

// listItem converts one li. Lists nested inside it are flattened into the
// returned slice right after the item itself.
func listItem(li *html.Node) []*doc.Node {
	var text runs
	var nested []*doc.Node
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol"):
			nested = append(nested, listItems(c)...)
		case c.Type == html.ElementNode && c.Data == "p":
			if !text.empty() {
				text.add(" ", nil)
			}
			for in := c.FirstChild; in != nil; in = in.NextSibling {
				inlineOf(in, nil, &text)
			}
		default:
			inlineOf(c, nil, &text)
		}
	}
	return append([]*doc.Node{doc.ListItem(doc.Paragraph(text.finish()...))}, nested...)
}

func inlineContent(n *html.Node) []*doc.Node {
	var r runs
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		inlineOf(c, nil, &r)
	}
	return r.finish()
}

func inlineOf(n *html.Node, marks []doc.Mark, r *runs) {
	switch n.Type {
	case html.TextNode:
		r.add(n.Data, marks)
		return
	case html.ElementNode:
	default:
		return
	}
	switch n.Data {
	case "strong", "b":
		marks = withMark(marks, doc.Mark{Type: MarkBold})
	case "em", "i":
		marks = withMark(marks, doc.Mark{Type: MarkItalic})
	case "u":
		marks = withMark(marks, doc.Mark{Type: MarkUnderline})
	case "s", "strike", "del":
		marks = withMark(marks, doc.Mark{Type: MarkStrike})
	case "code":
		marks = withMark(marks, doc.Mark{Type: MarkCode})
	case "a":
		marks = withMark(marks, doc.Mark{Type: MarkLink, Attrs: doc.Attrs{"href": attr(n, "href")}})
	case "br":
		r.add(" ", marks)
		return
	case "script", "style", "img", "image", "chart":
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		inlineOf(c, marks, r)
	}
}

func aligned(n *doc.Node, el *html.Node) *doc.Node {
	if v := attr(el, "textalign"); v != "" {
		n.Attrs[schema.AttrTextAlign] = v
	}
	return n
}

func parseWidths(s string) []float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	widths := make([]float64, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil
		}
		widths = append(widths, w)
	}
	return widths
}

// parseChartData decodes a data-chart attribute. Unparseable input yields
// nil so the chart keeps its sample data; unusable entries are repaired.
func parseChartData(s string) []schema.ChartDatum {
	if s == "" {
		return nil
	}
	var raw []map[string]any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil
	}
	data := make([]schema.ChartDatum, len(raw))
	for i, item := range raw {
		label, ok := item["label"].(string)
		if !ok {
			label = fmt.Sprintf("Item %d", i+1)
		}
		data[i] = schema.ChartDatum{Label: label, Value: chartValue(item["value"])}
	}
	return data
}

func chartValue(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err == nil {
			return f
		}
	case bool:
		if x {
			return 1
		}
	}
	return 0
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func attrOr(n *html.Node, key, def string) string {
	if v := attr(n, key); v != "" {
		return v
	}
	return def
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
