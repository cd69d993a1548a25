package io

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/schema"
)

// WriteHTML renders d in the markup dialect read by [ParseHTML].
func WriteHTML(w io.Writer, d *doc.Node) error {
	for _, b := range d.Content {
		el, err := element(b)
		if err != nil {
			return err
		}
		if err := html.Render(w, el); err != nil {
			return fmt.Errorf("render %s: %w", b.Type, err)
		}
	}
	return nil
}

// RenderHTML is [WriteHTML] into a string.
func RenderHTML(d *doc.Node) (string, error) {
	var b strings.Builder
	if err := WriteHTML(&b, d); err != nil {
		return "", err
	}
	return b.String(), nil
}

func element(n *doc.Node) (*html.Node, error) {
	var el *html.Node
	switch n.Type {
	case schema.Heading:
		level, _ := n.Attrs.Int(schema.AttrLevel)
		el = newElement(fmt.Sprintf("h%d", level))
		setString(el, "textalign", n.Attrs, schema.AttrTextAlign)
		appendInline(el, n.Content)
		return el, nil
	case schema.Paragraph:
		el = newElement("p")
		setString(el, "textalign", n.Attrs, schema.AttrTextAlign)
		appendInline(el, n.Content)
		return el, nil
	case schema.Row:
		el = newElement("row")
		if widths := n.ColumnWidths(); len(widths) > 0 {
			parts := make([]string, len(widths))
			for i, w := range widths {
				parts[i] = strconv.FormatFloat(w, 'f', -1, 64)
			}
			el.Attr = append(el.Attr, html.Attribute{Key: "columnwidths", Val: strings.Join(parts, ",")})
		}
	case schema.Column:
		el = newElement("column")
	case schema.Image:
		el = newElement("img")
		for _, k := range []string{schema.AttrSrc, schema.AttrAlt, schema.AttrLayout, schema.AttrSize} {
			setString(el, k, n.Attrs, k)
		}
		return el, nil
	case schema.Chart:
		el = newElement("chart")
		setString(el, "data-chart-type", n.Attrs, schema.AttrChartType)
		if data, ok := n.Attrs[schema.AttrData]; ok && data != nil {
			b, err := json.Marshal(data)
			if err != nil {
				return nil, fmt.Errorf("encode chart data: %w", err)
			}
			el.Attr = append(el.Attr, html.Attribute{Key: "data-chart", Val: string(b)})
		}
		return el, nil
	case schema.BulletList:
		el = newElement("ul")
	case schema.OrderedList:
		el = newElement("ol")
		if start, ok := n.Attrs.Int(schema.AttrStart); ok && start != 1 {
			el.Attr = append(el.Attr, html.Attribute{Key: "start", Val: strconv.Itoa(start)})
		}
	case schema.ListItem:
		el = newElement("li")
	default:
		return nil, fmt.Errorf("cannot render %s as html", n.Type)
	}
	for _, c := range n.Content {
		child, err := element(c)
		if err != nil {
			return nil, err
		}
		el.AppendChild(child)
	}
	return el, nil
}

func newElement(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

func setString(el *html.Node, key string, attrs doc.Attrs, name string) {
	if v, ok := attrs.String(name); ok && v != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: key, Val: v})
	}
}

var markTags = map[string]string{
	MarkBold:      "strong",
	MarkItalic:    "em",
	MarkUnderline: "u",
	MarkStrike:    "s",
	MarkCode:      "code",
	MarkLink:      "a",
}

func appendInline(parent *html.Node, inline []*doc.Node) {
	for _, t := range inline {
		var outer, inner *html.Node
		for _, m := range t.Marks {
			tag, ok := markTags[m.Type]
			if !ok {
				continue
			}
			el := newElement(tag)
			if m.Type == MarkLink {
				setString(el, "href", m.Attrs, "href")
			}
			if outer == nil {
				outer = el
			} else {
				inner.AppendChild(el)
			}
			inner = el
		}
		text := &html.Node{Type: html.TextNode, Data: t.Text}
		if outer == nil {
			parent.AppendChild(text)
			continue
		}
		inner.AppendChild(text)
		parent.AppendChild(outer)
	}
}
