package io

import (
	"bytes"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/schema"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Strikethrough))

// ParseMarkdown converts Markdown source into a slide document. The result
// is validated; empty input yields a document with one empty paragraph.
func ParseMarkdown(r io.Reader) (*doc.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read markdown")
	}
	root := markdown.Parser().Parse(text.NewReader(src))

	m := mdConverter{src: src}
	var blocks []*doc.Node
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		bs, err := m.block(n)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, bs...)
	}
	if len(blocks) == 0 {
		blocks = append(blocks, doc.Paragraph())
	}
	d := doc.NewDoc(blocks...)
	if err := doc.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

type mdConverter struct {
	src []byte
}

func (m mdConverter) block(n ast.Node) ([]*doc.Node, error) {
	switch node := n.(type) {
	case *ast.Heading:
		var r runs
		m.inline(node, nil, &r)
		return []*doc.Node{doc.Heading(node.Level, r.finish()...)}, nil
	case *ast.Paragraph, *ast.TextBlock:
		return m.paragraph(node), nil
	case *ast.List:
		items := m.listItems(node)
		if node.IsOrdered() {
			return []*doc.Node{doc.OrderedList(node.Start, items...)}, nil
		}
		return []*doc.Node{doc.BulletList(items...)}, nil
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var r runs
		r.add(string(m.lines(node)), []doc.Mark{{Type: MarkCode}})
		return []*doc.Node{doc.Paragraph(r.finish()...)}, nil
	case *ast.Blockquote:
		var out []*doc.Node
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			bs, err := m.block(c)
			if err != nil {
				return nil, err
			}
			out = append(out, bs...)
		}
		return out, nil
	case *ast.HTMLBlock:
		raw := m.lines(node)
		if node.HasClosure() {
			raw = append(raw, node.ClosureLine.Value(m.src)...)
		}
		d, err := ParseHTML(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		if len(d.Content) == 1 && d.Content[0].Type == schema.Paragraph && d.Content[0].ChildCount() == 0 {
			return nil, nil
		}
		return d.Content, nil
	}
	return nil, nil
}

// paragraph splits images out of the paragraph into blocks of their own.
func (m mdConverter) paragraph(n ast.Node) []*doc.Node {
	var out []*doc.Node
	var r runs
	flush := func() {
		if !r.empty() {
			out = append(out, doc.Paragraph(r.finish()...))
		}
		r = runs{}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if img, ok := c.(*ast.Image); ok {
			flush()
			out = append(out, m.image(img))
			continue
		}
		m.inline(c, nil, &r)
	}
	flush()
	return out
}

func (m mdConverter) image(img *ast.Image) *doc.Node {
	n := doc.Image(string(img.Destination))
	var alt runs
	m.inline(img, nil, &alt)
	if nodes := alt.finish(); len(nodes) > 0 {
		n.Attrs[schema.AttrAlt] = doc.Paragraph(nodes...).TextContent()
	}
	return n
}

// listItems flattens nested lists into the returned slice.
func (m mdConverter) listItems(list *ast.List) []*doc.Node {
	var items []*doc.Node
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		var r runs
		var nested []*doc.Node
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			switch cn := c.(type) {
			case *ast.List:
				nested = append(nested, m.listItems(cn)...)
			case *ast.Paragraph, *ast.TextBlock:
				if !r.empty() {
					r.add(" ", nil)
				}
				m.inline(cn, nil, &r)
			}
		}
		items = append(items, doc.ListItem(doc.Paragraph(r.finish()...)))
		items = append(items, nested...)
	}
	return items
}

func (m mdConverter) inline(n ast.Node, marks []doc.Mark, r *runs) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			r.add(string(node.Segment.Value(m.src)), marks)
			if node.SoftLineBreak() || node.HardLineBreak() {
				r.add(" ", marks)
			}
		case *ast.String:
			r.add(string(node.Value), marks)
		case *ast.Emphasis:
			mark := MarkItalic
			if node.Level >= 2 {
				mark = MarkBold
			}
			m.inline(node, withMark(marks, doc.Mark{Type: mark}), r)
		case *extast.Strikethrough:
			m.inline(node, withMark(marks, doc.Mark{Type: MarkStrike}), r)
		case *ast.CodeSpan:
			m.inline(node, withMark(marks, doc.Mark{Type: MarkCode}), r)
		case *ast.Link:
			m.inline(node, withMark(marks, doc.Mark{Type: MarkLink, Attrs: doc.Attrs{"href": string(node.Destination)}}), r)
		case *ast.AutoLink:
			url := string(node.URL(m.src))
			r.add(string(node.Label(m.src)), withMark(marks, doc.Mark{Type: MarkLink, Attrs: doc.Attrs{"href": url}}))
		case *ast.Image:
			m.inline(node, marks, r)
		case *ast.RawHTML:
		default:
			m.inline(node, marks, r)
		}
	}
}

func (m mdConverter) lines(n ast.Node) []byte {
	var b bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(m.src))
	}
	return b.Bytes()
}
