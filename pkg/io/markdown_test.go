package io

import (
	"strings"
	"testing"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/schema"
)

func TestParseMarkdown(t *testing.T) {
	src := `# Title

Intro *text* here.

- one
- two
  - nested

3. third
4. fourth

![A cat](cat.png)
`
	d, err := ParseMarkdown(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseMarkdown() error = %v", err)
	}

	img := doc.Image("cat.png")
	img.Attrs[schema.AttrAlt] = "A cat"
	want := doc.NewDoc(
		doc.H(1, "Title"),
		doc.Paragraph(doc.Text("Intro "), doc.Text("text", doc.Mark{Type: MarkItalic}), doc.Text(" here.")),
		doc.BulletList(doc.LI("one"), doc.LI("two"), doc.LI("nested")),
		doc.OrderedList(3, doc.LI("third"), doc.LI("fourth")),
		img,
	)
	if !d.Equal(want) {
		t.Errorf("ParseMarkdown() =\n%v\nwant\n%v", d, want)
	}
}

func TestParseMarkdownInline(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *doc.Node
	}{
		{
			name: "bold and code",
			src:  "**bold** and `code`",
			want: doc.Paragraph(doc.Text("bold", doc.Mark{Type: MarkBold}), doc.Text(" and "), doc.Text("code", doc.Mark{Type: MarkCode})),
		},
		{
			name: "strikethrough",
			src:  "~~gone~~",
			want: doc.Paragraph(doc.Text("gone", doc.Mark{Type: MarkStrike})),
		},
		{
			name: "link",
			src:  "[site](https://example.com)",
			want: doc.Paragraph(doc.Text("site", doc.Mark{Type: MarkLink, Attrs: doc.Attrs{"href": "https://example.com"}})),
		},
		{
			name: "soft break",
			src:  "line one\nline two",
			want: doc.P("line one line two"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseMarkdown(strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			if len(d.Content) != 1 || !d.Content[0].Equal(tt.want) {
				t.Errorf("got %v, want doc(%v)", d, tt.want)
			}
		})
	}
}

func TestParseMarkdownEmbeddedHTML(t *testing.T) {
	src := "## Compare\n\n<row columnwidths=\"1,1\">\n<column><p>a</p></column>\n<column><p>b</p></column>\n</row>\n"
	d, err := ParseMarkdown(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := doc.NewDoc(
		doc.H(2, "Compare"),
		doc.Row([]float64{1, 1}, doc.Column(doc.P("a")), doc.Column(doc.P("b"))),
	)
	if !d.Equal(want) {
		t.Errorf("got %v, want %v", d, want)
	}
}

func TestParseMarkdownEmpty(t *testing.T) {
	d, err := ParseMarkdown(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(doc.NewDoc(doc.Paragraph())) {
		t.Errorf("got %v", d)
	}
}
