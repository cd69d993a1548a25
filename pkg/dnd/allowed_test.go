package dnd

import (
	"testing"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/schema"
)

func TestAllowedEdges(t *testing.T) {
	atRoot := func(t schema.Type) NodeInfo { return NodeInfo{Type: t, ParentType: schema.Doc, ParentChildCount: 3} }
	in := func(t, parent schema.Type, siblings int) NodeInfo {
		return NodeInfo{Type: t, ParentType: parent, ParentChildCount: siblings}
	}

	tests := []struct {
		name   string
		target NodeInfo
		source schema.Type
		policy Policy
		want   EdgeSet
	}{
		{"leaf at root", atRoot(schema.Paragraph), schema.Heading, DefaultPolicy(), allEdges},
		{"image at root", atRoot(schema.Image), schema.Image, DefaultPolicy(), allEdges},
		{"list beside root leaf", atRoot(schema.Heading), schema.BulletList, DefaultPolicy(), allEdges},
		{"row onto root leaf", atRoot(schema.Paragraph), schema.Row, DefaultPolicy(), verticalEdges},
		{"row onto root leaf when allowed", atRoot(schema.Paragraph), schema.Row, Policy{MaxColumnsPerRow: 4, AllowRowBesideLeaf: true}, allEdges},
		{"leaf in column", in(schema.Heading, schema.Column, 2), schema.Paragraph, DefaultPolicy(), verticalEdges},
		{"leaf in list item", in(schema.Paragraph, schema.ListItem, 1), schema.Paragraph, DefaultPolicy(), verticalEdges},
		{"heading onto list item", in(schema.ListItem, schema.BulletList, 2), schema.Heading, DefaultPolicy(), verticalEdges},
		{"list item onto list item", in(schema.ListItem, schema.OrderedList, 2), schema.ListItem, DefaultPolicy(), verticalEdges},
		{"image onto list item", in(schema.ListItem, schema.BulletList, 2), schema.Image, DefaultPolicy(), noEdges},
		{"row onto list item", in(schema.ListItem, schema.BulletList, 2), schema.Row, DefaultPolicy(), noEdges},
		{"image onto list", atRoot(schema.BulletList), schema.Image, DefaultPolicy(), verticalEdges},
		{"column with room", in(schema.Column, schema.Row, 3), schema.Paragraph, DefaultPolicy(), sideEdges},
		{"column in full row", in(schema.Column, schema.Row, 4), schema.Paragraph, DefaultPolicy(), noEdges},
		{"column under lower cap", in(schema.Column, schema.Row, 2), schema.Paragraph, Policy{MaxColumnsPerRow: 2}, noEdges},
		{"zero policy uses schema cap", in(schema.Column, schema.Row, 3), schema.Image, Policy{}, sideEdges},
		{"row", atRoot(schema.Row), schema.Paragraph, DefaultPolicy(), verticalEdges},
		{"chart", atRoot(schema.Chart), schema.Paragraph, DefaultPolicy(), noEdges},
		{"unknown", atRoot(schema.Unknown), schema.Paragraph, DefaultPolicy(), noEdges},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllowedEdges(tt.target, tt.source, tt.policy); got != tt.want {
				t.Errorf("AllowedEdges() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllowedEdgesRootLeafProperty(t *testing.T) {
	for _, target := range []schema.Type{schema.Heading, schema.Paragraph, schema.Image} {
		info := NodeInfo{Type: target, ParentType: schema.Doc, ParentChildCount: 1}
		for _, source := range schema.All {
			got := AllowedEdges(info, source, DefaultPolicy())
			want := allEdges
			if source == schema.Row {
				want = EdgeSet{Top: true, Bottom: true}
			}
			if got != want {
				t.Errorf("AllowedEdges(%s at root, %s) = %v, want %v", target, source, got, want)
			}
		}
	}
}

func TestInfoAt(t *testing.T) {
	d := doc.NewDoc(
		doc.P("hi"),
		doc.Row(nil, doc.Column(doc.P("a")), doc.Column(doc.Image("x.png"))),
	)
	tests := []struct {
		pos  int
		want NodeInfo
		ok   bool
	}{
		{0, NodeInfo{Pos: 0, Type: schema.Paragraph, Size: 4, ParentType: schema.Doc, ParentChildCount: 2}, true},
		{4, NodeInfo{Pos: 4, Type: schema.Row, Size: 10, ParentType: schema.Doc, ParentChildCount: 2}, true},
		{10, NodeInfo{Pos: 10, Type: schema.Column, Size: 3, ParentType: schema.Row, ParentChildCount: 2}, true},
		{11, NodeInfo{Pos: 11, Type: schema.Image, Size: 1, ParentType: schema.Column, ParentChildCount: 1}, true},
		{1, NodeInfo{}, false},
		{2, NodeInfo{}, false},
		{14, NodeInfo{}, false},
		{-3, NodeInfo{}, false},
	}
	for _, tt := range tests {
		got, ok := InfoAt(d, tt.pos)
		if ok != tt.ok || got != tt.want {
			t.Errorf("InfoAt(%d) = %+v, %v; want %+v, %v", tt.pos, got, ok, tt.want, tt.ok)
		}
	}
}
