package dnd_test

import (
	"fmt"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/schema"
)

func ExampleAllowedEdges() {
	heading := dnd.NodeInfo{Type: schema.Heading, ParentType: schema.Doc, ParentChildCount: 2}

	fmt.Println(dnd.AllowedEdges(heading, schema.Paragraph, dnd.DefaultPolicy()))
	fmt.Println(dnd.AllowedEdges(heading, schema.Row, dnd.DefaultPolicy()))
	// Output:
	// TOP,RIGHT,BOTTOM,LEFT
	// TOP,BOTTOM
}

func ExampleNearestEdge() {
	box := dnd.Rect{Top: 0, Left: 0, Bottom: 100, Right: 100}
	all := dnd.EdgeSet{Top: true, Right: true, Bottom: true, Left: true}

	edge, ok := dnd.NearestEdge(box, dnd.Point{X: 50, Y: 50}, all, dnd.DefaultNearestOptions())
	fmt.Println(edge, ok)
	// Output: TOP true
}
