// Package outline renders the block structure of a slide document.
//
// # Overview
//
// Editing problems in a slide usually come down to nesting: a paragraph that
// ended up in the wrong column, a row that lost its widths. This package
// prints that nesting.
//
//   - [Tree] draws an indented tree for terminals using lipgloss
//   - [ToDOT] produces Graphviz DOT source
//   - [RenderSVG] lays the DOT out in-process with go-graphviz
//
// Every label starts with the node type and, with [Options.Positions], the
// document position of the node. That is the position the CLI and HTTP API
// expect for drops and column operations.
//
//	fmt.Println(outline.Tree(d, outline.Options{Positions: true}))
//
//	doc
//	├── heading h1 "Title" @0
//	└── row 1:1 @7
//	    ├── column @8
//	    │   └── paragraph "left" @9
//	    └── column @16
//	        └── image cat.png @17
package outline
