// Package render turns slide documents into pictures of their structure.
//
// The [outline] subpackage draws the block tree of a document, either for a
// terminal or as a Graphviz diagram. This package holds the format
// conversion shared by SVG producers:
//
//	svg, err := outline.RenderSVG(ctx, outline.ToDOT(d, outline.Options{}))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// Conversion shells out to rsvg-convert from librsvg. When the tool is
// missing the functions return an UNSUPPORTED error with install hints.
package render
