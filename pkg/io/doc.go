// Package io reads and writes slide decks and converts foreign markup into
// slide documents.
//
// # Template Format
//
// A template bundles a theme with an ordered list of slides:
//
//	{
//	  "theme": {"name": "Ocean", "bgColor": "#ecfeff", ...},
//	  "slides": [
//	    {"id": "3f0c...", "content": {"type": "doc", "content": [...]}},
//	    {"id": "91ab...", "content": "<h1>Cats</h1><p>The fascinating world of cats</p>"}
//	  ]
//	}
//
// Slide content is either a JSON document snapshot or an HTML string using
// the schema tag names. Older exports may carry the snapshot under
// "contentJSON" instead; both are accepted. Missing slide ids are filled in
// and a missing theme falls back to [theme.Default].
//
// Every slide is checked against the containment schema on read. Malformed
// templates are reported with code [errors.ErrCodeInvalidTemplate]; the
// cause names the slide and the offending node path.
//
// # Import
//
// Use [ImportJSON] to read a template from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	tpl, err := io.ImportJSON("deck.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Export
//
// Use [ExportJSON] to write a template to a file, or [WriteJSON] to write to
// any io.Writer. Exported slides always use the JSON snapshot form.
//
// # Markup
//
// [ParseHTML] understands h1-h6, p, row (columnwidths="1,2"), column, img,
// chart (data-chart-type, data-chart), ul, ol (start) and li, plus the
// usual inline marks (strong, em, u, s, code, a). Unknown wrappers such as
// div or section are flattened. [WriteHTML] produces the same dialect.
//
// [ParseMarkdown] maps headings, paragraphs, lists, images and code to
// slide blocks. Nested lists are flattened into their parent list since
// list items hold a single paragraph. Raw HTML blocks go through
// [ParseHTML], which is how rows and charts can be embedded in Markdown.
package io
