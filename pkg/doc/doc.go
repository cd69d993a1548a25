// Package doc implements the slide document model: an immutable block tree
// addressed by integer positions, plus the steps and transactions that
// rewrite it.
//
// # Positions
//
// Positions follow a flat token model. Every block contributes an opening
// and a closing token around its content, text contributes one token per
// rune and atoms (images, charts) a single token. Position 0 is the start of
// the document's content:
//
//	doc
//	 0 paragraph 1 "hi" 3 /paragraph 4 row 5 column 6 ... /column /row
//
// [Node.NodeAt] returns the block that starts at a position and
// [Node.Resolve] locates a position's parent and child index.
//
// # Steps and mapping
//
// Documents are never modified in place. A [Transaction] accumulates
// [Step] values; each step produces a new document that shares unchanged
// subtrees with the old one and a [StepMap] describing how positions moved.
// [Mapping] composes the maps of every step so positions taken before the
// transaction can be carried forward through it.
//
// # Validation
//
// [Validate] checks a document against the containment rules declared in
// package schema and reports the path of the first offending node.
package doc
