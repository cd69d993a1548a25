// Package transform provides the structural edits of the slide editor:
// moving blocks by drag and drop, keeping rows well formed, and editing
// columns.
//
// # Overview
//
// Every function here describes its change as steps on a [doc.Transaction]
// and never touches a document directly. Expected failures (a block that no
// longer exists, a drop onto itself, a result the schema forbids) leave the
// transaction untouched and return one of the sentinel errors, so callers
// can treat them as "nothing happened".
//
// # Rewrites
//
// [ComputeRewrite] decides what actually gets inserted when a block is
// dropped on a target edge:
//
//   - TOP/BOTTOM: the block itself, converted to a list item when dropped
//     beside one
//   - LEFT/RIGHT beside a leaf or list: a new two-column row holding the
//     target and the dragged block, replacing the target
//   - LEFT/RIGHT beside a column: the dragged block in a fresh column
//
// # Committing a drop
//
// [Move] runs the whole drop as one transaction: delete the source, map the
// target through the deletion, insert the rewritten block and, for new rows,
// delete the target's old slot. Positions are remapped after every step:
//
//	Before: heading, paragraph          (drag paragraph to RIGHT of heading)
//	After:  row(column(heading), column(paragraph))
//
// Dragging the last block out of a column removes the emptied column, and
// the row too when nothing else is left in it.
//
// # Row normalization
//
// [NormalizeRows] restores two row invariants after any structural change:
// a row never holds a single column (it is unwrapped into its parent), and
// a row's columnWidths has one ratio per column. [NormalizePlugin] runs it
// after every transaction that changed the document structure.
package transform
