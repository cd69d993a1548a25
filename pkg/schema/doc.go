// Package schema classifies slide block types and declares which blocks may
// nest inside which containers.
//
// # Overview
//
// A slide is a tree of typed blocks. The root [Doc] holds top-level blocks;
// a [Row] lays out two to four [Column] containers side by side, and each
// column stacks ordinary content blocks. Every other package consults this
// one before it moves, wraps or validates a block.
//
// # Taxonomy
//
// [Type] is a closed enumeration. The classification helpers group types by
// role:
//
//   - [IsLeaf]: atomic content (heading, paragraph, image)
//   - [IsList] and [IsListItem]: bullet/ordered lists and their items
//   - [IsColumnable]: blocks that may be wrapped into a fresh column
//   - [CanConvertToListItem]: blocks that turn into a list item when dropped
//     onto one
//
// Unknown types classify as none of the above and are treated as opaque.
//
// # Containment
//
// [Accepts] and [RuleFor] expose the static containment table. Rows are
// capped at [MaxColumnsPerRow] columns.
package schema
