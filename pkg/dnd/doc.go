// Package dnd decides where a dragged block may land.
//
// While a block is dragged over another, [AllowedEdges] lists the sides of
// the hovered block that accept the dragged type and [NearestEdge] picks the
// side closest to the pointer. Neither touches the document; they only drive
// the drop cursor.
//
// A [Tracker] owns the registered drop targets of an editor view and hands
// out one [Session] per gesture. The session holds the transient hover state
// and, when the gesture ends on a valid target, yields a [Drop] that package
// transform turns into a document edit.
package dnd
