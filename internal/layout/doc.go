// Package layout computes how a set of images is arranged on a grid canvas.
//
// The engine is pure integer arithmetic. It never touches pixels and keeps no
// state between calls, so every function here is safe for concurrent use.
//
// # Grid Shape
//
// ResolveShape turns an item count and optional row/column hints into a Shape.
// A hint of 0 means "unspecified":
//   - No hints: columns = ceil(sqrt(n)), rows = ceil(n / columns)
//   - Rows only: columns = ceil(n / rows)
//   - Columns only: rows = ceil(n / columns)
//   - Both: used as given, but must hold every item
//
// # Cells and Placement
//
// Every cell has the same size: the maximum width and the maximum height over
// all items. Items are placed in row-major order. An item smaller than its
// cell sits in the cell's top-left corner unless centering is enabled for
// that axis, in which case the slack is split with truncating division, so an
// odd remainder leaves the extra pixel on the right or bottom.
//
// # Coordinate System
//
// (0,0) is the top-left of the canvas, X grows rightward and Y grows downward.
package layout
