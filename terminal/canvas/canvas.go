// Package canvas holds the cell grid drawables paint into.
package canvas

import (
	"github.com/hnimtadd/termdraw/terminal/cell"
	"github.com/hnimtadd/termdraw/terminal/coordinate"
)

// Canvas is a mutable grid of cells addressed by (column, row).
//
// Size must not change while a drawable is painting. Set must accept any
// position: writes outside [0, cols) x [0, rows) are silently dropped, so
// drawables can paint without clipping every character themselves.
type Canvas interface {
	Size() (cols, rows int)
	Set(pos coordinate.Dims, c cell.Cell)
}
