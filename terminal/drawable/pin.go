package drawable

import (
	"github.com/hnimtadd/termdraw/terminal/canvas"
	"github.com/hnimtadd/termdraw/terminal/coordinate"
)

// AtColumn pins a positioned drawable to a column. It is drawn at a row.
type AtColumn[D Positioned] struct {
	Inner  D
	Column int
}

// PinColumn fixes the column of d.
func PinColumn[D Positioned](d D, x int) AtColumn[D] {
	return AtColumn[D]{Inner: d, Column: x}
}

func (a AtColumn[D]) Draw(y int, c canvas.Canvas) {
	a.Inner.Draw(coordinate.NewDims(a.Column, y), c)
}

// AtRow pins a positioned drawable to a row. It is drawn at a column.
type AtRow[D Positioned] struct {
	Inner D
	Row   int
}

// PinRow fixes the row of d.
func PinRow[D Positioned](d D, y int) AtRow[D] {
	return AtRow[D]{Inner: d, Row: y}
}

func (a AtRow[D]) Draw(x int, c canvas.Canvas) {
	a.Inner.Draw(coordinate.NewDims(x, a.Row), c)
}
