package drawable

import (
	"github.com/hnimtadd/termdraw/terminal/canvas"
	"github.com/hnimtadd/termdraw/terminal/coordinate"
	"github.com/hnimtadd/termdraw/terminal/style"
	"github.com/hnimtadd/termdraw/terminal/width"
)

// Centered is a string horizontally centered on the row it is drawn at.
type Centered struct {
	Content string
	Style   style.Style
}

var _ Scalar = Centered{}

// Center returns s centered with the default style.
func Center(s string) Centered {
	return Centered{Content: s}
}

// WithStyle returns a copy of c painted with s.
func (c Centered) WithStyle(s style.Style) Centered {
	c.Style = s
	return c
}

// Draw paints the string on row y starting at column
// floor((cols - width) / 2). The column is negative when the string is
// wider than the canvas, the runes left of column 0 are clipped.
func (c Centered) Draw(y int, cv canvas.Canvas) {
	cols, _ := cv.Size()
	x := floorDiv(cols-width.String(c.Content), 2)
	Text{Content: c.Content, Style: c.Style}.Draw(coordinate.NewDims(x, y), cv)
}

// RightAligned is a string whose last column touches the right edge of the
// row it is drawn at.
type RightAligned struct {
	Content string
	Style   style.Style
}

var _ Scalar = RightAligned{}

// Right returns s right aligned with the default style.
func Right(s string) RightAligned {
	return RightAligned{Content: s}
}

// WithStyle returns a copy of r painted with s.
func (r RightAligned) WithStyle(s style.Style) RightAligned {
	r.Style = s
	return r
}

func (r RightAligned) Draw(y int, cv canvas.Canvas) {
	cols, _ := cv.Size()
	x := cols - width.String(r.Content)
	Text{Content: r.Content, Style: r.Style}.Draw(coordinate.NewDims(x, y), cv)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
