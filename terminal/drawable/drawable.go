// Package drawable paints styled text onto a canvas.
//
// Any value can be drawable: it only needs a Draw method taking an anchor
// position and the canvas. The anchor type depends on the drawable. Glyphs
// and strings take a full (column, row) position while alignment helpers
// take a single row and compute the column themselves. Wrappers such as
// Centered or AtColumn reuse the paint logic of what they wrap and only
// substitute the position.
//
// Drawables never fail. Anything that does not fit the canvas is clipped
// and zero-width runes are skipped.
package drawable

import (
	"github.com/hnimtadd/termdraw/terminal/canvas"
	"github.com/hnimtadd/termdraw/terminal/coordinate"
)

// Drawable paints itself at pos into c. Implementations hold no state
// about the canvas: every mutation goes through c.Set.
type Drawable[P any] interface {
	Draw(pos P, c canvas.Canvas)
}

// Positioned is a drawable anchored at a (column, row) position.
type Positioned = Drawable[coordinate.Dims]

// Scalar is a drawable anchored by a single coordinate, the other one is
// fixed by the drawable itself.
type Scalar = Drawable[int]

// DrawFunc adapts a plain function to a Drawable.
type DrawFunc[P any] func(pos P, c canvas.Canvas)

func (f DrawFunc[P]) Draw(pos P, c canvas.Canvas) {
	f(pos, c)
}
