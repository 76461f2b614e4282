package drawable

import (
	"github.com/hnimtadd/termdraw/terminal/canvas"
	"github.com/hnimtadd/termdraw/terminal/cell"
	"github.com/hnimtadd/termdraw/terminal/coordinate"
	"github.com/hnimtadd/termdraw/terminal/style"
	"github.com/hnimtadd/termdraw/terminal/width"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Glyph is a single character with a style.
type Glyph struct {
	Rune  rune
	Style style.Style
}

var _ Positioned = Glyph{}

// Draw writes the glyph cell at pos followed by one placeholder per extra
// column the rune occupies.
//
// Nothing is written when pos is outside the canvas or the rune has no
// display width. Only the anchor is bounds checked: the placeholder of a
// wide glyph on the last column is left to the canvas to drop.
func (g Glyph) Draw(pos coordinate.Dims, c canvas.Canvas) {
	cols, rows := c.Size()
	if pos.X < 0 || pos.Y < 0 || pos.X >= cols || pos.Y >= rows {
		return
	}

	w := width.Rune(g.Rune)
	if w == 0 {
		return
	}

	c.Set(pos, cell.Styled(g.Rune, g.Style))
	for x := pos.X + 1; x < pos.X+w; x++ {
		c.Set(coordinate.NewDims(x, pos.Y), cell.PlaceHolder)
	}
}

// Text is a string with a style, painted left to right on a single row.
type Text struct {
	Content string
	Style   style.Style
}

var _ Positioned = Text{}

// Draw paints each rune at pos.X plus the display width of the runes
// before it. There is no wrapping: runes past the right edge are clipped
// one by one.
func (t Text) Draw(pos coordinate.Dims, c canvas.Canvas) {
	offset := 0
	for _, r := range t.Content {
		Glyph{Rune: r, Style: t.Style}.Draw(coordinate.NewDims(pos.X+offset, pos.Y), c)
		offset += width.Rune(r)
	}
}

// Bytes is raw encoded text, e.g. read from a file or a pty. It is UTF-8
// unless it starts with a UTF-16 byte order mark. Invalid sequences are
// painted as U+FFFD.
type Bytes struct {
	Content []byte
	Style   style.Style
}

var _ Positioned = Bytes{}

func (b Bytes) Draw(pos coordinate.Dims, c canvas.Canvas) {
	Text{Content: decode(b.Content), Style: b.Style}.Draw(pos, c)
}

func decode(content []byte) string {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, content)
	if err != nil {
		// Ranging over the string still replaces invalid bytes.
		return string(content)
	}
	return string(decoded)
}
