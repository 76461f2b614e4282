package main

import (
	"fmt"

	"github.com/hnimtadd/termdraw/terminal/canvas"
	"github.com/hnimtadd/termdraw/terminal/color"
	"github.com/hnimtadd/termdraw/terminal/coordinate"
	"github.com/hnimtadd/termdraw/terminal/drawable"
	"github.com/hnimtadd/termdraw/terminal/style"
)

var (
	titleStyle  = style.Default.Fg(style.Named(color.Cyan)).WithBold(true)
	accentStyle = style.Default.Fg(style.Named(color.Yellow))
	mutedStyle  = style.Default.Fg(style.Named(color.BrightBlack)).WithItalic(true)
	barStyle    = style.Default.Fg(style.RGB(0x81, 0xA2, 0xBE))
)

// paintScene draws the demo frame. Every line is a row drawable so the
// scene is a list of them painted top to bottom.
func paintScene(c canvas.Canvas) {
	cols, rows := c.Size()

	lines := []drawable.Scalar{
		drawable.Center("termdraw").WithStyle(titleStyle),
		drawable.Center("宽字符 wide glyphs ✓").WithStyle(accentStyle),
		drawable.PinColumn(drawable.Text{Content: "pinned at column 2"}, 2),
		drawable.Right("right aligned"),
	}
	for y, line := range lines {
		line.Draw(y*2, c)
	}

	// A bar across the row below the text, one glyph per column.
	bar := drawable.PinRow(drawable.Glyph{Rune: '━', Style: barStyle}, len(lines)*2)
	for x := range cols {
		bar.Draw(x, c)
	}

	drawable.Text{Content: "q: quit", Style: mutedStyle}.Draw(coordinate.NewDims(0, rows-1), c)
	drawable.Right(sizeLabel(cols, rows)).WithStyle(mutedStyle).Draw(rows-1, c)
}

func sizeLabel(cols, rows int) string {
	return fmt.Sprintf("%dx%d", cols, rows)
}
