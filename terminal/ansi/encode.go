// Package ansi renders a grid as text with SGR escape sequences, for
// output that does not go through a screen backend (pipes, golden files).
package ansi

import (
	"fmt"
	"io"
	"strings"

	fcolor "github.com/fatih/color"
	"github.com/hnimtadd/termdraw/terminal/canvas"
	"github.com/hnimtadd/termdraw/terminal/cell"
	"github.com/hnimtadd/termdraw/terminal/color"
	"github.com/hnimtadd/termdraw/terminal/style"
)

type Options struct {
	// Palette used to turn indexed colors above 15 into RGB. Defaults to
	// color.DefaultPalette.
	Palette *color.Palette

	// Emit plain text only.
	NoColor bool
}

// Encode writes the grid row by row. Consecutive glyphs sharing a style are
// wrapped in a single SGR sequence. Placeholders are skipped, empty cells
// become spaces when text follows them and trailing blank rows are dropped.
func Encode(w io.Writer, g *canvas.Grid, opts Options) error {
	if opts.Palette == nil {
		opts.Palette = &color.DefaultPalette
	}
	e := &encoder{opts: opts, colors: map[style.Style]*fcolor.Color{}}

	_, rows := g.Size()
	var out strings.Builder
	blankRows := 0
	for y := range rows {
		line := e.row(g.Row(y))
		if line == "" {
			blankRows++
			continue
		}
		out.WriteString(strings.Repeat(string(rune(LF)), blankRows))
		out.WriteString(line)
		blankRows = 1
	}

	if _, err := io.WriteString(w, out.String()); err != nil {
		return fmt.Errorf("write ansi snapshot: %w", err)
	}
	return nil
}

// fatih/color has no constant for SGR 53.
const sgrOverline fcolor.Attribute = 53

type encoder struct {
	opts   Options
	colors map[style.Style]*fcolor.Color
}

func (e *encoder) row(cells []cell.Cell) string {
	var (
		sb         strings.Builder
		run        strings.Builder
		runStyle   style.Style
		blankCells int
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(e.paint(runStyle, run.String()))
		run.Reset()
	}

	for _, c := range cells {
		switch c.Kind {
		case cell.KindPlaceholder:
			continue
		case cell.KindEmpty:
			blankCells++
			continue
		case cell.KindGlyph:
		}
		if IsControl(c.Rune) {
			blankCells++
			continue
		}
		if blankCells > 0 || c.Style != runStyle {
			flush()
			sb.WriteString(strings.Repeat(" ", blankCells))
			blankCells = 0
			runStyle = c.Style
		}
		run.WriteRune(c.Rune)
	}
	flush()
	return sb.String()
}

func (e *encoder) paint(s style.Style, text string) string {
	if e.opts.NoColor || s.IsDefault() {
		return text
	}
	c, ok := e.colors[s]
	if !ok {
		c = e.color(s)
		e.colors[s] = c
	}
	return c.Sprint(text)
}

func (e *encoder) color(s style.Style) *fcolor.Color {
	c := fcolor.New()
	// Snapshots are often written to pipes, don't let tty detection strip
	// the sequences.
	c.EnableColor()

	e.addColor(c, s.ForegroundColor, false)
	e.addColor(c, s.BackgroundColor, true)

	attrs := []struct {
		on   bool
		attr fcolor.Attribute
	}{
		{s.Bold, fcolor.Bold},
		{s.Faint, fcolor.Faint},
		{s.Italic, fcolor.Italic},
		{s.Underline != style.UnderlineNone, fcolor.Underline},
		{s.Blink, fcolor.BlinkSlow},
		{s.Inverse, fcolor.ReverseVideo},
		{s.Invisible, fcolor.Concealed},
		{s.Strikethrough, fcolor.CrossedOut},
		{s.Overline, sgrOverline},
	}
	for _, a := range attrs {
		if a.on {
			c.Add(a.attr)
		}
	}
	return c
}

func (e *encoder) addColor(c *fcolor.Color, sc style.Color, background bool) {
	switch {
	case sc.Type == style.ColorTypePalette && sc.Palette < 8:
		base := fcolor.FgBlack
		if background {
			base = fcolor.BgBlack
		}
		c.Add(base + fcolor.Attribute(sc.Palette))
	case sc.Type == style.ColorTypePalette && sc.Palette < 16:
		base := fcolor.FgHiBlack
		if background {
			base = fcolor.BgHiBlack
		}
		c.Add(base + fcolor.Attribute(sc.Palette-8))
	default:
		rgb, ok := sc.Resolve(e.opts.Palette)
		if !ok {
			return
		}
		if background {
			c.AddBgRGB(int(rgb.R), int(rgb.G), int(rgb.B))
		} else {
			c.AddRGB(int(rgb.R), int(rgb.G), int(rgb.B))
		}
	}
}
