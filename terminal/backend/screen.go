// Package backend connects the cell grid to a real terminal through tcell.
package backend

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/termdraw/logger"
	"github.com/hnimtadd/termdraw/terminal/canvas"
	"github.com/hnimtadd/termdraw/terminal/cell"
	"github.com/hnimtadd/termdraw/terminal/coordinate"
	"github.com/hnimtadd/termdraw/terminal/style"
	"github.com/hnimtadd/termdraw/terminal/utils"
)

var ErrNilScreen = errors.New("backend: nil tcell screen")

type Options struct {
	// An initialized tcell screen. The caller owns its lifecycle (Init and
	// Fini).
	Screen tcell.Screen
	Logger logger.Logger
}

// Screen is a Canvas writing straight to a tcell screen. It also presents
// a canvas.Grid, copying only the rows that changed since the last
// presentation.
type Screen struct {
	screen tcell.Screen

	// Hash of every row as last presented. A row is only trusted when its
	// bit is set in known.
	hashes []uint64
	known  *utils.StaticBitSet

	logger logger.Logger
}

var _ canvas.Canvas = (*Screen)(nil)

func NewScreen(opts Options) (*Screen, error) {
	if opts.Screen == nil {
		return nil, ErrNilScreen
	}
	return &Screen{
		screen: opts.Screen,
		known:  utils.NewStaticBitSet(0),
		logger: logger.OrDiscard(opts.Logger),
	}, nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Set writes c at pos. Placeholders are not forwarded: tcell tracks the
// columns covered by a wide rune itself, and writing to them would cut
// the glyph in half.
func (s *Screen) Set(pos coordinate.Dims, c cell.Cell) {
	cols, rows := s.screen.Size()
	if pos.X < 0 || pos.Y < 0 || pos.X >= cols || pos.Y >= rows {
		return
	}
	switch c.Kind {
	case cell.KindGlyph:
		s.screen.SetContent(pos.X, pos.Y, c.Rune, nil, Style(c.Style))
	case cell.KindEmpty:
		s.screen.SetContent(pos.X, pos.Y, ' ', nil, tcell.StyleDefault)
	case cell.KindPlaceholder:
	}
}

// Present copies the dirty rows of g whose content changed onto the
// screen, shows it and clears the dirty rows of g. It returns the number
// of rows copied.
func (s *Screen) Present(g *canvas.Grid) int {
	_, rows := g.Size()
	if len(s.hashes) != rows {
		s.hashes = make([]uint64, rows)
		s.known = utils.NewStaticBitSet(rows)
	}

	flushed := 0
	for _, y := range g.DirtyRows() {
		hash := g.RowHash(y)
		if s.known.IsSet(y) && s.hashes[y] == hash {
			continue
		}
		for x, c := range g.Row(y) {
			s.Set(coordinate.NewDims(x, y), c)
		}
		s.hashes[y] = hash
		s.known.Set(y)
		flushed++
	}
	g.ClearDirty()

	s.screen.Show()
	s.logger.Debug("present", "rows", flushed)
	return flushed
}

// Invalidate forgets what was presented, the next Present copies every
// dirty row.
func (s *Screen) Invalidate() {
	s.known.Clear()
}

// Sync redraws the whole terminal, e.g. after a resize.
func (s *Screen) Sync() {
	s.Invalidate()
	s.screen.Sync()
}

// Style converts a style to its tcell equivalent.
func Style(st style.Style) tcell.Style {
	ts := tcell.StyleDefault.
		Foreground(Color(st.ForegroundColor)).
		Background(Color(st.BackgroundColor)).
		Bold(st.Bold).
		Italic(st.Italic).
		Dim(st.Faint).
		Blink(st.Blink).
		Reverse(st.Inverse).
		StrikeThrough(st.Strikethrough)
	if ul, ok := underlines[st.Underline]; ok {
		params := []interface{}{ul}
		if st.UnderlineColor.Type != style.ColorTypeNone {
			params = append(params, Color(st.UnderlineColor))
		}
		ts = ts.Underline(params...)
	}
	return ts
}

var underlines = map[style.UnderlineType]tcell.UnderlineStyle{
	style.UnderlineSingle: tcell.UnderlineStyleSolid,
	style.UnderlineDouble: tcell.UnderlineStyleDouble,
	style.UnderlineCurly:  tcell.UnderlineStyleCurly,
	style.UnderlineDotted: tcell.UnderlineStyleDotted,
	style.UnderlineDashed: tcell.UnderlineStyleDashed,
}

// Color converts a style color to its tcell equivalent.
func Color(c style.Color) tcell.Color {
	switch c.Type {
	case style.ColorTypePalette:
		return tcell.PaletteColor(int(c.Palette))
	case style.ColorTypeRGB:
		return tcell.NewRGBColor(int32(c.RGB.R), int32(c.RGB.G), int32(c.RGB.B))
	default:
		return tcell.ColorDefault
	}
}
