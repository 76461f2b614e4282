package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/termdraw/terminal/canvas"
	"github.com/hnimtadd/termdraw/terminal/cell"
	"github.com/hnimtadd/termdraw/terminal/color"
	"github.com/hnimtadd/termdraw/terminal/coordinate"
	"github.com/hnimtadd/termdraw/terminal/drawable"
	"github.com/hnimtadd/termdraw/terminal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(cols, rows)
	t.Cleanup(sim.Fini)
	return sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestNewScreen_Nil(t *testing.T) {
	_, err := NewScreen(Options{})
	assert.ErrorIs(t, err, ErrNilScreen)
}

func TestScreen_IsACanvas(t *testing.T) {
	sim := newSimScreen(t, 10, 2)
	s, err := NewScreen(Options{Screen: sim})
	require.NoError(t, err)

	cols, rows := s.Size()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 2, rows)

	drawable.Center("hi").Draw(1, s)
	assert.Equal(t, 'h', runeAt(sim, 4, 1))
	assert.Equal(t, 'i', runeAt(sim, 5, 1))

	// Clipped writes are ignored.
	assert.NotPanics(t, func() {
		s.Set(coordinate.NewDims(-1, 0), cell.Styled('x', style.Default))
		s.Set(coordinate.NewDims(10, 0), cell.Styled('x', style.Default))
	})
}

func TestScreen_WideGlyph(t *testing.T) {
	sim := newSimScreen(t, 4, 1)
	s, err := NewScreen(Options{Screen: sim})
	require.NoError(t, err)

	drawable.Glyph{Rune: '中'}.Draw(coordinate.NewDims(1, 0), s)
	r, _, _, w := sim.GetContent(1, 0)
	assert.Equal(t, '中', r)
	assert.Equal(t, 2, w)
}

func TestScreen_Present(t *testing.T) {
	sim := newSimScreen(t, 6, 3)
	s, err := NewScreen(Options{Screen: sim})
	require.NoError(t, err)

	g := canvas.NewGrid(canvas.Options{Cols: 6, Rows: 3})
	drawable.Text{Content: "ab"}.Draw(coordinate.NewDims(0, 1), g)

	assert.Equal(t, 3, s.Present(g), "first presentation copies every row")
	assert.Equal(t, 'a', runeAt(sim, 0, 1))
	assert.Equal(t, 'b', runeAt(sim, 1, 1))
	assert.Empty(t, g.DirtyRows())

	// Same content repainted: rows are dirty but unchanged.
	g.Clear()
	drawable.Text{Content: "ab"}.Draw(coordinate.NewDims(0, 1), g)
	g.MarkDirty()
	assert.Equal(t, 0, s.Present(g))

	// A changed row is copied.
	drawable.Glyph{Rune: 'z'}.Draw(coordinate.NewDims(5, 2), g)
	assert.Equal(t, 1, s.Present(g))
	assert.Equal(t, 'z', runeAt(sim, 5, 2))

	// Invalidate forces a copy of dirty rows.
	s.Invalidate()
	g.MarkDirty()
	assert.Equal(t, 3, s.Present(g))
}

func TestStyle(t *testing.T) {
	st := style.Default.
		Fg(style.Named(color.Red)).
		Bg(style.RGB(1, 2, 3)).
		WithBold(true).
		WithUnderline(style.UnderlineSingle)

	fg, bg, attrs := Style(st).Decompose()
	assert.Equal(t, tcell.PaletteColor(1), fg)
	assert.Equal(t, tcell.NewRGBColor(1, 2, 3), bg)
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.Zero(t, attrs&tcell.AttrItalic)
}

func TestStyle_Underline(t *testing.T) {
	tests := []struct {
		name string
		in   style.UnderlineType
		want tcell.UnderlineStyle
	}{
		{"single", style.UnderlineSingle, tcell.UnderlineStyleSolid},
		{"double", style.UnderlineDouble, tcell.UnderlineStyleDouble},
		{"curly", style.UnderlineCurly, tcell.UnderlineStyleCurly},
		{"dotted", style.UnderlineDotted, tcell.UnderlineStyleDotted},
		{"dashed", style.UnderlineDashed, tcell.UnderlineStyleDashed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := style.Default.WithUnderline(tt.in)
			assert.Equal(t, tcell.StyleDefault.Underline(tt.want), Style(st))
		})
	}
}

func TestStyle_UnderlineColor(t *testing.T) {
	st := style.Default.WithUnderline(style.UnderlineCurly)
	st.UnderlineColor = style.Named(color.Red)

	want := tcell.StyleDefault.Underline(tcell.UnderlineStyleCurly, tcell.PaletteColor(1))
	assert.Equal(t, want, Style(st))
}

func TestStyle_NoUnderline(t *testing.T) {
	st := style.Default
	st.UnderlineColor = style.Named(color.Red)
	assert.Equal(t, tcell.StyleDefault, Style(st), "an underline color alone draws nothing")
}

func TestColor_Default(t *testing.T) {
	assert.Equal(t, tcell.ColorDefault, Color(style.None()))
}
