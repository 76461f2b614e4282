package style

import (
	"fmt"

	"github.com/hnimtadd/termdraw/terminal/color"
)

// Style attribute for a cell. The paint core treats it as an opaque value:
// it is copied into cells and never inspected. Only backends read it.
type Style struct {
	// Various colors, self-explanatory
	ForegroundColor Color
	BackgroundColor Color
	UnderlineColor  Color

	Bold          bool
	Italic        bool
	Faint         bool
	Blink         bool
	Inverse       bool
	Invisible     bool
	Strikethrough bool
	Overline      bool
	Underline     UnderlineType
}

// Default is the neutral style used when a drawable carries none.
var Default = Style{}

// Fg returns a copy of s with the given foreground color.
func (s Style) Fg(c Color) Style {
	s.ForegroundColor = c
	return s
}

// Bg returns a copy of s with the given background color.
func (s Style) Bg(c Color) Style {
	s.BackgroundColor = c
	return s
}

func (s Style) WithBold(v bool) Style {
	s.Bold = v
	return s
}

func (s Style) WithItalic(v bool) Style {
	s.Italic = v
	return s
}

func (s Style) WithInverse(v bool) Style {
	s.Inverse = v
	return s
}

func (s Style) WithUnderline(u UnderlineType) Style {
	s.Underline = u
	return s
}

func (s *Style) Reset() {
	*s = Style{}
}

func (s *Style) IsDefault() bool {
	return *s == Style{}
}

// The color for a style attribute. A color can come from multiple sources
// so we track the source plus the color value so backends can map palette
// colors onto their own palette.
type Color struct {
	Type    ColorType
	Palette uint8
	RGB     color.RGB
}

// None is the terminal's default color.
func None() Color {
	return Color{Type: ColorTypeNone}
}

// Indexed is a color from the 256 color palette.
func Indexed(idx uint8) Color {
	return Color{Type: ColorTypePalette, Palette: idx}
}

// Named is one of the 16 named palette colors.
func Named(n color.Name) Color {
	return Indexed(uint8(n))
}

func RGB(r, g, b uint8) Color {
	return Color{Type: ColorTypeRGB, RGB: color.RGB{R: r, G: g, B: b}}
}

// Resolve returns the concrete color using the palette. The second result
// is false for ColorTypeNone.
func (c Color) Resolve(palette *color.Palette) (color.RGB, bool) {
	switch c.Type {
	case ColorTypePalette:
		return palette[c.Palette], true
	case ColorTypeRGB:
		return c.RGB, true
	default:
		return color.RGB{}, false
	}
}

func (c Color) String() string {
	switch c.Type {
	case ColorTypeNone:
		return "Color.none"
	case ColorTypePalette:
		return fmt.Sprintf("Color.palette{{ %d }}", c.Palette)
	case ColorTypeRGB:
		return fmt.Sprintf("Color.rgb{{ %d, %d, %d }}", c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return "Color.unknown"
	}
}

type ColorType int

const (
	ColorTypeNone ColorType = iota
	ColorTypePalette
	ColorTypeRGB
)

type UnderlineType int

const (
	UnderlineNone UnderlineType = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)
