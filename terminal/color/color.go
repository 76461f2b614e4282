package color

import "fmt"

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette is the 256 color palette.
type Palette [256]RGB

// DefaultPalette is the xterm 256 color palette with our own choice of the
// 16 named colors.
var DefaultPalette = func() Palette {
	var result Palette

	// Named values:
	i := 0
	for ; i < 16; i++ {
		result[i] = Name(i).defaultRGB()
	}

	// Cube
	level := func(v int) uint8 {
		if v == 0 {
			return 0
		}
		return uint8(v*40 + 55)
	}
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				result[i] = RGB{level(r), level(g), level(b)}
				i++
			}
		}
	}

	// Gray ramp
	for ; i < 256; i++ {
		value := uint8((i-232)*10 + 8)
		result[i] = RGB{value, value, value}
	}
	return result
}()

// Name is one of the 16 named terminal colors.
type Name uint8

const (
	Black Name = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Bright returns the bright variant of a normal named color. Bright colors
// are returned unchanged.
func (n Name) Bright() Name {
	if n < BrightBlack {
		return n + BrightBlack
	}
	return n
}

func (n Name) defaultRGB() RGB {
	switch n {
	case Black:
		return RGB{0x1D, 0x1F, 0x21}
	case Red:
		return RGB{0xCC, 0x66, 0x66}
	case Green:
		return RGB{0xB5, 0xBD, 0x68}
	case Yellow:
		return RGB{0xF0, 0xC6, 0x74}
	case Blue:
		return RGB{0x81, 0xA2, 0xBE}
	case Magenta:
		return RGB{0xB2, 0x94, 0xC7}
	case Cyan:
		return RGB{0x8C, 0xC3, 0xE9}
	case White:
		return RGB{0xC5, 0xC8, 0xC6}
	case BrightBlack:
		return RGB{0x7C, 0x7C, 0x7C}
	case BrightRed:
		return RGB{0xFF, 0x8F, 0x8F}
	case BrightGreen:
		return RGB{0xB5, 0xBD, 0x68}
	case BrightYellow:
		return RGB{0xF0, 0xC6, 0x74}
	case BrightBlue:
		return RGB{0x81, 0xA2, 0xBE}
	case BrightMagenta:
		return RGB{0xB2, 0x94, 0xC7}
	case BrightCyan:
		return RGB{0x8C, 0xC3, 0xE9}
	case BrightWhite:
		return RGB{0xFF, 0xFF, 0xFF}
	default:
		return RGB{0, 0, 0}
	}
}
