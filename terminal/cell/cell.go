package cell

import "github.com/hnimtadd/termdraw/terminal/style"

// Kind tags the variant held by a Cell.
type Kind uint8

const (
	// Nothing was written to the cell.
	KindEmpty Kind = iota

	// A single displayable character with its style.
	KindGlyph

	// Continuation of the wide glyph to the left. Do not render.
	KindPlaceholder
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindGlyph:
		return "glyph"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Cell is the value stored per grid position. Only KindGlyph cells carry a
// rune and a style; the zero Cell is an empty cell.
//
// A glyph of display width w is always followed, in the same row, by w-1
// placeholder cells. Glyph cells never hold zero-width runes.
type Cell struct {
	Kind  Kind
	Rune  rune
	Style style.Style
}

// PlaceHolder marks a column owned by the wide glyph to its left.
var PlaceHolder = Cell{Kind: KindPlaceholder}

// Styled returns a glyph cell.
func Styled(r rune, s style.Style) Cell {
	return Cell{Kind: KindGlyph, Rune: r, Style: s}
}

func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

func (c Cell) IsGlyph() bool {
	return c.Kind == KindGlyph
}

func (c Cell) IsPlaceholder() bool {
	return c.Kind == KindPlaceholder
}
