package cell

import (
	"testing"

	"github.com/hnimtadd/termdraw/terminal/style"
	"github.com/stretchr/testify/assert"
)

func TestZeroCellIsEmpty(t *testing.T) {
	var c Cell
	assert.True(t, c.IsEmpty())
	assert.False(t, c.IsGlyph())
	assert.False(t, c.IsPlaceholder())
}

func TestStyled(t *testing.T) {
	s := style.Default.WithBold(true)
	c := Styled('x', s)
	assert.True(t, c.IsGlyph())
	assert.Equal(t, 'x', c.Rune)
	assert.Equal(t, s, c.Style)
}

func TestPlaceHolderIsDistinctFromEmpty(t *testing.T) {
	assert.True(t, PlaceHolder.IsPlaceholder())
	assert.False(t, PlaceHolder.IsEmpty())
	assert.NotEqual(t, Cell{}, PlaceHolder)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "empty", KindEmpty.String())
	assert.Equal(t, "glyph", KindGlyph.String())
	assert.Equal(t, "placeholder", KindPlaceholder.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
