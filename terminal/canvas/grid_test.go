package canvas

import (
	"errors"
	"strings"
	"testing"

	"github.com/hnimtadd/termdraw/terminal/cell"
	"github.com/hnimtadd/termdraw/terminal/coordinate"
	"github.com/hnimtadd/termdraw/terminal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(cols, rows int) *Grid {
	g := NewGrid(Options{Cols: cols, Rows: rows})
	g.ClearDirty()
	return g
}

func TestGrid_SetAndGet(t *testing.T) {
	g := newGrid(4, 2)
	cols, rows := g.Size()
	assert.Equal(t, 4, cols)
	assert.Equal(t, 2, rows)

	g.Set(coordinate.NewDims(1, 1), cell.Styled('x', style.Default))
	got, ok := g.Get(coordinate.NewDims(1, 1))
	require.True(t, ok)
	assert.Equal(t, cell.Styled('x', style.Default), got)

	got, ok = g.Get(coordinate.NewDims(0, 0))
	require.True(t, ok)
	assert.True(t, got.IsEmpty())
}

func TestGrid_OutOfRangeWritesAreIgnored(t *testing.T) {
	g := newGrid(3, 2)
	for _, pos := range []coordinate.Dims{
		coordinate.NewDims(3, 0),
		coordinate.NewDims(0, 2),
		coordinate.NewDims(-1, 0),
		coordinate.NewDims(0, -1),
		coordinate.NewDims(100, 100),
	} {
		assert.NotPanics(t, func() { g.Set(pos, cell.Styled('x', style.Default)) })
		_, ok := g.Get(pos)
		assert.False(t, ok)
	}
	assert.Empty(t, g.DirtyRows())
	assert.Equal(t, "", g.PlainString())
}

func TestGrid_LastWriteWins(t *testing.T) {
	g := newGrid(3, 1)
	g.Set(coordinate.NewDims(1, 0), cell.Styled('a', style.Default))
	g.Set(coordinate.NewDims(1, 0), cell.PlaceHolder)

	got, _ := g.Get(coordinate.NewDims(1, 0))
	assert.True(t, got.IsPlaceholder())
}

func TestGrid_DirtyTracking(t *testing.T) {
	g := NewGrid(Options{Cols: 4, Rows: 3})
	assert.Equal(t, []int{0, 1, 2}, g.DirtyRows(), "a new grid is fully dirty")

	g.ClearDirty()
	g.Set(coordinate.NewDims(0, 2), cell.Styled('z', style.Default))
	assert.True(t, g.IsRowDirty(2))
	assert.False(t, g.IsRowDirty(0))
	assert.Equal(t, []int{2}, g.DirtyRows())

	// Writing the same cell again does not dirty the row.
	g.ClearDirty()
	g.Set(coordinate.NewDims(0, 2), cell.Styled('z', style.Default))
	assert.Empty(t, g.DirtyRows())

	g.MarkDirty()
	assert.Equal(t, []int{0, 1, 2}, g.DirtyRows())
}

func TestGrid_Clear(t *testing.T) {
	g := newGrid(3, 3)
	g.Set(coordinate.NewDims(2, 1), cell.Styled('q', style.Default))
	g.ClearDirty()

	g.Clear()
	assert.Equal(t, []int{1}, g.DirtyRows(), "only rows with content become dirty")
	got, _ := g.Get(coordinate.NewDims(2, 1))
	assert.True(t, got.IsEmpty())
}

func TestGrid_Resize(t *testing.T) {
	g := newGrid(2, 2)
	g.Set(coordinate.NewDims(0, 0), cell.Styled('a', style.Default))

	g.Resize(5, 3)
	cols, rows := g.Size()
	assert.Equal(t, 5, cols)
	assert.Equal(t, 3, rows)
	assert.Equal(t, "", g.PlainString())
	assert.Equal(t, []int{0, 1, 2}, g.DirtyRows())

	g.Resize(-1, -1)
	cols, rows = g.Size()
	assert.Equal(t, 0, cols)
	assert.Equal(t, 0, rows)
}

func TestGrid_RowHash(t *testing.T) {
	g := newGrid(3, 2)
	assert.Equal(t, g.RowHash(0), g.RowHash(1))

	g.Set(coordinate.NewDims(0, 1), cell.Styled('a', style.Default))
	assert.NotEqual(t, g.RowHash(0), g.RowHash(1))

	before := g.RowHash(1)
	g.Set(coordinate.NewDims(0, 1), cell.Styled('a', style.Default.WithBold(true)))
	assert.NotEqual(t, before, g.RowHash(1), "style changes must change the hash")
}

func TestGrid_RowPanicsOutOfRange(t *testing.T) {
	g := newGrid(3, 2)
	assert.Panics(t, func() { g.Row(2) })
}

func TestGrid_PlainString(t *testing.T) {
	g := newGrid(6, 4)
	g.Set(coordinate.NewDims(2, 1), cell.Styled('h', style.Default))
	g.Set(coordinate.NewDims(3, 1), cell.Styled('中', style.Default))
	g.Set(coordinate.NewDims(4, 1), cell.PlaceHolder)
	g.Set(coordinate.NewDims(5, 1), cell.Styled('!', style.Default))
	g.Set(coordinate.NewDims(0, 2), cell.Styled('x', style.Default))

	assert.Equal(t, "\n  h中!\nx", g.PlainString())
}

func TestGrid_EncodeUtf8Range(t *testing.T) {
	g := newGrid(2, 3)
	g.Set(coordinate.NewDims(0, 0), cell.Styled('a', style.Default))
	g.Set(coordinate.NewDims(0, 1), cell.Styled('b', style.Default))
	g.Set(coordinate.NewDims(0, 2), cell.Styled('c', style.Default))

	var sb strings.Builder
	end := 2
	n, err := g.EncodeUtf8(&sb, EncodeUtf8Options{StartY: 1, EndY: &end})
	require.NoError(t, err)
	assert.Equal(t, "b", sb.String())
	assert.Equal(t, int64(1), n)
}

func TestGrid_EncodeUtf8WriterError(t *testing.T) {
	g := newGrid(2, 1)
	g.Set(coordinate.NewDims(0, 0), cell.Styled('a', style.Default))

	_, err := g.EncodeUtf8(failingWriter{}, EncodeUtf8Options{})
	assert.ErrorIs(t, err, errWrite)
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}
