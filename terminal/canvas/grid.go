package canvas

import (
	"fmt"
	"io"
	"strings"

	"github.com/hnimtadd/termdraw/logger"
	"github.com/hnimtadd/termdraw/terminal/cell"
	"github.com/hnimtadd/termdraw/terminal/coordinate"
	"github.com/hnimtadd/termdraw/terminal/utils"
	"github.com/mitchellh/hashstructure/v2"
)

type Options struct {
	Cols, Rows int
	Logger     logger.Logger
}

// Grid is a Canvas backed by a flat, row-major array of cells.
//
// The grid remembers which rows changed since the last call to ClearDirty.
// Dirty tracking may have false positives but never false negatives: a
// row is only left clean when every write to it stored an identical cell.
type Grid struct {
	cells      []cell.Cell
	cols, rows int

	// One bit per row.
	dirty *utils.StaticBitSet

	logger logger.Logger
}

var _ Canvas = (*Grid)(nil)

func NewGrid(opts Options) *Grid {
	g := &Grid{logger: logger.OrDiscard(opts.Logger)}
	g.alloc(opts.Cols, opts.Rows)
	return g
}

func (g *Grid) alloc(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	g.cols, g.rows = cols, rows
	g.cells = make([]cell.Cell, cols*rows)
	g.dirty = utils.NewStaticBitSetFull(rows)
}

func (g *Grid) Size() (int, int) {
	return g.cols, g.rows
}

func (g *Grid) inBounds(pos coordinate.Dims) bool {
	return pos.X >= 0 && pos.X < g.cols && pos.Y >= 0 && pos.Y < g.rows
}

// Set overwrites the cell at pos. Last write wins; out of range positions
// are ignored.
func (g *Grid) Set(pos coordinate.Dims, c cell.Cell) {
	if !g.inBounds(pos) {
		return
	}
	idx := pos.Y*g.cols + pos.X
	if g.cells[idx] == c {
		return
	}
	g.cells[idx] = c
	g.dirty.Set(pos.Y)
}

// Get returns the cell at pos. The second result is false when pos is
// outside the grid.
func (g *Grid) Get(pos coordinate.Dims) (cell.Cell, bool) {
	if !g.inBounds(pos) {
		return cell.Cell{}, false
	}
	return g.cells[pos.Y*g.cols+pos.X], true
}

// Row returns the cells of row y, y must be valid. The slice aliases the
// grid and must not be modified.
func (g *Grid) Row(y int) []cell.Cell {
	utils.Assert(y >= 0 && y < g.rows, "row out of bounds")
	return g.cells[y*g.cols : (y+1)*g.cols]
}

// Clear resets every cell to empty.
func (g *Grid) Clear() {
	for y := range g.rows {
		row := g.Row(y)
		for x := range row {
			if !row[x].IsEmpty() {
				clear(row)
				g.dirty.Set(y)
				break
			}
		}
	}
}

// Resize changes the extent of the grid. Content is discarded and every
// row is marked dirty.
func (g *Grid) Resize(cols, rows int) {
	if cols == g.cols && rows == g.rows {
		return
	}
	g.logger.Debug("resize grid", "from_cols", g.cols, "from_rows", g.rows, "cols", cols, "rows", rows)
	g.alloc(cols, rows)
}

func (g *Grid) IsRowDirty(y int) bool {
	return g.dirty.IsSet(y)
}

// DirtyRows returns the dirty row indexes in ascending order.
func (g *Grid) DirtyRows() []int {
	rows := make([]int, 0, g.dirty.Count())
	g.dirty.Each(func(y int) { rows = append(rows, y) })
	return rows
}

func (g *Grid) ClearDirty() {
	g.dirty.Clear()
}

// MarkDirty forces every row to be reported dirty, e.g. after the backend
// lost its contents.
func (g *Grid) MarkDirty() {
	g.dirty.SetRange(0, g.rows)
}

// RowHash returns a hash of the content of row y.
func (g *Grid) RowHash(y int) uint64 {
	hashed, err := hashstructure.Hash(g.Row(y), hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash row: %v", err))
	return hashed
}

type EncodeUtf8Options struct {
	// The range of rows to encode. If EndY is nil, then it will encode to
	// the end of the grid.
	StartY int
	EndY   *int
}

// EncodeUtf8 writes the grid contents as UTF-8 text. Placeholder cells are
// skipped, empty cells become spaces only when text follows them on the
// same row, and trailing blank rows are dropped.
func (g *Grid) EncodeUtf8(w io.Writer, opts EncodeUtf8Options) (int64, error) {
	startY, endY := max(opts.StartY, 0), g.rows
	if opts.EndY != nil {
		endY = min(*opts.EndY, g.rows)
	}

	var written int64
	write := func(s string) error {
		if s == "" {
			return nil
		}
		n, err := io.WriteString(w, s)
		written += int64(n)
		if err != nil {
			return fmt.Errorf("encode grid: %w", err)
		}
		return nil
	}

	blankRows := 0
	for y := startY; y < endY; y++ {
		cells := g.Row(y)

		// If this row is blank, accumulate to avoid a bunch of extra work
		// later. If it isn't blank, make sure we dump all our blanks.
		if !hasGlyph(cells) {
			blankRows++
			continue
		}
		if err := write(strings.Repeat("\n", blankRows)); err != nil {
			return written, err
		}
		// Newline after this row is written lazily, before the next
		// non-blank row.
		blankRows = 1

		blankCells := 0
		for _, c := range cells {
			switch c.Kind {
			case cell.KindPlaceholder:
				continue
			case cell.KindEmpty:
				blankCells++
				continue
			case cell.KindGlyph:
			}
			if err := write(strings.Repeat(" ", blankCells)); err != nil {
				return written, err
			}
			blankCells = 0
			if err := write(string(c.Rune)); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// PlainString returns the grid contents as text, see EncodeUtf8.
func (g *Grid) PlainString() string {
	var sb strings.Builder
	// strings.Builder never fails.
	_, _ = g.EncodeUtf8(&sb, EncodeUtf8Options{})
	return sb.String()
}

func hasGlyph(cells []cell.Cell) bool {
	for _, c := range cells {
		if c.IsGlyph() {
			return true
		}
	}
	return false
}
