package termdraw

import (
	"fmt"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/termdraw/logger"
	"github.com/hnimtadd/termdraw/terminal/backend"
	"github.com/hnimtadd/termdraw/terminal/canvas"
)

// Renderer paints frames into an in-memory grid and presents them on a
// terminal screen.
type Renderer struct {
	// The frame being painted. Drawables only ever see this grid, the
	// screen is written when the frame is presented.
	grid *canvas.Grid

	// The terminal the frames are presented on.
	screen *backend.Screen

	logger logger.Logger
}

type Options struct {
	// An initialized tcell screen. The caller keeps ownership of it.
	Screen tcell.Screen
	Logger logger.Logger
}

func NewRenderer(opts Options) (*Renderer, error) {
	log := logger.OrDiscard(opts.Logger)
	screen, err := backend.NewScreen(backend.Options{
		Screen: opts.Screen,
		Logger: log,
	})
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	cols, rows := screen.Size()
	return &Renderer{
		grid: canvas.NewGrid(canvas.Options{
			Cols:   cols,
			Rows:   rows,
			Logger: log,
		}),
		screen: screen,
		logger: log,
	}, nil
}

// Frame clears the grid, lets paint draw the new frame and presents it.
// It returns the number of rows sent to the terminal.
//
// Paint calls are serialized by the caller: Frame must not be called
// concurrently.
func (r *Renderer) Frame(paint func(c canvas.Canvas)) (flushed int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("panic in Frame", "panic", rec, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic in Frame: %v", rec)
		}
	}()

	r.Resize()
	r.grid.Clear()
	paint(r.grid)
	return r.screen.Present(r.grid), nil
}

// Resize matches the grid to the current screen size. It is a no-op when
// the size did not change.
func (r *Renderer) Resize() {
	cols, rows := r.screen.Size()
	gridCols, gridRows := r.grid.Size()
	if cols == gridCols && rows == gridRows {
		return
	}
	r.logger.Info("resize", "cols", cols, "rows", rows)
	r.grid.Resize(cols, rows)
	r.screen.Sync()
}

// Snapshot returns the last painted frame as plain text.
func (r *Renderer) Snapshot() string {
	return r.grid.PlainString()
}

// Grid exposes the frame buffer, e.g. to encode it with package ansi.
func (r *Renderer) Grid() *canvas.Grid {
	return r.grid
}
