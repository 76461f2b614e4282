package coordinate

type Point[T comparable] struct {
	X T
	Y T
}

func NewPoint[T comparable](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Dims is a (column, row) position on a canvas. Components may be negative;
// canvases clip such positions.
type Dims = Point[int]

func NewDims(x, y int) Dims {
	return Dims{X: x, Y: y}
}

// Offset returns p moved by dx columns and dy rows.
func Offset(p Dims, dx, dy int) Dims {
	return Dims{X: p.X + dx, Y: p.Y + dy}
}
