package geom

import "fmt"

// ErrShapeMismatch is returned when constructing a Grid whose backing data
// length disagrees with its declared dimensions.
var ErrShapeMismatch = fmt.Errorf("geom: data length does not match dimensions")

// Grid is a dense, row-major matrix of fixed dimensions. Its shape never
// changes for the lifetime of the value; out-of-bounds access returns the
// zero value and false rather than panicking.
type Grid[T any] struct {
	dims Dimensions
	data []T
}

// NewGrid builds a zero-valued Grid with the given dimensions.
func NewGrid[T any](dims Dimensions) *Grid[T] {
	return &Grid[T]{dims: dims, data: make([]T, dims.W*dims.H)}
}

// NewGridFill builds a Grid with every cell set to value.
func NewGridFill[T any](dims Dimensions, value T) *Grid[T] {
	g := NewGrid[T](dims)
	for i := range g.data {
		g.data[i] = value
	}
	return g
}

// NewGridFunc builds a Grid by calling fn for every point in row-major
// order.
func NewGridFunc[T any](dims Dimensions, fn func(Point) T) *Grid[T] {
	g := NewGrid[T](dims)
	for i, p := range dims.IterWithin() {
		g.data[i] = fn(p)
	}
	return g
}

// TryGridFromSlice builds a Grid from pre-existing row-major data. It fails
// with ErrShapeMismatch if len(data) != dims.W*dims.H.
func TryGridFromSlice[T any](dims Dimensions, data []T) (*Grid[T], error) {
	if uint(len(data)) != dims.W*dims.H {
		return nil, ErrShapeMismatch
	}
	return &Grid[T]{dims: dims, data: data}, nil
}

// Dims returns the grid's fixed dimensions.
func (g *Grid[T]) Dims() Dimensions {
	return g.dims
}

func (g *Grid[T]) index(p Point) (int, bool) {
	if !g.dims.Contains(p) {
		return 0, false
	}
	return p.X + p.Y*int(g.dims.W), true
}

// Get returns the value at p and true, or the zero value and false if p is
// out of bounds.
func (g *Grid[T]) Get(p Point) (T, bool) {
	var zero T
	i, ok := g.index(p)
	if !ok {
		return zero, false
	}
	return g.data[i], true
}

// Set stores value at p. It reports false without modifying the grid if p
// is out of bounds.
func (g *Grid[T]) Set(p Point, value T) bool {
	i, ok := g.index(p)
	if !ok {
		return false
	}
	g.data[i] = value
	return true
}

// Len returns the total number of cells (W*H).
func (g *Grid[T]) Len() int {
	return len(g.data)
}

// Raw returns the underlying row-major backing slice. Callers must not
// change its length.
func (g *Grid[T]) Raw() []T {
	return g.data
}

// Enumerate calls fn for every cell in row-major order along with its
// point.
func (g *Grid[T]) Enumerate(fn func(Point, T)) {
	for i, p := range g.dims.IterWithin() {
		fn(p, g.data[i])
	}
}
