package geom

// Point is a signed 2D coordinate.
type Point struct {
	X, Y int
}

// NewPoint builds a Point from its components.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Neg returns the componentwise negation of p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Neg())
}

// ManhattanMag returns |p.X| + |p.Y|.
func (p Point) ManhattanMag() int {
	return abs(p.X) + abs(p.Y)
}

// ManhattanTo returns the Manhattan distance between p and q.
func (p Point) ManhattanTo(q Point) int {
	return p.Sub(q).ManhattanMag()
}

// Neighbors returns the four-neighborhood of p (east, south, west, north).
func (p Point) Neighbors() [4]Point {
	return [4]Point{
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
