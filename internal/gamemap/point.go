package gamemap

import "fmt"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns p - d.
func (p Point) Sub(d Point) Point {
	return Point{X: p.X - d.X, Y: p.Y - d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cardinal unit steps.
var (
	West  = Point{X: -1, Y: 0}
	East  = Point{X: 1, Y: 0}
	North = Point{X: 0, Y: -1}
	South = Point{X: 0, Y: 1}
)

// Rect is an axis-aligned rectangle used for rooms. X2 and Y2 are exclusive
// for the cells a room covers, inclusive for intersection tests.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// RectWithSize builds a rect at (x, y) spanning w columns and h rows.
func RectWithSize(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether p is one of the cells covered by r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// Each calls fn for every cell covered by r, row by row.
func (r Rect) Each(fn func(Point)) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}
