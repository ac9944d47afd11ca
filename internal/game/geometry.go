package game

import "math"

// Point is a position in board space. Terminal cell (col,row) maps to the
// point at its center, (col+0.5, row+0.5).
type Point struct {
	X float64
	Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// CellPoint returns the center of a terminal cell.
func CellPoint(col, row int) Point {
	return Point{X: float64(col) + 0.5, Y: float64(row) + 0.5}
}

// Rect is an axis-aligned box given by its center and half extents.
type Rect struct {
	Center Point
	Half   Point
}

// RectFromCells builds the rect covering w×h cells starting at (x,y).
func RectFromCells(x, y, w, h int) Rect {
	return Rect{
		Center: Point{X: float64(x) + float64(w)/2, Y: float64(y) + float64(h)/2},
		Half:   Point{X: float64(w) / 2, Y: float64(h) / 2},
	}
}

// Cells returns the cell origin and size covered by r.
func (r Rect) Cells() (x, y, w, h int) {
	x = int(math.Round(r.Center.X - r.Half.X))
	y = int(math.Round(r.Center.Y - r.Half.Y))
	w = int(math.Round(r.Half.X * 2))
	h = int(math.Round(r.Half.Y * 2))
	return x, y, w, h
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Half.X <= 0 || r.Half.Y <= 0
}

// MoveTo returns r re-centered on c.
func (r Rect) MoveTo(c Point) Rect {
	return Rect{Center: c, Half: r.Half}
}

// Contains reports whether p lies strictly inside r. A point exactly on an
// edge is outside: touching a border never counts as a hit, for tokens and
// answer slots alike.
func Contains(p Point, r Rect) bool {
	return p.X > r.Center.X-r.Half.X &&
		p.X < r.Center.X+r.Half.X &&
		p.Y > r.Center.Y-r.Half.Y &&
		p.Y < r.Center.Y+r.Half.Y
}
