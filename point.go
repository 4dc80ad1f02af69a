package sprite

import (
	"image"
	"math"
)

// Point is an integer grid coordinate or offset.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// PtOf converts an image.Point.
func PtOf(p image.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled component-wise by s.
func (p Point) Mul(s int) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Min returns the component-wise minimum of p and q.
func (p Point) Min(q Point) Point {
	return Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{X: max(p.X, q.X), Y: max(p.Y, q.Y)}
}

// DistSq returns the squared euclidean distance between p and q.
func (p Point) DistSq(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// In reports whether p lies inside r.
func (p Point) In(r image.Rectangle) bool {
	return p.Image().In(r)
}

// Image converts p to an image.Point.
func (p Point) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// F converts p to an FPoint.
func (p Point) F() FPoint {
	return FPoint{X: float64(p.X), Y: float64(p.Y)}
}

// FPoint is a sub-pixel position, used for screen coordinates and for the
// floating selection offset while it is being dragged.
type FPoint struct {
	X, Y float64
}

// FPt is a convenience function to create an FPoint.
func FPt(x, y float64) FPoint {
	return FPoint{X: x, Y: y}
}

// Add returns p+q.
func (p FPoint) Add(q FPoint) FPoint {
	return FPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p FPoint) Sub(q FPoint) FPoint {
	return FPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p FPoint) Mul(s float64) FPoint {
	return FPoint{X: p.X * s, Y: p.Y * s}
}

// Floor rounds both components toward negative infinity.
func (p FPoint) Floor() Point {
	return Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// Round rounds both components to the nearest integer, halves away from zero.
func (p FPoint) Round() Point {
	return Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}
