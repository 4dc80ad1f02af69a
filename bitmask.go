package sprite

import (
	"cmp"
	"image/draw"
	"math"
	"slices"
)

// BitMask is a boolean membership test over an integer grid.
// Get returns false outside [0, Width()) x [0, Height()).
type BitMask interface {
	Get(x, y int) bool
	Width() int
	Height() int
}

// CircleMask is the footprint of a round brush of a given diameter.
// Even diameters grow to the next odd size so the mask has a center cell.
type CircleMask struct {
	center float64
	radSq  float64
	size   int
}

// NewCircleMask creates the footprint for diameter.
func NewCircleMask(diameter int) CircleMask {
	size := diameter
	if diameter%2 == 0 {
		size++
	}
	r := float64(diameter) / 2
	return CircleMask{
		center: float64(diameter / 2),
		radSq:  r * r,
		size:   size,
	}
}

// Get implements BitMask.
func (c CircleMask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= c.size || y >= c.size {
		return false
	}
	dx, dy := float64(x)-c.center, float64(y)-c.center
	return dx*dx+dy*dy <= c.radSq
}

// Width implements BitMask.
func (c CircleMask) Width() int { return c.size }

// Height implements BitMask.
func (c CircleMask) Height() int { return c.size }

// Edge is a unit segment on the mask lattice, from (X0, Y0) to (X1, Y1).
type Edge struct {
	X0, Y0, X1, Y1 int
}

// Transform maps both endpoints through m.
func (e Edge) Transform(m Matrix) (FPoint, FPoint) {
	return m.Apply(FPoint{X: float64(e.X0), Y: float64(e.Y0)}),
		m.Apply(FPoint{X: float64(e.X1), Y: float64(e.Y1)})
}

// Outline returns the boundary of every region of m. Each set cell
// contributes its four unit edges; an edge shared by two set cells is
// emitted twice and cancels, so only boundary edges survive. The result is
// sorted by row, then column.
func Outline(m BitMask) []Edge {
	edges := make(map[Edge]struct{})
	toggle := func(e Edge) {
		if _, ok := edges[e]; ok {
			delete(edges, e)
		} else {
			edges[e] = struct{}{}
		}
	}
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !m.Get(x, y) {
				continue
			}
			toggle(Edge{x, y, x + 1, y})
			toggle(Edge{x + 1, y, x + 1, y + 1})
			toggle(Edge{x, y, x, y + 1})
			toggle(Edge{x, y + 1, x + 1, y + 1})
		}
	}

	out := make([]Edge, 0, len(edges))
	for e := range edges {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Edge) int {
		return cmp.Or(
			cmp.Compare(a.Y0, b.Y0),
			cmp.Compare(a.X0, b.X0),
			cmp.Compare(a.Y1, b.Y1),
			cmp.Compare(a.X1, b.X1),
		)
	})
	return out
}

// StrokeOutline draws the outline of m, mapped through tf, as one pixel wide
// axis-aligned lines on dst. Lines are clipped to dst's bounds.
func StrokeOutline(dst draw.Image, m BitMask, tf Matrix, c Color) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	clampX := func(v float64) int { return min(max(int(math.Floor(v)), b.Min.X), b.Max.X-1) }
	clampY := func(v float64) int { return min(max(int(math.Floor(v)), b.Min.Y), b.Max.Y-1) }

	for _, e := range Outline(m) {
		p0, p1 := e.Transform(tf)
		if e.Y0 == e.Y1 {
			if p0.Y < float64(b.Min.Y) || p0.Y > float64(b.Max.Y) {
				continue
			}
			x0, x1 := min(p0.X, p1.X), max(p0.X, p1.X)
			if x1 < float64(b.Min.X) || x0 >= float64(b.Max.X) {
				continue
			}
			y := clampY(p0.Y)
			for x := clampX(x0); x <= clampX(x1); x++ {
				dst.Set(x, y, c)
			}
		} else {
			if p0.X < float64(b.Min.X) || p0.X > float64(b.Max.X) {
				continue
			}
			y0, y1 := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
			if y1 < float64(b.Min.Y) || y0 >= float64(b.Max.Y) {
				continue
			}
			x := clampX(p0.X)
			for y := clampY(y0); y <= clampY(y1); y++ {
				dst.Set(x, y, c)
			}
		}
	}
}
