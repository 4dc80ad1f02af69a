package sprite

import "math"

// ForEachInCircle calls fn for every in-bounds pixel p with
// distSq(p, center) <= radius², walking the circle's bounding box row by row.
func (l *Layer) ForEachInCircle(center Point, radius float64, fn func(p Point)) {
	if radius < 0 {
		return
	}
	r := int(math.Ceil(radius))
	rsq := radius * radius

	y0, y1 := max(0, center.Y-r), min(l.Height()-1, center.Y+r)
	x0, x1 := max(0, center.X-r), min(l.Width()-1, center.X+r)
	for y := y0; y <= y1; y++ {
		dy := y - center.Y
		for x := x0; x <= x1; x++ {
			dx := x - center.X
			if float64(dx*dx+dy*dy) <= rsq {
				fn(Point{X: x, Y: y})
			}
		}
	}
}

// SetPixelsInCircle writes c to every pixel of the circle.
func (l *Layer) SetPixelsInCircle(center Point, radius float64, c Color) {
	l.ForEachInCircle(center, radius, func(p Point) {
		l.SetPixel(p.X, p.Y, c)
	})
}

// DrawPixelsInCircle composites c over every pixel of the circle.
func (l *Layer) DrawPixelsInCircle(center Point, radius float64, c Color) {
	l.ForEachInCircle(center, radius, func(p Point) {
		l.DrawPixel(p.X, p.Y, c)
	})
}

// AverageColor returns the alpha-weighted mean color of the circle. The RGB
// channels are weighted by each pixel's alpha; the alpha channel is the plain
// mean over the in-bounds pixels. A circle with no visible pixel averages to
// Transparent.
func (l *Layer) AverageColor(center Point, radius float64) Color {
	var n, sa, sr, sg, sb int
	l.ForEachInCircle(center, radius, func(p Point) {
		c := l.Pixel(p.X, p.Y)
		a := int(c.A())
		n++
		sa += a
		sr += int(c.R()) * a
		sg += int(c.G()) * a
		sb += int(c.B()) * a
	})
	if sa == 0 {
		return Transparent
	}
	div := func(s, d int) uint8 { return uint8((s + d/2) / d) }
	return ARGB(div(sa, n), div(sr, sa), div(sg, sa), div(sb, sa))
}

// circleOffsets lists every non-zero offset within radius of the origin.
func circleOffsets(radius float64) []Point {
	if radius < 1 {
		return nil
	}
	r := int(math.Ceil(radius))
	rsq := radius * radius
	out := make([]Point, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if (dx != 0 || dy != 0) && float64(dx*dx+dy*dy) <= rsq {
				out = append(out, Point{X: dx, Y: dy})
			}
		}
	}
	return out
}
