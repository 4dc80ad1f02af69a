package sprite

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// RotatedCW returns a new layer rotated a quarter turn clockwise.
// Source pixel (x, y) lands at (h-1-y, x).
func (l *Layer) RotatedCW() *Layer {
	w, h := l.Width(), l.Height()
	out := newLayer(h, w)
	for y := 0; y < h; y++ {
		for x, v := range l.buf.Row(y) {
			out.buf.Set(h-1-y, x, v)
		}
	}
	return out
}

// RotatedCCW returns a new layer rotated a quarter turn counter-clockwise.
// Source pixel (x, y) lands at (y, w-1-x).
func (l *Layer) RotatedCCW() *Layer {
	w, h := l.Width(), l.Height()
	out := newLayer(h, w)
	for y := 0; y < h; y++ {
		for x, v := range l.buf.Row(y) {
			out.buf.Set(y, w-1-x, v)
		}
	}
	return out
}

// ReflectLeftRight mirrors the layer horizontally in place.
func (l *Layer) ReflectLeftRight() {
	w := l.Width()
	for y := 0; y < l.Height(); y++ {
		row := l.buf.Row(y)
		for x := 0; x < w/2; x++ {
			row[x], row[w-1-x] = row[w-1-x], row[x]
		}
	}
}

// ReflectUpDown mirrors the layer vertically in place.
func (l *Layer) ReflectUpDown() {
	h := l.Height()
	for y := 0; y < h/2; y++ {
		top, bottom := l.buf.Row(y), l.buf.Row(h-1-y)
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}

// ScaledSize returns the dimensions Scaled would produce.
func (l *Layer) ScaledSize(sx, sy float64) image.Point {
	return image.Pt(
		max(1, int(math.Round(float64(l.Width())*sx))),
		max(1, int(math.Round(float64(l.Height())*sy))),
	)
}

// Scaled returns a new layer resampled to the rounded scaled size with
// nearest-neighbour sampling, which keeps pixel art crisp.
func (l *Layer) Scaled(sx, sy float64) *Layer {
	size := l.ScaledSize(sx, sy)
	out := newLayer(size.X, size.Y)
	dst := image.NewNRGBA(out.Bounds())
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), l.ToNRGBA(), l.Bounds(), xdraw.Src, nil)
	for y := 0; y < size.Y; y++ {
		row := out.buf.Row(y)
		for x := range row {
			i := dst.PixOffset(x, y)
			row[x] = uint32(ARGB(dst.Pix[i+3], dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2]))
		}
	}
	return out
}

// Cropped returns a view of the rectangle with inclusive corners p1 and p2.
func (l *Layer) Cropped(p1, p2 Point) (*Layer, error) {
	lo, hi := p1.Min(p2), p1.Max(p2)
	return l.SubLayer(image.Rect(lo.X, lo.Y, hi.X+1, hi.Y+1))
}

// VisibleBounds returns the bounding box of every pixel with alpha > 0.
func (l *Layer) VisibleBounds() (image.Rectangle, bool) {
	minX, minY := l.Width(), l.Height()
	maxX, maxY := -1, -1
	for y := 0; y < l.Height(); y++ {
		for x, v := range l.buf.Row(y) {
			if Color(v).A() == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// ShrinkWrapped returns a view of the visible bounding box. A layer with no
// visible pixel is returned unchanged.
func (l *Layer) ShrinkWrapped() *Layer {
	r, ok := l.VisibleBounds()
	if !ok {
		return l
	}
	sub, err := l.SubLayer(r)
	if err != nil {
		return l // unreachable: r lies within bounds
	}
	return sub
}

// MeanPixel returns the alpha-weighted centroid (Σx·α, Σy·α) / Σα.
// The second result is false when no pixel is visible.
func (l *Layer) MeanPixel() (FPoint, bool) {
	var sx, sy, sa float64
	for y := 0; y < l.Height(); y++ {
		for x, v := range l.buf.Row(y) {
			a := float64(Color(v).A())
			sx += float64(x) * a
			sy += float64(y) * a
			sa += a
		}
	}
	if sa == 0 {
		return FPoint{}, false
	}
	return FPoint{X: sx / sa, Y: sy / sa}, true
}
