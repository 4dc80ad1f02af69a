package sprite

import "image"

// PixelMask is a mutable rectangular boolean grid implementing BitMask.
// It is independent of any Layer; out-of-bounds reads return false and
// out-of-bounds writes are ignored.
type PixelMask struct {
	width  int
	height int
	data   []bool
}

// NewPixelMask creates an empty mask. Negative dimensions are treated as 0.
func NewPixelMask(width, height int) *PixelMask {
	width, height = max(0, width), max(0, height)
	return &PixelMask{
		width:  width,
		height: height,
		data:   make([]bool, width*height),
	}
}

// NewRectMask creates a width x height mask whose cells between the
// inclusive corners p1 and p2 are set. The rectangle is clipped to the mask.
func NewRectMask(width, height int, p1, p2 Point) *PixelMask {
	m := NewPixelMask(width, height)
	lo, hi := p1.Min(p2), p1.Max(p2)
	for y := max(0, lo.Y); y <= min(hi.Y, m.height-1); y++ {
		for x := max(0, lo.X); x <= min(hi.X, m.width-1); x++ {
			m.data[y*m.width+x] = true
		}
	}
	return m
}

// MaskOf copies any BitMask into a new PixelMask.
func MaskOf(b BitMask) *PixelMask {
	if pm, ok := b.(*PixelMask); ok {
		return pm.Clone()
	}
	m := NewPixelMask(b.Width(), b.Height())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.data[y*m.width+x] = b.Get(x, y)
		}
	}
	return m
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *PixelMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *PixelMask) Width() int { return m.width }

// Height returns the mask height.
func (m *PixelMask) Height() int { return m.height }

// Get reports whether (x, y) is set.
func (m *PixelMask) Get(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.data[y*m.width+x]
}

// Set sets the value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *PixelMask) Set(x, y int, v bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = v
}

// Fill sets every cell to v.
func (m *PixelMask) Fill(v bool) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Invert flips every cell in place and returns m.
func (m *PixelMask) Invert() *PixelMask {
	for i := range m.data {
		m.data[i] = !m.data[i]
	}
	return m
}

// Clone creates a copy of the mask.
func (m *PixelMask) Clone() *PixelMask {
	clone := NewPixelMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Count returns the number of set cells.
func (m *PixelMask) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no cell is set.
func (m *PixelMask) IsEmpty() bool {
	for _, v := range m.data {
		if v {
			return false
		}
	}
	return true
}

// ForEach calls fn for every set cell, shifted by offset, in row-major order.
func (m *PixelMask) ForEach(offset Point, fn func(p Point)) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.data[y*m.width+x] {
				fn(Point{X: offset.X + x, Y: offset.Y + y})
			}
		}
	}
}

// MergeOp combines two mask cells.
type MergeOp func(a, b bool) bool

// Merge operators.
var (
	Or  MergeOp = func(a, b bool) bool { return a || b }
	And MergeOp = func(a, b bool) bool { return a && b }
)

// Merge combines a and b, with b placed at offsetB in a's coordinates.
// The result covers the union bounding box of both masks and its origin
// sits at min(0, offsetB) in a's coordinates, so for a commutative op
// Merge(a, b, off, op) equals Merge(b, a, -off, op).
func Merge(a, b BitMask, offsetB Point, op MergeOp) *PixelMask {
	offA := Point{X: -min(0, offsetB.X), Y: -min(0, offsetB.Y)}
	offB := Point{X: max(0, offsetB.X), Y: max(0, offsetB.Y)}

	w := max(a.Width()+offA.X, b.Width()+offB.X)
	h := max(a.Height()+offA.Y, b.Height()+offB.Y)
	merged := NewPixelMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			merged.data[y*w+x] = op(a.Get(x-offA.X, y-offA.Y), b.Get(x-offB.X, y-offB.Y))
		}
	}
	return merged
}

// MergeOr returns the union of a and b.
func MergeOr(a, b BitMask, offsetB Point) *PixelMask {
	return Merge(a, b, offsetB, Or)
}

// MergeAnd returns the intersection of a and b.
func MergeAnd(a, b BitMask, offsetB Point) *PixelMask {
	return Merge(a, b, offsetB, And)
}
