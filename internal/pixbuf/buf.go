// Package pixbuf provides the shared ARGB pixel arena behind layers.
//
// A Buf is a flat []uint32 slice plus width, height and stride. Sub-rectangle
// views created with Sub share the parent's slice and keep the parent's
// stride, so writes through any view are visible through every other view of
// the same arena.
package pixbuf

import "errors"

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

	// ErrOutOfBounds is returned when a sub-rectangle leaves the buffer.
	ErrOutOfBounds = errors.New("pixbuf: region out of bounds")

	// ErrSizeMismatch is returned when raw data does not match width*height.
	ErrSizeMismatch = errors.New("pixbuf: data size mismatch")
)

// Buf is a view onto a shared ARGB pixel arena.
//
// Buf is not safe for concurrent mutation; callers serialize writes.
type Buf struct {
	data   []uint32
	width  int
	height int
	stride int
}

// New allocates a zeroed buffer with its own arena.
func New(width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buf{
		data:   make([]uint32, width*height),
		width:  width,
		height: height,
		stride: width,
	}, nil
}

// FromData wraps compact row-major data without copying.
func FromData(data []uint32, width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != width*height {
		return nil, ErrSizeMismatch
	}
	return &Buf{data: data, width: width, height: height, stride: width}, nil
}

// Width returns the view width in pixels.
func (b *Buf) Width() int { return b.width }

// Height returns the view height in pixels.
func (b *Buf) Height() int { return b.height }

// Stride returns the number of words between rows of the underlying arena.
func (b *Buf) Stride() int { return b.stride }

// Offset returns the index of pixel (x, y) in the data slice,
// or -1 if the coordinates are out of bounds.
func (b *Buf) Offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x
}

// At returns the pixel at (x, y), or 0 when out of bounds.
func (b *Buf) At(x, y int) uint32 {
	i := b.Offset(x, y)
	if i < 0 {
		return 0
	}
	return b.data[i]
}

// Set writes the pixel at (x, y). Out-of-bounds writes are ignored.
func (b *Buf) Set(x, y int, v uint32) {
	i := b.Offset(x, y)
	if i < 0 {
		return
	}
	b.data[i] = v
}

// Row returns the pixels of row y, or nil if y is out of bounds.
// The slice aliases the arena.
func (b *Buf) Row(y int) []uint32 {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.width]
}

// Fill sets every pixel of the view to v.
func (b *Buf) Fill(v uint32) {
	for y := 0; y < b.height; y++ {
		row := b.Row(y)
		for x := range row {
			row[x] = v
		}
	}
}

// Sub returns a view of the rectangle (x, y, width, height) that shares the
// arena with b.
func (b *Buf) Sub(x, y, width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if x < 0 || y < 0 || x+width > b.width || y+height > b.height {
		return nil, ErrOutOfBounds
	}

	offset := y*b.stride + x
	// Words needed: (height-1)*stride + width
	end := (y+height-1)*b.stride + x + width

	return &Buf{
		data:   b.data[offset:end],
		width:  width,
		height: height,
		stride: b.stride, // keep arena stride for row access
	}, nil
}

// Clone returns a deep copy with a compact, private arena.
func (b *Buf) Clone() *Buf {
	return &Buf{
		data:   b.Pixels(),
		width:  b.width,
		height: b.height,
		stride: b.width,
	}
}

// Pixels returns a compact row-major copy of the view.
func (b *Buf) Pixels() []uint32 {
	out := make([]uint32, b.width*b.height)
	for y := 0; y < b.height; y++ {
		copy(out[y*b.width:], b.Row(y))
	}
	return out
}

// SetPixels overwrites the view from compact row-major data.
func (b *Buf) SetPixels(data []uint32) error {
	if len(data) != b.width*b.height {
		return ErrSizeMismatch
	}
	for y := 0; y < b.height; y++ {
		copy(b.Row(y), data[y*b.width:(y+1)*b.width])
	}
	return nil
}

// SharesArena reports whether b and other are views of the same arena
// region, i.e. a write through one may be observed through the other.
func (b *Buf) SharesArena(other *Buf) bool {
	if len(b.data) == 0 || len(other.data) == 0 {
		return false
	}
	return &b.data[:cap(b.data)][cap(b.data)-1] == &other.data[:cap(other.data)][cap(other.data)-1]
}
