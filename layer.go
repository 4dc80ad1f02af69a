package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/sprite/internal/pixbuf"
)

// Layer is a rectangular grid of straight-alpha ARGB pixels.
//
// A Layer may be a view onto a region of another Layer's pixels (see
// SubLayer, Cropped and Spritesheet.Sprite); writes through a view are
// visible in the parent and vice versa. Dimensions never change for the
// lifetime of a Layer: resizing produces a new Layer.
//
// Pixel operations silently ignore coordinates outside the layer.
// Layer implements image.Image, draw.Image and BitMask (alpha > 0).
type Layer struct {
	buf *pixbuf.Buf
}

// NewLayer creates a fully transparent width x height layer.
func NewLayer(width, height int) (*Layer, error) {
	buf, err := pixbuf.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Layer{buf: buf}, nil
}

// newLayer is NewLayer for dimensions already known to be positive.
func newLayer(width, height int) *Layer {
	l, err := NewLayer(max(1, width), max(1, height))
	if err != nil {
		panic(err) // unreachable: dimensions clamped to 1
	}
	return l
}

// LayerFromARGB wraps compact row-major ARGB data without copying.
func LayerFromARGB(data []uint32, width, height int) (*Layer, error) {
	buf, err := pixbuf.FromData(data, width, height)
	if err != nil {
		return nil, wrapBufErr(err)
	}
	return &Layer{buf: buf}, nil
}

// FromImage copies img into a new layer. The image origin maps to (0, 0).
func FromImage(img image.Image) (*Layer, error) {
	b := img.Bounds()
	l, err := NewLayer(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			row := l.buf.Row(y)
			off := n.PixOffset(b.Min.X, b.Min.Y+y)
			for x := range row {
				p := n.Pix[off+4*x : off+4*x+4 : off+4*x+4]
				row[x] = uint32(ARGB(p[3], p[0], p[1], p[2]))
			}
		}
		return l, nil
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			l.buf.Set(x, y, uint32(FromColor(img.At(b.Min.X+x, b.Min.Y+y))))
		}
	}
	return l, nil
}

func wrapBufErr(err error) error {
	switch {
	case errors.Is(err, pixbuf.ErrInvalidDimensions):
		return fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	case errors.Is(err, pixbuf.ErrOutOfBounds):
		return fmt.Errorf("%w: %w", ErrOutOfBounds, err)
	case errors.Is(err, pixbuf.ErrSizeMismatch):
		return fmt.Errorf("%w: %w", ErrSizeMismatch, err)
	}
	return err
}

// Width returns the layer width.
func (l *Layer) Width() int { return l.buf.Width() }

// Height returns the layer height.
func (l *Layer) Height() int { return l.buf.Height() }

// Size returns the layer dimensions.
func (l *Layer) Size() image.Point {
	return image.Pt(l.buf.Width(), l.buf.Height())
}

// Bounds implements image.Image. The origin is always (0, 0).
func (l *Layer) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.buf.Width(), l.buf.Height())
}

// ColorModel implements image.Image.
func (l *Layer) ColorModel() color.Model { return ColorModel }

// At implements image.Image.
func (l *Layer) At(x, y int) color.Color { return l.Pixel(x, y) }

// Set implements draw.Image.
func (l *Layer) Set(x, y int, c color.Color) { l.SetPixel(x, y, FromColor(c)) }

// Get reports whether the pixel at (x, y) has non-zero alpha.
func (l *Layer) Get(x, y int) bool { return l.Pixel(x, y).A() > 0 }

// Contains reports whether p lies inside the layer.
func (l *Layer) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < l.buf.Width() && p.Y < l.buf.Height()
}

// Pixel returns the color at (x, y), or Transparent outside the layer.
func (l *Layer) Pixel(x, y int) Color { return Color(l.buf.At(x, y)) }

// SetPixel writes c at (x, y).
func (l *Layer) SetPixel(x, y int, c Color) { l.buf.Set(x, y, uint32(c)) }

// DrawPixel composites c over the pixel at (x, y) with MixRGB.
func (l *Layer) DrawPixel(x, y int, c Color) {
	i := l.buf.Offset(x, y)
	if i < 0 {
		return
	}
	l.buf.Set(x, y, uint32(MixRGB(l.Pixel(x, y), c)))
}

// Fill sets every pixel to c.
func (l *Layer) Fill(c Color) { l.buf.Fill(uint32(c)) }

// Clear makes every pixel transparent.
func (l *Layer) Clear() { l.buf.Fill(uint32(Transparent)) }

// FillMask writes c at every set cell of m, with m's origin at offset.
func (l *Layer) FillMask(offset Point, m BitMask, c Color) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				l.SetPixel(offset.X+x, offset.Y+y, c)
			}
		}
	}
}

// DrawLayer composites every pixel of src over l with src's origin at at.
func (l *Layer) DrawLayer(src *Layer, at Point) {
	for y := 0; y < src.Height(); y++ {
		row := src.buf.Row(y)
		for x, v := range row {
			if Color(v).A() == 0 {
				continue
			}
			l.DrawPixel(at.X+x, at.Y+y, Color(v))
		}
	}
}

// Blit copies every pixel of src onto l with src's origin at at, replacing
// the destination values.
func (l *Layer) Blit(src *Layer, at Point) {
	for y := 0; y < src.Height(); y++ {
		row := src.buf.Row(y)
		for x, v := range row {
			l.buf.Set(at.X+x, at.Y+y, v)
		}
	}
}

// Clone returns a deep copy with its own pixel storage.
func (l *Layer) Clone() *Layer {
	return &Layer{buf: l.buf.Clone()}
}

// SubLayer returns a view of r that shares pixels with l.
// r must lie inside l's bounds.
func (l *Layer) SubLayer(r image.Rectangle) (*Layer, error) {
	buf, err := l.buf.Sub(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	if err != nil {
		return nil, fmt.Errorf("sub-layer %v of %v: %w", r, l.Bounds(), wrapBufErr(err))
	}
	return &Layer{buf: buf}, nil
}

// SharesPixels reports whether writes to l may be visible through other.
func (l *Layer) SharesPixels(other *Layer) bool {
	return l.buf.SharesArena(other.buf)
}

// ARGB returns a compact row-major copy of the pixels.
func (l *Layer) ARGB() []uint32 { return l.buf.Pixels() }

// SetARGB overwrites every pixel from compact row-major data.
func (l *Layer) SetARGB(data []uint32) error {
	if err := l.buf.SetPixels(data); err != nil {
		return wrapBufErr(err)
	}
	return nil
}

// Equal reports whether l and other have the same size and pixels.
func (l *Layer) Equal(other *Layer) bool {
	if l.Size() != other.Size() {
		return false
	}
	for y := 0; y < l.Height(); y++ {
		a, b := l.buf.Row(y), other.buf.Row(y)
		for x := range a {
			if a[x] != b[x] {
				return false
			}
		}
	}
	return true
}

// ToNRGBA converts the layer to a standard image.
func (l *Layer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(l.Bounds())
	for y := 0; y < l.Height(); y++ {
		for x, v := range l.buf.Row(y) {
			c := Color(v)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R()
			img.Pix[i+1] = c.G()
			img.Pix[i+2] = c.B()
			img.Pix[i+3] = c.A()
		}
	}
	return img
}

// HasVisibleContent reports whether any pixel has non-zero alpha.
func (l *Layer) HasVisibleContent() bool {
	for y := 0; y < l.Height(); y++ {
		for _, v := range l.buf.Row(y) {
			if Color(v).A() > 0 {
				return true
			}
		}
	}
	return false
}
