package sprite

import (
	"fmt"
	"image/color"
)

// Color is a straight-alpha (non-premultiplied) ARGB value packed as
// a<<24 | r<<16 | g<<8 | b.
type Color uint32

// Common colors.
const (
	// Transparent is the zero color.
	Transparent Color = 0

	// EraseColor is written by erasing a pixel.
	EraseColor Color = 0x00FFFFFF

	Black Color = 0xFF000000
	White Color = 0xFFFFFFFF
)

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(255, r, g, b)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// IsTransparent reports whether the alpha channel is zero.
func (c Color) IsTransparent() bool { return c.A() == 0 }

// NRGBA converts c to the standard non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String returns the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// FromColor converts any color.Color to a straight-alpha Color.
func FromColor(c color.Color) Color {
	if sc, ok := c.(Color); ok {
		return sc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// ColorModel converts colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// MixRGB composites src over dst with straight alpha using integer
// arithmetic and truncating division:
//
//	a     = a_dst + a_src - a_dst*a_src/255
//	w_dst = (255-a_src)*a_dst/255
//	c     = (c_dst*w_dst + a_src*c_src) / (w_dst + a_src)
//
// A fully transparent src leaves dst unchanged.
func MixRGB(dst, src Color) Color {
	as := int(src.A())
	if as == 0 {
		return dst
	}
	ad := int(dst.A())
	a := ad + as - ad*as/255
	wd := (255 - as) * ad / 255
	mix := func(cd, cs uint8) uint8 {
		return uint8((int(cd)*wd + as*int(cs)) / (wd + as))
	}
	return ARGB(uint8(a),
		mix(dst.R(), src.R()),
		mix(dst.G(), src.G()),
		mix(dst.B(), src.B()))
}

// ColorEqual decides whether two pixels count as the same color during a
// flood search.
type ColorEqual func(a, b Color) bool

// StraightEqual compares straight-alpha words. Any two fully transparent
// colors are equal regardless of their RGB channels.
func StraightEqual(a, b Color) bool {
	return a == b || (a.A() == 0 && b.A() == 0)
}

// PremultipliedEqual compares colors after premultiplying each channel by
// alpha/255 (truncating). Partially transparent colors with different
// straight RGB may compare equal; fully transparent colors always do.
func PremultipliedEqual(a, b Color) bool {
	if a.A() != b.A() {
		return false
	}
	pm := func(c, alpha uint8) int { return int(c) * int(alpha) / 255 }
	al := a.A()
	return pm(a.R(), al) == pm(b.R(), al) &&
		pm(a.G(), al) == pm(b.G(), al) &&
		pm(a.B(), al) == pm(b.B(), al)
}
