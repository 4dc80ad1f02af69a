package sprite

import "image"

// maxSignatureDim is the largest dimension a 12-bit signature field holds.
const maxSignatureDim = 1<<12 - 1

// WriteSignature hides d in the bottom-right pixel of l: alpha 0, width in
// bits 12..23 and height in bits 0..11. It refuses, returning false, when the
// pixel is visible or d does not fit in 12 bits.
func WriteSignature(l *Layer, d image.Point) bool {
	if d.X < 1 || d.Y < 1 || d.X > maxSignatureDim || d.Y > maxSignatureDim {
		return false
	}
	x, y := l.Width()-1, l.Height()-1
	if l.Pixel(x, y).A() != 0 {
		return false
	}
	l.SetPixel(x, y, Color(d.X<<12|d.Y))
	return true
}

// ReadSignature recovers a sprite size written by WriteSignature.
func ReadSignature(l *Layer) (image.Point, bool) {
	c := l.Pixel(l.Width()-1, l.Height()-1)
	if c.A() != 0 {
		return image.Point{}, false
	}
	d := image.Pt(int(c>>12&0xFFF), int(c&0xFFF))
	if d.X == 0 || d.Y == 0 {
		return image.Point{}, false
	}
	return d, true
}
