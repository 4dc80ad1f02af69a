package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"slices"
	"time"

	"github.com/gogpu/sprite"
)

// ErrNoFrames is returned when an animation has nothing to encode.
var ErrNoFrames = errors.New("imageio: no frames")

// gifAlphaThreshold is the lowest alpha drawn as opaque in a GIF frame.
const gifAlphaThreshold = 128

// EncodeGIF writes frames as a looping animated GIF with delay per frame.
// Palette index 0 is transparent. When the frames use at most 255 distinct
// colors they are stored exactly; otherwise the Plan 9 palette is used with
// Floyd-Steinberg dithering.
func EncodeGIF(w io.Writer, frames []*sprite.Layer, delay time.Duration) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	var bounds image.Rectangle
	for _, f := range frames {
		bounds = bounds.Union(f.Bounds())
	}

	pal, exact := gifPalette(frames)
	hundredths := max(1, int(delay/(10*time.Millisecond)))

	anim := &gif.GIF{}
	for _, f := range frames {
		img := image.NewPaletted(bounds, pal)
		if exact != nil {
			fillExact(img, f, exact)
		} else {
			draw.FloydSteinberg.Draw(img, f.Bounds(), thresholded(f), image.Point{})
		}
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, hundredths)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("imageio: encode gif: %w", err)
	}
	return nil
}

// SaveGIF writes an animated GIF to path.
func SaveGIF(path string, frames []*sprite.Layer, delay time.Duration) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if err := writeFile(path, func(w io.Writer) error {
		return EncodeGIF(w, frames, delay)
	}); err != nil {
		return err
	}
	sprite.Logger().Info("animation saved", "path", path, "frames", len(frames), "delay", delay)
	return nil
}

// gifPalette returns the exact palette and its index when the frames fit,
// else the Plan 9 palette and a nil index.
func gifPalette(frames []*sprite.Layer) (color.Palette, map[sprite.Color]uint8) {
	seen := make(map[sprite.Color]bool)
	for _, f := range frames {
		for y := range f.Height() {
			for x := range f.Width() {
				c := f.Pixel(x, y)
				if c.A() < gifAlphaThreshold {
					continue
				}
				seen[c.WithAlpha(0xFF)] = true
				if len(seen) > 255 {
					return append(color.Palette{color.Transparent}, palette.Plan9[1:]...), nil
				}
			}
		}
	}

	colors := make([]sprite.Color, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	slices.Sort(colors)

	pal := color.Palette{color.Transparent}
	index := make(map[sprite.Color]uint8, len(colors))
	for i, c := range colors {
		pal = append(pal, c)
		index[c] = uint8(i + 1)
	}
	return pal, index
}

func fillExact(dst *image.Paletted, f *sprite.Layer, index map[sprite.Color]uint8) {
	for y := range f.Height() {
		for x := range f.Width() {
			c := f.Pixel(x, y)
			if c.A() < gifAlphaThreshold {
				continue
			}
			dst.SetColorIndex(x, y, index[c.WithAlpha(0xFF)])
		}
	}
}

// thresholded converts f to binary transparency for dithering.
func thresholded(f *sprite.Layer) *image.NRGBA {
	img := f.ToNRGBA()
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] < gifAlphaThreshold {
			clear(img.Pix[i : i+4])
		} else {
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}
