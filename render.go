package sprite

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Background selects what is painted behind a layer when it is rendered.
type Background int

const (
	// BackgroundTiles paints a checkerboard with one tile per grid cell.
	BackgroundTiles Background = iota
	// BackgroundWhite paints solid white.
	BackgroundWhite
	// BackgroundNone leaves the destination untouched behind the pixels.
	BackgroundNone
)

// String returns the background name.
func (b Background) String() string {
	switch b {
	case BackgroundTiles:
		return "tiles"
	case BackgroundWhite:
		return "white"
	case BackgroundNone:
		return "transparent"
	default:
		return "unknown"
	}
}

// Checkerboard tile colors.
var (
	TileLight = RGB(245, 245, 245)
	TileDark  = RGB(220, 220, 220)
)

// FitTransform maps a size x grid into target with a uniform scale of
// min(targetW/w, targetH/h), anchored at target.Min.
func FitTransform(size image.Point, target image.Rectangle) Matrix {
	scale := math.Min(
		float64(target.Dx())/float64(size.X),
		float64(target.Dy())/float64(size.Y),
	)
	return Translate(float64(target.Min.X), float64(target.Min.Y)).Multiply(Scale(scale, scale))
}

// RenderTransform returns the grid-to-screen transform that fits l into
// target without stretching.
func (l *Layer) RenderTransform(target image.Rectangle) Matrix {
	return FitTransform(l.Size(), target)
}

// ScreenToGrid inverts tf to map a screen position back to a grid cell,
// flooring when roundDown is set and rounding to nearest otherwise.
func ScreenToGrid(tf Matrix, p FPoint, roundDown bool) Point {
	inv, _ := tf.Invert()
	g := inv.Apply(p)
	if roundDown {
		return g.Floor()
	}
	return g.Round()
}

// cellRect returns the screen rectangle covered by grid cell (x, y).
func cellRect(tf Matrix, x, y int) image.Rectangle {
	p0 := tf.Apply(FPoint{X: float64(x), Y: float64(y)})
	p1 := tf.Apply(FPoint{X: float64(x + 1), Y: float64(y + 1)})
	return image.Rect(
		int(math.Floor(p0.X)), int(math.Floor(p0.Y)),
		int(math.Floor(p1.X)), int(math.Floor(p1.Y)),
	)
}

// RenderTo paints bg and then the layer's pixels onto dst through tf.
func (l *Layer) RenderTo(dst draw.Image, tf Matrix, bg Background) {
	switch bg {
	case BackgroundWhite:
		r := cellRect(tf, 0, 0).Union(cellRect(tf, l.Width()-1, l.Height()-1))
		draw.Draw(dst, r, image.NewUniform(White), image.Point{}, draw.Src)
	case BackgroundTiles:
		light, dark := image.NewUniform(TileLight), image.NewUniform(TileDark)
		for y := 0; y < l.Height(); y++ {
			for x := 0; x < l.Width(); x++ {
				src := light
				if (x+y)%2 == 1 {
					src = dark
				}
				draw.Draw(dst, cellRect(tf, x, y), src, image.Point{}, draw.Src)
			}
		}
	}
	xdraw.NearestNeighbor.Transform(dst, tf.Aff3(), l.ToNRGBA(), l.Bounds(), xdraw.Over, nil)
}
