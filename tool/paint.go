package tool

import (
	"github.com/gogpu/sprite"
)

// Pencil composites the foreground color, faded to the tool's alpha, over
// every pixel of the brush. A pixel is painted at most once per stroke.
type Pencil struct {
	brush
	stroke stroke
}

// NewPencil returns a pencil with default settings.
func NewPencil() *Pencil {
	t := &Pencil{}
	t.init(DefaultSettings(), t.paint)
	t.begin = t.stroke.reset
	return t
}

func (t *Pencil) paint(l *sprite.Layer, p sprite.Point, params Params) {
	c := fade(params.Color, t.settings.Strength)
	t.stroke.each(l, p, t.settings.Radius(), func(q sprite.Point) {
		l.DrawPixel(q.X, q.Y, c)
	})
}

// Eraser lowers the alpha of every brush pixel by Strength percent.
// Fully erased pixels become sprite.EraseColor.
type Eraser struct {
	brush
	stroke stroke
}

// NewEraser returns an eraser that erases completely by default.
func NewEraser() *Eraser {
	t := &Eraser{}
	s := DefaultSettings()
	s.percent(100)
	t.init(s, t.erase)
	t.begin = t.stroke.reset
	return t
}

func (t *Eraser) erase(l *sprite.Layer, p sprite.Point, _ Params) {
	pct := t.settings.Strength
	t.stroke.each(l, p, t.settings.Radius(), func(q sprite.Point) {
		c := l.Pixel(q.X, q.Y)
		a := int(c.A()) - int(c.A())*pct/100
		if a <= 0 {
			l.SetPixel(q.X, q.Y, sprite.EraseColor)
			return
		}
		l.SetPixel(q.X, q.Y, c.WithAlpha(uint8(a)))
	})
}

// Marker is a soft round brush. Alpha falls off quadratically from the
// tool's strength at the center to zero at the rim. It applies once each
// time the pointer enters a pixel.
type Marker struct {
	brush
	once oncePerPixel
}

// NewMarker returns a marker with default settings.
func NewMarker() *Marker {
	t := &Marker{}
	s := DefaultSettings()
	s.Size = 8
	t.init(s, t.mark)
	t.begin = t.once.reset
	return t
}

func (t *Marker) mark(l *sprite.Layer, p sprite.Point, params Params) {
	if !t.once.enter(p) {
		return
	}
	r := t.settings.Radius()
	rsq := r * r
	strength := float64(t.settings.Strength)
	l.ForEachInCircle(p, r, func(q sprite.Point) {
		a := strength * max(0, (rsq-float64(q.DistSq(p)))/rsq)
		if a < 1 {
			return
		}
		l.DrawPixel(q.X, q.Y, fade(params.Color, int(a)))
	})
}
