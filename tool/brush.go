package tool

import (
	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/cache"
)

var circleMasks = cache.New[int, sprite.CircleMask](64)

func circleMask(diameter int) sprite.CircleMask {
	return circleMasks.GetOrCreate(diameter, func() sprite.CircleMask {
		return sprite.NewCircleMask(diameter)
	})
}

// cursor outlines the brush footprint under the pointer.
type cursor struct {
	settings *Settings
	pos      sprite.Point
}

// Overlay implements Overlayer.
func (c *cursor) Overlay() (Overlay, bool) {
	d := c.settings.Size
	return Overlay{
		Mask:     circleMask(d),
		Offset:   sprite.Pt(c.pos.X-d/2, c.pos.Y-d/2).F(),
		Color:    ToolOutline,
		OnTarget: true,
	}, true
}

// brush is a round tool applied on Press and every Drag. The outline of
// its footprint is shown between Enter and Exit.
type brush struct {
	base
	cursor cursor

	apply  func(l *sprite.Layer, p sprite.Point, params Params)
	begin  func() // before the first apply of a stroke
	finish func() // on release
}

func (b *brush) init(s Settings, apply func(*sprite.Layer, sprite.Point, Params)) {
	b.settings = s
	b.cursor.settings = &b.settings
	b.apply = apply
}

func (b *brush) Enter(_ *sprite.Layer, p sprite.Point, params Params) Result {
	b.cursor.pos = p
	params.Host.AddOverlay(&b.cursor)
	return Repaint
}

func (b *brush) Exit(_ *sprite.Layer, _ sprite.Point, params Params) Result {
	params.Host.RemoveOverlay(&b.cursor)
	return Repaint
}

func (b *brush) Move(_ *sprite.Layer, p sprite.Point, _ Params) Result {
	b.cursor.pos = p
	return Repaint
}

func (b *brush) Press(l *sprite.Layer, p sprite.Point, params Params) Result {
	if b.begin != nil {
		b.begin()
	}
	b.cursor.pos = p
	b.apply(l, p, params)
	return Repaint
}

func (b *brush) Drag(l *sprite.Layer, p sprite.Point, params Params) Result {
	b.cursor.pos = p
	b.apply(l, p, params)
	return Repaint
}

func (b *brush) Release(*sprite.Layer, sprite.Point, Params) Result {
	if b.finish != nil {
		b.finish()
	}
	return SaveState
}

// stroke remembers the pixels a stroke has touched so that cumulative
// effects apply at most once per pixel per stroke.
type stroke struct {
	touched map[sprite.Point]struct{}
}

func (s *stroke) reset() {
	if s.touched == nil {
		s.touched = make(map[sprite.Point]struct{})
	}
	clear(s.touched)
}

// each calls fn for the circle pixels not yet touched in this stroke.
func (s *stroke) each(l *sprite.Layer, center sprite.Point, radius float64, fn func(p sprite.Point)) {
	if s.touched == nil {
		s.reset()
	}
	l.ForEachInCircle(center, radius, func(p sprite.Point) {
		if _, ok := s.touched[p]; ok {
			return
		}
		s.touched[p] = struct{}{}
		fn(p)
	})
}

// oncePerPixel passes only when the pointer has entered a new pixel.
type oncePerPixel struct {
	last  sprite.Point
	valid bool
}

func (o *oncePerPixel) reset() { o.valid = false }

func (o *oncePerPixel) enter(p sprite.Point) bool {
	if o.valid && o.last == p {
		return false
	}
	o.last, o.valid = p, true
	return true
}
