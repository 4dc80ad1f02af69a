package tool

import (
	"github.com/gogpu/sprite"
)

// Bucket fills the region connected to the pressed pixel. The search
// diameter bridges gaps: a diameter above 2 reaches pixels that are not
// direct neighbours.
type Bucket struct {
	base
	// Equal decides which colors belong to the region; nil means
	// sprite.StraightEqual.
	Equal sprite.ColorEqual
}

// NewBucket returns a bucket with a search diameter of 2.
func NewBucket() *Bucket {
	t := &Bucket{}
	t.settings = DefaultSettings()
	t.settings.SizeName = SearchDiameter
	t.settings.MinSize, t.settings.Size = 2, 2
	return t
}

func (t *Bucket) fill(l *sprite.Layer, p sprite.Point, c sprite.Color) {
	region := l.FloodMatch(p, max(1, t.settings.Radius()), nil, t.Equal)
	l.FillMask(sprite.Point{}, region, c)
}

func (t *Bucket) Press(l *sprite.Layer, p sprite.Point, params Params) Result {
	t.fill(l, p, fade(params.Color, t.settings.Strength))
	return Repaint
}

func (t *Bucket) Drag(l *sprite.Layer, p sprite.Point, params Params) Result {
	t.fill(l, p, fade(params.Color, t.settings.Strength))
	return Repaint
}

func (t *Bucket) Release(*sprite.Layer, sprite.Point, Params) Result {
	return SaveState
}
