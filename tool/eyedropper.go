package tool

import (
	"github.com/gogpu/sprite"
)

// Eyedropper samples the alpha-weighted average color under the brush.
// Hovering previews the sample in the palette and shows its alpha as the
// tool's strength; releasing commits both. Leaving without a release
// restores the preview and alpha that were showing on entry.
type Eyedropper struct {
	brush
	saved      sprite.Color
	hadSaved   bool
	savedAlpha int
}

// NewEyedropper returns a single-pixel eyedropper.
func NewEyedropper() *Eyedropper {
	t := &Eyedropper{}
	t.init(DefaultSettings(), t.preview)
	return t
}

func (t *Eyedropper) sample(l *sprite.Layer, p sprite.Point) sprite.Color {
	return l.AverageColor(p, t.settings.Radius())
}

func (t *Eyedropper) preview(l *sprite.Layer, p sprite.Point, params Params) {
	c := t.sample(l, p)
	params.Host.SetPreviewColor(c)
	t.settings.SetStrength(int(c.A()))
}

func (t *Eyedropper) Enter(l *sprite.Layer, p sprite.Point, params Params) Result {
	t.saved, t.hadSaved = params.Host.PreviewColor()
	t.savedAlpha = t.settings.Strength
	return t.brush.Enter(l, p, params)
}

func (t *Eyedropper) Move(l *sprite.Layer, p sprite.Point, params Params) Result {
	t.preview(l, p, params)
	return t.brush.Move(l, p, params)
}

func (t *Eyedropper) Release(l *sprite.Layer, p sprite.Point, params Params) Result {
	c := t.sample(l, p)
	params.Host.SetColor(c)
	params.Host.SetPreviewColor(c)
	t.saved, t.hadSaved = c, true
	t.settings.SetStrength(int(c.A()))
	t.savedAlpha = t.settings.Strength
	return Repaint
}

func (t *Eyedropper) Exit(l *sprite.Layer, p sprite.Point, params Params) Result {
	if t.hadSaved {
		params.Host.SetPreviewColor(t.saved)
	} else {
		params.Host.ClearPreviewColor()
	}
	t.hadSaved = false
	t.settings.SetStrength(t.savedAlpha)
	return t.brush.Exit(l, p, params)
}
