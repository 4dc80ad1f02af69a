package editor

import (
	"image/draw"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/tool"
)

// Overlays returns the overlays currently shown by tools.
func (e *Editor) Overlays() []tool.Overlay {
	var out []tool.Overlay
	for _, o := range e.overlays {
		if ov, ok := o.Overlay(); ok {
			out = append(out, ov)
		}
	}
	return out
}

// Render draws the canvas and the tool overlays into dst.
func (e *Editor) Render(dst draw.Image) {
	e.canvas.Render(dst)
	if !e.canvas.HasLayer() {
		return
	}
	for _, ov := range e.Overlays() {
		tf := e.canvas.Transform()
		if ov.OnTarget && e.canvas.HasSelection() {
			tf = e.canvas.SelectionTransform()
		}
		sprite.StrokeOutline(dst, ov.Mask, tf.Multiply(sprite.Translate(ov.Offset.X, ov.Offset.Y)), ov.Color)
	}
}
