package canvas

import (
	"errors"
	"image"
	"image/draw"

	"github.com/gogpu/sprite"
)

// ErrEmptyClipboard is returned by Paste before anything was copied.
var ErrEmptyClipboard = errors.New("canvas: clipboard is empty")

// Outline colors.
var (
	SelectionOutline = sprite.RGB(0, 0, 255)
	BorderColor      = sprite.RGB(128, 128, 128)
)

// Canvas is the editable surface. It is not safe for concurrent use.
type Canvas struct {
	layers    []*sprite.Layer
	selection *sprite.Layer
	selOffset sprite.FPoint

	clipboard  *sprite.Layer
	clipOffset sprite.FPoint

	viewport   image.Rectangle
	background sprite.Background
}

// New creates an empty canvas.
func New(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{viewport: o.viewport, background: o.background}
}

// SetLayer replaces every layer with l. A nil l is ignored.
func (c *Canvas) SetLayer(l *sprite.Layer) {
	if l == nil {
		return
	}
	clear(c.layers)
	c.layers = append(c.layers[:0], l)
}

// AddLayer puts l on top of the stack.
func (c *Canvas) AddLayer(l *sprite.Layer) {
	c.layers = append(c.layers, l)
}

// HasLayer reports whether the canvas has any layer.
func (c *Canvas) HasLayer() bool { return len(c.layers) > 0 }

// Top returns the layer tools edit: the selection when one floats and
// bypassSelection is false, else the topmost layer. It returns nil for an
// empty canvas.
func (c *Canvas) Top(bypassSelection bool) *sprite.Layer {
	if !bypassSelection && c.selection != nil {
		return c.selection
	}
	if len(c.layers) == 0 {
		return nil
	}
	return c.layers[len(c.layers)-1]
}

// Layers returns the layers bottom to top, followed by the selection when
// includeSelection is set and one floats.
func (c *Canvas) Layers(includeSelection bool) []*sprite.Layer {
	out := make([]*sprite.Layer, len(c.layers), len(c.layers)+1)
	copy(out, c.layers)
	if includeSelection && c.selection != nil {
		out = append(out, c.selection)
	}
	return out
}

// SetViewport sets the screen rectangle the canvas is fitted into.
// Empty rectangles are ignored.
func (c *Canvas) SetViewport(r image.Rectangle) {
	if !r.Empty() {
		c.viewport = r
	}
}

// Viewport returns the screen rectangle.
func (c *Canvas) Viewport() image.Rectangle { return c.viewport }

// SetRenderStyle sets the background drawn behind the bottom layer.
func (c *Canvas) SetRenderStyle(bg sprite.Background) { c.background = bg }

// RenderStyle returns the background style.
func (c *Canvas) RenderStyle() sprite.Background { return c.background }

// Transform maps base grid coordinates to the screen. The bottom layer is
// fitted into the viewport; the identity is returned for an empty canvas.
func (c *Canvas) Transform() sprite.Matrix {
	if len(c.layers) == 0 {
		return sprite.Identity()
	}
	return c.layers[0].RenderTransform(c.viewport)
}

// SelectionTransform maps selection grid coordinates to the screen.
func (c *Canvas) SelectionTransform() sprite.Matrix {
	return c.Transform().Multiply(sprite.Translate(c.selOffset.X, c.selOffset.Y))
}

// ScreenToGrid converts a screen position to a grid cell of the edited
// layer, or of the base layer when bypassSelection is set.
func (c *Canvas) ScreenToGrid(p sprite.FPoint, roundDown, bypassSelection bool) sprite.Point {
	tf := c.Transform()
	if c.selection != nil && !bypassSelection {
		tf = c.SelectionTransform()
	}
	return sprite.ScreenToGrid(tf, p, roundDown)
}

// ScreenToGridF converts a screen position to unrounded base grid
// coordinates.
func (c *Canvas) ScreenToGridF(p sprite.FPoint) sprite.FPoint {
	inv, _ := c.Transform().Invert()
	return inv.Apply(p)
}

// Render draws every layer, the selection and its outline onto dst.
func (c *Canvas) Render(dst draw.Image) {
	if len(c.layers) == 0 {
		return
	}
	tf := c.Transform()
	c.layers[0].RenderTo(dst, tf, c.background)
	for _, l := range c.layers[1:] {
		l.RenderTo(dst, tf, sprite.BackgroundNone)
	}
	if c.selection != nil {
		stf := c.SelectionTransform()
		c.selection.RenderTo(dst, stf, sprite.BackgroundNone)
		sprite.StrokeOutline(dst, c.selection, stf, SelectionOutline)
	}

	w, h := c.layers[0].Width(), c.layers[0].Height()
	border := sprite.NewRectMask(w, h, sprite.Point{}, sprite.Pt(w-1, h-1))
	sprite.StrokeOutline(dst, border, tf, BorderColor)
}
