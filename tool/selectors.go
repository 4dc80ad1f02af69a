package tool

import (
	"github.com/gogpu/sprite"
)

// ColorSelector selects flood regions of the base layer. Regions found
// during one drag accumulate, and every color picked up along the way
// joins the match set. The selection is made on release.
type ColorSelector struct {
	base
	// Equal is the color equality used by the flood search.
	Equal sprite.ColorEqual

	colors []sprite.Color
	mask   *sprite.PixelMask
}

// NewColorSelector returns a color selector with a search diameter of 2.
func NewColorSelector() *ColorSelector {
	t := &ColorSelector{}
	t.settings = DefaultSettings()
	t.settings.HasStrength = false
	t.settings.SizeName = SearchDiameter
	t.settings.MinSize, t.settings.Size = 2, 2
	return t
}

// Overlay implements Overlayer.
func (t *ColorSelector) Overlay() (Overlay, bool) {
	if t.mask == nil {
		return Overlay{}, false
	}
	return Overlay{Mask: t.mask, Color: PreselectionOutline}, true
}

func (t *ColorSelector) pick(l *sprite.Layer, p sprite.Point, params Params) Result {
	h := params.Host
	// Pressing on an opaque part of the floating selection picks nothing.
	if h.HasSelection() && l.Get(p.X, p.Y) {
		return None
	}
	under := h.BaseLayer()
	bp := h.ScreenToGrid(params.Screen, true)
	c := under.Pixel(bp.X, bp.Y)
	if c.A() == 0 {
		return None
	}

	region := under.FloodMatch(bp, t.settings.Radius(), t.colors, t.Equal)
	t.colors = append(t.colors, c)
	if t.mask == nil {
		t.mask = region
		h.AddOverlay(t)
	} else {
		t.mask = sprite.MergeOr(t.mask, region, sprite.Point{})
	}
	return Repaint
}

func (t *ColorSelector) Press(l *sprite.Layer, p sprite.Point, params Params) Result {
	return t.pick(l, p, params)
}

func (t *ColorSelector) Drag(l *sprite.Layer, p sprite.Point, params Params) Result {
	return t.pick(l, p, params)
}

func (t *ColorSelector) Release(_ *sprite.Layer, _ sprite.Point, params Params) Result {
	if t.mask == nil {
		return None
	}
	params.Host.RemoveOverlay(t)
	params.Host.Select(t.mask)
	t.mask = nil
	t.colors = t.colors[:0]
	return RepaintAndSave
}

// BoxSelector selects the rectangle spanned by the press and release
// points, both corners included.
type BoxSelector struct {
	base
	host       Host
	start, end sprite.FPoint
	active     bool
}

// NewBoxSelector returns a box selector. It has no size or strength.
func NewBoxSelector() *BoxSelector {
	t := &BoxSelector{}
	t.settings = DefaultSettings()
	t.settings.HasSize = false
	t.settings.HasStrength = false
	return t
}

// box returns the selected rectangle as a mask over the base layer.
func (t *BoxSelector) box(h Host) *sprite.PixelMask {
	under := h.BaseLayer()
	a := h.ScreenToGrid(t.start, true)
	b := h.ScreenToGrid(t.end, true)
	return sprite.NewRectMask(under.Width(), under.Height(), a.Min(b), a.Max(b))
}

// Overlay implements Overlayer.
func (t *BoxSelector) Overlay() (Overlay, bool) {
	if !t.active || t.host == nil {
		return Overlay{}, false
	}
	return Overlay{Mask: t.box(t.host), Color: PreselectionOutline}, true
}

func (t *BoxSelector) Press(_ *sprite.Layer, _ sprite.Point, params Params) Result {
	t.host = params.Host
	t.start, t.end = params.Screen, params.Screen
	t.active = true
	params.Host.AddOverlay(t)
	return Repaint
}

func (t *BoxSelector) Drag(_ *sprite.Layer, _ sprite.Point, params Params) Result {
	t.end = params.Screen
	return Repaint
}

func (t *BoxSelector) Release(_ *sprite.Layer, _ sprite.Point, params Params) Result {
	if !t.active {
		return None
	}
	t.end = params.Screen
	params.Host.Select(t.box(params.Host))
	params.Host.RemoveOverlay(t)
	t.active = false
	t.host = nil
	return RepaintAndSave
}

// Dragger moves the floating selection. Pressing without a selection
// floats the whole layer for the duration of the drag and drops it again
// on release; otherwise the selection snaps to the grid on release.
// Clicking drops the selection.
type Dragger struct {
	base
	pressGrid sprite.FPoint
	pressSel  sprite.FPoint
	temporary bool
}

// NewDragger returns a dragger. It has no size or strength.
func NewDragger() *Dragger {
	t := &Dragger{}
	t.settings = DefaultSettings()
	t.settings.HasSize = false
	t.settings.HasStrength = false
	return t
}

func (t *Dragger) Press(_ *sprite.Layer, _ sprite.Point, params Params) Result {
	h := params.Host
	t.temporary = !h.HasSelection()
	if t.temporary {
		h.Select(nil)
	}
	t.pressGrid = h.ScreenToGridF(params.Screen)
	t.pressSel = h.SelectionOffset()
	return Repaint
}

func (t *Dragger) Drag(_ *sprite.Layer, _ sprite.Point, params Params) Result {
	h := params.Host
	delta := h.ScreenToGridF(params.Screen).Sub(t.pressGrid)
	h.SetSelectionOffset(t.pressSel.Add(delta))
	return Repaint
}

func (t *Dragger) Release(_ *sprite.Layer, _ sprite.Point, params Params) Result {
	if t.temporary {
		params.Host.DropSelection()
		t.temporary = false
	} else {
		params.Host.SnapSelectionToGrid()
	}
	return RepaintAndSave
}

func (t *Dragger) Click(_ *sprite.Layer, _ sprite.Point, params Params) Result {
	if !params.Host.HasSelection() {
		return None
	}
	params.Host.DropSelection()
	return RepaintAndSave
}
