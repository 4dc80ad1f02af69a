package tool

import (
	"testing"

	"github.com/gogpu/sprite"
)

// fakeHost is a Host whose screen coordinates equal base grid coordinates.
type fakeHost struct {
	base     *sprite.Layer
	selected bool
	selMask  *sprite.PixelMask
	selects  int
	drops    int
	snaps    int
	offset   sprite.FPoint

	preview    sprite.Color
	hasPreview bool
	color      sprite.Color

	overlays []Overlayer
}

func newFakeHost(t *testing.T, w, h int) *fakeHost {
	t.Helper()
	l, err := sprite.NewLayer(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return &fakeHost{base: l}
}

func (h *fakeHost) HasSelection() bool { return h.selected }

func (h *fakeHost) Select(mask *sprite.PixelMask) {
	h.selected = true
	h.selMask = mask
	h.selects++
}

func (h *fakeHost) DropSelection() {
	h.selected = false
	h.offset = sprite.FPoint{}
	h.drops++
}

func (h *fakeHost) SelectionOffset() sprite.FPoint       { return h.offset }
func (h *fakeHost) SetSelectionOffset(off sprite.FPoint) { h.offset = off }

func (h *fakeHost) SnapSelectionToGrid() {
	h.offset = h.offset.Round().F()
	h.snaps++
}

func (h *fakeHost) BaseLayer() *sprite.Layer { return h.base }

func (h *fakeHost) ScreenToGrid(p sprite.FPoint, roundDown bool) sprite.Point {
	if roundDown {
		return p.Floor()
	}
	return p.Round()
}

func (h *fakeHost) ScreenToGridF(p sprite.FPoint) sprite.FPoint { return p }

func (h *fakeHost) PreviewColor() (sprite.Color, bool) { return h.preview, h.hasPreview }

func (h *fakeHost) SetPreviewColor(c sprite.Color) { h.preview, h.hasPreview = c, true }
func (h *fakeHost) ClearPreviewColor()             { h.preview, h.hasPreview = 0, false }
func (h *fakeHost) SetColor(c sprite.Color)        { h.color = c }

func (h *fakeHost) AddOverlay(o Overlayer) { h.overlays = append(h.overlays, o) }

func (h *fakeHost) RemoveOverlay(o Overlayer) {
	for i, x := range h.overlays {
		if x == o {
			h.overlays = append(h.overlays[:i], h.overlays[i+1:]...)
			return
		}
	}
}

// params builds hook params for a grid position, which is also the screen
// position for fakeHost.
func (h *fakeHost) params(c sprite.Color, p sprite.Point) Params {
	return Params{Color: c, Screen: p.F(), Host: h}
}
