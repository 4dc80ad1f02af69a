package editor

import (
	"slices"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/tool"
)

type hook func(t tool.Tool, l *sprite.Layer, p sprite.Point, params tool.Params) tool.Result

// Enter forwards a pointer-enter event to the active tool.
func (e *Editor) Enter(screen sprite.FPoint) tool.Result { return e.dispatch(screen, tool.Tool.Enter) }

// Move forwards a hover event.
func (e *Editor) Move(screen sprite.FPoint) tool.Result { return e.dispatch(screen, tool.Tool.Move) }

// Press forwards a button-press event.
func (e *Editor) Press(screen sprite.FPoint) tool.Result {
	if e.transient == nil && e.history.Len() == 0 {
		e.checkpoint()
	}
	return e.dispatch(screen, tool.Tool.Press)
}

// Drag forwards a motion event with the button held.
func (e *Editor) Drag(screen sprite.FPoint) tool.Result { return e.dispatch(screen, tool.Tool.Drag) }

// Release forwards a button-release event.
func (e *Editor) Release(screen sprite.FPoint) tool.Result {
	return e.dispatch(screen, tool.Tool.Release)
}

// Click forwards a click event.
func (e *Editor) Click(screen sprite.FPoint) tool.Result { return e.dispatch(screen, tool.Tool.Click) }

// Exit forwards a pointer-exit event.
func (e *Editor) Exit(screen sprite.FPoint) tool.Result { return e.dispatch(screen, tool.Tool.Exit) }

// dispatch calls h on the active tool with the edited layer and the grid
// cell under screen, then records the state if the tool asks for it.
func (e *Editor) dispatch(screen sprite.FPoint, h hook) tool.Result {
	t := e.tools.Active()
	l := e.canvas.Top(false)
	if t == nil || l == nil {
		return tool.None
	}
	p := e.canvas.ScreenToGrid(screen, true, false)
	res := h(t, l, p, tool.Params{Color: e.color, Screen: screen, Host: e.host})
	if res.NeedsSave() {
		e.commit()
	}
	return res
}

// host adapts the editor to tool.Host.
type host struct {
	e *Editor
}

var _ tool.Host = (*host)(nil)

func (h *host) HasSelection() bool             { return h.e.canvas.HasSelection() }
func (h *host) Select(mask *sprite.PixelMask)  { h.e.canvas.Select(mask) }
func (h *host) DropSelection()                 { h.e.canvas.DropSelection() }
func (h *host) SelectionOffset() sprite.FPoint { return h.e.canvas.SelectionOffset() }
func (h *host) SnapSelectionToGrid()           { h.e.canvas.SnapSelectionToGrid() }
func (h *host) BaseLayer() *sprite.Layer       { return h.e.canvas.Top(true) }

func (h *host) SetSelectionOffset(off sprite.FPoint) { h.e.canvas.SetSelectionOffset(off) }

func (h *host) ScreenToGrid(p sprite.FPoint, roundDown bool) sprite.Point {
	return h.e.canvas.ScreenToGrid(p, roundDown, true)
}

func (h *host) ScreenToGridF(p sprite.FPoint) sprite.FPoint { return h.e.canvas.ScreenToGridF(p) }

func (h *host) PreviewColor() (sprite.Color, bool) { return h.e.PreviewColor() }

func (h *host) SetPreviewColor(c sprite.Color) {
	h.e.preview, h.e.hasPreview = c, true
}

func (h *host) ClearPreviewColor() {
	h.e.preview, h.e.hasPreview = sprite.Transparent, false
}

func (h *host) SetColor(c sprite.Color) { h.e.SetColor(c) }

func (h *host) AddOverlay(o tool.Overlayer) {
	if !slices.Contains(h.e.overlays, o) {
		h.e.overlays = append(h.e.overlays, o)
	}
}

func (h *host) RemoveOverlay(o tool.Overlayer) {
	h.e.overlays = slices.DeleteFunc(h.e.overlays, func(x tool.Overlayer) bool { return x == o })
}
