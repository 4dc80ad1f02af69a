package tool

import (
	"github.com/gogpu/sprite"
)

// Host is the editor side of the tool contract.
//
// Grid positions returned by ScreenToGrid refer to the base layer and
// ignore any floating selection.
type Host interface {
	HasSelection() bool
	// Select floats the pixels under mask (base layer coordinates); a nil
	// mask selects every visible pixel.
	Select(mask *sprite.PixelMask)
	DropSelection()
	SelectionOffset() sprite.FPoint
	SetSelectionOffset(off sprite.FPoint)
	SnapSelectionToGrid()

	// BaseLayer returns the top layer beneath any selection.
	BaseLayer() *sprite.Layer
	ScreenToGrid(p sprite.FPoint, roundDown bool) sprite.Point
	ScreenToGridF(p sprite.FPoint) sprite.FPoint

	PreviewColor() (sprite.Color, bool)
	SetPreviewColor(c sprite.Color)
	ClearPreviewColor()
	SetColor(c sprite.Color)

	AddOverlay(o Overlayer)
	RemoveOverlay(o Overlayer)
}

// Params carries the per-event inputs of a hook.
type Params struct {
	// Color is the current foreground color.
	Color sprite.Color
	// Screen is the raw pointer position.
	Screen sprite.FPoint
	Host   Host
}

// Tool is a stateful pointer-event handler.
type Tool interface {
	Settings() *Settings

	Enter(l *sprite.Layer, p sprite.Point, params Params) Result
	Move(l *sprite.Layer, p sprite.Point, params Params) Result
	Press(l *sprite.Layer, p sprite.Point, params Params) Result
	Drag(l *sprite.Layer, p sprite.Point, params Params) Result
	Release(l *sprite.Layer, p sprite.Point, params Params) Result
	Click(l *sprite.Layer, p sprite.Point, params Params) Result
	Exit(l *sprite.Layer, p sprite.Point, params Params) Result
}

// Outline colors.
var (
	ToolOutline         = sprite.RGB(0, 255, 0)
	PreselectionOutline = sprite.RGB(0, 255, 255)
)

// Overlay is a mask outline drawn over the canvas.
type Overlay struct {
	Mask sprite.BitMask
	// Offset places the mask origin in grid coordinates.
	Offset sprite.FPoint
	Color  sprite.Color
	// OnTarget means Offset is relative to the edited layer, which is the
	// floating selection when one exists. Otherwise it is relative to the
	// base layer.
	OnTarget bool
}

// Overlayer produces an overlay on demand.
type Overlayer interface {
	Overlay() (Overlay, bool)
}

// base provides no-op hooks and the settings accessor.
type base struct {
	settings Settings
}

func (b *base) Settings() *Settings { return &b.settings }

func (*base) Enter(*sprite.Layer, sprite.Point, Params) Result   { return None }
func (*base) Move(*sprite.Layer, sprite.Point, Params) Result    { return None }
func (*base) Press(*sprite.Layer, sprite.Point, Params) Result   { return None }
func (*base) Drag(*sprite.Layer, sprite.Point, Params) Result    { return None }
func (*base) Release(*sprite.Layer, sprite.Point, Params) Result { return None }
func (*base) Click(*sprite.Layer, sprite.Point, Params) Result   { return None }
func (*base) Exit(*sprite.Layer, sprite.Point, Params) Result    { return None }

// fade returns c with its alpha replaced by strength.
func fade(c sprite.Color, strength int) sprite.Color {
	return c.WithAlpha(uint8(min(max(strength, 0), 255)))
}
