package canvas

import (
	"github.com/gogpu/sprite"
)

// HasSelection reports whether a selection floats.
func (c *Canvas) HasSelection() bool { return c.selection != nil }

// Selection returns the floating layer, or nil.
func (c *Canvas) Selection() *sprite.Layer { return c.selection }

// SelectionOffset returns the selection origin in base grid units.
func (c *Canvas) SelectionOffset() sprite.FPoint { return c.selOffset }

// SetSelectionOffset moves the selection.
func (c *Canvas) SetSelectionOffset(off sprite.FPoint) { c.selOffset = off }

// SnapSelectionToGrid rounds the selection offset to whole cells.
func (c *Canvas) SnapSelectionToGrid() { c.selOffset = c.selOffset.Round().F() }

// Select lifts the visible pixels under mask (top layer coordinates) into
// the floating selection and erases them from the layer. A nil mask covers
// the whole layer. Transparent pixels are never lifted.
//
// When a selection already floats, the new selection grows to the bounding
// box of both and the old selection is composited over the newly lifted
// pixels.
func (c *Canvas) Select(mask *sprite.PixelMask) {
	top := c.Top(true)
	if top == nil {
		return
	}
	if mask == nil {
		mask = sprite.NewPixelMask(top.Width(), top.Height()).Invert()
	}

	var cur, origin sprite.Point
	w, h := top.Width(), top.Height()
	if c.selection != nil {
		cur = c.selOffset.Round()
		origin = cur.Min(sprite.Point{})
		w = max(w, cur.X+c.selection.Width()) - origin.X
		h = max(h, cur.Y+c.selection.Height()) - origin.Y
	}
	sel, err := sprite.NewLayer(w, h)
	if err != nil {
		sprite.Logger().Warn("select: bad selection size", "w", w, "h", h, "err", err)
		return
	}

	lifted := 0
	mask.ForEach(sprite.Point{}, func(p sprite.Point) {
		px := top.Pixel(p.X, p.Y)
		if px.A() == 0 {
			return
		}
		sel.SetPixel(p.X-origin.X, p.Y-origin.Y, px)
		top.SetPixel(p.X, p.Y, sprite.EraseColor)
		lifted++
	})
	if c.selection != nil {
		sel.DrawLayer(c.selection, cur.Sub(origin))
	}
	c.selection = sel
	c.selOffset = origin.F()
	sprite.Logger().Debug("select", "pixels", lifted, "size", sel.Size(), "offset", origin)
}

// EnsureSelection selects the whole top layer unless a selection floats.
func (c *Canvas) EnsureSelection() {
	if c.selection == nil {
		c.Select(nil)
	}
}

// DropSelection composites the selection onto the top layer at its
// rounded offset and clears it.
func (c *Canvas) DropSelection() {
	if c.selection == nil {
		return
	}
	if top := c.Top(true); top != nil {
		top.DrawLayer(c.selection, c.selOffset.Round())
	}
	c.selection = nil
	c.selOffset = sprite.FPoint{}
}

// DeleteSelection discards the selection without compositing it.
func (c *Canvas) DeleteSelection() {
	c.selection = nil
	c.selOffset = sprite.FPoint{}
}

// Copy stores a deep copy of the edited layer and its offset.
func (c *Canvas) Copy() {
	top := c.Top(false)
	if top == nil {
		return
	}
	c.clipboard = top.Clone()
	c.clipOffset = c.selOffset
}

// Cut copies, then deletes the selection or clears the top layer.
func (c *Canvas) Cut() {
	c.Copy()
	if c.selection != nil {
		c.DeleteSelection()
		return
	}
	if top := c.Top(true); top != nil {
		top.Clear()
	}
}

// CanPaste reports whether the clipboard holds anything.
func (c *Canvas) CanPaste() bool { return c.clipboard != nil }

// Paste floats the clipboard at its copy-time offset, or composites it into
// the existing selection at the same absolute position.
func (c *Canvas) Paste() error {
	if c.clipboard == nil {
		return ErrEmptyClipboard
	}
	if c.selection != nil {
		c.selection.DrawLayer(c.clipboard, c.clipOffset.Sub(c.selOffset).Round())
		return nil
	}
	c.selection = c.clipboard.Clone()
	c.selOffset = c.clipOffset
	return nil
}

// Rotate turns the selection (the whole layer when none floats) by
// quarterTurns clockwise turns; negative values turn counterclockwise. The
// alpha-weighted center of the selection stays in place.
func (c *Canvas) Rotate(quarterTurns int) {
	c.EnsureSelection()
	if c.selection == nil {
		return
	}
	quarterTurns %= 4
	before, okBefore := c.selection.MeanPixel()
	for ; quarterTurns > 0; quarterTurns-- {
		c.selection = c.selection.RotatedCW()
	}
	for ; quarterTurns < 0; quarterTurns++ {
		c.selection = c.selection.RotatedCCW()
	}
	after, okAfter := c.selection.MeanPixel()
	if okBefore && okAfter {
		c.selOffset = c.selOffset.Add(before.Sub(after))
	}
}

// Reflect mirrors the selection (the whole layer when none floats) top to
// bottom when upDown is set, else left to right.
func (c *Canvas) Reflect(upDown bool) {
	c.EnsureSelection()
	if c.selection == nil {
		return
	}
	if upDown {
		c.selection.ReflectUpDown()
	} else {
		c.selection.ReflectLeftRight()
	}
}
