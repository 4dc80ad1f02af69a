package editor

import (
	"fmt"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/canvas"
)

// edit records the pre-edit state, applies fn and records the result.
func (e *Editor) edit(fn func()) {
	if !e.canvas.HasLayer() {
		return
	}
	e.checkpoint()
	fn()
	e.commit()
}

// Rotate turns the selection, or the whole layer, by quarter turns
// clockwise.
func (e *Editor) Rotate(quarterTurns int) {
	e.edit(func() { e.canvas.Rotate(quarterTurns) })
}

// Reflect mirrors the selection, or the whole layer.
func (e *Editor) Reflect(upDown bool) {
	e.edit(func() { e.canvas.Reflect(upDown) })
}

// SelectAll floats every visible pixel of the base layer, merging with an
// existing selection.
func (e *Editor) SelectAll() {
	e.edit(func() { e.canvas.Select(nil) })
}

// Drop merges the selection back into the base layer.
func (e *Editor) Drop() {
	if !e.canvas.HasSelection() {
		return
	}
	e.edit(e.canvas.DropSelection)
}

// DeleteSelection discards the selection and its pixels.
func (e *Editor) DeleteSelection() {
	if !e.canvas.HasSelection() {
		return
	}
	e.edit(e.canvas.DeleteSelection)
}

// Copy puts the selection, or the whole layer, on the clipboard.
func (e *Editor) Copy() {
	if e.canvas.HasLayer() {
		e.canvas.Copy()
	}
}

// Cut copies and then removes the selection or clears the layer.
func (e *Editor) Cut() {
	e.edit(e.canvas.Cut)
}

// Paste floats the clipboard contents.
func (e *Editor) Paste() error {
	if !e.canvas.CanPaste() {
		return fmt.Errorf("editor: paste: %w", canvas.ErrEmptyClipboard)
	}
	var err error
	e.edit(func() { err = e.canvas.Paste() })
	return err
}

// ClearSprite makes the shown sprite fully transparent.
func (e *Editor) ClearSprite() error {
	if e.sheet == nil {
		return ErrNoSheet
	}
	e.edit(e.sheet.CurrentSprite().Clear)
	return nil
}

// ReduceColors quantizes the shown layers to k colors. With selectionOnly
// just the floating selection is reduced.
func (e *Editor) ReduceColors(k int, metric sprite.Metric, selectionOnly bool) error {
	if !e.canvas.HasLayer() {
		return ErrNoSheet
	}
	layers := e.canvas.Layers(true)
	if selectionOnly {
		if !e.canvas.HasSelection() {
			return ErrNoSelection
		}
		layers = []*sprite.Layer{e.canvas.Selection()}
	}
	e.checkpoint()
	if err := sprite.ReduceColors(layers, k, metric); err != nil {
		return fmt.Errorf("editor: reduce colors: %w", err)
	}
	e.commit()
	e.log.Info("colors reduced", "k", k, "metric", metric, "layers", len(layers))
	return nil
}
