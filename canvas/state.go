package canvas

import (
	"fmt"
	"image"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/blob"
)

// State is an immutable snapshot of a canvas. Pixel data is stored
// compressed.
type State struct {
	layers []*sprite.Layer
	pixels [][]byte

	hasSelection bool
	selection    []byte
	selSize      image.Point
	selOffset    sprite.FPoint
}

// Layers returns the number of layers captured.
func (s State) Layers() int { return len(s.layers) }

// HasSelection reports whether a selection floated when s was taken.
func (s State) HasSelection() bool { return s.hasSelection }

// State captures deep copies of every layer and the selection.
func (c *Canvas) State() (State, error) {
	s := State{
		layers: c.Layers(false),
		pixels: make([][]byte, len(c.layers)),
	}
	for i, l := range c.layers {
		b, err := blob.Pack(l.ARGB())
		if err != nil {
			return State{}, fmt.Errorf("canvas: pack layer %d: %w", i, err)
		}
		s.pixels[i] = b
	}
	if c.selection != nil {
		b, err := blob.Pack(c.selection.ARGB())
		if err != nil {
			return State{}, fmt.Errorf("canvas: pack selection: %w", err)
		}
		s.hasSelection = true
		s.selection = b
		s.selSize = c.selection.Size()
		s.selOffset = c.selOffset
	}
	return s, nil
}

// Restore writes s back into the layers it was taken from and restores the
// selection. Nothing changes if s cannot be decoded.
func (c *Canvas) Restore(s State) error {
	pixels := make([][]uint32, len(s.layers))
	for i, l := range s.layers {
		px, err := blob.Unpack(s.pixels[i], l.Width()*l.Height())
		if err != nil {
			return fmt.Errorf("canvas: restore layer %d: %w", i, err)
		}
		pixels[i] = px
	}
	var sel *sprite.Layer
	if s.hasSelection {
		px, err := blob.Unpack(s.selection, s.selSize.X*s.selSize.Y)
		if err != nil {
			return fmt.Errorf("canvas: restore selection: %w", err)
		}
		if sel, err = sprite.LayerFromARGB(px, s.selSize.X, s.selSize.Y); err != nil {
			return fmt.Errorf("canvas: restore selection: %w", err)
		}
	}

	for i, l := range s.layers {
		if err := l.SetARGB(pixels[i]); err != nil {
			return fmt.Errorf("canvas: restore layer %d: %w", i, err)
		}
	}
	c.layers = append(c.layers[:0], s.layers...)
	c.selection = sel
	c.selOffset = s.selOffset
	return nil
}
