// Package sprite provides the pixel core of a raster sprite editor.
//
// # Overview
//
// sprite models an editable image as a [Layer]: a rectangular grid of
// straight-alpha ARGB [Color] values. Layers may be views onto a shared pixel
// arena, so a [Spritesheet] cell or a cropped region edits the parent image
// in place. Regions are represented by [BitMask] values, most often a
// [PixelMask] produced by a flood search or a box selection.
//
// # Quick Start
//
//	sheet, _ := sprite.NewSpritesheet(image.Pt(16, 16), image.Pt(4, 1))
//	cell := sheet.CurrentSprite()
//	cell.SetPixelsInCircle(sprite.Pt(8, 8), 1.5, sprite.RGB(255, 0, 0))
//
//	// Flood-select the red disc and recolor it.
//	m := cell.FloodMatch(sprite.Pt(8, 8), 1, nil, sprite.StraightEqual)
//	cell.FillMask(sprite.Point{}, m, sprite.RGB(0, 0, 255))
//
// # Architecture
//
// The library is organized into:
//   - Public API: Color, Layer, Spritesheet, PixelMask, Matrix, ReduceColors
//   - tool: stateful pointer-driven editing tools
//   - canvas: floating selection, clipboard and snapshots
//   - history: bounded undo/redo log
//   - editor: the orchestrator tying tools, canvas and history together
//   - imageio, palette: persistence collaborators
//
// # Coordinates
//
// Grid coordinates are integers with the origin at the top-left, x growing
// right and y growing down. Out-of-bounds pixel reads return [Transparent]
// and out-of-bounds writes are ignored.
package sprite
