// Package canvas manages the editable surface: a stack of layers, an
// optional floating selection, a clipboard and the viewport the surface is
// fitted into.
//
// While a selection floats, tools edit the selection layer instead of the
// top layer. Its offset from the base layer is kept in fractional grid units
// so drags move it smoothly; SnapSelectionToGrid rounds it.
//
// State captures deep copies of every layer for undo. Restoring writes the
// pixels back into the same layers, so a layer that is a view onto a
// spritesheet cell restores the sheet as well.
package canvas
