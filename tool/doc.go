// Package tool implements the pointer-driven editing tools.
//
// A Tool is a stateful object with seven lifecycle hooks: Enter, Move,
// Press, Drag, Release, Click and Exit. Every hook receives the layer being
// edited (the floating selection when one exists), the pointer position in
// that layer's grid coordinates and a Params bundle, and returns a Result
// telling the caller whether to repaint and whether to record a history
// checkpoint.
//
// A stroke is one Press, any number of Drags and a Release. Paint tools
// return SaveState on Release so each stroke becomes a single undo step.
//
// Tools reach the surrounding editor only through the Host interface:
// selection changes, the palette preview color and overlays to render.
//
//	reg := tool.NewRegistry()
//	_ = reg.Select(tool.IDMarker)
//	res := reg.Active().Press(layer, sprite.Pt(8, 8), params)
//	if res.NeedsSave() {
//		// push a snapshot
//	}
package tool
