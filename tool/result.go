package tool

// Result tells the caller what follow-up work a hook requires.
type Result uint8

const (
	// None means the hook had no visible effect.
	None Result = 0
	// Repaint requests a visual refresh only.
	Repaint Result = 1 << 0
	// SaveState requests a history checkpoint without a repaint.
	SaveState Result = 1 << 1
	// RepaintAndSave requests both.
	RepaintAndSave = Repaint | SaveState
)

// NeedsRepaint reports whether the surface must be redrawn.
func (r Result) NeedsRepaint() bool { return r&Repaint != 0 }

// NeedsSave reports whether a history checkpoint must be recorded.
func (r Result) NeedsSave() bool { return r&SaveState != 0 }

// Or combines two results.
func (r Result) Or(other Result) Result { return r | other }

// String returns the result name.
func (r Result) String() string {
	switch r {
	case None:
		return "None"
	case Repaint:
		return "Repaint"
	case SaveState:
		return "SaveState"
	case RepaintAndSave:
		return "RepaintAndSave"
	default:
		return "Unknown"
	}
}
