// Package editor ties the canvas, the tools and the undo history together.
//
// An Editor owns one spritesheet at a time and shows one sprite of it on
// the canvas. Pointer events arrive in screen coordinates, are converted to
// grid coordinates of the edited layer and dispatched to the active tool.
// When a hook returns a Result that needs saving, the editor records a
// snapshot in its bounded history.
//
// Switching sprites captures a transient snapshot that is recorded only
// once an edit follows, so browsing sprites never creates undo steps.
// Destructive commands record the pre-edit state first, so they can always
// be undone.
package editor
