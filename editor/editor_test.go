package editor

import (
	"errors"
	"image"
	"io"
	"log/slog"
	"testing"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/tool"
)

var red = sprite.RGB(255, 0, 0)

// newEditor opens a sheet of 8x8 sprites shown at 10 screen pixels per cell.
func newEditor(t *testing.T, cells image.Point) *Editor {
	t.Helper()
	e := New(
		WithViewport(image.Rect(0, 0, 80, 80)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if _, err := e.NewSheet(image.Pt(8, 8), cells); err != nil {
		t.Fatalf("NewSheet() error = %v", err)
	}
	return e
}

// at returns the screen position of the centre of grid cell (x, y).
func at(x, y int) sprite.FPoint {
	return sprite.FPt(float64(x*10+5), float64(y*10+5))
}

func click(e *Editor, x, y int) {
	e.Press(at(x, y))
	e.Release(at(x, y))
}

func TestEditor_PencilUndoRedo(t *testing.T) {
	e := newEditor(t, image.Pt(2, 1))
	e.SetColor(red)

	if res := e.Press(at(2, 3)); !res.NeedsRepaint() {
		t.Errorf("Press() = %v, want a repaint", res)
	}
	if res := e.Release(at(2, 3)); !res.NeedsSave() {
		t.Errorf("Release() = %v, want a save", res)
	}
	if got := e.Sheet().Pixel(2, 3); got != red {
		t.Fatalf("sheet pixel = %v, want %v", got, red)
	}
	if !e.CanUndo() || e.CanRedo() {
		t.Fatalf("CanUndo() = %v, CanRedo() = %v after one stroke", e.CanUndo(), e.CanRedo())
	}

	if !e.Undo() {
		t.Fatal("Undo() = false")
	}
	if got := e.Sheet().Pixel(2, 3); got != sprite.Transparent {
		t.Errorf("after undo pixel = %v, want transparent", got)
	}
	if e.CanUndo() {
		t.Error("undo past the initial state should not be possible")
	}

	if !e.Redo() {
		t.Fatal("Redo() = false")
	}
	if got := e.Sheet().Pixel(2, 3); got != red {
		t.Errorf("after redo pixel = %v, want %v", got, red)
	}
}

func TestEditor_BrowsingCreatesNoUndoSteps(t *testing.T) {
	e := newEditor(t, image.Pt(3, 1))
	e.NextSprite()
	e.NextSprite()
	e.PrevSprite()
	if err := e.ViewSprite(sprite.Pt(2, 0)); err != nil {
		t.Fatalf("ViewSprite() error = %v", err)
	}
	if e.CanUndo() || e.history.Len() != 0 {
		t.Errorf("history has %d entries after browsing", e.history.Len())
	}
	if err := e.ViewSprite(sprite.Pt(3, 0)); !errors.Is(err, sprite.ErrOutOfBounds) {
		t.Errorf("ViewSprite(outside) error = %v, want ErrOutOfBounds", err)
	}
}

func TestEditor_UndoAcrossSprites(t *testing.T) {
	e := newEditor(t, image.Pt(2, 1))
	e.SetColor(red)

	click(e, 1, 1) // sprite (0,0)
	e.NextSprite()
	click(e, 4, 4) // sprite (1,0)

	sheet := e.Sheet()
	if sheet.Pixel(1, 1) != red || sheet.Pixel(12, 4) != red {
		t.Fatal("strokes did not land in their sprites")
	}

	e.Undo()
	if sheet.Pixel(12, 4) != sprite.Transparent {
		t.Error("undo did not revert the second sprite")
	}
	if sheet.ActiveIndex() != sprite.Pt(1, 0) {
		t.Errorf("ActiveIndex() = %v, want (1,0)", sheet.ActiveIndex())
	}

	e.Undo()
	if sheet.ActiveIndex() != sprite.Pt(0, 0) {
		t.Errorf("ActiveIndex() = %v, want (0,0)", sheet.ActiveIndex())
	}
	if sheet.Pixel(1, 1) != red {
		t.Error("first stroke lost")
	}

	e.Undo()
	if sheet.Pixel(1, 1) != sprite.Transparent {
		t.Error("undo did not revert the first sprite")
	}
	if e.CanUndo() {
		t.Error("CanUndo() = true at the initial state")
	}

	e.Redo()
	e.Redo()
	e.Redo()
	if sheet.Pixel(1, 1) != red || sheet.Pixel(12, 4) != red {
		t.Error("redo did not restore both strokes")
	}
	if sheet.ActiveIndex() != sprite.Pt(1, 0) {
		t.Errorf("ActiveIndex() = %v after redo, want (1,0)", sheet.ActiveIndex())
	}
}

func TestEditor_EditAfterUndoDropsRedo(t *testing.T) {
	e := newEditor(t, image.Pt(1, 1))
	e.SetColor(red)
	click(e, 0, 0)
	click(e, 1, 0)
	e.Undo()
	if !e.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}
	click(e, 2, 0)
	if e.CanRedo() {
		t.Error("a new edit should discard the redo branch")
	}
	if e.Sheet().Pixel(1, 0) != sprite.Transparent || e.Sheet().Pixel(2, 0) != red {
		t.Error("unexpected pixels after branching")
	}
}

func TestEditor_DestructiveCommands(t *testing.T) {
	tests := []struct {
		name  string
		run   func(e *Editor) error
		check func(t *testing.T, l *sprite.Layer)
	}{
		{
			name: "reflect and drop",
			run: func(e *Editor) error {
				e.Reflect(false)
				e.Drop()
				return nil
			},
			check: func(t *testing.T, l *sprite.Layer) {
				if l.Pixel(7, 1) != red || l.Pixel(0, 1).A() != 0 {
					t.Error("pixel not mirrored left to right")
				}
			},
		},
		{
			name: "rotate floats the layer",
			run:  func(e *Editor) error { e.Rotate(1); return nil },
			check: func(t *testing.T, l *sprite.Layer) {
				if l.HasVisibleContent() {
					t.Error("rotated pixels should float above the base layer")
				}
			},
		},
		{
			name: "clear sprite",
			run:  (*Editor).ClearSprite,
			check: func(t *testing.T, l *sprite.Layer) {
				if l.HasVisibleContent() {
					t.Error("sprite not cleared")
				}
			},
		},
		{
			name: "cut",
			run:  func(e *Editor) error { e.Cut(); return nil },
			check: func(t *testing.T, l *sprite.Layer) {
				if l.HasVisibleContent() {
					t.Error("cut did not clear the layer")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithViewport(image.Rect(0, 0, 80, 80)))
			s, err := sprite.NewSpritesheet(image.Pt(8, 8), image.Pt(1, 1))
			if err != nil {
				t.Fatal(err)
			}
			s.SetPixel(0, 1, red)
			before := s.Clone()
			e.OpenSheet(s)

			if err := tt.run(e); err != nil {
				t.Fatal(err)
			}
			tt.check(t, s.CurrentSprite())

			for e.CanUndo() {
				e.Undo()
			}
			if !s.Equal(before) {
				t.Error("undo did not restore the original sheet")
			}
			if e.Canvas().HasSelection() {
				t.Error("selection survived undo to the initial state")
			}
		})
	}
}

func TestEditor_CopyPaste(t *testing.T) {
	e := newEditor(t, image.Pt(1, 1))
	if err := e.Paste(); err == nil {
		t.Error("Paste() with an empty clipboard should fail")
	}
	e.Sheet().SetPixel(3, 3, red)
	e.Copy()
	if e.CanUndo() {
		t.Error("Copy() should not create an undo step")
	}
	if err := e.Paste(); err != nil {
		t.Fatalf("Paste() error = %v", err)
	}
	if !e.Canvas().HasSelection() {
		t.Fatal("paste did not float the clipboard")
	}
	e.Drop()
	if e.Sheet().Pixel(3, 3) != red {
		t.Error("dropped paste lost the pixel")
	}
}

func TestEditor_ReduceColors(t *testing.T) {
	e := newEditor(t, image.Pt(1, 1))
	sheet := e.Sheet()
	sheet.SetPixel(0, 0, sprite.RGB(250, 0, 0))
	sheet.SetPixel(1, 0, sprite.RGB(240, 0, 0))
	sheet.SetPixel(2, 0, sprite.RGB(0, 0, 250))

	if err := e.ReduceColors(2, sprite.MetricRGB, true); !errors.Is(err, ErrNoSelection) {
		t.Errorf("selection-only error = %v, want ErrNoSelection", err)
	}
	if err := e.ReduceColors(9, sprite.MetricRGB, false); !errors.Is(err, sprite.ErrTooFewColors) {
		t.Errorf("k too large error = %v, want ErrTooFewColors", err)
	}
	if err := e.ReduceColors(2, sprite.MetricRGB, false); err != nil {
		t.Fatalf("ReduceColors() error = %v", err)
	}
	if sheet.Pixel(0, 0) != sheet.Pixel(1, 0) {
		t.Error("the two reds were not merged")
	}
	if !e.CanUndo() {
		t.Error("reduction should be undoable")
	}
}

func TestEditor_DraggerMovesLayer(t *testing.T) {
	e := newEditor(t, image.Pt(1, 1))
	e.Sheet().SetPixel(1, 1, red)
	if err := e.ViewSprite(sprite.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := e.Tools().Select(tool.IDDragger); err != nil {
		t.Fatal(err)
	}

	e.Press(at(1, 1))
	e.Drag(at(3, 1))
	if res := e.Release(at(3, 1)); !res.NeedsSave() {
		t.Errorf("Release() = %v, want a save", res)
	}
	if e.Canvas().HasSelection() {
		t.Error("temporary selection was not dropped")
	}
	if e.Sheet().Pixel(3, 1) != red || e.Sheet().Pixel(1, 1).A() != 0 {
		t.Error("layer not moved two cells right")
	}
	e.Undo()
	if e.Sheet().Pixel(1, 1) != red {
		t.Error("undo did not move the pixel back")
	}
}

func TestEditor_PaintIntoSelection(t *testing.T) {
	e := newEditor(t, image.Pt(1, 1))
	e.Sheet().SetPixel(0, 0, sprite.White)
	e.SelectAll()
	e.SetColor(red)
	click(e, 2, 2)
	if e.Sheet().Pixel(2, 2) != sprite.Transparent {
		t.Error("stroke should land in the floating selection")
	}
	e.Drop()
	if e.Sheet().Pixel(2, 2) != red {
		t.Error("dropped selection lost the stroke")
	}
}

func TestEditor_Eyedropper(t *testing.T) {
	e := newEditor(t, image.Pt(1, 1))
	e.Sheet().SetPixel(4, 4, red)
	if err := e.Tools().Select(tool.IDEyedropper); err != nil {
		t.Fatal(err)
	}
	e.Enter(at(4, 4))
	e.Move(at(4, 4))
	if c, ok := e.PreviewColor(); !ok || c != red {
		t.Errorf("PreviewColor() = %v, %v; want %v", c, ok, red)
	}
	click(e, 4, 4)
	if e.Color() != red {
		t.Errorf("Color() = %v, want %v", e.Color(), red)
	}
	if e.CanUndo() {
		t.Error("picking a color should not create an undo step")
	}
}

func TestEditor_OverlaysAndRender(t *testing.T) {
	e := newEditor(t, image.Pt(1, 1))
	e.Enter(at(2, 2))
	ovs := e.Overlays()
	if len(ovs) != 1 || !ovs[0].OnTarget {
		t.Fatalf("Overlays() = %+v, want one target overlay", ovs)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, 80, 80))
	e.Render(dst)
	if got := sprite.FromColor(dst.At(20, 20)); got != tool.ToolOutline {
		t.Errorf("cursor outline pixel = %v, want %v", got, tool.ToolOutline)
	}

	e.Exit(at(2, 2))
	if len(e.Overlays()) != 0 {
		t.Error("Exit() left the overlay registered")
	}
}

func TestEditor_SetSpriteDim(t *testing.T) {
	e := newEditor(t, image.Pt(2, 2))
	if err := e.SetSpriteDim(image.Pt(0, 100)); err != nil {
		t.Fatalf("SetSpriteDim() error = %v", err)
	}
	if got := e.Sheet().SpriteDim(); got != image.Pt(1, 16) {
		t.Errorf("SpriteDim() = %v, want clamped 1x16", got)
	}
	if got := e.Canvas().Top(true).Size(); got != image.Pt(1, 16) {
		t.Errorf("shown sprite size = %v, want 1x16", got)
	}
	if err := e.SetSpriteDim(image.Pt(5, 5)); !errors.Is(err, sprite.ErrSpriteDim) {
		t.Errorf("non-tiling error = %v, want ErrSpriteDim", err)
	}
}

func TestEditor_UndoRestoresSpriteDim(t *testing.T) {
	e := newEditor(t, image.Pt(2, 1))
	e.SetColor(red)
	click(e, 1, 1)

	if err := e.SetSpriteDim(image.Pt(16, 8)); err != nil {
		t.Fatalf("SetSpriteDim() error = %v", err)
	}
	if err := e.SaveState(); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	consistent := func(want image.Point) {
		t.Helper()
		if got := e.Sheet().SpriteDim(); got != want {
			t.Errorf("SpriteDim() = %v, want %v", got, want)
		}
		if got := e.Canvas().Top(true).Size(); got != e.Sheet().SpriteDim() {
			t.Errorf("shown sprite size = %v, sheet sprite size = %v", got, e.Sheet().SpriteDim())
		}
	}

	e.Undo()
	e.Undo()
	consistent(image.Pt(8, 8))
	if e.Sheet().Len() != 2 {
		t.Errorf("Len() = %d after undo, want 2", e.Sheet().Len())
	}
	if got := e.Sheet().Pixel(1, 1); got != red {
		t.Errorf("stroke pixel = %v, want %v", got, red)
	}

	e.Redo()
	e.Redo()
	consistent(image.Pt(16, 8))
}

func TestEditor_NoSheet(t *testing.T) {
	e := New()
	if err := e.ViewSprite(sprite.Pt(0, 0)); !errors.Is(err, ErrNoSheet) {
		t.Errorf("ViewSprite() error = %v, want ErrNoSheet", err)
	}
	if err := e.ClearSprite(); !errors.Is(err, ErrNoSheet) {
		t.Errorf("ClearSprite() error = %v, want ErrNoSheet", err)
	}
	if res := e.Press(at(0, 0)); res != tool.None {
		t.Errorf("Press() without a layer = %v, want None", res)
	}
	e.Rotate(1)
	if e.CanUndo() {
		t.Error("commands without a layer should not touch the history")
	}
}

func TestEditor_HistoryLimit(t *testing.T) {
	e := New(WithViewport(image.Rect(0, 0, 80, 80)), WithHistoryLimit(3))
	if _, err := e.NewSheet(image.Pt(8, 8), image.Pt(1, 1)); err != nil {
		t.Fatal(err)
	}
	for x := range 6 {
		click(e, x, 0)
	}
	undos := 0
	for e.Undo() {
		undos++
	}
	if undos != 2 {
		t.Errorf("undos = %d, want 2 with a limit of 3", undos)
	}
}
