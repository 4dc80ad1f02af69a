package editor

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/canvas"
	"github.com/gogpu/sprite/history"
	"github.com/gogpu/sprite/tool"
)

var (
	// ErrNoSheet is returned by sheet operations before a sheet is open.
	ErrNoSheet = errors.New("editor: no spritesheet open")
	// ErrNoSelection is returned when an operation needs a floating selection.
	ErrNoSelection = errors.New("editor: no selection")
)

// Snapshot is one entry of the undo history.
type Snapshot struct {
	Canvas canvas.State
	Sheet     *sprite.Spritesheet
	Sprite    sprite.Point
	SpriteDim image.Point
	// Transient marks a snapshot taken on a focus change rather than after
	// an edit.
	Transient bool
}

// Editor is the editing session. It is not safe for concurrent use.
type Editor struct {
	log     *slog.Logger
	canvas  *canvas.Canvas
	tools   *tool.Registry
	history *history.Log[Snapshot]
	host    *host

	sheet     *sprite.Spritesheet
	transient *Snapshot

	color      sprite.Color
	preview    sprite.Color
	hasPreview bool
	overlays   []tool.Overlayer

	player *Player
}

// New creates an editor with no sheet open.
func New(opts ...Option) *Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = sprite.Logger()
	}
	if o.tools == nil {
		o.tools = tool.NewRegistry()
	}

	e := &Editor{
		log:     o.logger,
		canvas:  canvas.New(canvas.WithViewport(o.viewport)),
		tools:   o.tools,
		history: history.New[Snapshot](o.historyLimit),
		color:   sprite.Black,
		player:  NewPlayer(o.fps),
	}
	e.host = &host{e: e}
	return e
}

// Canvas returns the editing surface.
func (e *Editor) Canvas() *canvas.Canvas { return e.canvas }

// Tools returns the tool registry.
func (e *Editor) Tools() *tool.Registry { return e.tools }

// Player returns the animation player.
func (e *Editor) Player() *Player { return e.player }

// SetViewport resizes the canvas area.
func (e *Editor) SetViewport(r image.Rectangle) { e.canvas.SetViewport(r) }

// NewSheet creates and opens a blank sheet of cells sprites.
func (e *Editor) NewSheet(spriteDim, cells image.Point) (*sprite.Spritesheet, error) {
	s, err := sprite.NewSpritesheet(spriteDim, cells)
	if err != nil {
		return nil, fmt.Errorf("editor: new sheet: %w", err)
	}
	e.OpenSheet(s)
	return s, nil
}

// OpenSheet makes s the edited sheet and shows its active sprite.
func (e *Editor) OpenSheet(s *sprite.Spritesheet) {
	e.sheet = s
	e.log.Info("sheet opened", "name", s.Name(), "size", s.Size(), "sprite", s.SpriteDim())
	e.viewSprite(s.CurrentSprite())
}

// Sheet returns the edited sheet, or nil.
func (e *Editor) Sheet() *sprite.Spritesheet { return e.sheet }

// ViewSprite shows the sprite at index.
func (e *Editor) ViewSprite(index sprite.Point) error {
	if e.sheet == nil {
		return ErrNoSheet
	}
	if err := e.sheet.SetActiveIndex(index); err != nil {
		return fmt.Errorf("editor: view sprite: %w", err)
	}
	e.viewSprite(e.sheet.CurrentSprite())
	return nil
}

// NextSprite shows the following sprite, wrapping around.
func (e *Editor) NextSprite() { e.moveSprite(1) }

// PrevSprite shows the preceding sprite, wrapping around.
func (e *Editor) PrevSprite() { e.moveSprite(-1) }

func (e *Editor) moveSprite(n int) {
	if e.sheet == nil {
		return
	}
	e.viewSprite(e.sheet.MoveRelative(n))
}

// SetSpriteDim changes the sheet's sprite size and shows the active sprite.
// d is clamped to [1, sheet size] on each axis.
func (e *Editor) SetSpriteDim(d image.Point) error {
	if e.sheet == nil {
		return ErrNoSheet
	}
	size := e.sheet.Size()
	d = image.Pt(min(max(d.X, 1), size.X), min(max(d.Y, 1), size.Y))
	if err := e.sheet.SetSpriteDim(d); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	e.viewSprite(e.sheet.CurrentSprite())
	return nil
}

// viewSprite puts l on the canvas and captures the transient snapshot.
func (e *Editor) viewSprite(l *sprite.Layer) {
	e.canvas.SetLayer(l)
	s, err := e.snapshot(true)
	if err != nil {
		e.log.Warn("transient snapshot failed", "err", err)
		e.transient = nil
		return
	}
	e.transient = &s
}

func (e *Editor) snapshot(transient bool) (Snapshot, error) {
	cs, err := e.canvas.State()
	if err != nil {
		return Snapshot{}, err
	}
	s := Snapshot{Canvas: cs, Sheet: e.sheet, Transient: transient}
	if e.sheet != nil {
		s.Sprite = e.sheet.ActiveIndex()
		s.SpriteDim = e.sheet.SpriteDim()
	}
	return s, nil
}

// SaveState records the current state in the history, preceded by the
// pending transient snapshot if there is one.
func (e *Editor) SaveState() error {
	if e.transient != nil {
		e.history.Save(*e.transient)
		e.transient = nil
	}
	s, err := e.snapshot(false)
	if err != nil {
		return fmt.Errorf("editor: save state: %w", err)
	}
	e.history.Save(s)
	e.log.Debug("state saved", "entries", e.history.Len())
	return nil
}

// checkpoint makes sure the state before an edit is in the history.
func (e *Editor) checkpoint() {
	switch {
	case e.transient != nil:
		e.history.Save(*e.transient)
		e.transient = nil
	case e.history.Len() == 0 && e.canvas.HasLayer():
		if s, err := e.snapshot(false); err == nil {
			e.history.Save(s)
		}
	}
}

// commit records the state after an edit, logging failures.
func (e *Editor) commit() {
	if err := e.SaveState(); err != nil {
		e.log.Error("commit failed", "err", err)
	}
}

// CanUndo reports whether Undo would change anything.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would change anything.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Undo restores the previous snapshot. A pending transient snapshot is
// discarded.
func (e *Editor) Undo() bool {
	s, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.transient = nil
	e.restore(s)
	return true
}

// Redo restores the next snapshot.
func (e *Editor) Redo() bool {
	s, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.transient = nil
	e.restore(s)
	return true
}

func (e *Editor) restore(s Snapshot) {
	if err := e.canvas.Restore(s.Canvas); err != nil {
		e.log.Error("restore failed", "err", err)
		return
	}
	e.sheet = s.Sheet
	if e.sheet != nil {
		if s.SpriteDim != e.sheet.SpriteDim() {
			if err := e.sheet.SetSpriteDim(s.SpriteDim); err != nil {
				e.log.Warn("restored sprite size invalid", "dim", s.SpriteDim, "err", err)
			}
		}
		if err := e.sheet.SetActiveIndex(s.Sprite); err != nil {
			e.log.Warn("restored sprite index invalid", "index", s.Sprite, "err", err)
		}
	}
	e.log.Debug("state restored", "sprite", s.Sprite, "transient", s.Transient)
}

// Color returns the foreground color.
func (e *Editor) Color() sprite.Color { return e.color }

// SetColor sets the foreground color.
func (e *Editor) SetColor(c sprite.Color) { e.color = c }

// PreviewColor returns the palette preview, if one is showing.
func (e *Editor) PreviewColor() (sprite.Color, bool) { return e.preview, e.hasPreview }
