package sprite

import (
	"fmt"
	"image"
	"iter"
)

// DefaultSheetName is the name of a sheet that has never been saved.
const DefaultSheetName = "unnamed"

// Spritesheet is a Layer divided into a regular grid of equally sized cells
// (sprites), one of which is active at a time. Cell layers returned by
// Sprite, CurrentSprite and All are views: editing a sprite edits the sheet.
type Spritesheet struct {
	*Layer

	name      string
	spriteDim image.Point
	active    Point
}

// NewSpritesheet creates a transparent sheet of cells x spriteDim pixels.
func NewSpritesheet(spriteDim, cells image.Point) (*Spritesheet, error) {
	if spriteDim.X < 1 || spriteDim.Y < 1 || cells.X < 1 || cells.Y < 1 {
		return nil, fmt.Errorf("%w: sprite %v, cells %v", ErrInvalidDimensions, spriteDim, cells)
	}
	l, err := NewLayer(spriteDim.X*cells.X, spriteDim.Y*cells.Y)
	if err != nil {
		return nil, err
	}
	s := &Spritesheet{Layer: l, name: DefaultSheetName}
	if err := s.SetSpriteDim(spriteDim); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSpritesheetFromLayer wraps an existing layer. A zero spriteDim means
// "recover it": the signature pixel is used when present and valid,
// otherwise the whole layer is a single sprite.
func NewSpritesheetFromLayer(l *Layer, name string, spriteDim image.Point) (*Spritesheet, error) {
	if name == "" {
		name = DefaultSheetName
	}
	s := &Spritesheet{Layer: l, name: name}
	if spriteDim == (image.Point{}) {
		spriteDim = l.Size()
		if d, ok := ReadSignature(l); ok && tiles(l.Size(), d) {
			spriteDim = d
		}
	}
	if err := s.SetSpriteDim(spriteDim); err != nil {
		return nil, err
	}
	return s, nil
}

func tiles(sheet, cell image.Point) bool {
	return cell.X >= 1 && cell.Y >= 1 &&
		cell.X <= sheet.X && cell.Y <= sheet.Y &&
		sheet.X%cell.X == 0 && sheet.Y%cell.Y == 0
}

// Name returns the sheet name.
func (s *Spritesheet) Name() string { return s.name }

// SetName renames the sheet.
func (s *Spritesheet) SetName(name string) { s.name = name }

// SpriteDim returns the size of one cell in pixels.
func (s *Spritesheet) SpriteDim() image.Point { return s.spriteDim }

// SetSpriteDim changes the cell size. d must evenly tile the sheet; on
// failure nothing changes. The active index is clamped into the new grid and
// the dimension is recorded in the signature pixel.
func (s *Spritesheet) SetSpriteDim(d image.Point) error {
	if !tiles(s.Size(), d) {
		return fmt.Errorf("%w: %v on a %v sheet", ErrSpriteDim, d, s.Size())
	}
	s.spriteDim = d
	g := s.GridSize()
	s.active = Point{X: min(s.active.X, g.X-1), Y: min(s.active.Y, g.Y-1)}
	if !WriteSignature(s.Layer, d) {
		Logger().Warn("sprite size not recorded", "sheet", s.name, "dim", d)
	}
	return nil
}

// GridSize returns how many cells the sheet holds along each axis.
func (s *Spritesheet) GridSize() image.Point {
	return image.Pt(s.Width()/s.spriteDim.X, s.Height()/s.spriteDim.Y)
}

// Len returns the number of cells.
func (s *Spritesheet) Len() int {
	g := s.GridSize()
	return g.X * g.Y
}

// ValidIndex reports whether index addresses a cell.
func (s *Spritesheet) ValidIndex(index Point) bool {
	g := s.GridSize()
	return index.X >= 0 && index.Y >= 0 && index.X < g.X && index.Y < g.Y
}

// SpriteBounds returns the pixel rectangle of the cell at index.
func (s *Spritesheet) SpriteBounds(index Point) image.Rectangle {
	origin := image.Pt(index.X*s.spriteDim.X, index.Y*s.spriteDim.Y)
	return image.Rectangle{Min: origin, Max: origin.Add(s.spriteDim)}
}

// Sprite returns a view of the cell at index.
func (s *Spritesheet) Sprite(index Point) (*Layer, error) {
	if !s.ValidIndex(index) {
		return nil, fmt.Errorf("%w: sprite %v of %v", ErrOutOfBounds, index, s.GridSize())
	}
	return s.SubLayer(s.SpriteBounds(index))
}

// ActiveIndex returns the grid position of the active cell.
func (s *Spritesheet) ActiveIndex() Point { return s.active }

// SetActiveIndex makes the cell at index active.
func (s *Spritesheet) SetActiveIndex(index Point) error {
	if !s.ValidIndex(index) {
		return fmt.Errorf("%w: sprite %v of %v", ErrOutOfBounds, index, s.GridSize())
	}
	s.active = index
	return nil
}

// CurrentSprite returns a view of the active cell.
func (s *Spritesheet) CurrentSprite() *Layer {
	l, err := s.Sprite(s.active)
	if err != nil {
		panic(err) // unreachable: active is clamped into the grid
	}
	return l
}

// MoveRelative activates the cell n places after the active one in
// row-major order, wrapping across rows and around the sheet, and returns it.
// Negative n moves backwards.
func (s *Spritesheet) MoveRelative(n int) *Layer {
	g := s.GridSize()
	x := s.active.X + n
	s.active = Point{
		X: modPositive(x, g.X),
		Y: modPositive(s.active.Y+floorDiv(x, g.X), g.Y),
	}
	return s.CurrentSprite()
}

// All yields every cell view in row-major order.
func (s *Spritesheet) All() iter.Seq2[Point, *Layer] {
	return func(yield func(Point, *Layer) bool) {
		g := s.GridSize()
		for y := 0; y < g.Y; y++ {
			for x := 0; x < g.X; x++ {
				p := Point{X: x, Y: y}
				l, err := s.Sprite(p)
				if err != nil {
					return
				}
				if !yield(p, l) {
					return
				}
			}
		}
	}
}

func modPositive(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
