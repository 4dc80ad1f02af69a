// Package palette stores named color palettes between sessions.
package palette

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/sprite"
)

var (
	// ErrNameTaken is returned when a palette name is already in use.
	ErrNameTaken = errors.New("palette: name taken")
	// ErrInvalidSize is returned for palettes without rows or columns.
	ErrInvalidSize = errors.New("palette: invalid size")
)

// DefaultColor fills unassigned palette cells.
var DefaultColor = sprite.White

// Palette is a named grid of colors.
type Palette struct {
	Name   string           `json:"name"`
	Colors [][]sprite.Color `json:"colors"`
}

// New returns a rows x cols palette filled with DefaultColor.
func New(name string, rows, cols int) (*Palette, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	colors := make([][]sprite.Color, rows)
	for i := range colors {
		colors[i] = slices.Repeat([]sprite.Color{DefaultColor}, cols)
	}
	return &Palette{Name: name, Colors: colors}, nil
}

// Rows returns the number of rows.
func (p *Palette) Rows() int { return len(p.Colors) }

// Cols returns the number of columns.
func (p *Palette) Cols() int {
	if len(p.Colors) == 0 {
		return 0
	}
	return len(p.Colors[0])
}

// Copy returns a deep copy named "<name> copy", or "<name> copy N" with
// the smallest N >= 2 for which taken reports false.
func (p *Palette) Copy(taken func(name string) bool) *Palette {
	name := p.Name + " copy"
	for n := 2; taken != nil && taken(name); n++ {
		name = p.Name + " copy " + strconv.Itoa(n)
	}
	colors := make([][]sprite.Color, len(p.Colors))
	for i, row := range p.Colors {
		colors[i] = slices.Clone(row)
	}
	return &Palette{Name: name, Colors: colors}
}

// nameKey folds case and normalizes name so that visually identical names
// compare equal.
func nameKey(name string) string {
	return cases.Fold().String(norm.NFC.String(name))
}
