package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/blob"
)

// DefaultNameBase prefixes generated palette names.
const DefaultNameBase = "Palette "

// Memory is the set of saved palettes and the index of the active one.
type Memory struct {
	Palettes []*Palette `json:"palettes"`
	Active   int        `json:"active"`
}

// NameTaken reports whether a stored palette already uses name, ignoring
// case and Unicode normalization differences.
func (m *Memory) NameTaken(name string) bool {
	key := nameKey(name)
	for _, p := range m.Palettes {
		if nameKey(p.Name) == key {
			return true
		}
	}
	return false
}

// DefaultName returns the first free "Palette N" name, N >= 1.
func (m *Memory) DefaultName() string {
	for n := 1; ; n++ {
		name := DefaultNameBase + strconv.Itoa(n)
		if !m.NameTaken(name) {
			return name
		}
	}
}

// Add stores p. Its name must be free.
func (m *Memory) Add(p *Palette) error {
	if m.NameTaken(p.Name) {
		return fmt.Errorf("%w: %q", ErrNameTaken, p.Name)
	}
	m.Palettes = append(m.Palettes, p)
	return nil
}

// Rename changes p's name unless another palette uses it.
func (m *Memory) Rename(p *Palette, name string) error {
	if nameKey(name) != nameKey(p.Name) && m.NameTaken(name) {
		return fmt.Errorf("%w: %q", ErrNameTaken, name)
	}
	p.Name = name
	return nil
}

// Duplicate stores and returns a copy of p with a free name.
func (m *Memory) Duplicate(p *Palette) *Palette {
	cp := p.Copy(m.NameTaken)
	m.Palettes = append(m.Palettes, cp)
	return cp
}

// PaletteOrDefault returns the active palette, creating a blank
// rows x cols palette when none is stored.
func (m *Memory) PaletteOrDefault(rows, cols int) (*Palette, error) {
	if len(m.Palettes) == 0 {
		p, err := New(m.DefaultName(), rows, cols)
		if err != nil {
			return nil, err
		}
		m.Palettes = append(m.Palettes, p)
	}
	m.Active = min(max(m.Active, 0), len(m.Palettes)-1)
	return m.Palettes[m.Active], nil
}

// DefaultPath returns the memory file location under the user's
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("palette: %w", err)
	}
	return filepath.Join(dir, "sprite", "memory.json.zst"), nil
}

// Load reads the memory file at path. A missing file yields an empty
// memory.
func Load(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		sprite.Logger().Debug("no palette memory", "path", path)
		return &Memory{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	raw, err := blob.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("palette: load %s: %w", path, err)
	}
	var m Memory
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("palette: load %s: %w", path, err)
	}
	sprite.Logger().Debug("palette memory loaded", "path", path, "palettes", len(m.Palettes))
	return &m, nil
}

// Save writes the memory to path, creating parent directories. The file is
// replaced atomically.
func (m *Memory) Save(path string) (err error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	data, err := blob.Compress(raw)
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("palette: save %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("palette: save %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	return nil
}
