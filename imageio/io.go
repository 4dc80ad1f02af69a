package imageio

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/sprite"
)

// Decode reads a PNG, TIFF, JPEG, BMP or GIF image into a new layer.
func Decode(r io.Reader) (*sprite.Layer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return sprite.FromImage(img)
}

// LoadLayer reads the image at path.
func LoadLayer(path string) (*sprite.Layer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()

	l, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return l, nil
}

// LoadSpritesheet reads the image at path as a sheet named after the file.
// The sprite size comes from the signature pixel when present, otherwise
// the whole image is one sprite.
func LoadSpritesheet(path string) (*sprite.Spritesheet, error) {
	l, err := LoadLayer(path)
	if err != nil {
		return nil, err
	}
	s, err := sprite.NewSpritesheetFromLayer(l, filepath.Base(path), image.Point{})
	if err != nil {
		return nil, fmt.Errorf("imageio: %s: %w", path, err)
	}
	if _, ok := sprite.ReadSignature(l); !ok {
		sprite.Logger().Warn("no sprite size signature", "path", path)
	}
	sprite.Logger().Info("sheet loaded", "path", path, "size", s.Size(), "sprite", s.SpriteDim())
	return s, nil
}

// SaveLayer writes l to path in the format implied by its extension.
func SaveLayer(l *sprite.Layer, path string) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error {
		return Encode(w, l, f)
	})
}

// SaveSpritesheet writes s to path with its sprite size signature. The
// signature goes into the encoded copy only.
func SaveSpritesheet(s *sprite.Spritesheet, path string) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	out := s.Clone()
	if !sprite.WriteSignature(out, s.SpriteDim()) {
		sprite.Logger().Warn("sprite size signature not written", "path", path, "sprite", s.SpriteDim())
	}
	if err := writeFile(path, func(w io.Writer) error {
		return Encode(w, out, f)
	}); err != nil {
		return err
	}
	sprite.Logger().Info("sheet saved", "path", path, "format", f)
	return nil
}

// writeFile streams encode into a temporary file next to path and renames
// it over path on success.
func writeFile(path string, encode func(io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = encode(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("imageio: write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("imageio: write %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	return nil
}
