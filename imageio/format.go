package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/sprite"
)

// ErrUnsupportedFormat is returned for file extensions with no encoder.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Format is an image file format.
type Format int

const (
	PNG Format = iota
	TIFF
	JPEG
	BMP
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// KeepsAlpha reports whether the format stores the alpha channel.
func (f Format) KeepsAlpha() bool { return f == PNG || f == TIFF }

var extensions = map[string]Format{
	".png":  PNG,
	".tif":  TIFF,
	".tiff": TIFF,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".bmp":  BMP,
}

// SupportedFormats returns the extensions Save functions accept.
func SupportedFormats() []string {
	return []string{".png", ".tif", ".tiff", ".jpg", ".jpeg", ".bmp"}
}

// FormatFor returns the format implied by path's extension.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extensions[ext]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// JPEGQuality is the quality used when writing JPEG files.
const JPEGQuality = 95

// Encode writes l to w in format f.
func Encode(w io.Writer, l *sprite.Layer, f Format) error {
	img := l.ToNRGBA()
	if !f.KeepsAlpha() {
		img = opaque(img)
	}
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case BMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %v: %w", f, err)
	}
	return nil
}

// opaque keeps the color channels of every pixel and sets alpha to 255.
func opaque(img *image.NRGBA) *image.NRGBA {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return img
}
