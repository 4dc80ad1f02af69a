package sprite

import "errors"

// Common errors for sprite operations.
var (
	// ErrInvalidDimensions is returned when a width or height is non-positive.
	ErrInvalidDimensions = errors.New("sprite: invalid dimensions")

	// ErrOutOfBounds is returned when a region leaves the backing buffer.
	ErrOutOfBounds = errors.New("sprite: region out of bounds")

	// ErrSizeMismatch is returned when raw pixel data does not fit a layer.
	ErrSizeMismatch = errors.New("sprite: pixel data size mismatch")

	// ErrSpriteDim is returned when a sprite size does not tile its sheet.
	ErrSpriteDim = errors.New("sprite: sprite size does not tile the sheet")

	// ErrTooFewColors is returned when a reduction asks for more clusters
	// than there are distinct colors.
	ErrTooFewColors = errors.New("sprite: fewer distinct colors than requested")
)
