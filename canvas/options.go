package canvas

import (
	"image"

	"github.com/gogpu/sprite"
)

// DefaultViewport is the surface area used when none is configured.
var DefaultViewport = image.Rect(0, 0, 500, 500)

// Option configures a Canvas.
type Option func(*options)

type options struct {
	viewport   image.Rectangle
	background sprite.Background
}

func defaultOptions() options {
	return options{
		viewport:   DefaultViewport,
		background: sprite.BackgroundTiles,
	}
}

// WithViewport sets the screen rectangle the base layer is fitted into.
// Empty rectangles are ignored.
func WithViewport(r image.Rectangle) Option {
	return func(o *options) {
		if !r.Empty() {
			o.viewport = r
		}
	}
}

// WithBackground sets the background drawn behind the bottom layer.
func WithBackground(bg sprite.Background) Option {
	return func(o *options) {
		o.background = bg
	}
}
