package editor

import (
	"image"
	"log/slog"

	"github.com/gogpu/sprite/canvas"
	"github.com/gogpu/sprite/tool"
)

// Defaults.
const (
	DefaultHistoryLimit = 100
	DefaultFPS          = 4
	MinFPS              = 1
	MaxFPS              = 20
)

// Option configures an Editor.
type Option func(*options)

type options struct {
	historyLimit int
	viewport     image.Rectangle
	fps          int
	logger       *slog.Logger
	tools        *tool.Registry
}

func defaultOptions() options {
	return options{
		historyLimit: DefaultHistoryLimit,
		viewport:     canvas.DefaultViewport,
		fps:          DefaultFPS,
	}
}

// WithHistoryLimit bounds the undo history. n < 1 means unbounded.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		o.historyLimit = n
	}
}

// WithViewport sets the screen rectangle of the canvas.
func WithViewport(r image.Rectangle) Option {
	return func(o *options) {
		o.viewport = r
	}
}

// WithFPS sets the animation speed, clamped to [MinFPS, MaxFPS].
func WithFPS(n int) Option {
	return func(o *options) {
		o.fps = n
	}
}

// WithLogger sets the editor's logger. By default the package-level
// sprite.Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRegistry supplies the tool registry.
func WithRegistry(r *tool.Registry) Option {
	return func(o *options) {
		o.tools = r
	}
}
