package editor

import (
	"time"

	"github.com/gogpu/sprite"
)

// Player steps through the sprites of a sheet at a fixed frame rate.
type Player struct {
	fps     int
	playing bool
	elapsed time.Duration
}

// NewPlayer creates a stopped player. fps is clamped to [MinFPS, MaxFPS].
func NewPlayer(fps int) *Player {
	p := &Player{}
	p.SetFPS(fps)
	return p
}

// FPS returns the frame rate.
func (p *Player) FPS() int { return p.fps }

// SetFPS sets the frame rate, clamped to [MinFPS, MaxFPS].
func (p *Player) SetFPS(fps int) {
	p.fps = min(max(fps, MinFPS), MaxFPS)
}

// Interval is the time each frame is shown, truncated to whole
// milliseconds.
func (p *Player) Interval() time.Duration {
	return time.Duration(1000/p.fps) * time.Millisecond
}

// Playing reports whether the player is running.
func (p *Player) Playing() bool { return p.playing }

// Toggle starts or stops playback and reports the new state.
func (p *Player) Toggle() bool {
	p.playing = !p.playing
	p.elapsed = 0
	return p.playing
}

// Advance accumulates elapsed time and returns how many frames to step.
// A stopped player never steps.
func (p *Player) Advance(elapsed time.Duration) int {
	if !p.playing || elapsed <= 0 {
		return 0
	}
	p.elapsed += elapsed
	iv := p.Interval()
	n := int(p.elapsed / iv)
	p.elapsed -= time.Duration(n) * iv
	return n
}

// Tick advances the animation and shows the resulting sprite. It reports
// whether the shown sprite changed.
func (e *Editor) Tick(elapsed time.Duration) bool {
	n := e.player.Advance(elapsed)
	if n == 0 || e.sheet == nil || e.sheet.Len() < 2 {
		return false
	}
	e.viewSprite(e.sheet.MoveRelative(n))
	return true
}

// SetFPS sets the animation frame rate.
func (e *Editor) SetFPS(fps int) { e.player.SetFPS(fps) }

// Delay is the per-frame delay of exported animations.
func (e *Editor) Delay() time.Duration { return e.player.Interval() }

// Frames returns every sprite of the sheet in row-major order, scaled by
// sx and sy. With skipBlank, fully transparent sprites are left out.
func (e *Editor) Frames(sx, sy float64, skipBlank bool) ([]*sprite.Layer, error) {
	if e.sheet == nil {
		return nil, ErrNoSheet
	}
	var frames []*sprite.Layer
	for _, cell := range e.sheet.All() {
		if skipBlank && !cell.HasVisibleContent() {
			continue
		}
		frames = append(frames, cell.Scaled(sx, sy))
	}
	return frames, nil
}
