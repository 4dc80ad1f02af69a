package tool

import (
	"math"
	"math/rand/v2"

	clr "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/sprite"
)

// HueChanger gives brushed pixels the hue and saturation of the
// foreground color while keeping their brightness and alpha.
type HueChanger struct {
	brush
}

// NewHueChanger returns a hue changer. It has no strength.
func NewHueChanger() *HueChanger {
	t := &HueChanger{}
	s := DefaultSettings()
	s.HasStrength = false
	t.init(s, t.recolor)
	return t
}

func (t *HueChanger) recolor(l *sprite.Layer, p sprite.Point, params Params) {
	target := params.Color
	black := max(target.R(), target.G(), target.B()) == 0
	th, ts, _ := opaque(target).Hsv()
	l.ForEachInCircle(p, t.settings.Radius(), func(q sprite.Point) {
		c := l.Pixel(q.X, q.Y)
		if black {
			l.SetPixel(q.X, q.Y, sprite.ARGB(c.A(), 0, 0, 0))
			return
		}
		_, _, v := opaque(c).Hsv()
		r, g, b := clr.Hsv(th, ts, v).Clamped().RGB255()
		l.SetPixel(q.X, q.Y, sprite.ARGB(c.A(), r, g, b))
	})
}

// opaque converts the RGB channels of c, ignoring alpha.
func opaque(c sprite.Color) clr.Color {
	return clr.Color{R: float64(c.R()) / 255, G: float64(c.G()) / 255, B: float64(c.B()) / 255}
}

// Shader moves the brightness of brushed pixels toward a target shade by
// Strength percent, scaling all three channels alike. Each pixel is
// shaded at most once per stroke.
type Shader struct {
	brush
	stroke stroke
	target float64
}

// Shade targets.
const (
	ShadeDark  = 0
	ShadeLight = 255
)

// NewShader returns a shader pulling toward target (0 darkens, 255 lightens).
func NewShader(target int) *Shader {
	t := &Shader{target: float64(target)}
	s := DefaultSettings()
	s.percent(25)
	t.init(s, t.shade)
	t.begin = t.stroke.reset
	return t
}

func (t *Shader) shade(l *sprite.Layer, p sprite.Point, _ Params) {
	w := t.settings.Fraction()
	t.stroke.each(l, p, t.settings.Radius(), func(q sprite.Point) {
		c := l.Pixel(q.X, q.Y)
		r, g, b := float64(c.R()), float64(c.G()), float64(c.B())
		old := max((r+g+b)/3, 0.125)
		shade := math.Round(t.target*w + old*(1-w))
		l.SetPixel(q.X, q.Y, sprite.ARGB(c.A(),
			clampRound(r*shade/old), clampRound(g*shade/old), clampRound(b*shade/old)))
	})
}

func clampRound(v float64) uint8 {
	return uint8(min(max(math.Round(v), 0), 255))
}

// Smoother blends brushed pixels toward the average color under the brush
// by Strength percent. The average is taken before any pixel changes.
type Smoother struct {
	brush
	once oncePerPixel
}

// NewSmoother returns a smoother at 50 percent.
func NewSmoother() *Smoother {
	t := &Smoother{}
	s := DefaultSettings()
	s.percent(50)
	s.MinSize, s.Size = 2, 2
	t.init(s, t.smooth)
	t.begin = t.once.reset
	return t
}

func (t *Smoother) smooth(l *sprite.Layer, p sprite.Point, _ Params) {
	if !t.once.enter(p) {
		return
	}
	r := t.settings.Radius()
	avg := l.AverageColor(p, r)
	if avg.A() == 0 {
		return
	}
	w := t.settings.Fraction()
	mix := func(a, b uint8) uint8 { return clampRound(float64(a)*(1-w) + float64(b)*w) }
	l.ForEachInCircle(p, r, func(q sprite.Point) {
		c := l.Pixel(q.X, q.Y)
		l.SetPixel(q.X, q.Y, sprite.ARGB(c.A(), mix(c.R(), avg.R()), mix(c.G(), avg.G()), mix(c.B(), avg.B())))
	})
}

// Smudger drags color along the stroke. It remembers the colors under the
// brush relative to its center and composites them, faded by Strength
// percent, wherever the brush moves next.
type Smudger struct {
	brush
	once    oncePerPixel
	carried map[sprite.Point]sprite.Color
}

// NewSmudger returns a smudger at 50 percent.
func NewSmudger() *Smudger {
	t := &Smudger{carried: make(map[sprite.Point]sprite.Color)}
	s := DefaultSettings()
	s.percent(50)
	s.MinSize, s.Size = 2, 2
	t.init(s, t.smudge)
	t.begin = t.reset
	t.finish = t.reset
	return t
}

func (t *Smudger) reset() {
	t.once.reset()
	clear(t.carried)
}

func (t *Smudger) smudge(l *sprite.Layer, p sprite.Point, _ Params) {
	if !t.once.enter(p) {
		return
	}
	r := t.settings.Radius()
	if len(t.carried) == 0 {
		l.ForEachInCircle(p, r, func(q sprite.Point) {
			t.carried[q.Sub(p)] = l.Pixel(q.X, q.Y)
		})
		return
	}

	pct, maxPct := t.settings.Strength, t.settings.MaxStrength
	l.ForEachInCircle(p, r, func(q sprite.Point) {
		rel := q.Sub(p)
		src, ok := t.carried[rel]
		if !ok {
			return
		}
		src = src.WithAlpha(uint8(int(src.A()) * pct / maxPct))
		c := sprite.MixRGB(l.Pixel(q.X, q.Y), src)
		l.SetPixel(q.X, q.Y, c)
		t.carried[rel] = c
	})
}

// Warper randomly brightens or darkens each brushed channel by up to
// Strength percent, once each time the pointer enters a pixel.
type Warper struct {
	brush
	once oncePerPixel
	rng  *rand.Rand
}

// NewWarper returns a warper at 50 percent. A nil rng uses a randomly
// seeded source.
func NewWarper(rng *rand.Rand) *Warper {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	t := &Warper{rng: rng}
	s := DefaultSettings()
	s.percent(50)
	s.MinStrength = 0
	t.init(s, t.warp)
	t.begin = t.once.reset
	t.finish = t.once.reset
	return t
}

func (t *Warper) warp(l *sprite.Layer, p sprite.Point, _ Params) {
	if !t.once.enter(p) {
		return
	}
	pct := t.settings.Fraction()
	l.ForEachInCircle(p, t.settings.Radius(), func(q sprite.Point) {
		c := l.Pixel(q.X, q.Y)
		darken := t.rng.IntN(2) == 0
		factor := 1 + pct*t.rng.Float64()
		if darken {
			factor = 1 / factor
		}
		ch := func(v uint8) uint8 {
			n := min(255, int(float64(v)*factor))
			if !darken && n == 0 {
				n = 1
			}
			return uint8(n)
		}
		l.SetPixel(q.X, q.Y, sprite.ARGB(c.A(), ch(c.R()), ch(c.G()), ch(c.B())))
	})
}
