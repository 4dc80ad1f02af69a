package sprite

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	clr "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/sprite/internal/parallel"
)

// QuantizeEpochs is the fixed number of k-means iterations ReduceColors runs.
const QuantizeEpochs = 10

// parallelColors is the number of distinct colors above which cluster
// assignment is split across a worker pool.
const parallelColors = 4096

// Metric selects the color space k-means clusters in.
type Metric int

const (
	// MetricRGB clusters by euclidean distance between RGB channels.
	MetricRGB Metric = iota
	// MetricHSB clusters in hue/saturation/brightness space; hue distance
	// takes the shorter arc around the color wheel.
	MetricHSB
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case MetricRGB:
		return "rgb"
	case MetricHSB:
		return "hsb"
	default:
		return "unknown"
	}
}

type feature [3]float64

// ReduceColors replaces the colors of every visible pixel in layers with one
// of k cluster colors found by k-means. Each pixel keeps its own alpha and
// fully transparent pixels are never touched. It fails with ErrTooFewColors,
// before changing anything, when fewer than k distinct colors are visible.
func ReduceColors(layers []*Layer, k int, metric Metric, opts ...QuantizeOption) error {
	o := defaultQuantizeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	visit := func(fn func(l *Layer, x, y int, c Color)) {
		for _, l := range layers {
			for y := 0; y < l.Height(); y++ {
				for x := 0; x < l.Width(); x++ {
					if o.region != nil && !o.region.Get(x, y) {
						continue
					}
					if c := l.Pixel(x, y); c.A() > 0 {
						fn(l, x, y, c)
					}
				}
			}
		}
	}

	counts := make(map[Color]int)
	visit(func(_ *Layer, _, _ int, c Color) {
		counts[c.WithAlpha(0xFF)]++
	})
	if k < 1 || len(counts) < k {
		return fmt.Errorf("%w: %d distinct, %d requested", ErrTooFewColors, len(counts), k)
	}

	colors := make([]Color, 0, len(counts))
	for c := range counts {
		colors = append(colors, c)
	}
	slices.Sort(colors)

	q := newQuantizer(metric, colors, counts)
	if len(colors) > parallelColors && o.workers != 1 {
		q.pool = parallel.NewPool(o.workers)
		defer q.pool.Close()
	}
	q.seed(k, o.rng)
	for range QuantizeEpochs {
		q.assign()
		q.update()
	}
	q.assign()

	lut := make(map[Color]Color, len(colors))
	for i, c := range colors {
		lut[c] = q.toColor(q.centroids[q.labels[i]])
	}
	visit(func(l *Layer, x, y int, c Color) {
		l.SetPixel(x, y, lut[c.WithAlpha(0xFF)].WithAlpha(c.A()))
	})

	Logger().Debug("reduce colors", "metric", metric, "k", k, "distinct", len(colors), "epochs", QuantizeEpochs)
	return nil
}

// quantizer clusters distinct colors weighted by how many pixels use them.
type quantizer struct {
	metric    Metric
	features  []feature
	weights   []float64
	centroids []feature
	labels    []int
	pool      *parallel.Pool
}

func newQuantizer(metric Metric, colors []Color, counts map[Color]int) *quantizer {
	q := &quantizer{
		metric:   metric,
		features: make([]feature, len(colors)),
		weights:  make([]float64, len(colors)),
		labels:   make([]int, len(colors)),
	}
	for i, c := range colors {
		q.features[i] = q.toFeature(c)
		q.weights[i] = float64(counts[c])
	}
	return q
}

// seed picks k distinct colors as the initial centroids.
func (q *quantizer) seed(k int, rng *rand.Rand) {
	perm := rng.Perm(len(q.features))
	q.centroids = make([]feature, k)
	for i := range k {
		q.centroids[i] = q.features[perm[i]]
	}
}

// assign labels every color with its nearest centroid.
func (q *quantizer) assign() {
	if q.pool == nil {
		q.assignRange(0, len(q.features))
		return
	}
	q.pool.For(len(q.features), parallelColors/4, q.assignRange)
}

func (q *quantizer) assignRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		best, bestDist := 0, math.Inf(1)
		for j, c := range q.centroids {
			if d := q.dist(q.features[i], c); d < bestDist {
				best, bestDist = j, d
			}
		}
		q.labels[i] = best
	}
}

// update moves every centroid to the weighted mean of its members. A cluster
// that lost all its members keeps its previous centroid.
func (q *quantizer) update() {
	for j := range q.centroids {
		var xs [3][]float64
		var ws []float64
		for i, label := range q.labels {
			if label != j {
				continue
			}
			for c := range 3 {
				xs[c] = append(xs[c], q.features[i][c])
			}
			ws = append(ws, q.weights[i])
		}
		if len(ws) == 0 {
			continue
		}

		var next feature
		switch q.metric {
		case MetricHSB:
			angles := make([]float64, len(xs[0]))
			for i, h := range xs[0] {
				angles[i] = h * 2 * math.Pi
			}
			h := stat.CircularMean(angles, ws) / (2 * math.Pi)
			if h < 0 {
				h++
			}
			next = feature{h, stat.Mean(xs[1], ws), stat.Mean(xs[2], ws)}
		default:
			next = feature{stat.Mean(xs[0], ws), stat.Mean(xs[1], ws), stat.Mean(xs[2], ws)}
		}
		q.centroids[j] = next
	}
}

func (q *quantizer) dist(a, b feature) float64 {
	if q.metric == MetricHSB {
		dh := math.Abs(a[0] - b[0])
		dh = math.Min(dh, 1-dh)
		ds, dv := a[1]-b[1], a[2]-b[2]
		return dh*dh + ds*ds + dv*dv
	}
	dr, dg, db := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dr*dr + dg*dg + db*db
}

func (q *quantizer) toFeature(c Color) feature {
	if q.metric == MetricHSB {
		h, s, v := toColorful(c).Hsv()
		return feature{math.Mod(h/360, 1), s, v}
	}
	return feature{float64(c.R()), float64(c.G()), float64(c.B())}
}

func (q *quantizer) toColor(f feature) Color {
	if q.metric == MetricHSB {
		r, g, b := clr.Hsv(f[0]*360, f[1], f[2]).Clamped().RGB255()
		return RGB(r, g, b)
	}
	ch := func(v float64) uint8 { return uint8(math.Max(0, math.Min(255, math.Round(v)))) }
	return RGB(ch(f[0]), ch(f[1]), ch(f[2]))
}

func toColorful(c Color) clr.Color {
	return clr.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}
