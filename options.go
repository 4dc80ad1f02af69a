package sprite

import "math/rand/v2"

// QuantizeOption configures ReduceColors.
//
// Example:
//
//	// Reduce only the selected region, reproducibly.
//	err := sprite.ReduceColors(layers, 8, sprite.MetricHSB,
//	    sprite.WithRegion(mask),
//	    sprite.WithRand(rand.New(rand.NewPCG(1, 2))))
type QuantizeOption func(*quantizeOptions)

// quantizeOptions holds optional configuration for ReduceColors.
type quantizeOptions struct {
	region  BitMask
	rng     *rand.Rand
	workers int
}

// defaultQuantizeOptions returns the default options: every pixel, random seeding.
func defaultQuantizeOptions() quantizeOptions {
	return quantizeOptions{
		region: nil, // whole layer
		rng:    nil, // seeded from the runtime source
	}
}

// WithRegion restricts the reduction to pixels set in m. The mask uses the
// coordinates of each layer.
func WithRegion(m BitMask) QuantizeOption {
	return func(o *quantizeOptions) {
		o.region = m
	}
}

// WithRand sets the random source used to pick the initial centroids.
func WithRand(r *rand.Rand) QuantizeOption {
	return func(o *quantizeOptions) {
		o.rng = r
	}
}

// WithWorkers sets how many goroutines assign colors to clusters on large
// inputs. n <= 0 means GOMAXPROCS; 1 keeps the work on the caller.
func WithWorkers(n int) QuantizeOption {
	return func(o *quantizeOptions) {
		o.workers = n
	}
}
