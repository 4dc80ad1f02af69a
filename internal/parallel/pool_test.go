package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNewPool_Workers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit", 3, 3},
		{"zero uses GOMAXPROCS", 0, runtime.GOMAXPROCS(0)},
		{"negative uses GOMAXPROCS", -2, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(tt.workers)
			defer p.Close()
			if p.Workers() != tt.want {
				t.Errorf("Workers() = %d, want %d", p.Workers(), tt.want)
			}
		})
	}
}

func TestPool_Run(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var n atomic.Int64
	work := make([]func(), 500)
	for i := range work {
		work[i] = func() { n.Add(1) }
	}
	p.Run(work)
	if n.Load() != 500 {
		t.Errorf("ran %d of 500 items", n.Load())
	}
}

func TestPool_For(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	tests := []struct {
		n, chunk int
	}{
		{0, 4},
		{1, 4},
		{10, 3},
		{1000, 64},
		{7, 0},
	}
	for _, tt := range tests {
		hits := make([]atomic.Int32, tt.n)
		p.For(tt.n, tt.chunk, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				hits[i].Add(1)
			}
		})
		for i := range hits {
			if h := hits[i].Load(); h != 1 {
				t.Fatalf("For(%d, %d): index %d visited %d times", tt.n, tt.chunk, i, h)
			}
		}
	}
}

func TestPool_Closed(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()

	ran := 0
	p.Run([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("closed pool ran %d of 2 items", ran)
	}
}
