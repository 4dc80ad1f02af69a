package sprite

import (
	"image"
	"testing"
)

func TestOutline(t *testing.T) {
	tests := []struct {
		name  string
		cells []Point
		want  int
	}{
		{"empty", nil, 0},
		{"single cell", []Point{{1, 1}}, 4},
		{"horizontal pair", []Point{{1, 1}, {2, 1}}, 6},
		{"2x2 block", []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, 8},
		{"disjoint cells", []Point{{0, 0}, {3, 3}}, 8},
		{"ring with hole", []Point{
			{0, 0}, {1, 0}, {2, 0},
			{0, 1}, {2, 1},
			{0, 2}, {1, 2}, {2, 2},
		}, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPixelMask(4, 4)
			for _, p := range tt.cells {
				m.Set(p.X, p.Y, true)
			}
			if got := len(Outline(m)); got != tt.want {
				t.Errorf("len(Outline) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOutline_Sorted(t *testing.T) {
	m := NewPixelMask(1, 1)
	m.Set(0, 0, true)
	got := Outline(m)
	want := []Edge{{0, 0, 1, 0}, {0, 0, 0, 1}, {1, 0, 1, 1}, {0, 1, 1, 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Outline[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCircleMask(t *testing.T) {
	tests := []struct {
		diameter int
		size     int
		count    int
	}{
		{1, 1, 1},
		{2, 3, 5},
		{3, 3, 9},
	}
	for _, tt := range tests {
		m := NewCircleMask(tt.diameter)
		if m.Width() != tt.size || m.Height() != tt.size {
			t.Errorf("diameter %d: size = %d, want %d", tt.diameter, m.Width(), tt.size)
		}
		if got := MaskOf(m).Count(); got != tt.count {
			t.Errorf("diameter %d: count = %d, want %d", tt.diameter, got, tt.count)
		}
	}
}

func TestStrokeOutline(t *testing.T) {
	m := NewPixelMask(2, 2)
	m.Set(0, 0, true)
	dst := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	StrokeOutline(dst, m, Scale(10, 10), RGB(0, 0, 255))

	blue := RGB(0, 0, 255)
	for _, p := range []image.Point{{0, 0}, {10, 0}, {0, 10}, {10, 10}, {5, 0}, {10, 5}} {
		if got := FromColor(dst.At(p.X, p.Y)); got != blue {
			t.Errorf("pixel %v = %v, want %v", p, got, blue)
		}
	}
	if got := FromColor(dst.At(5, 5)); got != Transparent {
		t.Errorf("interior pixel = %v, want transparent", got)
	}
}

func TestStrokeOutline_OffscreenEdges(t *testing.T) {
	m := NewPixelMask(2, 2)
	m.Fill(true)

	tests := []struct {
		name string
		tf   Matrix
	}{
		{"left", Translate(-10, 1)},
		{"right", Translate(10, 1)},
		{"above", Translate(1, -10)},
		{"below", Translate(1, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := image.NewNRGBA(image.Rect(0, 0, 6, 6))
			StrokeOutline(dst, m, tt.tf, White)
			for y := range 6 {
				for x := range 6 {
					if got := FromColor(dst.At(x, y)); got != Transparent {
						t.Fatalf("stray pixel %v at (%d,%d)", got, x, y)
					}
				}
			}
		})
	}
}
