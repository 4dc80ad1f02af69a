package sprite

import (
	"math"
	"testing"
)

func TestMatrix_Invert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		ok   bool
	}{
		{"identity", Identity(), true},
		{"translate", Translate(10, -4), true},
		{"scale", Scale(12.5, 12.5), true},
		{"render", Translate(30, 0).Multiply(Scale(31.25, 31.25)), true},
		{"singular", Scale(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if ok != tt.ok {
				t.Fatalf("Invert() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			p := FPt(3.25, -7.5)
			got := inv.Apply(tt.m.Apply(p))
			if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
				t.Errorf("round trip = %+v, want %+v", got, p)
			}
		})
	}
}

func TestMatrix_MultiplyOrder(t *testing.T) {
	m := Translate(10, 20).Multiply(Scale(2, 2))
	got := m.Apply(FPt(1, 1))
	if got.X != 12 || got.Y != 22 {
		t.Errorf("Apply = %+v, want {12 22}", got)
	}
	if m.ScaleFactor() != 2 {
		t.Errorf("ScaleFactor() = %v, want 2", m.ScaleFactor())
	}
}
