package sprite

import (
	"errors"
	"image"
	"testing"
)

func TestNewSpritesheet(t *testing.T) {
	s, err := NewSpritesheet(image.Pt(16, 8), image.Pt(4, 3))
	if err != nil {
		t.Fatalf("NewSpritesheet() error = %v", err)
	}
	if s.Size() != image.Pt(64, 24) {
		t.Errorf("sheet size = %v, want 64x24", s.Size())
	}
	if s.GridSize() != image.Pt(4, 3) || s.Len() != 12 {
		t.Errorf("GridSize() = %v, Len() = %d", s.GridSize(), s.Len())
	}
	if s.Name() != DefaultSheetName {
		t.Errorf("Name() = %q", s.Name())
	}
	if d, ok := ReadSignature(s.Layer); !ok || d != image.Pt(16, 8) {
		t.Errorf("signature = %v, %v; want 16x8", d, ok)
	}

	if _, err := NewSpritesheet(image.Pt(0, 8), image.Pt(1, 1)); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero sprite error = %v, want ErrInvalidDimensions", err)
	}
}

func TestSpritesheet_SpriteIsView(t *testing.T) {
	s, _ := NewSpritesheet(image.Pt(4, 4), image.Pt(3, 2))
	cell, err := s.Sprite(Pt(2, 1))
	if err != nil {
		t.Fatalf("Sprite() error = %v", err)
	}
	cell.SetPixel(1, 2, Black)
	if s.Pixel(9, 6) != Black {
		t.Error("edit through sprite view not visible in the sheet")
	}
	if _, err := s.Sprite(Pt(3, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Sprite(outside) error = %v, want ErrOutOfBounds", err)
	}
}

func TestSpritesheet_SetSpriteDim(t *testing.T) {
	s, _ := NewSpritesheet(image.Pt(4, 4), image.Pt(4, 4))
	if err := s.SetActiveIndex(Pt(3, 3)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		dim     image.Point
		wantErr error
		active  Point
	}{
		{"larger cells clamp index", image.Pt(8, 8), nil, Pt(1, 1)},
		{"too wide", image.Pt(32, 4), ErrSpriteDim, Pt(1, 1)},
		{"does not tile", image.Pt(5, 4), ErrSpriteDim, Pt(1, 1)},
		{"whole sheet", image.Pt(16, 16), nil, Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := s.SpriteDim()
			err := s.SetSpriteDim(tt.dim)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetSpriteDim() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil && s.SpriteDim() != before {
				t.Error("failed SetSpriteDim changed the sprite size")
			}
			if s.ActiveIndex() != tt.active {
				t.Errorf("ActiveIndex() = %v, want %v", s.ActiveIndex(), tt.active)
			}
		})
	}
}

func TestSpritesheet_MoveRelative(t *testing.T) {
	s, _ := NewSpritesheet(image.Pt(2, 2), image.Pt(3, 2))

	tests := []struct {
		n    int
		want Point
	}{
		{1, Pt(1, 0)},
		{2, Pt(0, 1)},
		{2, Pt(2, 1)},
		{1, Pt(0, 0)},
		{-1, Pt(2, 1)},
		{-4, Pt(1, 0)},
		{6, Pt(1, 0)},
	}
	for _, tt := range tests {
		s.MoveRelative(tt.n)
		if s.ActiveIndex() != tt.want {
			t.Errorf("MoveRelative(%d) = %v, want %v", tt.n, s.ActiveIndex(), tt.want)
		}
	}
}

func TestSpritesheet_All(t *testing.T) {
	s, _ := NewSpritesheet(image.Pt(2, 3), image.Pt(2, 2))
	var order []Point
	for p, cell := range s.All() {
		if cell.Size() != image.Pt(2, 3) {
			t.Errorf("cell %v size = %v", p, cell.Size())
		}
		order = append(order, p)
	}
	want := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if len(order) != len(want) {
		t.Fatalf("All() yielded %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("All()[%d] = %v, want %v", i, order[i], want[i])
		}
	}
}

func TestSpritesheetFromLayer_Signature(t *testing.T) {
	l := mustLayer(t, 12, 6)
	WriteSignature(l, image.Pt(3, 2))

	s, err := NewSpritesheetFromLayer(l, "walk.png", image.Point{})
	if err != nil {
		t.Fatalf("NewSpritesheetFromLayer() error = %v", err)
	}
	if s.SpriteDim() != image.Pt(3, 2) {
		t.Errorf("SpriteDim() = %v, want 3x2", s.SpriteDim())
	}

	plain := mustLayer(t, 10, 10)
	plain.Fill(Black)
	s, err = NewSpritesheetFromLayer(plain, "", image.Point{})
	if err != nil {
		t.Fatalf("NewSpritesheetFromLayer() error = %v", err)
	}
	if s.SpriteDim() != image.Pt(10, 10) {
		t.Errorf("unsigned sheet SpriteDim() = %v, want whole layer", s.SpriteDim())
	}
	if plain.Pixel(9, 9) != Black {
		t.Error("signature must not overwrite a visible pixel")
	}
}

func TestSignature(t *testing.T) {
	tests := []struct {
		name   string
		pixel  Color
		wantOK bool
		want   image.Point
	}{
		{"valid", Color(16<<12 | 32), true, image.Pt(16, 32)},
		{"opaque pixel", Color(16<<12|32) | 0xFF000000, false, image.Point{}},
		{"zero width", Color(32), false, image.Point{}},
		{"zero height", Color(16 << 12), false, image.Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustLayer(t, 4, 4)
			l.SetPixel(3, 3, tt.pixel)
			d, ok := ReadSignature(l)
			if ok != tt.wantOK || d != tt.want {
				t.Errorf("ReadSignature() = %v, %v; want %v, %v", d, ok, tt.want, tt.wantOK)
			}
		})
	}

	l := mustLayer(t, 4, 4)
	if WriteSignature(l, image.Pt(4096, 1)) {
		t.Error("WriteSignature should refuse dimensions above 12 bits")
	}
}
