package pixbuf

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"valid", 16, 8, nil},
		{"1x1 minimum", 1, 1, nil},
		{"zero width", 0, 10, ErrInvalidDimensions},
		{"zero height", 10, 0, ErrInvalidDimensions},
		{"negative width", -1, 10, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := New(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("size = (%d, %d), want (%d, %d)", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if buf.Stride() != tt.width {
				t.Errorf("Stride() = %d, want %d", buf.Stride(), tt.width)
			}
		})
	}
}

func TestBuf_OutOfBounds(t *testing.T) {
	buf, _ := New(4, 4)
	buf.Set(-1, 0, 1)
	buf.Set(4, 0, 1)
	buf.Set(0, 4, 1)
	for _, v := range buf.Pixels() {
		if v != 0 {
			t.Fatal("out-of-bounds Set modified the buffer")
		}
	}
	if got := buf.At(10, 10); got != 0 {
		t.Errorf("At(10, 10) = %#x, want 0", got)
	}
	if buf.Row(4) != nil {
		t.Error("Row(4) should be nil")
	}
}

func TestBuf_Sub(t *testing.T) {
	buf, _ := New(10, 10)
	for y := range 10 {
		for x := range 10 {
			buf.Set(x, y, uint32(y*10+x))
		}
	}

	sub, err := buf.Sub(2, 3, 5, 4)
	if err != nil {
		t.Fatalf("Sub() error = %v", err)
	}
	if sub.Width() != 5 || sub.Height() != 4 {
		t.Errorf("Sub dimensions = (%d, %d), want (5, 4)", sub.Width(), sub.Height())
	}
	if got := sub.At(0, 0); got != 32 {
		t.Errorf("sub.At(0, 0) = %d, want 32", got)
	}
	if got := sub.At(4, 3); got != 66 {
		t.Errorf("sub.At(4, 3) = %d, want 66", got)
	}
	// Beyond the view but inside the arena must read as out of bounds.
	if got := sub.At(5, 0); got != 0 {
		t.Errorf("sub.At(5, 0) = %d, want 0", got)
	}

	sub.Set(1, 1, 0xFFFFFFFF)
	if got := buf.At(3, 4); got != 0xFFFFFFFF {
		t.Error("write through view not visible in parent")
	}
	buf.Set(2, 3, 7)
	if got := sub.At(0, 0); got != 7 {
		t.Error("write through parent not visible in view")
	}
	if !sub.SharesArena(buf) {
		t.Error("SharesArena() = false for a view of buf")
	}
	if sub.Clone().SharesArena(buf) {
		t.Error("Clone() should own its arena")
	}
}

func TestBuf_SubInvalid(t *testing.T) {
	buf, _ := New(10, 10)

	tests := []struct {
		name                string
		x, y, width, height int
		wantErr             error
	}{
		{"negative x", -1, 0, 5, 5, ErrOutOfBounds},
		{"negative y", 0, -1, 5, 5, ErrOutOfBounds},
		{"zero width", 0, 0, 0, 5, ErrInvalidDimensions},
		{"exceeds right", 8, 0, 5, 5, ErrOutOfBounds},
		{"exceeds bottom", 0, 8, 5, 5, ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buf.Sub(tt.x, tt.y, tt.width, tt.height); !errors.Is(err, tt.wantErr) {
				t.Errorf("Sub() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuf_PixelsRoundTrip(t *testing.T) {
	buf, _ := New(6, 6)
	sub, _ := buf.Sub(1, 1, 3, 2)
	data := []uint32{1, 2, 3, 4, 5, 6}
	if err := sub.SetPixels(data); err != nil {
		t.Fatalf("SetPixels() error = %v", err)
	}
	got := sub.Pixels()
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("Pixels()[%d] = %d, want %d", i, got[i], data[i])
		}
	}
	if buf.At(3, 2) != 6 {
		t.Errorf("parent At(3, 2) = %d, want 6", buf.At(3, 2))
	}
	if err := sub.SetPixels(data[:2]); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("SetPixels(short) error = %v, want ErrSizeMismatch", err)
	}
}
