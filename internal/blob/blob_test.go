package blob

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestPackUnpack(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	tests := []struct {
		name string
		px   []uint32
	}{
		{"empty", nil},
		{"single", []uint32{0xFF102030}},
		{"uniform", make([]uint32, 4096)},
		{"noise", func() []uint32 {
			px := make([]uint32, 1000)
			for i := range px {
				px[i] = r.Uint32()
			}
			return px
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed, err := Pack(tt.px)
			if err != nil {
				t.Fatalf("Pack() error = %v", err)
			}
			got, err := Unpack(packed, len(tt.px))
			if err != nil {
				t.Fatalf("Unpack() error = %v", err)
			}
			if len(got) != len(tt.px) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.px))
			}
			for i := range got {
				if got[i] != tt.px[i] {
					t.Fatalf("pixel %d = %#x, want %#x", i, got[i], tt.px[i])
				}
			}
		})
	}
}

func TestPack_Compresses(t *testing.T) {
	px := make([]uint32, 64*64)
	packed, err := Pack(px)
	if err != nil {
		t.Fatal(err)
	}
	if len(packed) >= len(px) {
		t.Errorf("packed %d pixels into %d bytes", len(px), len(packed))
	}
}

func TestUnpack_Errors(t *testing.T) {
	packed, _ := Pack([]uint32{1, 2, 3})
	if _, err := Unpack(packed, 4); !errors.Is(err, ErrCorrupt) {
		t.Errorf("wrong count error = %v, want ErrCorrupt", err)
	}
	if _, err := Decompress([]byte("not zstd at all")); err == nil {
		t.Error("Decompress(garbage) should fail")
	}
}
