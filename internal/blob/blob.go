// Package blob compresses pixel buffers and small documents with zstd.
//
// Encoders and decoders are pooled; every function is safe for concurrent use.
package blob

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ErrCorrupt is returned when packed data does not decode to the expected size.
var ErrCorrupt = errors.New("blob: corrupt data")

var encPool = sync.Pool{
	New: func() any {
		enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		return enc
	},
}

var decPool = sync.Pool{
	New: func() any {
		dec, _ := zstd.NewReader(nil)
		return dec
	},
}

// Compress returns the zstd frame for data. Empty input stays empty.
func Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	enc := encPool.Get().(*zstd.Encoder)
	enc.Reset(&buf)

	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		encPool.Put(enc)
		return nil, fmt.Errorf("blob: compress: %w", err)
	}
	if err := enc.Close(); err != nil {
		encPool.Put(enc)
		return nil, fmt.Errorf("blob: compress: %w", err)
	}
	encPool.Put(enc)
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec := decPool.Get().(*zstd.Decoder)
	defer decPool.Put(dec)
	if err := dec.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("blob: decompress: %w", err)
	}

	var out bytes.Buffer
	if _, err := out.ReadFrom(dec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return out.Bytes(), nil
}

// Pack compresses ARGB pixels stored little-endian.
func Pack(px []uint32) ([]byte, error) {
	raw := make([]byte, 4*len(px))
	for i, v := range px {
		binary.LittleEndian.PutUint32(raw[4*i:], v)
	}
	return Compress(raw)
}

// Unpack decodes n pixels written by Pack.
func Unpack(data []byte, n int) ([]uint32, error) {
	raw, err := Decompress(data)
	if err != nil {
		return nil, err
	}
	if len(raw) != 4*n {
		return nil, fmt.Errorf("%w: %d bytes for %d pixels", ErrCorrupt, len(raw), n)
	}
	px := make([]uint32, n)
	for i := range px {
		px[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}
	return px, nil
}
