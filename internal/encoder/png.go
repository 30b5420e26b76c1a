package encoder

import (
	"bytes"
	"image"
	"image/png"
)

// PNGEncoder encodes images to PNG using Go's standard library. PNG is
// lossless, so the quality parameter is a 0-9 compression level
// (clamped to 9), mapped onto the four zlib presets the stdlib codec
// exposes. Alpha is preserved; the codec writes 24-bit output on its
// own when every pixel is opaque. Row filtering is the codec default
// (per-row adaptive selection).
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string    { return "png" }
func (e *PNGEncoder) Extension() string { return "png" }
func (e *PNGEncoder) Lossless() bool    { return true }

func (e *PNGEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(512 * 1024) // pre-alloc 512KB

	enc := &png.Encoder{CompressionLevel: compressionLevel(Level(quality))}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Level clamps an incoming quality value to the 0-9 PNG level scale.
func Level(quality int) int {
	if quality > 9 {
		return 9
	}
	if quality < 0 {
		return 0
	}
	return quality
}

func compressionLevel(level int) png.CompressionLevel {
	switch {
	case level == 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
