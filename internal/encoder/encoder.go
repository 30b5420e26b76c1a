// Package encoder turns a decoded image into bytes in one of the
// supported output formats. Each encoder owns its format's channel
// handling (alpha kept or flattened) and the meaning of the quality
// parameter: a 1-100 fidelity knob for lossy formats, a 0-9
// compression level for PNG.
package encoder

import (
	"fmt"
	"image"
	"strings"
)

// Encoder encodes an image to a specific output format.
type Encoder interface {
	// Format returns the canonical format name ("jpeg", "webp", "png").
	Format() string

	// Extension returns the file extension without dot.
	Extension() string

	// Lossless reports whether quality is a compression level rather
	// than a fidelity value, i.e. whether lowering it trades encode
	// time, not image quality.
	Lossless() bool

	// Encode converts the image to bytes at the given quality.
	Encode(img image.Image, quality int) ([]byte, error)
}

// ForFormat returns the encoder for a format name. Accepts "jpg" as an
// alias for "jpeg"; names are case-insensitive.
func ForFormat(name string) (Encoder, error) {
	switch strings.ToLower(name) {
	case "jpeg", "jpg":
		return &JPEGEncoder{}, nil
	case "webp":
		return &WebPEncoder{}, nil
	case "png":
		return &PNGEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (supported: jpeg, webp, png)", name)
	}
}
