package encoder

import (
	"image"

	"github.com/chai2010/webp"

	"github.com/junkpiano/resizer/internal/imageio"
)

// WebPEncoder encodes images to lossy WebP via libwebp
// (github.com/chai2010/webp). Alpha is kept when the source has any
// transparency; opaque sources go through the three-channel path,
// which encodes slightly smaller.
type WebPEncoder struct{}

func (e *WebPEncoder) Format() string    { return "webp" }
func (e *WebPEncoder) Extension() string { return "webp" }
func (e *WebPEncoder) Lossless() bool    { return false }

func (e *WebPEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	var data []byte
	var err error
	if imageio.HasAlpha(img) {
		data, err = webp.EncodeRGBA(img, float32(quality))
	} else {
		data, err = webp.EncodeRGB(img, float32(quality))
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
