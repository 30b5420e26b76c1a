package fit

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// downscaleFactor is applied to both axes per downscale round.
const downscaleFactor = 0.9

// ClampDimensions resizes img once so it fits within the given maximum
// width and height, preserving aspect ratio. A bound of 0 or less
// leaves that axis unconstrained. Never upscales.
func ClampDimensions(img image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	scaleW, scaleH := 1.0, 1.0
	if maxW > 0 {
		scaleW = float64(maxW) / float64(w)
	}
	if maxH > 0 {
		scaleH = float64(maxH) / float64(h)
	}
	scale := math.Min(math.Min(scaleW, scaleH), 1.0)
	if scale >= 1.0 {
		return img
	}

	newW := atLeastOne(int(math.Round(float64(w) * scale)))
	newH := atLeastOne(int(math.Round(float64(h) * scale)))
	return imaging.Resize(img, newW, newH, imaging.Lanczos)
}

// downscale shrinks both dimensions by 10%, floored, min 1px.
func downscale(img image.Image) image.Image {
	b := img.Bounds()
	newW := atLeastOne(int(math.Floor(float64(b.Dx()) * downscaleFactor)))
	newH := atLeastOne(int(math.Floor(float64(b.Dy()) * downscaleFactor)))
	return imaging.Resize(img, newW, newH, imaging.Lanczos)
}

// prescale shrinks grossly oversized inputs before the quality search
// runs. Lossy codecs land around 0.3-1 bytes per pixel; 2 bytes/pixel
// is a safe high-quality upper bound, so an image with more than 4x
// that many pixels cannot plausibly fit the target and would only burn
// encode calls at full resolution. Shrinks to ~2x the estimated
// maximum so the search still has headroom. Skipping this changes
// wall-clock cost only; the downscale loop reaches the same region
// eventually.
func prescale(img image.Image, targetBytes int64, obs Observer) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	currentPixels := int64(w) * int64(h)
	maxReasonablePixels := targetBytes / 2

	if currentPixels <= maxReasonablePixels*4 {
		return img
	}

	scale := math.Sqrt(float64(maxReasonablePixels*2) / float64(currentPixels))
	newW := atLeastOne(int(math.Round(float64(w) * scale)))
	newH := atLeastOne(int(math.Round(float64(h) * scale)))
	obs.Prescale(w, h, newW, newH)
	return imaging.Resize(img, newW, newH, imaging.Lanczos)
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
