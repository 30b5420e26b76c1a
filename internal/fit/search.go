package fit

import (
	"errors"
	"fmt"
	"image"

	"github.com/junkpiano/resizer/internal/encoder"
)

// ErrInvalidQualityRange reports caller-supplied quality bounds
// outside 1 <= min <= max <= 100.
var ErrInvalidQualityRange = errors.New("quality range must be within 1..100 and min <= max")

// ValidateQualityRange checks the bounds the quality search requires.
func ValidateQualityRange(qmin, qmax int) error {
	if qmin < 1 || qmax > 100 || qmin > qmax {
		return fmt.Errorf("%w (got min=%d max=%d)", ErrInvalidQualityRange, qmin, qmax)
	}
	return nil
}

// FitQuality finds the highest quality in [qmin, qmax] whose encoding
// fits targetBytes, by integer binary search: a midpoint that fits is
// recorded and the search moves up, one that doesn't moves it down.
// Codec size-vs-quality curves are only roughly monotonic; the search
// tolerates local dips by keeping whichever fitting quality it last
// accepted on the way up, rather than hunting for a global optimum.
//
// If no quality fits, the image is re-encoded at qmin and returned
// anyway; the caller detects the over-budget size and downscales.
// "Does not fit" is never an error.
func FitQuality(img image.Image, enc encoder.Encoder, targetBytes int64, qmin, qmax int, obs Observer) ([]byte, int, error) {
	if err := ValidateQualityRange(qmin, qmax); err != nil {
		return nil, 0, err
	}
	if obs == nil {
		obs = NopObserver{}
	}

	lo, hi := qmin, qmax
	var best []byte
	bestQ := 0
	iter := 0

	for lo <= hi {
		iter++
		mid := (lo + hi) / 2
		data, err := enc.Encode(img, mid)
		if err != nil {
			return nil, 0, fmt.Errorf("encode %s at quality %d: %w", enc.Format(), mid, err)
		}
		size := int64(len(data))
		fits := size <= targetBytes
		obs.SearchStep(iter, mid, size, fits)

		if fits {
			best, bestQ = data, mid
			lo = mid + 1 // try higher quality
		} else {
			hi = mid - 1 // need smaller
		}
	}

	if best != nil {
		return best, bestQ, nil
	}

	// Nothing fits: hand back the min-quality encoding so the caller
	// can decide to downscale.
	data, err := enc.Encode(img, qmin)
	if err != nil {
		return nil, 0, fmt.Errorf("encode %s at quality %d: %w", enc.Format(), qmin, err)
	}
	return data, qmin, nil
}
