// Package fit finds an encoding of an image that does not exceed a
// byte budget: a quality binary search nested inside a bounded
// progressive-downscale loop, with a pre-sizing shortcut for inputs
// far too large for their target.
package fit

import (
	"fmt"
	"image"

	"github.com/junkpiano/resizer/internal/encoder"
)

// Config holds the parameters of one fitting run.
type Config struct {
	// TargetBytes is the size budget the output must not exceed.
	TargetBytes int64

	// MinQuality and MaxQuality bound the lossy quality search,
	// 1 <= min <= max <= 100. Ignored on the lossless path.
	MinQuality int
	MaxQuality int

	// MaxRounds is how many downscale rounds to attempt beyond round
	// 0, so MaxRounds+1 attempts total.
	MaxRounds int

	// PNGLevel is the fixed compression level (0-9) for the lossless
	// path. Ignored for lossy formats.
	PNGLevel int

	// Observer receives progress events; nil means no observation.
	Observer Observer
}

// Result is the terminal artifact of a fitting run. The output file is
// always produced from Result.Data, whether or not the budget was met.
type Result struct {
	// Data is the encoded artifact.
	Data []byte

	// Quality is the quality (lossy) or compression level (lossless)
	// that produced Data.
	Quality int

	// Width and Height are the pixel dimensions of the raster Data
	// was encoded from.
	Width  int
	Height int

	// Rounds is how many downscale rounds ran before termination.
	Rounds int

	// MetTarget reports whether len(Data) <= TargetBytes. False is a
	// best-effort outcome, not a failure.
	MetTarget bool
}

// Fit runs the downscale loop for the encoder's format: lossy formats
// get a quality search per round, lossless formats one encode per
// round at the fixed level. It terminates on the first round whose
// artifact fits the budget, or after MaxRounds downscales with the
// last artifact as a best-effort result.
func Fit(img image.Image, enc encoder.Encoder, cfg Config) (*Result, error) {
	obs := cfg.Observer
	if obs == nil {
		obs = NopObserver{}
	}
	if cfg.MaxRounds < 0 {
		cfg.MaxRounds = 0
	}
	if enc.Lossless() {
		return fitLossless(img, enc, cfg, obs)
	}
	// Reject bad bounds before any resize or encode work.
	if err := ValidateQualityRange(cfg.MinQuality, cfg.MaxQuality); err != nil {
		return nil, err
	}
	return fitLossy(img, enc, cfg, obs)
}

func fitLossy(img image.Image, enc encoder.Encoder, cfg Config, obs Observer) (*Result, error) {
	img = prescale(img, cfg.TargetBytes, obs)

	var lastData []byte
	lastQ := cfg.MinQuality

	for round := 0; round <= cfg.MaxRounds; round++ {
		b := img.Bounds()
		obs.RoundStart(round, b.Dx(), b.Dy())

		data, q, err := FitQuality(img, enc, cfg.TargetBytes, cfg.MinQuality, cfg.MaxQuality, obs)
		if err != nil {
			return nil, err
		}
		lastData, lastQ = data, q
		obs.RoundEnd(round, int64(len(data)), q)

		if int64(len(data)) <= cfg.TargetBytes {
			return &Result{
				Data:      data,
				Quality:   q,
				Width:     b.Dx(),
				Height:    b.Dy(),
				Rounds:    round,
				MetTarget: true,
			}, nil
		}
		if round == cfg.MaxRounds {
			break
		}
		img = downscale(img)
	}

	b := img.Bounds()
	return &Result{
		Data:    lastData,
		Quality: lastQ,
		Width:   b.Dx(),
		Height:  b.Dy(),
		Rounds:  cfg.MaxRounds,
	}, nil
}

func fitLossless(img image.Image, enc encoder.Encoder, cfg Config, obs Observer) (*Result, error) {
	level := encoder.Level(cfg.PNGLevel)

	var lastData []byte
	for round := 0; round <= cfg.MaxRounds; round++ {
		b := img.Bounds()
		obs.RoundStart(round, b.Dx(), b.Dy())

		data, err := enc.Encode(img, level)
		if err != nil {
			return nil, fmt.Errorf("encode %s at level %d: %w", enc.Format(), level, err)
		}
		lastData = data
		obs.RoundEnd(round, int64(len(data)), level)

		if int64(len(data)) <= cfg.TargetBytes {
			return &Result{
				Data:      data,
				Quality:   level,
				Width:     b.Dx(),
				Height:    b.Dy(),
				Rounds:    round,
				MetTarget: true,
			}, nil
		}
		if round == cfg.MaxRounds {
			break
		}
		img = downscale(img)
	}

	b := img.Bounds()
	return &Result{
		Data:    lastData,
		Quality: level,
		Width:   b.Dx(),
		Height:  b.Dy(),
		Rounds:  cfg.MaxRounds,
	}, nil
}
