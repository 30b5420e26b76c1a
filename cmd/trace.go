package cmd

import (
	"fmt"
	"io"
)

// tracer implements fit.Observer, printing round-by-round progress so
// long runs show what the search is doing.
type tracer struct {
	w           io.Writer
	targetBytes int64
	maxRounds   int
	lossless    bool
}

func (t *tracer) Prescale(fromW, fromH, toW, toH int) {
	fmt.Fprintf(t.w, "Pre-downscaling from %dx%d to %dx%d (image too large for target)\n",
		fromW, fromH, toW, toH)
}

func (t *tracer) RoundStart(round, width, height int) {
	fmt.Fprintf(t.w, "  [Round %d] Testing dimensions %dx%d, target: %s\n",
		round, width, height, formatKB(t.targetBytes))
}

func (t *tracer) SearchStep(iter, quality int, size int64, fits bool) {
	verdict := "✗ (too large, reducing quality)"
	if fits {
		verdict = "✓ (fits, trying higher quality)"
	}
	fmt.Fprintf(t.w, "    Iter %d: q=%d -> %s %s\n", iter, quality, formatKB(size), verdict)
}

func (t *tracer) RoundEnd(round int, size int64, quality int) {
	if t.lossless {
		fmt.Fprintf(t.w, "    Level %d -> %s\n", quality, formatKB(size))
	}
	if size > t.targetBytes && round < t.maxRounds {
		fmt.Fprintln(t.w, "  → Downscaling by 10% and retrying...")
	}
}
