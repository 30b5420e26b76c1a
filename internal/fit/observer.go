package fit

// Observer receives progress events from the fitting loops. The core
// emits no output itself; the CLI plugs in a stderr tracer, tests plug
// in counters or nothing.
type Observer interface {
	// Prescale fires when the pre-sizing heuristic shrinks an
	// oversized input before the first round.
	Prescale(fromW, fromH, toW, toH int)

	// RoundStart fires before each round's encode(s), with the
	// dimensions being attempted.
	RoundStart(round, width, height int)

	// SearchStep fires after each quality-search encode.
	SearchStep(iter, quality int, size int64, fits bool)

	// RoundEnd fires with the round's terminal artifact size and the
	// quality (or compression level) that produced it.
	RoundEnd(round int, size int64, quality int)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) Prescale(fromW, fromH, toW, toH int)                 {}
func (NopObserver) RoundStart(round, width, height int)                 {}
func (NopObserver) SearchStep(iter, quality int, size int64, fits bool) {}
func (NopObserver) RoundEnd(round int, size int64, quality int)         {}
