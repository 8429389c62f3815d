package panel

// Debouncer implements trailing-edge debounce as a generation counter.
// Every notification arms a new generation, superseding any callback still
// in flight for an older one; only the callback that comes back carrying
// the current generation executes. This makes the cancel-and-reschedule
// timer dance explicit and testable without real time.
type Debouncer struct {
	gen uint64
}

// Arm records a new notification and returns the generation token the host
// should hand back after the settle delay.
func (d *Debouncer) Arm() uint64 {
	d.gen++
	return d.gen
}

// Current reports whether the token still identifies the latest
// notification. Stale tokens mean a newer event superseded this one.
func (d *Debouncer) Current(gen uint64) bool {
	return gen == d.gen
}
