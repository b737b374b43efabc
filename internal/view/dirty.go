package view

// DirtyState tells whether the displayed result matches the current inputs.
type DirtyState int

const (
	// Stale means an input changed since the last compute, or nothing was computed yet.
	Stale DirtyState = iota
	// Fresh means the displayed result was computed from the current inputs.
	Fresh
)

func (s DirtyState) String() string {
	if s == Fresh {
		return "fresh"
	}
	return "stale"
}

// DirtyTracker is the two-state machine behind the "recalculate" hint.
// It starts Stale and never terminates.
type DirtyTracker struct {
	state DirtyState
}

// NewDirtyTracker returns a tracker in the Stale state.
func NewDirtyTracker() *DirtyTracker {
	return &DirtyTracker{state: Stale}
}

// State returns the current state.
func (d *DirtyTracker) State() DirtyState { return d.state }

// Fresh reports whether the state is Fresh.
func (d *DirtyTracker) Fresh() bool { return d.state == Fresh }

// Edit records a parameter change.
func (d *DirtyTracker) Edit() { d.state = Stale }

// Computed records a successful compute.
func (d *DirtyTracker) Computed() { d.state = Fresh }

// Reset returns to the initial state.
func (d *DirtyTracker) Reset() { d.state = Stale }

// ToggleTax reports whether flipping the tax flag must trigger a recompute.
// That is the case only when a result exists; otherwise only the badges
// change and the state is left alone.
func (d *DirtyTracker) ToggleTax(hasResult bool) (recompute bool) {
	return hasResult
}
