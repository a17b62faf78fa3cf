// Package animation models the presentation phase that follows a container mutation.
//
// The phase carries no data: it is a countdown of logical ticks, advanced by
// the rendering loop, during which undo and redo are ignored.
package animation

// Ticker counts down a fixed number of logical ticks after Start.
// A Ticker with zero ticks is never busy.
type Ticker struct {
	ticks     int
	remaining int
}

// NewTicker creates an idle ticker whose animations last ticks steps.
func NewTicker(ticks int) *Ticker {
	if ticks < 0 {
		ticks = 0
	}
	return &Ticker{ticks: ticks}
}

// Start begins an animation unless one is already running.
func (t *Ticker) Start() {
	if t.remaining > 0 {
		return
	}
	t.remaining = t.ticks
}

// Tick advances the animation by one step and reports whether it is still running.
func (t *Ticker) Tick() bool {
	if t.remaining > 0 {
		t.remaining--
	}
	return t.remaining > 0
}

// Settle ends the running animation at once.
func (t *Ticker) Settle() {
	t.remaining = 0
}

// Busy reports whether an animation is running.
func (t *Ticker) Busy() bool {
	return t.remaining > 0
}

// Remaining returns the number of ticks left.
func (t *Ticker) Remaining() int {
	return t.remaining
}

// Ticks returns the configured animation length.
func (t *Ticker) Ticks() int {
	return t.ticks
}
