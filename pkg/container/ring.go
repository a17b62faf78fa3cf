package container

// ring holds all modulo arithmetic for a circular buffer of fixed size.
// Index -1 is the "no element" sentinel and is never passed to next or prev.
type ring struct {
	size int
}

func (r ring) next(i int) int {
	return (i + 1) % r.size
}

func (r ring) prev(i int) int {
	return (i - 1 + r.size) % r.size
}

// at returns the index offset slots after front, wrapping around.
func (r ring) at(front, offset int) int {
	return (front + offset) % r.size
}

// span counts the slots on the arc front..rear inclusive. It is 0 when front is -1.
func (r ring) span(front, rear int) int {
	if front < 0 || rear < 0 {
		return 0
	}
	return (rear-front+r.size)%r.size + 1
}

// contains reports whether i lies on the arc front..rear inclusive.
func (r ring) contains(front, rear, i int) bool {
	if front < 0 || rear < 0 || i < 0 || i >= r.size {
		return false
	}
	return (i-front+r.size)%r.size < r.span(front, rear)
}

func (r ring) valid(i int) bool {
	return i >= 0 && i < r.size
}
