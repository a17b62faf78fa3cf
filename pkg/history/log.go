package history

import (
	"time"
)

// Operation is the constraint for journal entries.
type Operation interface {
	// Description returns a label such as "Push 3" for history lists.
	Description() string
}

// Blocker reports whether the journal must ignore undo and redo,
// e.g. while an animation is being presented.
type Blocker interface {
	Busy() bool
}

// Entry wraps an operation with metadata.
type Entry[Op Operation] struct {
	Op        Op
	Timestamp time.Time
}

// EntryInfo describes an entry for rendering a history list.
type EntryInfo struct {
	Description string    `json:"description"`
	Applied     bool      `json:"applied"`
	Timestamp   time.Time `json:"timestamp"`
}

// Log is a branch-truncating undo/redo journal.
// It is not safe for concurrent use.
type Log[Op Operation] struct {
	entries []Entry[Op]
	cursor  int
	blocker Blocker
	now     func() time.Time
}

// Option configures a Log.
type Option func(*options)

type options struct {
	blocker Blocker
	now     func() time.Time
}

// WithBlocker makes Undo and Redo no-ops while b reports busy.
func WithBlocker(b Blocker) Option {
	return func(o *options) {
		o.blocker = b
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New creates an empty journal.
func New[Op Operation](opts ...Option) *Log[Op] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Log[Op]{
		cursor:  -1,
		blocker: o.blocker,
		now:     o.now,
	}
}

// Record appends op as the newest applied entry, discarding any redo future.
func (l *Log[Op]) Record(op Op) {
	l.entries = append(l.entries[:l.cursor+1], Entry[Op]{
		Op:        op,
		Timestamp: l.now(),
	})
	l.cursor = len(l.entries) - 1
}

// Undo hands the entry at the cursor to inverse and moves the cursor back.
// It returns the undone operation, or false when there is nothing to undo
// or the journal is blocked.
func (l *Log[Op]) Undo(inverse func(Op)) (Op, bool) {
	var zero Op
	if !l.CanUndo() {
		return zero, false
	}

	op := l.entries[l.cursor].Op
	inverse(op)
	l.cursor--
	return op, true
}

// Redo moves the cursor forward and hands that entry to forward.
// It returns the redone operation, or false when there is nothing to redo
// or the journal is blocked.
func (l *Log[Op]) Redo(forward func(Op)) (Op, bool) {
	var zero Op
	if !l.CanRedo() {
		return zero, false
	}

	l.cursor++
	op := l.entries[l.cursor].Op
	forward(op)
	return op, true
}

// CanUndo returns true if an undo would change state right now.
func (l *Log[Op]) CanUndo() bool {
	return l.HasUndo() && !l.blocked()
}

// CanRedo returns true if a redo would change state right now.
func (l *Log[Op]) CanRedo() bool {
	return l.HasRedo() && !l.blocked()
}

// HasUndo reports whether an applied entry exists, ignoring the blocker.
func (l *Log[Op]) HasUndo() bool {
	return l.cursor >= 0
}

// HasRedo reports whether an undone entry exists, ignoring the blocker.
func (l *Log[Op]) HasRedo() bool {
	return l.cursor < len(l.entries)-1
}

func (l *Log[Op]) blocked() bool {
	return l.blocker != nil && l.blocker.Busy()
}

// Cursor returns the index of the last applied entry, or -1.
func (l *Log[Op]) Cursor() int {
	return l.cursor
}

// Len returns the number of entries, applied or not.
func (l *Log[Op]) Len() int {
	return len(l.entries)
}

// Current returns the last applied operation.
func (l *Log[Op]) Current() (Op, bool) {
	if l.cursor < 0 {
		var zero Op
		return zero, false
	}
	return l.entries[l.cursor].Op, true
}

// Info lists all entries, oldest first, marking those up to the cursor as applied.
func (l *Log[Op]) Info() []EntryInfo {
	out := make([]EntryInfo, len(l.entries))
	for i, e := range l.entries {
		out[i] = EntryInfo{
			Description: e.Op.Description(),
			Applied:     i <= l.cursor,
			Timestamp:   e.Timestamp,
		}
	}
	return out
}

// Reset drops every entry.
func (l *Log[Op]) Reset() {
	l.entries = nil
	l.cursor = -1
}
