package container

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/lineviz/pkg/animation"
	"github.com/aretw0/lineviz/pkg/domain"
	"github.com/aretw0/lineviz/pkg/history"
)

// Stack is a fixed-capacity LIFO container with undo/redo.
// Insertion and removal happen only at top+1 and top; top is -1 when empty.
type Stack[T any] struct {
	slots  []T
	top    int
	log    *history.Log[StackOp[T]]
	anim   *animation.Ticker
	status string
	logger *slog.Logger
}

// StackSnapshot is a read-only view of a Stack for rendering.
type StackSnapshot[T any] struct {
	Capacity      int                 `json:"capacity"`
	Top           int                 `json:"top"`
	Values        []T                 `json:"values"`
	Slots         []Slot[T]           `json:"slots"`
	History       []history.EntryInfo `json:"history"`
	HistoryCursor int                 `json:"history_cursor"`
	CanUndo       bool                `json:"can_undo"`
	CanRedo       bool                `json:"can_redo"`
	Busy          bool                `json:"busy"`
	Status        string              `json:"status"`
	Indicator     string              `json:"indicator"`
}

// NewStack creates an empty stack.
func NewStack[T any](opts ...Option) *Stack[T] {
	cfg := newConfig(DefaultStackTicks, opts)
	anim := animation.NewTicker(cfg.ticks)
	return &Stack[T]{
		slots:  make([]T, cfg.capacity),
		top:    -1,
		log:    history.New[StackOp[T]](history.WithBlocker(anim)),
		anim:   anim,
		status: "Stack is empty",
		logger: cfg.logger,
	}
}

// Push places v on top. It fails with domain.ErrOverflow when full.
func (s *Stack[T]) Push(v T) error {
	if s.IsFull() {
		s.status = "Stack Overflow!"
		return fmt.Errorf("push %v: %w", v, domain.ErrOverflow)
	}

	s.log.Record(StackOp[T]{Kind: StackPush, Value: v, Snapshot: s.Values()})
	s.insert(v)
	s.anim.Start()

	s.status = fmt.Sprintf("Pushed value: %v", v)
	s.logger.Debug("stack push", "value", v, "top", s.top)
	return nil
}

// Pop removes and returns the top element. It fails with domain.ErrUnderflow when empty.
func (s *Stack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		s.status = "Stack Underflow!"
		return zero[T](), fmt.Errorf("pop: %w", domain.ErrUnderflow)
	}

	v := s.slots[s.top]
	s.log.Record(StackOp[T]{Kind: StackPop, Value: v, Snapshot: s.Values()})
	s.top--
	s.anim.Start()

	s.status = fmt.Sprintf("Popped value: %v", v)
	s.logger.Debug("stack pop", "value", v, "top", s.top)
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		s.status = "Stack Underflow!"
		return zero[T](), fmt.Errorf("peek: %w", domain.ErrUnderflow)
	}
	v := s.slots[s.top]
	s.status = fmt.Sprintf("Top element: %v", v)
	return v, nil
}

// Clear empties the stack. It is a no-op, and records nothing, when already empty.
func (s *Stack[T]) Clear() {
	if s.IsEmpty() {
		s.status = "Stack is empty"
		return
	}
	s.log.Record(StackOp[T]{Kind: StackClear, Snapshot: s.Values()})
	s.top = -1
	s.status = "Stack cleared"
	s.logger.Debug("stack clear")
}

// Undo reverts the last applied operation.
// It returns false, changing nothing, when there is nothing to undo or an animation is running.
func (s *Stack[T]) Undo() bool {
	op, ok := s.log.Undo(s.revert)
	if !ok {
		s.status = historyStatus("undo", s.log.HasUndo(), s.anim.Busy())
		return false
	}
	s.status = "Undo: " + op.Description()
	s.logger.Debug("stack undo", "op", op.Description(), "top", s.top)
	return true
}

// Redo re-applies the next undone operation.
// It returns false, changing nothing, when there is nothing to redo or an animation is running.
func (s *Stack[T]) Redo() bool {
	op, ok := s.log.Redo(s.replay)
	if !ok {
		s.status = historyStatus("redo", s.log.HasRedo(), s.anim.Busy())
		return false
	}
	s.status = "Redo: " + op.Description()
	s.logger.Debug("stack redo", "op", op.Description(), "top", s.top)
	return true
}

func (s *Stack[T]) revert(op StackOp[T]) {
	switch op.Kind {
	case StackPush:
		s.top--
	case StackPop:
		s.insert(op.Value)
	case StackClear:
		copy(s.slots, op.Snapshot)
		s.top = len(op.Snapshot) - 1
	}
}

func (s *Stack[T]) replay(op StackOp[T]) {
	switch op.Kind {
	case StackPush:
		s.insert(op.Value)
	case StackPop:
		s.top--
	case StackClear:
		s.top = -1
	}
}

func (s *Stack[T]) insert(v T) {
	s.top++
	s.slots[s.top] = v
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.top + 1 }

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int { return len(s.slots) }

// IsEmpty reports whether the stack holds no element.
func (s *Stack[T]) IsEmpty() bool { return s.top == -1 }

// IsFull reports whether the stack is at capacity.
func (s *Stack[T]) IsFull() bool { return s.top == len(s.slots)-1 }

// Top returns the raw top index, -1 when empty.
func (s *Stack[T]) Top() int { return s.top }

// Values returns the elements bottom first.
func (s *Stack[T]) Values() []T {
	out := make([]T, s.top+1)
	copy(out, s.slots[:s.top+1])
	return out
}

// Slots returns every physical slot, index 0 at the bottom.
func (s *Stack[T]) Slots() []Slot[T] {
	out := make([]Slot[T], len(s.slots))
	for i := range s.slots {
		out[i] = Slot[T]{Index: i}
		if i <= s.top {
			out[i].Value = s.slots[i]
			out[i].Occupied = true
		}
	}
	return out
}

// Tick advances the animation and reports whether it is still running.
func (s *Stack[T]) Tick() bool { return s.anim.Tick() }

// Settle finishes the running animation.
func (s *Stack[T]) Settle() { s.anim.Settle() }

// Busy reports whether an animation is running.
func (s *Stack[T]) Busy() bool { return s.anim.Busy() }

// Status returns the message describing the last operation.
func (s *Stack[T]) Status() string { return s.status }

// Indicator returns the capacity line, e.g. "Capacity: 3/5".
func (s *Stack[T]) Indicator() string {
	return fmt.Sprintf("Capacity: %d/%d", s.Len(), s.Cap())
}

// History returns the journal. Callers must not record into it.
func (s *Stack[T]) History() *history.Log[StackOp[T]] { return s.log }

// Validate checks the structural invariants.
func (s *Stack[T]) Validate() error {
	if s.top < -1 || s.top >= len(s.slots) {
		return fmt.Errorf("%w: top=%d capacity=%d", domain.ErrCorruptState, s.top, len(s.slots))
	}
	return nil
}

// Snapshot returns a read-only view for rendering.
func (s *Stack[T]) Snapshot() StackSnapshot[T] {
	return StackSnapshot[T]{
		Capacity:      s.Cap(),
		Top:           s.top,
		Values:        s.Values(),
		Slots:         s.Slots(),
		History:       s.log.Info(),
		HistoryCursor: s.log.Cursor(),
		CanUndo:       s.log.CanUndo(),
		CanRedo:       s.log.CanRedo(),
		Busy:          s.anim.Busy(),
		Status:        s.status,
		Indicator:     s.Indicator(),
	}
}
