package container

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/lineviz/pkg/animation"
	"github.com/aretw0/lineviz/pkg/domain"
	"github.com/aretw0/lineviz/pkg/history"
)

// Queue is a fixed-capacity circular FIFO container with undo/redo.
// Elements are inserted at next(rear) and removed at front; both indices
// are -1 when the queue is empty. size is maintained separately and must
// always equal the arc length front..rear.
type Queue[T any] struct {
	slots  []T
	front  int
	rear   int
	size   int
	ring   ring
	log    *history.Log[QueueOp[T]]
	anim   *animation.Ticker
	status string
	logger *slog.Logger
}

// QueueSnapshot is a read-only view of a Queue for rendering.
type QueueSnapshot[T any] struct {
	Capacity      int                 `json:"capacity"`
	Front         int                 `json:"front"`
	Rear          int                 `json:"rear"`
	Size          int                 `json:"size"`
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

// NewQueue creates an empty queue.
func NewQueue[T any](opts ...Option) *Queue[T] {
	cfg := newConfig(DefaultQueueTicks, opts)
	anim := animation.NewTicker(cfg.ticks)
	return &Queue[T]{
		slots:  make([]T, cfg.capacity),
		front:  -1,
		rear:   -1,
		ring:   ring{size: cfg.capacity},
		log:    history.New[QueueOp[T]](history.WithBlocker(anim)),
		anim:   anim,
		status: "Queue is empty",
		logger: cfg.logger,
	}
}

// Enqueue appends v at the rear. It fails with domain.ErrOverflow when full.
func (q *Queue[T]) Enqueue(v T) error {
	if q.IsFull() {
		q.status = "Queue Overflow!"
		return fmt.Errorf("enqueue %v: %w", v, domain.ErrOverflow)
	}

	q.log.Record(QueueOp[T]{Kind: QueueEnqueue, Value: v, Snapshot: q.Values(), Front: q.front})
	q.insert(v)
	q.anim.Start()

	q.status = fmt.Sprintf("Enqueued value: %v", v)
	q.logger.Debug("queue enqueue", "value", v, "front", q.front, "rear", q.rear, "size", q.size)
	return nil
}

// Dequeue removes and returns the front element. It fails with domain.ErrUnderflow when empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		q.status = "Queue Underflow!"
		return zero[T](), fmt.Errorf("dequeue: %w", domain.ErrUnderflow)
	}

	v := q.slots[q.front]
	q.log.Record(QueueOp[T]{Kind: QueueDequeue, Value: v, Snapshot: q.Values(), Front: q.front})
	q.remove()
	q.anim.Start()

	q.status = fmt.Sprintf("Dequeued value: %v", v)
	q.logger.Debug("queue dequeue", "value", v, "front", q.front, "rear", q.rear, "size", q.size)
	return v, nil
}

// Front returns the front element without removing it.
func (q *Queue[T]) Front() (T, error) {
	if q.IsEmpty() {
		q.status = "Queue is empty!"
		return zero[T](), fmt.Errorf("front: %w", domain.ErrUnderflow)
	}
	v := q.slots[q.front]
	q.status = fmt.Sprintf("Front element: %v", v)
	return v, nil
}

// Rear returns the rear element without removing it.
func (q *Queue[T]) Rear() (T, error) {
	if q.IsEmpty() {
		q.status = "Queue is empty!"
		return zero[T](), fmt.Errorf("rear: %w", domain.ErrUnderflow)
	}
	v := q.slots[q.rear]
	q.status = fmt.Sprintf("Rear element: %v", v)
	return v, nil
}

// Clear empties the queue. It is a no-op, and records nothing, when already empty.
func (q *Queue[T]) Clear() {
	if q.IsEmpty() {
		q.status = "Queue is empty"
		return
	}
	q.log.Record(QueueOp[T]{Kind: QueueClear, Snapshot: q.Values(), Front: q.front})
	q.reset()
	q.status = "Queue cleared"
	q.logger.Debug("queue clear")
}

// Undo reverts the last applied operation.
// It returns false, changing nothing, when there is nothing to undo or an animation is running.
func (q *Queue[T]) Undo() bool {
	op, ok := q.log.Undo(q.revert)
	if !ok {
		q.status = historyStatus("undo", q.log.HasUndo(), q.anim.Busy())
		return false
	}
	q.status = "Undo: " + op.Description()
	q.logger.Debug("queue undo", "op", op.Description(), "front", q.front, "rear", q.rear, "size", q.size)
	return true
}

// Redo re-applies the next undone operation.
// It returns false, changing nothing, when there is nothing to redo or an animation is running.
func (q *Queue[T]) Redo() bool {
	op, ok := q.log.Redo(q.replay)
	if !ok {
		q.status = historyStatus("redo", q.log.HasRedo(), q.anim.Busy())
		return false
	}
	q.status = "Redo: " + op.Description()
	q.logger.Debug("queue redo", "op", op.Description(), "front", q.front, "rear", q.rear, "size", q.size)
	return true
}

func (q *Queue[T]) revert(op QueueOp[T]) {
	switch op.Kind {
	case QueueEnqueue:
		if q.front == q.rear {
			q.front, q.rear = -1, -1
		} else {
			q.rear = q.ring.prev(q.rear)
		}
		q.size--
	case QueueDequeue:
		// op.Front is where the element was read; it is also the rear
		// when the dequeue emptied the queue.
		if q.size == 0 {
			q.rear = op.Front
		}
		q.front = op.Front
		q.slots[q.front] = op.Value
		q.size++
	case QueueClear:
		for i, v := range op.Snapshot {
			q.slots[q.ring.at(op.Front, i)] = v
		}
		q.front = op.Front
		q.rear = q.ring.at(op.Front, len(op.Snapshot)-1)
		q.size = len(op.Snapshot)
	}
}

func (q *Queue[T]) replay(op QueueOp[T]) {
	switch op.Kind {
	case QueueEnqueue:
		q.insert(op.Value)
	case QueueDequeue:
		q.remove()
	case QueueClear:
		q.reset()
	}
}

func (q *Queue[T]) insert(v T) {
	if q.size == 0 {
		q.front, q.rear = 0, 0
	} else {
		q.rear = q.ring.next(q.rear)
	}
	q.slots[q.rear] = v
	q.size++
}

func (q *Queue[T]) remove() {
	if q.front == q.rear {
		q.reset()
		return
	}
	q.front = q.ring.next(q.front)
	q.size--
}

func (q *Queue[T]) reset() {
	q.front, q.rear = -1, -1
	q.size = 0
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int { return q.size }

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int { return len(q.slots) }

// IsEmpty reports whether the queue holds no element.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// IsFull reports whether the queue is at capacity.
func (q *Queue[T]) IsFull() bool { return q.size == len(q.slots) }

// Indices returns the raw front and rear indices, both -1 when empty.
func (q *Queue[T]) Indices() (front, rear int) { return q.front, q.rear }

// Occupied reports whether slot i lies on the circular arc front..rear.
func (q *Queue[T]) Occupied(i int) bool {
	return q.ring.contains(q.front, q.rear, i)
}

// Values returns the elements front first.
func (q *Queue[T]) Values() []T {
	out := make([]T, q.size)
	for i := range out {
		out[i] = q.slots[q.ring.at(q.front, i)]
	}
	return out
}

// Slots returns every physical slot in index order.
func (q *Queue[T]) Slots() []Slot[T] {
	out := make([]Slot[T], len(q.slots))
	for i := range q.slots {
		out[i] = Slot[T]{Index: i}
		if q.Occupied(i) {
			out[i].Value = q.slots[i]
			out[i].Occupied = true
		}
	}
	return out
}

// Tick advances the animation and reports whether it is still running.
func (q *Queue[T]) Tick() bool { return q.anim.Tick() }

// Settle finishes the running animation.
func (q *Queue[T]) Settle() { q.anim.Settle() }

// Busy reports whether an animation is running.
func (q *Queue[T]) Busy() bool { return q.anim.Busy() }

// Status returns the message describing the last operation.
func (q *Queue[T]) Status() string { return q.status }

// Indicator returns the size line, e.g. "Size: 3/5".
func (q *Queue[T]) Indicator() string {
	return fmt.Sprintf("Size: %d/%d", q.size, q.Cap())
}

// History returns the journal. Callers must not record into it.
func (q *Queue[T]) History() *history.Log[QueueOp[T]] { return q.log }

// Validate checks that the index pair and the size counter agree.
func (q *Queue[T]) Validate() error {
	if q.size < 0 || q.size > len(q.slots) {
		return fmt.Errorf("%w: size=%d capacity=%d", domain.ErrCorruptState, q.size, len(q.slots))
	}
	if (q.front == -1) != (q.rear == -1) {
		return fmt.Errorf("%w: front=%d rear=%d", domain.ErrCorruptState, q.front, q.rear)
	}
	if q.front == -1 {
		if q.size != 0 {
			return fmt.Errorf("%w: empty indices with size=%d", domain.ErrCorruptState, q.size)
		}
		return nil
	}
	if !q.ring.valid(q.front) || !q.ring.valid(q.rear) {
		return fmt.Errorf("%w: front=%d rear=%d out of range", domain.ErrCorruptState, q.front, q.rear)
	}
	if span := q.ring.span(q.front, q.rear); span != q.size {
		return fmt.Errorf("%w: arc %d..%d holds %d, size=%d", domain.ErrCorruptState, q.front, q.rear, span, q.size)
	}
	return nil
}

// Snapshot returns a read-only view for rendering.
func (q *Queue[T]) Snapshot() QueueSnapshot[T] {
	return QueueSnapshot[T]{
		Capacity:      q.Cap(),
		Front:         q.front,
		Rear:          q.rear,
		Size:          q.size,
		Values:        q.Values(),
		Slots:         q.Slots(),
		History:       q.log.Info(),
		HistoryCursor: q.log.Cursor(),
		CanUndo:       q.log.CanUndo(),
		CanRedo:       q.log.CanRedo(),
		Busy:          q.anim.Busy(),
		Status:        q.status,
		Indicator:     q.Indicator(),
	}
}
