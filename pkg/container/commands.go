package container

import "fmt"

// StackOpKind tags a stack history entry.
type StackOpKind int

const (
	StackPush StackOpKind = iota
	StackPop
	StackClear
)

// StackOp is a recorded stack mutation.
// Snapshot holds the element sequence, bottom first, before the mutation.
type StackOp[T any] struct {
	Kind     StackOpKind
	Value    T
	Snapshot []T
}

// Description returns the history list label.
func (o StackOp[T]) Description() string {
	switch o.Kind {
	case StackPush:
		return fmt.Sprintf("Push %v", o.Value)
	case StackPop:
		return fmt.Sprintf("Pop %v", o.Value)
	case StackClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// QueueOpKind tags a queue history entry.
type QueueOpKind int

const (
	QueueEnqueue QueueOpKind = iota
	QueueDequeue
	QueueClear
)

// QueueOp is a recorded queue mutation.
// Snapshot holds the element sequence, front first, before the mutation, and
// Front the raw front index at that moment (-1 when the queue was empty).
type QueueOp[T any] struct {
	Kind     QueueOpKind
	Value    T
	Snapshot []T
	Front    int
}

// Description returns the history list label.
func (o QueueOp[T]) Description() string {
	switch o.Kind {
	case QueueEnqueue:
		return fmt.Sprintf("Enqueue %v", o.Value)
	case QueueDequeue:
		return fmt.Sprintf("Dequeue %v", o.Value)
	case QueueClear:
		return "Clear"
	default:
		return "Unknown"
	}
}
