package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lineviz/pkg/container"
	"github.com/aretw0/lineviz/pkg/domain"
)

func newQueue(t *testing.T, values ...int) *container.Queue[int] {
	t.Helper()
	q := container.NewQueue[int](container.WithAnimationTicks(0))
	for _, v := range values {
		require.NoError(t, q.Enqueue(v))
	}
	return q
}

func indices(q *container.Queue[int]) [3]int {
	f, r := q.Indices()
	return [3]int{f, r, q.Len()}
}

func TestQueue_EnqueueDequeue(t *testing.T) {
	q := newQueue(t, 1, 2, 3)
	assert.Equal(t, [3]int{0, 2, 3}, indices(q))
	assert.Equal(t, "Enqueued value: 3", q.Status())
	assert.Equal(t, "Size: 3/5", q.Indicator())

	v, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, "Front element: 1", q.Status())

	v, err = q.Rear()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, "Rear element: 3", q.Status())

	v, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, "Dequeued value: 1", q.Status())
	assert.Equal(t, [3]int{1, 2, 2}, indices(q))
	assert.Equal(t, []int{2, 3}, q.Values())
}

func TestQueue_LastDequeueResetsIndices(t *testing.T) {
	q := newQueue(t, 1)
	_, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, [3]int{-1, -1, 0}, indices(q))
	assert.NoError(t, q.Validate())
}

func TestQueue_Underflow(t *testing.T) {
	q := newQueue(t)

	_, err := q.Dequeue()
	require.ErrorIs(t, err, domain.ErrUnderflow)
	assert.Equal(t, "Queue Underflow!", q.Status())
	assert.Equal(t, [3]int{-1, -1, 0}, indices(q))

	_, err = q.Front()
	require.ErrorIs(t, err, domain.ErrUnderflow)
	assert.Equal(t, "Queue is empty!", q.Status())
	_, err = q.Rear()
	require.ErrorIs(t, err, domain.ErrUnderflow)
	assert.Equal(t, 0, q.History().Len())
}

func TestQueue_Overflow(t *testing.T) {
	q := newQueue(t, 1, 2, 3, 4, 5)

	err := q.Enqueue(6)
	require.ErrorIs(t, err, domain.ErrOverflow)
	assert.Equal(t, "Queue Overflow!", q.Status())
	assert.Equal(t, 5, q.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, q.Values())
}

func TestQueue_WrapAround(t *testing.T) {
	q := newQueue(t, 1, 2, 3, 4, 5)
	for i := 0; i < 3; i++ {
		_, err := q.Dequeue()
		require.NoError(t, err)
	}
	require.NoError(t, q.Enqueue(6))
	require.NoError(t, q.Enqueue(7))

	assert.Equal(t, [3]int{3, 1, 4}, indices(q))
	assert.Equal(t, []int{4, 5, 6, 7}, q.Values())
	assert.True(t, q.Occupied(0))
	assert.False(t, q.Occupied(2))
	assert.NoError(t, q.Validate())

	slots := q.Slots()
	assert.Equal(t, container.Slot[int]{Index: 0, Value: 6, Occupied: true}, slots[0])
	assert.Equal(t, container.Slot[int]{Index: 2}, slots[2])
}

func TestQueue_UndoDequeueThatEmptied(t *testing.T) {
	q := newQueue(t, 1, 2, 3, 4)
	for i := 0; i < 4; i++ {
		_, err := q.Dequeue()
		require.NoError(t, err)
	}
	require.NoError(t, q.Enqueue(9))
	require.NoError(t, q.Enqueue(8))
	_, err := q.Dequeue()
	require.NoError(t, err)
	_, err = q.Dequeue()
	require.NoError(t, err)
	require.True(t, q.IsEmpty())

	require.True(t, q.Undo())
	assert.Equal(t, [3]int{1, 1, 1}, indices(q))
	assert.Equal(t, []int{8}, q.Values())
	assert.Equal(t, "Undo: Dequeue 8", q.Status())
	assert.NoError(t, q.Validate())
}

func TestQueue_UndoClearRestoresLayout(t *testing.T) {
	q := newQueue(t, 1, 2, 3, 4, 5)
	_, err := q.Dequeue()
	require.NoError(t, err)
	_, err = q.Dequeue()
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(6))
	before := q.Snapshot()

	q.Clear()
	assert.Equal(t, "Queue cleared", q.Status())
	assert.True(t, q.IsEmpty())

	require.True(t, q.Undo())
	after := q.Snapshot()
	assert.Equal(t, before.Front, after.Front)
	assert.Equal(t, before.Rear, after.Rear)
	assert.Equal(t, before.Slots, after.Slots)
	assert.Equal(t, []int{3, 4, 5, 6}, q.Values())
}

func TestQueue_ClearEmptyIsNotRecorded(t *testing.T) {
	q := newQueue(t)
	q.Clear()
	assert.Equal(t, 0, q.History().Len())
	assert.Equal(t, "Queue is empty", q.Status())
}

func TestQueue_BusyBlocksHistory(t *testing.T) {
	q := container.NewQueue[int]()
	require.NoError(t, q.Enqueue(1))

	assert.False(t, q.Redo())
	assert.Equal(t, "Nothing to redo", q.Status())

	assert.False(t, q.Undo())
	assert.Equal(t, "Please wait for the animation to finish before undo", q.Status())
	assert.Equal(t, []int{1}, q.Values())

	q.Settle()
	require.True(t, q.Undo())
	assert.True(t, q.IsEmpty())
}

func queueView(q *container.Queue[int]) container.QueueSnapshot[int] {
	snap := q.Snapshot()
	snap.Status = ""
	return snap
}

func TestQueue_HistoryEdgesChangeNothing(t *testing.T) {
	q := newQueue(t)
	before := queueView(q)
	assert.False(t, q.Undo())
	assert.Equal(t, before, queueView(q))
	assert.Equal(t, -1, q.History().Cursor())

	// Wrap the ring so front and rear are not at their initial slots.
	q = newQueue(t, 1, 2, 3, 4, 5)
	_, err := q.Dequeue()
	require.NoError(t, err)
	_, err = q.Dequeue()
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(6))

	end := queueView(q)
	endIdx := indices(q)
	assert.False(t, q.Redo())
	assert.Equal(t, "Nothing to redo", q.Status())
	assert.Equal(t, end, queueView(q))
	assert.Equal(t, endIdx, indices(q))
	assert.Equal(t, q.History().Len()-1, q.History().Cursor())

	for q.Undo() {
	}
	start := queueView(q)
	assert.Equal(t, -1, q.History().Cursor())
	assert.False(t, q.Undo())
	assert.Equal(t, "Nothing to undo", q.Status())
	assert.Equal(t, start, queueView(q))
	assert.Equal(t, [3]int{-1, -1, 0}, indices(q))
}

func TestQueue_TickLength(t *testing.T) {
	q := container.NewQueue[int]()
	require.NoError(t, q.Enqueue(1))

	n := 0
	for q.Tick() {
		n++
	}
	assert.Equal(t, container.DefaultQueueTicks-1, n)
	assert.False(t, q.Busy())
}
