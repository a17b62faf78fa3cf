package container_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lineviz/pkg/container"
)

type queueState struct {
	Front, Rear, Size int
	Slots             []container.Slot[int]
}

func captureQueue(q *container.Queue[int]) queueState {
	s := q.Snapshot()
	return queueState{Front: s.Front, Rear: s.Rear, Size: s.Size, Slots: s.Slots}
}

type stackState struct {
	Top   int
	Slots []container.Slot[int]
}

func captureStack(s *container.Stack[int]) stackState {
	snap := s.Snapshot()
	return stackState{Top: snap.Top, Slots: snap.Slots}
}

// Undoing every recorded operation and redoing them again must visit the
// same states, including raw indices, that the forward run produced.
func TestQueue_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		q := container.NewQueue[int](container.WithAnimationTicks(0))
		states := []queueState{captureQueue(q)}

		for i := 0; i < 40; i++ {
			var recorded bool
			switch rng.Intn(5) {
			case 0, 1:
				recorded = q.Enqueue(i) == nil
			case 2, 3:
				_, err := q.Dequeue()
				recorded = err == nil
			default:
				recorded = !q.IsEmpty()
				q.Clear()
			}
			require.NoError(t, q.Validate())
			if recorded {
				states = append(states, captureQueue(q))
			}
		}
		require.Equal(t, len(states)-1, q.History().Len())

		for i := len(states) - 2; i >= 0; i-- {
			require.True(t, q.Undo())
			require.NoError(t, q.Validate())
			assert.Equal(t, states[i], captureQueue(q), "run %d undo to %d", run, i)
		}
		assert.False(t, q.Undo())

		for i := 1; i < len(states); i++ {
			require.True(t, q.Redo())
			require.NoError(t, q.Validate())
			assert.Equal(t, states[i], captureQueue(q), "run %d redo to %d", run, i)
		}
		assert.False(t, q.Redo())
	}
}

func TestStack_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		s := container.NewStack[int](container.WithAnimationTicks(0))
		states := []stackState{captureStack(s)}

		for i := 0; i < 40; i++ {
			var recorded bool
			switch rng.Intn(5) {
			case 0, 1:
				recorded = s.Push(i) == nil
			case 2, 3:
				_, err := s.Pop()
				recorded = err == nil
			default:
				recorded = !s.IsEmpty()
				s.Clear()
			}
			require.NoError(t, s.Validate())
			if recorded {
				states = append(states, captureStack(s))
			}
		}

		for i := len(states) - 2; i >= 0; i-- {
			require.True(t, s.Undo())
			assert.Equal(t, states[i], captureStack(s), "run %d undo to %d", run, i)
		}
		for i := 1; i < len(states); i++ {
			require.True(t, s.Redo())
			assert.Equal(t, states[i], captureStack(s), "run %d redo to %d", run, i)
		}
	}
}
