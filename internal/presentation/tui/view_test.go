package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lineviz/pkg/container"
	"github.com/aretw0/lineviz/pkg/domain"
	"github.com/aretw0/lineviz/pkg/postfix"
)

func TestView_Stack(t *testing.T) {
	s := container.NewStack[int](container.WithAnimationTicks(0))
	require.NoError(t, s.Push(3))
	require.NoError(t, s.Push(8))
	require.True(t, s.Undo())

	out := NewView(termenv.Ascii).Stack(s.Snapshot())

	assert.Contains(t, out, "Capacity: 1/5")
	assert.Contains(t, out, "[0] |  3  | <- top")
	assert.Contains(t, out, "[1] |     |")
	assert.Contains(t, out, "Undo: Push 8")
	assert.Contains(t, out, " > 1. Push 3")
	assert.Contains(t, out, "2. Push 8 (undone)")
}

func TestView_Queue(t *testing.T) {
	q := container.NewQueue[int](container.WithAnimationTicks(0))
	for _, v := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, q.Enqueue(v))
	}
	_, err := q.Dequeue()
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(6))

	out := NewView(termenv.Ascii).Queue(q.Snapshot())

	assert.Contains(t, out, "Size: 5/5")
	assert.Contains(t, out, "front=1 rear=0")
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "[  6  [  2  [  3  [  4  [  5  ]", strings.TrimSpace(lines[2]))
	assert.Equal(t, "R     F", strings.TrimSpace(lines[3]))
}

func TestView_QueueSingleElement(t *testing.T) {
	q := container.NewQueue[int](container.WithAnimationTicks(0))
	require.NoError(t, q.Enqueue(7))

	out := NewView(termenv.Ascii).Queue(q.Snapshot())
	assert.Contains(t, out, "F/R")
}

func TestView_Conversion(t *testing.T) {
	c := postfix.New()
	require.NoError(t, c.Start("A+B"))
	c.Step()

	v := NewView(termenv.Ascii)
	out := v.Conversion(c.State())
	assert.Contains(t, out, "phase: running")
	assert.Contains(t, out, "Input:  A+B")
	assert.Contains(t, out, "           ^")
	assert.Contains(t, out, "Output: A")

	c.Run()
	out = v.Conversion(c.State())
	assert.Contains(t, out, "Final Result: AB+")
	assert.NotContains(t, out, "^\n")
}

func TestHelpMarkdown(t *testing.T) {
	assert.Contains(t, HelpMarkdown(domain.TargetStack), "Stack Overflow")
	assert.Contains(t, HelpMarkdown(domain.TargetQueue), "Queue Underflow")
	assert.Contains(t, HelpMarkdown(domain.TargetPostfix), "AB^C^")
	assert.Contains(t, HelpMarkdown(""), "help stack")

	out, err := RenderHelp(func(s string) (string, error) { return s, nil }, domain.TargetQueue)
	require.NoError(t, err)
	assert.Equal(t, queueHelp, out)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii)
	assert.Contains(t, buf.String(), "|_|_|_| |_|")
}
