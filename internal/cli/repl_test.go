package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lineviz"
	"github.com/aretw0/lineviz/internal/presentation/tui"
)

func runScript(t *testing.T, script string) (string, *lineviz.Workbench) {
	t.Helper()
	var out bytes.Buffer
	wb := lineviz.New()
	r := NewREPL(wb, strings.NewReader(script), &out, tui.NewView(termenv.Ascii), WithPrompt(""))
	require.NoError(t, r.Run(context.Background()))
	return out.String(), wb
}

func TestREPL_StackSession(t *testing.T) {
	out, wb := runScript(t, strings.Join([]string{
		"stack push 3",
		"s push 8",
		"undo",
		"redo",
		"pop",
		"quit",
		"stack push 99",
	}, "\n"))

	assert.Contains(t, out, "Pushed value: 3")
	assert.Contains(t, out, "Undo: Push 8")
	assert.Contains(t, out, "Redo: Push 8")
	assert.Contains(t, out, "Popped value: 8")
	assert.Contains(t, out, ">>> Bye.")
	assert.NotContains(t, out, "99", "lines after quit are ignored")
	assert.Equal(t, []int{3}, wb.Stack().Values())
}

func TestREPL_UndoFollowsLastTarget(t *testing.T) {
	out, wb := runScript(t, "push 1\nenqueue 2\nundo\n")

	assert.Contains(t, out, "Undo: Enqueue 2")
	assert.Equal(t, []int{1}, wb.Stack().Values())
	assert.True(t, wb.Queue().IsEmpty())
}

func TestREPL_Postfix(t *testing.T) {
	out, _ := runScript(t, "postfix start A + B * C\np step\np run\n")

	assert.Contains(t, out, "Conversion started.")
	assert.Contains(t, out, "Added operand: A")
	assert.Contains(t, out, "Final Result: ABC*+")
}

func TestREPL_ErrorsArePrinted(t *testing.T) {
	out, _ := runScript(t, "fly\nundo\nq dequeue\nstack push\np start (A\np run\n")

	assert.Contains(t, out, `error: unknown command "fly"`)
	assert.Contains(t, out, "error: no target used yet")
	assert.Contains(t, out, "Queue Underflow!")
	assert.Contains(t, out, "error: push: missing value")
	assert.Contains(t, out, "Found unmatched parenthesis - invalid expression")
}

func TestREPL_Help(t *testing.T) {
	out, _ := runScript(t, "help\nhelp stack\n")
	assert.Contains(t, out, "# lineviz")
	assert.Contains(t, out, "# Stack")
}

func TestREPL_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewREPL(lineviz.New(), pr, &out, tui.NewView(termenv.Ascii))
	require.NoError(t, r.Run(ctx))
	assert.Contains(t, out.String(), "Interrupted.")
}

func TestREPL_InterruptedBySignal(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(&SignalError{Signal: os.Interrupt})

	var out bytes.Buffer
	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewREPL(lineviz.New(), pr, &out, tui.NewView(termenv.Ascii))
	require.NoError(t, r.Run(ctx))
	assert.Contains(t, out.String(), "Interrupted by interrupt.")
}
