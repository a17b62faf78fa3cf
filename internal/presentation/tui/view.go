package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/lineviz/pkg/container"
	"github.com/aretw0/lineviz/pkg/domain"
	"github.com/aretw0/lineviz/pkg/history"
)

// View colors.
const (
	ColorStack   = "#81C784"
	ColorQueue   = "#64B5F6"
	ColorPostfix = "#FFB74D"
	ColorError   = "#E57373"
	ColorMuted   = "#9E9E9E"
)

const cellWidth = 5

// View renders workbench snapshots as plain terminal text.
type View struct {
	p termenv.Profile
}

// NewView creates a view for the given color profile.
// termenv.Ascii produces uncolored output.
func NewView(p termenv.Profile) *View {
	return &View{p: p}
}

func (v *View) paint(s, color string) string {
	return v.p.String(s).Foreground(v.p.Color(color)).String()
}

func (v *View) bold(s, color string) string {
	return v.p.String(s).Foreground(v.p.Color(color)).Bold().String()
}

func cell(s string) string {
	pad := cellWidth - len(s)
	if pad < 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Status renders a status line, highlighting rejections.
func (v *View) Status(status string, rejected bool) string {
	if rejected {
		return v.bold(status, ColorError)
	}
	return status
}

// Stack renders the stack vertically, top slot first.
func (v *View) Stack(s container.StackSnapshot[int]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", v.bold("Stack", ColorStack), s.Indicator)

	for i := len(s.Slots) - 1; i >= 0; i-- {
		slot := s.Slots[i]
		body := cell("")
		if slot.Occupied {
			body = v.paint(cell(strconv.Itoa(slot.Value)), ColorStack)
		}
		marker := ""
		if i == s.Top {
			marker = " <- top"
		}
		fmt.Fprintf(&b, "  [%d] |%s|%s\n", i, body, marker)
	}
	b.WriteString("      +" + strings.Repeat("-", cellWidth) + "+\n")

	v.footer(&b, s.Status, s.History, s.HistoryCursor, s.Busy)
	return b.String()
}

// Queue renders the circular buffer horizontally with front and rear markers.
func (v *View) Queue(q container.QueueSnapshot[int]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", v.bold("Queue", ColorQueue), q.Indicator)

	var idx, cells, marks strings.Builder
	for _, slot := range q.Slots {
		idx.WriteString(" " + cell(strconv.Itoa(slot.Index)))
		if slot.Occupied {
			cells.WriteString("[" + v.paint(cell(strconv.Itoa(slot.Value)), ColorQueue))
		} else {
			cells.WriteString("[" + cell(""))
		}

		var m string
		switch {
		case slot.Index == q.Front && slot.Index == q.Rear:
			m = "F/R"
		case slot.Index == q.Front:
			m = "F"
		case slot.Index == q.Rear:
			m = "R"
		}
		marks.WriteString(" " + cell(m))
	}
	cells.WriteString("]")

	fmt.Fprintf(&b, "  %s\n  %s\n  %s\n", idx.String(), cells.String(), marks.String())
	fmt.Fprintf(&b, "  front=%d rear=%d\n", q.Front, q.Rear)

	v.footer(&b, q.Status, q.History, q.HistoryCursor, q.Busy)
	return b.String()
}

// Conversion renders the input with a cursor, the operator stack and the output.
func (v *View) Conversion(c domain.ConversionState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  phase: %s\n", v.bold("Infix to Postfix", ColorPostfix), c.Phase)

	if c.Input != "" {
		fmt.Fprintf(&b, "  Input:  %s\n", c.Input)
		if !c.Phase.Terminal() && c.Cursor <= len([]rune(c.Input)) {
			fmt.Fprintf(&b, "          %s^\n", strings.Repeat(" ", c.Cursor))
		}
	}
	fmt.Fprintf(&b, "  Stack:  %s\n", v.paint(c.StackString(), ColorPostfix))
	fmt.Fprintf(&b, "  Output: %s\n", c.Postfix())

	if c.Explanation != "" {
		b.WriteString("  " + v.Status(c.Explanation, c.Phase == domain.PhaseError) + "\n")
	}
	if c.Phase == domain.PhaseDone {
		fmt.Fprintf(&b, "  Final Result: %s\n", v.bold(c.Postfix(), ColorPostfix))
	}
	return b.String()
}

func (v *View) footer(b *strings.Builder, status string, entries []history.EntryInfo, cursor int, busy bool) {
	if status != "" {
		fmt.Fprintf(b, "  %s\n", status)
	}
	if busy {
		b.WriteString("  " + v.paint("(animating)", ColorMuted) + "\n")
	}
	if len(entries) == 0 {
		return
	}

	b.WriteString("  History:\n")
	for i, e := range entries {
		prefix := "   "
		if i == cursor {
			prefix = " > "
		}
		label := e.Description
		if !e.Applied {
			label = v.paint(label+" (undone)", ColorMuted)
		}
		fmt.Fprintf(b, "  %s%d. %s\n", prefix, i+1, label)
	}
}
