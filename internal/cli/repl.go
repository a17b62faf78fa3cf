package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/lineviz"
	"github.com/aretw0/lineviz/internal/logging"
	"github.com/aretw0/lineviz/internal/presentation/tui"
	"github.com/aretw0/lineviz/pkg/domain"
)

// REPL reads line commands and drives a single Workbench.
type REPL struct {
	wb     *lineviz.Workbench
	in     io.Reader
	out    io.Writer
	view   *tui.View
	render func(string) (string, error)
	logger *slog.Logger
	prompt string
	last   domain.Target
}

// REPLOption configures a REPL.
type REPLOption func(*REPL)

// WithRenderer sets the markdown renderer used for help pages.
func WithRenderer(render func(string) (string, error)) REPLOption {
	return func(r *REPL) {
		r.render = render
	}
}

// WithLogger sets the REPL logger.
func WithLogger(logger *slog.Logger) REPLOption {
	return func(r *REPL) {
		r.logger = logger
	}
}

// WithPrompt overrides the "lineviz> " prompt. An empty prompt prints none.
func WithPrompt(prompt string) REPLOption {
	return func(r *REPL) {
		r.prompt = prompt
	}
}

// NewREPL creates a REPL over in and out.
func NewREPL(wb *lineviz.Workbench, in io.Reader, out io.Writer, view *tui.View, opts ...REPLOption) *REPL {
	r := &REPL{
		wb:     wb,
		in:     in,
		out:    out,
		view:   view,
		render: func(s string) (string, error) { return s, nil },
		logger: logging.NewNop(),
		prompt: "lineviz> ",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes lines until quit, end of input or ctx cancellation.
func (r *REPL) Run(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- ctx.Err()
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		r.printPrompt()

		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			if sig := InterruptSignal(ctx); sig != nil {
				printSystemMessage(r.out, "Interrupted by %v.", sig)
			} else {
				printSystemMessage(r.out, "Interrupted.")
			}
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil && !isInterrupted(err) {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			quit, err := r.Handle(ctx, line)
			if err != nil {
				return err
			}
			if quit {
				printSystemMessage(r.out, "Bye.")
				return nil
			}
		}
	}
}

// Handle processes a single line. It reports whether the REPL should stop.
// Only context cancellation is returned as an error; command failures are printed.
func (r *REPL) Handle(ctx context.Context, line string) (bool, error) {
	clean, err := SanitizeInput(line)
	if err != nil {
		r.logger.Warn("Input rejected", "err", err, "size", len(line))
		r.printError(err)
		return false, nil
	}

	cmd, err := ParseCommand(clean, r.last)
	if err != nil {
		r.printError(err)
		return false, nil
	}

	switch cmd.Kind {
	case CommandEmpty:
		return false, nil
	case CommandQuit:
		return true, nil
	case CommandHelp:
		out, err := tui.RenderHelp(r.render, cmd.Help)
		if err != nil {
			r.printError(err)
			return false, nil
		}
		fmt.Fprint(r.out, out)
		return false, nil
	}

	resp, err := r.wb.Execute(ctx, cmd.Request)
	if errors.Is(err, context.Canceled) {
		return false, err
	}
	if resp == nil {
		r.printError(err)
		return false, nil
	}
	r.last = cmd.Request.Target

	// No frames are drawn, so the animation completes at once.
	r.settle(cmd.Request.Target)

	fmt.Fprintln(r.out, r.view.Status(resp.Status, err != nil))
	r.show(cmd.Request.Target)
	return false, nil
}

func (r *REPL) settle(target domain.Target) {
	switch target {
	case domain.TargetStack:
		for r.wb.Stack().Tick() {
		}
	case domain.TargetQueue:
		for r.wb.Queue().Tick() {
		}
	}
}

func (r *REPL) show(target domain.Target) {
	snap := r.wb.Snapshot()
	switch target {
	case domain.TargetStack:
		fmt.Fprint(r.out, r.view.Stack(snap.Stack))
	case domain.TargetQueue:
		fmt.Fprint(r.out, r.view.Queue(snap.Queue))
	case domain.TargetPostfix:
		fmt.Fprint(r.out, r.view.Conversion(snap.Conversion))
	}
}

func (r *REPL) printPrompt() {
	if r.prompt != "" {
		fmt.Fprint(r.out, r.prompt)
	}
}

func (r *REPL) printError(err error) {
	fmt.Fprintln(r.out, r.view.Status("error: "+err.Error(), true))
}
