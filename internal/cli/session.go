package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/aretw0/lineviz"
	"github.com/aretw0/lineviz/internal/presentation/tui"
)

// RunSession starts an interactive REPL on stdin/stdout for wb.
// The banner and the glamour help renderer are only used on a terminal.
func RunSession(ctx context.Context, wb *lineviz.Workbench, logger *slog.Logger) error {
	ctx, stop := NotifyContext(ctx)
	defer stop()

	interactive := IsTerminal(os.Stdin) && IsTerminal(os.Stdout)

	profile := termenv.Ascii
	opts := []REPLOption{WithLogger(logger)}
	if interactive {
		profile = termenv.ColorProfile()
		tui.PrintBanner(os.Stdout, profile)
		fmt.Fprintln(os.Stdout, "Type 'help' for commands, 'quit' to exit.")
		opts = append(opts, WithRenderer(tui.NewRenderer()))
	} else {
		opts = append(opts, WithPrompt(""))
	}

	repl := NewREPL(wb, os.Stdin, os.Stdout, tui.NewView(profile), opts...)
	if err := repl.Run(ctx); err != nil {
		return err
	}
	if sig := InterruptSignal(ctx); sig != nil {
		logger.Debug("session interrupted", "signal", sig)
	}
	return nil
}
