package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/lineviz"
	"github.com/aretw0/lineviz/pkg/domain"
)

// CommandKind classifies a REPL line.
type CommandKind int

const (
	CommandEmpty CommandKind = iota
	CommandExecute
	CommandHelp
	CommandQuit
)

// Command is a parsed REPL line.
type Command struct {
	Kind    CommandKind
	Request lineviz.Request
	Help    domain.Target // For CommandHelp; empty means the overview
}

// ErrNoTarget is returned by undo/redo before any target was used.
var ErrNoTarget = errors.New("no target used yet: prefix the command, e.g. 'stack undo'")

// actionTargets lets an action stand alone when it belongs to a single target.
var actionTargets = map[string]domain.Target{
	"push":    domain.TargetStack,
	"pop":     domain.TargetStack,
	"peek":    domain.TargetStack,
	"enqueue": domain.TargetQueue,
	"dequeue": domain.TargetQueue,
	"front":   domain.TargetQueue,
	"rear":    domain.TargetQueue,
	"start":   domain.TargetPostfix,
	"step":    domain.TargetPostfix,
	"next":    domain.TargetPostfix,
	"run":     domain.TargetPostfix,
	"result":  domain.TargetPostfix,
	"reset":   domain.TargetPostfix,
}

// ParseCommand parses one sanitized REPL line.
// last is the target of the previous command, used by bare undo/redo/clear/show.
//
// Grammar:
//
//	[target] action [argument...]
//	help [target] | quit | exit
func ParseCommand(line string, last domain.Target) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CommandEmpty}, nil
	}

	head := strings.ToLower(fields[0])
	switch head {
	case "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	case "help", "?":
		cmd := Command{Kind: CommandHelp}
		if len(fields) > 1 {
			t, err := domain.ParseTarget(fields[1])
			if err != nil {
				return Command{}, err
			}
			cmd.Help = t
		}
		return cmd, nil
	}

	target, err := domain.ParseTarget(head)
	rest := fields[1:]
	if err != nil {
		// No target prefix: infer it from the action.
		if t, ok := actionTargets[head]; ok {
			target = t
		} else if head == "undo" || head == "redo" || head == "clear" || head == "show" || head == "tick" || head == "settle" {
			if last == "" {
				return Command{}, ErrNoTarget
			}
			target = last
		} else {
			return Command{}, fmt.Errorf("unknown command %q (try 'help')", fields[0])
		}
		rest = fields
	}
	if len(rest) == 0 {
		return Command{}, fmt.Errorf("missing action for %s (try 'help %s')", target, target)
	}

	action := strings.ToLower(rest[0])
	if action == "next" {
		action = "step"
	}
	args := rest[1:]
	req := lineviz.Request{Target: target, Action: action}

	switch {
	case action == "push" || action == "enqueue":
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return Command{}, fmt.Errorf("%s expects an integer, got %q", action, args[0])
			}
			req.Value = &v
		}
	case action == "start":
		// Spaces inside the expression are kept; the converter skips them.
		req.Expression = afterFields(line, len(fields)-len(args))
	}

	return Command{Kind: CommandExecute, Request: req}, nil
}

// afterFields returns line with its first n whitespace separated fields removed.
func afterFields(line string, n int) string {
	s := strings.TrimLeft(line, " ")
	for i := 0; i < n; i++ {
		idx := strings.IndexByte(s, ' ')
		if idx < 0 {
			return ""
		}
		s = strings.TrimLeft(s[idx:], " ")
	}
	return s
}
