package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Target names one of the three visualizers of a workbench.
type Target string

const (
	TargetStack   Target = "stack"
	TargetQueue   Target = "queue"
	TargetPostfix Target = "postfix"
)

// ParseTarget accepts a target name or its one-letter alias (s, q, p).
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stack", "s":
		return TargetStack, nil
	case "queue", "q":
		return TargetQueue, nil
	case "postfix", "p", "infix":
		return TargetPostfix, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
	}
}

// Outcome summarizes how a request ended, for metrics and logs.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeRejected Outcome = "rejected" // Domain error (overflow, unmatched paren, ...)
	OutcomeNoop     Outcome = "noop"     // Undo/redo/step that changed nothing
	OutcomeFailed   Outcome = "failed"   // Routing error
)

// OperationEvent describes a request handled by a workbench.
type OperationEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Target    Target        `json:"target"`
	Action    string        `json:"action"`
	Outcome   Outcome       `json:"outcome"`
	Status    string        `json:"status"`
	Duration  time.Duration `json:"duration"`
	Err       error         `json:"-"`
}

// StepEvent describes a single converter step.
type StepEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Phase     Phase     `json:"phase"`
	Token     *Token    `json:"token,omitempty"`
}

// LifecycleHooks defines callbacks for workbench observability.
// Hooks never influence the data model.
type LifecycleHooks struct {
	OnOperation func(context.Context, *OperationEvent)
	OnStep      func(context.Context, *StepEvent)
}
