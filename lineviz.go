package lineviz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/lineviz/internal/logging"
	"github.com/aretw0/lineviz/pkg/container"
	"github.com/aretw0/lineviz/pkg/domain"
	"github.com/aretw0/lineviz/pkg/postfix"
)

// Workbench is the high-level entry point for the lineviz library.
// It owns one stack, one queue and one infix-to-postfix converter for a
// single user. A Workbench is not safe for concurrent use; see pkg/session.
type Workbench struct {
	stack  *container.Stack[int]
	queue  *container.Queue[int]
	conv   *postfix.Converter
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time

	capacity   int
	stackTicks int
	queueTicks int
}

// Option defines a functional option for configuring the Workbench.
type Option func(*Workbench)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(w *Workbench) {
		w.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the workbench.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workbench) {
		w.logger = logger
	}
}

// WithCapacity sets the capacity of both containers (default: 5).
func WithCapacity(n int) Option {
	return func(w *Workbench) {
		w.capacity = n
	}
}

// WithAnimationTicks sets the busy-phase length of the stack and the queue.
func WithAnimationTicks(stack, queue int) Option {
	return func(w *Workbench) {
		w.stackTicks = stack
		w.queueTicks = queue
	}
}

// New initializes a Workbench with empty containers and an idle converter.
func New(opts ...Option) *Workbench {
	w := &Workbench{
		capacity:   container.DefaultCapacity,
		stackTicks: container.DefaultStackTicks,
		queueTicks: container.DefaultQueueTicks,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logging.NewNop()
	}

	w.stack = container.NewStack[int](
		container.WithCapacity(w.capacity),
		container.WithAnimationTicks(w.stackTicks),
		container.WithLogger(w.logger.With("target", domain.TargetStack)),
	)
	w.queue = container.NewQueue[int](
		container.WithCapacity(w.capacity),
		container.WithAnimationTicks(w.queueTicks),
		container.WithLogger(w.logger.With("target", domain.TargetQueue)),
	)
	w.conv = postfix.New(postfix.WithLogger(w.logger.With("target", domain.TargetPostfix)))
	return w
}

// Stack returns the workbench stack.
func (w *Workbench) Stack() *container.Stack[int] { return w.stack }

// Queue returns the workbench queue.
func (w *Workbench) Queue() *container.Queue[int] { return w.queue }

// Converter returns the workbench converter.
func (w *Workbench) Converter() *postfix.Converter { return w.conv }

// Snapshot returns the view of all three visualizers.
func (w *Workbench) Snapshot() Snapshot {
	return Snapshot{
		Stack:      w.stack.Snapshot(),
		Queue:      w.queue.Snapshot(),
		Conversion: w.conv.State(),
	}
}

// Execute routes req to its target and returns the resulting view.
// Domain failures (overflow, unmatched parenthesis, ...) are returned as the
// error and also recorded in Response.Error; routing failures return a nil Response.
func (w *Workbench) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := w.now()
	action := strings.ToLower(strings.TrimSpace(req.Action))
	resp := &Response{Target: req.Target, Action: action}

	var (
		changed bool
		err     error
	)
	switch req.Target {
	case domain.TargetStack:
		changed, err = w.execStack(action, req, resp)
	case domain.TargetQueue:
		changed, err = w.execQueue(action, req, resp)
	case domain.TargetPostfix:
		changed, err = w.execPostfix(ctx, action, req, resp)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrUnknownTarget, req.Target)
	}

	resp.Outcome = outcomeOf(changed, err)
	w.emit(ctx, resp, start, err)

	if err != nil {
		if resp.Outcome == domain.OutcomeFailed {
			w.logger.Warn("request failed", "target", req.Target, "action", action, "err", err)
			return nil, err
		}
		resp.Error = err.Error()
		return resp, err
	}
	return resp, nil
}

func (w *Workbench) execStack(action string, req Request, resp *Response) (bool, error) {
	s := w.stack
	defer func() {
		snap := s.Snapshot()
		resp.Stack = &snap
		resp.Status = s.Status()
	}()

	switch action {
	case "push":
		if req.Value == nil {
			return false, fmt.Errorf("push: %w", domain.ErrMissingValue)
		}
		return true, s.Push(*req.Value)
	case "pop":
		v, err := s.Pop()
		if err != nil {
			return false, err
		}
		resp.Value = intPtr(v)
		return true, nil
	case "peek":
		v, err := s.Peek()
		if err != nil {
			return false, err
		}
		resp.Value = intPtr(v)
		return true, nil
	case "clear":
		wasEmpty := s.IsEmpty()
		s.Clear()
		return !wasEmpty, nil
	case "undo":
		return s.Undo(), nil
	case "redo":
		return s.Redo(), nil
	case "tick":
		busy := s.Busy()
		s.Tick()
		return busy, nil
	case "settle":
		busy := s.Busy()
		s.Settle()
		return busy, nil
	case "show":
		return true, nil
	default:
		return false, fmt.Errorf("%w: stack %q", domain.ErrUnknownAction, action)
	}
}

func (w *Workbench) execQueue(action string, req Request, resp *Response) (bool, error) {
	q := w.queue
	defer func() {
		snap := q.Snapshot()
		resp.Queue = &snap
		resp.Status = q.Status()
	}()

	read := func(fn func() (int, error)) (bool, error) {
		v, err := fn()
		if err != nil {
			return false, err
		}
		resp.Value = intPtr(v)
		return true, nil
	}

	switch action {
	case "enqueue":
		if req.Value == nil {
			return false, fmt.Errorf("enqueue: %w", domain.ErrMissingValue)
		}
		return true, q.Enqueue(*req.Value)
	case "dequeue":
		return read(q.Dequeue)
	case "front":
		return read(q.Front)
	case "rear":
		return read(q.Rear)
	case "clear":
		wasEmpty := q.IsEmpty()
		q.Clear()
		return !wasEmpty, nil
	case "undo":
		return q.Undo(), nil
	case "redo":
		return q.Redo(), nil
	case "tick":
		busy := q.Busy()
		q.Tick()
		return busy, nil
	case "settle":
		busy := q.Busy()
		q.Settle()
		return busy, nil
	case "show":
		return true, nil
	default:
		return false, fmt.Errorf("%w: queue %q", domain.ErrUnknownAction, action)
	}
}

func (w *Workbench) execPostfix(ctx context.Context, action string, req Request, resp *Response) (bool, error) {
	c := w.conv
	defer func() {
		st := c.State()
		resp.Conversion = &st
		resp.Status = st.Explanation
		if res, err := c.Result(); err == nil {
			resp.Result = res
		}
	}()

	switch action {
	case "start":
		if err := c.Start(req.Expression); err != nil {
			return false, err
		}
		return true, nil
	case "step":
		out := c.Step()
		w.emitStep(ctx, out)
		if out.Changed {
			resp.Trace = []string{out.Explanation}
		}
		if out.Changed && out.Err != nil {
			return true, out.Err
		}
		return out.Changed, nil
	case "run":
		trace := c.Run()
		for _, out := range trace {
			w.emitStep(ctx, out)
			resp.Trace = append(resp.Trace, out.Explanation)
		}
		if len(trace) > 0 && c.Err() != nil {
			return true, c.Err()
		}
		return len(trace) > 0, nil
	case "result":
		_, err := c.Result()
		return err == nil, err
	case "reset":
		wasIdle := c.Phase() == domain.PhaseIdle
		c.Reset()
		return !wasIdle, nil
	case "show":
		return true, nil
	default:
		return false, fmt.Errorf("%w: postfix %q", domain.ErrUnknownAction, action)
	}
}

func (w *Workbench) emit(ctx context.Context, resp *Response, start time.Time, err error) {
	if w.hooks.OnOperation == nil {
		return
	}
	w.hooks.OnOperation(ctx, &domain.OperationEvent{
		Timestamp: start,
		Target:    resp.Target,
		Action:    resp.Action,
		Outcome:   resp.Outcome,
		Status:    resp.Status,
		Duration:  w.now().Sub(start),
		Err:       err,
	})
}

func (w *Workbench) emitStep(ctx context.Context, out postfix.StepOutcome) {
	if w.hooks.OnStep == nil || !out.Changed {
		return
	}
	w.hooks.OnStep(ctx, &domain.StepEvent{
		Timestamp: w.now(),
		Phase:     out.Phase,
		Token:     out.Token,
	})
}

func outcomeOf(changed bool, err error) domain.Outcome {
	switch {
	case err != nil && domain.IsUserError(err):
		return domain.OutcomeRejected
	case err != nil:
		return domain.OutcomeFailed
	case !changed:
		return domain.OutcomeNoop
	default:
		return domain.OutcomeOK
	}
}

// Convert runs a full conversion of expr and returns the postfix string
// together with the explanation of every step.
func Convert(expr string) (string, []string, error) {
	c := postfix.New()
	if err := c.Start(expr); err != nil {
		return "", nil, err
	}

	var trace []string
	for _, out := range c.Run() {
		trace = append(trace, out.Explanation)
	}
	if err := c.Err(); err != nil {
		return c.State().Postfix(), trace, err
	}

	res, err := c.Result()
	return res, trace, err
}
