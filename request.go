package lineviz

import (
	"github.com/aretw0/lineviz/pkg/container"
	"github.com/aretw0/lineviz/pkg/domain"
)

// Request names one operation on one visualizer of a Workbench.
type Request struct {
	Target domain.Target `json:"target"`
	Action string        `json:"action"`

	// Value is the element for push and enqueue.
	Value *int `json:"value,omitempty"`

	// Expression is the infix input for postfix start.
	Expression string `json:"expression,omitempty"`
}

// Response is the outcome of a Request together with the view of its target.
type Response struct {
	Target  domain.Target  `json:"target"`
	Action  string         `json:"action"`
	Outcome domain.Outcome `json:"outcome"`
	Status  string         `json:"status"`

	// Value is the element read by pop, peek, dequeue, front or rear.
	Value *int `json:"value,omitempty"`

	// Result is the postfix string once a conversion is done.
	Result string `json:"result,omitempty"`

	// Trace lists the explanations of every step taken by this request.
	Trace []string `json:"trace,omitempty"`

	Error string `json:"error,omitempty"`

	Stack      *container.StackSnapshot[int] `json:"stack,omitempty"`
	Queue      *container.QueueSnapshot[int] `json:"queue,omitempty"`
	Conversion *domain.ConversionState       `json:"conversion,omitempty"`
}

// Snapshot is the full view of a Workbench.
type Snapshot struct {
	Stack      container.StackSnapshot[int] `json:"stack"`
	Queue      container.QueueSnapshot[int] `json:"queue"`
	Conversion domain.ConversionState       `json:"conversion"`
}

// Actions lists the supported actions per target, in help order.
var Actions = map[domain.Target][]string{
	domain.TargetStack:   {"push", "pop", "peek", "clear", "undo", "redo", "tick", "settle", "show"},
	domain.TargetQueue:   {"enqueue", "dequeue", "front", "rear", "clear", "undo", "redo", "tick", "settle", "show"},
	domain.TargetPostfix: {"start", "step", "run", "result", "reset", "show"},
}

func intPtr(v int) *int {
	return &v
}
