package container

import (
	"log/slog"

	"github.com/aretw0/lineviz/internal/logging"
)

// DefaultCapacity is the number of slots of every container in this domain.
const DefaultCapacity = 5

// Default animation lengths, in ticks.
const (
	DefaultStackTicks = 5
	DefaultQueueTicks = 10
)

// Container is the behaviour shared by Stack and Queue.
type Container[T any] interface {
	Len() int
	Cap() int
	IsEmpty() bool
	IsFull() bool
	Values() []T
	Slots() []Slot[T]
	Clear()
	Undo() bool
	Redo() bool
	Tick() bool
	Settle()
	Busy() bool
	Status() string
	Validate() error
}

var (
	_ Container[int] = (*Stack[int])(nil)
	_ Container[int] = (*Queue[int])(nil)
)

// Slot is one physical cell of a container, for rendering.
// Value is the zero value when the slot is not occupied.
type Slot[T any] struct {
	Index    int  `json:"index"`
	Value    T    `json:"value"`
	Occupied bool `json:"occupied"`
}

// Option configures a container.
type Option func(*config)

type config struct {
	capacity int
	ticks    int
	logger   *slog.Logger
}

// WithCapacity sets the fixed capacity. Non-positive values keep DefaultCapacity.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithAnimationTicks sets how many ticks each mutation keeps the container busy.
// Zero disables the animation phase.
func WithAnimationTicks(n int) Option {
	return func(c *config) {
		c.ticks = n
	}
}

// WithLogger sets a structured logger for operation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(defaultTicks int, opts []Option) config {
	c := config{
		capacity: DefaultCapacity,
		ticks:    defaultTicks,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	return c
}

func zero[T any]() T {
	var z T
	return z
}

// historyStatus explains a refused undo or redo. The animation is only
// blamed when an entry was actually available.
func historyStatus(action string, available, busy bool) string {
	if available && busy {
		return "Please wait for the animation to finish before " + action
	}
	return "Nothing to " + action
}
