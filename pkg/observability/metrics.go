package observability

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/lineviz/pkg/domain"
)

// Metrics holds the collectors fed by workbench hooks.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	steps      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lineviz_operations_total",
				Help: "Total number of workbench requests by target, action and outcome",
			},
			[]string{"target", "action", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lineviz_operation_duration_seconds",
				Help:    "Duration of workbench requests",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"target"},
		),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lineviz_conversion_steps_total",
				Help: "Total number of converter steps by resulting phase",
			},
			[]string{"phase"},
		),
	}
	m.registry.MustRegister(m.operations, m.duration, m.steps)
	return m
}

// Registry returns the registry holding the lineviz collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnOperation: func(_ context.Context, e *domain.OperationEvent) {
			m.operations.WithLabelValues(string(e.Target), e.Action, string(e.Outcome)).Inc()
			m.duration.WithLabelValues(string(e.Target)).Observe(e.Duration.Seconds())
		},
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			m.steps.WithLabelValues(string(e.Phase)).Inc()
		},
	}
}

// LogHooks returns lifecycle hooks that trace every event at debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnOperation: func(ctx context.Context, e *domain.OperationEvent) {
			if e.Err != nil {
				logger.DebugContext(ctx, "Operation", "target", e.Target, "action", e.Action, "outcome", e.Outcome, "err", e.Err)
				return
			}
			logger.DebugContext(ctx, "Operation", "target", e.Target, "action", e.Action, "outcome", e.Outcome, "status", e.Status)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			if e.Token != nil {
				logger.DebugContext(ctx, "Conversion Step", "phase", e.Phase, "token", e.Token.String())
				return
			}
			logger.DebugContext(ctx, "Conversion Step", "phase", e.Phase)
		},
	}
}

// Combine fans every event out to all hooks in order. Nil callbacks are skipped.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnOperation: func(ctx context.Context, e *domain.OperationEvent) {
			for _, h := range hooks {
				if h.OnOperation != nil {
					h.OnOperation(ctx, e)
				}
			}
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range hooks {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
	}
}
