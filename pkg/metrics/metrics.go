package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Outcome labels of the runs counter.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Config describes the metric names.
type Config struct {
	Namespace string    `env:"METRICS_NAMESPACE" envDefault:"validationkit"`
	Subsystem string    `env:"METRICS_SUBSYSTEM" envDefault:"validation"`
	Buckets   []float64 `env:"METRICS_DURATION_BUCKETS" envSeparator:","`
}

// Collector records validation runs as Prometheus metrics. It implements
// validation.Observer.
//
// Metrics:
//   - <ns>_<sub>_runs_total{validator,outcome}
//   - <ns>_<sub>_duration_seconds{validator}
//   - <ns>_<sub>_messages_total{validator,type}
type Collector struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	messages *prometheus.CounterVec
}

// NewCollector creates the metrics and registers them with reg. A nil reg
// uses a fresh registry, which is handy in tests.
func NewCollector(cfg Config, reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if len(cfg.Buckets) == 0 {
		// validations are in-process and fast: 10µs to ~80ms
		cfg.Buckets = prometheus.ExponentialBuckets(0.00001, 2, 14)
	}

	c := &Collector{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "runs_total",
				Help:      "Total number of validation runs by outcome",
			},
			[]string{"validator", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "duration_seconds",
				Help:      "Duration of validation runs in seconds",
				Buckets:   cfg.Buckets,
			},
			[]string{"validator"},
		),
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "messages_total",
				Help:      "Total number of validation messages by type",
			},
			[]string{"validator", "type"},
		),
	}

	for _, col := range []prometheus.Collector{c.runs, c.duration, c.messages} {
		if err := reg.Register(col); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return nil, err
		}
	}
	return c, nil
}

// ObserveValidation implements validation.Observer.
func (c *Collector) ObserveValidation(_ context.Context, validator string, d time.Duration, o validation.Outcome, err error) {
	c.duration.WithLabelValues(validator).Observe(d.Seconds())

	switch {
	case err != nil || o == nil:
		c.runs.WithLabelValues(validator, OutcomeError).Inc()
		return
	case o.HasErrors():
		c.runs.WithLabelValues(validator, OutcomeInvalid).Inc()
	default:
		c.runs.WithLabelValues(validator, OutcomeValid).Inc()
	}

	for _, m := range o.Messages() {
		c.messages.WithLabelValues(validator, m.Type.String()).Inc()
	}
}
