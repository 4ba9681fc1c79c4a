package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/metrics"
	"github.com/dmitrymomot/validationkit/pkg/validation"
)

type person struct {
	Name  string
	Email string
}

func newPersonValidator(obs validation.Observer) *validation.Validator[*person] {
	v := validation.New[*person](validation.WithName("person"), validation.WithObserver(obs))
	validation.Property(v, "Name", func(p *person) string { return p.Name }).Mandatory()
	validation.Property(v, "Email", func(p *person) string { return p.Email }).Add(validation.Email())
	return v
}

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(metrics.Config{Namespace: "test", Subsystem: "validation"}, reg)
	require.NoError(t, err)

	v := newPersonValidator(c)
	ctx := context.Background()

	_, err = v.Validate(ctx, &person{Name: "Ann", Email: "ann@example.com"})
	require.NoError(t, err)

	_, err = v.Validate(ctx, &person{Email: "nope"})
	require.NoError(t, err)

	c.ObserveValidation(ctx, "person", time.Millisecond, nil, errors.New("boom"))

	expected := map[string]float64{
		metrics.OutcomeValid:   1,
		metrics.OutcomeInvalid: 1,
		metrics.OutcomeError:   1,
	}
	for outcome, want := range expected {
		assert.Equal(t, want, runsValue(t, reg, "person", outcome), outcome)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(reg, "test_validation_duration_seconds"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "test_validation_messages_total"))
}

func TestCollector_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewCollector(metrics.Config{Namespace: "dup"}, reg)
	require.NoError(t, err)

	_, err = metrics.NewCollector(metrics.Config{Namespace: "dup"}, reg)
	require.NoError(t, err)
}

func runsValue(t *testing.T, reg *prometheus.Registry, validator, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != "test_validation_runs_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["validator"] == validator && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}
