package validation

import (
	"context"
	"time"

	"github.com/dmitrymomot/validationkit/pkg/execctx"
)

// now returns the execution context timestamp when ctx carries one, so every
// rule of a run compares against the same instant.
func now(ctx context.Context) time.Time {
	if ec, ok := execctx.FromContext(ctx); ok && !ec.Timestamp.IsZero() {
		return ec.Timestamp
	}
	return time.Now()
}

// PastDate requires a non-zero time before now.
func PastDate(opts ...RuleOption) Rule[time.Time] {
	cfg := newRuleConfig(TextPastDate, opts)
	return RuleFunc[time.Time](func(ctx context.Context, pc *PropertyContext[time.Time]) error {
		if !pc.Value.IsZero() && !pc.Value.Before(now(ctx)) {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}

// FutureDate requires a non-zero time after now.
func FutureDate(opts ...RuleOption) Rule[time.Time] {
	cfg := newRuleConfig(TextFutureDate, opts)
	return RuleFunc[time.Time](func(ctx context.Context, pc *PropertyContext[time.Time]) error {
		if !pc.Value.IsZero() && !pc.Value.After(now(ctx)) {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}
