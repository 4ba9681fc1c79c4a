package validation

import (
	"context"
	"slices"
)

// Runner is one independent validation run of a MultiValidator.
type Runner interface {
	Run(ctx context.Context) (Outcome, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context) (Outcome, error)

func (f RunnerFunc) Run(ctx context.Context) (Outcome, error) { return f(ctx) }

// Bind binds a value to its validator so it can be added to a MultiValidator.
func Bind[V any](v Interface[V], value V, args ...Args) Runner {
	if isNil(v) {
		mustConfig("Bind", "validator is nil", ErrNilValidator)
	}
	a := argsOrDefault(args)
	return RunnerFunc(func(ctx context.Context) (Outcome, error) {
		return v.ValidateWithArgs(ctx, value, a)
	})
}

// MultiValidator runs independent validations in the order added and
// concatenates their messages.
type MultiValidator struct {
	runners    []Runner
	additional func(ctx context.Context, r *MultiResult) error
}

// NewMulti creates an empty MultiValidator.
func NewMulti() *MultiValidator {
	return &MultiValidator{}
}

// Add appends runners.
func (m *MultiValidator) Add(runners ...Runner) *MultiValidator {
	for _, r := range runners {
		if isNil(r) {
			mustConfig("MultiValidator.Add", "runner is nil", ErrNilValidator)
		}
		m.runners = append(m.runners, r)
	}
	return m
}

// Additional sets a hook that runs after all runners. It can be set once.
func (m *MultiValidator) Additional(hook func(ctx context.Context, r *MultiResult) error) *MultiValidator {
	if hook == nil {
		mustConfig("MultiValidator.Additional", "hook is nil", nil)
	}
	if m.additional != nil {
		mustConfig("MultiValidator.Additional", "multi validator already has an additional hook", nil)
	}
	m.additional = hook
	return m
}

// Validate runs every runner. A runner error aborts and is returned as is.
func (m *MultiValidator) Validate(ctx context.Context) (*MultiResult, error) {
	res := &MultiResult{Context: NewContext(nil, NewArgs())}
	for _, r := range m.runners {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		o, err := r.Run(ctx)
		if err != nil {
			return nil, err
		}
		res.outcomes = append(res.outcomes, o)
		res.MergeResult(o)
	}
	if m.additional != nil {
		if err := m.additional(ctx, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Run implements Runner so multi validators compose.
func (m *MultiValidator) Run(ctx context.Context) (Outcome, error) {
	r, err := m.Validate(ctx)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// MultiResult is the combined outcome of a MultiValidator run.
type MultiResult struct {
	*Context

	outcomes []Outcome
}

// Outcomes returns the individual outcomes in run order.
func (r *MultiResult) Outcomes() []Outcome {
	return slices.Clone(r.outcomes)
}
