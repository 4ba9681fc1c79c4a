package validation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/validationkit/pkg/logger"
)

// Interface is implemented by anything that can validate a V as part of a
// larger run: entity validators, collection and dictionary validators and
// common validators.
type Interface[V any] interface {
	ValidateWithArgs(ctx context.Context, value V, args Args) (Outcome, error)
}

// Hook runs after the property rules of a validator. Errors it returns abort
// the run; findings are added through the result.
type Hook[E any] func(ctx context.Context, r *Result[E]) error

// Observer is notified after every top-level or nested entity validation.
type Observer interface {
	ObserveValidation(ctx context.Context, validator string, d time.Duration, o Outcome, err error)
}

// Option configures a Validator.
type Option func(*options)

type options struct {
	name     string
	log      *slog.Logger
	observer Observer
}

// WithName names the validator in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithObserver sets an observer notified after each run.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// Validator validates entities of type E. Build it once at startup and share
// it: after building, Validate is safe for concurrent use as long as the
// registered hooks and checkers are.
type Validator[E any] struct {
	options

	rules      []entityRule[E]
	props      map[string]propertyMeta[E]
	onValidate Hook[E]
	additional Hook[E]
	building   bool
}

// New creates an empty validator.
func New[E any](opts ...Option) *Validator[E] {
	o := options{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		var zero E
		o.name = fmt.Sprintf("%T", zero)
	}
	return &Validator[E]{
		options: o,
		props:   make(map[string]propertyMeta[E]),
	}
}

// Name returns the validator name used in logs and metrics.
func (v *Validator[E]) Name() string { return v.name }

func (v *Validator[E]) addRule(r entityRule[E]) {
	if v.building {
		mustConfig("addRule", fmt.Sprintf("rule registered on validator %s while one of its rule sets is being built; register it on the rule set", v.name), nil)
	}
	v.rules = append(v.rules, r)
}

func (v *Validator[E]) addMeta(meta propertyMeta[E]) {
	if _, ok := v.props[meta.name]; !ok {
		v.props[meta.name] = meta
	}
}

func (v *Validator[E]) lookup(name string) (propertyMeta[E], bool) {
	meta, ok := v.props[name]
	return meta, ok
}

// OnValidate sets the hook that runs after all rules of the validator.
func (v *Validator[E]) OnValidate(hook Hook[E]) *Validator[E] {
	v.onValidate = hook
	return v
}

// Additional sets a hook that runs after OnValidate. It can be set once;
// setting it again panics with a *ConfigError.
func (v *Validator[E]) Additional(hook Hook[E]) *Validator[E] {
	if hook == nil {
		mustConfig("Additional", "hook is nil", nil)
	}
	if v.additional != nil {
		mustConfig("Additional", fmt.Sprintf("validator %s already has an additional hook", v.name), nil)
	}
	v.additional = hook
	return v
}

// Validate validates value. Only the first Args is used; NewArgs applies
// when none are given.
func (v *Validator[E]) Validate(ctx context.Context, value E, args ...Args) (*Result[E], error) {
	return v.run(ctx, value, argsOrDefault(args))
}

// ValidateWithArgs implements Interface.
func (v *Validator[E]) ValidateWithArgs(ctx context.Context, value E, args Args) (Outcome, error) {
	r, err := v.run(ctx, value, args)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (v *Validator[E]) run(ctx context.Context, value E, args Args) (r *Result[E], err error) {
	if isNil(any(value)) {
		return nil, ErrNilValue
	}

	start := time.Now()
	defer func() {
		v.observe(ctx, start, r, err)
	}()

	r = newResult(value, args, v.props)
	for _, rule := range v.rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := rule.validate(ctx, r); err != nil {
			return nil, err
		}
	}

	if v.onValidate != nil {
		if err := v.onValidate(ctx, r); err != nil {
			return nil, err
		}
	}
	if v.additional != nil {
		if err := v.additional(ctx, r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (v *Validator[E]) observe(ctx context.Context, start time.Time, r *Result[E], err error) {
	d := time.Since(start)
	if err != nil {
		v.log.ErrorContext(ctx, "validation aborted",
			logger.Component("validation"),
			logger.Validator(v.name),
			logger.Duration(d),
			logger.Error(err),
		)
	} else {
		v.log.DebugContext(ctx, "validation completed",
			logger.Component("validation"),
			logger.Validator(v.name),
			logger.MessageCount(len(r.Messages())),
			slog.Bool("has_errors", r.HasErrors()),
			logger.Duration(d),
		)
	}

	if v.observer == nil {
		return
	}
	var o Outcome
	if r != nil {
		o = r
	}
	v.observer.ObserveValidation(ctx, v.name, d, o, err)
}
