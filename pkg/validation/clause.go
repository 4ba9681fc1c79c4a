package validation

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/validationkit/pkg/execctx"
)

// Clause gates whether a pipeline or a single rule runs.
type Clause[P any] interface {
	Check(ctx context.Context, pc *PropertyContext[P]) (bool, error)
}

// ClauseFunc adapts a function to the Clause interface.
type ClauseFunc[P any] func(ctx context.Context, pc *PropertyContext[P]) (bool, error)

func (f ClauseFunc[P]) Check(ctx context.Context, pc *PropertyContext[P]) (bool, error) {
	return f(ctx, pc)
}

// When gates on a fixed condition known at build time.
func When[P any](condition bool) Clause[P] {
	return ClauseFunc[P](func(context.Context, *PropertyContext[P]) (bool, error) {
		return condition, nil
	})
}

// WhenValue gates on a predicate over the property value.
func WhenValue[P any](pred func(P) bool) Clause[P] {
	if pred == nil {
		mustConfig("WhenValue", "predicate is nil", ErrNilClause)
	}
	return ClauseFunc[P](func(_ context.Context, pc *PropertyContext[P]) (bool, error) {
		return pred(pc.Value), nil
	})
}

// WhenHasValue gates on the property value being specified (non-zero).
func WhenHasValue[P any]() Clause[P] {
	return ClauseFunc[P](func(_ context.Context, pc *PropertyContext[P]) (bool, error) {
		return hasValue(pc.Value), nil
	})
}

// WhenOperation gates on the operation of the ambient execution context.
// A missing execution context is a configuration error.
func WhenOperation[P any](ops ...execctx.OperationType) Clause[P] {
	return ClauseFunc[P](func(ctx context.Context, pc *PropertyContext[P]) (bool, error) {
		ec, err := execctx.Require(ctx)
		if err != nil {
			return false, newConfigError("WhenOperation", fmt.Sprintf("property %q requires an execution context", pc.Name), err)
		}
		return ec.Is(ops...), nil
	})
}

// WhenEntity gates on a predicate over the owning entity.
func WhenEntity[E, P any](pred func(E) bool) Clause[P] {
	if pred == nil {
		mustConfig("WhenEntity", "predicate is nil", ErrNilClause)
	}
	return ClauseFunc[P](func(_ context.Context, pc *PropertyContext[P]) (bool, error) {
		entity, err := entityOf[E](pc, "WhenEntity")
		if err != nil {
			return false, err
		}
		return pred(entity), nil
	})
}

// DependsOn gates on another property of the entity: it must be specified and
// must not already be in error.
func DependsOn[E, P any](other PropertyRef, value func(E) any) Clause[P] {
	if value == nil {
		mustConfig("DependsOn", fmt.Sprintf("value accessor for %q is nil", other.Name), ErrNilClause)
	}
	other = other.normalize()
	return ClauseFunc[P](func(_ context.Context, pc *PropertyContext[P]) (bool, error) {
		if pc.Parent.HasPropertyError(other) {
			return false, nil
		}
		entity, err := entityOf[E](pc, "DependsOn")
		if err != nil {
			return false, err
		}
		return hasValue(value(entity)), nil
	})
}

func entityOf[E, P any](pc *PropertyContext[P], op string) (E, error) {
	entity, ok := pc.Entity().(E)
	if !ok {
		var zero E
		return zero, newConfigError(op, fmt.Sprintf("subject %T is not %T", pc.Entity(), zero), nil)
	}
	return entity, nil
}

func checkClauses[P any](ctx context.Context, clauses []Clause[P], pc *PropertyContext[P]) (bool, error) {
	for _, c := range clauses {
		ok, err := c.Check(ctx, pc)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
