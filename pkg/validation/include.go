package validation

import (
	"context"
	"fmt"
)

type include[E, B any] struct {
	base    *Validator[B]
	convert func(E) (B, error)
}

// Include runs every rule and hook of base against convert(entity) as part of
// the builder's validation. The base properties become visible to
// DependsOn and CompareProperty of later pipelines.
func Include[E, B any](b Builder[E], base *Validator[B], convert func(E) B) {
	if convert == nil {
		mustConfig("Include", "conversion func is nil", nil)
	}
	addInclude(b, base, func(e E) (B, error) { return convert(e), nil })
}

// IncludeBase is Include for a base type that E satisfies directly, such as an
// interface E implements. A subject that does not satisfy B is reported as a
// configuration error at validation time.
func IncludeBase[E, B any](b Builder[E], base *Validator[B]) {
	addInclude(b, base, func(e E) (B, error) {
		v, ok := any(e).(B)
		if !ok {
			return v, newConfigError("IncludeBase", fmt.Sprintf("%T does not satisfy %T", e, v), nil)
		}
		return v, nil
	})
}

func addInclude[E, B any](b Builder[E], base *Validator[B], convert func(E) (B, error)) {
	if b == nil {
		mustConfig("Include", "builder is nil", ErrNilValidator)
	}
	if base == nil {
		mustConfig("Include", "base validator is nil", ErrNilValidator)
	}

	b.addRule(&include[E, B]{base: base, convert: convert})
	for _, meta := range base.props {
		b.addMeta(propertyMeta[E]{
			name:     meta.name,
			jsonName: meta.jsonName,
			text:     meta.text,
			value: func(e E) any {
				v, err := convert(e)
				if err != nil || isNil(any(v)) {
					return nil
				}
				return meta.value(v)
			},
		})
	}
}

func (in *include[E, B]) validate(ctx context.Context, r *Result[E]) error {
	v, err := in.convert(r.Value)
	if err != nil {
		return err
	}
	if isNil(any(v)) {
		return newConfigError("Include", fmt.Sprintf("%T converted to a nil %s subject", r.Value, in.base.name), ErrNilValue)
	}

	res, err := in.base.run(ctx, v, r.Context.args)
	if err != nil {
		return err
	}
	r.MergeResult(res)
	return nil
}
