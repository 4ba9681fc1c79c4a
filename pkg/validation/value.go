package validation

import "context"

// ValueValidator validates a single named value outside of any entity, for
// example a query parameter or an operation argument.
type ValueValidator[P any] struct {
	*PropertyRule[*Value[P], P]
	value P
}

// NewValue creates a validator for value reported under name.
func NewValue[P any](value P, name string, opts ...PropertyOption) *ValueValidator[P] {
	if name == "" {
		name = defaultValueName
	}
	return &ValueValidator[P]{
		PropertyRule: newPropertyRule(name, func(v *Value[P]) P { return v.Value }, opts...),
		value:        value,
	}
}

// Validate runs the pipeline. The result value reflects Default and Override.
func (vv *ValueValidator[P]) Validate(ctx context.Context, args ...Args) (*Result[P], error) {
	a := argsOrDefault(args)
	holder := &Value[P]{Value: vv.value}
	vc := NewContext(holder, a)
	pc := newPropertyContext(vc, vv.name, vv.jsonName, vv.text, vv.value, func(v P) {
		holder.Value = v
	})
	if err := vv.invoke(ctx, pc); err != nil {
		return nil, err
	}
	return &Result[P]{Context: vc, Value: holder.Value}, nil
}

// Run implements Runner.
func (vv *ValueValidator[P]) Run(ctx context.Context) (Outcome, error) {
	r, err := vv.Validate(ctx)
	if err != nil {
		return nil, err
	}
	return r, nil
}
