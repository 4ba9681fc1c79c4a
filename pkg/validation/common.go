package validation

import "context"

// Value wraps a bare value so common and value validators can reach the
// entity the value belongs to, if any.
type Value[P any] struct {
	Entity any
	Value  P
}

// CommonValidator is a reusable pipeline for values of type P. Used through
// Common it reports under the calling property's name and text; used
// directly it reports under the implied name taken from the path.
type CommonValidator[P any] struct {
	*PropertyRule[*Value[P], P]
}

// NewCommon creates an empty common validator.
func NewCommon[P any]() *CommonValidator[P] {
	return &CommonValidator[P]{
		PropertyRule: newPropertyRule("", func(v *Value[P]) P { return v.Value }),
	}
}

// Validate validates value directly.
func (cv *CommonValidator[P]) Validate(ctx context.Context, value P, args ...Args) (*Result[P], error) {
	out := value
	vc, err := cv.run(ctx, nil, value, argsOrDefault(args), "", "", "", func(v P) { out = v })
	if err != nil {
		return nil, err
	}
	return &Result[P]{Context: vc, Value: out}, nil
}

// ValidateWithArgs implements Interface.
func (cv *CommonValidator[P]) ValidateWithArgs(ctx context.Context, value P, args Args) (Outcome, error) {
	vc, err := cv.run(ctx, nil, value, args, "", "", "", nil)
	if err != nil {
		return nil, err
	}
	return vc, nil
}

func (cv *CommonValidator[P]) run(ctx context.Context, entity any, value P, args Args, name, jsonName, text string, set func(P)) (*Context, error) {
	holder := &Value[P]{Entity: entity, Value: value}
	vc := NewContext(holder, args)
	pc := newValuePropertyContext(vc, name, jsonName, text, value, func(v P) {
		holder.Value = v
		if set != nil {
			set(v)
		}
	})
	if err := cv.invoke(ctx, pc); err != nil {
		return nil, err
	}
	return vc, nil
}
