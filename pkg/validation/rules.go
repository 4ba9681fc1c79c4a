package validation

import "context"

// Mandatory reports an error when the value is not specified: nil, zero,
// blank string or empty slice or map.
func Mandatory[P any](opts ...RuleOption) Rule[P] {
	cfg := newRuleConfig(TextMandatory, opts)
	return RuleFunc[P](func(_ context.Context, pc *PropertyContext[P]) error {
		if !hasValue(pc.Value) {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}

// None reports an error when the value is specified.
func None[P any](opts ...RuleOption) Rule[P] {
	cfg := newRuleConfig(TextNone, opts)
	return RuleFunc[P](func(_ context.Context, pc *PropertyContext[P]) error {
		if hasValue(pc.Value) {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}

// Must reports an error when pred returns false.
func Must[P any](pred func(P) bool, opts ...RuleOption) Rule[P] {
	if pred == nil {
		mustConfig("Must", "predicate is nil", ErrNilRule)
	}
	cfg := newRuleConfig(TextInvalid, opts)
	return RuleFunc[P](func(_ context.Context, pc *PropertyContext[P]) error {
		if !pred(pc.Value) {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}

// Default replaces an unspecified value with fn().
func Default[P any](fn func() P) Rule[P] {
	if fn == nil {
		mustConfig("Default", "default func is nil", ErrNilRule)
	}
	return RuleFunc[P](func(_ context.Context, pc *PropertyContext[P]) error {
		if !hasValue(pc.Value) {
			pc.OverrideValue(fn())
		}
		return nil
	})
}

// OneOf reports an error when a specified value is not among values.
func OneOf[P comparable](values ...P) Rule[P] {
	return OneOfWith(values, TextInvalid)
}

// OneOfWith is OneOf with a custom error text.
func OneOfWith[P comparable](values []P, text Text) Rule[P] {
	allowed := make(map[P]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return RuleFunc[P](func(_ context.Context, pc *PropertyContext[P]) error {
		if !hasValue(pc.Value) {
			return nil
		}
		if _, ok := allowed[pc.Value]; !ok {
			pc.CreateError(text)
		}
		return nil
	})
}

// Validatable is implemented by values that know whether they are valid,
// such as enum-like types.
type Validatable interface {
	Valid() bool
}

// IsValid reports an error when a specified value's Valid method returns false.
func IsValid[P Validatable](opts ...RuleOption) Rule[P] {
	cfg := newRuleConfig(TextInvalid, opts)
	return RuleFunc[P](func(_ context.Context, pc *PropertyContext[P]) error {
		if !hasValue(pc.Value) {
			return nil
		}
		if !pc.Value.Valid() {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}
