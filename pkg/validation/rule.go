package validation

import "context"

// Rule validates one property value. A failed check is reported through
// pc.CreateError; a returned error aborts the whole validation run.
type Rule[P any] interface {
	Validate(ctx context.Context, pc *PropertyContext[P]) error
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc[P any] func(ctx context.Context, pc *PropertyContext[P]) error

func (f RuleFunc[P]) Validate(ctx context.Context, pc *PropertyContext[P]) error {
	return f(ctx, pc)
}

// RuleOption customizes a built-in rule.
type RuleOption func(*ruleConfig)

type ruleConfig struct {
	text      Text
	valueText string
}

// WithMessage replaces the default error text of a rule.
func WithMessage(t Text) RuleOption {
	return func(c *ruleConfig) {
		c.text = t
	}
}

// WithValueText sets how the compared value is named in the error text,
// e.g. "today" instead of the formatted date.
func WithValueText(text string) RuleOption {
	return func(c *ruleConfig) {
		c.valueText = text
	}
}

func newRuleConfig(def Text, opts []RuleOption) ruleConfig {
	c := ruleConfig{text: def}
	for _, opt := range opts {
		opt(&c)
	}
	if c.text.IsEmpty() {
		c.text = def
	}
	return c
}

// compareArg returns what to print for a compared value.
func (c ruleConfig) compareArg(v any) any {
	if c.valueText != "" {
		return c.valueText
	}
	return v
}
