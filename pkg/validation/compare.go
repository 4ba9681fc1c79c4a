package validation

import (
	"context"
	"fmt"
)

// CompareOperator selects how Compare relates the value to its operand.
type CompareOperator int

const (
	Equal CompareOperator = iota
	NotEqual
	LessThan
	LessThanEqual
	GreaterThan
	GreaterThanEqual
)

func (op CompareOperator) String() string {
	switch op {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case LessThan:
		return "<"
	case LessThanEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanEqual:
		return ">="
	}
	return fmt.Sprintf("CompareOperator(%d)", int(op))
}

func (op CompareOperator) text() Text {
	switch op {
	case NotEqual:
		return TextNotEqual
	case LessThan:
		return TextLessThan
	case LessThanEqual:
		return TextLessThanEqual
	case GreaterThan:
		return TextGreaterThan
	case GreaterThanEqual:
		return TextGreaterThanEqual
	}
	return TextEqual
}

func (op CompareOperator) holds(c int) bool {
	switch op {
	case Equal:
		return c == 0
	case NotEqual:
		return c != 0
	case LessThan:
		return c < 0
	case LessThanEqual:
		return c <= 0
	case GreaterThan:
		return c > 0
	case GreaterThanEqual:
		return c >= 0
	}
	return false
}

// Compare reports an error when "value op operand" does not hold. Nil
// pointers on either side skip the check.
func Compare[P any](op CompareOperator, operand P, opts ...RuleOption) Rule[P] {
	cfg := newRuleConfig(op.text(), opts)
	return RuleFunc[P](func(_ context.Context, pc *PropertyContext[P]) error {
		return compareRule(pc, op, operand, cfg.compareArg(operand), cfg.text)
	})
}

func compareRule[P any](pc *PropertyContext[P], op CompareOperator, operand, arg any, text Text) error {
	relate := compareValues
	if op == Equal || op == NotEqual {
		relate = equalValues
	}
	c, ok, err := relate(pc.Value, operand)
	if err != nil {
		return newConfigError("Compare", pc.Path(), err)
	}
	if ok && !op.holds(c) {
		pc.CreateError(text, arg)
	}
	return nil
}

// Between reports an error when the value is outside [from, to]. Nil bounds
// panic with a *ConfigError; a nil value skips the check.
func Between[P any](from, to P, opts ...RuleOption) Rule[P] {
	return between(from, to, false, TextBetween, opts)
}

// BetweenExclusive reports an error when the value is outside (from, to).
func BetweenExclusive[P any](from, to P, opts ...RuleOption) Rule[P] {
	return between(from, to, true, TextBetweenExclusive, opts)
}

func between[P any](from, to P, exclusive bool, def Text, opts []RuleOption) Rule[P] {
	if isNil(any(from)) || isNil(any(to)) {
		mustConfig("Between", "bound is nil", ErrNilValue)
	}
	cfg := newRuleConfig(def, opts)
	return RuleFunc[P](func(_ context.Context, pc *PropertyContext[P]) error {
		lo, ok, err := compareValues(pc.Value, from)
		if err != nil {
			return newConfigError("Between", pc.Path(), err)
		}
		if !ok {
			return nil
		}
		hi, ok, err := compareValues(pc.Value, to)
		if err != nil {
			return newConfigError("Between", pc.Path(), err)
		}
		if !ok {
			return nil
		}
		inside := lo >= 0 && hi <= 0
		if exclusive {
			inside = lo > 0 && hi < 0
		}
		if !inside {
			pc.CreateError(cfg.text, from, to)
		}
		return nil
	})
}
