package validation

import (
	"context"
	"fmt"
)

// Predicate decides whether a rule set runs.
type Predicate[E any] func(ctx context.Context, r *Result[E]) bool

// RuleSet groups rules behind a single predicate, evaluated once per run.
// Rule sets do not nest.
type RuleSet[E any] struct {
	owner *Validator[E]
	when  Predicate[E]
	rules []entityRule[E]
}

// RuleSet registers a group of rules that run only when the predicate holds.
// Register the group's properties on rs inside build. Calling RuleSet again
// from within build panics with a *ConfigError.
func (v *Validator[E]) RuleSet(when Predicate[E], build func(rs *RuleSet[E])) *Validator[E] {
	if when == nil || build == nil {
		mustConfig("RuleSet", fmt.Sprintf("validator %s: predicate and build func are required", v.name), nil)
	}
	if v.building {
		mustConfig("RuleSet", fmt.Sprintf("validator %s: rule sets cannot be nested", v.name), nil)
	}

	rs := &RuleSet[E]{owner: v, when: when}
	v.building = true
	func() {
		defer func() { v.building = false }()
		build(rs)
	}()
	v.rules = append(v.rules, rs)
	return v
}

func (rs *RuleSet[E]) addRule(r entityRule[E]) {
	rs.rules = append(rs.rules, r)
}

func (rs *RuleSet[E]) addMeta(meta propertyMeta[E]) {
	rs.owner.addMeta(meta)
}

func (rs *RuleSet[E]) lookup(name string) (propertyMeta[E], bool) {
	return rs.owner.lookup(name)
}

func (rs *RuleSet[E]) validate(ctx context.Context, r *Result[E]) error {
	if !rs.when(ctx, r) {
		return nil
	}
	for _, rule := range rs.rules {
		if err := rule.validate(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
