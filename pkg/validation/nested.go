package validation

import (
	"context"
	"fmt"
)

// Entity validates a nested entity with v. Nil values and shallow runs skip
// the rule; use Mandatory to require the value.
func Entity[P any](v Interface[P]) Rule[P] {
	return nested(v, "Entity", true)
}

// Collection validates a slice with v, normally a *CollectionValidator. Nil
// slices skip the rule. Shallow runs still check counts and null items.
func Collection[P any](v Interface[P]) Rule[P] {
	return nested(v, "Collection", false)
}

// Dictionary validates a map with v, normally a *DictionaryValidator. Nil
// maps skip the rule. Shallow runs still check counts and null entries.
func Dictionary[P any](v Interface[P]) Rule[P] {
	return nested(v, "Dictionary", false)
}

func nested[P any](v Interface[P], op string, skipShallow bool) Rule[P] {
	if isNil(v) {
		mustConfig(op, "validator is nil", ErrNilValidator)
	}
	return RuleFunc[P](func(ctx context.Context, pc *PropertyContext[P]) error {
		if isNil(any(pc.Value)) {
			return nil
		}
		if skipShallow && pc.Parent.ShallowValidation() {
			return nil
		}
		args, err := pc.childArgs("", "")
		if err != nil {
			return fmt.Errorf("%s: %w", pc.Path(), err)
		}
		o, err := v.ValidateWithArgs(ctx, pc.Value, args)
		if err != nil {
			return err
		}
		pc.MergeResult(o)
		return nil
	})
}

// Common runs the rules of a reusable common validator against the property,
// reporting under the property's own name, path and text.
func Common[P any](cv *CommonValidator[P]) Rule[P] {
	if cv == nil {
		mustConfig("Common", "validator is nil", ErrNilValidator)
	}
	return RuleFunc[P](func(ctx context.Context, pc *PropertyContext[P]) error {
		args, err := pc.childArgs("", "")
		if err != nil {
			return fmt.Errorf("%s: %w", pc.Path(), err)
		}
		vc, err := cv.run(ctx, pc.Entity(), pc.Value, args, pc.Name, pc.JSONName, pc.Text, pc.OverrideValue)
		if err != nil {
			return err
		}
		pc.MergeResult(vc)
		return nil
	})
}
