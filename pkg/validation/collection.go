package validation

import (
	"context"
	"fmt"
	"reflect"
)

// CollectionValidator validates a slice: item count, null items, duplicates
// and each item through an item validator.
//
// Count and null-item checks always run. The duplicate check runs only when
// no item reported an error. A nil slice validated directly is treated as
// empty.
type CollectionValidator[I any] struct {
	item           Interface[I]
	minCount       int
	maxCount       int
	allowNullItems bool
	duplicateKey   func(I) any
	duplicateText  string
	additional     Hook[[]I]
}

// NewCollection creates a collection validator with no constraints.
func NewCollection[I any]() *CollectionValidator[I] {
	return &CollectionValidator[I]{}
}

// Items sets the validator applied to every non-nil item.
func (c *CollectionValidator[I]) Items(v Interface[I]) *CollectionValidator[I] {
	if isNil(v) {
		mustConfig("Items", "item validator is nil", ErrNilValidator)
	}
	c.item = v
	return c
}

func (c *CollectionValidator[I]) MinCount(n int) *CollectionValidator[I] {
	c.minCount = n
	return c
}

func (c *CollectionValidator[I]) MaxCount(n int) *CollectionValidator[I] {
	c.maxCount = n
	return c
}

// AllowNullItems permits nil items.
func (c *CollectionValidator[I]) AllowNullItems() *CollectionValidator[I] {
	c.allowNullItems = true
	return c
}

// DuplicateCheck reports the first item whose key was already seen. text
// names the key in the message, e.g. "Code".
func (c *CollectionValidator[I]) DuplicateCheck(key func(I) any, text string) *CollectionValidator[I] {
	if key == nil {
		mustConfig("DuplicateCheck", "key func is nil", nil)
	}
	if text == "" {
		text = "Key"
	}
	c.duplicateKey = key
	c.duplicateText = text
	return c
}

// Additional sets a hook that runs after all collection checks. It can be set once.
func (c *CollectionValidator[I]) Additional(hook Hook[[]I]) *CollectionValidator[I] {
	if hook == nil {
		mustConfig("Additional", "hook is nil", nil)
	}
	if c.additional != nil {
		mustConfig("Additional", "collection validator already has an additional hook", nil)
	}
	c.additional = hook
	return c
}

// Validate validates items directly.
func (c *CollectionValidator[I]) Validate(ctx context.Context, items []I, args ...Args) (*Result[[]I], error) {
	return c.run(ctx, items, argsOrDefault(args))
}

// ValidateWithArgs implements Interface.
func (c *CollectionValidator[I]) ValidateWithArgs(ctx context.Context, items []I, args Args) (Outcome, error) {
	r, err := c.run(ctx, items, args)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (c *CollectionValidator[I]) run(ctx context.Context, items []I, args Args) (*Result[[]I], error) {
	r := newResult[[]I](items, args, nil)
	pc := newValuePropertyContext[[]I](r.Context, "", "", "", items, nil)

	var (
		hasNull    bool
		itemErrors bool
	)
	for i, item := range items {
		if isNil(any(item)) {
			hasNull = true
			continue
		}
		if c.item == nil || args.ShallowValidation {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		segment := indexSegment(i)
		ia, err := args.element(segment, pc.Text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", JoinPath(pc.Path(), segment), err)
		}
		o, err := c.item.ValidateWithArgs(ctx, item, ia)
		if err != nil {
			return nil, err
		}
		r.MergeResult(o)
		if o.HasErrors() {
			itemErrors = true
		}
	}

	if hasNull && !c.allowNullItems {
		pc.CreateError(TextCollectionNullItem)
	}
	switch {
	case c.minCount > 0 && len(items) < c.minCount:
		pc.CreateError(TextMinCount, c.minCount)
	case c.maxCount > 0 && len(items) > c.maxCount:
		pc.CreateError(TextMaxCount, c.maxCount)
	}
	if !itemErrors && c.duplicateKey != nil {
		if err := c.checkDuplicates(pc, items); err != nil {
			return nil, err
		}
	}

	if c.additional != nil {
		if err := c.additional(ctx, r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// checkDuplicates reports the first repeated key. Keys must be hashable.
func (c *CollectionValidator[I]) checkDuplicates(pc *PropertyContext[[]I], items []I) error {
	seen := make(map[any]struct{}, len(items))
	for _, item := range items {
		if isNil(any(item)) {
			continue
		}
		key := c.duplicateKey(item)
		if t := reflect.TypeOf(key); t != nil && !t.Comparable() {
			return newConfigError("DuplicateCheck", pc.Path(), fmt.Errorf("key of type %s is not comparable", t))
		}
		if _, ok := seen[key]; ok {
			pc.CreateError(TextDuplicate, c.duplicateText, key)
			return nil
		}
		seen[key] = struct{}{}
	}
	return nil
}
