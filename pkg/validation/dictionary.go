package validation

import (
	"cmp"
	"context"
	"fmt"
	"slices"
)

// DictionaryValidator validates a map: entry count, null keys and values,
// and each key and value through optional validators. Entries are visited
// in the order of their formatted keys so results are deterministic.
type DictionaryValidator[K comparable, V any] struct {
	keys            Interface[K]
	values          Interface[V]
	minCount        int
	maxCount        int
	allowNullKeys   bool
	allowNullValues bool
	additional      Hook[map[K]V]
}

// NewDictionary creates a dictionary validator with no constraints.
func NewDictionary[K comparable, V any]() *DictionaryValidator[K, V] {
	return &DictionaryValidator[K, V]{}
}

// Keys sets the validator applied to every non-nil key.
func (d *DictionaryValidator[K, V]) Keys(v Interface[K]) *DictionaryValidator[K, V] {
	if isNil(v) {
		mustConfig("Keys", "key validator is nil", ErrNilValidator)
	}
	d.keys = v
	return d
}

// Values sets the validator applied to every non-nil value.
func (d *DictionaryValidator[K, V]) Values(v Interface[V]) *DictionaryValidator[K, V] {
	if isNil(v) {
		mustConfig("Values", "value validator is nil", ErrNilValidator)
	}
	d.values = v
	return d
}

func (d *DictionaryValidator[K, V]) MinCount(n int) *DictionaryValidator[K, V] {
	d.minCount = n
	return d
}

func (d *DictionaryValidator[K, V]) MaxCount(n int) *DictionaryValidator[K, V] {
	d.maxCount = n
	return d
}

func (d *DictionaryValidator[K, V]) AllowNullKeys() *DictionaryValidator[K, V] {
	d.allowNullKeys = true
	return d
}

func (d *DictionaryValidator[K, V]) AllowNullValues() *DictionaryValidator[K, V] {
	d.allowNullValues = true
	return d
}

// Additional sets a hook that runs after all dictionary checks. It can be set once.
func (d *DictionaryValidator[K, V]) Additional(hook Hook[map[K]V]) *DictionaryValidator[K, V] {
	if hook == nil {
		mustConfig("Additional", "hook is nil", nil)
	}
	if d.additional != nil {
		mustConfig("Additional", "dictionary validator already has an additional hook", nil)
	}
	d.additional = hook
	return d
}

// Validate validates entries directly.
func (d *DictionaryValidator[K, V]) Validate(ctx context.Context, entries map[K]V, args ...Args) (*Result[map[K]V], error) {
	return d.run(ctx, entries, argsOrDefault(args))
}

// ValidateWithArgs implements Interface.
func (d *DictionaryValidator[K, V]) ValidateWithArgs(ctx context.Context, entries map[K]V, args Args) (Outcome, error) {
	r, err := d.run(ctx, entries, args)
	if err != nil {
		return nil, err
	}
	return r, nil
}

type dictionaryEntry[K comparable, V any] struct {
	key   K
	value V
	label string
}

func (d *DictionaryValidator[K, V]) run(ctx context.Context, entries map[K]V, args Args) (*Result[map[K]V], error) {
	r := newResult(entries, args, nil)
	pc := newValuePropertyContext(r.Context, "", "", "", entries, nil)

	sorted := make([]dictionaryEntry[K, V], 0, len(entries))
	for k, v := range entries {
		sorted = append(sorted, dictionaryEntry[K, V]{key: k, value: v, label: fmt.Sprint(k)})
	}
	slices.SortFunc(sorted, func(a, b dictionaryEntry[K, V]) int {
		return cmp.Compare(a.label, b.label)
	})

	var nullKey, nullValue bool
	for _, e := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		segment := keySegment(e.label)

		if isNil(any(e.key)) {
			nullKey = true
		} else if d.keys != nil && !args.ShallowValidation {
			if err := d.validateEntry(ctx, args, pc, r, segment, func(ctx context.Context, a Args) (Outcome, error) {
				return d.keys.ValidateWithArgs(ctx, e.key, a)
			}); err != nil {
				return nil, err
			}
		}

		if isNil(any(e.value)) {
			nullValue = true
		} else if d.values != nil && !args.ShallowValidation {
			if err := d.validateEntry(ctx, args, pc, r, segment, func(ctx context.Context, a Args) (Outcome, error) {
				return d.values.ValidateWithArgs(ctx, e.value, a)
			}); err != nil {
				return nil, err
			}
		}
	}

	if nullKey && !d.allowNullKeys {
		pc.CreateError(TextDictionaryNullKey)
	}
	if nullValue && !d.allowNullValues {
		pc.CreateError(TextDictionaryNullVal)
	}
	switch {
	case d.minCount > 0 && len(entries) < d.minCount:
		pc.CreateError(TextMinCount, d.minCount)
	case d.maxCount > 0 && len(entries) > d.maxCount:
		pc.CreateError(TextMaxCount, d.maxCount)
	}

	if d.additional != nil {
		if err := d.additional(ctx, r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (d *DictionaryValidator[K, V]) validateEntry(
	ctx context.Context,
	args Args,
	pc *PropertyContext[map[K]V],
	r *Result[map[K]V],
	segment string,
	validate func(ctx context.Context, a Args) (Outcome, error),
) error {
	a, err := args.element(segment, pc.Text)
	if err != nil {
		return fmt.Errorf("%s: %w", JoinPath(pc.Path(), segment), err)
	}
	o, err := validate(ctx, a)
	if err != nil {
		return err
	}
	r.MergeResult(o)
	return nil
}
