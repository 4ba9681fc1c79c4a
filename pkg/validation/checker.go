package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/validationkit/pkg/cache"
)

// Checker reports whether a value exists in some external store.
type Checker[P any] interface {
	Exists(ctx context.Context, value P) (bool, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc[P any] func(ctx context.Context, value P) (bool, error)

func (f CheckerFunc[P]) Exists(ctx context.Context, value P) (bool, error) {
	return f(ctx, value)
}

// Exists reports an error when a specified value is not found by the checker.
// A checker failure aborts the run.
func Exists[P any](checker Checker[P], opts ...RuleOption) Rule[P] {
	if checker == nil {
		mustConfig("Exists", "checker is nil", ErrNilRule)
	}
	cfg := newRuleConfig(TextExists, opts)
	return RuleFunc[P](func(ctx context.Context, pc *PropertyContext[P]) error {
		if !hasValue(pc.Value) {
			return nil
		}
		ok, err := checker.Exists(ctx, pc.Value)
		if err != nil {
			return fmt.Errorf("check %s exists: %w", pc.Path(), err)
		}
		if !ok {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}

// CachedChecker memoizes the answers of another checker, both positive and
// negative, for a limited time.
type CachedChecker[P comparable] struct {
	next  Checker[P]
	cache *cache.LRUCache[P, bool]
}

// NewCachedChecker wraps next with an LRU cache of the given capacity. A zero
// ttl keeps answers until they are evicted.
func NewCachedChecker[P comparable](next Checker[P], capacity int, ttl time.Duration) *CachedChecker[P] {
	if isNil(next) {
		mustConfig("NewCachedChecker", "checker is nil", ErrNilRule)
	}
	return &CachedChecker[P]{
		next:  next,
		cache: cache.NewLRUCache[P, bool](capacity, cache.WithTTL(ttl)),
	}
}

func (c *CachedChecker[P]) Exists(ctx context.Context, value P) (bool, error) {
	if ok, found := c.cache.Get(value); found {
		return ok, nil
	}
	ok, err := c.next.Exists(ctx, value)
	if err != nil {
		return false, err
	}
	c.cache.Put(value, ok)
	return ok, nil
}

// Forget drops a cached answer, e.g. after the value was created or deleted.
func (c *CachedChecker[P]) Forget(value P) {
	c.cache.Remove(value)
}
