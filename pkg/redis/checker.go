package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SetClient is the subset of redis.UniversalClient used by SetChecker.
type SetClient interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
}

// KeyClient is the subset of redis.UniversalClient used by KeyChecker.
type KeyClient interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// SetChecker reports whether a value is a member of a Redis set, e.g. the
// set of active currency codes. It satisfies validation.Checker.
type SetChecker[T any] struct {
	client SetClient
	key    string
}

// NewSetChecker checks membership of the set stored at prefix+name.
func NewSetChecker[T any](client SetClient, prefix, name string) *SetChecker[T] {
	return &SetChecker[T]{client: client, key: prefix + name}
}

// Key returns the full set key.
func (c *SetChecker[T]) Key() string { return c.key }

func (c *SetChecker[T]) Exists(ctx context.Context, value T) (bool, error) {
	ok, err := c.client.SIsMember(ctx, c.key, value).Result()
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return ok, nil
}

// KeyChecker reports whether a key named prefix+value exists, e.g. a cached
// reservation or an issued token.
type KeyChecker[T any] struct {
	client KeyClient
	prefix string
}

func NewKeyChecker[T any](client KeyClient, prefix string) *KeyChecker[T] {
	return &KeyChecker[T]{client: client, prefix: prefix}
}

func (c *KeyChecker[T]) Exists(ctx context.Context, value T) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+fmt.Sprint(value)).Result()
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return n > 0, nil
}
