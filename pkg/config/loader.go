package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option customizes a Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix  string
	noCache bool
}

// WithPrefix prepends prefix to every variable name of the struct tags.
// Cached values are kept per type and prefix.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) {
		o.prefix = prefix
	}
}

// WithoutCache parses the environment again instead of using a cached value.
// The fresh value replaces the cached one.
func WithoutCache() Option {
	return func(o *loadOptions) {
		o.noCache = true
	}
}

type cache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	global = &cache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v based on its `env` struct tags.
// The .env file in the working directory, if any, is loaded on first use.
// Each type is parsed once; later calls return the cached value.
//
//	type Settings struct {
//		MaxDepth int `env:"VALIDATION_MAX_DEPTH" envDefault:"100"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})

	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	key := cacheKey[T](o.prefix)

	global.mu.Lock()
	defer global.mu.Unlock()

	if cached, ok := global.values[key]; ok && !o.noCache {
		typed, ok := cached.(T)
		if !ok {
			return ErrInvalidConfigType
		}
		*v = typed
		return nil
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	global.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads variables from the given env files without overriding ones
// already set in the process environment.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.values = make(map[string]any)
}

func cacheKey[T any](prefix string) string {
	return reflect.TypeFor[T]().String() + "|" + prefix
}
