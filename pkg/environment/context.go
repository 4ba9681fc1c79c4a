package environment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Environment represents the application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ErrUnknownEnvironment is returned by Parse for unrecognised names.
var ErrUnknownEnvironment = errors.New("environment: unknown environment")

// Parse normalises an environment name. The short aliases dev, stage and
// prod are accepted; matching is case-insensitive.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return Development, nil
	case "staging", "stage":
		return Staging, nil
	case "production", "prod":
		return Production, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
}

type contextKey struct{}

// WithContext adds the environment to the context.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or "" when none is.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

func IsProduction(ctx context.Context) bool {
	return is(ctx, Production)
}

func IsDevelopment(ctx context.Context) bool {
	return is(ctx, Development)
}

func IsStaging(ctx context.Context) bool {
	return is(ctx, Staging)
}

func is(ctx context.Context, want Environment) bool {
	env, err := Parse(string(FromContext(ctx)))
	return err == nil && env == want
}

// LoggerExtractor returns a logger context extractor adding the environment
// stored in the context under the key "env".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
