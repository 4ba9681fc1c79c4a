package execctx

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validationkit/pkg/logger"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithContext adds an execution context to the context.
func WithContext(ctx context.Context, ec *ExecutionContext) context.Context {
	return context.WithValue(ctx, contextKey{}, ec)
}

// FromContext retrieves the execution context from the context.
// Returns nil, false if no execution context is found.
func FromContext(ctx context.Context) (*ExecutionContext, bool) {
	if ctx == nil {
		return nil, false
	}
	ec, ok := ctx.Value(contextKey{}).(*ExecutionContext)
	if !ok || ec == nil {
		return nil, false
	}
	return ec, true
}

// Require retrieves the execution context or returns ErrNoExecutionContext.
func Require(ctx context.Context) (*ExecutionContext, error) {
	ec, ok := FromContext(ctx)
	if !ok {
		return nil, ErrNoExecutionContext
	}
	return ec, nil
}

// MustFromContext retrieves the execution context from the context.
// Panics if none is found. Use this only where an execution context is
// guaranteed by the surrounding middleware.
func MustFromContext(ctx context.Context) *ExecutionContext {
	ec, ok := FromContext(ctx)
	if !ok {
		panic("execctx: no execution context in context")
	}
	return ec
}

// LoggerExtractor returns a logger context extractor that groups the
// operation, tenant, username and correlation id under the key "exec".
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		ec, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		attrs := []slog.Attr{logger.Operation(ec.Operation.String())}
		if ec.TenantID != uuid.Nil {
			attrs = append(attrs, logger.TenantID(ec.TenantID.String()))
		}
		if ec.Username != "" {
			attrs = append(attrs, slog.String("username", ec.Username))
		}
		if ec.CorrelationID != "" {
			attrs = append(attrs, logger.CorrelationID(ec.CorrelationID))
		}
		return logger.Group("exec", attrs...), true
	}
}
