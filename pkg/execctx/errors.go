package execctx

import "errors"

var (
	// ErrNoExecutionContext is returned when no execution context is found in context.
	ErrNoExecutionContext = errors.New("no execution context in context")

	// ErrUnknownOperation is returned when an operation name cannot be parsed.
	ErrUnknownOperation = errors.New("unknown operation type")
)
