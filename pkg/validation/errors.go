package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks a programming mistake in how a validator was assembled.
	ErrConfiguration = errors.New("validation: configuration error")

	// ErrNilValue is returned when a nil value is passed where a value is required.
	ErrNilValue = errors.New("validation: value is nil")

	// ErrNilRule is raised when a nil rule is registered.
	ErrNilRule = errors.New("validation: rule is nil")

	// ErrNilClause is raised when a nil clause is registered.
	ErrNilClause = errors.New("validation: clause is nil")

	// ErrNilValidator is raised when a nil validator is supplied to a composite.
	ErrNilValidator = errors.New("validation: validator is nil")

	// ErrMaxDepthExceeded is returned when nested validation recurses deeper than Settings.MaxDepth.
	ErrMaxDepthExceeded = errors.New("validation: maximum nesting depth exceeded")

	// ErrFailedToLoadSettings is returned when settings cannot be read from the environment.
	ErrFailedToLoadSettings = errors.New("validation: failed to load settings")
)

// ConfigError describes a misconfigured validator. It matches ErrConfiguration
// with errors.Is.
type ConfigError struct {
	Op  string
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation: %s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("validation: %s: %s", e.Op, e.Msg)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(op, msg string, err error) *ConfigError {
	return &ConfigError{Op: op, Msg: msg, Err: err}
}

// mustConfig panics with a *ConfigError. Used for builder misconfiguration.
func mustConfig(op, msg string, err error) {
	panic(newConfigError(op, msg, err))
}

// IsConfigError reports whether err is or wraps a configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
