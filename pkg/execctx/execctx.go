package execctx

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OperationType identifies the kind of business operation being executed.
type OperationType int

const (
	OperationUnspecified OperationType = iota
	OperationGet
	OperationQuery
	OperationCreate
	OperationUpdate
	OperationPatch
	OperationDelete
)

var operationNames = map[OperationType]string{
	OperationUnspecified: "unspecified",
	OperationGet:         "get",
	OperationQuery:       "query",
	OperationCreate:      "create",
	OperationUpdate:      "update",
	OperationPatch:       "patch",
	OperationDelete:      "delete",
}

func (o OperationType) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", int(o))
}

// ParseOperation converts a case-insensitive operation name into an OperationType.
func ParseOperation(name string) (OperationType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for op, n := range operationNames {
		if n == name {
			return op, nil
		}
	}
	return OperationUnspecified, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// ExecutionContext describes who is executing which operation, and when.
type ExecutionContext struct {
	Operation     OperationType
	TenantID      uuid.UUID
	Username      string
	Timestamp     time.Time
	CorrelationID string
}

// Option configures an ExecutionContext.
type Option func(*ExecutionContext)

func WithTenantID(id uuid.UUID) Option {
	return func(ec *ExecutionContext) { ec.TenantID = id }
}

func WithUsername(username string) Option {
	return func(ec *ExecutionContext) { ec.Username = username }
}

// WithTimestamp overrides the timestamp, ignoring zero values.
func WithTimestamp(ts time.Time) Option {
	return func(ec *ExecutionContext) {
		if !ts.IsZero() {
			ec.Timestamp = ts
		}
	}
}

// WithCorrelationID sets the correlation id. A new random id is generated when empty.
func WithCorrelationID(id string) Option {
	return func(ec *ExecutionContext) {
		if id != "" {
			ec.CorrelationID = id
		}
	}
}

// New creates an ExecutionContext for the operation, stamped with the current
// UTC time and a random correlation id unless overridden by options.
func New(op OperationType, opts ...Option) *ExecutionContext {
	ec := &ExecutionContext{
		Operation:     op,
		Timestamp:     time.Now().UTC(),
		CorrelationID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(ec)
	}
	return ec
}

// Is reports whether the execution context operation is one of ops.
func (ec *ExecutionContext) Is(ops ...OperationType) bool {
	if ec == nil {
		return false
	}
	for _, op := range ops {
		if ec.Operation == op {
			return true
		}
	}
	return false
}
