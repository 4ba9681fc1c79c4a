package pg

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/validationkit/pkg/execctx"
)

// Querier is the subset of *pgxpool.Pool used by TableChecker.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// TableChecker reports whether a value exists in a table column. It
// satisfies validation.Checker.
type TableChecker[T any] struct {
	db           Querier
	query        string
	tenantScoped bool
	timeout      time.Duration
}

// CheckerOption configures a TableChecker.
type CheckerOption func(*checkerOptions)

type checkerOptions struct {
	tenantColumn string
	timeout      time.Duration
}

// WithTenantColumn restricts lookups to the tenant of the execution context
// in ctx. Lookups without an execution context fail.
func WithTenantColumn(column string) CheckerOption {
	return func(o *checkerOptions) {
		o.tenantColumn = column
	}
}

// WithQueryTimeout bounds every lookup. Zero means no extra timeout.
func WithQueryTimeout(d time.Duration) CheckerOption {
	return func(o *checkerOptions) {
		o.timeout = d
	}
}

// NewTableChecker builds the lookup query for table.column. Names may be
// schema qualified ("ref.countries") and are quoted in the query.
func NewTableChecker[T any](db Querier, table, column string, opts ...CheckerOption) (*TableChecker[T], error) {
	var o checkerOptions
	for _, opt := range opts {
		opt(&o)
	}
	for _, name := range []string{table, column} {
		if !identifier.MatchString(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
	}
	if o.tenantColumn != "" && !identifier.MatchString(o.tenantColumn) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, o.tenantColumn)
	}

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1",
		quote(table), quote(column))
	if o.tenantColumn != "" {
		query += fmt.Sprintf(" AND %s = $2", quote(o.tenantColumn))
	}
	query += ")"

	return &TableChecker[T]{
		db:           db,
		query:        query,
		tenantScoped: o.tenantColumn != "",
		timeout:      o.timeout,
	}, nil
}

// Query returns the SQL the checker runs.
func (c *TableChecker[T]) Query() string { return c.query }

func (c *TableChecker[T]) Exists(ctx context.Context, value T) (bool, error) {
	args := []any{value}
	if c.tenantScoped {
		ec, err := execctx.Require(ctx)
		if err != nil {
			return false, errors.Join(ErrLookupFailed, err)
		}
		args = append(args, ec.TenantID)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var exists bool
	if err := c.db.QueryRow(ctx, c.query, args...).Scan(&exists); err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return exists, nil
}

func quote(name string) string {
	return pgx.Identifier(splitQualified(name)).Sanitize()
}

func splitQualified(name string) []string {
	for i := range len(name) {
		if name[i] == '.' {
			return []string{name[:i], name[i+1:]}
		}
	}
	return []string{name}
}
