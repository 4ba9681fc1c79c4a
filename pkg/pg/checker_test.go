package pg_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/execctx"
	"github.com/dmitrymomot/validationkit/pkg/pg"
)

type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgx.Row)
}

type row struct {
	exists bool
	err    error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.exists
	return nil
}

func TestNewTableChecker(t *testing.T) {
	t.Run("builds quoted query", func(t *testing.T) {
		c, err := pg.NewTableChecker[string](&MockQuerier{}, "ref.countries", "code")
		require.NoError(t, err)
		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "ref"."countries" WHERE "code" = $1)`, c.Query())
	})

	t.Run("tenant scoped query", func(t *testing.T) {
		c, err := pg.NewTableChecker[string](&MockQuerier{}, "products", "sku", pg.WithTenantColumn("tenant_id"))
		require.NoError(t, err)
		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "products" WHERE "sku" = $1 AND "tenant_id" = $2)`, c.Query())
	})

	t.Run("rejects invalid identifiers", func(t *testing.T) {
		_, err := pg.NewTableChecker[string](&MockQuerier{}, "countries; drop table x", "code")
		require.ErrorIs(t, err, pg.ErrInvalidIdentifier)

		_, err = pg.NewTableChecker[string](&MockQuerier{}, "countries", "code", pg.WithTenantColumn("1abc"))
		require.ErrorIs(t, err, pg.ErrInvalidIdentifier)
	})
}

func TestTableChecker_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		q := &MockQuerier{}
		c, err := pg.NewTableChecker[string](q, "countries", "code")
		require.NoError(t, err)

		q.On("QueryRow", mock.Anything, c.Query(), []any{"DE"}).Return(row{exists: true}).Once()

		ok, err := c.Exists(ctx, "DE")
		require.NoError(t, err)
		assert.True(t, ok)
		q.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		q := &MockQuerier{}
		c, err := pg.NewTableChecker[string](q, "countries", "code", pg.WithQueryTimeout(0))
		require.NoError(t, err)

		q.On("QueryRow", mock.Anything, c.Query(), []any{"XX"}).Return(row{exists: false}).Once()

		ok, err := c.Exists(ctx, "XX")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("query error", func(t *testing.T) {
		q := &MockQuerier{}
		c, err := pg.NewTableChecker[int](q, "orders", "id")
		require.NoError(t, err)

		boom := errors.New("connection reset")
		q.On("QueryRow", mock.Anything, c.Query(), []any{7}).Return(row{err: boom}).Once()

		_, err = c.Exists(ctx, 7)
		require.ErrorIs(t, err, pg.ErrLookupFailed)
		require.ErrorIs(t, err, boom)
	})

	t.Run("tenant scoped", func(t *testing.T) {
		q := &MockQuerier{}
		c, err := pg.NewTableChecker[string](q, "products", "sku", pg.WithTenantColumn("tenant_id"))
		require.NoError(t, err)

		_, err = c.Exists(ctx, "A-1")
		require.ErrorIs(t, err, execctx.ErrNoExecutionContext)

		tenant := uuid.New()
		tctx := execctx.WithContext(ctx, execctx.New(execctx.OperationCreate, execctx.WithTenantID(tenant)))
		q.On("QueryRow", mock.Anything, c.Query(), []any{"A-1", tenant}).Return(row{exists: true}).Once()

		ok, err := c.Exists(tctx, "A-1")
		require.NoError(t, err)
		assert.True(t, ok)
		q.AssertExpectations(t)
	})
}
