// Package execctx carries the ambient execution context of a business operation
// (operation kind, tenant, user, timestamp and correlation id) through a
// context.Context.
//
// The validation engine reads it for operation-scoped clauses, and the logger
// decorator can pull tenant, user and operation attributes from it.
//
// # Usage
//
//	ec := execctx.New(execctx.OperationCreate,
//		execctx.WithTenantID(tenantID),
//		execctx.WithUsername("jane"),
//	)
//	ctx = execctx.WithContext(ctx, ec)
//
//	if ec, ok := execctx.FromContext(ctx); ok {
//		_ = ec.Operation // OperationCreate
//	}
//
// FromContext reports absence explicitly; Require converts absence into
// ErrNoExecutionContext so callers can fail with a clear configuration error
// instead of silently defaulting.
package execctx
