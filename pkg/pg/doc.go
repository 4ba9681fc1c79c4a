// Package pg connects to PostgreSQL through pgx and provides TableChecker,
// an existence lookup that plugs into validation.Exists:
//
//	pool, err := pg.Connect(ctx, cfg)
//	countries, err := pg.NewTableChecker[string](pool, "ref.countries", "code")
//	validation.Property(v, "Country", getCountry).Exists(countries)
//
// Lookups can be scoped to the tenant of the execution context with
// WithTenantColumn.
package pg
