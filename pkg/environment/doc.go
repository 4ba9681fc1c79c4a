// Package environment names the application environment and carries it
// through context.Context so loggers and validators can adapt to it.
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	ctx = environment.WithContext(ctx, env)
//	if environment.IsProduction(ctx) {
//		// production-only behaviour
//	}
package environment
