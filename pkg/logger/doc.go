// Package logger builds *slog.Logger instances from functional options or
// from environment configuration, and provides attribute helpers that keep
// key names consistent across packages.
//
//	var cfg logger.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	log := logger.New(
//		logger.FromConfig(cfg),
//		logger.WithContextExtractors(execctx.LoggerExtractor()),
//	)
//
// Context extractors run for every record and add request-scoped values
// such as the operation and tenant of the current execution context.
package logger
