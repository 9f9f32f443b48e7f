// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled or the process receives SIGINT or
// SIGTERM, then calls http.Server.Shutdown with the configured deadline and
// runs shutdown hooks. Errors are wrapped with ErrStart or ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithShutdownHook(pool.Close),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// HealthHandler serves liveness and readiness probes from named checks.
package httpserver
