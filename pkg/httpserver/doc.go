// Package httpserver runs the local HTTP bridge with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is canceled; the caller owns signal handling, usually
// through signal.NotifyContext. HealthCheckHandler builds the liveness and
// readiness endpoints.
package httpserver
