// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run listens on the configured address, serves until the context is
// cancelled or the process receives SIGINT/SIGTERM, then drains in-flight
// requests for at most the shutdown timeout. Config carries the usual
// timeouts with env tags so it can be loaded with pkg/config.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
