package httpserver

import (
	"fmt"
	"log/slog"
	"net"
	"time"
)

// Option configures the HTTP server. Invalid values panic: a server that
// cannot be configured should stop startup.
type Option func(*config)

// WithAddr sets the listen address, for example ":8080".
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty listen address")
	}
	return func(c *config) { c.addr = addr }
}

// WithReadTimeout bounds reading the whole request, body included.
func WithReadTimeout(d time.Duration) Option {
	return durationOption("read timeout", d, func(c *config) *time.Duration { return &c.readTimeout })
}

// WithWriteTimeout bounds writing the response. It has to leave room for the
// webhook deadline, since submissions answer only after the attempt ends.
func WithWriteTimeout(d time.Duration) Option {
	return durationOption("write timeout", d, func(c *config) *time.Duration { return &c.writeTimeout })
}

// WithIdleTimeout bounds how long a keep-alive connection may sit idle.
func WithIdleTimeout(d time.Duration) Option {
	return durationOption("idle timeout", d, func(c *config) *time.Duration { return &c.idleTimeout })
}

// WithShutdownTimeout bounds the wait for in-flight submissions on shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return durationOption("shutdown timeout", d, func(c *config) *time.Duration { return &c.shutdownTimeout })
}

func durationOption(name string, d time.Duration, field func(*config) *time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("httpserver: %s must be positive, got %s", name, d))
	}
	return func(c *config) { *field(c) = d }
}

// WithLogger sets the lifecycle logger. Nil keeps the no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStartHook registers a callback run with the bound address once the
// listener is open. Tests use it to learn the port of ":0".
func WithStartHook(h func(addr net.Addr)) Option {
	if h == nil {
		panic("httpserver: nil start hook")
	}
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}
