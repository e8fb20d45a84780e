package clientip

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// Unknown is reported when no forwarded address is available.
const Unknown = "unknown"

// GetIP returns the first valid address in X-Forwarded-For, or Unknown.
func GetIP(r *http.Request) string {
	for _, header := range r.Header.Values("X-Forwarded-For") {
		for ip := range strings.SplitSeq(header, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}
	return Unknown
}

// parseIP validates and normalizes an IP address string.
// Returns empty string if the IP is invalid.
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	return ip.String()
}

type contextKey struct{}

// Middleware resolves the caller IP once per request and stores it in the
// request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithIP(r.Context(), GetIP(r))))
	})
}

// WithIP returns a copy of ctx carrying ip.
func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the IP stored by Middleware, or Unknown.
func FromContext(ctx context.Context) string {
	if ip, _ := ctx.Value(contextKey{}).(string); ip != "" {
		return ip
	}
	return Unknown
}
