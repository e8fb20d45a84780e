package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatbridge/leadcapture/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		xff      []string
		expected string
	}{
		{name: "single address", xff: []string{"203.0.113.195"}, expected: "203.0.113.195"},
		{name: "first of chain", xff: []string{"203.0.113.195, 10.0.0.1, 172.16.0.1"}, expected: "203.0.113.195"},
		{name: "skips invalid entries", xff: []string{"garbage, , 198.51.100.7"}, expected: "198.51.100.7"},
		{name: "ipv6 normalized", xff: []string{"2001:DB8::1"}, expected: "2001:db8::1"},
		{name: "repeated headers", xff: []string{"nope", "192.0.2.10"}, expected: "192.0.2.10"},
		{name: "no header", expected: clientip.Unknown},
		{name: "nothing valid", xff: []string{"unknown, <script>"}, expected: clientip.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.RemoteAddr = "10.10.10.10:1234"
			for _, v := range tt.xff {
				req.Header.Add("X-Forwarded-For", v)
			}

			assert.Equal(t, tt.expected, clientip.GetIP(req))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "198.51.100.1", got)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, clientip.Unknown, clientip.FromContext(context.Background()))
	assert.Equal(t, "192.0.2.1", clientip.FromContext(clientip.WithIP(context.Background(), "192.0.2.1")))
}
