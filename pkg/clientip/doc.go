// Package clientip resolves the caller IP address recorded with each lead.
//
// The address comes from the X-Forwarded-For header set by the reverse
// proxy in front of the service: the first entry that parses as an IP wins.
// When the header is absent or holds nothing valid, Unknown is used instead
// of the socket peer, which is always the proxy itself.
//
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware)
//	...
//	ip := clientip.FromContext(r.Context())
package clientip
