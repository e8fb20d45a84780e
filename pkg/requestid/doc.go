// Package requestid attaches a correlation identifier to every request.
//
// Middleware reuses a well-formed X-Request-ID sent by the client or the
// proxy, generates a UUID otherwise, echoes it in the response header and
// stores it in the request context. LoggerExtractor plugs the identifier
// into every log record written with that context:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
