// Package webhook delivers JSON payloads to HTTP endpoints with a single,
// time-bounded attempt.
//
// Send marshals the data, POSTs it with Content-Type application/json and
// reports the outcome both as a DeliveryResult and an error. There is no
// retry: callers that need one decide on their own.
//
//	sender := webhook.NewSender()
//	result, err := sender.Send(ctx, url, lead,
//		webhook.WithTimeout(10*time.Second),
//		webhook.WithHeader("X-Lead-ID", lead.ID),
//		webhook.WithSignature(secret),
//	)
//
// The timeout is layered on top of ctx, so the earlier of the two deadlines
// wins and expiry aborts the in-flight connection.
//
// # Errors
//
// Failures wrap one of the sentinel errors so they can be told apart with
// errors.Is:
//
//   - ErrInvalidURL, ErrInvalidPayload, ErrInvalidConfiguration: nothing was sent
//   - ErrTimeout: the deadline expired before a response arrived
//   - ErrTemporaryFailure: a network error
//   - ErrDeliveryFailed: the endpoint answered with a non-2xx status
//
// # Signing
//
// WithSignature adds X-Webhook-Signature, X-Webhook-Timestamp and
// X-Webhook-ID headers. The signature is HMAC-SHA256 over
// "<timestamp>.<payload>"; receivers check it with VerifySignature.
package webhook
