// Package leads implements the lead capture endpoint.
//
// A submission is a JSON object. Validate sanitizes each known field with
// sanitizer.SanitizeString and checks it, collecting every failure instead of
// stopping at the first. The "form" field selects the contact fields:
//
//	audit (default):  name, email, phone, painPoint, otherDescription?
//	whatsapp:         name, whatsapp, painPoint, otherDescription?, business?
//
// otherDescription is required when painPoint is "otro".
//
// Valid submissions go to the Dispatcher, which builds an immutable Record,
// logs it with the email and phone numbers masked, and posts it once to the
// configured webhook. The attempt has a fixed deadline that does not depend
// on the client connection. Its outcome is logged and never changes the
// response: a valid submission always gets 200 with its lead id.
package leads
