package sanitizer

var stripPass = Compose(
	StripTags,
	StripJavaScriptProtocol,
	StripEventHandlers,
)

// stripMarkers repeats stripPass until nothing changes. A pass that changes
// the value removes at least one byte, so len(s)+1 passes always reach the
// fixed point.
func stripMarkers(s string) string {
	return UntilStable(stripPass, len(s)+1)(s)
}

var sanitizeText = Compose(Trim, stripMarkers, Trim)

// StripJavaScriptProtocol removes `javascript:` in any letter case.
func StripJavaScriptProtocol(s string) string {
	return javascriptProtocolRegex.ReplaceAllString(s, "")
}

// StripEventHandlers removes inline handler assignments such as `onclick=`
// or `ONERROR=`. The attribute value that follows is left in place.
func StripEventHandlers(s string) string {
	return eventHandlerRegex.ReplaceAllString(s, "")
}

// SanitizeText applies the full cleaning pipeline to a string.
func SanitizeText(s string) string {
	return sanitizeText(s)
}

// SanitizeString cleans a decoded JSON value. It reports false when v is not
// a string (missing keys, numbers, objects, null); the returned string may be
// empty when it is.
func SanitizeString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return sanitizeText(s), true
}
