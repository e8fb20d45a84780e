package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatbridge/leadcapture/pkg/sanitizer"
)

func TestSanitizeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected string
		ok       bool
	}{
		{name: "plain text is trimmed", input: "  Ana Pérez  ", expected: "Ana Pérez", ok: true},
		{name: "script tags removed content kept", input: "<script>alert(1)</script>Ana", expected: "alert(1)Ana", ok: true},
		{name: "javascript protocol removed", input: "JavaScript:alert(1)", expected: "alert(1)", ok: true},
		{name: "event handler removed", input: `x onerror="steal()"`, expected: `x "steal()"`, ok: true},
		{name: "mixed markers", input: `<img src=x onload=go()>hola javascript:void(0)`, expected: "hola void(0)", ok: true},
		{name: "only markup yields empty", input: "<b></b>", expected: "", ok: true},
		{name: "empty string is a string", input: "", expected: "", ok: true},
		{name: "whitespace left by stripping is trimmed", input: "<b> hola </b>", expected: "hola", ok: true},
		{name: "rebuilt marker is removed", input: "javajavascript:script:x", expected: "x", ok: true},
		{name: "handler split by tag is removed", input: "on<b>click=x", expected: "x", ok: true},
		{name: "handler removal rebuilding protocol", input: "javaonx=script:alert(1)", expected: "alert(1)", ok: true},
		{name: "number is not a string", input: 42.0, ok: false},
		{name: "nil is not a string", input: nil, ok: false},
		{name: "object is not a string", input: map[string]any{"a": "b"}, ok: false},
		{name: "bool is not a string", input: true, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := sanitizer.SanitizeString(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeTextIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"  hola  ",
		"<script>alert('x')</script>",
		"<<b>b>text",
		"javajavascript:script:alert(1)",
		"ONonMouseOver=Click=",
		"<a href=\"javascript:go()\" onclick=run()>link</a>",
		"Necesito ayuda con <i>WhatsApp</i> y Excel",
		"<b> spaced </b>",
		"plain",
		strings.Repeat("java", 9) + "javascript:" + strings.Repeat("script:", 9) + "alert(1)",
		strings.Repeat("<", 40) + "b" + strings.Repeat(">", 40) + "x",
		strings.Repeat("on", 12) + "click=" + strings.Repeat("=", 12),
	}

	for _, in := range inputs {
		once := sanitizer.SanitizeText(in)
		twice := sanitizer.SanitizeText(once)
		assert.Equal(t, once, twice, "input %q", in)
		assert.NotRegexp(t, `<[^>]*>`, once)
		assert.NotRegexp(t, `(?i)javascript:`, once)
		assert.NotRegexp(t, `(?i)on\w+=`, once)
	}
}

func TestStripMarkers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b", sanitizer.StripTags("a<br/> b"))
	assert.Equal(t, "alert(1)", sanitizer.StripJavaScriptProtocol("jAvAsCrIpT:alert(1)"))
	assert.Equal(t, "'x'", sanitizer.StripEventHandlers("OnClick='x'"))
	assert.Equal(t, "on click", sanitizer.StripEventHandlers("on click"))
}
