package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatbridge/leadcapture/pkg/sanitizer"
)

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "jane.doe@example.com", expected: "jane.doe@***"},
		{input: "a@b.c", expected: "a@***"},
		{input: "no-at-sign", expected: "no-at-sign@***"},
		{input: "", expected: "@***"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.MaskEmail(tt.input))
		})
	}
}

func TestMaskPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "+503 7000-0000", expected: "+503****00"},
		{input: "+50370001234", expected: "+503****34"},
		{input: "12345", expected: "1234****45"},
		{input: "12", expected: "12****12"},
		{input: "", expected: "****"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.MaskPhone(tt.input))
		})
	}
}
