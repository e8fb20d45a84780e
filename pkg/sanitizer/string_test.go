package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatbridge/leadcapture/pkg/sanitizer"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "shorter than limit", input: "curl/8.0", max: 50, expected: "curl/8.0"},
		{name: "exact limit", input: "abcde", max: 5, expected: "abcde"},
		{name: "cuts ascii", input: "abcdef", max: 3, expected: "abc"},
		{name: "counts runes", input: "ñandú", max: 3, expected: "ñan"},
		{name: "zero limit", input: "abc", max: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Truncate(tt.input, tt.max))
		})
	}
}

func TestLengthCountsRunes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, sanitizer.Length("Ñu"))
	assert.Equal(t, 0, sanitizer.Length(""))
}

func TestRemoveWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+50370000000", sanitizer.RemoveWhitespace("+503 7000 0000"))
	assert.Equal(t, "ab", sanitizer.RemoveWhitespace(" a\t\nb "))
}
