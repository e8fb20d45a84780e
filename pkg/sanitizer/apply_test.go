package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatbridge/leadcapture/pkg/sanitizer"
)

func TestApplyAndCompose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HELLO", sanitizer.Apply("  hello ", strings.TrimSpace, strings.ToUpper))
	assert.Equal(t, "x", sanitizer.Apply("x"))

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.StripTags)
	assert.Equal(t, "hi", clean(" <p>hi</p> "))
	assert.Equal(t, "yo", clean("yo"))
}

func TestUntilStable(t *testing.T) {
	t.Parallel()

	calls := 0
	halve := func(n int) int {
		calls++
		return n / 2
	}

	assert.Equal(t, 0, sanitizer.UntilStable(halve, 100)(64))
	assert.Equal(t, 8, calls)

	assert.Equal(t, 16, sanitizer.UntilStable(halve, 2)(64))
}
