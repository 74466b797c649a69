package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
	assert.Equal(t, 1.0, Clamp(1.7, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3.2, -1, 1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))

	// Multibyte runes are never split.
	truncated := Truncate(strings.Repeat("🚀", 10), 3)
	assert.Equal(t, "🚀🚀🚀", truncated)
}
