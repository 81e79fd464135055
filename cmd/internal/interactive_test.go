package internal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"y confirms", "y\n", true},
		{"yes confirms", "yes\n", true},
		{"uppercase Y confirms", "Y\n", true},
		{"YES confirms", "YES\n", true},
		{"n declines", "n\n", false},
		{"no declines", "no\n", false},
		{"empty line declines", "\n", false},
		{"arbitrary text declines", "maybe\n", false},
		{"EOF declines", "", false},
		{"leading whitespace is trimmed", "  yes  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(&out, strings.NewReader(tt.input), "Proceed?")

			assert.Equal(t, tt.expected, got)
			assert.Contains(t, out.String(), "Proceed? [y/N]:")
		})
	}
}

func TestIsInteractive_NonTTY(t *testing.T) {
	// An invalid file descriptor is never a TTY.
	assert.False(t, IsInteractive(^uintptr(0)))
}
