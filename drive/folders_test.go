package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user-1", "user-1"},
		{"O'Brien", `O\'Brien`},
		{`a\b`, `a\\b`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeQuery(tt.in))
		})
	}
}
