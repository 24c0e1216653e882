package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumericSpan(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want bool
	}{
		{"single digit", "5", true},
		{"multi digit", "12345", true},
		{"hex lower", "0xff", true},
		{"hex upper", "0X1A", true},
		{"hex vacuous body", "0x", true},
		{"not a digit run", "12a4", false},
		{"empty span", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte(tt.buf)
			assert.Equal(t, tt.want, isNumericSpan(buf, 0, len(buf)))
		})
	}
}
