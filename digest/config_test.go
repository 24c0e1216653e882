package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.ReplaceNull)
	assert.False(t, cfg.Lowercase)
	assert.False(t, cfg.NoDigits)
	assert.Equal(t, 3, cfg.GroupingLimit)
	assert.Greater(t, cfg.MaxQueryLength, 0)
}

func TestConfig_ClampLen(t *testing.T) {
	cfg := Config{MaxQueryLength: 5}
	assert.Equal(t, 5, cfg.clampLen(10))
	assert.Equal(t, 3, cfg.clampLen(3))

	unlimited := Config{MaxQueryLength: 0}
	assert.Equal(t, 100, unlimited.clampLen(100))
}
