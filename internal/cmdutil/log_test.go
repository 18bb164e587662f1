package cmdutil

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Level(false, false))
	assert.Equal(t, slog.LevelDebug, Level(false, true))
	assert.Equal(t, slog.LevelError, Level(true, false))
}

func TestNewLogger_Filters(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, false, false)
	log.Debug("hidden")
	log.Warn("reflector is not an involution", "letter", "a")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "letter=a")

	buf.Reset()
	NewLogger(&buf, true, false).Warn("dropped")
	assert.Empty(t, buf.String())
}
