package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerPrintsModuleAndAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, nil)).With("module", "game")

	logger.Info("session ready", "width", 800)

	line := out.String()
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "[game] ")
	assert.Contains(t, line, "session ready")
	assert.Contains(t, line, "width=800")
	assert.NotContains(t, line, "module=")
	assert.Equal(t, byte('\n'), line[len(line)-1])
}

func TestHandlerRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	assert.Empty(t, out.String())

	logger.Warn("shown")
	assert.Contains(t, out.String(), "shown")
}
