package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerTo("warn", &buf)
	log.Info("hidden")
	log.Warn("shown", "records", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "records=3")
}

func TestLogger_WithSharesLevel(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerTo("error", &buf)
	child := log.With("component", "loader")

	log.SetLevel("debug")
	child.Debug("decoded")

	assert.Contains(t, buf.String(), "component=loader")
	assert.Contains(t, buf.String(), "msg=decoded")
}
