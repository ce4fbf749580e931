package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNop_Disabled(t *testing.T) {
	l := Nop()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.With("k", "v").WithGroup("g").Error("dropped")
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetup_WritesAtLevel(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	l := Setup(&buf, "warn")
	assert.Same(t, l, Logger())

	l.Info("info msg")
	l.Warn("warn msg", "angle", 90)

	out := buf.String()
	assert.NotContains(t, out, "info msg")
	assert.Contains(t, out, "warn msg")
	assert.Contains(t, out, "angle=90")
	assert.Regexp(t, `time=\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z`, out)
}

func TestSetup_DebugLevel(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	Setup(&buf, "debug")
	Logger().Debug("debug msg")

	assert.Contains(t, buf.String(), "logging initialized")
	assert.Contains(t, buf.String(), "debug msg")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}
