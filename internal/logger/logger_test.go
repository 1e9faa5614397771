package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel_KnownLevels(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"CRITICAL", slog.LevelError},
		{"  info  ", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		level, ok := ParseLevel(tt.input)
		assert.True(t, ok, "level %q should be recognized", tt.input)
		assert.Equal(t, tt.want, level)
	}
}

func TestParseLevel_UnknownFallsBackToInfo(t *testing.T) {
	level, ok := ParseLevel("VERBOSE")

	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestSetup_SetsLevel(t *testing.T) {
	defer Setup("INFO")

	Setup("DEBUG")
	assert.True(t, Enabled(slog.LevelDebug))

	Setup("ERROR")
	assert.False(t, Enabled(slog.LevelWarn))
	assert.True(t, Enabled(slog.LevelError))
}

func TestSetup_InvalidLevelDoesNotCrash(t *testing.T) {
	defer Setup("INFO")

	log := Setup("not-a-level")

	assert.NotNil(t, log)
	assert.True(t, Enabled(slog.LevelInfo))
	assert.False(t, Enabled(slog.LevelDebug))
}
