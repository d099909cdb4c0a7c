package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"mastercraft/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"warn+2", slog.LevelWarn + 2},
	}

	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newHandler(&buf, false, slog.LevelInfo)).Info("matched", slog.Int("providers", 3))
	assert.Contains(t, buf.String(), `"providers":3`)

	buf.Reset()
	slog.New(newHandler(&buf, true, slog.LevelInfo)).Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "debug"
	cfg.Env.ServiceName = "dispatchworker"

	logger, err := New(Params{Config: cfg})

	require.NoError(t, err)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
}
