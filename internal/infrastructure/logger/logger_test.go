package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/LavaJover/shvark-deal-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		wantErr bool
	}{
		{name: "json stdout", cfg: config.LogConfig{LogLevel: "info", LogFormat: "json", LogOutput: "stdout"}},
		{name: "text stderr", cfg: config.LogConfig{LogLevel: "debug", LogFormat: "text", LogOutput: "stderr"}},
		{name: "bad level", cfg: config.LogConfig{LogLevel: "loud"}, wantErr: true},
		{name: "bad format", cfg: config.LogConfig{LogLevel: "info", LogFormat: "xml"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLogger(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deal.log")
	l, err := NewLogger(config.LogConfig{LogLevel: "warn", LogFormat: "json", LogOutput: path})
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept", "event", "test_event")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"event":"test_event"`)
	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
}
