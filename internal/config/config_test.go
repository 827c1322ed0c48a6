package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: test
grpc_server:
  port: "6000"
deal_db:
  dsn: postgres://deal@localhost/deal
votes:
  repeat_policy: keep
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "6000", cfg.GRPCServer.Port)
	assert.Equal(t, "0.0.0.0", cfg.GRPCServer.Host)
	assert.Equal(t, 10*time.Second, cfg.GRPCServer.ShutdownTimeout)
	assert.Equal(t, "keep", cfg.Votes.RepeatPolicy)
	assert.Equal(t, "subject-events", cfg.KafkaService.SubjectTopic)
	assert.Equal(t, 20, cfg.DealDB.MaxOpenConns)
}

func TestLoadRequiresDsn(t *testing.T) {
	if _, ok := os.LookupEnv("DEAL_DB_DSN"); ok {
		t.Skip("DEAL_DB_DSN is set in the environment")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: test\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
