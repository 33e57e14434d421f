package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kpihookd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "db_dsn: postgres://kpi@localhost/kpi\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "postgres://kpi@localhost/kpi", cfg.DBDSN)
	assert.Equal(t, "_id", cfg.InstanceIDField)
	assert.Equal(t, int32(20), cfg.DB.MaxConns)
	assert.Equal(t, int32(5), cfg.DB.MinConns)
	assert.Equal(t, 30*time.Minute, cfg.DB.MaxConnLifetime)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
listen_addr: 127.0.0.1:9000
db_dsn: postgres://kpi@db/kpi
instance_id_field: meta/instanceID
log_level: debug
db:
  max_conns: 4
  min_conns: 1
  max_conn_lifetime: 5m
`))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, "meta/instanceID", cfg.InstanceIDField)
	assert.Equal(t, int32(4), cfg.DB.MaxConns)
	assert.Equal(t, int32(1), cfg.DB.MinConns)
	assert.Equal(t, 5*time.Minute, cfg.DB.MaxConnLifetime)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "listen_adr: :9000\n"))
	assert.Error(t, err, "unknown keys are rejected")
}
