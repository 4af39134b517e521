package datausa

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
format = "json"

[db]
host = "db.internal"
port = 6432
user = "census"
password = "secret"
database = "datausa"
pool_size = 20

[cache]
size = 64

[query]
timeout = "5s"
max_limit = 5000
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6432, cfg.DB.Port)
	assert.Equal(t, 20, cfg.DB.PoolSize)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 64, cfg.Cache.Size)
	assert.Equal(t, 5*time.Second, time.Duration(cfg.Query.Timeout))
	assert.Equal(t, 5000, cfg.Query.MaxLimit)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "[db]\nhost = \"pg\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "pg", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, DefaultCacheSize, cfg.Cache.Size)
	assert.Equal(t, DefaultQueryTimeout, time.Duration(cfg.Query.Timeout))
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "[query]\ntimeout = \"soon\"\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[db]\nhostname = \"pg\"\n"))
	assert.Error(t, err)
}
