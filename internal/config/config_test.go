package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "env: production\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2333, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, StrategyLocal, cfg.Storage.Strategy)
	assert.Equal(t, "static/uploads", cfg.Storage.Local.Dir)
	assert.Contains(t, cfg.Database.DSNValue(), "tcp(127.0.0.1:3306)/folio_space")
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URLValue())
}

func TestLoadS3Strategy(t *testing.T) {
	path := writeConfig(t, `
storage:
  strategy: s3
  s3:
    bucket: media
    region: us-east-1
    access_key_id: AKIA
    secret_access_key: secret
    custom_domain: https://cdn.example.com/
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StrategyS3, cfg.Storage.Strategy)
	assert.Equal(t, "https://cdn.example.com", cfg.Storage.S3.CustomDomain)
}

func TestLoadS3StrategyIncomplete(t *testing.T) {
	path := writeConfig(t, `
storage:
  strategy: s3
  s3:
    bucket: media
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete storage.s3 config")
}

func TestLoadUnknownStrategy(t *testing.T) {
	path := writeConfig(t, "storage:\n  strategy: ftp\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid storage.strategy")
}

func TestLoadInvalidPort(t *testing.T) {
	path := writeConfig(t, "port: 70000\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadExplicitDSNAndRedisURL(t *testing.T) {
	path := writeConfig(t, `
database:
  dsn: user:pw@tcp(db:3306)/site?parseTime=true
redis:
  url: redis-host:6380
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "user:pw@tcp(db:3306)/site?parseTime=true", cfg.Database.DSNValue())
	assert.Equal(t, "redis://redis-host:6380", cfg.Redis.URLValue())
}
