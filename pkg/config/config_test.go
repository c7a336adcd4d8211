package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromConfigPath(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  http:\n    port: \"9090\"\nverifier:\n  timeout: 3s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testsvc.yaml"), yaml, 0o644))

	t.Setenv("CONFIG_PATH", dir)
	t.Setenv("TESTSVC_REDIS_HOST", "redis.internal")

	cfg, err := Load("testsvc", map[string]interface{}{
		"redis.host": "localhost",
		"redis.port": 6379,
	})
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.GetString("server.http.port"))
	assert.Equal(t, 3*time.Second, cfg.GetDuration("verifier.timeout"))
	assert.Equal(t, "redis.internal", cfg.GetString("redis.host"))
	assert.Equal(t, 6379, cfg.GetInt("redis.port"))
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())

	cfg, err := Load("missing", map[string]interface{}{"log.level": "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.GetString("log.level"))

	_, err = Load("missing", nil)
	assert.Error(t, err)
}
