package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "http://localhost:7912", cfg.Spoolman.URL)
	assert.Equal(t, 8883, cfg.MQTT.Port)
	assert.Equal(t, "bblp", cfg.MQTT.Username)
	assert.True(t, cfg.MQTT.InsecureTLS)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, 120, cfg.Redis.TTLSeconds)
	assert.False(t, cfg.Sync.DisableWeightSync)
	assert.False(t, cfg.Storage.Enabled())
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SPOOLMAN_URL", "http://spoolman:8000")
	t.Setenv("SYNC_DISABLE_WEIGHT_SYNC", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://spoolman:8000", cfg.Spoolman.URL)
	assert.True(t, cfg.Sync.DisableWeightSync)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=console\nSERVER_API_KEY=secret\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("LOG_FORMAT")
		_ = os.Unsetenv("SERVER_API_KEY")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
}

func TestBindValues(t *testing.T) {
	type inner struct {
		Name string `mapstructure:"name" default:"x"`
	}
	type outer struct {
		Inner   inner  `mapstructure:"inner"`
		Skipped string ``
		Count   int    `mapstructure:"count" default:"3"`
	}

	v := viper.New()
	bindValues(v, outer{}, "")

	assert.Equal(t, "x", v.GetString("inner.name"))
	assert.Equal(t, 3, v.GetInt("count"))
	assert.False(t, v.IsSet("skipped"))
}
