package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamwoolhether/gecko/client"
	"github.com/adamwoolhether/gecko/internal/config"
)

// isolate points HOME at an empty directory so no user config is found.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)

	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("", "")
	require.NoError(t, err)

	assert.Equal(t, client.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "x-cg-demo-api-key", cfg.APIKeyHeader)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Zero(t, cfg.Throttle.RPS)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)

	path := writeFile(t, dir, "gecko.yaml", `
base_url: https://pro-api.coingecko.com/api/v3
api_key_header: x-cg-pro-api-key
timeout: 5s
throttle:
  rps: 5
  burst: 2
log:
  level: debug
  format: json
`)

	cfg, err := config.Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "https://pro-api.coingecko.com/api/v3", cfg.BaseURL)
	assert.Equal(t, "x-cg-pro-api-key", cfg.APIKeyHeader)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, config.Throttle{RPS: 5, Burst: 2}, cfg.Throttle)
	assert.Equal(t, config.Log{Level: "debug", Format: "json"}, cfg.Log)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)

	path := writeFile(t, dir, "gecko.yaml", "log:\n  level: warn\n")
	t.Setenv("GECKO_LOG_LEVEL", "error")
	t.Setenv("GECKO_API_KEY", "from-env")

	cfg, err := config.Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)

	envPath := writeFile(t, dir, ".env", "GECKO_API_KEY=from-dotenv\nGECKO_TIMEOUT=2s\n")
	t.Cleanup(func() {
		os.Unsetenv("GECKO_API_KEY")
		os.Unsetenv("GECKO_TIMEOUT")
	})

	cfg, err := config.Load("", envPath)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.APIKey)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load("", filepath.Join(dir, "absent.env"))
	require.NoError(t, err)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load(filepath.Join(dir, "absent.yaml"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		BaseURL:      client.DefaultBaseURL,
		APIKeyHeader: "x-cg-demo-api-key",
		Log:          config.Log{Level: "info", Format: "text"},
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *config.Config) {}},
		{name: "bad level", mutate: func(c *config.Config) { c.Log.Level = "loud" }, wantErr: true},
		{name: "bad format", mutate: func(c *config.Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "bad url", mutate: func(c *config.Config) { c.BaseURL = "not a url" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *config.Config) { c.Timeout = -time.Second }, wantErr: true},
		{name: "rps without burst", mutate: func(c *config.Config) { c.Throttle.RPS = 5 }, wantErr: true},
		{name: "throttle", mutate: func(c *config.Config) { c.Throttle = config.Throttle{RPS: 5, Burst: 1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_ClientOptions(t *testing.T) {
	cfg := config.Config{
		BaseURL:      "https://pro-api.coingecko.com/api/v3/",
		APIKey:       "secret",
		APIKeyHeader: "x-cg-pro-api-key",
		Timeout:      time.Second,
		UserAgent:    "gecko-test",
		Throttle:     config.Throttle{RPS: 10, Burst: 1},
	}

	c, err := client.Build(cfg.ClientOptions(slog.New(slog.DiscardHandler))...)
	require.NoError(t, err)

	assert.Equal(t, "https://pro-api.coingecko.com/api/v3", c.BaseURL())
}
