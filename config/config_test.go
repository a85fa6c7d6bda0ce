package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_MissingFileKeepsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadWithEnv(Default(), "config")

	require.NoError(t, err)
	assert.Equal(t, defaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.API.PageSize)
	assert.True(t, cfg.Store.DiscardStaleResults)
	assert.Equal(t, CredentialDriverSQLite, cfg.Credential.Driver)
}

func TestLoadWithEnv_FileThenEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := []byte(`api:
  baseURL: https://shop.example.com/api
  timeout: 5s
store:
  discardStaleResults: false
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("STOREFRONT_API_TIMEOUT", "12s")
	t.Setenv("STOREFRONT_CREDENTIAL_DRIVER", "memory")

	cfg, err := LoadWithEnv(Default(), "config")

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.Store.DiscardStaleResults)
	assert.Equal(t, CredentialDriverMemory, cfg.Credential.Driver)
	assert.Equal(t, "/users/token/blacklist/", cfg.API.SignOutPath)
}

func TestNormalize(t *testing.T) {
	t.Run("trims base url", func(t *testing.T) {
		cfg := Default()
		cfg.API.BaseURL = " http://api.local/api/ "

		require.NoError(t, cfg.normalize())
		assert.Equal(t, "http://api.local/api", cfg.API.BaseURL)
	})

	t.Run("blob driver needs a bucket", func(t *testing.T) {
		cfg := Default()
		cfg.Credential.Driver = CredentialDriverBlob

		assert.Error(t, cfg.normalize())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := Default()
		cfg.Credential.Driver = "redis"

		assert.Error(t, cfg.normalize())
	})
}
