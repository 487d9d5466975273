package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars blanks every variable Load reads so the host environment
// cannot leak into a test. t.Setenv restores the original values.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvPort, EnvAPIKey, EnvTrustedProxies, EnvLogLevel, EnvLogFormat,
		EnvEnvironment, EnvVersion, EnvServiceName, EnvDefaultLocale,
		EnvLocaleCacheSize, EnvLocaleCacheTTL, EnvPackPath, EnvStrictImport,
		EnvMaxBodyBytes, EnvLogDir, EnvLogMaxSizeMB, EnvLogMaxBackups, EnvLogMaxAgeDays,
		EnvShutdownTimeout,
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		unsetForTest(t, EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvVersion,
			EnvServiceName, EnvDefaultLocale, EnvLocaleCacheSize, EnvLocaleCacheTTL,
			EnvStrictImport, EnvMaxBodyBytes, EnvLogDir, EnvLogMaxSizeMB, EnvLogMaxBackups,
			EnvLogMaxAgeDays, EnvShutdownTimeout)
		t.Setenv(EnvAPIKey, "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "numenera-items", cfg.ServiceName)
		assert.Equal(t, "en-US", cfg.DefaultLocale)
		assert.Equal(t, 512, cfg.LocaleCacheSize)
		assert.Equal(t, 30*time.Minute, cfg.LocaleCacheTTL)
		assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
		assert.False(t, cfg.StrictImport)
		assert.Empty(t, cfg.TrustedProxies)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Equal(t, "logs", cfg.LogDir)
		assert.Equal(t, 20, cfg.LogMaxSizeMB)
		assert.Equal(t, 9, cfg.LogMaxBackups)
		assert.Equal(t, 14, cfg.LogMaxAgeDays)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvAPIKey, "custom-api-key")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvDefaultLocale, "fr-FR")
		t.Setenv(EnvLocaleCacheSize, "64")
		t.Setenv(EnvLocaleCacheTTL, "5m")
		t.Setenv(EnvPackPath, "configs/items/core.json")
		t.Setenv(EnvStrictImport, "true")
		t.Setenv(EnvTrustedProxies, "10.0.0.1, ,10.0.0.2")
		t.Setenv(EnvLogMaxBackups, "3")
		t.Setenv(EnvShutdownTimeout, "30s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "fr-FR", cfg.DefaultLocale)
		assert.Equal(t, 64, cfg.LocaleCacheSize)
		assert.Equal(t, 5*time.Minute, cfg.LocaleCacheTTL)
		assert.Equal(t, "configs/items/core.json", cfg.PackPath)
		assert.True(t, cfg.StrictImport)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, 3, cfg.LogMaxBackups)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
		assert.Empty(t, cfg.LogDir, "an empty LOG_DIR disables file output")
	})

	t.Run("fails without API key", func(t *testing.T) {
		clearEnvVars(t)
		unsetForTest(t, EnvPort)

		cfg, err := Load()

		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("fails with invalid port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "test-key")
		t.Setenv(EnvPort, "not-a-number")

		cfg, err := Load()

		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PORT value")
	})
}
