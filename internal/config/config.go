package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	APIKey         string // API key for authentication
	TrustedProxies []string

	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	ServiceName string

	// Log file rotation. An empty LogDir logs to stdout only.
	LogDir        string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	// Localization
	DefaultLocale   string
	LocaleCacheSize int
	LocaleCacheTTL  time.Duration

	// Item library
	PackPath     string
	StrictImport bool
	MaxBodyBytes int64

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, DefaultVersion),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),

		LogDir:        getEnv(EnvLogDir, DefaultLogDir),
		LogMaxSizeMB:  getEnvAsInt(EnvLogMaxSizeMB, DefaultLogMaxSizeMB),
		LogMaxBackups: getEnvAsInt(EnvLogMaxBackups, DefaultLogMaxBackups),
		LogMaxAgeDays: getEnvAsInt(EnvLogMaxAgeDays, DefaultLogMaxAgeDays),

		DefaultLocale:   getEnv(EnvDefaultLocale, DefaultLocale),
		LocaleCacheSize: getEnvAsInt(EnvLocaleCacheSize, DefaultLocaleCacheSize),
		LocaleCacheTTL:  getEnvAsDuration(EnvLocaleCacheTTL, DefaultLocaleCacheTTL),

		PackPath:     getEnv(EnvPackPath, ""),
		StrictImport: getEnvAsBool(EnvStrictImport, false),
		MaxBodyBytes: int64(getEnvAsInt(EnvMaxBodyBytes, DefaultMaxBodyBytes)),

		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvironmentProduction)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or garbage
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a time.ParseDuration string
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
