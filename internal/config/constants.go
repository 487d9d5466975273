package config

import (
	"errors"
	"time"
)

// Environment variable names
const (
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	EnvPort            = "PORT"
	EnvAPIKey          = "API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvVersion         = "VERSION"
	EnvServiceName     = "SERVICE_NAME"
	EnvDefaultLocale   = "DEFAULT_LOCALE"
	EnvLocaleCacheSize = "LOCALE_CACHE_SIZE"
	EnvLocaleCacheTTL  = "LOCALE_CACHE_TTL"
	EnvPackPath        = "ITEM_PACK_PATH"
	EnvStrictImport    = "STRICT_IMPORT"
	EnvMaxBodyBytes    = "MAX_BODY_BYTES"
	EnvLogDir          = "LOG_DIR"
	EnvLogMaxSizeMB    = "LOG_MAX_SIZE_MB"
	EnvLogMaxBackups   = "LOG_MAX_BACKUPS"
	EnvLogMaxAgeDays   = "LOG_MAX_AGE_DAYS"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Default values
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultVersion         = "dev"
	DefaultServiceName     = "numenera-items"
	DefaultLocale          = "en-US"
	DefaultLocaleCacheSize = 512
	DefaultLocaleCacheTTL  = 30 * time.Minute
	DefaultMaxBodyBytes    = 1 << 20
	DefaultLogDir          = "logs"
	DefaultLogMaxSizeMB    = 20
	DefaultLogMaxBackups   = 9
	DefaultLogMaxAgeDays   = 14
	DefaultShutdownTimeout = 10 * time.Second
)

// EnvironmentProduction is the ENVIRONMENT value of production deployments
const EnvironmentProduction = "prod"

// Example values shipped in .env.example
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)

// ErrMissingAPIKey is returned by Load when API_KEY is unset
var ErrMissingAPIKey = errors.New("API_KEY environment variable must be set for security")

// Error messages
const (
	ErrMsgInvalidPort = "invalid PORT value: %w"
)
