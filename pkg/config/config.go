package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ericlantz/pokedex-api/pkg/observability"
	"github.com/ericlantz/pokedex-api/pkg/storage"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Storage configuration
	Storage storage.Config

	// Observability configuration
	Observability ObservabilityConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	// Origins allowed by the CORS middleware. "*" allows any origin.
	AllowedOrigins []string
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	LogLevel       observability.LogLevel
	MetricsEnabled bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server:        loadServerConfig(),
		Storage:       loadStorageConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadServerConfig loads server configuration from environment
func loadServerConfig() ServerConfig {
	return ServerConfig{
		Host:            getEnv("POKEDEX_HOST", "0.0.0.0"),
		Port:            getEnv("POKEDEX_PORT", "5000"),
		ReadTimeout:     getEnvDuration("POKEDEX_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("POKEDEX_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getEnvDuration("POKEDEX_IDLE_TIMEOUT", 60*time.Second),
		RequestTimeout:  getEnvDuration("POKEDEX_REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDuration("POKEDEX_SHUTDOWN_TIMEOUT", 30*time.Second),
		AllowedOrigins:  splitList(getEnv("POKEDEX_ALLOWED_ORIGINS", "*")),
	}
}

// loadStorageConfig loads storage configuration from environment
func loadStorageConfig() storage.Config {
	cfg := storage.DefaultConfig()

	// PostgreSQL config
	if pgURL := getEnv("POKEDEX_POSTGRES_URL", ""); pgURL != "" {
		cfg.PostgresURL = pgURL
	}
	if host := getEnv("POKEDEX_POSTGRES_HOST", ""); host != "" {
		cfg.Host = host
	}
	if port := getEnvInt("POKEDEX_POSTGRES_PORT", 0); port > 0 {
		cfg.Port = port
	}
	if user := getEnv("POKEDEX_POSTGRES_USER", ""); user != "" {
		cfg.User = user
	}
	if password := getEnv("POKEDEX_POSTGRES_PASSWORD", ""); password != "" {
		cfg.Password = password
	}
	if database := getEnv("POKEDEX_POSTGRES_DATABASE", ""); database != "" {
		cfg.Database = database
	}
	if sslMode := getEnv("POKEDEX_POSTGRES_SSLMODE", ""); sslMode != "" {
		cfg.SSLMode = sslMode
	}
	if maxConns := getEnvInt("POKEDEX_POSTGRES_MAX_CONNS", 0); maxConns > 0 {
		cfg.PostgresMaxConns = maxConns
	}
	if minConns := getEnvInt("POKEDEX_POSTGRES_MIN_CONNS", 0); minConns > 0 {
		cfg.PostgresMinConns = minConns
	}
	if timeout := getEnvDuration("POKEDEX_POSTGRES_TIMEOUT", 0); timeout > 0 {
		cfg.PostgresTimeout = timeout
	}

	// S3 config
	if s3Endpoint := getEnv("POKEDEX_S3_ENDPOINT", ""); s3Endpoint != "" {
		cfg.S3Endpoint = s3Endpoint
	}
	if s3Region := getEnv("POKEDEX_S3_REGION", ""); s3Region != "" {
		cfg.S3Region = s3Region
	}
	if s3Bucket := getEnv("POKEDEX_S3_BUCKET", ""); s3Bucket != "" {
		cfg.S3Bucket = s3Bucket
	}
	if s3AccessKey := getEnv("POKEDEX_S3_ACCESS_KEY", ""); s3AccessKey != "" {
		cfg.S3AccessKey = s3AccessKey
	}
	if s3SecretKey := getEnv("POKEDEX_S3_SECRET_KEY", ""); s3SecretKey != "" {
		cfg.S3SecretKey = s3SecretKey
	}
	if s3UsePathStyle := getEnv("POKEDEX_S3_USE_PATH_STYLE", ""); s3UsePathStyle != "" {
		cfg.S3UsePathStyle = strings.ToLower(s3UsePathStyle) == "true"
	}
	if s3PublicURL := getEnv("POKEDEX_S3_PUBLIC_URL", ""); s3PublicURL != "" {
		cfg.S3PublicURL = s3PublicURL
	}

	return cfg
}

// loadObservabilityConfig loads observability configuration from environment
func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:       parseLogLevel(getEnv("POKEDEX_LOG_LEVEL", "info")),
		MetricsEnabled: getEnvBool("POKEDEX_METRICS_ENABLED", true),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server port must be numeric: %q", c.Server.Port)
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}

	if c.Storage.PostgresURL == "" && c.Storage.Database == "" {
		return fmt.Errorf("postgres URL or database name is required")
	}

	// The image store is optional, but once a bucket is named the rest
	// of the S3 settings have to be coherent.
	if c.Storage.S3Bucket != "" && c.Storage.S3Region == "" && c.Storage.S3Endpoint == "" {
		return fmt.Errorf("S3 region or endpoint is required when a bucket is configured")
	}

	return nil
}

// parseLogLevel parses a log level string
func parseLogLevel(level string) observability.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return observability.DebugLevel
	case "info":
		return observability.InfoLevel
	case "warn", "warning":
		return observability.WarnLevel
	case "error":
		return observability.ErrorLevel
	default:
		return observability.InfoLevel
	}
}

// splitList splits a comma-separated environment value into trimmed entries
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
