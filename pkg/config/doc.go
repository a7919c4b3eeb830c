// Package config provides application configuration management from environment variables.
//
// # Overview
//
// This package loads and validates configuration from environment variables with
// sensible defaults for all settings.
//
// # Configuration Structure
//
// Server settings:
//
//	POKEDEX_HOST="0.0.0.0"
//	POKEDEX_PORT="5000"
//	POKEDEX_READ_TIMEOUT="15s"
//	POKEDEX_WRITE_TIMEOUT="15s"
//	POKEDEX_ALLOWED_ORIGINS="*"
//
// Storage settings:
//
//	POKEDEX_POSTGRES_URL="postgres://localhost/pokedex"
//	POKEDEX_POSTGRES_MAX_CONNS="20"
//	POKEDEX_S3_BUCKET="pokedex-images"
//	POKEDEX_S3_REGION="us-east-1"
//	POKEDEX_S3_ENDPOINT="http://localhost:9000"  # MinIO for local dev
//
// Observability settings:
//
//	POKEDEX_LOG_LEVEL="info"  # debug, info, warn, error
//	POKEDEX_METRICS_ENABLED="true"
//
// # Usage Example
//
// Load configuration:
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("Server: %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//	fmt.Printf("Log level: %s\n", cfg.Observability.LogLevel)
//
// # Related Packages
//
//   - pkg/storage: Uses storage configuration
//   - pkg/observability: Uses observability configuration
package config
