// Package storage declares configuration shared by the PostgreSQL store and
// the S3 image store.
package storage

import (
	"fmt"
	"time"
)

// Config for the storage backends.
type Config struct {
	// PostgresURL takes precedence over the discrete connection fields.
	PostgresURL string

	// Discrete connection parameters, used when PostgresURL is empty.
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	PostgresMaxConns int
	PostgresMinConns int
	PostgresTimeout  time.Duration

	// S3 config. An empty bucket disables the image store.
	S3Endpoint     string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool

	// S3PublicURL overrides the derived public base URL for stored objects
	// (for CDN fronting or MinIO-style endpoints).
	S3PublicURL string
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Host:             "localhost",
		Port:             5432,
		SSLMode:          "require",
		PostgresMaxConns: 20,
		PostgresMinConns: 2,
		PostgresTimeout:  10 * time.Second,
		S3Region:         "us-east-1",
	}
}

// ConnString returns the lib/pq connection string for the configuration.
func (c Config) ConnString() string {
	if c.PostgresURL != "" {
		return c.PostgresURL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}
