// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ServerShutdownTimeout bounds graceful shutdown of the API and metrics servers.
	ServerShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// CodecKey is the fixed symmetric key used to mint link tokens.
	CodecKey string
	// CodecIV is the fixed initialization vector used to mint link tokens.
	CodecIV string
	// CodecKeyEncoding tells how CodecKey and CodecIV are written: "raw", "hex" or "base64".
	CodecKeyEncoding string
	// CodecKMSKeyURI, when set, means CodecKey is a base64 KMS ciphertext to unwrap at startup.
	CodecKMSKeyURI string
	// CodecBatchMaxSize is the maximum number of identifiers accepted by one batch encode.
	CodecBatchMaxSize int
	// CodecBatchConcurrency is the number of goroutines used by one batch encode.
	CodecBatchConcurrency int

	// LinksBaseURL is prepended to generated console links. Empty means relative links.
	LinksBaseURL string

	// RateLimitDecodeEnabled indicates whether per-IP rate limiting of decode endpoints is enabled.
	RateLimitDecodeEnabled bool
	// RateLimitDecodeRequestsPerSec is the number of decode requests allowed per second per IP.
	RateLimitDecodeRequestsPerSec float64
	// RateLimitDecodeBurst is the burst size for decode rate limiting.
	RateLimitDecodeBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:            env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:            env.GetInt("SERVER_PORT", 8080),
		ServerShutdownTimeout: env.GetDuration("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Codec key material
		CodecKey:              env.GetString("CODEC_KEY", ""),
		CodecIV:               env.GetString("CODEC_IV", ""),
		CodecKeyEncoding:      env.GetString("CODEC_KEY_ENCODING", "raw"),
		CodecKMSKeyURI:        env.GetString("CODEC_KMS_KEY_URI", ""),
		CodecBatchMaxSize:     env.GetInt("CODEC_BATCH_MAX_SIZE", 500),
		CodecBatchConcurrency: env.GetInt("CODEC_BATCH_CONCURRENCY", 8),

		// Links
		LinksBaseURL: env.GetString("LINKS_BASE_URL", ""),

		// Rate limiting for decode/resolve endpoints (IP-based, unauthenticated)
		RateLimitDecodeEnabled:        env.GetBool("RATE_LIMIT_DECODE_ENABLED", true),
		RateLimitDecodeRequestsPerSec: env.GetFloat64("RATE_LIMIT_DECODE_REQUESTS_PER_SEC", 20.0),
		RateLimitDecodeBurst:          env.GetInt("RATE_LIMIT_DECODE_BURST", 40),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "linkcodec"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
