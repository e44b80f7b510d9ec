package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Supported image store backends.
const (
	ImageStoreLocal = "local"
	ImageStoreS3    = "s3"
	ImageStoreGCS   = "gcs"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	MigrationsDir       string

	// StoreTimeout bounds every data store and blob store call.
	StoreTimeout time.Duration

	// Identity provider token verification
	AuthJWTSecret string
	AuthJWTIssuer string

	// Content limits, counted in runes
	SubmissionMaxLength  int
	CommentMaxLength     int
	DisplayNameMaxLength int

	// Feed configuration
	FeedLimit       int
	LeaderboardSize int

	// Image upload configuration
	ImageMaxBytes      int64
	ImageStore         string
	ImageLocalDir      string
	ImagePublicBaseURL string
	S3Bucket           string
	S3Region           string
	S3Prefix           string
	S3Endpoint         string
	S3PublicBaseURL    string
	GCSBucket          string
	GCSPrefix          string
	GCSCredentialsFile string
	GCSPublicBaseURL   string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		ReadTimeout:          getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:         getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:          getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnvInt("DB_PORT", 5432),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBName:               getEnv("DB_NAME", "billboard"),
		DBSSLMode:            getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:           int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:           int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:    getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:    getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:  getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MigrationsDir:        getEnv("MIGRATIONS_DIR", "./migrations"),
		StoreTimeout:         getEnvDuration("STORE_TIMEOUT", 10*time.Second),
		AuthJWTSecret:        getEnv("AUTH_JWT_SECRET", ""),
		AuthJWTIssuer:        getEnv("AUTH_JWT_ISSUER", ""),
		SubmissionMaxLength:  getEnvInt("SUBMISSION_MAX_LENGTH", 280),
		CommentMaxLength:     getEnvInt("COMMENT_MAX_LENGTH", 500),
		DisplayNameMaxLength: getEnvInt("DISPLAY_NAME_MAX_LENGTH", 50),
		FeedLimit:            getEnvInt("FEED_LIMIT", 100),
		LeaderboardSize:      getEnvInt("LEADERBOARD_SIZE", 20),
		ImageMaxBytes:        int64(getEnvInt("IMAGE_MAX_BYTES", 5*1024*1024)),
		ImageStore:           getEnv("IMAGE_STORE", ImageStoreLocal),
		ImageLocalDir:        getEnv("IMAGE_LOCAL_DIR", "./uploads"),
		ImagePublicBaseURL:   getEnv("IMAGE_PUBLIC_BASE_URL", "http://localhost:8080/uploads"),
		S3Bucket:             getEnv("S3_BUCKET", ""),
		S3Region:             getEnv("S3_REGION", ""),
		S3Prefix:             getEnv("S3_PREFIX", ""),
		S3Endpoint:           getEnv("S3_ENDPOINT", ""),
		S3PublicBaseURL:      getEnv("S3_PUBLIC_BASE_URL", ""),
		GCSBucket:            getEnv("GCS_BUCKET", ""),
		GCSPrefix:            getEnv("GCS_PREFIX", ""),
		GCSCredentialsFile:   getEnv("GCS_CREDENTIALS_FILE", ""),
		GCSPublicBaseURL:     getEnv("GCS_PUBLIC_BASE_URL", ""),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive")
	}
	if c.SubmissionMaxLength < 1 {
		return fmt.Errorf("SUBMISSION_MAX_LENGTH must be at least 1")
	}
	if c.CommentMaxLength < 1 {
		return fmt.Errorf("COMMENT_MAX_LENGTH must be at least 1")
	}
	if c.DisplayNameMaxLength < 1 {
		return fmt.Errorf("DISPLAY_NAME_MAX_LENGTH must be at least 1")
	}
	if c.FeedLimit < 1 {
		return fmt.Errorf("FEED_LIMIT must be at least 1")
	}
	if c.LeaderboardSize < 1 {
		return fmt.Errorf("LEADERBOARD_SIZE must be at least 1")
	}
	if c.ImageMaxBytes < 1 {
		return fmt.Errorf("IMAGE_MAX_BYTES must be at least 1")
	}

	switch c.ImageStore {
	case ImageStoreLocal:
		if c.ImageLocalDir == "" {
			return fmt.Errorf("IMAGE_LOCAL_DIR is required for the local image store")
		}
	case ImageStoreS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for the s3 image store")
		}
	case ImageStoreGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required for the gcs image store")
		}
	default:
		return fmt.Errorf("IMAGE_STORE must be one of: local, s3, gcs")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
