package config

import (
	"os"
	"testing"
	"time"
)

var envVars = []string{
	"SERVER_PORT",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSL_MODE",
	"DB_MAX_CONNS",
	"DB_MIN_CONNS",
	"STORE_TIMEOUT",
	"AUTH_JWT_SECRET",
	"SUBMISSION_MAX_LENGTH",
	"COMMENT_MAX_LENGTH",
	"DISPLAY_NAME_MAX_LENGTH",
	"FEED_LIMIT",
	"LEADERBOARD_SIZE",
	"IMAGE_MAX_BYTES",
	"IMAGE_STORE",
	"IMAGE_LOCAL_DIR",
	"S3_BUCKET",
	"S3_REGION",
	"S3_PUBLIC_BASE_URL",
	"GCS_BUCKET",
	"GCS_PREFIX",
	"GCS_PUBLIC_BASE_URL",
}

func resetEnv(t *testing.T) {
	t.Helper()
	originalEnv := make(map[string]string)
	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
		os.Unsetenv(env)
	}
	t.Cleanup(func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	})
}

func TestLoad(t *testing.T) {
	resetEnv(t)

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "billboard" {
			t.Errorf("DBName = %v, want billboard", cfg.DBName)
		}
		if cfg.DBMaxConns != 25 {
			t.Errorf("DBMaxConns = %v, want 25", cfg.DBMaxConns)
		}
		if cfg.StoreTimeout != 10*time.Second {
			t.Errorf("StoreTimeout = %v, want 10s", cfg.StoreTimeout)
		}
		if cfg.SubmissionMaxLength != 280 {
			t.Errorf("SubmissionMaxLength = %v, want 280", cfg.SubmissionMaxLength)
		}
		if cfg.CommentMaxLength != 500 {
			t.Errorf("CommentMaxLength = %v, want 500", cfg.CommentMaxLength)
		}
		if cfg.DisplayNameMaxLength != 50 {
			t.Errorf("DisplayNameMaxLength = %v, want 50", cfg.DisplayNameMaxLength)
		}
		if cfg.LeaderboardSize != 20 {
			t.Errorf("LeaderboardSize = %v, want 20", cfg.LeaderboardSize)
		}
		if cfg.ImageMaxBytes != 5*1024*1024 {
			t.Errorf("ImageMaxBytes = %v, want 5MiB", cfg.ImageMaxBytes)
		}
		if cfg.ImageStore != ImageStoreLocal {
			t.Errorf("ImageStore = %v, want local", cfg.ImageStore)
		}
		if cfg.ImageLocalDir != "./uploads" {
			t.Errorf("ImageLocalDir = %v, want ./uploads", cfg.ImageLocalDir)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_NAME", "testdb")
		os.Setenv("STORE_TIMEOUT", "3s")
		os.Setenv("AUTH_JWT_SECRET", "s3cret")
		os.Setenv("SUBMISSION_MAX_LENGTH", "500")
		os.Setenv("LEADERBOARD_SIZE", "10")
		os.Setenv("IMAGE_STORE", "s3")
		os.Setenv("S3_BUCKET", "billboard-images")
		os.Setenv("S3_REGION", "eu-west-1")
		os.Setenv("S3_PUBLIC_BASE_URL", "https://cdn.example.com")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBHost != "db.example.com" {
			t.Errorf("DBHost = %v, want db.example.com", cfg.DBHost)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.DBName != "testdb" {
			t.Errorf("DBName = %v, want testdb", cfg.DBName)
		}
		if cfg.StoreTimeout != 3*time.Second {
			t.Errorf("StoreTimeout = %v, want 3s", cfg.StoreTimeout)
		}
		if cfg.AuthJWTSecret != "s3cret" {
			t.Errorf("AuthJWTSecret = %v, want s3cret", cfg.AuthJWTSecret)
		}
		if cfg.S3PublicBaseURL != "https://cdn.example.com" {
			t.Errorf("S3PublicBaseURL = %v, want https://cdn.example.com", cfg.S3PublicBaseURL)
		}
		if cfg.SubmissionMaxLength != 500 {
			t.Errorf("SubmissionMaxLength = %v, want 500", cfg.SubmissionMaxLength)
		}
		if cfg.LeaderboardSize != 10 {
			t.Errorf("LeaderboardSize = %v, want 10", cfg.LeaderboardSize)
		}
		if cfg.ImageStore != ImageStoreS3 || cfg.S3Bucket != "billboard-images" || cfg.S3Region != "eu-west-1" {
			t.Errorf("S3 config = %v/%v/%v, want s3/billboard-images/eu-west-1", cfg.ImageStore, cfg.S3Bucket, cfg.S3Region)
		}
	})

	t.Run("invalid numbers fall back to defaults", func(t *testing.T) {
		resetEnv(t)
		os.Setenv("DB_PORT", "not-a-number")
		os.Setenv("STORE_TIMEOUT", "soon")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.StoreTimeout != 10*time.Second {
			t.Errorf("StoreTimeout = %v, want 10s", cfg.StoreTimeout)
		}
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown image store", map[string]string{"IMAGE_STORE": "ftp"}},
		{"s3 without bucket", map[string]string{"IMAGE_STORE": "s3"}},
		{"gcs without bucket", map[string]string{"IMAGE_STORE": "gcs"}},
		{"zero submission length", map[string]string{"SUBMISSION_MAX_LENGTH": "0"}},
		{"zero leaderboard", map[string]string{"LEADERBOARD_SIZE": "0"}},
		{"negative image size", map[string]string{"IMAGE_MAX_BYTES": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			if _, err := Load(); err == nil {
				t.Errorf("Load() error = nil, want error")
			}
		})
	}
}
