package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"billboard/internal/logger"
	"billboard/internal/metrics"
)

// LocalStore writes images to a directory served by the HTTP server.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates a LocalStore rooted at dir whose files are reachable under baseURL.
func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: baseURL}
}

// Dir returns the directory images are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Start creates the storage directory.
func (s *LocalStore) Start(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("local store: create dir: %w", err)
	}
	return nil
}

// Put writes data under key and returns its public URL.
func (s *LocalStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.StoreOperationDuration.WithLabelValues("local", "put_image"))

	if err := validateKey(key); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("local store: create dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("local store: write %q: %w", key, err)
	}

	logger.DebugContext(ctx, "Stored image",
		slog.String("store", "local"),
		slog.String("key", key),
		slog.Int("bytes", len(data)))

	return joinURL(s.baseURL, key), nil
}

// Close implements ImageStore.
func (s *LocalStore) Close() error {
	return nil
}
