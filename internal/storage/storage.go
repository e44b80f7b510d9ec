// Package storage provides blob stores for uploaded images.
package storage

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrStoreNotStarted is returned when an operation runs before Start.
	ErrStoreNotStarted = errors.New("image store not started")
	// ErrInvalidKey is returned for empty or path escaping object keys.
	ErrInvalidKey = errors.New("invalid object key")
)

// ImageStore persists image bytes and returns their public URL.
type ImageStore interface {
	Start(ctx context.Context) error
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Close() error
}

func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}

func joinURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + key
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}
