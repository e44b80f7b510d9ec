package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"billboard/internal/domain"
	"billboard/internal/logger"
	"billboard/internal/metrics"
	"billboard/internal/storage"
)

// DefaultImageMaxBytes is the upload size limit, 5 MiB.
const DefaultImageMaxBytes int64 = 5 * 1024 * 1024

// Image upload results recorded in metrics.
const (
	uploadSuccess  = "success"
	uploadRejected = "rejected"
	uploadError    = "error"
)

// imageExtensions is the allow-list of sniffed content types. The stored
// extension always comes from here, never from the client's filename.
var imageExtensions = map[string]string{
	"image/png":                ".png",
	"image/jpeg":               ".jpg",
	"image/gif":                ".gif",
	"image/webp":               ".webp",
	"image/bmp":                ".bmp",
	"image/x-icon":             ".ico",
	"image/vnd.microsoft.icon": ".ico",
}

// ImageService validates uploads and writes them to the blob store.
type ImageService struct {
	store    storage.ImageStore
	maxBytes int64
	timeout  time.Duration
}

// NewImageService creates a new ImageService.
func NewImageService(store storage.ImageStore, maxBytes int64, timeout time.Duration) *ImageService {
	if maxBytes <= 0 {
		maxBytes = DefaultImageMaxBytes
	}
	return &ImageService{store: store, maxBytes: maxBytes, timeout: timeout}
}

// MaxBytes returns the upload size limit.
func (s *ImageService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload stores an image and returns its public URL. Size and content type
// are checked before the blob store is touched.
func (s *ImageService) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		metrics.ObserveImageUpload(uploadRejected, 0)
		return "", domain.NewValidationError("file", "file_required")
	}
	if int64(len(data)) > s.maxBytes {
		metrics.ObserveImageUpload(uploadRejected, len(data))
		return "", domain.NewValidationError("file", fmt.Sprintf("file_too_large: max %d bytes", s.maxBytes))
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		metrics.ObserveImageUpload(uploadRejected, len(data))
		return "", domain.NewValidationError("file", "unsupported_file_type")
	}

	key := "images/" + uuid.New().String() + ext

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	url, err := s.store.Put(ctx, key, contentType, data)
	if err != nil {
		metrics.ObserveImageUpload(uploadError, len(data))
		return "", domain.StorageError("upload image", err)
	}

	metrics.ObserveImageUpload(uploadSuccess, len(data))
	logger.InfoContext(ctx, "Image uploaded",
		slog.String("key", key),
		slog.String("filename", filename),
		slog.String("content_type", contentType),
		slog.Int("bytes", len(data)))

	return url, nil
}
