package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"billboard/internal/logger"
	"billboard/internal/metrics"
)

const gcsPublicHost = "https://storage.googleapis.com"

// GCSStore stores images in a Google Cloud Storage bucket.
type GCSStore struct {
	client          *gcs.Client
	bucket          *gcs.BucketHandle
	bucketName      string
	prefix          string
	credentialsFile string
	baseURL         string
}

// GCSOptionFunc configures a GCSStore.
type GCSOptionFunc func(*GCSStore)

// WithGCSBucket specifies the GCS bucket name
func WithGCSBucket(bucket string) GCSOptionFunc {
	return func(s *GCSStore) {
		s.bucketName = bucket
	}
}

// WithGCSPrefix specifies the object name prefix
func WithGCSPrefix(prefix string) GCSOptionFunc {
	return func(s *GCSStore) {
		s.prefix = normalizePrefix(prefix)
	}
}

// WithGCSCredentialsFile specifies a service account key file
func WithGCSCredentialsFile(path string) GCSOptionFunc {
	return func(s *GCSStore) {
		s.credentialsFile = path
	}
}

// WithGCSPublicBaseURL overrides the URL images are served from
func WithGCSPublicBaseURL(baseURL string) GCSOptionFunc {
	return func(s *GCSStore) {
		s.baseURL = baseURL
	}
}

// NewGCSStore creates a GCSStore. The client is created by Start.
func NewGCSStore(opts ...GCSOptionFunc) *GCSStore {
	s := &GCSStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start creates the storage client.
func (s *GCSStore) Start(ctx context.Context) error {
	if s.bucketName == "" {
		return errors.New("gcs store: bucket not set")
	}

	var clientOpts []option.ClientOption
	if s.credentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(s.credentialsFile))
	}

	client, err := gcs.NewClient(ctx, clientOpts...)
	if err != nil {
		return fmt.Errorf("gcs store: create client: %w", err)
	}

	s.client = client
	s.bucket = client.Bucket(s.bucketName)

	logger.Info("GCS image store started", slog.String("bucket", s.bucketName))
	return nil
}

// Put uploads data under key and returns its public URL.
func (s *GCSStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.StoreOperationDuration.WithLabelValues("gcs", "put_image"))

	if s.bucket == nil {
		return "", ErrStoreNotStarted
	}
	if err := validateKey(key); err != nil {
		return "", err
	}

	name := s.prefix + key
	w := s.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs store: write %q: %w", name, err)
	}
	if err := w.Close(); err != nil {
		logger.ErrorContext(ctx, "GCS put failed",
			slog.String("key", name),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("gcs store: close writer %q: %w", name, err)
	}

	return s.publicURL(name), nil
}

func (s *GCSStore) publicURL(name string) string {
	if s.baseURL != "" {
		return joinURL(s.baseURL, name)
	}
	return joinURL(joinURL(gcsPublicHost, s.bucketName), name)
}

// Close releases the storage client.
func (s *GCSStore) Close() error {
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	s.bucket = nil
	return err
}
