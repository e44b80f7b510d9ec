package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"billboard/internal/logger"
	"billboard/internal/metrics"
)

// S3Store stores images in an AWS S3 bucket.
type S3Store struct {
	client   *s3.Client
	bucket   string
	prefix   string
	region   string
	endpoint string
	baseURL  string
	timeout  time.Duration
}

// S3OptionFunc configures an S3Store.
type S3OptionFunc func(*S3Store)

// WithS3Bucket specifies the S3 bucket name
func WithS3Bucket(bucket string) S3OptionFunc {
	return func(s *S3Store) {
		s.bucket = bucket
	}
}

// WithS3Region specifies the AWS region
func WithS3Region(region string) S3OptionFunc {
	return func(s *S3Store) {
		s.region = region
	}
}

// WithS3Prefix specifies the object key prefix
func WithS3Prefix(prefix string) S3OptionFunc {
	return func(s *S3Store) {
		s.prefix = normalizePrefix(prefix)
	}
}

// WithS3Endpoint specifies a custom S3 compatible endpoint such as minio
func WithS3Endpoint(endpoint string) S3OptionFunc {
	return func(s *S3Store) {
		s.endpoint = endpoint
	}
}

// WithS3PublicBaseURL overrides the URL images are served from, e.g. a CDN
func WithS3PublicBaseURL(baseURL string) S3OptionFunc {
	return func(s *S3Store) {
		s.baseURL = baseURL
	}
}

// WithS3Timeout specifies the timeout for AWS config loading
func WithS3Timeout(timeout time.Duration) S3OptionFunc {
	return func(s *S3Store) {
		s.timeout = timeout
	}
}

// NewS3Store creates an S3Store. The client is created by Start.
func NewS3Store(opts ...S3OptionFunc) *S3Store {
	s := &S3Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the AWS configuration and creates the client.
func (s *S3Store) Start(ctx context.Context) error {
	if s.bucket == "" {
		return errors.New("s3 store: bucket not set")
	}

	timeout := s.timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("s3 store: load default AWS config: %w", err)
	}
	if s.region != "" {
		awsCfg.Region = s.region
	}
	s.region = awsCfg.Region

	s.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s.endpoint != "" {
			o.BaseEndpoint = aws.String(s.endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info("S3 image store started",
		slog.String("bucket", s.bucket),
		slog.String("region", s.region))
	return nil
}

// Put uploads data under key and returns its public URL.
func (s *S3Store) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.StoreOperationDuration.WithLabelValues("s3", "put_image"))

	if s.client == nil {
		return "", ErrStoreNotStarted
	}
	if err := validateKey(key); err != nil {
		return "", err
	}

	fullKey := s.prefix + key
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(fullKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.ErrorContext(ctx, "S3 put failed",
			slog.String("key", fullKey),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("s3 store: put %q: %w", fullKey, err)
	}

	return s.publicURL(fullKey), nil
}

func (s *S3Store) publicURL(fullKey string) string {
	switch {
	case s.baseURL != "":
		return joinURL(s.baseURL, fullKey)
	case s.endpoint != "":
		return joinURL(joinURL(s.endpoint, s.bucket), fullKey)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, fullKey)
	}
}

// Close implements ImageStore. The S3 client needs no explicit closing.
func (s *S3Store) Close() error {
	return nil
}
