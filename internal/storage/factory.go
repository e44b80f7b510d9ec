package storage

import "billboard/internal/config"

// FromConfig builds the image store selected by IMAGE_STORE.
func FromConfig(cfg *config.Config) ImageStore {
	switch cfg.ImageStore {
	case config.ImageStoreS3:
		return NewS3Store(
			WithS3Bucket(cfg.S3Bucket),
			WithS3Region(cfg.S3Region),
			WithS3Prefix(cfg.S3Prefix),
			WithS3Endpoint(cfg.S3Endpoint),
			WithS3PublicBaseURL(cfg.S3PublicBaseURL),
			WithS3Timeout(cfg.StoreTimeout),
		)
	case config.ImageStoreGCS:
		return NewGCSStore(
			WithGCSBucket(cfg.GCSBucket),
			WithGCSPrefix(cfg.GCSPrefix),
			WithGCSCredentialsFile(cfg.GCSCredentialsFile),
			WithGCSPublicBaseURL(cfg.GCSPublicBaseURL),
		)
	default:
		return NewLocalStore(cfg.ImageLocalDir, cfg.ImagePublicBaseURL)
	}
}
