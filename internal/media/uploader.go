// Package media uploads images to the configured hosting service and returns
// the durable URL the catalog stores.
package media

import (
	"context"
	"fmt"

	"storefront/internal/config"
)

// Result describes a stored image.
type Result struct {
	SecureURL string
	PublicID  string
}

// Uploader stores an image and returns where it can be fetched from.
// file is a data URI, raw base64, or (backend permitting) a remote URL.
type Uploader interface {
	Upload(ctx context.Context, file, folder string) (Result, error)
}

// New builds the uploader selected by cfg.MediaBackend.
func New(ctx context.Context, cfg *config.Config) (Uploader, error) {
	switch cfg.MediaBackend {
	case config.MediaCloudinary:
		return NewCloudinaryUploader(cfg.CloudinaryName, cfg.CloudinaryKey, cfg.CloudinarySecret)
	case config.MediaS3:
		return NewS3Uploader(ctx, S3Options{
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
	default:
		return nil, fmt.Errorf("unsupported media backend %q", cfg.MediaBackend)
	}
}
