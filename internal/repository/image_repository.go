package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// ImageRepository stores raw image uploads.
type ImageRepository interface {
	Create(ctx context.Context, image *model.Image) error
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *model.Image) error {
	return translate(r.db.WithContext(ctx).Create(image).Error)
}
