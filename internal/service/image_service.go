package service

import (
	"context"
	"fmt"

	apperrors "storefront/internal/errors"
	"storefront/internal/media"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// ImageService handles the generic image upload.
type ImageService interface {
	Upload(ctx context.Context, imageBase64 string) error
}

type imageService struct {
	repo     repository.ImageRepository
	uploader media.Uploader
	folder   string
}

// NewImageService creates an image service. An empty folder makes every upload
// fail with ErrUploadFolderNotConfigured before anything is sent or stored.
func NewImageService(repo repository.ImageRepository, uploader media.Uploader, folder string) ImageService {
	return &imageService{repo: repo, uploader: uploader, folder: folder}
}

// Upload sends the image to the media service and keeps the raw payload.
func (s *imageService) Upload(ctx context.Context, imageBase64 string) error {
	if s.folder == "" {
		return apperrors.ErrUploadFolderNotConfigured
	}

	if _, err := s.uploader.Upload(ctx, imageBase64, s.folder); err != nil {
		return fmt.Errorf("upload image: %w", err)
	}

	if err := s.repo.Create(ctx, &model.Image{Image: imageBase64}); err != nil {
		return fmt.Errorf("store image: %w", err)
	}
	return nil
}
