package service

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/cache"
	"storefront/internal/media"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// UploadProductInput is the product form. Image is a data URI or URL.
type UploadProductInput struct {
	Name        string
	Category    string
	Price       string
	Description string
	Image       string
}

// ProductService handles catalog operations.
type ProductService interface {
	Upload(ctx context.Context, in UploadProductInput) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListCategories(ctx context.Context) ([]model.ProductCategory, error)
}

type productService struct {
	repo     repository.ProductRepository
	uploader media.Uploader
	cache    *cache.Client
	folder   string
}

// NewProductService creates a new product service. Product images go to folder.
func NewProductService(repo repository.ProductRepository, uploader media.Uploader, cache *cache.Client, folder string) ProductService {
	return &productService{
		repo:     repo,
		uploader: uploader,
		cache:    cache,
		folder:   folder,
	}
}

// Upload stores the image with the media service, then persists the product
// with the returned secure URL.
func (s *productService) Upload(ctx context.Context, in UploadProductInput) (*model.Product, error) {
	uploaded, err := s.uploader.Upload(ctx, in.Image, s.folder)
	if err != nil {
		return nil, fmt.Errorf("upload product image: %w", err)
	}

	product := &model.Product{
		Name:        in.Name,
		Category:    in.Category,
		Image:       uploaded.SecureURL,
		Price:       in.Price,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.KeyProducts, cache.KeyProductCategories)
	return product, nil
}

// List returns the full catalog.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	var cached []model.Product
	if s.cache.GetJSON(ctx, cache.KeyProducts, &cached) {
		return cached, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	s.cache.SetJSON(ctx, cache.KeyProducts, products, productCacheTTL)
	return products, nil
}

// ListCategories returns the id and category of every product.
func (s *productService) ListCategories(ctx context.Context) ([]model.ProductCategory, error) {
	var cached []model.ProductCategory
	if s.cache.GetJSON(ctx, cache.KeyProductCategories, &cached) {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	s.cache.SetJSON(ctx, cache.KeyProductCategories, categories, productCacheTTL)
	return categories, nil
}
