package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// ProductRepository defines catalog persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	// ListCategories returns the category projection of every product.
	ListCategories(ctx context.Context) ([]model.ProductCategory, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create creates a new product.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return translate(r.db.WithContext(ctx).Create(product).Error)
}

// Update saves every field of an existing product.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return translate(r.db.WithContext(ctx).Save(product).Error)
}

// FindByID finds a product by ID.
func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// List returns all products in insertion order.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := r.db.WithContext(ctx).Order("created_at").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories returns id and category for all products.
func (r *productRepository) ListCategories(ctx context.Context) ([]model.ProductCategory, error) {
	categories := []model.ProductCategory{}
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("id", "category").
		Order("created_at").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
