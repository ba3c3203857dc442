package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const fetchTimeout = 30 * time.Second

// SeedProductData represents one catalog entry in the seed file.
type SeedProductData struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Price       json.RawMessage `json:"price"`
	Description string          `json:"description"`
}

// catalogCache is the part of the cache the seed run invalidates.
type catalogCache interface {
	Delete(ctx context.Context, keys ...string) error
}

// seedResult counts what happened to each catalog entry.
type seedResult struct {
	Created int
	Updated int
	Skipped int
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Starting seed script...")

	cfg := config.Load()
	ctx := context.Background()

	products, err := loadCatalog(ctx, os.Getenv("SEED_PRODUCTS_URL"), os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load products")
	}
	logrus.Infof("Loaded %d products", len(products))

	store, closeStore, err := db.OpenStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer closeStore()
	logrus.Info("Connected to database")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	result, err := seedProducts(ctx, store.Products, cacheClient, products)
	if err != nil {
		logrus.WithError(err).Error("Failed to seed products")
		return
	}

	logrus.Info("Seed completed successfully!")
	fmt.Printf("  - New products created: %d\n", result.Created)
	fmt.Printf("  - Existing products updated: %d\n", result.Updated)
	fmt.Printf("  - Invalid products skipped: %d\n", result.Skipped)
}

// loadCatalog reads the catalog from url when set, else from the first argument.
func loadCatalog(ctx context.Context, url string, args []string) ([]SeedProductData, error) {
	switch {
	case url != "":
		logrus.Infof("Fetching products from: %s", url)
		return fetchProducts(ctx, url)
	case len(args) > 0:
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		return parseProducts(f)
	default:
		return nil, errors.New("set SEED_PRODUCTS_URL or pass a catalog file path")
	}
}

// fetchProducts fetches the catalog from an HTTP endpoint.
func fetchProducts(ctx context.Context, url string) ([]SeedProductData, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code: %d", resp.StatusCode)
	}
	return parseProducts(resp.Body)
}

func parseProducts(r io.Reader) ([]SeedProductData, error) {
	var products []SeedProductData
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return products, nil
}

// priceString keeps prices as text whether the catalog wrote them as numbers or strings.
func priceString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// seedProducts creates new products and updates existing ones by id, then drops
// the cached listings. Entries without a name or with a malformed id are skipped.
func seedProducts(ctx context.Context, repo repository.ProductRepository, listings catalogCache, items []SeedProductData) (result seedResult, err error) {
	defer func() {
		if result.Created+result.Updated == 0 {
			return
		}
		if delErr := listings.Delete(ctx, cache.KeyProducts, cache.KeyProductCategories); delErr != nil {
			logrus.WithError(delErr).Warn("Failed to invalidate cached product listings")
		}
	}()

	for _, item := range items {
		if item.Name == "" {
			logrus.Warnf("Skipping product without a name (id %q)", item.ID)
			result.Skipped++
			continue
		}
		if item.ID != "" {
			if _, err := uuid.Parse(item.ID); err != nil {
				logrus.Warnf("Skipping product with invalid id: %s", item.ID)
				result.Skipped++
				continue
			}
		}

		product := model.Product{
			ID:          item.ID,
			Name:        item.Name,
			Category:    item.Category,
			Image:       item.Image,
			Price:       priceString(item.Price),
			Description: item.Description,
		}

		if item.ID != "" {
			existing, err := repo.FindByID(ctx, item.ID)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return result, fmt.Errorf("error checking product %s: %w", item.ID, err)
			}
			if existing != nil {
				product.CreatedAt = existing.CreatedAt
				if err := repo.Update(ctx, &product); err != nil {
					return result, fmt.Errorf("error updating product %s: %w", item.ID, err)
				}
				result.Updated++
				continue
			}
		}

		if err := repo.Create(ctx, &product); err != nil {
			return result, fmt.Errorf("error creating product %s: %w", item.Name, err)
		}
		result.Created++
	}
	return result, nil
}
