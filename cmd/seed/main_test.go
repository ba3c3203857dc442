package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/cache"
	"storefront/internal/model"
	"storefront/internal/repository"
)

type memoryProducts struct {
	byID map[string]*model.Product
}

func newMemoryProducts(existing ...model.Product) *memoryProducts {
	m := &memoryProducts{byID: map[string]*model.Product{}}
	for i := range existing {
		p := existing[i]
		m.byID[p.ID] = &p
	}
	return m
}

func (m *memoryProducts) Create(_ context.Context, p *model.Product) error {
	p.EnsureID()
	stored := *p
	m.byID[p.ID] = &stored
	return nil
}

func (m *memoryProducts) Update(_ context.Context, p *model.Product) error {
	if _, ok := m.byID[p.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *p
	m.byID[p.ID] = &stored
	return nil
}

func (m *memoryProducts) FindByID(_ context.Context, id string) (*model.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (m *memoryProducts) List(context.Context) ([]model.Product, error) {
	return nil, nil
}

func (m *memoryProducts) ListCategories(context.Context) ([]model.ProductCategory, error) {
	return nil, nil
}

type recordingCache struct {
	deleted []string
}

func (c *recordingCache) Delete(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

const catalog = `[
	{"_id":"9a3c2f1e-5b7d-4c8a-9e0f-1a2b3c4d5e6f","name":"Mango","category":"fruits","image":"https://cdn/m.png","price":"150","description":"ripe"},
	{"name":"Carrot","category":"vegetables","image":"https://cdn/c.png","price":30},
	{"_id":"not-a-uuid","name":"Broken"},
	{"category":"fruits"}
]`

func TestSeedProducts(t *testing.T) {
	items, err := parseProducts(strings.NewReader(catalog))
	require.NoError(t, err)
	require.Len(t, items, 4)

	repo := newMemoryProducts(model.Product{ID: "9a3c2f1e-5b7d-4c8a-9e0f-1a2b3c4d5e6f", Name: "Mango", Price: "120"})

	listings := &recordingCache{}

	result, err := seedProducts(context.Background(), repo, listings, items)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{cache.KeyProducts, cache.KeyProductCategories}, listings.deleted)
	assert.Equal(t, seedResult{Created: 1, Updated: 1, Skipped: 2}, result)
	assert.Equal(t, "150", repo.byID["9a3c2f1e-5b7d-4c8a-9e0f-1a2b3c4d5e6f"].Price)
	assert.Len(t, repo.byID, 2)

	for id, p := range repo.byID {
		if p.Name == "Carrot" {
			assert.NotEmpty(t, id)
			assert.Equal(t, "30", p.Price)
			assert.Equal(t, "https://cdn/c.png", p.Image)
		}
	}
}

func TestSeedProducts_NothingWrittenKeepsCache(t *testing.T) {
	listings := &recordingCache{}

	result, err := seedProducts(context.Background(), newMemoryProducts(), listings, []SeedProductData{{ID: "bad-id", Name: "Broken"}})

	require.NoError(t, err)
	assert.Equal(t, seedResult{Skipped: 1}, result)
	assert.Empty(t, listings.deleted)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("from url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(catalog))
		}))
		defer srv.Close()

		items, err := loadCatalog(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Len(t, items, 4)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.json")
		require.NoError(t, os.WriteFile(path, []byte(catalog), 0o600))

		items, err := loadCatalog(context.Background(), "", []string{path})
		require.NoError(t, err)
		assert.Equal(t, "Mango", items[0].Name)
	})

	t.Run("upstream error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := loadCatalog(context.Background(), srv.URL, nil)
		assert.ErrorContains(t, err, "502")
	})

	t.Run("no source", func(t *testing.T) {
		_, err := loadCatalog(context.Background(), "", nil)
		assert.Error(t, err)
	})
}
