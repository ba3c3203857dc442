package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "MONGODB_URL", "IMAGE_UPLOAD_FOLDER", "STRIPE_CURRENCY", "STRIPE_SHIPPING_RATE", "MEDIA_BACKEND", "REDIS_DB"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, MediaCloudinary, cfg.MediaBackend)
	assert.Equal(t, "productImage", cfg.ProductImageFolder)
	assert.Empty(t, cfg.ImageUploadFolder)
	assert.Equal(t, "vnd", cfg.StripeCurrency)
	assert.Equal(t, "shr_1NvgMsH19cOYiAl7fqAR9RT8", cfg.StripeShippingRate)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", DriverMongo)
	t.Setenv("REDIS_DB", "3")
	t.Setenv("FRONTEND_URL", "https://shop.example.com")
	t.Setenv("IMAGE_UPLOAD_FOLDER", "uploads")
	t.Setenv("RESET_DB", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, DriverMongo, cfg.DBDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "https://shop.example.com", cfg.FrontendURL)
	assert.Equal(t, "uploads", cfg.ImageUploadFolder)
	assert.True(t, cfg.ResetDB)
}

func TestLoad_DBDriverDefault(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		mongoURL string
		want     string
	}{
		{"nothing set", "", "", DriverMySQL},
		{"mongo url only", "", "mongodb+srv://cluster.example.net/shop", DriverMongo},
		{"explicit driver wins", DriverPostgres, "mongodb://localhost:27017", DriverPostgres},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_DRIVER", tt.driver)
			t.Setenv("MONGODB_URL", tt.mongoURL)

			cfg := Load()

			assert.Equal(t, tt.want, cfg.DBDriver)
			if tt.mongoURL != "" {
				assert.Equal(t, tt.mongoURL, cfg.MongoURL)
			}
		})
	}
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	assert.Equal(t, 7, getEnvInt("REDIS_DB", 7))
}
