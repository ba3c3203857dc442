package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMongo    = "mongodb"

	MediaCloudinary = "cloudinary"
	MediaS3         = "s3"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	DBDriver      string
	DatabaseDSN   string
	MongoURL      string
	MongoDatabase string
	ResetDB       bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret string

	MediaBackend       string
	CloudinaryName     string
	CloudinaryKey      string
	CloudinarySecret   string
	ProductImageFolder string
	ImageUploadFolder  string
	S3Bucket           string
	S3Region           string
	S3AccessKey        string
	S3SecretKey        string
	S3PublicURL        string

	StripeSecretKey     string
	StripeWebhookSecret string
	StripeCurrency      string
	StripeShippingRate  string
	FrontendURL         string

	LogLevel    string
	LogFormat   string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("PORT", "8080"),

		DBDriver:      getEnv("DB_DRIVER", defaultDBDriver()),
		DatabaseDSN:   getEnv("DATABASE_DSN", "user:password@tcp(localhost:3306)/storefront?charset=utf8mb4&parseTime=True&loc=Local"),
		MongoURL:      getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "storefront"),
		ResetDB:       os.Getenv("RESET_DB") == "true",

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		MediaBackend:       getEnv("MEDIA_BACKEND", MediaCloudinary),
		CloudinaryName:     os.Getenv("CLOUDINARY_NAME"),
		CloudinaryKey:      os.Getenv("CLOUDINARY_KEY"),
		CloudinarySecret:   os.Getenv("CLOUDINARY_KEY_SECRET"),
		ProductImageFolder: "productImage",
		ImageUploadFolder:  os.Getenv("IMAGE_UPLOAD_FOLDER"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
		S3Region:           getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:        os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:        os.Getenv("S3_SECRET_KEY"),
		S3PublicURL:        os.Getenv("S3_PUBLIC_URL"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripeCurrency:      getEnv("STRIPE_CURRENCY", "vnd"),
		StripeShippingRate:  getEnv("STRIPE_SHIPPING_RATE", "shr_1NvgMsH19cOYiAl7fqAR9RT8"),
		FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:3000"),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

// defaultDBDriver picks MongoDB for deployments that only set MONGODB_URL.
func defaultDBDriver() string {
	if os.Getenv("MONGODB_URL") != "" {
		return DriverMongo
	}
	return DriverMySQL
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
