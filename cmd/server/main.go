package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "storefront/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"storefront/internal/auth"
	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/handler"
	"storefront/internal/media"
	"storefront/internal/payment"
	"storefront/internal/router"
	"storefront/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Storefront API
// @version 1.0
// @description Storefront backend with accounts, a product catalog, image upload and Stripe checkout.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := db.OpenStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database init")
	}
	defer closeStore()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("redis unavailable, serving without cache")
	}

	uploader, err := media.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("media init")
	}

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	if cfg.StripeWebhookSecret == "" {
		logrus.Warn("STRIPE_WEBHOOK_SECRET not set, webhook deliveries will be rejected")
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(store.Users, jwtService)
	userService := service.NewUserService(store.Users, cacheClient)
	productService := service.NewProductService(store.Products, uploader, cacheClient, cfg.ProductImageFolder)
	imageService := service.NewImageService(store.Images, uploader, cfg.ImageUploadFolder)
	checkoutService := service.NewCheckoutService(gateway, store.Checkouts, store.WebhookEvents, payment.SessionOptions{
		Currency:     cfg.StripeCurrency,
		ShippingRate: cfg.StripeShippingRate,
		FrontendURL:  cfg.FrontendURL,
	})

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 30 * time.Second
	e.Server.WriteTimeout = 30 * time.Second
	e.Server.IdleTimeout = 120 * time.Second

	// Register routes
	router.Register(e, jwtService, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		User:     handler.NewUserHandler(userService),
		Product:  handler.NewProductHandler(productService),
		Image:    handler.NewImageHandler(imageService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
	})

	logrus.Infof("Swagger documentation available at: %s", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server start")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server shutdown")
	}
}

func setupLogging(cfg *config.Config) {
	if strings.EqualFold(cfg.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithField("level", cfg.LogLevel).Warn("unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimRight(host, "/") + "/swagger/index.html"
}
