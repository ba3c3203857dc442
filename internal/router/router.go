package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/auth"
	"storefront/internal/errors"
	"storefront/internal/handler"
)

// bodyLimit matches the largest base64 image the storefront client sends.
const bodyLimit = "10M"

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Product  *handler.ProductHandler
	Image    *handler.ImageHandler
	Checkout *handler.CheckoutHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, jwtService *auth.JWTService, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(bodyLimit))

	// Add validator
	e.Validator = NewValidator()

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Server is running...")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/signup", h.Auth.Signup)
	e.POST("/login", h.Auth.Login)
	e.POST("/uploadProduct", h.Product.UploadProduct)
	e.GET("/products", h.Product.Products)
	e.GET("/productNameList", h.Product.ProductNameList)
	e.POST("/upload-image", h.Image.UploadImage)
	e.POST("/checkout-payment", h.Checkout.CheckoutPayment)
	e.POST("/webhook/stripe", h.Checkout.StripeWebhook)

	// Secured routes (require JWT authentication)
	e.GET("/me", h.User.Me, echojwt.WithConfig(echojwt.Config{
		SigningKey:  jwtService.Secret(),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.Response{Message: "invalid or missing token"})
		},
	}))
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logrus.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns the validator installed on the echo instance.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
