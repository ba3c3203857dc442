package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a signup form. Fields are freeform.
type SignupRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Image           string `json:"image"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Message string        `json:"message"`
	Alert   bool          `json:"alert"`
	Data    model.Profile `json:"data"`
	Token   string        `json:"token"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.Response{Message: "Invalid request body"})
	}

	_, err := h.authService.Signup(c.Request().Context(), service.SignupInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Image:           req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, errors.Response{
		Message: "Successfully signed up",
		Alert:   true,
	})
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.Response{Message: "Invalid request body"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Alert:   true,
		Data:    result.User,
		Token:   result.Token,
	})
}

// respondError maps a service error onto the {message, alert} body. Unmapped
// errors are logged and hidden behind the generic message.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		logrus.WithError(err).
			WithField("path", c.Path()).
			WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Error("request failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToResponse())
}
