package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"storefront/internal/auth"
	"storefront/internal/errors"
	"storefront/internal/service"
)

// UserHandler serves the signed-in user's profile.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.Response{Message: "invalid token"})
	}
	claims, ok := auth.ClaimsFromToken(token)
	if !ok || claims.UserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.Response{Message: "invalid token"})
	}

	profile, err := h.svc.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, errors.Response{Message: errors.MsgUserNotFound})
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}
