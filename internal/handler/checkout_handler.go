package handler

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/payment"
	"storefront/internal/service"
)

// CheckoutHandler handles Stripe checkout endpoints.
type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// WebhookResponse acknowledges a webhook delivery.
type WebhookResponse struct {
	Received  bool `json:"received"`
	Duplicate bool `json:"duplicate,omitempty"`
}

// CheckoutPayment godoc
// @Summary Create a Stripe Checkout Session
// @Description Returns the session id as a JSON string. Errors are JSON strings too.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body []model.CartItem true "Cart items"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /checkout-payment [post]
func (h *CheckoutHandler) CheckoutPayment(c echo.Context) error {
	var items []model.CartItem
	if err := c.Bind(&items); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrInvalidCart.Error()+": body must be an array of cart items")
	}

	sessionID, err := h.checkoutService.CreateSession(c.Request().Context(), items)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidCart) {
			return c.JSON(http.StatusBadRequest, err.Error())
		}
		status, msg := payment.ErrorStatus(err)
		logrus.WithError(err).WithField("status", status).Error("checkout session failed")
		return c.JSON(status, msg)
	}

	return c.JSON(http.StatusOK, sessionID)
}

// StripeWebhook godoc
// @Summary Receive Stripe events
// @Tags checkout
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} WebhookResponse
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /webhook/stripe [post]
func (h *CheckoutHandler) StripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.Response{Message: "Invalid request body"})
	}

	result, err := h.checkoutService.HandleWebhook(c.Request().Context(), payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		if stderrors.Is(err, service.ErrWebhookRejected) {
			logrus.WithError(err).Warn("stripe webhook rejected")
			return echo.NewHTTPError(http.StatusBadRequest, errors.Response{Message: err.Error()})
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, WebhookResponse{Received: true, Duplicate: result.Duplicate})
}
