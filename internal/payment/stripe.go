// Package payment talks to Stripe: checkout session creation and webhook
// signature verification.
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v81"
	checkoutsession "github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
)

// ErrWebhookNotConfigured is returned when no webhook signing secret is set.
var ErrWebhookNotConfigured = errors.New("webhook signing key not configured")

// Gateway is the payment-processor capability used by the checkout service.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	ConstructEvent(payload []byte, signature string) (stripe.Event, error)
}

type stripeGateway struct {
	sessions      *checkoutsession.Client
	webhookSecret string
}

// NewStripeGateway creates a gateway bound to one secret key. It does not touch
// the package-level stripe.Key.
func NewStripeGateway(secretKey, webhookSecret string) Gateway {
	return &stripeGateway{
		sessions: &checkoutsession.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: secretKey,
		},
		webhookSecret: webhookSecret,
	}
}

// CreateCheckoutSession creates a Stripe Checkout Session.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx
	return g.sessions.New(params)
}

// ConstructEvent verifies a webhook signature and decodes the event.
func (g *stripeGateway) ConstructEvent(payload []byte, signature string) (stripe.Event, error) {
	if g.webhookSecret == "" {
		return stripe.Event{}, ErrWebhookNotConfigured
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return stripe.Event{}, fmt.Errorf("failed to verify webhook: %w", err)
	}
	return event, nil
}

// ErrorStatus extracts the HTTP status and message Stripe reported. Errors that
// did not come from the API map to 500 with their own text.
func ErrorStatus(err error) (int, string) {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		status := stripeErr.HTTPStatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return status, stripeErr.Msg
	}
	return http.StatusInternalServerError, err.Error()
}
