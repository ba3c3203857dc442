package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v81"

	"storefront/internal/model"
	"storefront/internal/payment"
	"storefront/internal/repository"
)

// ErrWebhookRejected is returned for webhook payloads that fail verification.
var ErrWebhookRejected = errors.New("webhook rejected")

// Stripe event types the checkout service reacts to.
const (
	eventSessionCompleted      = "checkout.session.completed"
	eventAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	eventAsyncPaymentFailed    = "checkout.session.async_payment_failed"
	eventSessionExpired        = "checkout.session.expired"
)

// WebhookResult reports how a webhook delivery was handled.
type WebhookResult struct {
	Duplicate bool
}

// CheckoutService handles checkout operations.
type CheckoutService interface {
	CreateSession(ctx context.Context, items []model.CartItem) (string, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (WebhookResult, error)
}

type checkoutService struct {
	gateway   payment.Gateway
	sessions  repository.CheckoutRepository
	events    repository.WebhookEventRepository
	validator *CartValidator
	opts      payment.SessionOptions
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	gateway payment.Gateway,
	sessions repository.CheckoutRepository,
	events repository.WebhookEventRepository,
	opts payment.SessionOptions,
) CheckoutService {
	return &checkoutService{
		gateway:   gateway,
		sessions:  sessions,
		events:    events,
		validator: NewCartValidator(),
		opts:      opts,
	}
}

// CreateSession creates a Stripe Checkout Session for the cart and returns its ID.
// Processor errors are returned wrapped so payment.ErrorStatus can read them.
func (s *checkoutService) CreateSession(ctx context.Context, items []model.CartItem) (string, error) {
	if err := s.validator.ValidateCart(items); err != nil {
		return "", err
	}

	params := payment.BuildCheckoutParams(items, s.opts)
	sess, err := s.gateway.CreateCheckoutSession(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	amount := sess.AmountTotal
	if amount == 0 {
		amount = payment.CartTotal(items)
	}
	record := &model.CheckoutSession{
		StripeSessionID: sess.ID,
		Currency:        s.opts.Currency,
		AmountTotal:     amount,
		ItemCount:       len(items),
		Status:          model.CheckoutStatusPending,
	}
	if err := s.sessions.Create(ctx, record); err != nil {
		logrus.WithError(err).WithField("stripe_session_id", sess.ID).Warn("failed to record checkout session")
	}

	return sess.ID, nil
}

// HandleWebhook verifies a Stripe event and applies it to the recorded session.
// Events already seen are acknowledged without being applied again.
func (s *checkoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) (WebhookResult, error) {
	event, err := s.gateway.ConstructEvent(payload, signature)
	if err != nil {
		return WebhookResult{}, fmt.Errorf("%w: %v", ErrWebhookRejected, err)
	}

	seen, err := s.events.Exists(ctx, event.ID)
	if err != nil {
		return WebhookResult{}, fmt.Errorf("check webhook event: %w", err)
	}
	if seen {
		return WebhookResult{Duplicate: true}, nil
	}

	sessionID, status, ok, err := sessionStatusFromEvent(event)
	if err != nil {
		return WebhookResult{}, fmt.Errorf("%w: %v", ErrWebhookRejected, err)
	}
	if ok {
		err := s.sessions.UpdateStatus(ctx, sessionID, status)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			logrus.WithField("stripe_session_id", sessionID).Warn("webhook for unknown checkout session")
		case err != nil:
			return WebhookResult{}, fmt.Errorf("update checkout session: %w", err)
		}
	}

	record := &model.WebhookEvent{
		ID:              event.ID,
		Type:            string(event.Type),
		StripeSessionID: sessionID,
	}
	if err := s.events.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return WebhookResult{Duplicate: true}, nil
		}
		return WebhookResult{}, fmt.Errorf("record webhook event: %w", err)
	}
	return WebhookResult{}, nil
}

// sessionStatusFromEvent reports the session and its new status for checkout
// session events. ok is false for event types that do not change a session.
func sessionStatusFromEvent(event stripe.Event) (sessionID string, status model.CheckoutStatus, ok bool, err error) {
	switch string(event.Type) {
	case eventSessionCompleted, eventAsyncPaymentSucceeded, eventAsyncPaymentFailed, eventSessionExpired:
	default:
		return "", "", false, nil
	}

	if event.Data == nil {
		return "", "", false, errors.New("event has no data")
	}
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return "", "", false, fmt.Errorf("decode checkout session: %w", err)
	}

	switch string(event.Type) {
	case eventSessionCompleted, eventAsyncPaymentSucceeded:
		status = model.CheckoutStatusUnpaid
		if sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
			status = model.CheckoutStatusPaid
		}
	case eventAsyncPaymentFailed:
		status = model.CheckoutStatusUnpaid
	case eventSessionExpired:
		status = model.CheckoutStatusExpired
	}
	return sess.ID, status, true, nil
}
