package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// CheckoutRepository defines checkout session persistence operations.
type CheckoutRepository interface {
	Create(ctx context.Context, session *model.CheckoutSession) error
	UpdateStatus(ctx context.Context, stripeSessionID string, status model.CheckoutStatus) error
}

type checkoutRepository struct {
	db *gorm.DB
}

// NewCheckoutRepository creates a new checkout session repository.
func NewCheckoutRepository(db *gorm.DB) CheckoutRepository {
	return &checkoutRepository{db: db}
}

// Create creates a new checkout session record.
func (r *checkoutRepository) Create(ctx context.Context, session *model.CheckoutSession) error {
	return translate(r.db.WithContext(ctx).Create(session).Error)
}

// UpdateStatus sets the status of a session. A missing session yields ErrNotFound.
func (r *checkoutRepository) UpdateStatus(ctx context.Context, stripeSessionID string, status model.CheckoutStatus) error {
	res := r.db.WithContext(ctx).Model(&model.CheckoutSession{}).
		Where("stripe_session_id = ?", stripeSessionID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// WebhookEventRepository records processed webhook events.
type WebhookEventRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
	// Create fails with ErrDuplicate when the event was already recorded.
	Create(ctx context.Context, event *model.WebhookEvent) error
}

type webhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository creates a new webhook event repository.
func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepository {
	return &webhookEventRepository{db: db}
}

// Exists reports whether an event ID was already recorded.
func (r *webhookEventRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.WebhookEvent{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a webhook event.
func (r *webhookEventRepository) Create(ctx context.Context, event *model.WebhookEvent) error {
	return translate(r.db.WithContext(ctx).Create(event).Error)
}
