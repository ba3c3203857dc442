package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckoutStatus represents the payment state of a checkout session.
type CheckoutStatus string

const (
	CheckoutStatusPending CheckoutStatus = "pending"
	CheckoutStatusPaid    CheckoutStatus = "paid"
	CheckoutStatusUnpaid  CheckoutStatus = "unpaid"
	CheckoutStatusExpired CheckoutStatus = "expired"
)

// CheckoutSession mirrors a Stripe Checkout Session created by the storefront.
type CheckoutSession struct {
	ID              string         `json:"_id" bson:"_id" gorm:"type:char(36);primaryKey"`
	StripeSessionID string         `json:"stripeSessionId" bson:"stripeSessionId" gorm:"uniqueIndex;size:255;not null"`
	Currency        string         `json:"currency" bson:"currency" gorm:"size:8;not null"`
	AmountTotal     int64          `json:"amountTotal" bson:"amountTotal" gorm:"not null"`
	ItemCount       int            `json:"itemCount" bson:"itemCount" gorm:"not null"`
	Status          CheckoutStatus `json:"status" bson:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (s *CheckoutSession) BeforeCreate(tx *gorm.DB) error {
	s.EnsureID()
	return nil
}

// EnsureID assigns a new UUID when the record has none.
func (s *CheckoutSession) EnsureID() {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
}

// WebhookEvent records a processed Stripe event. The Stripe event ID is the key,
// so a redelivered event fails to insert and is not applied twice.
type WebhookEvent struct {
	ID              string    `json:"_id" bson:"_id" gorm:"size:255;primaryKey"`
	Type            string    `json:"type" bson:"type" gorm:"size:128;not null;index"`
	StripeSessionID string    `json:"stripeSessionId,omitempty" bson:"stripeSessionId,omitempty" gorm:"size:255;index"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}
