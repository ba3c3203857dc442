package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Store bundles the repositories of one storage backend.
type Store struct {
	Users         UserRepository
	Products      ProductRepository
	Images        ImageRepository
	Checkouts     CheckoutRepository
	WebhookEvents WebhookEventRepository
}

// NewGormStore wires the GORM-backed repositories.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:         NewUserRepository(db),
		Products:      NewProductRepository(db),
		Images:        NewImageRepository(db),
		Checkouts:     NewCheckoutRepository(db),
		WebhookEvents: NewWebhookEventRepository(db),
	}
}

// NewMongoStore wires the MongoDB-backed repositories.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:         NewMongoUserRepository(db),
		Products:      NewMongoProductRepository(db),
		Images:        NewMongoImageRepository(db),
		Checkouts:     NewMongoCheckoutRepository(db),
		WebhookEvents: NewMongoWebhookEventRepository(db),
	}
}
