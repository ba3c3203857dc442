package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/model"
)

// Collection names are the pluralised model names existing deployments use.
const (
	usersCollection            = "users"
	productsCollection         = "products"
	imagesCollection           = "images"
	checkoutSessionsCollection = "checkoutsessions"
	webhookEventsCollection    = "webhookevents"
)

// EnsureMongoIndexes creates the unique indexes the repositories rely on.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		usersCollection: {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		checkoutSessionsCollection: {
			Keys:    bson.D{{Key: "stripeSessionId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	for coll, index := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}
	return nil
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository builds a MongoDB-backed user repository.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(usersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	user.EnsureID()
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	_, err := r.coll.InsertOne(ctx, user)
	return translate(err)
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

type mongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository builds a MongoDB-backed product repository.
func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{coll: db.Collection(productsCollection)}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *model.Product) error {
	product.EnsureID()
	now := time.Now().UTC()
	product.CreatedAt, product.UpdatedAt = now, now
	_, err := r.coll.InsertOne(ctx, product)
	return translate(err)
}

func (r *mongoProductRepository) Update(ctx context.Context, product *model.Product) error {
	product.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *mongoProductRepository) List(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	products := []model.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoProductRepository) ListCategories(ctx context.Context) ([]model.ProductCategory, error) {
	opts := options.Find().
		SetProjection(bson.M{"category": 1}).
		SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	categories := []model.ProductCategory{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

type mongoImageRepository struct {
	coll *mongo.Collection
}

// NewMongoImageRepository builds a MongoDB-backed image repository.
func NewMongoImageRepository(db *mongo.Database) ImageRepository {
	return &mongoImageRepository{coll: db.Collection(imagesCollection)}
}

func (r *mongoImageRepository) Create(ctx context.Context, image *model.Image) error {
	image.EnsureID()
	image.CreatedAt = time.Now().UTC()
	_, err := r.coll.InsertOne(ctx, image)
	return translate(err)
}

type mongoCheckoutRepository struct {
	coll *mongo.Collection
}

// NewMongoCheckoutRepository builds a MongoDB-backed checkout session repository.
func NewMongoCheckoutRepository(db *mongo.Database) CheckoutRepository {
	return &mongoCheckoutRepository{coll: db.Collection(checkoutSessionsCollection)}
}

func (r *mongoCheckoutRepository) Create(ctx context.Context, session *model.CheckoutSession) error {
	session.EnsureID()
	now := time.Now().UTC()
	session.CreatedAt, session.UpdatedAt = now, now
	_, err := r.coll.InsertOne(ctx, session)
	return translate(err)
}

func (r *mongoCheckoutRepository) UpdateStatus(ctx context.Context, stripeSessionID string, status model.CheckoutStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"stripeSessionId": stripeSessionID}, update)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoWebhookEventRepository struct {
	coll *mongo.Collection
}

// NewMongoWebhookEventRepository builds a MongoDB-backed webhook event log.
func NewMongoWebhookEventRepository(db *mongo.Database) WebhookEventRepository {
	return &mongoWebhookEventRepository{coll: db.Collection(webhookEventsCollection)}
}

func (r *mongoWebhookEventRepository) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoWebhookEventRepository) Create(ctx context.Context, event *model.WebhookEvent) error {
	event.CreatedAt = time.Now().UTC()
	_, err := r.coll.InsertOne(ctx, event)
	return translate(err)
}
