package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/internal/model"
)

// newDryRunDB returns a gorm handle that builds SQL without a server and
// records every query statement it would have sent.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=storefront dbname=storefront sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	var statements []string
	err = db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
	})
	require.NoError(t, err)
	return db, &statements
}

func TestProductRepository_Queries(t *testing.T) {
	tests := []struct {
		name string
		run  func(ProductRepository) error
		want string
	}{
		{
			name: "category projection",
			run: func(r ProductRepository) error {
				_, err := r.ListCategories(context.Background())
				return err
			},
			want: `SELECT "id","category" FROM "products" ORDER BY created_at`,
		},
		{
			name: "full listing",
			run: func(r ProductRepository) error {
				_, err := r.List(context.Background())
				return err
			},
			want: `SELECT * FROM "products" ORDER BY created_at`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, statements := newDryRunDB(t)

			require.NoError(t, tt.run(NewProductRepository(db)))

			require.Len(t, *statements, 1)
			assert.Equal(t, tt.want, (*statements)[0])
		})
	}
}

func TestMongoProductRepository_ListCategories(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("projects id and category only", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "storefront.products", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "p1"}, {Key: "category", Value: "fruits"}},
			bson.D{{Key: "_id", Value: "p2"}, {Key: "category", Value: "vegetables"}},
		))

		got, err := NewMongoProductRepository(mt.DB).ListCategories(context.Background())

		require.NoError(mt, err)
		assert.Equal(mt, []model.ProductCategory{
			{ID: "p1", Category: "fruits"},
			{ID: "p2", Category: "vegetables"},
		}, got)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		projection, err := started.Command.LookupErr("projection")
		require.NoError(mt, err)
		fields, err := projection.Document().Elements()
		require.NoError(mt, err)
		require.Len(mt, fields, 1)
		assert.Equal(mt, "category", fields[0].Key())
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "storefront.products", mtest.FirstBatch))

		got, err := NewMongoProductRepository(mt.DB).ListCategories(context.Background())

		require.NoError(mt, err)
		assert.Empty(mt, got)
		assert.NotNil(mt, got)
	})
}
