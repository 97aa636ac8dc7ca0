package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fjod/go_shop/internal/domain"
)

func setupTestDB(t *testing.T) (*mongo.Database, func()) {
	ctx := context.Background()

	// Start MongoDB container
	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)

	// Get connection string
	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	// Connect to MongoDB
	db, err := ConnectMongoDB(ctx, uri, "testdb")
	require.NoError(t, err)

	// Create indexes
	err = EnsureIndexes(ctx, db)
	require.NoError(t, err)

	cleanup := func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return db, cleanup
}

func TestProductInsert_RoundTrip(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMongoProductRepository(db)

	ctx := context.Background()
	id, err := repo.Insert(ctx, &domain.Product{
		Name:  "Shirt",
		Price: 100.0,
		Sizes: []domain.Size{{Size: "M", Quantity: 5}},
	})
	require.NoError(t, err)

	product, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, product.ID)
	assert.Equal(t, "Shirt", product.Name)
	assert.Equal(t, 100.0, product.Price)
	assert.Equal(t, []domain.Size{{Size: "M", Quantity: 5}}, product.Sizes)
}

func TestProductGetByID_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMongoProductRepository(db)

	_, err := repo.GetByID(context.Background(), primitive.NewObjectID())

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductFindByIDs_ReturnsOnlyExisting(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMongoProductRepository(db)

	ctx := context.Background()
	id1, err := repo.Insert(ctx, &domain.Product{Name: "Shirt", Price: 10})
	require.NoError(t, err)
	id2, err := repo.Insert(ctx, &domain.Product{Name: "Shoes", Price: 20})
	require.NoError(t, err)

	products, err := repo.FindByIDs(ctx, []primitive.ObjectID{id1, id2, primitive.NewObjectID()})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductList_NameFilterIsCaseInsensitiveSubstring(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMongoProductRepository(db)

	ctx := context.Background()
	for _, p := range []domain.Product{
		{Name: "Blue SHIRT", Price: 10, Sizes: []domain.Size{{Size: "M", Quantity: 1}}},
		{Name: "plain shirt", Price: 12, Sizes: []domain.Size{{Size: "L", Quantity: 2}}},
		{Name: "Shoes", Price: 50, Sizes: []domain.Size{{Size: "M", Quantity: 3}}},
	} {
		product := p
		_, err := repo.Insert(ctx, &product)
		require.NoError(t, err)
	}

	products, err := repo.List(ctx, domain.ProductFilter{Name: "shirt", Limit: 10})
	require.NoError(t, err)

	require.Len(t, products, 2)
	for _, p := range products {
		assert.Contains(t, []string{"Blue SHIRT", "plain shirt"}, p.Name)
	}
}

func TestProductList_SizeFilter(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMongoProductRepository(db)

	ctx := context.Background()
	for _, p := range []domain.Product{
		{Name: "Blue Shirt", Price: 10, Sizes: []domain.Size{{Size: "M", Quantity: 1}}},
		{Name: "Red Shirt", Price: 12, Sizes: []domain.Size{{Size: "L", Quantity: 2}}},
	} {
		product := p
		_, err := repo.Insert(ctx, &product)
		require.NoError(t, err)
	}

	products, err := repo.List(ctx, domain.ProductFilter{Name: "shirt", Size: "M", Limit: 10})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Blue Shirt", products[0].Name)
}

func TestProductList_Pagination(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMongoProductRepository(db)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := repo.Insert(ctx, &domain.Product{Name: "Shirt", Price: float64(i)})
		require.NoError(t, err)
	}

	first, err := repo.List(ctx, domain.ProductFilter{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, first, 2)

	last, err := repo.List(ctx, domain.ProductFilter{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, last, 1)
}
