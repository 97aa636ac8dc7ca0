package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fjod/go_shop/internal/cache"
	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/repository"
)

type mockCache struct {
	m        sync.RWMutex
	products map[string]*domain.Product
	err      error
	sets     int
}

func newMockCache() *mockCache {
	return &mockCache{products: make(map[string]*domain.Product)}
}

func (m *mockCache) Get(_ context.Context, id string) (*domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return p, nil
}

func (m *mockCache) Set(_ context.Context, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.products[product.ID.Hex()] = product
	m.sets++
	return nil
}

func (m *mockCache) Delete(_ context.Context, id string) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.products, id)
	return nil
}

func (m *mockCache) setCount() int {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.sets
}

// countingProductRepository tracks GetByID calls on top of the map-backed mock.
type countingProductRepository struct {
	*mockProductRepository
	m    sync.Mutex
	gets int
}

func (c *countingProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	c.m.Lock()
	c.gets++
	c.m.Unlock()
	return c.mockProductRepository.GetByID(ctx, id)
}

func (c *countingProductRepository) getCount() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.gets
}

func TestCreateProduct_RoundTrip(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewProductService(repo, newMockCache())

	ctx := context.Background()
	product := &domain.Product{
		Name:  "Shirt",
		Price: 100.0,
		Sizes: []domain.Size{{Size: "M", Quantity: 5}},
	}

	id, err := svc.Create(ctx, product)
	require.NoError(t, err)
	require.NotEqual(t, primitive.NilObjectID, id)

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Shirt", stored.Name)
	assert.Equal(t, 100.0, stored.Price)
	assert.Equal(t, []domain.Size{{Size: "M", Quantity: 5}}, stored.Sizes)
}

func TestListProducts_EmptyIsNotAnError(t *testing.T) {
	svc := NewProductService(newMockProductRepository(), newMockCache())

	products, page, err := svc.List(context.Background(), domain.ProductFilter{Limit: 10})

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
	assert.Equal(t, 0, page.Limit)
	assert.Equal(t, "0", page.Next)
	assert.Equal(t, "-1", page.Previous)
}

func TestGetProduct_InvalidID(t *testing.T) {
	repo := &countingProductRepository{mockProductRepository: newMockProductRepository()}
	svc := NewProductService(repo, newMockCache())

	_, err := svc.Get(context.Background(), "not-hex")

	assert.ErrorIs(t, err, domain.ErrInvalidID)
	assert.Equal(t, 0, repo.getCount(), "invalid ids must not reach the store")
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := NewProductService(newMockProductRepository(), newMockCache())

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())

	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestGetProduct_CacheMissFillsCache(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Shirt", Price: 10}
	repo := &countingProductRepository{mockProductRepository: newMockProductRepository(product)}
	c := newMockCache()
	svc := NewProductService(repo, c)

	got, err := svc.Get(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, product.Name, got.Name)
	assert.Equal(t, 1, repo.getCount())

	// cache fill is async
	require.Eventually(t, func() bool {
		return c.setCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGetProduct_CacheHitSkipsRepo(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Shirt", Price: 10}
	repo := &countingProductRepository{mockProductRepository: newMockProductRepository(product)}
	c := newMockCache()
	c.products[product.ID.Hex()] = &product
	svc := NewProductService(repo, c)

	got, err := svc.Get(context.Background(), product.ID.Hex())

	require.NoError(t, err)
	assert.Equal(t, product.Name, got.Name)
	assert.Equal(t, 0, repo.getCount())
}
