package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fjod/go_shop/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ProductRepository defines the interface for product data operations.
// Consumers define this interface, not the MongoDB implementation.
type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductSummary, error)
}

// OrderRepository defines the interface for order data operations.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	ListViewsForUser(ctx context.Context, userID string, limit, offset int64) ([]domain.OrderView, error)
}
