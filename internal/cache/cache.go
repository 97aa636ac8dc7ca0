package cache

import (
	"context"
	"errors"

	"github.com/fjod/go_shop/internal/domain"
)

// ProductCache holds resolved products by their hex id. Products are
// immutable after creation, so entries only ever expire.
type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

var ErrCacheMiss = errors.New("cache miss")
