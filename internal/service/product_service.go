package service

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/singleflight"

	"github.com/fjod/go_shop/internal/cache"
	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/repository"
)

type ProductService struct {
	repo  repository.ProductRepository
	cache cache.ProductCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewProductService(repo repository.ProductRepository, cache cache.ProductCache) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: cache,
	}
}

func (s *ProductService) Create(ctx context.Context, product *domain.Product) (primitive.ObjectID, error) {
	id, err := s.repo.Insert(ctx, product)
	if err != nil {
		log.Printf("repo insert product error: %v \n", err)
		return primitive.NilObjectID, err
	}
	return id, nil
}

func (s *ProductService) List(ctx context.Context, f domain.ProductFilter) ([]domain.ProductSummary, domain.Page, error) {
	products, err := s.repo.List(ctx, f)
	if err != nil {
		log.Printf("repo list products error: %v \n", err)
		return nil, domain.Page{}, err
	}
	if products == nil {
		products = []domain.ProductSummary{}
	}

	return products, domain.NewPage(len(products), f.Limit, f.Offset), nil
}

// Get resolves a product by its hex id. Malformed ids are rejected before
// any store access. Products never change once created, so cached entries
// are always good until they expire.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}

	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {

		product, errGet := s.cache.Get(ctx, id)
		if errGet == nil {
			return product, nil // product is in cache
		}

		if !errors.Is(errGet, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v \n", errGet) // log cache error but continue
		}

		product, errGet = s.repo.GetByID(ctx, oid)
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), product)
			if errSet != nil {
				log.Printf("cache set error: %v \n", errSet)
			}
		}()

		return product, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Product), nil
}
