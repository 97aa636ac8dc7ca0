package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fjod/go_shop/internal/domain"
)

// ProductService is what the handler needs from the product side.
type ProductService interface {
	Create(ctx context.Context, product *domain.Product) (primitive.ObjectID, error)
	List(ctx context.Context, f domain.ProductFilter) ([]domain.ProductSummary, domain.Page, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type ProductHandler struct {
	service ProductService
	timeout time.Duration
}

func NewProductHandler(service ProductService, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		service: service,
		timeout: timeout,
	}
}

type SizeDTO struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type CreateProductRequestDTO struct {
	Name  string    `json:"name"`
	Price float64   `json:"price"`
	Sizes []SizeDTO `json:"sizes"`
}

type CreatedResponseDTO struct {
	ID string `json:"id"`
}

// POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CreateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Validate request
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "name must not be empty")
		return
	}
	if req.Price < 0 {
		respondError(w, http.StatusBadRequest, "invalid_price", "price must not be negative")
		return
	}
	sizes := make([]domain.Size, len(req.Sizes))
	for i, s := range req.Sizes {
		if s.Size == "" {
			respondError(w, http.StatusBadRequest, "invalid_size", "size must not be empty")
			return
		}
		if s.Quantity < 0 {
			respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not be negative")
			return
		}
		sizes[i] = domain.Size{Size: s.Size, Quantity: s.Quantity}
	}

	id, err := h.service.Create(ctx, &domain.Product{
		Name:  req.Name,
		Price: req.Price,
		Sizes: sizes,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CreatedResponseDTO{ID: id.Hex()})
}

// GET /products?name=&size=&limit=&offset=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	limit, offset, err := parsePagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_pagination", "limit must be in [1,100], offset must be non-negative")
		return
	}

	filter := domain.ProductFilter{
		Name:   r.URL.Query().Get("name"),
		Size:   r.URL.Query().Get("size"),
		Limit:  limit,
		Offset: offset,
	}

	products, page, err := h.service.List(ctx, filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ListResponse{Data: products, Page: page})
}

// GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := chi.URLParam(r, "id")

	product, err := h.service.Get(ctx, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
