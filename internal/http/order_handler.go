package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/service"
)

// OrderService is what the handler needs from the order side.
type OrderService interface {
	Create(ctx context.Context, userID string, items []service.NewOrderItem) (primitive.ObjectID, error)
	ListForUser(ctx context.Context, userID string, limit, offset int64) ([]domain.OrderView, domain.Page, error)
}

type OrderHandler struct {
	service OrderService
	timeout time.Duration
}

func NewOrderHandler(service OrderService, timeout time.Duration) *OrderHandler {
	return &OrderHandler{
		service: service,
		timeout: timeout,
	}
}

type OrderItemDTO struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type CreateOrderRequestDTO struct {
	UserID string         `json:"userId"`
	Items  []OrderItemDTO `json:"items"`
}

// POST /orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Validate request
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "invalid_user_id", "userId must not be empty")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_order", "order must contain at least one item")
		return
	}
	items := make([]service.NewOrderItem, len(req.Items))
	for i, item := range req.Items {
		if item.Qty <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_quantity", "qty must be positive")
			return
		}
		items[i] = service.NewOrderItem{ProductID: item.ProductID, Qty: item.Qty}
	}

	id, err := h.service.Create(ctx, req.UserID, items)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CreatedResponseDTO{ID: id.Hex()})
}

// GET /orders/{userId}?limit=&offset=
func (h *OrderHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := chi.URLParam(r, "userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "invalid_user_id", "userId must not be empty")
		return
	}

	limit, offset, err := parsePagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_pagination", "limit must be in [1,100], offset must be non-negative")
		return
	}

	views, page, err := h.service.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ListResponse{Data: views, Page: page})
}
