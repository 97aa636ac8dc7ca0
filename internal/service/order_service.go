package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/publisher"
	"github.com/fjod/go_shop/internal/repository"
)

// NewOrderItem is an unparsed line item from an order creation request.
type NewOrderItem struct {
	ProductID string
	Qty       int
}

type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	events   publisher.OrderEventPublisher
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, events publisher.OrderEventPublisher) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		events:   events,
	}
}

// Create validates every referenced product id, prices the order at current
// product prices and persists it. Any malformed or unknown product id fails
// the whole order; nothing partial is stored.
func (s *OrderService) Create(ctx context.Context, userID string, items []NewOrderItem) (primitive.ObjectID, error) {
	if len(items) == 0 {
		return primitive.NilObjectID, ErrEmptyOrder
	}

	ids := make([]primitive.ObjectID, len(items))
	for i, item := range items {
		oid, err := domain.ParseID(item.ProductID)
		if err != nil {
			return primitive.NilObjectID, ErrInvalidProductID
		}
		ids[i] = oid
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		log.Printf("repo find products error: %v \n", err)
		return primitive.NilObjectID, err
	}

	prices := make(map[primitive.ObjectID]float64, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	for _, id := range ids {
		if _, ok := prices[id]; !ok {
			return primitive.NilObjectID, ErrProductNotFound
		}
	}

	var total float64
	orderItems := make([]domain.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = domain.OrderItem{ProductID: ids[i], Qty: item.Qty}
		total += prices[ids[i]] * float64(item.Qty)
	}

	order := &domain.Order{
		UserID:    userID,
		Items:     orderItems,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}

	orderID, err := s.orders.Insert(ctx, order)
	if err != nil {
		log.Printf("repo insert order error: %v \n", err)
		return primitive.NilObjectID, err
	}

	s.publishCreated(orderID, order)

	return orderID, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID string, limit, offset int64) ([]domain.OrderView, domain.Page, error) {
	views, err := s.orders.ListViewsForUser(ctx, userID, limit, offset)
	if err != nil {
		log.Printf("repo list order views error: %v \n", err)
		return nil, domain.Page{}, err
	}
	if views == nil {
		views = []domain.OrderView{}
	}

	return views, domain.NewPage(len(views), limit, offset), nil
}

// publishCreated announces the new order in the background. A failed
// publish is logged, never surfaced to the caller.
func (s *OrderService) publishCreated(orderID primitive.ObjectID, order *domain.Order) {
	items := make([]publisher.OrderItemEvent, len(order.Items))
	for i, item := range order.Items {
		items[i] = publisher.OrderItemEvent{
			ProductID: item.ProductID.Hex(),
			Qty:       item.Qty,
		}
	}

	event := publisher.OrderCreatedEvent{
		EventID:   uuid.New().String(),
		OrderID:   orderID.Hex(),
		UserID:    order.UserID,
		Total:     order.Total,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.events.OrderCreated(ctx, event); err != nil {
			log.Printf("publish order created error: %v \n", err)
		}
	}()
}
