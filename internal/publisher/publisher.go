package publisher

import (
	"context"
	"time"
)

type OrderItemEvent struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type OrderCreatedEvent struct {
	EventID   string           `json:"event_id"`
	OrderID   string           `json:"order_id"`
	UserID    string           `json:"user_id"`
	Total     float64          `json:"total"`
	Items     []OrderItemEvent `json:"items"`
	CreatedAt time.Time        `json:"created_at"`
}

// OrderEventPublisher announces order lifecycle events to downstream
// consumers. Publishing is best effort; order creation never fails on it.
type OrderEventPublisher interface {
	OrderCreated(ctx context.Context, event OrderCreatedEvent) error
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) OrderCreated(context.Context, OrderCreatedEvent) error { return nil }
