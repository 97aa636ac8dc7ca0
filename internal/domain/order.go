package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Qty       int                `bson:"qty" json:"qty"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Total     float64            `bson:"total" json:"total"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type ProductDetails struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type OrderViewItem struct {
	Qty            int            `bson:"qty" json:"qty"`
	ProductDetails ProductDetails `bson:"productDetails" json:"productDetails"`
}

// OrderView is the read-time shape of an order with each line item's
// product reference resolved to a name snapshot. Never persisted.
type OrderView struct {
	ID    string          `bson:"id" json:"id"`
	Total float64         `bson:"total" json:"total"`
	Items []OrderViewItem `bson:"items" json:"items"`
}
