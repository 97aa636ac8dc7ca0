package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Size struct {
	Size     string `bson:"size" json:"size"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

type Product struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Sizes []Size             `bson:"sizes" json:"sizes"`
}

// ProductSummary is the listing shape; sizes are projected away by the store.
type ProductSummary struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
}

// ProductFilter narrows a product listing. Name matches as a
// case-insensitive substring, Size as exact equality against any
// size entry. Zero values mean "no filter".
type ProductFilter struct {
	Name   string
	Size   string
	Limit  int64
	Offset int64
}
