package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fjod/go_shop/internal/domain"
)

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

func (m *mongoOrderRepository) Insert(ctx context.Context, order *domain.Order) (primitive.ObjectID, error) {
	res, err := m.collection.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert order: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *mongoOrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	var order domain.Order

	filter := bson.M{"_id": id}
	err := m.collection.FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// ListViewsForUser runs the order-listing aggregation: the user's orders,
// newest first, paginated, with each line item's product reference resolved
// against the products collection. The product join is an inner join, so a
// line item whose product no longer exists is dropped from the view.
// Pagination applies to orders, not to the unwound line items.
func (m *mongoOrderRepository) ListViewsForUser(ctx context.Context, userID string, limit, offset int64) ([]domain.OrderView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$skip", Value: offset}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "items.productId",
			"foreignField": "_id",
			"as":           "productInfo",
		}}},
		{{Key: "$unwind", Value: "$productInfo"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$_id",
			"total": bson.M{"$first": "$total"},
			"items": bson.M{"$push": bson.M{
				"qty": "$items.qty",
				"productDetails": bson.M{
					"id":   bson.M{"$toString": "$productInfo._id"},
					"name": "$productInfo.name",
				},
			}},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":   0,
			"id":    bson.M{"$toString": "$_id"},
			"total": 1,
			"items": 1,
		}}},
	}

	cursor, err := m.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	var views []domain.OrderView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("failed to decode order views: %w", err)
	}
	return views, nil
}
