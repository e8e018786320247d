package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CatalogStats summarizes a store's catalog for the dashboard.
type CatalogStats struct {
	ProductCount int     `json:"product_count" bson:"product_count"`
	PricedCount  int     `json:"priced_count" bson:"priced_count"`
	SizedCount   int     `json:"sized_count" bson:"sized_count"`
	TotalStock   int     `json:"total_stock" bson:"total_stock"`
	AvgPrice     float64 `json:"avg_price" bson:"avg_price"`
}

// GetCatalogStats aggregates product counts, stock and average price for one
// store in a single pipeline.
func GetCatalogStats(ctx context.Context, storeID bson.ObjectID) (*CatalogStats, error) {
	collection := GetCollection("products")

	pipeline := bson.A{
		bson.D{
			{Key: "$match", Value: bson.D{{Key: "store_id", Value: storeID}}},
		},
		bson.D{
			{Key: "$addFields", Value: bson.D{
				{Key: "stock_sum", Value: bson.D{
					{Key: "$sum", Value: bson.D{
						{Key: "$ifNull", Value: bson.A{"$sizes.stock", bson.A{}}},
					}},
				}},
				{Key: "has_price", Value: bson.D{
					{Key: "$cond", Value: bson.A{
						bson.D{{Key: "$gt", Value: bson.A{"$price", nil}}}, 1, 0,
					}},
				}},
				{Key: "has_sizes", Value: bson.D{
					{Key: "$cond", Value: bson.A{
						bson.D{{Key: "$gt", Value: bson.A{
							bson.D{{Key: "$size", Value: bson.D{
								{Key: "$ifNull", Value: bson.A{"$sizes", bson.A{}}},
							}}}, 0,
						}}}, 1, 0,
					}},
				}},
			}},
		},
		bson.D{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: nil},
				{Key: "product_count", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "priced_count", Value: bson.D{{Key: "$sum", Value: "$has_price"}}},
				{Key: "sized_count", Value: bson.D{{Key: "$sum", Value: "$has_sizes"}}},
				{Key: "total_stock", Value: bson.D{{Key: "$sum", Value: "$stock_sum"}}},
				{Key: "avg_price", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			}},
		},
		bson.D{
			{Key: "$project", Value: bson.D{
				{Key: "_id", Value: 0},
				{Key: "product_count", Value: 1},
				{Key: "priced_count", Value: 1},
				{Key: "sized_count", Value: 1},
				{Key: "total_stock", Value: 1},
				{Key: "avg_price", Value: bson.D{
					{Key: "$round", Value: bson.A{bson.D{{Key: "$ifNull", Value: bson.A{"$avg_price", 0}}}, 2}},
				}},
			}},
		},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []CatalogStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &CatalogStats{}, nil
	}
	return &results[0], nil
}
