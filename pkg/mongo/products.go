package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"tiendia.app/api/pkg/models"
)

var ErrProductNotFound = errors.New("product not found")

func nowUTC() time.Time {
	return time.Now().UTC()
}

// NextProductID hands out the store's next numeric product id from a
// per-store counter document.
func NextProductID(ctx context.Context, storeID bson.ObjectID) (int64, error) {
	collection := GetCollection("counters")

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := collection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: "products:" + storeID.Hex()}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: 1}}}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	collection := GetCollection("products")

	if _, err := collection.InsertOne(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProductsByStore returns the store's catalog in creation order, which is
// the order the storefront renders.
func GetProductsByStore(ctx context.Context, storeID bson.ObjectID) ([]models.Product, error) {
	collection := GetCollection("products")

	opts := options.Find().SetSort(bson.D{{Key: "product_id", Value: 1}})
	cursor, err := collection.Find(ctx, bson.D{{Key: "store_id", Value: storeID}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func GetProduct(ctx context.Context, storeID bson.ObjectID, productID int64) (*models.Product, error) {
	collection := GetCollection("products")

	filter := bson.D{
		{Key: "store_id", Value: storeID},
		{Key: "product_id", Value: productID},
	}
	var product models.Product
	if err := collection.FindOne(ctx, filter).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a partial update and returns the updated document.
// Callers are expected to have stripped immutable fields already.
func UpdateProduct(ctx context.Context, storeID bson.ObjectID, productID int64, updates map[string]interface{}) (*models.Product, error) {
	collection := GetCollection("products")

	set := bson.D{}
	for key, value := range updates {
		set = append(set, bson.E{Key: key, Value: value})
	}
	set = append(set, bson.E{Key: "updated_at", Value: bson.NewDateTimeFromTime(nowUTC())})

	filter := bson.D{
		{Key: "store_id", Value: storeID},
		{Key: "product_id", Value: productID},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err := collection.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: set}}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes the product and returns the deleted document so the
// caller can clean up its cache entries.
func DeleteProduct(ctx context.Context, storeID bson.ObjectID, productID int64) (*models.Product, error) {
	collection := GetCollection("products")

	filter := bson.D{
		{Key: "store_id", Value: storeID},
		{Key: "product_id", Value: productID},
	}
	var product models.Product
	if err := collection.FindOneAndDelete(ctx, filter).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}
