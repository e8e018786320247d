package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"tiendia.app/api/pkg/models"
)

var (
	// ErrStoreNotFound distinguishes an unknown store (public page does not
	// exist) from any other load failure.
	ErrStoreNotFound = errors.New("store not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

func CreateStore(ctx context.Context, store *models.Store) (*models.Store, error) {
	collection := GetCollection("stores")

	// Index uniqueness on email/username turns races into duplicate-key
	// errors; the pre-checks just give the caller a precise message.
	count, err := collection.CountDocuments(ctx, bson.D{{Key: "email", Value: store.Email}})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}
	count, err = collection.CountDocuments(ctx, bson.D{{Key: "username", Value: store.Username}})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	store.ID = bson.NewObjectID()
	store.SetTimestamps()
	if _, err := collection.InsertOne(ctx, store); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return store, nil
}

func GetStoreByUsername(ctx context.Context, username string) (*models.Store, error) {
	collection := GetCollection("stores")

	var store models.Store
	err := collection.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&store)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func GetStoreByEmail(ctx context.Context, email string) (*models.Store, error) {
	collection := GetCollection("stores")

	var store models.Store
	err := collection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&store)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func GetStoreByID(ctx context.Context, id bson.ObjectID) (*models.Store, error) {
	collection := GetCollection("stores")

	var store models.Store
	err := collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&store)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func UpdateStore(ctx context.Context, id bson.ObjectID, req *models.UpdateStoreRequest) (*models.Store, error) {
	collection := GetCollection("stores")

	set := bson.D{}
	if req.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *req.Name})
	}
	if req.Phone != nil {
		set = append(set, bson.E{Key: "phone", Value: *req.Phone})
	}
	if req.LogoURL != nil {
		set = append(set, bson.E{Key: "logo_url", Value: *req.LogoURL})
	}
	set = append(set, bson.E{Key: "updated_at", Value: bson.NewDateTimeFromTime(nowUTC())})

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var store models.Store
	err := collection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&store)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}
