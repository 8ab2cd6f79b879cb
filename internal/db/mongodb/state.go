package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetItem returns the value saved under key. Implements pagestate.Backend.
func (mdb *MongoDB) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	var item *dbStorageItem
	err := mdb.storageCollection.FindOne(ctx, bson.M{dbIDKey: key}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("storageCollection.FindOne error: %w", err)
	}

	return []byte(item.Value), true, nil
}

// SetItem saves value under key. Implements pagestate.Backend.
func (mdb *MongoDB) SetItem(ctx context.Context, key string, value []byte) error {
	update := bson.M{actionSet: bson.M{
		valueKey:         string(value),
		lastUpdatedAtKey: time.Now().Unix(),
	}}

	_, err := mdb.storageCollection.UpdateByID(ctx, key, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("storageCollection.UpdateByID error: %w", err)
	}

	return nil
}

// RemoveItem deletes the value saved under key. Implements pagestate.Backend.
func (mdb *MongoDB) RemoveItem(ctx context.Context, key string) error {
	_, err := mdb.storageCollection.DeleteOne(ctx, bson.M{dbIDKey: key})
	if err != nil {
		return fmt.Errorf("storageCollection.DeleteOne error: %w", err)
	}

	return nil
}
