// internal/app/store/counters/counterstore.go
package counterstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store hands out integer ids. Each sequence is one document in the counters collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new counter store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("counters")}
}

type counter struct {
	Name  string `bson:"_id"`
	Value int64  `bson:"value"`
}

// Next atomically increments the named sequence and returns the new value.
// The first call for a sequence returns 1.
func (s *Store) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.Value, nil
}

// Current returns the last value handed out for the sequence, or 0.
func (s *Store) Current(ctx context.Context, name string) (int64, error) {
	var c counter
	err := s.c.FindOne(ctx, bson.M{"_id": name}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return c.Value, nil
}
