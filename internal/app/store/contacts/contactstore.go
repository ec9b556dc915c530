// internal/app/store/contacts/contactstore.go
package contactstore

import (
	"context"
	"errors"
	"time"

	counterstore "github.com/dalemusser/hydrasite/internal/app/store/counters"
	"github.com/dalemusser/hydrasite/internal/app/store/storeutil"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidStatus is returned when a status outside the known set is written.
var ErrInvalidStatus = errors.New("invalid contact status")

// Store provides access to the contact_messages collection.
type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

// New creates a new contact message store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_messages"), ids: counterstore.New(db)}
}

// Create stores a new message with status "new".
func (s *Store) Create(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	id, err := s.ids.Next(ctx, "contact_messages")
	if err != nil {
		return models.ContactMessage{}, err
	}
	now := time.Now().UTC()
	msg.ID = id
	msg.Reference = uuid.NewString()
	msg.Status = models.ContactStatusNew
	msg.CreatedAt = now
	msg.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, msg); err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}

// GetByID returns the message with the given id.
func (s *Store) GetByID(ctx context.Context, id int64) (models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&msg); err != nil {
		return models.ContactMessage{}, storeutil.NotFound(err)
	}
	return msg, nil
}

// ListByStatus returns messages with the given status, newest first.
// An empty status lists every message.
func (s *Store) ListByStatus(ctx context.Context, status models.ContactStatus, limit int64) ([]models.ContactMessage, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.ContactMessage{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetStatus moves a message to another status.
func (s *Store) SetStatus(ctx context.Context, id int64, status models.ContactStatus) error {
	switch status {
	case models.ContactStatusNew, models.ContactStatusRead, models.ContactStatusReplied, models.ContactStatusArchived:
	default:
		return ErrInvalidStatus
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return storeutil.ErrNotFound
	}
	return nil
}
