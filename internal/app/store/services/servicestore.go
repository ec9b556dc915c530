// internal/app/store/services/servicestore.go
package servicestore

import (
	"context"
	"time"

	counterstore "github.com/dalemusser/hydrasite/internal/app/store/counters"
	"github.com/dalemusser/hydrasite/internal/app/store/storeutil"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the services collection.
type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

// New creates a new service store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("services"), ids: counterstore.New(db)}
}

// List returns one page of services and the total count.
func (s *Store) List(ctx context.Context, q storeutil.ListQuery) ([]models.Service, int64, error) {
	return storeutil.FindPage[models.Service](ctx, s.c, bson.M{}, q, "title_en")
}

// GetByID returns the service with the given id or storeutil.ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id int64) (models.Service, error) {
	var svc models.Service
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
		return models.Service{}, storeutil.NotFound(err)
	}
	return svc, nil
}

// GetByTitle looks a service up by its english title.
func (s *Store) GetByTitle(ctx context.Context, titleEN string) (models.Service, error) {
	var svc models.Service
	if err := s.c.FindOne(ctx, bson.M{"title_en": titleEN}).Decode(&svc); err != nil {
		return models.Service{}, storeutil.NotFound(err)
	}
	return svc, nil
}

// Create assigns an id and inserts the service.
func (s *Store) Create(ctx context.Context, svc models.Service) (models.Service, error) {
	id, err := s.ids.Next(ctx, "services")
	if err != nil {
		return models.Service{}, err
	}
	now := time.Now().UTC()
	svc.ID = id
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, svc); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

// Update replaces the editable fields of an existing service.
func (s *Store) Update(ctx context.Context, svc models.Service) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": svc.ID}, bson.M{
		"$set": bson.M{
			"title_en":       svc.TitleEN,
			"title_ar":       svc.TitleAR,
			"description_en": svc.DescriptionEN,
			"description_ar": svc.DescriptionAR,
			"icon":           svc.Icon,
			"order":          svc.Order,
			"updated_at":     time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return storeutil.ErrNotFound
	}
	return nil
}

// Delete removes a service.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storeutil.ErrNotFound
	}
	return nil
}
