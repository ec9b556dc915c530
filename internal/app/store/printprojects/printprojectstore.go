// internal/app/store/printprojects/printprojectstore.go
package printprojectstore

import (
	"context"
	"time"

	counterstore "github.com/dalemusser/hydrasite/internal/app/store/counters"
	"github.com/dalemusser/hydrasite/internal/app/store/storeutil"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Filter narrows a project list. A nil Featured does not filter.
type Filter struct {
	Featured *bool
}

// Store provides access to the print_projects collection.
type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

// New creates a new 3D printing project store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("print_projects"), ids: counterstore.New(db)}
}

// List returns one page of projects matching f and the total count.
func (s *Store) List(ctx context.Context, f Filter, q storeutil.ListQuery) ([]models.PrintProject, int64, error) {
	filter := bson.M{}
	if f.Featured != nil {
		filter["is_featured"] = *f.Featured
	}
	return storeutil.FindPage[models.PrintProject](ctx, s.c, filter, q, "title_en")
}

// GetByID returns the project with the given id.
func (s *Store) GetByID(ctx context.Context, id int64) (models.PrintProject, error) {
	var p models.PrintProject
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.PrintProject{}, storeutil.NotFound(err)
	}
	return p, nil
}

// GetByTitle looks a project up by its english title.
func (s *Store) GetByTitle(ctx context.Context, titleEN string) (models.PrintProject, error) {
	var p models.PrintProject
	if err := s.c.FindOne(ctx, bson.M{"title_en": titleEN}).Decode(&p); err != nil {
		return models.PrintProject{}, storeutil.NotFound(err)
	}
	return p, nil
}

// Create assigns an id and inserts the project.
func (s *Store) Create(ctx context.Context, p models.PrintProject) (models.PrintProject, error) {
	id, err := s.ids.Next(ctx, "print_projects")
	if err != nil {
		return models.PrintProject{}, err
	}
	now := time.Now().UTC()
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.PrintProject{}, err
	}
	return p, nil
}

// Update replaces the editable fields of an existing project.
func (s *Store) Update(ctx context.Context, p models.PrintProject) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{
		"$set": bson.M{
			"title_en":       p.TitleEN,
			"title_ar":       p.TitleAR,
			"description_en": p.DescriptionEN,
			"description_ar": p.DescriptionAR,
			"image":          p.Image,
			"is_featured":    p.IsFeatured,
			"material":       p.Material,
			"print_time":     p.PrintTime,
			"order":          p.Order,
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

// Delete removes a project.
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
