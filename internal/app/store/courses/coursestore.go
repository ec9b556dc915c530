// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"errors"
	"time"

	counterstore "github.com/dalemusser/hydrasite/internal/app/store/counters"
	"github.com/dalemusser/hydrasite/internal/app/store/storeutil"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrInvalidLevel is returned when a course carries an unknown level.
var ErrInvalidLevel = errors.New("invalid course level")

// Filter narrows a course list. Zero values do not filter.
type Filter struct {
	Level    models.CourseLevel
	Featured *bool
}

func (f Filter) bson() bson.M {
	m := bson.M{}
	if f.Level != "" {
		m["level"] = f.Level
	}
	if f.Featured != nil {
		m["is_featured"] = *f.Featured
	}
	return m
}

// Store provides access to the courses collection.
type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

// New creates a new course store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses"), ids: counterstore.New(db)}
}

func withDisplay(c models.Course) models.Course {
	c.LevelDisplay = c.Level.Display()
	return c
}

// List returns one page of courses matching f and the total count.
func (s *Store) List(ctx context.Context, f Filter, q storeutil.ListQuery) ([]models.Course, int64, error) {
	list, total, err := storeutil.FindPage[models.Course](ctx, s.c, f.bson(), q, "title_en")
	if err != nil {
		return nil, 0, err
	}
	for i := range list {
		list[i] = withDisplay(list[i])
	}
	return list, total, nil
}

// GetByID returns the course with the given id.
func (s *Store) GetByID(ctx context.Context, id int64) (models.Course, error) {
	var c models.Course
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.Course{}, storeutil.NotFound(err)
	}
	return withDisplay(c), nil
}

// GetByTitle looks a course up by its english title.
func (s *Store) GetByTitle(ctx context.Context, titleEN string) (models.Course, error) {
	var c models.Course
	if err := s.c.FindOne(ctx, bson.M{"title_en": titleEN}).Decode(&c); err != nil {
		return models.Course{}, storeutil.NotFound(err)
	}
	return withDisplay(c), nil
}

// Create assigns an id and inserts the course.
func (s *Store) Create(ctx context.Context, c models.Course) (models.Course, error) {
	if !models.IsValidCourseLevel(string(c.Level)) {
		return models.Course{}, ErrInvalidLevel
	}
	id, err := s.ids.Next(ctx, "courses")
	if err != nil {
		return models.Course{}, err
	}
	now := time.Now().UTC()
	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Course{}, err
	}
	return withDisplay(c), nil
}

// Update replaces the editable fields of an existing course.
func (s *Store) Update(ctx context.Context, c models.Course) error {
	if !models.IsValidCourseLevel(string(c.Level)) {
		return ErrInvalidLevel
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": c.ID}, bson.M{
		"$set": bson.M{
			"title_en":       c.TitleEN,
			"title_ar":       c.TitleAR,
			"description_en": c.DescriptionEN,
			"description_ar": c.DescriptionAR,
			"duration":       c.Duration,
			"level":          c.Level,
			"is_featured":    c.IsFeatured,
			"icon":           c.Icon,
			"order":          c.Order,
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

// Delete removes a course.
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
