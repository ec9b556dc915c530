// internal/app/store/categories/categorystore.go
package categorystore

import (
	"context"
	"errors"
	"time"

	counterstore "github.com/dalemusser/hydrasite/internal/app/store/counters"
	"github.com/dalemusser/hydrasite/internal/app/store/storeutil"
	"github.com/dalemusser/hydrasite/internal/app/system/txn"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateSlug is returned when another category already uses the slug.
var ErrDuplicateSlug = errors.New("a category with this slug already exists")

// Store provides access to the product_categories collection.
type Store struct {
	db       *mongo.Database
	c        *mongo.Collection
	products *mongo.Collection
	ids      *counterstore.Store
}

// New creates a new category store.
func New(db *mongo.Database) *Store {
	return &Store{
		db:       db,
		c:        db.Collection("product_categories"),
		products: db.Collection("products"),
		ids:      counterstore.New(db),
	}
}

// List returns one page of categories and the total count.
func (s *Store) List(ctx context.Context, q storeutil.ListQuery) ([]models.ProductCategory, int64, error) {
	return storeutil.FindPage[models.ProductCategory](ctx, s.c, bson.M{}, q, "name_en")
}

// GetByID returns the category with the given id.
func (s *Store) GetByID(ctx context.Context, id int64) (models.ProductCategory, error) {
	var cat models.ProductCategory
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
		return models.ProductCategory{}, storeutil.NotFound(err)
	}
	return cat, nil
}

// GetBySlug returns the category with the given slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.ProductCategory, error) {
	var cat models.ProductCategory
	if err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&cat); err != nil {
		return models.ProductCategory{}, storeutil.NotFound(err)
	}
	return cat, nil
}

// Create assigns an id and inserts the category.
func (s *Store) Create(ctx context.Context, cat models.ProductCategory) (models.ProductCategory, error) {
	id, err := s.ids.Next(ctx, "product_categories")
	if err != nil {
		return models.ProductCategory{}, err
	}
	now := time.Now().UTC()
	cat.ID = id
	cat.CreatedAt = now
	cat.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, cat); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ProductCategory{}, ErrDuplicateSlug
		}
		return models.ProductCategory{}, err
	}
	return cat, nil
}

// Update saves the category and refreshes the copy of its name and slug held
// by every product in it.
func (s *Store) Update(ctx context.Context, cat models.ProductCategory) error {
	now := time.Now().UTC()
	return txn.Run(ctx, s.db, nil, func(ctx context.Context) error {
		res, err := s.c.UpdateOne(ctx, bson.M{"_id": cat.ID}, bson.M{
			"$set": bson.M{
				"name_en":    cat.NameEN,
				"name_ar":    cat.NameAR,
				"slug":       cat.Slug,
				"order":      cat.Order,
				"updated_at": now,
			},
		})
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrDuplicateSlug
			}
			return err
		}
		if res.MatchedCount == 0 {
			return storeutil.ErrNotFound
		}

		_, err = s.products.UpdateMany(ctx, bson.M{"category_id": cat.ID}, bson.M{
			"$set": bson.M{
				"category_name_en": cat.NameEN,
				"category_name_ar": cat.NameAR,
				"category_slug":    cat.Slug,
				"updated_at":       now,
			},
		})
		return err
	})
}

// Delete removes a category and the products in it.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return txn.Run(ctx, s.db, nil, func(ctx context.Context) error {
		res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return storeutil.ErrNotFound
		}
		_, err = s.products.DeleteMany(ctx, bson.M{"category_id": id})
		return err
	})
}
