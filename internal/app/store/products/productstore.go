// internal/app/store/products/productstore.go
package productstore

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

// ErrNoCategory is returned when a product is written without a category.
var ErrNoCategory = errors.New("product has no category")

// Filter narrows a product list. Zero values do not filter.
type Filter struct {
	CategorySlug string
	Featured     *bool
}

func (f Filter) bson() bson.M {
	m := bson.M{}
	if f.CategorySlug != "" {
		m["category_slug"] = f.CategorySlug
	}
	if f.Featured != nil {
		m["is_featured"] = *f.Featured
	}
	return m
}

// Store provides access to the products collection.
type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

// New creates a new product store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("products"), ids: counterstore.New(db)}
}

// List returns one page of products matching f and the total count.
func (s *Store) List(ctx context.Context, f Filter, q storeutil.ListQuery) ([]models.Product, int64, error) {
	return storeutil.FindPage[models.Product](ctx, s.c, f.bson(), q, "name_en")
}

// GetByID returns the product with the given id.
func (s *Store) GetByID(ctx context.Context, id int64) (models.Product, error) {
	var p models.Product
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.Product{}, storeutil.NotFound(err)
	}
	return p, nil
}

// GetByName looks a product up by its english name.
func (s *Store) GetByName(ctx context.Context, nameEN string) (models.Product, error) {
	var p models.Product
	if err := s.c.FindOne(ctx, bson.M{"name_en": nameEN}).Decode(&p); err != nil {
		return models.Product{}, storeutil.NotFound(err)
	}
	return p, nil
}

// Create assigns an id and inserts the product. The product must already carry
// its category copy (see models.Product.WithCategory).
func (s *Store) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if p.CategoryID == 0 || p.CategorySlug == "" {
		return models.Product{}, ErrNoCategory
	}
	id, err := s.ids.Next(ctx, "products")
	if err != nil {
		return models.Product{}, err
	}
	now := time.Now().UTC()
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Update replaces the editable fields of an existing product.
func (s *Store) Update(ctx context.Context, p models.Product) error {
	if p.CategoryID == 0 || p.CategorySlug == "" {
		return ErrNoCategory
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{
		"$set": bson.M{
			"category_id":      p.CategoryID,
			"category_name_en": p.CategoryNameEN,
			"category_name_ar": p.CategoryNameAR,
			"category_slug":    p.CategorySlug,
			"name_en":          p.NameEN,
			"name_ar":          p.NameAR,
			"description_en":   p.DescriptionEN,
			"description_ar":   p.DescriptionAR,
			"image":            p.Image,
			"is_featured":      p.IsFeatured,
			"order":            p.Order,
			"updated_at":       time.Now().UTC(),
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

// Delete removes a product.
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
