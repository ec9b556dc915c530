// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"
	"errors"

	categorystore "github.com/dalemusser/hydrasite/internal/app/store/categories"
	coursestore "github.com/dalemusser/hydrasite/internal/app/store/courses"
	printprojectstore "github.com/dalemusser/hydrasite/internal/app/store/printprojects"
	productstore "github.com/dalemusser/hydrasite/internal/app/store/products"
	servicestore "github.com/dalemusser/hydrasite/internal/app/store/services"
	settingsstore "github.com/dalemusser/hydrasite/internal/app/store/settings"
	"github.com/dalemusser/hydrasite/internal/app/store/storeutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll seeds the initial site content if not already present.
// Existing records are never overwritten.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	steps := []struct {
		name string
		fn   func(context.Context, *mongo.Database, *zap.Logger) error
	}{
		{"services", seedServices},
		{"product_categories", seedCategories},
		{"products", seedProducts},
		{"courses", seedCourses},
		{"site_settings", seedSettings},
		{"print_projects", seedPrintProjects},
	}
	for _, s := range steps {
		if err := s.fn(ctx, db, logger); err != nil {
			logger.Error("seeding failed", zap.String("collection", s.name), zap.Error(err))
			return err
		}
	}
	return nil
}

func seedServices(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := servicestore.New(db)
	for _, svc := range DefaultServices() {
		_, err := store.GetByTitle(ctx, svc.TitleEN)
		if err == nil {
			continue
		}
		if !errors.Is(err, storeutil.ErrNotFound) {
			return err
		}
		if _, err := store.Create(ctx, svc); err != nil {
			return err
		}
		logger.Info("seeded service", zap.String("title", svc.TitleEN))
	}
	return nil
}

func seedCategories(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := categorystore.New(db)
	for _, cat := range DefaultCategories() {
		_, err := store.GetBySlug(ctx, cat.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, storeutil.ErrNotFound) {
			return err
		}
		if _, err := store.Create(ctx, cat); err != nil {
			return err
		}
		logger.Info("seeded product category", zap.String("slug", cat.Slug))
	}
	return nil
}

func seedProducts(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	cats := categorystore.New(db)
	store := productstore.New(db)
	for _, sp := range DefaultProducts() {
		_, err := store.GetByName(ctx, sp.Product.NameEN)
		if err == nil {
			continue
		}
		if !errors.Is(err, storeutil.ErrNotFound) {
			return err
		}
		cat, err := cats.GetBySlug(ctx, sp.CategorySlug)
		if err != nil {
			return err
		}
		if _, err := store.Create(ctx, sp.Product.WithCategory(cat)); err != nil {
			return err
		}
		logger.Info("seeded product", zap.String("name", sp.Product.NameEN))
	}
	return nil
}

func seedCourses(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := coursestore.New(db)
	for _, c := range DefaultCourses() {
		_, err := store.GetByTitle(ctx, c.TitleEN)
		if err == nil {
			continue
		}
		if !errors.Is(err, storeutil.ErrNotFound) {
			return err
		}
		if _, err := store.Create(ctx, c); err != nil {
			return err
		}
		logger.Info("seeded course", zap.String("title", c.TitleEN))
	}
	return nil
}

func seedSettings(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := settingsstore.New(db)
	exists, err := store.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := store.Save(ctx, DefaultSettings()); err != nil {
		return err
	}
	logger.Info("seeded site settings")
	return nil
}

func seedPrintProjects(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := printprojectstore.New(db)
	for _, p := range DefaultPrintProjects() {
		_, err := store.GetByTitle(ctx, p.TitleEN)
		if err == nil {
			continue
		}
		if !errors.Is(err, storeutil.ErrNotFound) {
			return err
		}
		if _, err := store.Create(ctx, p); err != nil {
			return err
		}
		logger.Info("seeded 3d printing project", zap.String("title", p.TitleEN))
	}
	return nil
}
