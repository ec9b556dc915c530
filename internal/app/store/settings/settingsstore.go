// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"time"

	"github.com/dalemusser/hydrasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the site_settings collection.
// The site has a single settings document, selected by {singleton: true}.
type Store struct {
	c *mongo.Collection
}

// New creates a new settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("site_settings")}
}

// Get returns the site settings, or the defaults when none have been saved.
func (s *Store) Get(ctx context.Context) (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.c.FindOne(ctx, bson.M{"singleton": true}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return models.DefaultSiteSettings(), nil
	}
	if err != nil {
		return models.SiteSettings{}, err
	}
	settings.ID = models.SiteSettingsID
	return settings, nil
}

// Save writes the settings, creating the singleton on first use.
func (s *Store) Save(ctx context.Context, settings models.SiteSettings) error {
	update := bson.M{
		"$set": bson.M{
			"singleton":       true,
			"company_name_en": settings.CompanyNameEN,
			"company_name_ar": settings.CompanyNameAR,
			"short_about_en":  settings.ShortAboutEN,
			"short_about_ar":  settings.ShortAboutAR,
			"address_en":      settings.AddressEN,
			"address_ar":      settings.AddressAR,
			"email":           settings.Email,
			"phone1":          settings.Phone1,
			"phone2":          settings.Phone2,
			"footer_text_en":  settings.FooterTextEN,
			"footer_text_ar":  settings.FooterTextAR,
			"updated_at":      time.Now().UTC(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"singleton": true}, update, opts)
	return err
}

// Exists checks if settings have been saved.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"singleton": true})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
