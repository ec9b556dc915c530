// internal/domain/models/product.go
package models

import "time"

// Product is a product or piece of equipment. It belongs to exactly one category;
// the category name and slug are copied onto the product when it is written.
type Product struct {
	ID             int64     `bson:"_id" json:"id"`
	CategoryID     int64     `bson:"category_id" json:"category"`
	CategoryNameEN string    `bson:"category_name_en" json:"category_name_en"`
	CategoryNameAR string    `bson:"category_name_ar" json:"category_name_ar"`
	CategorySlug   string    `bson:"category_slug" json:"category_slug"`
	NameEN         string    `bson:"name_en" json:"name_en"`
	NameAR         string    `bson:"name_ar" json:"name_ar"`
	DescriptionEN  string    `bson:"description_en" json:"description_en"`
	DescriptionAR  string    `bson:"description_ar" json:"description_ar"`
	Image          *string   `bson:"image,omitempty" json:"image"` // storage path in the DB, public URL over the API
	IsFeatured     bool      `bson:"is_featured" json:"is_featured"`
	Order          int       `bson:"order" json:"order"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// Name returns the product name for the locale.
func (p Product) Name(l Locale) string { return l.Pick(p.NameEN, p.NameAR) }

// Description returns the product description for the locale.
func (p Product) Description(l Locale) string { return l.Pick(p.DescriptionEN, p.DescriptionAR) }

// CategoryName returns the denormalized category name for the locale.
func (p Product) CategoryName(l Locale) string { return l.Pick(p.CategoryNameEN, p.CategoryNameAR) }

// ImageURL returns the image reference or "" when the product has none.
func (p Product) ImageURL() string {
	if p.Image == nil {
		return ""
	}
	return *p.Image
}

// WithCategory copies the denormalized category fields onto the product.
func (p Product) WithCategory(c ProductCategory) Product {
	p.CategoryID = c.ID
	p.CategoryNameEN = c.NameEN
	p.CategoryNameAR = c.NameAR
	p.CategorySlug = c.Slug
	return p
}
