// internal/domain/models/productcategory.go
package models

import "time"

// ProductCategory groups products. Slug is the filter key used by the products page.
type ProductCategory struct {
	ID        int64     `bson:"_id" json:"id"`
	NameEN    string    `bson:"name_en" json:"name_en"`
	NameAR    string    `bson:"name_ar" json:"name_ar"`
	Slug      string    `bson:"slug" json:"slug"`
	Order     int       `bson:"order" json:"order"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Name returns the category name for the locale.
func (c ProductCategory) Name(l Locale) string { return l.Pick(c.NameEN, c.NameAR) }
