// internal/domain/models/service.go
package models

import "time"

// Service is a service offered by the company.
type Service struct {
	ID            int64     `bson:"_id" json:"id"`
	TitleEN       string    `bson:"title_en" json:"title_en"`
	TitleAR       string    `bson:"title_ar" json:"title_ar"`
	DescriptionEN string    `bson:"description_en" json:"description_en"`
	DescriptionAR string    `bson:"description_ar" json:"description_ar"`
	Icon          string    `bson:"icon" json:"icon"` // Icon name or emoji
	Order         int       `bson:"order" json:"order"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Title returns the title for the locale.
func (s Service) Title(l Locale) string { return l.Pick(s.TitleEN, s.TitleAR) }

// Description returns the description for the locale.
func (s Service) Description(l Locale) string { return l.Pick(s.DescriptionEN, s.DescriptionAR) }
