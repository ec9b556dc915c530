// internal/domain/models/printproject.go
package models

import "time"

// PrintProject is a 3D printing project shown in the portfolio.
type PrintProject struct {
	ID            int64     `bson:"_id" json:"id"`
	TitleEN       string    `bson:"title_en" json:"title_en"`
	TitleAR       string    `bson:"title_ar" json:"title_ar"`
	DescriptionEN string    `bson:"description_en" json:"description_en"`
	DescriptionAR string    `bson:"description_ar" json:"description_ar"`
	Image         *string   `bson:"image,omitempty" json:"image"`
	IsFeatured    bool      `bson:"is_featured" json:"is_featured"`
	Material      string    `bson:"material" json:"material"`     // e.g. PLA, ABS, PETG
	PrintTime     string    `bson:"print_time" json:"print_time"` // estimated print time
	Order         int       `bson:"order" json:"order"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Title returns the project title for the locale.
func (p PrintProject) Title(l Locale) string { return l.Pick(p.TitleEN, p.TitleAR) }

// Description returns the project description for the locale.
func (p PrintProject) Description(l Locale) string { return l.Pick(p.DescriptionEN, p.DescriptionAR) }

// ImageURL returns the image reference or "" when the project has none.
func (p PrintProject) ImageURL() string {
	if p.Image == nil {
		return ""
	}
	return *p.Image
}
