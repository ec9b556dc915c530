// internal/domain/models/course.go
package models

import "time"

// CourseLevel is the closed set of course difficulty levels.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// AllCourseLevels returns the levels in ascending difficulty.
func AllCourseLevels() []CourseLevel {
	return []CourseLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// IsValidCourseLevel reports whether s names a known level.
func IsValidCourseLevel(s string) bool {
	for _, l := range AllCourseLevels() {
		if string(l) == s {
			return true
		}
	}
	return false
}

// Display returns the English display label for the level.
func (l CourseLevel) Display() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	}
	return string(l)
}

// Course is a training course.
type Course struct {
	ID            int64       `bson:"_id" json:"id"`
	TitleEN       string      `bson:"title_en" json:"title_en"`
	TitleAR       string      `bson:"title_ar" json:"title_ar"`
	DescriptionEN string      `bson:"description_en" json:"description_en"`
	DescriptionAR string      `bson:"description_ar" json:"description_ar"`
	Duration      string      `bson:"duration" json:"duration"` // e.g. "3 weeks" or "40 hours"
	Level         CourseLevel `bson:"level" json:"level"`
	LevelDisplay  string      `bson:"-" json:"level_display"`
	IsFeatured    bool        `bson:"is_featured" json:"is_featured"`
	Icon          string      `bson:"icon" json:"icon"`
	Order         int         `bson:"order" json:"order"`
	CreatedAt     time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `bson:"updated_at" json:"updated_at"`
}

// Title returns the course title for the locale.
func (c Course) Title(l Locale) string { return l.Pick(c.TitleEN, c.TitleAR) }

// Description returns the course description for the locale.
func (c Course) Description(l Locale) string { return l.Pick(c.DescriptionEN, c.DescriptionAR) }
