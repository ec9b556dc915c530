package viewdata

import (
	"github.com/dalemusser/hydrasite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/hydrasite/internal/app/system/i18n"
	"github.com/dalemusser/hydrasite/internal/domain/models"
)

// Card texts are plain text cut to this many runes.
const cardDescriptionLen = 180

// ServiceCard is a service as shown in lists and menus.
type ServiceCard struct {
	ID          int64
	Href        string
	Title       string
	Description string
	Icon        string
	ContactHref string
}

// ProductCard is a product as shown in grids.
type ProductCard struct {
	ID           int64
	Href         string
	Name         string
	Description  string
	Image        string
	CategoryName string
	CategoryHref string
	Featured     bool
	ContactHref  string
}

// CourseCard is a course as shown in grids.
type CourseCard struct {
	ID          int64
	Href        string
	Title       string
	Description string
	Duration    string
	Level       string
	LevelLabel  string
	Icon        string
	Featured    bool
	ContactHref string
}

// ProjectCard is a 3D printing project as shown in grids.
type ProjectCard struct {
	ID          int64
	Href        string
	Title       string
	Description string
	Image       string
	Material    string
	PrintTime   string
	Featured    bool
	ContactHref string
}

func cardText(s string) string {
	return truncate(htmlsanitize.StripTags(s), cardDescriptionLen)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// NewServiceCard builds the card for s in locale l.
func NewServiceCard(s models.Service, l models.Locale) ServiceCard {
	return ServiceCard{
		ID:          s.ID,
		Href:        ServicePath(s.ID),
		Title:       s.Title(l),
		Description: cardText(s.Description(l)),
		Icon:        s.Icon,
		ContactHref: ContactPath("service", s.Title(l)),
	}
}

// NewProductCard builds the card for p in locale l.
func NewProductCard(p models.Product, l models.Locale) ProductCard {
	return ProductCard{
		ID:           p.ID,
		Href:         ProductPath(p.ID),
		Name:         p.Name(l),
		Description:  cardText(p.Description(l)),
		Image:        p.ImageURL(),
		CategoryName: p.CategoryName(l),
		CategoryHref: CategoryPath(p.CategorySlug),
		Featured:     p.IsFeatured,
		ContactHref:  ContactPath("product", p.Name(l)),
	}
}

// NewCourseCard builds the card for c in locale l. The level label comes from
// the string catalog, falling back to the English display name.
func NewCourseCard(c models.Course, l models.Locale, t i18n.Catalog) CourseCard {
	label, ok := t["level_"+string(c.Level)]
	if !ok {
		label = c.LevelDisplay
		if label == "" {
			label = c.Level.Display()
		}
	}
	return CourseCard{
		ID:          c.ID,
		Href:        CoursePath(c.ID),
		Title:       c.Title(l),
		Description: cardText(c.Description(l)),
		Duration:    c.Duration,
		Level:       string(c.Level),
		LevelLabel:  label,
		Icon:        c.Icon,
		Featured:    c.IsFeatured,
		ContactHref: ContactPath("course", c.Title(l)),
	}
}

// NewProjectCard builds the card for p in locale l.
func NewProjectCard(p models.PrintProject, l models.Locale) ProjectCard {
	return ProjectCard{
		ID:          p.ID,
		Href:        ProjectPath(p.ID),
		Title:       p.Title(l),
		Description: cardText(p.Description(l)),
		Image:       p.ImageURL(),
		Material:    p.Material,
		PrintTime:   p.PrintTime,
		Featured:    p.IsFeatured,
		ContactHref: ContactPath("project", p.Title(l)),
	}
}

// ServiceCards maps NewServiceCard over list.
func ServiceCards(list []models.Service, l models.Locale) []ServiceCard {
	out := make([]ServiceCard, 0, len(list))
	for _, s := range list {
		out = append(out, NewServiceCard(s, l))
	}
	return out
}

// ProductCards maps NewProductCard over list.
func ProductCards(list []models.Product, l models.Locale) []ProductCard {
	out := make([]ProductCard, 0, len(list))
	for _, p := range list {
		out = append(out, NewProductCard(p, l))
	}
	return out
}

// CourseCards maps NewCourseCard over list.
func CourseCards(list []models.Course, l models.Locale, t i18n.Catalog) []CourseCard {
	out := make([]CourseCard, 0, len(list))
	for _, c := range list {
		out = append(out, NewCourseCard(c, l, t))
	}
	return out
}

// ProjectCards maps NewProjectCard over list.
func ProjectCards(list []models.PrintProject, l models.Locale) []ProjectCard {
	out := make([]ProjectCard, 0, len(list))
	for _, p := range list {
		out = append(out, NewProjectCard(p, l))
	}
	return out
}
