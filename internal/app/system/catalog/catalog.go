// Package catalog holds the list helpers the pages apply to fetched content:
// related items, category grouping and truncation.
package catalog

import "github.com/dalemusser/hydrasite/internal/domain/models"

// RelatedLimit is the number of related items shown on a detail page.
const RelatedLimit = 3

// Identified is any record with an integer id.
type Identified interface {
	models.Service | models.Product | models.Course | models.PrintProject
}

func idOf[T Identified](v T) int64 {
	switch x := any(v).(type) {
	case models.Service:
		return x.ID
	case models.Product:
		return x.ID
	case models.Course:
		return x.ID
	case models.PrintProject:
		return x.ID
	}
	return 0
}

// Related returns up to limit items from list, skipping the one with id
// current. List order is kept.
func Related[T Identified](list []T, current int64, limit int) []T {
	out := make([]T, 0, limit)
	for _, v := range list {
		if len(out) >= limit {
			break
		}
		if idOf(v) == current {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Take returns the first n items of list.
func Take[T any](list []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(list) <= n {
		return list
	}
	return list[:n]
}

// FilterByCategory keeps products whose category slug is slug. An empty slug or
// "all" keeps everything.
func FilterByCategory(products []models.Product, slug string) []models.Product {
	if slug == "" || slug == AllFilter {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.CategorySlug == slug {
			out = append(out, p)
		}
	}
	return out
}

// AllFilter is the filter value that disables category or level filtering.
const AllFilter = "all"

// GroupByCategory buckets products by category slug, keeping at most perCategory
// items per bucket in list order.
func GroupByCategory(products []models.Product, perCategory int) map[string][]models.Product {
	out := map[string][]models.Product{}
	for _, p := range products {
		if len(out[p.CategorySlug]) >= perCategory {
			continue
		}
		out[p.CategorySlug] = append(out[p.CategorySlug], p)
	}
	return out
}

// NormalizeCategory maps the ?category= value to the slug to request, or "" for
// no filter.
func NormalizeCategory(v string) string {
	if v == AllFilter {
		return ""
	}
	return v
}

// NormalizeLevel maps the ?level= value to a known level, or "" for all levels.
// Unknown values behave like "all".
func NormalizeLevel(v string) models.CourseLevel {
	if models.IsValidCourseLevel(v) {
		return models.CourseLevel(v)
	}
	return ""
}
