// internal/app/store/storeutil/storeutil.go
package storeutil

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by content stores when no record matches.
var ErrNotFound = errors.New("not found")

// Page size bounds for list queries.
const (
	DefaultPageSize int64 = 100
	MaxPageSize     int64 = 500
)

// Paginate returns *options.FindOptions with skip/limit given a 1-based page.
func Paginate(limit, page int64) *options.FindOptions {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	sk := (page - 1) * limit
	return options.Find().SetLimit(limit).SetSkip(sk)
}

// ListQuery selects one window of an ordered list.
type ListQuery struct {
	Page     int64  // 1-based
	PageSize int64  // clamped to MaxPageSize
	Ordering string // "order", "-order", "created_at", "-created_at"
}

// Normalized returns q with page and page size clamped to valid values.
func (q ListQuery) Normalized() ListQuery {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// FindOptions returns the sort and window for q. label is the english title or
// name field used as the secondary sort key.
func (q ListQuery) FindOptions(label string) *options.FindOptions {
	q = q.Normalized()
	return Paginate(q.PageSize, q.Page).SetSort(Sort(q.Ordering, label))
}

// Sort returns the sort document for ordering. Unknown or empty orderings fall back
// to (order, label). _id is always the final tiebreaker so pages are stable.
func Sort(ordering, label string) bson.D {
	ordering = strings.TrimSpace(ordering)
	dir := 1
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		dir = -1
		field = ordering[1:]
	}
	switch field {
	case "order":
		return bson.D{{Key: "order", Value: dir}, {Key: label, Value: 1}, {Key: "_id", Value: 1}}
	case "created_at":
		return bson.D{{Key: "created_at", Value: dir}, {Key: "_id", Value: dir}}
	}
	return bson.D{{Key: "order", Value: 1}, {Key: label, Value: 1}, {Key: "_id", Value: 1}}
}

// ValidOrdering reports whether ordering names a supported sort.
func ValidOrdering(ordering string) bool {
	switch strings.TrimPrefix(ordering, "-") {
	case "", "order", "created_at":
		return true
	}
	return false
}

// NotFound maps mongo.ErrNoDocuments to ErrNotFound and passes other errors through.
func NotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// FindPage runs a counted, windowed find and decodes the results into []T.
// The returned total is the number of documents matching filter across all pages.
func FindPage[T any](ctx context.Context, c *mongo.Collection, filter bson.M, q ListQuery, label string) ([]T, int64, error) {
	total, err := c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cur, err := c.Find(ctx, filter, q.FindOptions(label))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
