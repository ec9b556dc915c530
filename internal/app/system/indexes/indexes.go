// Package indexes reconciles the MongoDB indexes of the content collections
// at startup.
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// index describes one wanted index. ttl > 0 makes it a TTL index.
type index struct {
	name   string
	keys   bson.D
	unique bool
	ttl    time.Duration
}

func (ix index) model() mongo.IndexModel {
	opts := options.Index().SetName(ix.name)
	if ix.unique {
		opts.SetUnique(true)
	}
	if ix.ttl > 0 {
		opts.SetExpireAfterSeconds(int32(ix.ttl / time.Second))
	}
	return mongo.IndexModel{Keys: ix.keys, Options: opts}
}

func asc(fields ...string) bson.D {
	d := make(bson.D, 0, len(fields))
	for _, f := range fields {
		d = append(d, bson.E{Key: f, Value: 1})
	}
	return d
}

// ordered backs the (order, english label) sort every list uses by default.
func ordered(coll, label string) index {
	return index{name: "idx_" + coll + "_order_" + label, keys: asc("order", label)}
}

// wanted is keyed by collection name.
var wanted = []struct {
	coll    string
	indexes []index
}{
	{"services", []index{
		ordered("services", "title_en"),
		{name: "idx_services_title_en", keys: asc("title_en")},
	}},
	{"product_categories", []index{
		{name: "uniq_product_categories_slug", keys: asc("slug"), unique: true},
		ordered("product_categories", "name_en"),
	}},
	{"products", []index{
		ordered("products", "name_en"),
		{name: "idx_products_categoryslug_order_name", keys: asc("category_slug", "order", "name_en")},
		{name: "idx_products_category_id", keys: asc("category_id")},
		{name: "idx_products_featured_order", keys: asc("is_featured", "order")},
	}},
	{"courses", []index{
		ordered("courses", "title_en"),
		{name: "idx_courses_level_order_title", keys: asc("level", "order", "title_en")},
	}},
	{"print_projects", []index{
		ordered("print_projects", "title_en"),
		{name: "idx_print_projects_featured_order", keys: asc("is_featured", "order")},
	}},
	{"site_settings", []index{
		{name: "uniq_sitesettings_singleton", keys: asc("singleton"), unique: true},
	}},
	{"contact_messages", []index{
		{name: "idx_contact_status_created", keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{name: "uniq_contact_reference", keys: asc("reference"), unique: true},
	}},
	{"rate_limits", []index{
		{name: "idx_ratelimit_client_key", keys: asc("client_key"), unique: true},
		{name: "idx_ratelimit_ttl", keys: asc("last_attempt"), ttl: 24 * time.Hour},
	}},
}

// EnsureAll creates missing indexes on every content collection. It is
// idempotent and reports all failing collections together.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string
	for _, w := range wanted {
		if err := reconcile(ctx, db.Collection(w.coll), w.indexes); err != nil {
			problems = append(problems, w.coll+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique bool   `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ",")
}

// reconcile matches wanted indexes to existing ones by key pattern. A match
// whose uniqueness differs is dropped and recreated; the name is not compared.
func reconcile(ctx context.Context, coll *mongo.Collection, want []index) error {
	log := zap.L().With(zap.String("collection", coll.Name()))

	existing := map[string]existingIndex{}
	if cur, err := coll.Indexes().List(ctx); err == nil {
		var all []existingIndex
		if err := cur.All(ctx, &all); err != nil {
			log.Warn("failed to decode existing indexes", zap.Error(err))
		}
		for _, ex := range all {
			existing[keySig(ex.Key)] = ex
		}
	}

	var errs []string
	for _, ix := range want {
		sig := keySig(ix.keys)
		ex, found := existing[sig]
		if found && ex.Unique == ix.unique {
			log.Debug("index present", zap.String("name", ex.Name), zap.String("keys", sig))
			continue
		}
		if found {
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s: drop %s: %v", ix.name, ex.Name, err))
				continue
			}
			log.Info("dropped index with stale options", zap.String("name", ex.Name))
		}

		start := time.Now()
		if _, err := coll.Indexes().CreateOne(ctx, ix.model()); err != nil {
			if ix.unique && mongo.IsDuplicateKeyError(err) {
				errs = append(errs, ix.name+": duplicates prevent unique index")
			} else {
				errs = append(errs, fmt.Sprintf("%s: %v", ix.name, err))
			}
			log.Warn("index create failed", zap.String("name", ix.name), zap.Error(err))
			continue
		}
		log.Info("index created",
			zap.String("name", ix.name),
			zap.String("keys", sig),
			zap.Bool("unique", ix.unique),
			zap.Duration("took", time.Since(start)))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
