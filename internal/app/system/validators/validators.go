// Package validators creates the content collections and attaches their
// JSON-Schema validators. Deployments without collMod (some DocumentDB
// versions) keep the collections and skip the validators.
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// collections lists every collection the application writes, with its
// schema. A nil schema only creates the collection.
func collections() []struct {
	name   string
	schema bson.M
} {
	return []struct {
		name   string
		schema bson.M
	}{
		{"counters", nil},
		{"services", bilingualSchema("title")},
		{"product_categories", categoriesSchema()},
		{"products", productsSchema()},
		{"courses", coursesSchema()},
		{"print_projects", bilingualSchema("title")},
		{"site_settings", nil},
		{"contact_messages", contactSchema()},
		{"rate_limits", nil},
	}
}

// EnsureAll creates missing collections and (re)applies validators. Every
// failing collection is reported in the returned error.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	existing := map[string]bool{}
	if names, err := db.ListCollectionNames(ctx, bson.M{}); err == nil {
		for _, n := range names {
			existing[n] = true
		}
	}

	var problems []string
	for _, c := range collections() {
		if !existing[c.name] {
			if err := createCollection(ctx, db, c.name); err != nil {
				problems = append(problems, c.name+": "+err.Error())
				continue
			}
		}
		if c.schema == nil {
			continue
		}
		if err := setValidator(ctx, db, c.name, c.schema); err != nil {
			if isUnsupported(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", c.name))
				continue
			}
			problems = append(problems, c.name+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// createCollection tolerates a concurrent creator winning the race.
func createCollection(ctx context.Context, db *mongo.Database, name string) error {
	err := db.CreateCollection(ctx, name)
	if err != nil && !isNamespaceExists(err) {
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return err
	}
	if err == nil {
		zap.L().Info("created collection", zap.String("collection", name))
	}
	return nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, schema bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: schema},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	if err := db.RunCommand(ctx, cmd).Err(); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

// commandErr reports whether err is a command error with one of codes or
// whose text contains one of phrases.
func commandErr(err error, codes []int32, phrases ...string) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		for _, c := range codes {
			if ce.Code == c {
				return true
			}
		}
	}
	msg := strings.ToLower(err.Error())
	for _, p := range phrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

func isNamespaceExists(err error) bool {
	return commandErr(err, []int32{48}, "already exists", "namespace exists")
}

// isUnsupported covers CommandNotFound (59) and NotImplemented (115).
func isUnsupported(err error) bool {
	return commandErr(err, []int32{59, 115}, "no such command", "not implemented", "not supported")
}

// bilingualSchema requires the english and arabic variants of field and the
// display order.
func bilingualSchema(field string) bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{field + "_en", field + "_ar", "order"},
			"properties": bson.M{
				field + "_en": bson.M{"bsonType": "string", "minLength": 1, "maxLength": 200},
				field + "_ar": bson.M{"bsonType": "string", "minLength": 1, "maxLength": 200},
				"order":       bson.M{"bsonType": bson.A{"int", "long"}},
			},
		},
	}
}

// extend adds required fields and properties to a bilingual schema.
func extend(s bson.M, required []string, props bson.M) bson.M {
	js := s["$jsonSchema"].(bson.M)
	for _, r := range required {
		js["required"] = append(js["required"].(bson.A), r)
	}
	for k, v := range props {
		js["properties"].(bson.M)[k] = v
	}
	return s
}

func categoriesSchema() bson.M {
	return extend(bilingualSchema("name"), []string{"slug"}, bson.M{
		"slug": bson.M{"bsonType": "string", "pattern": "^[a-z0-9]+(?:-[a-z0-9]+)*$"},
	})
}

func productsSchema() bson.M {
	return extend(bilingualSchema("name"), []string{"category_id", "category_slug"}, bson.M{
		"category_id":   bson.M{"bsonType": bson.A{"int", "long"}},
		"category_slug": bson.M{"bsonType": "string", "minLength": 1},
		"image":         bson.M{"bsonType": bson.A{"string", "null"}},
	})
}

func coursesSchema() bson.M {
	return extend(bilingualSchema("title"), []string{"level"}, bson.M{
		"level": bson.M{"enum": bson.A{"beginner", "intermediate", "advanced"}},
	})
}

func contactSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "email", "subject", "message", "status"},
			"properties": bson.M{
				"name":    bson.M{"bsonType": "string", "minLength": 1, "maxLength": 200},
				"email":   bson.M{"bsonType": "string", "minLength": 3},
				"phone":   bson.M{"bsonType": "string", "maxLength": 50},
				"subject": bson.M{"bsonType": "string", "minLength": 1, "maxLength": 300},
				"message": bson.M{"bsonType": "string", "minLength": 1},
				"status":  bson.M{"enum": bson.A{"new", "read", "replied", "archived"}},
			},
		},
	}
}
