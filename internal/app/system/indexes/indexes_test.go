package indexes

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestKeySig(t *testing.T) {
	got := keySig(bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}})
	if got != "status:1,created_at:-1" {
		t.Errorf("keySig = %q", got)
	}
}

func TestIndexModel(t *testing.T) {
	m := index{name: "idx_ratelimit_ttl", keys: asc("last_attempt"), ttl: 24 * time.Hour}.model()
	if *m.Options.Name != "idx_ratelimit_ttl" {
		t.Errorf("name = %q", *m.Options.Name)
	}
	if m.Options.ExpireAfterSeconds == nil || *m.Options.ExpireAfterSeconds != 86400 {
		t.Errorf("ExpireAfterSeconds = %v", m.Options.ExpireAfterSeconds)
	}
	if m.Options.Unique != nil {
		t.Errorf("Unique = %v, want unset", *m.Options.Unique)
	}

	u := index{name: "uniq_product_categories_slug", keys: asc("slug"), unique: true}.model()
	if u.Options.Unique == nil || !*u.Options.Unique {
		t.Error("unique index lost its Unique option")
	}
}

func TestWantedNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, w := range wanted {
		for _, ix := range w.indexes {
			if seen[ix.name] {
				t.Errorf("duplicate index name %q", ix.name)
			}
			seen[ix.name] = true
			if len(ix.keys) == 0 {
				t.Errorf("%s has no keys", ix.name)
			}
		}
	}
}
