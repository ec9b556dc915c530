// Package testutil holds the shared helpers of the package tests: throwaway
// MongoDB databases, request builders and the template engine.
package testutil

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/hydrasite/internal/app/system/indexes"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultMongoURI is used unless HYDRASITE_TEST_MONGO_URI is set.
const DefaultMongoURI = "mongodb://localhost:27017"

var (
	clientOnce sync.Once
	client     *mongo.Client
	clientErr  error
)

func mongoURI() string {
	if uri := os.Getenv("HYDRASITE_TEST_MONGO_URI"); uri != "" {
		return uri
	}
	return DefaultMongoURI
}

// sharedClient connects once per test binary.
func sharedClient() (*mongo.Client, error) {
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		opts := options.Client().
			ApplyURI(mongoURI()).
			SetMaxPoolSize(100).
			SetConnectTimeout(3 * time.Second).
			SetServerSelectionTimeout(3 * time.Second)
		client, clientErr = mongo.Connect(ctx, opts)
		if clientErr == nil {
			clientErr = client.Ping(ctx, nil)
		}
	})
	return client, clientErr
}

// SetupTestDB returns an empty database with the production indexes, named
// after the test and dropped when it ends. The test is skipped when MongoDB
// is unreachable.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	c, err := sharedClient()
	if err != nil {
		t.Skipf("MongoDB not available at %s: %v", mongoURI(), err)
	}
	db := c.Database(dbName(t.Name()))

	ctx, cancel := TestContext()
	defer cancel()
	if err := db.Drop(ctx); err != nil {
		t.Fatalf("drop test database: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("create indexes: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Logf("drop test database on cleanup: %v", err)
		}
	})
	return db
}

// dbName keeps names under MongoDB's 63 byte limit. Long test names are
// cut and suffixed with a hash so subtests stay distinct.
func dbName(test string) string {
	const prefix = "hydrasite_test_"
	clean := strings.Map(func(r rune) rune {
		if r < 128 && (r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return r
		}
		return '_'
	}, test)
	if len(prefix)+len(clean) <= 63 {
		return prefix + clean
	}
	sum := sha1.Sum([]byte(test))
	return prefix + clean[:36] + "_" + hex.EncodeToString(sum[:5])
}

// TestContext returns a context bounded for one test's database work.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
