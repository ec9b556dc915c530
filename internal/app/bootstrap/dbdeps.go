// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/hydrasite/internal/app/system/contentclient"
	"github.com/dalemusser/hydrasite/internal/app/system/mailer"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database and backend dependencies for this WAFFLE app.
//
// It is created in ConnectDB and passed to EnsureSchema, Startup,
// BuildHandler and Shutdown. The Mongo fields and FileStorage are nil when
// the content API is not served by this process.
type DBDeps struct {
	// MongoDB client and database
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// FileStorage resolves product and project image paths to URLs
	FileStorage storage.Store

	// Mailer for contact notifications
	Mailer *mailer.Mailer

	// Content is the client the site pages read through
	Content *contentclient.Client
}
