package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/hydrasite/internal/app/system/contentclient"
	"github.com/dalemusser/hydrasite/internal/app/system/indexes"
	"github.com/dalemusser/hydrasite/internal/app/system/mailer"
	"github.com/dalemusser/hydrasite/internal/app/system/seeding"
	"github.com/dalemusser/hydrasite/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

// ConnectDB builds the content API client every page handler reads from.
// When this process also serves the API it connects MongoDB, the image
// store and the contact mailer.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	content, err := contentclient.New(contentclient.Options{
		BaseURL: appCfg.APIBaseURL,
		Timeout: appCfg.APITimeout,
	})
	if err != nil {
		return DBDeps{}, err
	}
	logger.Info("content API client ready",
		zap.String("base_url", content.BaseURL()),
		zap.Duration("timeout", appCfg.APITimeout),
	)

	if !appCfg.APIEnabled {
		logger.Info("content API not served by this process; skipping MongoDB")
		return DBDeps{Content: content}, nil
	}

	poolCfg := wafflemongo.DefaultPoolConfig()
	if appCfg.MongoMaxPoolSize > 0 {
		poolCfg.MaxPoolSize = appCfg.MongoMaxPoolSize
	}
	if appCfg.MongoMinPoolSize > 0 {
		poolCfg.MinPoolSize = appCfg.MongoMinPoolSize
	}

	client, err := wafflemongo.ConnectWithPool(ctx, appCfg.MongoURI, appCfg.MongoDatabase, poolCfg)
	if err != nil {
		return DBDeps{}, err
	}

	db := client.Database(appCfg.MongoDatabase)

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", poolCfg.MaxPoolSize),
		zap.Uint64("min_pool_size", poolCfg.MinPoolSize),
	)

	store, err := newFileStore(ctx, appCfg, logger)
	if err != nil {
		return DBDeps{}, err
	}

	mail := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		User:     appCfg.MailSMTPUser,
		Pass:     appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)
	logger.Info("contact mailer configured",
		zap.Bool("enabled", mail.Enabled()),
		zap.String("host", appCfg.MailSMTPHost),
		zap.Int("port", appCfg.MailSMTPPort),
	)

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		FileStorage:   store,
		Mailer:        mail,
		Content:       content,
	}, nil
}

// newFileStore opens the backend that holds uploaded content images. The
// API turns stored image paths into public URLs through it.
func newFileStore(ctx context.Context, appCfg AppConfig, logger *zap.Logger) (storage.Store, error) {
	switch appCfg.StorageType {
	case "s3":
		store, err := storage.NewS3(ctx, storage.S3Config{
			Region:                   appCfg.StorageS3Region,
			Bucket:                   appCfg.StorageS3Bucket,
			Prefix:                   appCfg.StorageS3Prefix,
			CloudFrontURL:            appCfg.StorageCFURL,
			CloudFrontKeyPairID:      appCfg.StorageCFKeyPairID,
			CloudFrontPrivateKeyPath: appCfg.StorageCFKeyPath,
		})
		if err != nil {
			return nil, fmt.Errorf("image storage (s3): %w", err)
		}
		logger.Info("image storage: s3",
			zap.String("bucket", appCfg.StorageS3Bucket),
			zap.String("prefix", appCfg.StorageS3Prefix),
			zap.Bool("cloudfront", appCfg.StorageCFURL != ""),
		)
		return store, nil
	case "local", "":
		store, err := storage.NewLocal(storage.LocalConfig{
			BasePath: appCfg.StorageLocalPath,
			BaseURL:  appCfg.StorageLocalURL,
		})
		if err != nil {
			return nil, fmt.Errorf("image storage (local): %w", err)
		}
		logger.Info("image storage: local",
			zap.String("path", appCfg.StorageLocalPath),
			zap.String("url", appCfg.StorageLocalURL),
		)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", appCfg.StorageType)
	}
}

// EnsureSchema prepares the content collections and seeds them. It is a
// no-op when the API is served elsewhere.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase
	if db == nil {
		return nil
	}

	// Validators create the collections the indexes go on.
	logger.Info("ensuring collections and validators")
	if err := validators.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure validators", zap.Error(err))
		return err
	}

	logger.Info("ensuring database indexes")
	if err := indexes.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure indexes", zap.Error(err))
		return err
	}

	if appCfg.SeedContent {
		logger.Info("seeding site content")
		if err := seeding.SeedAll(ctx, db, logger); err != nil {
			logger.Error("failed to seed site content", zap.Error(err))
			return err
		}
	}

	logger.Info("database schema ensured successfully")
	return nil
}
