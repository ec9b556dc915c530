// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/hydrasite/internal/app/system/inputval"
	"github.com/dalemusser/hydrasite/internal/app/system/network"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "HYDRASITE"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, api_base_url, etc.
//   - Environment variables: HYDRASITE_MONGO_URI, HYDRASITE_API_BASE_URL, etc.
//   - Command-line flags: --mongo_uri, --api_base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "hydrasite", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Content API
	{Name: "api_enabled", Default: true, Desc: "Serve the content API under /api from MongoDB"},
	{Name: "api_base_url", Default: "http://localhost:8080/api", Desc: "Content API base URL the site reads from"},
	{Name: "api_timeout", Default: "8s", Desc: "Per-call timeout for content API fetches"},
	{Name: "api_page_size", Default: 100, Desc: "Default page size for API list responses (max 500)"},
	{Name: "api_cors_origins", Default: "", Desc: "Comma-separated origins allowed to call the API (blank allows any)"},
	{Name: "trusted_proxies", Default: "", Desc: "Comma-separated proxy IPs or CIDRs allowed to set X-Forwarded-For (loopback is always trusted)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Flash cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "hydrasite-flash", Desc: "Flash cookie name"},
	{Name: "session_domain", Default: "", Desc: "Flash cookie domain (blank means current host)"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},

	{Name: "default_locale", Default: "en", Desc: "Default language: 'en' or 'ar'"},

	// File storage configuration
	{Name: "storage_type", Default: "local", Desc: "Storage backend: 'local' or 's3'"},
	{Name: "storage_local_path", Default: "./media", Desc: "Local storage path for images"},
	{Name: "storage_local_url", Default: "/media", Desc: "URL prefix for serving local files"},

	// S3/CloudFront configuration
	{Name: "storage_s3_region", Default: "", Desc: "AWS region for S3"},
	{Name: "storage_s3_bucket", Default: "", Desc: "S3 bucket name"},
	{Name: "storage_s3_prefix", Default: "media/", Desc: "S3 key prefix"},
	{Name: "storage_cf_url", Default: "", Desc: "CloudFront distribution URL"},
	{Name: "storage_cf_keypair_id", Default: "", Desc: "CloudFront key pair ID"},
	{Name: "storage_cf_key_path", Default: "", Desc: "Path to CloudFront private key file"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "", Desc: "SMTP server host (blank disables contact e-mail)"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@hydratech-eg.com", Desc: "From email address"},
	{Name: "mail_from_name", Default: "Hydra Tech", Desc: "From display name"},

	// Contact endpoint
	{Name: "contact_auto_reply", Default: true, Desc: "Send an acknowledgement to the sender"},
	{Name: "contact_rate_limit_enabled", Default: true, Desc: "Limit contact submissions per client IP"},
	{Name: "contact_rate_limit_attempts", Default: 5, Desc: "Contact messages allowed per window"},
	{Name: "contact_rate_limit_window", Default: "15m", Desc: "Window for counting contact messages"},
	{Name: "contact_rate_limit_lockout", Default: "15m", Desc: "Lockout after the allowance is used"},

	{Name: "base_url", Default: "http://localhost:8080", Desc: "Public site URL for canonical links"},
	{Name: "seed_content", Default: true, Desc: "Seed the initial catalog on startup"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, HYDRASITE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		// Content API
		APIEnabled:     appValues.Bool("api_enabled"),
		APIBaseURL:     appValues.String("api_base_url"),
		APITimeout:     appValues.Duration("api_timeout", 8*time.Second),
		APIPageSize:    appValues.Int("api_page_size"),
		APICORSOrigins: appValues.String("api_cors_origins"),
		TrustedProxies: appValues.String("trusted_proxies"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		CSRFKey:       appValues.String("csrf_key"),
		DefaultLocale: appValues.String("default_locale"),

		// File storage
		StorageType:      appValues.String("storage_type"),
		StorageLocalPath: appValues.String("storage_local_path"),
		StorageLocalURL:  appValues.String("storage_local_url"),

		// S3/CloudFront
		StorageS3Region:    appValues.String("storage_s3_region"),
		StorageS3Bucket:    appValues.String("storage_s3_bucket"),
		StorageS3Prefix:    appValues.String("storage_s3_prefix"),
		StorageCFURL:       appValues.String("storage_cf_url"),
		StorageCFKeyPairID: appValues.String("storage_cf_keypair_id"),
		StorageCFKeyPath:   appValues.String("storage_cf_key_path"),

		// Email/SMTP
		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),

		// Contact endpoint
		ContactAutoReply:         appValues.Bool("contact_auto_reply"),
		ContactRateLimitEnabled:  appValues.Bool("contact_rate_limit_enabled"),
		ContactRateLimitAttempts: appValues.Int("contact_rate_limit_attempts"),
		ContactRateLimitWindow:   appValues.Duration("contact_rate_limit_window", 15*time.Minute),
		ContactRateLimitLockout:  appValues.Duration("contact_rate_limit_lockout", 15*time.Minute),

		BaseURL:     appValues.String("base_url"),
		SeedContent: appValues.Bool("seed_content"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(appCfg); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}
	return nil
}

// validateAppConfig holds the checks that do not need a logger.
func validateAppConfig(appCfg AppConfig) error {
	if appCfg.APIEnabled {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.ContactRateLimitEnabled && appCfg.ContactRateLimitAttempts <= 0 {
			return fmt.Errorf("contact_rate_limit_attempts must be positive, got %d", appCfg.ContactRateLimitAttempts)
		}
	}
	if !inputval.IsValidHTTPURL(appCfg.APIBaseURL) {
		return fmt.Errorf("api_base_url must be an absolute http(s) URL, got %q", appCfg.APIBaseURL)
	}
	if !inputval.IsValidHTTPURL(appCfg.BaseURL) {
		return fmt.Errorf("base_url must be an absolute http(s) URL, got %q", appCfg.BaseURL)
	}
	if !inputval.IsValidLocale(appCfg.DefaultLocale) {
		return fmt.Errorf("default_locale must be 'en' or 'ar', got %q", appCfg.DefaultLocale)
	}
	if _, err := network.NewTrusted(splitList(appCfg.TrustedProxies)...); err != nil {
		return fmt.Errorf("trusted_proxies: %w", err)
	}
	switch appCfg.StorageType {
	case "", "local", "s3":
	default:
		return fmt.Errorf("unknown storage type: %s", appCfg.StorageType)
	}
	return nil
}
