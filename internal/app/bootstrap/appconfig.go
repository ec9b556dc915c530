// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// ports, TLS, logging, CORS and body limits; everything specific to the
// site and its content API lives here.
type AppConfig struct {
	// MongoDB connection configuration (only used when the API is served)
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Content API
	APIEnabled     bool          // Serve the content API under /api from MongoDB
	APIBaseURL     string        // Where the site reads content from (absolute http(s) URL)
	APITimeout     time.Duration // Per-call timeout for site fetches
	APIPageSize    int           // Default page size of API list responses
	APICORSOrigins string        // Comma-separated allowed origins (blank allows any)
	TrustedProxies string        // Comma-separated proxy IPs/CIDRs whose X-Forwarded-For is believed

	// Flash cookie (contact form post/redirect/get)
	SessionKey    string // Secret key for signing the flash cookie (must be strong in production)
	SessionName   string // Cookie name for flash messages
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection configuration
	CSRFKey string // Secret key for CSRF token signing (32 bytes, must be strong in production)

	// Language used when neither query, cookie nor Accept-Language decide
	DefaultLocale string

	// File storage configuration (product and project images)
	StorageType      string // Storage backend: "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./media")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/media")

	// S3/CloudFront configuration (only used if StorageType is "s3")
	StorageS3Region    string // AWS region
	StorageS3Bucket    string // S3 bucket name
	StorageS3Prefix    string // Key prefix (e.g., "media/")
	StorageCFURL       string // CloudFront distribution URL
	StorageCFKeyPairID string // CloudFront key pair ID
	StorageCFKeyPath   string // Path to CloudFront private key file

	// Email/SMTP configuration (contact notifications)
	MailSMTPHost string // SMTP server host (blank disables mail)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address
	MailFromName string // From display name

	// Contact endpoint
	ContactAutoReply         bool          // Acknowledge each message to its sender
	ContactRateLimitEnabled  bool          // Limit submissions per client IP
	ContactRateLimitAttempts int           // Messages allowed per window (default: 5)
	ContactRateLimitWindow   time.Duration // Counting window (default: 15m)
	ContactRateLimitLockout  time.Duration // Lockout once the allowance is used (default: 15m)

	// Public site URL for canonical links and JSON-LD
	BaseURL string // e.g., "https://hydratech-eg.com" or "http://localhost:8080"

	// Seed the initial catalog on startup (existing records are kept)
	SeedContent bool
}
