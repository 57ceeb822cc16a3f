// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for KokoAdmin.
//
// These values come from environment variables (KOKOADMIN_*), configuration
// files, or command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig
// covers ports, TLS, log level and similar framework settings; everything
// specific to the dashboard lives here.
type AppConfig struct {
	// Marketplace backend every screen reads from and writes to
	BackendURL     string
	BackendTimeout time.Duration

	// MongoDB holds the audit trail only. Empty MongoURI disables it.
	MongoURI      string
	MongoDatabase string

	// Session management configuration
	SessionKey    string // Secret for session and CSRF keys (must be strong in production)
	SessionName   string // Cookie name for sessions (default: kokoadmin-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Blog image storage
	StorageType      string // "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./uploads")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/uploads")

	// S3 configuration (only used if StorageType is "s3")
	StorageS3Region    string
	StorageS3Bucket    string
	StorageS3Prefix    string // Key prefix (e.g., "kokoadmin/")
	StorageS3PublicURL string // Public base URL for objects (CDN or bucket website)

	// Audit logging
	AuditLogAuth       string // all|db|log|off
	AuditLogAdmin      string // all|db|log|off
	AuditLogFile       string // optional rotating JSON file sink
	AuditRetentionDays int    // 0 keeps events forever

	MetricsEnabled bool // expose /metrics
	PageSize       int  // rows per list page
	APIRateLimit   int  // /api requests per minute per client IP
}
