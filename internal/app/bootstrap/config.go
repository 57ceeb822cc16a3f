// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/uploads"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// minProdSessionKey is the shortest session secret accepted in prod.
const minProdSessionKey = 32

// appConfigKeys defines the configuration keys for KokoAdmin.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: backend_url, session_name, etc.
//   - Environment variables: KOKOADMIN_BACKEND_URL, KOKOADMIN_SESSION_NAME, etc.
//   - Command-line flags: --backend_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "backend_url", Default: "http://localhost:3001/api/admin", Desc: "Marketplace backend base URL"},
	{Name: "backend_timeout", Default: "15s", Desc: "Per-request timeout for backend calls"},

	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI for the audit trail (blank disables it)"},
	{Name: "mongo_database", Default: "kokoadmin", Desc: "MongoDB database name"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "kokoadmin-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Blog image storage
	{Name: "storage_type", Default: uploads.TypeLocal, Desc: "Storage backend: 'local' or 's3'"},
	{Name: "storage_local_path", Default: "./uploads", Desc: "Local storage path for uploaded images"},
	{Name: "storage_local_url", Default: "/uploads", Desc: "URL prefix for serving local images"},
	{Name: "storage_s3_region", Default: "", Desc: "AWS region for S3"},
	{Name: "storage_s3_bucket", Default: "", Desc: "S3 bucket name"},
	{Name: "storage_s3_prefix", Default: "kokoadmin/", Desc: "S3 key prefix"},
	{Name: "storage_s3_public_url", Default: "", Desc: "Public base URL for S3 objects (blank uses the bucket URL)"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: auditlog.ModeAll, Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_admin", Default: auditlog.ModeAll, Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_file", Default: "", Desc: "Optional rotating JSON file for audit events"},
	{Name: "audit_retention_days", Default: 180, Desc: "Delete audit events older than this many days (0 keeps them)"},

	{Name: "metrics_enabled", Default: false, Desc: "Expose Prometheus metrics at /metrics"},
	{Name: "page_size", Default: 10, Desc: "Rows per list page"},
	{Name: "api_rate_limit", Default: 120, Desc: "/api requests per minute per client IP"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env and config files,
// WAFFLE_* / KOKOADMIN_* environment variables and command-line flags,
// merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "KOKOADMIN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		BackendURL:     strings.TrimSpace(appValues.String("backend_url")),
		BackendTimeout: appValues.Duration("backend_timeout", 15*time.Second),

		MongoURI:      strings.TrimSpace(appValues.String("mongo_uri")),
		MongoDatabase: appValues.String("mongo_database"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		StorageType:        strings.ToLower(strings.TrimSpace(appValues.String("storage_type"))),
		StorageLocalPath:   appValues.String("storage_local_path"),
		StorageLocalURL:    appValues.String("storage_local_url"),
		StorageS3Region:    appValues.String("storage_s3_region"),
		StorageS3Bucket:    appValues.String("storage_s3_bucket"),
		StorageS3Prefix:    appValues.String("storage_s3_prefix"),
		StorageS3PublicURL: appValues.String("storage_s3_public_url"),

		AuditLogAuth:       strings.ToLower(appValues.String("audit_log_auth")),
		AuditLogAdmin:      strings.ToLower(appValues.String("audit_log_admin")),
		AuditLogFile:       appValues.String("audit_log_file"),
		AuditRetentionDays: appValues.Int("audit_retention_days"),

		MetricsEnabled: appValues.Bool("metrics_enabled"),
		PageSize:       appValues.Int("page_size"),
		APIRateLimit:   appValues.Int("api_rate_limit"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// All problems are reported together.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	errs := validateApp(coreCfg.Env, appCfg)
	if len(errs) == 0 {
		return nil
	}
	for _, err := range errs {
		logger.Error("invalid configuration", zap.Error(err))
	}
	return errors.Join(errs...)
}

func validateApp(env string, c AppConfig) []error {
	var errs []error

	if c.BackendURL == "" {
		errs = append(errs, errors.New("backend_url is required"))
	} else if u, err := url.Parse(c.BackendURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("backend_url must be an absolute http(s) URL, got %q", c.BackendURL))
	}
	if c.BackendTimeout <= 0 {
		errs = append(errs, errors.New("backend_timeout must be positive"))
	}

	if c.MongoURI != "" {
		if err := wafflemongo.ValidateURI(c.MongoURI); err != nil {
			errs = append(errs, fmt.Errorf("invalid MongoDB URI: %w", err))
		}
	}

	if env == "prod" && len(c.SessionKey) < minProdSessionKey {
		errs = append(errs, fmt.Errorf("session_key must be at least %d characters in prod", minProdSessionKey))
	}

	switch c.StorageType {
	case uploads.TypeLocal:
		if strings.TrimSpace(c.StorageLocalPath) == "" {
			errs = append(errs, errors.New("storage_local_path is required for local storage"))
		}
		if !strings.HasPrefix(c.StorageLocalURL, "/") {
			errs = append(errs, errors.New("storage_local_url must start with /"))
		}
	case uploads.TypeS3:
		if c.StorageS3Bucket == "" || c.StorageS3Region == "" {
			errs = append(errs, errors.New("storage_s3_bucket and storage_s3_region are required for s3 storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage_type must be %q or %q, got %q", uploads.TypeLocal, uploads.TypeS3, c.StorageType))
	}

	for key, mode := range map[string]string{"audit_log_auth": c.AuditLogAuth, "audit_log_admin": c.AuditLogAdmin} {
		if !slices.Contains(auditlog.Modes, mode) {
			errs = append(errs, fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(auditlog.Modes, ", "), mode))
		}
	}
	if c.AuditRetentionDays < 0 {
		errs = append(errs, errors.New("audit_retention_days cannot be negative"))
	}

	if c.PageSize < 1 || c.PageSize > 100 {
		errs = append(errs, fmt.Errorf("page_size must be between 1 and 100, got %d", c.PageSize))
	}
	if c.APIRateLimit < 1 {
		errs = append(errs, errors.New("api_rate_limit must be at least 1"))
	}

	return errs
}
