package bootstrap

import (
	"strings"
	"testing"
	"time"

	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/uploads"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func validConfig() AppConfig {
	return AppConfig{
		BackendURL:         "https://api.bigkoko.test/api/admin",
		BackendTimeout:     15 * time.Second,
		MongoDatabase:      "kokoadmin",
		SessionKey:         strings.Repeat("k", 40),
		SessionName:        "kokoadmin-session",
		StorageType:        uploads.TypeLocal,
		StorageLocalPath:   "./uploads",
		StorageLocalURL:    "/uploads",
		AuditLogAuth:       auditlog.ModeAll,
		AuditLogAdmin:      auditlog.ModeDB,
		AuditRetentionDays: 180,
		PageSize:           10,
		APIRateLimit:       120,
	}
}

func TestValidateApp_Valid(t *testing.T) {
	if errs := validateApp("prod", validConfig()); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateApp_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		mutate func(*AppConfig)
		want   string
	}{
		{"missing backend", "dev", func(c *AppConfig) { c.BackendURL = "" }, "backend_url is required"},
		{"relative backend", "dev", func(c *AppConfig) { c.BackendURL = "/api" }, "absolute http(s) URL"},
		{"ftp backend", "dev", func(c *AppConfig) { c.BackendURL = "ftp://files.test" }, "absolute http(s) URL"},
		{"zero timeout", "dev", func(c *AppConfig) { c.BackendTimeout = 0 }, "backend_timeout"},
		{"bad mongo", "dev", func(c *AppConfig) { c.MongoURI = "postgres://nope" }, "invalid MongoDB URI"},
		{"short key in prod", "prod", func(c *AppConfig) { c.SessionKey = "short" }, "session_key"},
		{"unknown storage", "dev", func(c *AppConfig) { c.StorageType = "ftp" }, "storage_type"},
		{"s3 without bucket", "dev", func(c *AppConfig) { c.StorageType = uploads.TypeS3; c.StorageS3Region = "us-east-1" }, "storage_s3_bucket"},
		{"local url", "dev", func(c *AppConfig) { c.StorageLocalURL = "uploads" }, "storage_local_url"},
		{"audit mode", "dev", func(c *AppConfig) { c.AuditLogAdmin = "sometimes" }, "audit_log_admin"},
		{"negative retention", "dev", func(c *AppConfig) { c.AuditRetentionDays = -1 }, "audit_retention_days"},
		{"page size", "dev", func(c *AppConfig) { c.PageSize = 0 }, "page_size"},
		{"rate limit", "dev", func(c *AppConfig) { c.APIRateLimit = 0 }, "api_rate_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			errs := validateApp(tt.env, c)
			if len(errs) == 0 {
				t.Fatal("expected an error")
			}
			var found bool
			for _, err := range errs {
				if strings.Contains(err.Error(), tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not mention %q", errs, tt.want)
			}
		})
	}
}

func TestValidateApp_ShortKeyAllowedInDev(t *testing.T) {
	c := validConfig()
	c.SessionKey = "dev"
	if errs := validateApp("dev", c); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestValidateConfig_JoinsErrors(t *testing.T) {
	c := validConfig()
	c.BackendURL = ""
	c.PageSize = 0
	err := ValidateConfig(&config.CoreConfig{Env: "dev"}, c, zap.NewNop())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "backend_url") || !strings.Contains(err.Error(), "page_size") {
		t.Errorf("error = %v", err)
	}
}

func TestBackgroundJobs(t *testing.T) {
	c := validConfig()
	if jobs := backgroundJobs(c, DBDeps{}, zap.NewNop()); len(jobs) != 0 {
		t.Errorf("no audit store and no metrics should schedule nothing, got %d", len(jobs))
	}
}

func TestEnsureSchema_NoAuditStore(t *testing.T) {
	if err := EnsureSchema(t.Context(), &config.CoreConfig{}, validConfig(), DBDeps{}, zap.NewNop()); err != nil {
		t.Errorf("EnsureSchema: %v", err)
	}
}
