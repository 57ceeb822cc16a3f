// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/bigkoko/kokoadmin/internal/app/store/audit"
	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/tasks"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the database and back-end dependencies for the app.
type DBDeps struct {
	// Audit trail database; both nil when mongo_uri is empty.
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Backend  *backend.Client
	Images   storage.Store
	Audit    *audit.Store // nil without MongoDB
	AuditLog *auditlog.Logger

	// Metrics is nil unless metrics_enabled is set.
	Metrics *prometheus.Registry
	Tasks   *tasks.Scheduler
}
