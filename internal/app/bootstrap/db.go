// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/bigkoko/kokoadmin/internal/app/store/audit"
	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/tasks"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/uploads"
	"github.com/dalemusser/waffle/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// backendCheckInterval is how often the backend_up gauge is refreshed.
const backendCheckInterval = 30 * time.Second

// ConnectDB connects the audit database (when configured) and builds the
// backend client, image storage and audit logger.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var deps DBDeps

	if appCfg.MetricsEnabled {
		deps.Metrics = prometheus.NewRegistry()
		deps.Metrics.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	be, err := backend.New(appCfg.BackendURL, appCfg.BackendTimeout, logger)
	if err != nil {
		return DBDeps{}, err
	}
	if deps.Metrics != nil {
		be.WithMetrics(backend.NewMetrics(deps.Metrics))
	}
	deps.Backend = be

	if appCfg.MongoURI != "" {
		client, err := connectMongo(ctx, appCfg.MongoURI, logger)
		if err != nil {
			return DBDeps{}, err
		}
		deps.MongoClient = client
		deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
		deps.Audit = audit.New(deps.MongoDatabase)
	} else {
		logger.Warn("mongo_uri is empty; audit events will only be logged")
	}

	images, err := uploads.Open(ctx, uploads.Config{
		Type:        appCfg.StorageType,
		LocalPath:   appCfg.StorageLocalPath,
		LocalURL:    appCfg.StorageLocalURL,
		S3Region:    appCfg.StorageS3Region,
		S3Bucket:    appCfg.StorageS3Bucket,
		S3Prefix:    appCfg.StorageS3Prefix,
		S3PublicURL: appCfg.StorageS3PublicURL,
	})
	if err != nil {
		logger.Error("image storage init failed", zap.Error(err))
		return DBDeps{}, err
	}
	deps.Images = images

	deps.AuditLog = auditlog.New(deps.Audit, logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
		File:  appCfg.AuditLogFile,
	})

	deps.Tasks = tasks.NewScheduler(logger, backgroundJobs(appCfg, deps, logger)...)

	return deps, nil
}

func connectMongo(ctx context.Context, uri string, logger *zap.Logger) (*mongo.Client, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().
		ApplyURI(uri).
		SetAppName("kokoadmin").
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(cctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	logger.Info("connected to MongoDB")
	return client, nil
}

func backgroundJobs(appCfg AppConfig, deps DBDeps, logger *zap.Logger) []tasks.Job {
	var jobs []tasks.Job
	if deps.Audit != nil && appCfg.AuditRetentionDays > 0 {
		keep := time.Duration(appCfg.AuditRetentionDays) * 24 * time.Hour
		jobs = append(jobs, tasks.AuditRetentionJob(deps.Audit, keep, logger))
	}
	if deps.Metrics != nil {
		mon := tasks.NewBackendMonitor(deps.Metrics)
		jobs = append(jobs, mon.Job(deps.Backend, backendCheckInterval, logger))
	}
	return jobs
}

// EnsureSchema creates the audit trail indexes.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Audit == nil {
		return nil
	}
	ictx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()
	if err := deps.Audit.EnsureIndexes(ictx); err != nil {
		logger.Error("audit index creation failed", zap.Error(err))
		return fmt.Errorf("ensure audit indexes: %w", err)
	}
	return nil
}
