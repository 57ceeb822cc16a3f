// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/bigkoko/kokoadmin/internal/app/resources"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("count", n), zap.Any("timeouts", timeouts.Current()))
	}
	paging.SetSize(appCfg.PageSize)

	if deps.Tasks != nil {
		deps.Tasks.Start()
	}
	return nil
}
