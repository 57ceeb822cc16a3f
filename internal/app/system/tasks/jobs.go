// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	"github.com/bigkoko/kokoadmin/internal/app/store/audit"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// AuditRetentionJob deletes audit events older than keep. It runs every
// six hours.
func AuditRetentionJob(store *audit.Store, keep time.Duration, logger *zap.Logger) Job {
	return Job{
		Name:     "audit-retention",
		Interval: 6 * time.Hour,
		Timeout:  time.Minute,
		Run: func(ctx context.Context) error {
			cutoff := time.Now().UTC().Add(-keep)
			n, err := store.DeleteBefore(ctx, cutoff)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.Info("pruned audit events",
					zap.Int64("count", n),
					zap.Time("before", cutoff))
			}
			return nil
		},
	}
}

// Pinger is anything that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BackendMonitor tracks backend reachability in a gauge.
type BackendMonitor struct {
	up prometheus.Gauge
}

// NewBackendMonitor registers kokoadmin_backend_up on reg.
func NewBackendMonitor(reg prometheus.Registerer) *BackendMonitor {
	p := &BackendMonitor{up: prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "kokoadmin",
		Subsystem: "backend",
		Name:      "up",
		Help:      "1 when the last backend check got an HTTP answer.",
	})}
	reg.MustRegister(p.up)
	return p
}

// Job returns a job that pings target every interval.
func (p *BackendMonitor) Job(target Pinger, interval time.Duration, logger *zap.Logger) Job {
	var wasDown bool
	return Job{
		Name:       "backend-check",
		Interval:   interval,
		RunAtStart: true,
		Timeout:    timeouts.Ping(),
		Run: func(ctx context.Context) error {
			if err := target.Ping(ctx); err != nil {
				p.up.Set(0)
				if !wasDown {
					logger.Warn("backend check failed", zap.Error(err))
				}
				wasDown = true
				return nil
			}
			p.up.Set(1)
			if wasDown {
				logger.Info("backend reachable again")
			}
			wasDown = false
			return nil
		},
	}
}
