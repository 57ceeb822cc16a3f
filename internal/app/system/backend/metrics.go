// internal/app/system/backend/metrics.go
package backend

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records backend call counts and latencies.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the backend collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kokoadmin",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Backend requests by resource, method and status code.",
		}, []string{"resource", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "kokoadmin",
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Backend request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource", "method"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) observe(path, method string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	res := resourceOf(path)
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	m.requests.WithLabelValues(res, method, label).Inc()
	m.duration.WithLabelValues(res, method).Observe(elapsed.Seconds())
}

// resourceOf returns the first path segment, keeping label cardinality
// independent of record IDs.
func resourceOf(path string) string {
	p := strings.Trim(path, "/")
	if p == "" {
		return "root"
	}
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}
