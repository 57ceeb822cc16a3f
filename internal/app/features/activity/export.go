// internal/app/features/activity/export.go
package activity

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/csvutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// maxExportRows caps a single CSV export.
const maxExportRows = 10000

// ServeExportCSV handles GET /dashboard/activity/export.csv with the same
// filters as the list.
func (h *Handler) ServeExportCSV(w http.ResponseWriter, r *http.Request) {
	if h.Audit == nil {
		http.Error(w, "Activity log is not enabled.", http.StatusNotFound)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "activity CSV export")
	defer cancel()

	f := parseFilters(r)
	qf := f.query()
	qf.Limit = maxExportRows

	events, err := h.Audit.Query(ctx, qf)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "activity export failed", err, "Failed to export activity.", "/dashboard/activity")
		return
	}

	csvutil.SetDownloadHeaders(w, fmt.Sprintf("kokoadmin_activity_%s.csv", time.Now().UTC().Format("20060102")))
	cw, err := csvutil.NewWriter(w)
	if err != nil {
		h.Log.Error("CSV write failed (BOM)", zap.Error(err))
		return
	}
	if err := cw.Write("timestamp", "category", "event_type", "actor_id", "actor_email", "target_type", "target_id", "ip", "success", "failure_reason", "details"); err != nil {
		h.Log.Error("CSV write failed (header)", zap.Error(err))
		return
	}
	for _, e := range events {
		success := "false"
		if e.Success {
			success = "true"
		}
		if err := cw.Write(
			e.Timestamp.UTC().Format(time.RFC3339),
			e.Category,
			e.EventType,
			e.ActorID,
			e.ActorEmail,
			e.TargetType,
			e.TargetID,
			e.IP,
			success,
			e.FailureReason,
			detailText(e.Details),
		); err != nil {
			h.Log.Error("CSV write failed (row)", zap.Error(err))
			return
		}
	}
	if err := cw.Flush(); err != nil {
		h.Log.Error("CSV flush failed", zap.Error(err))
		return
	}

	var who string
	if u, ok := auth.CurrentUser(r); ok {
		who = u.Email
	}
	h.Log.Info("activity CSV exported", zap.String("user", who), zap.Int("rows", len(events)))
}
