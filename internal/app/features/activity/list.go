// internal/app/features/activity/list.go
package activity

import (
	"net/http"
	"net/url"
	"time"

	"github.com/bigkoko/kokoadmin/internal/app/store/audit"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"golang.org/x/sync/errgroup"
)

const (
	failedLoginWindow = 24 * time.Hour
	maxFailedLogins   = 5
)

// ServeList handles GET /dashboard/activity.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := parseFilters(r)
	data := listData{
		BaseVM:     viewdata.NewBaseVM(r, "Activity", "/dashboard"),
		Enabled:    h.Audit != nil,
		Category:   f.Category,
		Categories: audit.Categories,
		ExportURL:  "/dashboard/activity/export.csv",
	}
	if f.Start != nil {
		data.Start = f.Start.Format(dateLayout)
	}
	if f.End != nil {
		data.End = f.End.Format(dateLayout)
	}
	if r.URL.RawQuery != "" {
		q, _ := url.ParseQuery(r.URL.RawQuery)
		q.Del("page")
		if enc := q.Encode(); enc != "" {
			data.ExportURL += "?" + enc
		}
	}

	if h.Audit == nil {
		templates.Render(w, r, "activity_list", data)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list activity")
	defer cancel()

	qf := f.query()
	size := paging.Size()
	page := paging.ParsePage(r)

	var (
		total  int64
		events []audit.Event
		failed []audit.Event
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := h.Audit.CountByFilter(gctx, qf)
		total = n
		return err
	})
	g.Go(func() error {
		pq := qf
		pq.Limit = int64(size)
		pq.Offset = int64((page - 1) * size)
		ev, err := h.Audit.Query(gctx, pq)
		events = ev
		return err
	})
	g.Go(func() error {
		ev, err := h.Audit.GetFailedLogins(gctx, time.Now().Add(-failedLoginWindow), maxFailedLogins)
		failed = ev
		return err
	})
	if err := g.Wait(); err != nil {
		h.ErrLog.LogServerError(w, r, "list activity", err, "Failed to load activity.", "/dashboard")
		return
	}

	rg := paging.ComputeRange(page, size, int(total))
	if rg.Page != page {
		// past the end; the clamped page has different rows
		pq := qf
		pq.Limit = int64(size)
		pq.Offset = int64((rg.Page - 1) * size)
		ev, err := h.Audit.Query(ctx, pq)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "list activity", err, "Failed to load activity.", "/dashboard")
			return
		}
		events = ev
	}

	data.Pager = paging.NewPager(r, rg)
	for _, e := range events {
		data.Rows = append(data.Rows, toRow(e))
	}
	for _, e := range failed {
		data.FailedLogins = append(data.FailedLogins, toRow(e))
	}

	templates.Render(w, r, "activity_list", data)
}
