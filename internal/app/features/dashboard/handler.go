// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	contactstore "github.com/bigkoko/kokoadmin/internal/app/store/contacts"
	membershipstore "github.com/bigkoko/kokoadmin/internal/app/store/memberships"
	statsstore "github.com/bigkoko/kokoadmin/internal/app/store/stats"
	"github.com/bigkoko/kokoadmin/internal/app/system/format"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Handler struct {
	Log         *zap.Logger
	ErrLog      *uierrors.ErrorLogger
	Stats       *statsstore.Store
	Contacts    *contactstore.Store
	Memberships *membershipstore.Store
}

func NewHandler(
	stats *statsstore.Store,
	contacts *contactstore.Store,
	memberships *membershipstore.Store,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Log:         logger,
		ErrLog:      errLog,
		Stats:       stats,
		Contacts:    contacts,
		Memberships: memberships,
	}
}

type overviewData struct {
	viewdata.BaseVM
	overview
}

// ServeDashboard renders the overview. Stats are required; the unreplied
// and pending counters are best effort and show "n/a" when their fetch fails.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "overview fan-out")
	defer cancel()

	var stats models.Stats
	unreplied, pending := -1, -1

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = h.Stats.Get(gctx)
		return err
	})
	// Counter failures are logged, never returned, so they cannot cancel
	// the stats fetch.
	g.Go(func() error {
		n, err := h.Contacts.CountUnreplied(gctx)
		if err != nil {
			h.Log.Warn("overview: count unreplied contacts", zap.Error(err))
			return nil
		}
		unreplied = n
		return nil
	})
	g.Go(func() error {
		n, err := h.Memberships.CountPending(gctx)
		if err != nil {
			h.Log.Warn("overview: count pending subscriptions", zap.Error(err))
			return nil
		}
		pending = n
		return nil
	})

	if err := g.Wait(); err != nil {
		h.ErrLog.LogBackend(w, r, "load stats", err, "Failed to load dashboard stats.", "/dashboard")
		return
	}

	templates.Render(w, r, "dashboard_overview", overviewData{
		BaseVM:   viewdata.NewBaseVM(r, "Dashboard", "/dashboard"),
		overview: buildOverview(stats, unreplied, pending),
	})
}

func countOrNA(n int) string {
	if n < 0 {
		return "n/a"
	}
	return format.Count(int64(n))
}
