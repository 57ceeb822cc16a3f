package dashboard_test

import (
	"net/http"
	"testing"

	"github.com/bigkoko/kokoadmin/internal/app/features/dashboard"
	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	contactstore "github.com/bigkoko/kokoadmin/internal/app/store/contacts"
	membershipstore "github.com/bigkoko/kokoadmin/internal/app/store/memberships"
	statsstore "github.com/bigkoko/kokoadmin/internal/app/store/stats"
	"github.com/bigkoko/kokoadmin/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, fb *testutil.FakeBackend) *dashboard.Handler {
	t.Helper()
	c := fb.Client(t)
	logger := zap.NewNop()
	return dashboard.NewHandler(statsstore.New(c), contactstore.New(c), membershipstore.New(c), uierrors.NewErrorLogger(logger), logger)
}

// render runs fn with the real page templates installed.
func render(t *testing.T, fn func()) {
	t.Helper()
	testutil.BootTemplates(t)
	fn()
}

func TestServeDashboard_FetchesConcurrently(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Get("/stats", testutil.Respond(http.StatusOK, map[string]any{"data": map[string]any{}}))
	fb.Router.Get("/contacts", testutil.Respond(http.StatusOK, []any{}))
	fb.Router.Get("/membership", testutil.Respond(http.StatusInternalServerError, map[string]string{"message": "down"}))
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/dashboard", testutil.AdminUser())
	render(t, func() { h.ServeDashboard(rec, req) })

	if rec.Code >= 400 {
		t.Errorf("a failed counter must not fail the page, got %d", rec.Code)
	}
	seen := map[string]bool{}
	for _, c := range fb.Calls() {
		seen[c.Path] = true
		if c.Auth != "Bearer tok-admin" {
			t.Errorf("%s sent Authorization %q", c.Path, c.Auth)
		}
	}
	for _, p := range []string{"/stats", "/contacts", "/membership"} {
		if !seen[p] {
			t.Errorf("expected a backend call to %s", p)
		}
	}
}

func TestServeDashboard_ExpiredToken(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Get("/stats", testutil.Respond(http.StatusUnauthorized, map[string]string{"message": "jwt expired"}))
	fb.Router.Get("/contacts", testutil.Respond(http.StatusOK, []any{}))
	fb.Router.Get("/membership", testutil.Respond(http.StatusOK, []any{}))
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	h.ServeDashboard(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/dashboard", testutil.AdminUser()))

	rec.AssertRedirect(t, uierrors.ExpiredURL)
}
