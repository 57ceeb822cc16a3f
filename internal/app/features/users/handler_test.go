package users_test

import (
	"net/http"
	"testing"

	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	"github.com/bigkoko/kokoadmin/internal/app/features/users"
	userstore "github.com/bigkoko/kokoadmin/internal/app/store/users"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/bigkoko/kokoadmin/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, fb *testutil.FakeBackend) *users.Handler {
	t.Helper()
	logger := zap.NewNop()
	return users.NewHandler(userstore.New(fb.Client(t)), uierrors.NewErrorLogger(logger), nil, nil, logger)
}

// render runs fn with the real page templates installed.
func render(t *testing.T, fn func()) {
	t.Helper()
	testutil.BootTemplates(t)
	fn()
}

func TestServeList_RequestsBackendPage(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fx := testutil.NewFixtures(t)
	fb.Router.Get("/users", testutil.Respond(http.StatusOK, map[string]any{
		"users": []models.User{fx.User("customer", true)},
		"total": 31,
	}))
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	render(t, func() {
		h.ServeList(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/dashboard/users?page=3&role=seller", testutil.ModeratorUser()))
	})

	if q := fb.LastCall(t).Query; q != "limit=10&page=3" {
		t.Errorf("backend query = %q", q)
	}
}

func TestHandleActive(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Put("/users", testutil.Respond(http.StatusOK, map[string]string{"message": "User updated successfully"}))
	h := newTestHandler(t, fb)

	req := testutil.NewFormRequest("/dashboard/users/u-1/active", "active=false", testutil.ModeratorUser())
	req = testutil.WithChiURLParam(req, "id", "u-1")
	rec := testutil.NewRecorder()
	h.HandleActive(rec, req)

	rec.AssertRedirect(t, "/dashboard/users")
	call := fb.LastCall(t)
	if call.Query != "userId=u-1" {
		t.Errorf("query = %q", call.Query)
	}
	var body map[string]bool
	call.Decode(t, &body)
	if active, ok := body["active"]; !ok || active {
		t.Errorf("body = %v", body)
	}
}

func TestHandleActive_ExpiredSession(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Put("/users", testutil.Respond(http.StatusUnauthorized, map[string]string{"message": "Token expired"}))
	h := newTestHandler(t, fb)

	req := testutil.NewFormRequest("/dashboard/users/u-1/active", "active=true", testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", "u-1")
	rec := testutil.NewRecorder()
	h.HandleActive(rec, req)

	rec.AssertRedirect(t, uierrors.ExpiredURL)
}

func TestHandlePlan(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Post("/plan", testutil.Respond(http.StatusOK, map[string]string{"message": "ok"}))
	h := newTestHandler(t, fb)

	req := testutil.NewFormRequest("/dashboard/users/u-7/plan", "plan=Premium", testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", "u-7")
	rec := testutil.NewRecorder()
	h.HandlePlan(rec, req)

	rec.AssertRedirect(t, "/dashboard/users")
	var body models.PlanChange
	fb.LastCall(t).Decode(t, &body)
	if body.Plan != "premium" || body.UserID != "u-7" {
		t.Errorf("plan body = %+v", body)
	}
}

func TestHandleDelete_ModeratorForbidden(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	h := newTestHandler(t, fb)

	req := testutil.NewFormRequest("/dashboard/users/u-1/delete", "", testutil.ModeratorUser())
	req = testutil.WithChiURLParam(req, "id", "u-1")
	rec := testutil.NewRecorder()
	render(t, func() { h.HandleDelete(rec, req) })

	rec.AssertStatus(t, http.StatusForbidden)
	if n := len(fb.Calls()); n != 0 {
		t.Errorf("backend called %d times", n)
	}
}

func TestHandleDelete(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Delete("/users", testutil.Respond(http.StatusOK, map[string]string{"message": "User deleted successfully"}))
	h := newTestHandler(t, fb)

	req := testutil.NewFormRequest("/dashboard/users/u-1/delete", "return=/dashboard/users?page=2", testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", "u-1")
	rec := testutil.NewRecorder()
	h.HandleDelete(rec, req)

	rec.AssertRedirect(t, "/dashboard/users?page=2")
	if call := fb.LastCall(t); call.Method != http.MethodDelete || call.Query != "userId=u-1" {
		t.Errorf("backend call = %s ?%s", call.Method, call.Query)
	}
}
