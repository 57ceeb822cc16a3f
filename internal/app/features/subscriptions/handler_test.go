package subscriptions_test

import (
	"net/http"
	"net/url"
	"testing"

	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	"github.com/bigkoko/kokoadmin/internal/app/features/subscriptions"
	membershipstore "github.com/bigkoko/kokoadmin/internal/app/store/memberships"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/bigkoko/kokoadmin/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, fb *testutil.FakeBackend) *subscriptions.Handler {
	t.Helper()
	logger := zap.NewNop()
	return subscriptions.NewHandler(membershipstore.New(fb.Client(t)), uierrors.NewErrorLogger(logger), nil, nil, logger)
}

// render runs fn with the real page templates installed.
func render(t *testing.T, fn func()) {
	t.Helper()
	testutil.BootTemplates(t)
	fn()
}

func postRequest(action, id string, user testutil.TestUser) *http.Request {
	form := url.Values{"return": {"/dashboard/subscriptions?status=pending"}}
	req := testutil.NewFormRequest("/dashboard/subscriptions/"+id+"/"+action, form.Encode(), user)
	return testutil.WithChiURLParam(req, "id", id)
}

func TestHandleApprove_PostsPlan(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fx := testutil.NewFixtures(t)
	m := fx.Membership("pending")
	fb.Router.Get("/membership", testutil.Respond(http.StatusOK, []models.Membership{fx.Membership("approved"), m}))
	fb.Router.Post("/plan", testutil.Respond(http.StatusOK, map[string]string{"message": "ok"}))
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	h.HandleApprove(rec, postRequest("approve", m.ID, testutil.ModeratorUser()))

	rec.AssertRedirect(t, "/dashboard/subscriptions?status=pending")
	call := fb.LastCall(t)
	if call.Method != http.MethodPost || call.Path != "/plan" {
		t.Fatalf("backend call = %s %s", call.Method, call.Path)
	}
	var body models.PlanChange
	call.Decode(t, &body)
	if body.UserID != m.UserID || body.Plan != m.Plan {
		t.Errorf("body = %+v, want user %s plan %s", body, m.UserID, m.Plan)
	}
}

func TestHandleApprove_UnknownID(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Get("/membership", testutil.Respond(http.StatusOK, []models.Membership{}))
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	h.HandleApprove(rec, postRequest("approve", "missing", testutil.AdminUser()))

	rec.AssertRedirect(t, "/dashboard/subscriptions?status=pending")
	if n := len(fb.Calls()); n != 1 {
		t.Errorf("backend called %d times, want only the list", n)
	}
}

func TestHandleApprove_AlreadyApprovedAnyCase(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	m := testutil.NewFixtures(t).Membership("Approved")
	fb.Router.Get("/membership", testutil.Respond(http.StatusOK, []models.Membership{m}))
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	h.HandleApprove(rec, postRequest("approve", m.ID, testutil.AdminUser()))

	rec.AssertRedirect(t, "/dashboard/subscriptions?status=pending")
	if n := len(fb.Calls()); n != 1 {
		t.Errorf("backend called %d times, want only the list", n)
	}
}

func TestHandleDelete(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Delete("/membership/{id}", testutil.Respond(http.StatusOK, map[string]string{}))
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	h.HandleDelete(rec, postRequest("delete", "m-9", testutil.AdminUser()))

	rec.AssertRedirect(t, "/dashboard/subscriptions?status=pending")
	if call := fb.LastCall(t); call.Path != "/membership/m-9" || call.Method != http.MethodDelete {
		t.Errorf("backend call = %s %s", call.Method, call.Path)
	}
}

func TestHandleDelete_ModeratorForbidden(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	render(t, func() { h.HandleDelete(rec, postRequest("delete", "m-9", testutil.ModeratorUser())) })

	rec.AssertStatus(t, http.StatusForbidden)
	if n := len(fb.Calls()); n != 0 {
		t.Errorf("backend called %d times", n)
	}
}

func TestServeList_BackendDown(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Get("/membership", testutil.Respond(http.StatusBadGateway, map[string]string{"message": "down"}))
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	render(t, func() {
		h.ServeList(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/dashboard/subscriptions", testutil.AdminUser()))
	})

	rec.AssertStatus(t, http.StatusInternalServerError)
}
