package orders_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	"github.com/bigkoko/kokoadmin/internal/app/features/orders"
	orderstore "github.com/bigkoko/kokoadmin/internal/app/store/orders"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/bigkoko/kokoadmin/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, fb *testutil.FakeBackend) *orders.Handler {
	t.Helper()
	logger := zap.NewNop()
	return orders.NewHandler(orderstore.New(fb.Client(t)), uierrors.NewErrorLogger(logger), nil, nil, logger)
}

// render runs fn with the real page templates installed.
func render(t *testing.T, fn func()) {
	t.Helper()
	testutil.BootTemplates(t)
	fn()
}

func statusRequest(id, status string) *http.Request {
	form := url.Values{"status": {status}, "from": {models.OrderPending}, "return": {"/dashboard/orders?page=2"}}
	req := testutil.NewFormRequest("/dashboard/orders/"+id+"/status", form.Encode(), testutil.ModeratorUser())
	return testutil.WithChiURLParam(req, "id", id)
}

func TestHandleStatus_Updates(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Patch("/orders/{id}", testutil.Respond(http.StatusOK, map[string]string{}))
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	h.HandleStatus(rec, statusRequest("o-1", "delivered"))

	rec.AssertRedirect(t, "/dashboard/orders?page=2")
	call := fb.LastCall(t)
	if call.Method != http.MethodPatch || call.Path != "/orders/o-1" {
		t.Fatalf("backend call = %s %s", call.Method, call.Path)
	}
	if call.Auth != "Bearer tok-mod" {
		t.Errorf("Authorization = %q", call.Auth)
	}
	var body map[string]string
	call.Decode(t, &body)
	if body["status"] != models.OrderDelivered {
		t.Errorf("status sent = %q", body["status"])
	}
}

func TestHandleStatus_InvalidStatus(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	h.HandleStatus(rec, statusRequest("o-1", "Lost"))

	rec.AssertRedirect(t, "/dashboard/orders?page=2")
	if n := len(fb.Calls()); n != 0 {
		t.Errorf("backend called %d times", n)
	}
}

func TestHandleStatus_HTMXError(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Patch("/orders/{id}", testutil.Respond(http.StatusConflict, map[string]string{"message": "Order already delivered"}))
	h := newTestHandler(t, fb)

	req := statusRequest("o-1", models.OrderCancelled)
	req.Header.Set("HX-Request", "true")
	rec := testutil.NewRecorder()
	h.HandleStatus(rec, req)

	rec.AssertStatus(t, http.StatusConflict)
	if !strings.Contains(rec.Body.String(), "Order already delivered") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandleStatus_SessionExpired(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Patch("/orders/{id}", testutil.Respond(http.StatusUnauthorized, map[string]string{"message": "jwt expired"}))
	h := newTestHandler(t, fb)

	rec := testutil.NewRecorder()
	h.HandleStatus(rec, statusRequest("o-1", models.OrderShipped))

	rec.AssertRedirect(t, uierrors.ExpiredURL)
}

func TestServeList_BackendDown(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Get("/orders", testutil.Respond(http.StatusInternalServerError, map[string]string{"message": "boom"}))
	h := newTestHandler(t, fb)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/dashboard/orders", testutil.AdminUser())
	rec := testutil.NewRecorder()
	render(t, func() { h.ServeList(rec, req) })

	rec.AssertStatus(t, http.StatusInternalServerError)
}

func TestServeView_NotFound(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Get("/orders/{id}", testutil.Respond(http.StatusNotFound, map[string]string{"message": "Order not found"}))
	h := newTestHandler(t, fb)

	req := testutil.WithChiURLParam(testutil.NewAuthenticatedRequest(http.MethodGet, "/dashboard/orders/x", testutil.AdminUser()), "id", "x")
	rec := testutil.NewRecorder()
	render(t, func() { h.ServeView(rec, req) })

	rec.AssertStatus(t, http.StatusNotFound)
}
