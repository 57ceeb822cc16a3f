package login_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bigkoko/kokoadmin/internal/app/features/login"
	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	"github.com/bigkoko/kokoadmin/internal/app/store/authstore"
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/ratelimit"
	"github.com/bigkoko/kokoadmin/internal/testutil"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// render runs fn with the real page templates installed.
func render(t *testing.T, fn func()) {
	t.Helper()
	testutil.BootTemplates(t)
	fn()
}

func token(t *testing.T) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "adm-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newHandler(t *testing.T, fb *testutil.FakeBackend, limiter *ratelimit.LoginLimiter) *login.Handler {
	t.Helper()
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", 24*time.Hour, false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	if limiter == nil {
		limiter = ratelimit.NewLoginLimiter()
	}
	return login.NewHandler(sm, uierrors.NewErrorLogger(logger), authstore.New(fb.Client(t)), limiter, nil, logger)
}

func postLogin(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleLoginPost_Success(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	tok := token(t)
	fb.Router.Post("/auth/login", testutil.Respond(http.StatusOK, map[string]any{
		"adminId":   "adm-1",
		"email":     "ada@bigkoko.com",
		"firstName": "Ada",
		"lastName":  "Obi",
		"role":      "Super Admin",
		"token":     tok,
	}))
	h := newHandler(t, fb, nil)

	rec := httptest.NewRecorder()
	h.HandleLoginPost(rec, postLogin(url.Values{
		"email":    {"  Ada@BigKoko.com "},
		"password": {"secret"},
		"return":   {"/dashboard/orders"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard/orders" {
		t.Errorf("Location = %q", loc)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie")
	}

	var body map[string]string
	fb.LastCall(t).Decode(t, &body)
	if body["email"] != "ada@bigkoko.com" || body["password"] != "secret" {
		t.Errorf("backend body = %v", body)
	}
}

func TestHandleLoginPost_UnsafeReturnFallsBackToDashboard(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Post("/auth/login", testutil.Respond(http.StatusOK, map[string]any{
		"adminId": "adm-1", "email": "ada@bigkoko.com", "role": "admin", "token": token(t),
	}))
	h := newHandler(t, fb, nil)

	rec := httptest.NewRecorder()
	h.HandleLoginPost(rec, postLogin(url.Values{
		"email": {"ada@bigkoko.com"}, "password": {"secret"}, "return": {"https://evil.example/"},
	}))

	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}
}

func TestHandleLoginPost_MissingFields(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	h := newHandler(t, fb, nil)

	rec := httptest.NewRecorder()
	render(t, func() {
		h.HandleLoginPost(rec, postLogin(url.Values{"email": {"ada@bigkoko.com"}}))
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if n := len(fb.Calls()); n != 0 {
		t.Errorf("backend called %d times, want 0", n)
	}
}

func TestHandleLoginPost_BackendRejects(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Post("/auth/login", testutil.Respond(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"}))
	h := newHandler(t, fb, nil)

	rec := httptest.NewRecorder()
	render(t, func() {
		h.HandleLoginPost(rec, postLogin(url.Values{"email": {"ada@bigkoko.com"}, "password": {"nope"}}))
	})

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("no session cookie expected on failure")
	}
}

func TestHandleLoginPost_BackendUnreachable(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	h := newHandler(t, fb, nil)
	fb.Server.Close()

	rec := httptest.NewRecorder()
	render(t, func() {
		h.HandleLoginPost(rec, postLogin(url.Values{"email": {"ada@bigkoko.com"}, "password": {"secret"}}))
	})

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestHandleLoginPost_RateLimited(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Router.Post("/auth/login", testutil.Respond(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"}))
	h := newHandler(t, fb, ratelimit.NewLoginLimiterWithConfig(100, time.Minute, 1, time.Minute))

	form := url.Values{"email": {"ada@bigkoko.com"}, "password": {"nope"}}
	render(t, func() { h.HandleLoginPost(httptest.NewRecorder(), postLogin(form)) })

	rec := httptest.NewRecorder()
	render(t, func() { h.HandleLoginPost(rec, postLogin(form)) })

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if n := len(fb.Calls()); n != 1 {
		t.Errorf("backend called %d times, want 1", n)
	}
}

func TestServeLogin_SignedInRedirects(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	h := newHandler(t, fb, nil)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/login", testutil.AdminUser())
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Errorf("got %d %q, want 303 /dashboard", rec.Code, rec.Header().Get("Location"))
	}
}
