package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/google/uuid"
)

// TestUser represents a signed-in staff member for handler tests.
type TestUser struct {
	ID    string
	Name  string
	Email string
	Role  string
	Token string
}

// SuperAdminUser returns a TestUser with the superadmin role.
func SuperAdminUser() TestUser {
	return TestUser{ID: uuid.NewString(), Name: "Test Owner", Email: "owner@test.com", Role: "superadmin", Token: "tok-super"}
}

// AdminUser returns a TestUser with the admin role.
func AdminUser() TestUser {
	return TestUser{ID: uuid.NewString(), Name: "Test Admin", Email: "admin@test.com", Role: "admin", Token: "tok-admin"}
}

// ModeratorUser returns a TestUser with the moderator role.
func ModeratorUser() TestUser {
	return TestUser{ID: uuid.NewString(), Name: "Test Moderator", Email: "mod@test.com", Role: "moderator", Token: "tok-mod"}
}

// WithUser adds a user to the request context for testing authenticated handlers.
// This bypasses the session middleware and injects the user and backend token directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	r = auth.WithTestUser(r, &auth.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: user.Token,
	})
	if user.Token != "" {
		r = r.WithContext(backend.WithToken(r.Context(), user.Token))
	}
	return r
}

// NewAuthenticatedRequest creates an HTTP request with a user in context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	return WithUser(httptest.NewRequest(method, target, nil), user)
}

// NewFormRequest creates a POST request carrying an urlencoded form body.
func NewFormRequest(target, body string, user TestUser) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return WithUser(req, user)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	if location := r.Header().Get("Location"); location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
