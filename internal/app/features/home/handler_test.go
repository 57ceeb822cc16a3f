package home_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bigkoko/kokoadmin/internal/app/features/home"
	"github.com/bigkoko/kokoadmin/internal/testutil"
)

func TestServeRoot_Unauthenticated(t *testing.T) {
	rec := testutil.NewRecorder()
	home.ServeRoot(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	rec.AssertRedirect(t, "/login")
}

func TestServeRoot_SignedIn(t *testing.T) {
	rec := testutil.NewRecorder()
	home.ServeRoot(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/", testutil.ModeratorUser()))
	rec.AssertRedirect(t, "/dashboard")
}
