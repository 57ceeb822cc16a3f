package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bigkoko/kokoadmin/internal/app/features/health"
	"github.com/bigkoko/kokoadmin/internal/testutil"
	"go.uber.org/zap"
)

type response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Backend  string `json:"backend"`
	Message  string `json:"message"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response {
	t.Helper()
	var out response
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return out
}

func TestServe_BackendAnswersAnyStatus(t *testing.T) {
	fb := testutil.NewFakeBackend(t) // unrouted paths answer 404, which still counts
	handler := health.NewHandler(nil, fb.Client(t), zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
	got := decode(t, rec)
	if got.Status != "ok" || got.Backend != "reachable" || got.Database != "not configured" {
		t.Errorf("response = %+v", got)
	}
}

func TestServe_BackendDown(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	handler := health.NewHandler(nil, fb.Client(t), zap.NewNop())
	fb.Server.Close()

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	got := decode(t, rec)
	if got.Backend != "unreachable" || got.Message != "Backend unavailable" {
		t.Errorf("response = %+v", got)
	}
}

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fb := testutil.NewFakeBackend(t)
	handler := health.NewHandler(db.Client(), fb.Client(t), zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if got := decode(t, rec); got.Database != "connected" {
		t.Errorf("database: got %q, want connected", got.Database)
	}
}
