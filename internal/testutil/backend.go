package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Call records one request received by a FakeBackend.
type Call struct {
	Method string
	Path   string
	// RawPath is the path exactly as escaped on the wire.
	RawPath string
	Query   string
	Auth    string
	Body    []byte
}

// Decode unmarshals the recorded JSON body into v.
func (c Call) Decode(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(c.Body, v); err != nil {
		t.Fatalf("decode %s %s body: %v (%s)", c.Method, c.Path, err, c.Body)
	}
}

// FakeBackend is an httptest server with a chi router standing in for the
// marketplace API. Every request is recorded before routing.
type FakeBackend struct {
	Router chi.Router
	Server *httptest.Server

	mu    sync.Mutex
	calls []Call
}

// NewFakeBackend starts a fake backend that is closed when the test ends.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	fb := &FakeBackend{Router: chi.NewRouter()}
	fb.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.calls = append(fb.calls, Call{
			Method:  r.Method,
			Path:    r.URL.Path,
			RawPath: r.URL.EscapedPath(),
			Query:   r.URL.RawQuery,
			Auth:    r.Header.Get("Authorization"),
			Body:    body,
		})
		fb.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
		fb.Router.ServeHTTP(w, r)
	}))
	t.Cleanup(fb.Server.Close)
	return fb
}

// Client returns a backend client pointed at the fake server.
func (fb *FakeBackend) Client(t *testing.T) *backend.Client {
	t.Helper()
	c, err := backend.New(fb.Server.URL, 5*time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("backend.New: %v", err)
	}
	return c
}

// Calls returns a copy of the recorded requests.
func (fb *FakeBackend) Calls() []Call {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]Call(nil), fb.calls...)
}

// LastCall returns the most recent request, failing the test if none arrived.
func (fb *FakeBackend) LastCall(t *testing.T) Call {
	t.Helper()
	calls := fb.Calls()
	if len(calls) == 0 {
		t.Fatal("fake backend received no requests")
	}
	return calls[len(calls)-1]
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Respond returns a handler that always answers with status and v.
func Respond(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { JSON(w, status, v) }
}
