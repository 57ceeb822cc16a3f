// Package flash carries one-shot toast messages across the redirect that
// follows a form post.
package flash

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Toast kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

var kinds = []string{KindSuccess, KindError, KindInfo}

// Toast is a message shown once on the next rendered page.
type Toast struct {
	Kind    string
	Message string
}

// Flasher stores toasts in their own cookie session.
type Flasher struct {
	store sessions.Store
	name  string
	log   *zap.Logger
}

// New returns a Flasher backed by store, using cookie name.
func New(store sessions.Store, name string, logger *zap.Logger) *Flasher {
	return &Flasher{store: store, name: name, log: logger}
}

// Add queues a toast for the next page view.
func (f *Flasher) Add(w http.ResponseWriter, r *http.Request, kind, msg string) {
	if f == nil || strings.TrimSpace(msg) == "" {
		return
	}
	sess, err := f.store.Get(r, f.name)
	if err != nil {
		// undecodable cookie: start over with the fresh session returned
		f.log.Debug("flash session reset", zap.Error(err))
	}
	sess.Options.MaxAge = 300
	sess.AddFlash(msg, kind)
	if err := sess.Save(r, w); err != nil {
		f.log.Warn("flash save failed", zap.Error(err))
	}
}

// Success queues a success toast.
func (f *Flasher) Success(w http.ResponseWriter, r *http.Request, msg string) {
	f.Add(w, r, KindSuccess, msg)
}

// Error queues an error toast.
func (f *Flasher) Error(w http.ResponseWriter, r *http.Request, msg string) {
	f.Add(w, r, KindError, msg)
}

// Info queues a neutral toast.
func (f *Flasher) Info(w http.ResponseWriter, r *http.Request, msg string) {
	f.Add(w, r, KindInfo, msg)
}

// Pop returns and clears any queued toasts.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) []Toast {
	if f == nil {
		return nil
	}
	if _, err := r.Cookie(f.name); err != nil {
		return nil
	}
	sess, err := f.store.Get(r, f.name)
	if err != nil {
		return nil
	}
	var out []Toast
	for _, k := range kinds {
		for _, v := range sess.Flashes(k) {
			if s, ok := v.(string); ok {
				out = append(out, Toast{Kind: k, Message: s})
			}
		}
	}
	if len(out) > 0 {
		sess.Options.MaxAge = -1
		if err := sess.Save(r, w); err != nil {
			f.log.Warn("flash clear failed", zap.Error(err))
		}
	}
	return out
}

type ctxKey struct{}

// Middleware pops toasts for page loads (GET, non-HTMX) and exposes them via
// FromContext so the layout can render them.
func (f *Flasher) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.Header.Get("HX-Request") == "true" {
			next.ServeHTTP(w, r)
			return
		}
		if toasts := f.Pop(w, r); len(toasts) > 0 {
			r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, toasts))
		}
		next.ServeHTTP(w, r)
	})
}

// FromContext returns the toasts popped for this request.
func FromContext(ctx context.Context) []Toast {
	t, _ := ctx.Value(ctxKey{}).([]Toast)
	return t
}

// WithToasts attaches toasts to a request context, for handlers that render
// directly after a failed post instead of redirecting.
func WithToasts(r *http.Request, toasts ...Toast) *http.Request {
	existing := FromContext(r.Context())
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, append(existing, toasts...)))
}
