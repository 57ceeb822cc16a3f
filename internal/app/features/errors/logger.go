// internal/app/features/errors/logger.go
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"go.uber.org/zap"
)

// ExpiredURL is where a request lands when the backend rejects its token.
// The logout handler clears the session and sends the user to /login.
const ExpiredURL = "/logout?expired=1"

// ErrorLogger logs handler failures with request context and renders the
// matching error page (or a bare status for HTMX requests).
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	fs := []zap.Field{
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if u, ok := auth.CurrentUser(r); ok {
		fs = append(fs, zap.String("admin_id", u.ID), zap.String("role", u.Role))
	}
	var ae *backend.APIError
	if stderrors.As(err, &ae) {
		fs = append(fs, zap.Int("backend_status", ae.Status))
	}
	return fs
}

// SessionExpired signs the user out when err is a backend 401 and reports
// whether it wrote the response.
func (e *ErrorLogger) SessionExpired(w http.ResponseWriter, r *http.Request, msg string, err error) bool {
	if !stderrors.Is(err, backend.ErrUnauthorized) {
		return false
	}
	e.Log.Info(msg+": backend rejected session token", e.fields(r, err)...)
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", ExpiredURL)
		w.WriteHeader(http.StatusUnauthorized)
		return true
	}
	http.Redirect(w, r, ExpiredURL, http.StatusSeeOther)
	return true
}

// LogServerError logs err and renders a 500 page with userMsg.
// A backend 401 signs the user out instead.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	if e.SessionExpired(w, r, msg, err) {
		return
	}
	e.Log.Error(msg, e.fields(r, err)...)
	RenderError(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL)
}

// LogBadRequest logs err at warn level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	RenderError(w, r, http.StatusBadRequest, "Bad request", userMsg, backURL)
}

// LogNotFound logs err and renders a 404 page.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	if e.SessionExpired(w, r, msg, err) {
		return
	}
	e.Log.Info(msg, e.fields(r, err)...)
	RenderError(w, r, http.StatusNotFound, "Not found", userMsg, backURL)
}

// LogForbidden logs and renders the access denied page.
func (e *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	RenderForbidden(w, r, userMsg, backURL)
}

// LogBackend picks the page for a failed backend call: 404 for missing
// records, 401 handling for expired tokens, 500 otherwise.
func (e *ErrorLogger) LogBackend(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	if stderrors.Is(err, backend.ErrNotFound) {
		e.LogNotFound(w, r, msg, err, userMsg, backURL)
		return
	}
	e.LogServerError(w, r, msg, err, userMsg, backURL)
}

// HTMXLogServerError is LogServerError for HTMX fragments: it writes a bare
// 500 with the message as text.
func (e *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	if e.SessionExpired(w, r, msg, err) {
		return
	}
	e.Log.Error(msg, e.fields(r, err)...)
	if r.Header.Get("HX-Request") != "true" {
		RenderError(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL)
		return
	}
	http.Error(w, userMsg, http.StatusInternalServerError)
}

// HTMXLogBadRequest is LogBadRequest for HTMX fragments.
func (e *ErrorLogger) HTMXLogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	if r.Header.Get("HX-Request") != "true" {
		RenderError(w, r, http.StatusBadRequest, "Bad request", userMsg, backURL)
		return
	}
	http.Error(w, userMsg, http.StatusBadRequest)
}
