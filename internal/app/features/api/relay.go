// internal/app/features/api/relay.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// route describes one pass-through endpoint.
type route struct {
	method string
	// target maps the incoming request to a backend path and query.
	target func(r *http.Request) (string, url.Values)

	// errKey is the JSON key failures are reported under ("error" or "message").
	errKey   string
	fallback string
	// errStatus, when set, replaces the status of every failure.
	errStatus int
	// fixedMsg reports fallback even when the backend sent a message.
	fixedMsg bool

	// success, when set, replaces the backend body with {"message": success}
	// and nests the backend body under dataKey (if set).
	success string
	dataKey string
	created bool

	// check validates the request and its JSON body before forwarding.
	check func(r *http.Request, body map[string]any) error
}

// badRequest is returned by route checks.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func (h *Handler) relay(rt route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, q := rt.target(r)

		var body any
		if r.Body != nil && r.Method != http.MethodGet && r.Method != http.MethodHead {
			raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limits.MaxProxyBodySize))
			if err != nil {
				var mbe *http.MaxBytesError
				if errors.As(err, &mbe) {
					h.fail(w, rt, http.StatusRequestEntityTooLarge, "Request body too large")
					return
				}
				h.fail(w, rt, http.StatusBadRequest, "Invalid request body")
				return
			}
			if len(strings.TrimSpace(string(raw))) > 0 {
				if !json.Valid(raw) {
					h.fail(w, rt, http.StatusBadRequest, "Invalid JSON body")
					return
				}
				body = json.RawMessage(raw)
			}
		}

		if rt.check != nil {
			fields := map[string]any{}
			if body != nil {
				_ = json.Unmarshal(body.(json.RawMessage), &fields)
			}
			if err := rt.check(r, fields); err != nil {
				h.fail(w, rt, http.StatusBadRequest, err.Error())
				return
			}
		}

		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "api "+rt.method+" "+path)
		defer cancel()

		var out json.RawMessage
		if err := h.Backend.Do(ctx, rt.method, path, q, body, &out); err != nil {
			h.Log.Warn("api relay failed",
				zap.String("method", rt.method),
				zap.String("path", path),
				zap.Error(err))
			status := backend.StatusOf(err)
			if rt.errStatus != 0 {
				status = rt.errStatus
			}
			msg := backend.MessageOf(err, rt.fallback)
			if rt.fixedMsg {
				msg = rt.fallback
			}
			h.fail(w, rt, status, msg)
			return
		}

		status := http.StatusOK
		if rt.created {
			status = http.StatusCreated
		}
		if rt.success != "" {
			resp := map[string]any{"message": rt.success}
			if rt.dataKey != "" && len(out) > 0 {
				resp[rt.dataKey] = out
			}
			_ = h.JSON.JSON(w, status, resp)
			return
		}
		if len(out) == 0 {
			out = json.RawMessage("{}")
		}
		_ = h.JSON.JSON(w, status, out)
	}
}

func (h *Handler) fail(w http.ResponseWriter, rt route, status int, msg string) {
	key := rt.errKey
	if key == "" {
		key = "error"
	}
	_ = h.JSON.JSON(w, status, map[string]string{key: msg})
}

// fixed targets a backend path with no query.
func fixed(path string) func(*http.Request) (string, url.Values) {
	return func(*http.Request) (string, url.Values) { return path, nil }
}
