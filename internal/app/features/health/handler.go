package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client  *mongo.Client
	Backend *backend.Client
	Log     *zap.Logger
}

// NewHandler constructs a health Handler. client may be nil when no audit
// database is configured.
func NewHandler(client *mongo.Client, be *backend.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Client:  client,
		Backend: be,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Backend  string `json:"backend"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "backend":"reachable" }
//
// On failure: 503 with status "error" and the failing dependency named.
// Any HTTP answer from the backend counts as reachable.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "not configured",
		Backend:  "reachable",
	}

	if h.Client != nil {
		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
		} else {
			resp.Database = "connected"
		}
	}

	if err := h.Backend.Ping(ctx); err != nil {
		h.Log.Error("health-check: backend unreachable", zap.Error(err))
		resp.Backend = "unreachable"
		if resp.Status == "ok" {
			resp.Status = "error"
			resp.Message = "Backend unavailable"
			resp.Error = err.Error()
		}
	}

	if resp.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
